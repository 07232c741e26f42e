package frontend

import (
	"fmt"

	"github.com/xDarkicex/logicform/core"
)

// Parser is a recursive-descent parser over a token stream, with
// precedence climbing from Iff (lowest) down to unary Not (highest):
// Iff < Implies < Or/Nor < Xor < And/Nand < Not < primary.
type Parser struct {
	tokens  []Token
	current int
}

// ParseExpression lexes and parses expr into an AST, or returns a
// *core.LogicError of KindInputSyntax describing the first lexical or
// syntactic problem.
func ParseExpression(expr string) (*ASTNode, error) {
	tokens := NewLexer(expr).Lex()
	for _, tok := range tokens {
		if tok.Type == TokenError {
			return nil, core.NewError(core.KindInputSyntax, "frontend.ParseExpression",
				fmt.Sprintf("invalid character %q at position %d", tok.Value, tok.Position))
		}
	}

	p := &Parser{tokens: tokens}
	ast, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if !p.isAtEnd() {
		return nil, core.NewError(core.KindInputSyntax, "frontend.ParseExpression",
			fmt.Sprintf("unexpected token %q at position %d", p.peek().Value, p.peek().Position))
	}
	return ast, nil
}

func (p *Parser) parseExpression() (*ASTNode, error) { return p.parseIff() }

func (p *Parser) parseIff() (*ASTNode, error) {
	expr, err := p.parseImplication()
	if err != nil {
		return nil, err
	}
	for p.match(TokenIff) {
		right, err := p.parseImplication()
		if err != nil {
			return nil, err
		}
		expr = &ASTNode{Type: NodeIff, Children: []*ASTNode{expr, right}, Position: p.previous().Position}
	}
	return expr, nil
}

func (p *Parser) parseImplication() (*ASTNode, error) {
	expr, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.match(TokenImplies) {
		right, err := p.parseImplication() // right-associative
		if err != nil {
			return nil, err
		}
		expr = &ASTNode{Type: NodeImplies, Children: []*ASTNode{expr, right}, Position: p.previous().Position}
	}
	return expr, nil
}

func (p *Parser) parseOr() (*ASTNode, error) {
	expr, err := p.parseXor()
	if err != nil {
		return nil, err
	}
	for p.match(TokenOr, TokenNor) {
		op := p.previous()
		right, err := p.parseXor()
		if err != nil {
			return nil, err
		}
		nodeType := NodeOr
		if op.Type == TokenNor {
			nodeType = NodeNor
		}
		expr = &ASTNode{Type: nodeType, Children: []*ASTNode{expr, right}, Position: op.Position}
	}
	return expr, nil
}

func (p *Parser) parseXor() (*ASTNode, error) {
	expr, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.match(TokenXor) {
		op := p.previous()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		expr = &ASTNode{Type: NodeXor, Children: []*ASTNode{expr, right}, Position: op.Position}
	}
	return expr, nil
}

func (p *Parser) parseAnd() (*ASTNode, error) {
	expr, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.match(TokenAnd, TokenNand) {
		op := p.previous()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		nodeType := NodeAnd
		if op.Type == TokenNand {
			nodeType = NodeNand
		}
		expr = &ASTNode{Type: nodeType, Children: []*ASTNode{expr, right}, Position: op.Position}
	}
	return expr, nil
}

func (p *Parser) parseUnary() (*ASTNode, error) {
	if p.match(TokenNot) {
		op := p.previous()
		expr, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ASTNode{Type: NodeNot, Children: []*ASTNode{expr}, Position: op.Position}, nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (*ASTNode, error) {
	if p.match(TokenConstant) {
		tok := p.previous()
		return &ASTNode{Type: NodeConstant, Value: tok.Value, Position: tok.Position}, nil
	}
	if p.match(TokenVariable) {
		tok := p.previous()
		return &ASTNode{Type: NodeVariable, Value: tok.Value, Position: tok.Position}, nil
	}
	if p.match(TokenLeftParen) {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if !p.match(TokenRightParen) {
			return nil, core.NewError(core.KindInputSyntax, "frontend.Parser.parsePrimary",
				fmt.Sprintf("expected ')' at position %d", p.peek().Position))
		}
		return expr, nil
	}
	return nil, core.NewError(core.KindInputSyntax, "frontend.Parser.parsePrimary",
		fmt.Sprintf("expected expression at position %d", p.peek().Position))
}

func (p *Parser) match(types ...TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(t TokenType) bool {
	return !p.isAtEnd() && p.peek().Type == t
}

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool { return p.peek().Type == TokenEOF }
func (p *Parser) peek() Token   { return p.tokens[p.current] }
func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}
