package frontend

import (
	"fmt"
	"strings"

	"github.com/xDarkicex/logicform/core"
)

// NodeType classifies an AST node's operator.
type NodeType int

const (
	NodeVariable NodeType = iota
	NodeConstant
	NodeNot
	NodeAnd
	NodeOr
	NodeXor
	NodeNand
	NodeNor
	NodeImplies
	NodeIff
)

func (nt NodeType) String() string {
	switch nt {
	case NodeVariable:
		return "Variable"
	case NodeConstant:
		return "Constant"
	case NodeNot:
		return "Not"
	case NodeAnd:
		return "And"
	case NodeOr:
		return "Or"
	case NodeXor:
		return "Xor"
	case NodeNand:
		return "Nand"
	case NodeNor:
		return "Nor"
	case NodeImplies:
		return "Implies"
	case NodeIff:
		return "Iff"
	default:
		return "Unknown"
	}
}

// ASTNode is a node of a parsed propositional expression. Every binary
// operator node has exactly two Children; NodeNot has exactly one;
// NodeVariable and NodeConstant are leaves carrying Value.
type ASTNode struct {
	Type     NodeType
	Value    string
	Children []*ASTNode
	Position int
}

// EvaluationContext maps variable names to truth values.
type EvaluationContext map[string]bool

// Evaluate interprets the AST directly against ctx, independent of any
// DagCnf — Blast's reference semantics for the property tests that check
// a blasted clause group against direct evaluation.
func (n *ASTNode) Evaluate(ctx EvaluationContext) (bool, error) {
	switch n.Type {
	case NodeVariable:
		if v, ok := ctx[n.Value]; ok {
			return v, nil
		}
		return false, core.NewError(core.KindInputSyntax, "ASTNode.Evaluate",
			fmt.Sprintf("undefined variable %q", n.Value))

	case NodeConstant:
		lower := strings.ToLower(n.Value)
		return lower == "true" || lower == "1" || lower == "t", nil

	case NodeNot:
		v, err := n.Children[0].Evaluate(ctx)
		if err != nil {
			return false, err
		}
		return !v, nil

	case NodeAnd, NodeOr, NodeXor, NodeNand, NodeNor, NodeImplies, NodeIff:
		a, err := n.Children[0].Evaluate(ctx)
		if err != nil {
			return false, err
		}
		b, err := n.Children[1].Evaluate(ctx)
		if err != nil {
			return false, err
		}
		switch n.Type {
		case NodeAnd:
			return a && b, nil
		case NodeOr:
			return a || b, nil
		case NodeXor:
			return a != b, nil
		case NodeNand:
			return !(a && b), nil
		case NodeNor:
			return !(a || b), nil
		case NodeImplies:
			return !a || b, nil
		case NodeIff:
			return a == b, nil
		}
	}
	return false, core.NewError(core.KindInputSyntax, "ASTNode.Evaluate",
		fmt.Sprintf("unhandled node type %s", n.Type))
}

// Variables returns the distinct variable names referenced by the
// expression, in first-occurrence order.
func (n *ASTNode) Variables() []string {
	seen := map[string]bool{}
	var order []string
	var walk func(*ASTNode)
	walk = func(x *ASTNode) {
		if x.Type == NodeVariable && !seen[x.Value] {
			seen[x.Value] = true
			order = append(order, x.Value)
		}
		for _, c := range x.Children {
			walk(c)
		}
	}
	walk(n)
	return order
}
