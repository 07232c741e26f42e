package frontend

import (
	"fmt"
	"sort"

	"github.com/xDarkicex/logicform/cnf"
	"github.com/xDarkicex/logicform/literal"
)

// Blaster interns variable names to DagCnf variables across one or more
// Blast calls, so repeated references to the same name share a literal
// instead of allocating a fresh gate each time.
type Blaster struct {
	dag  *cnf.DagCnf
	vars map[string]literal.Var
}

// NewBlaster returns a Blaster that allocates fresh variables into dag.
func NewBlaster(dag *cnf.DagCnf) *Blaster {
	return &Blaster{dag: dag, vars: map[string]literal.Var{}}
}

// Blast walks ast post-order and installs its operators into b's DagCnf
// through the core's gate templates (§4.1), returning the literal of the
// node the whole expression blasts to. Nand and Nor have no direct
// template, so they factor through NewAnd/NewOr plus the free negation
// literal.Lit.Not provides; every other operator uses its direct
// template.
func (b *Blaster) Blast(ast *ASTNode) literal.Lit {
	switch ast.Type {
	case NodeVariable:
		return b.varLit(ast.Value)

	case NodeConstant:
		return literal.ConstLit(isTrueLiteral(ast.Value))

	case NodeNot:
		return b.Blast(ast.Children[0]).Not()

	case NodeAnd:
		l, r := b.blastChildren(ast)
		return b.dag.NewAnd(l, r)

	case NodeOr:
		l, r := b.blastChildren(ast)
		return b.dag.NewOr(l, r)

	case NodeXor:
		l, r := b.blastChildren(ast)
		return b.dag.NewXor(l, r)

	case NodeNand:
		l, r := b.blastChildren(ast)
		return b.dag.NewAnd(l, r).Not()

	case NodeNor:
		l, r := b.blastChildren(ast)
		return b.dag.NewOr(l, r).Not()

	case NodeImplies:
		l, r := b.blastChildren(ast)
		return b.dag.NewImply(l, r)

	case NodeIff:
		l, r := b.blastChildren(ast)
		return b.dag.NewXnor(l, r)
	}
	panic(fmt.Sprintf("frontend.Blast: unhandled node type %s", ast.Type))
}

func (b *Blaster) blastChildren(ast *ASTNode) (literal.Lit, literal.Lit) {
	return b.Blast(ast.Children[0]), b.Blast(ast.Children[1])
}

func (b *Blaster) varLit(name string) literal.Lit {
	v, ok := b.vars[name]
	if !ok {
		v = b.dag.NewVar()
		b.vars[name] = v
	}
	return v.Lit()
}

// Variables returns a copy of the interned name-to-variable map. A map
// has no order; SortedNames gives a deterministic name ordering.
func (b *Blaster) Variables() map[string]literal.Var {
	out := make(map[string]literal.Var, len(b.vars))
	for k, v := range b.vars {
		out[k] = v
	}
	return out
}

func isTrueLiteral(v string) bool {
	switch v {
	case "true", "True", "TRUE", "1", "t", "T":
		return true
	default:
		return false
	}
}

// Blast is the one-shot convenience form: blast an already-parsed ast
// into dag using a fresh Blaster, returning the result literal alongside
// the interned name-to-variable map (unordered; see SortedNames).
func Blast(ast *ASTNode, dag *cnf.DagCnf) (literal.Lit, map[string]literal.Var) {
	b := NewBlaster(dag)
	l := b.Blast(ast)
	return l, b.Variables()
}

// SortedNames returns names sorted lexically — a small helper tests use
// to get a deterministic variable-name ordering out of Blast's map.
func SortedNames(vars map[string]literal.Var) []string {
	out := make([]string, 0, len(vars))
	for k := range vars {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
