// Package cnf implements the flat Cnf and the DAG-CNF (C4): the central
// entity of the kernel, where every internal variable carries a defining
// clause group and an explicit dependency list.
package cnf

import (
	"sort"

	"github.com/xDarkicex/logicform/core"
	"github.com/xDarkicex/logicform/literal"
)

// Cnf is a flat clause set with max-var tracking. It always carries the
// invariant unit clause asserting the constant literal (§3).
type Cnf struct {
	maxVar literal.Var
	cls    []literal.LitVec
}

// NewCnf returns a fresh Cnf with only the constant unit clause.
func NewCnf() *Cnf {
	return &Cnf{
		maxVar: literal.ConstVar,
		cls:    []literal.LitVec{literal.NewLitVec(literal.ConstLit(true))},
	}
}

// MaxVar returns the largest variable index in use.
func (c *Cnf) MaxVar() literal.Var { return c.maxVar }

// NewVar allocates and returns a fresh variable.
func (c *Cnf) NewVar() literal.Var {
	c.maxVar++
	return c.maxVar
}

// NewVarTo raises MaxVar to at least n, without implying those
// intermediate variables have any relation attached.
func (c *Cnf) NewVarTo(n literal.Var) {
	if n > c.maxVar {
		c.maxVar = n
	}
}

// AddClause appends a clause built from lits.
func (c *Cnf) AddClause(lits ...literal.Lit) {
	c.cls = append(c.cls, literal.NewLitVec(lits...))
}

// AddClauses appends each clause in cls.
func (c *Cnf) AddClauses(cls ...literal.LitVec) {
	c.cls = append(c.cls, cls...)
}

// Clauses returns the clause list.
func (c *Cnf) Clauses() []literal.LitVec { return c.cls }

// Len returns the number of clauses.
func (c *Cnf) Len() int { return len(c.cls) }

// Arrange renumbers variables to the dense set actually referenced by any
// clause (plus ConstVar), in ascending order, and rewrites clauses
// in place. Returns the old-to-new map. Ground:
// original_source/src/cnf/mod.rs Cnf::arrange.
func (c *Cnf) Arrange() map[literal.Var]literal.Var {
	domain := map[literal.Var]bool{literal.ConstVar: true}
	for _, cls := range c.cls {
		for _, l := range cls {
			domain[l.Var()] = true
		}
	}
	sorted := sortedVars(domain)
	domainMap := make(map[literal.Var]literal.Var, len(sorted))
	for i, v := range sorted {
		domainMap[v] = literal.Var(i)
	}
	for _, cls := range c.cls {
		for i, l := range cls {
			cls[i] = literal.NewLit(domainMap[l.Var()], l.Polarity())
		}
	}
	core.Assert(len(sorted) > 0, "Cnf.Arrange", "domain must at least contain ConstVar")
	c.maxVar = literal.Var(len(sorted) - 1)
	return domainMap
}

func sortedVars(domain map[literal.Var]bool) []literal.Var {
	out := make([]literal.Var, 0, len(domain))
	for v := range domain {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
