package cnf

import (
	"github.com/xDarkicex/logicform/container"
	"github.com/xDarkicex/logicform/core"
	"github.com/xDarkicex/logicform/literal"
)

// DagCnf is the central entity (§3): per variable n, a defining clause
// group cnf[n] and a dependency list dep[n], under the last-literal
// convention (every clause of cnf[n] has n as the variable of its last,
// greatest literal) and the acyclicity invariant (dep[n] only contains
// variables smaller than n). Ground: original_source/src/dagcnf/mod.rs.
type DagCnf struct {
	maxVar  literal.Var
	cnf     *container.VarMap[literal.LitVvec]
	dep     *container.VarMap[[]literal.Var]
	defined *container.VarMap[bool]
}

// NewDagCnf returns a DagCnf with only the constant variable defined as true.
func NewDagCnf() *DagCnf {
	d := &DagCnf{
		maxVar:  literal.ConstVar,
		cnf:     container.NewVarMapWith[literal.LitVvec](literal.ConstVar),
		dep:     container.NewVarMapWith[[]literal.Var](literal.ConstVar),
		defined: container.NewVarMapWith[bool](literal.ConstVar),
	}
	d.cnf.Set(literal.ConstVar, literal.LitVvec{literal.NewLitVec(literal.ConstLit(true))})
	d.defined.Set(literal.ConstVar, true)
	return d
}

// MaxVar returns the largest variable index in use.
func (d *DagCnf) MaxVar() literal.Var { return d.maxVar }

// NewVar allocates a fresh, as-yet-undefined variable.
func (d *DagCnf) NewVar() literal.Var {
	d.maxVar++
	d.cnf.Reserve(d.maxVar)
	d.dep.Reserve(d.maxVar)
	d.defined.Reserve(d.maxVar)
	return d.maxVar
}

// NewVarTo raises MaxVar to at least n.
func (d *DagCnf) NewVarTo(n literal.Var) {
	if n > d.maxVar {
		d.maxVar = n
		d.cnf.Reserve(n)
		d.dep.Reserve(n)
		d.defined.Reserve(n)
	}
}

// HasRel reports whether n currently carries a (non-deleted) defining
// relation.
func (d *DagCnf) HasRel(n literal.Var) bool {
	return len(d.cnf.Get(n)) > 0
}

// Group returns n's defining clause group (empty for leaves).
func (d *DagCnf) Group(n literal.Var) literal.LitVvec { return d.cnf.Get(n) }

// Dep returns n's dependency list.
func (d *DagCnf) Dep(n literal.Var) []literal.Var { return d.dep.Get(n) }

// AddRel attaches rel to n. n must never have carried a relation before,
// even if it was subsequently deleted (§3's lifecycle: "a relation is
// attached to n exactly once"). Each clause is sorted and must carry n as
// its last literal's variable (the last-literal convention); dep[n] is
// recomputed as the set of other variables appearing in the group.
func (d *DagCnf) AddRel(n literal.Var, rel literal.LitVvec) {
	core.Assert(!d.defined.Get(n), "DagCnf.AddRel", "relation already attached to this variable")
	group := make(literal.LitVvec, len(rel))
	seen := map[literal.Var]bool{}
	var dep []literal.Var
	for i, cls := range rel {
		c := cls.Clone()
		c.Sort()
		core.Assert(len(c) > 0, "DagCnf.AddRel", "relation clause must not be empty")
		core.Assert(c.Last().Var() == n, "DagCnf.AddRel", "last-literal convention violated")
		group[i] = c
		for _, l := range c {
			if l.Var() != n && !seen[l.Var()] {
				seen[l.Var()] = true
				dep = append(dep, l.Var())
			}
		}
	}
	d.cnf.Set(n, group)
	d.dep.Set(n, dep)
	d.defined.Set(n, true)
}

// DeleteRel clears n's group and dependency list. Re-adding a relation to
// n afterwards is a contract violation (the permanently-set `defined`
// flag survives the clear).
func (d *DagCnf) DeleteRel(n literal.Var) {
	d.cnf.Set(n, nil)
	d.dep.Set(n, nil)
}

func (d *DagCnf) installGate(n literal.Lit, rel literal.LitVvec) literal.Lit {
	d.AddRel(n.Var(), rel)
	return n
}

// NewAnd allocates a fresh variable n and installs n <-> AND(lits...),
// returning n's positive literal.
func (d *DagCnf) NewAnd(lits ...literal.Lit) literal.Lit {
	n := d.NewVar().Lit()
	return d.installGate(n, literal.CNFAnd(n, lits...))
}

// NewOr allocates a fresh variable n and installs n <-> OR(lits...).
func (d *DagCnf) NewOr(lits ...literal.Lit) literal.Lit {
	n := d.NewVar().Lit()
	return d.installGate(n, literal.CNFOr(n, lits...))
}

// NewXor allocates a fresh variable n and installs n <-> (x XOR y).
func (d *DagCnf) NewXor(x, y literal.Lit) literal.Lit {
	n := d.NewVar().Lit()
	return d.installGate(n, literal.CNFXor(n, x, y))
}

// NewXnor allocates a fresh variable n and installs n <-> (x XNOR y).
func (d *DagCnf) NewXnor(x, y literal.Lit) literal.Lit {
	n := d.NewVar().Lit()
	return d.installGate(n, literal.CNFXnor(n, x, y))
}

// NewImply allocates a fresh variable n and installs n <-> (a -> b).
func (d *DagCnf) NewImply(a, b literal.Lit) literal.Lit {
	n := d.NewVar().Lit()
	return d.installGate(n, literal.CNFImply(n, a, b))
}

// NewIte allocates a fresh variable n and installs n <-> ite(c, t, e).
func (d *DagCnf) NewIte(c, t, e literal.Lit) literal.Lit {
	n := d.NewVar().Lit()
	return d.installGate(n, literal.CNFIte(n, c, t, e))
}

// Fanins is the cone-of-influence of seeds: the transitive closure
// through dep[.].
func (d *DagCnf) Fanins(seeds ...literal.Var) map[literal.Var]bool {
	marked := map[literal.Var]bool{}
	var queue []literal.Var
	for _, v := range seeds {
		if !marked[v] {
			marked[v] = true
			queue = append(queue, v)
		}
	}
	for len(queue) > 0 {
		v := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		for _, dv := range d.dep.Get(v) {
			if !marked[dv] {
				marked[dv] = true
				queue = append(queue, dv)
			}
		}
	}
	return marked
}

// Fanouts marks seeds plus every variable that transitively depends on
// one of them, via a single linear sweep from 0 to MaxVar (sound because dep[v] only ever
// contains variables smaller than v).
func (d *DagCnf) Fanouts(seeds ...literal.Var) map[literal.Var]bool {
	marked := map[literal.Var]bool{}
	for _, v := range seeds {
		marked[v] = true
	}
	for v := literal.Var(0); v <= d.maxVar; v++ {
		for _, dv := range d.dep.Get(v) {
			if marked[dv] {
				marked[v] = true
				break
			}
		}
	}
	return marked
}

// Root returns the variables with a non-empty relation that no other
// variable depends on.
func (d *DagCnf) Root() map[literal.Var]bool {
	root := map[literal.Var]bool{}
	for v := literal.Var(0); v <= d.maxVar; v++ {
		if len(d.dep.Get(v)) > 0 || d.HasRel(v) {
			if d.HasRel(v) {
				root[v] = true
			}
		}
	}
	for v := literal.Var(0); v <= d.maxVar; v++ {
		for _, dv := range d.dep.Get(v) {
			delete(root, dv)
		}
	}
	return root
}

// PolFilter drops, from every variable's group, clauses whose defining
// (last) literal has the given polarity — used to remove one direction of
// an equivalence when the caller knows only the other is needed.
func (d *DagCnf) PolFilter(polarity bool) {
	for v := literal.Var(0); v <= d.maxVar; v++ {
		group := d.cnf.Get(v)
		if len(group) == 0 {
			continue
		}
		kept := group[:0]
		for _, cls := range group {
			if cls.Last().Polarity() != polarity {
				kept = append(kept, cls)
			}
		}
		d.cnf.Set(v, kept)
	}
}

// Rearrange builds the union of `additional` plus every variable
// referenced by any remaining clause, sorts it ascending, and rebuilds a
// new DagCnf whose variable numbering is that list's position (ConstVar
// always maps to ConstVar). Returns the old-to-new substitution. Ground:
// original_source/src/cnf/mod.rs Cnf::arrange plus
// original_source/src/dagcnf/mod.rs DagCnf::arrange (dependency
// compression is unnecessary here because AddRel always recomputes dep[n]
// from the remapped clause content, so the new dep lists are correct by
// construction rather than needing a separate fold-through step).
func (d *DagCnf) Rearrange(additional ...literal.Var) *container.VarVMap {
	domain := map[literal.Var]bool{literal.ConstVar: true}
	for _, v := range additional {
		domain[v] = true
	}
	for v := literal.Var(0); v <= d.maxVar; v++ {
		for _, cls := range d.cnf.Get(v) {
			for _, l := range cls {
				domain[l.Var()] = true
			}
		}
	}
	sorted := sortedVars(domain)

	vvmap := container.NewVarVMap()
	for i, v := range sorted {
		vvmap.Set(v, literal.Var(i))
	}

	out := NewDagCnf()
	out.NewVarTo(literal.Var(len(sorted) - 1))
	for _, v := range sorted {
		if v == literal.ConstVar || !d.HasRel(v) {
			continue
		}
		group := d.cnf.Get(v)
		newGroup := make(literal.LitVvec, len(group))
		for i, cls := range group {
			newCls := make(literal.LitVec, len(cls))
			for j, l := range cls {
				newCls[j] = literal.NewLit(vvmap.Map(l.Var()), l.Polarity())
			}
			newGroup[i] = newCls
		}
		out.AddRel(vvmap.Map(v), newGroup)
	}
	return vvmap
}

// Map rebuilds a new DagCnf by pushing every variable through f, which
// must be injective and order-preserving with respect to dependencies
// (f(dep) < f(n) whenever dep < n in the original). This is the general
// form Rearrange specializes.
func (d *DagCnf) Map(f func(literal.Var) literal.Var) *DagCnf {
	out := NewDagCnf()
	maxNew := literal.Var(0)
	for v := literal.Var(0); v <= d.maxVar; v++ {
		if nv := f(v); nv > maxNew {
			maxNew = nv
		}
	}
	out.NewVarTo(maxNew)
	for v := literal.Var(1); v <= d.maxVar; v++ {
		if !d.HasRel(v) {
			continue
		}
		group := d.cnf.Get(v)
		newGroup := make(literal.LitVvec, len(group))
		for i, cls := range group {
			newCls := make(literal.LitVec, len(cls))
			for j, l := range cls {
				newCls[j] = literal.NewLit(f(l.Var()), l.Polarity())
			}
			newGroup[i] = newCls
		}
		out.AddRel(f(v), newGroup)
	}
	return out
}

// Replace rewrites every clause body literal and dependency entry through
// m, in place, and clears the group/dependency list of any variable that
// is itself a key of m (it has been superseded by the literal it maps
// to). Every mapped variable must map to a literal over a strictly
// smaller variable, preserving acyclicity. Ground:
// original_source/src/dagcnf/replace.rs.
func (d *DagCnf) Replace(m *container.VarLMap) {
	for v := literal.Var(0); v <= d.maxVar; v++ {
		if m.Has(v) {
			replacement := m.Map(v)
			core.Assert(v > replacement.Var(), "DagCnf.Replace", "replacement must target a strictly smaller variable")
			d.cnf.Set(v, nil)
			d.dep.Set(v, nil)
			continue
		}
		group := d.cnf.Get(v)
		for _, cls := range group {
			for i, l := range cls {
				if m.Has(l.Var()) {
					cls[i] = m.MapLit(l)
				}
			}
		}
		dep := d.dep.Get(v)
		for i, dv := range dep {
			if m.Has(dv) {
				dep[i] = m.Map(dv).Var()
			}
		}
	}
}
