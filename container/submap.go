package container

import "github.com/xDarkicex/logicform/literal"

// VarVMap is a Var -> Var substitution, as produced by DagCnf.Rearrange.
type VarVMap struct {
	m *VarMap[literal.Var]
}

// NewVarVMap returns an empty VarVMap.
func NewVarVMap() *VarVMap { return &VarVMap{m: NewVarMap[literal.Var]()} }

// Map looks up the image of v (zero Var if unset).
func (m *VarVMap) Map(v literal.Var) literal.Var { return m.m.Get(v) }

// Set records v -> to.
func (m *VarVMap) Set(v, to literal.Var) { m.m.Set(v, to) }

// Len returns the number of reserved domain slots.
func (m *VarVMap) Len() int { return m.m.Len() }

// Product composes m then other: Product(other)(v) == other.Map(m.Map(v)).
func (m *VarVMap) Product(other *VarVMap) *VarVMap {
	out := NewVarVMap()
	for v := literal.Var(0); int(v) < m.Len(); v++ {
		out.Set(v, other.Map(m.Map(v)))
	}
	return out
}

// Invert builds the inverse mapping, assuming m is a bijection onto its
// image (true of a Rearrange renumbering).
func (m *VarVMap) Invert() *VarVMap {
	out := NewVarVMap()
	for v := literal.Var(0); int(v) < m.Len(); v++ {
		out.Set(m.Map(v), v)
	}
	return out
}

// VarLMap is a Var -> Lit substitution (used by DagCnf.Replace to rewrite
// a variable to a possibly-negated, possibly-different literal).
type VarLMap struct {
	m       *VarMap[literal.Lit]
	present *VarMap[bool]
}

// NewVarLMap returns an empty VarLMap.
func NewVarLMap() *VarLMap {
	return &VarLMap{m: NewVarMap[literal.Lit](), present: NewVarMap[bool]()}
}

// Set records v -> to.
func (m *VarLMap) Set(v literal.Var, to literal.Lit) {
	m.m.Set(v, to)
	m.present.Set(v, true)
}

// Has reports whether v has an explicit entry in the map. The zero Lit
// (value 0) is also ConstVar's legitimate positive literal, so callers
// that need to tell "unmapped" apart from "mapped to constant-true" must
// check Has rather than compare Map's result against 0.
func (m *VarLMap) Has(v literal.Var) bool { return m.present.Get(v) }

// Map looks up the image literal of v, or the zero Lit if v is unmapped
// — use Has to distinguish the two when 0 is a meaningful result.
func (m *VarLMap) Map(v literal.Var) literal.Lit { return m.m.Get(v) }

// MapLit applies the substitution to a literal, respecting its polarity:
// if l is negative, the mapped literal is negated too.
func (m *VarLMap) MapLit(l literal.Lit) literal.Lit {
	mapped := m.Map(l.Var())
	if l.Polarity() {
		return mapped
	}
	return mapped.Not()
}

// Len returns the number of reserved domain slots.
func (m *VarLMap) Len() int { return m.m.Len() }
