// Package container implements the dense index containers (C2) the rest
// of the kernel is built on: VarMap/LitMap (dense, growable, default
// initialized), VarSet/LitSet (O(1) membership with O(k) clear), VarRef
// (lazy reference counting) and VarVMap/VarLMap (variable/literal
// substitutions).
package container

import "github.com/xDarkicex/logicform/literal"

// VarMap is a dense vector indexed by Var, growable by reserving up to a
// maximum variable. Unset entries read as the zero value of T.
type VarMap[T any] struct {
	data []T
}

// NewVarMap returns an empty VarMap.
func NewVarMap[T any]() *VarMap[T] {
	return &VarMap[T]{}
}

// NewVarMapWith returns a VarMap already reserved up to v.
func NewVarMapWith[T any](v literal.Var) *VarMap[T] {
	m := &VarMap[T]{}
	m.Reserve(v)
	return m
}

// Reserve grows the map so index v is valid, default-initializing any new
// entries.
func (m *VarMap[T]) Reserve(v literal.Var) {
	need := int(v) + 1
	if need <= len(m.data) {
		return
	}
	grown := make([]T, need)
	copy(grown, m.data)
	m.data = grown
}

// Get returns the value at v, reading the zero value if v was never
// reserved.
func (m *VarMap[T]) Get(v literal.Var) T {
	if int(v) >= len(m.data) {
		var zero T
		return zero
	}
	return m.data[v]
}

// Set stores val at v, reserving space if needed.
func (m *VarMap[T]) Set(v literal.Var, val T) {
	m.Reserve(v)
	m.data[v] = val
}

// Len returns the number of reserved slots (max_var + 1, if any reserve
// call has happened).
func (m *VarMap[T]) Len() int { return len(m.data) }

// LitMap is a dense vector indexed by Lit (so positive/negative occurrences
// of the same variable live at adjacent indices 2v/2v+1).
type LitMap[T any] struct {
	data []T
}

// NewLitMap returns an empty LitMap.
func NewLitMap[T any]() *LitMap[T] {
	return &LitMap[T]{}
}

// NewLitMapWith returns a LitMap reserved up to variable v (i.e. both
// literals of v are addressable).
func NewLitMapWith[T any](v literal.Var) *LitMap[T] {
	m := &LitMap[T]{}
	m.Reserve(v)
	return m
}

// Reserve grows the map so both literals of v are valid.
func (m *LitMap[T]) Reserve(v literal.Var) {
	need := (int(v) + 1) * 2
	if need <= len(m.data) {
		return
	}
	grown := make([]T, need)
	copy(grown, m.data)
	m.data = grown
}

func (m *LitMap[T]) Get(l literal.Lit) T {
	if int(l) >= len(m.data) {
		var zero T
		return zero
	}
	return m.data[l]
}

func (m *LitMap[T]) Set(l literal.Lit, val T) {
	m.Reserve(l.Var())
	m.data[l] = val
}

func (m *LitMap[T]) Len() int { return len(m.data) }
