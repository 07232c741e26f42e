package container

import "github.com/xDarkicex/logicform/literal"

// VarRef is a reference counter over Var with lazy deletion: Inref bumps a
// variable's count and remembers it on a pending list the first time it
// becomes referenced; Deref decrements and marks the structure dirty once
// a count reaches zero. Iteration compacts the pending list lazily,
// filtering out zero-count entries only when actually walked.
type VarRef struct {
	count   []int
	pending []literal.Var
	dirty   bool
}

// NewVarRef returns an empty VarRef.
func NewVarRef() *VarRef { return &VarRef{} }

func (r *VarRef) reserve(v literal.Var) {
	need := int(v) + 1
	if need <= len(r.count) {
		return
	}
	grown := make([]int, need)
	copy(grown, r.count)
	r.count = grown
}

// Count returns v's current reference count.
func (r *VarRef) Count(v literal.Var) int {
	if int(v) >= len(r.count) {
		return 0
	}
	return r.count[v]
}

// Inref increments v's reference count, adding v to the pending list the
// first time it transitions from zero.
func (r *VarRef) Inref(v literal.Var) {
	r.reserve(v)
	if r.count[v] == 0 {
		r.pending = append(r.pending, v)
	}
	r.count[v]++
}

// Deref decrements v's reference count, marking the structure dirty if it
// reaches zero so the next iteration compacts it out.
func (r *VarRef) Deref(v literal.Var) {
	if int(v) >= len(r.count) || r.count[v] == 0 {
		return
	}
	r.count[v]--
	if r.count[v] == 0 {
		r.dirty = true
	}
}

// Referenced returns the currently-referenced (count > 0) variables,
// compacting the pending list if it is dirty.
func (r *VarRef) Referenced() []literal.Var {
	if r.dirty {
		j := 0
		for _, v := range r.pending {
			if r.Count(v) > 0 {
				r.pending[j] = v
				j++
			}
		}
		r.pending = r.pending[:j]
		r.dirty = false
	}
	return r.pending
}
