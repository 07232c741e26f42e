package container

import "github.com/xDarkicex/logicform/literal"

// VarSet is a membership set over Var with O(1) Has/Insert/Remove and a
// Clear that only walks the inserted elements rather than the whole
// domain, per §4.2.
type VarSet struct {
	present []bool
	members []literal.Var
}

// NewVarSet returns an empty VarSet.
func NewVarSet() *VarSet { return &VarSet{} }

func (s *VarSet) reserve(v literal.Var) {
	need := int(v) + 1
	if need <= len(s.present) {
		return
	}
	grown := make([]bool, need)
	copy(grown, s.present)
	s.present = grown
}

// Has reports whether v is currently a member.
func (s *VarSet) Has(v literal.Var) bool {
	return int(v) < len(s.present) && s.present[v]
}

// Insert adds v, a no-op if already present.
func (s *VarSet) Insert(v literal.Var) {
	s.reserve(v)
	if !s.present[v] {
		s.present[v] = true
		s.members = append(s.members, v)
	}
}

// Remove drops v. Membership-list compaction is deferred to the next
// Clear/Members call to stay O(1).
func (s *VarSet) Remove(v literal.Var) {
	if int(v) < len(s.present) {
		s.present[v] = false
	}
}

// Members returns the currently-present elements, compacting the pending
// list as a side effect.
func (s *VarSet) Members() []literal.Var {
	j := 0
	for _, v := range s.members {
		if s.Has(v) {
			s.present[v] = false // later duplicates of v are skipped
			s.members[j] = v
			j++
		}
	}
	s.members = s.members[:j]
	for _, v := range s.members {
		s.present[v] = true
	}
	return s.members
}

// Clear removes every member, walking only what was inserted.
func (s *VarSet) Clear() {
	for _, v := range s.members {
		if int(v) < len(s.present) {
			s.present[v] = false
		}
	}
	s.members = s.members[:0]
}

// Len reports the number of members (after compaction).
func (s *VarSet) Len() int { return len(s.Members()) }

// LitSet is VarSet's Lit-indexed twin.
type LitSet struct {
	present []bool
	members []literal.Lit
}

// NewLitSet returns an empty LitSet.
func NewLitSet() *LitSet { return &LitSet{} }

func (s *LitSet) reserve(l literal.Lit) {
	need := int(l) + 1
	if need <= len(s.present) {
		return
	}
	grown := make([]bool, need)
	copy(grown, s.present)
	s.present = grown
}

// Has reports whether l is currently a member.
func (s *LitSet) Has(l literal.Lit) bool {
	return int(l) < len(s.present) && s.present[l]
}

// Insert adds l.
func (s *LitSet) Insert(l literal.Lit) {
	s.reserve(l)
	if !s.present[l] {
		s.present[l] = true
		s.members = append(s.members, l)
	}
}

// Remove drops l.
func (s *LitSet) Remove(l literal.Lit) {
	if int(l) < len(s.present) {
		s.present[l] = false
	}
}

// Members returns the currently-present elements, compacting as it goes.
func (s *LitSet) Members() []literal.Lit {
	j := 0
	for _, l := range s.members {
		if s.Has(l) {
			s.present[l] = false // later duplicates of l are skipped
			s.members[j] = l
			j++
		}
	}
	s.members = s.members[:j]
	for _, l := range s.members {
		s.present[l] = true
	}
	return s.members
}

// Clear removes every member, walking only what was inserted.
func (s *LitSet) Clear() {
	for _, l := range s.members {
		if int(l) < len(s.present) {
			s.present[l] = false
		}
	}
	s.members = s.members[:0]
}

// Len reports the number of members (after compaction).
func (s *LitSet) Len() int { return len(s.Members()) }
