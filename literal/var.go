// Package literal implements the bit-packed variable/literal algebra (C1):
// Var, Lit, ordered clause operations on LitVec/LitVvec, and the
// Bloom-signed canonical Lemma used by the simplification engine's
// subsumption checks.
package literal

import "fmt"

// Var is a dense, non-negative variable index. Var(0) is the distinguished
// constant variable, always present, standing in for logical true/false.
// The variable universe of a CNF is 0..=MaxVar, with no gaps.
type Var uint32

// ConstVar is the distinguished constant variable. Its positive literal is
// asserted in every fresh CNF.
const ConstVar Var = 0

// Lit returns the positive literal of v.
func (v Var) Lit() Lit { return NewLit(v, true) }

func (v Var) String() string { return fmt.Sprintf("%d", uint32(v)) }

// Lit is a variable paired with a polarity bit, packed as
// (var << 1) | (!polarity), so that negating a Lit is a single XOR on the
// low bit and literal ordering falls directly out of integer ordering.
type Lit uint32

// NewLit packs var and polarity into a Lit.
func NewLit(v Var, polarity bool) Lit {
	b := Lit(0)
	if !polarity {
		b = 1
	}
	return Lit(v)<<1 | b
}

// ConstLit returns the literal of ConstVar with the given polarity.
// ConstLit(true) is "logical true".
func ConstLit(polarity bool) Lit { return NewLit(ConstVar, polarity) }

// Var returns the variable this literal refers to.
func (l Lit) Var() Var { return Var(l >> 1) }

// Polarity reports whether l is the positive occurrence of its variable.
// polarity == true iff (l & 1) == 0, per the packing above.
func (l Lit) Polarity() bool { return l&1 == 0 }

// Not returns the complementary literal: same variable, opposite polarity.
func (l Lit) Not() Lit { return l ^ 1 }

func (l Lit) String() string {
	if l.Polarity() {
		return fmt.Sprintf("%d", uint32(l.Var()))
	}
	return fmt.Sprintf("-%d", uint32(l.Var()))
}

// Int returns the DIMACS-style signed representation: +v for a positive
// literal on variable v, -v for a negative one. Var(0) is never emitted in
// DIMACS text (see the dimacs package), so callers of Int on ConstVar's
// literal should special-case it.
func (l Lit) Int() int64 {
	n := int64(l.Var())
	if !l.Polarity() {
		n = -n
	}
	return n
}

// FromInt builds a Lit from a DIMACS-style signed integer (nonzero).
func FromInt(n int64) Lit {
	if n < 0 {
		return NewLit(Var(-n), false)
	}
	return NewLit(Var(n), true)
}
