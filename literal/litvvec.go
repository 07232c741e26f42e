package literal

// LitVvec is a clause group: the "clause of clauses" that a DAG-CNF node
// attaches as its defining relation. The CNF gate templates below each
// build one for a given output literal and its operands, matching the
// table in spec.md §4.1.
type LitVvec []LitVec

// NewLitVvec copies cls into a fresh LitVvec.
func NewLitVvec(cls ...LitVec) LitVvec {
	out := make(LitVvec, len(cls))
	copy(out, cls)
	return out
}

// CNFAnd builds the clauses for n <-> AND(lits...):
// (!n v l_i) for each i, plus (n v !l_1 v ... v !l_k).
func CNFAnd(n Lit, lits ...Lit) LitVvec {
	out := make(LitVvec, 0, len(lits)+1)
	last := LitVec{n}
	for _, l := range lits {
		out = append(out, LitVec{n.Not(), l})
		last = append(last, l.Not())
	}
	out = append(out, last)
	return out
}

// CNFOr builds the clauses for n <-> OR(lits...):
// (n v !l_i) for each i, plus (!n v l_1 v ... v l_k).
func CNFOr(n Lit, lits ...Lit) LitVvec {
	out := make(LitVvec, 0, len(lits)+1)
	last := LitVec{n.Not()}
	for _, l := range lits {
		out = append(out, LitVec{n, l.Not()})
		last = append(last, l)
	}
	out = append(out, last)
	return out
}

// CNFXor builds the four clauses for n <-> (x XOR y), enumerating odd
// parity.
func CNFXor(n, x, y Lit) LitVvec {
	return LitVvec{
		{x.Not(), y, n},
		{x, y.Not(), n},
		{x, y, n.Not()},
		{x.Not(), y.Not(), n.Not()},
	}
}

// CNFXnor builds the four clauses for n <-> (x XNOR y).
func CNFXnor(n, x, y Lit) LitVvec {
	return LitVvec{
		{x.Not(), y, n.Not()},
		{x, y.Not(), n.Not()},
		{x, y, n},
		{x.Not(), y.Not(), n},
	}
}

// CNFIte builds the four clauses for n <-> ite(c, t, e), by cofactor on c.
func CNFIte(n, c, t, e Lit) LitVvec {
	return LitVvec{
		{t, c.Not(), n.Not()},
		{t.Not(), c.Not(), n},
		{e, c, n.Not()},
		{e.Not(), c, n},
	}
}

// CNFImply builds n <-> (a -> b), as the non-core rewrite (!a v b) fed
// through CNFOr on the rewritten operands, per §9's "non-core operators
// are pure rewrite rules into core operators".
func CNFImply(n, a, b Lit) LitVvec {
	return CNFOr(n, a.Not(), b)
}
