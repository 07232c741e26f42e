package core

// Config holds the heuristic tunables the spec calls out as "an
// implementer may expose it as a tunable" in §9. DefaultConfig returns the
// documented defaults; the zero value is not equivalent to them (a zero
// BVECostCutoff rejects every BVE pivot).
type Config struct {
	// BVECostCutoff is the §4.5 "pathological fan-out cutoff": a pivot
	// variable whose combined occurrence/definition count exceeds this is
	// skipped outright. Spec default: 2000.
	BVECostCutoff int

	// BVESlack bounds how much a minimized resolvent set may exceed the
	// eliminated variable's original cost and still be accepted,
	// expressed as extra clauses tolerated before abandoning (spec.md §9
	// calls the analogous "new_cnf.len() > origin_cost + 5" heuristic;
	// this kernel uses the stricter "<= C_old" rule from §4.5's body text
	// by default, i.e. BVESlack of 0).
	BVESlack int

	// Confluent records the Open Question decision in DESIGN.md. No code
	// reads it: literal.LemmasSubsumeSimplify always restarts its scan when
	// an equal-length pair strengthens the current clause, whatever this
	// field holds.
	Confluent bool

	// BVAMinSavedClauses records the minimum clause-count reduction for a
	// BVA expansion (spec.md §4.6 step 4's "saves at least one clause").
	// bva.Run takes no Config and does not read it; its expansion test is
	// fixed in code.
	BVAMinSavedClauses int
}

// DefaultConfig returns the spec's documented defaults.
func DefaultConfig() Config {
	return Config{
		BVECostCutoff:      2000,
		BVESlack:           0,
		Confluent:          true,
		BVAMinSavedClauses: 1,
	}
}
