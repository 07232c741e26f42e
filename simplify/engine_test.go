package simplify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xDarkicex/logicform/cnf"
	"github.com/xDarkicex/logicform/core"
	"github.com/xDarkicex/logicform/literal"
	"github.com/xDarkicex/logicform/simplify"
)

func lit(v int, pol bool) literal.Lit { return literal.NewLit(literal.Var(v), pol) }

// Scenario 1 (spec §8): [1], [¬1,2], [¬2,3], [¬3,4,5] with nothing frozen
// collapses, by unit propagation cascade, to the single clause [4,5].
func TestUnitPropagationCascade(t *testing.T) {
	d := cnf.NewDagCnf()
	for i := 0; i < 5; i++ {
		d.NewVar()
	}
	d.AddRel(1, literal.LitVvec{literal.NewLitVec(lit(1, true))})
	d.AddRel(2, literal.LitVvec{literal.NewLitVec(lit(1, false), lit(2, true))})
	d.AddRel(3, literal.LitVvec{literal.NewLitVec(lit(2, false), lit(3, true))})
	d.AddRel(5, literal.LitVvec{literal.NewLitVec(lit(3, false), lit(4, true), lit(5, true))})

	out, unsat := simplify.Simplify(d, nil, core.DefaultConfig())
	require.False(t, unsat)
	assert.Equal(t, literal.Var(5), out.MaxVar())
	assert.False(t, out.HasRel(1))
	assert.False(t, out.HasRel(2))
	assert.False(t, out.HasRel(3))
	assert.False(t, out.HasRel(4))
	require.True(t, out.HasRel(5))
	require.Len(t, out.Group(5), 1)
	assert.True(t, out.Group(5)[0].Equal(literal.NewLitVec(lit(4, true), lit(5, true))))
}

// Scenario 2: [1,2], [¬1,3] resolve on variable 1 to [2,3], a net saving
// of one clause, so BVE commits and variable 1 disappears.
func TestBVESavesAClause(t *testing.T) {
	d := cnf.NewDagCnf()
	for i := 0; i < 3; i++ {
		d.NewVar()
	}
	d.AddRel(2, literal.LitVvec{literal.NewLitVec(lit(1, true), lit(2, true))})
	d.AddRel(3, literal.LitVvec{literal.NewLitVec(lit(1, false), lit(3, true))})

	out, unsat := simplify.Simplify(d, nil, core.DefaultConfig())
	require.False(t, unsat)
	assert.False(t, out.HasRel(1), "variable 1 should have been eliminated")

	var survivors []literal.LitVec
	for v := literal.Var(1); v <= out.MaxVar(); v++ {
		survivors = append(survivors, out.Group(v)...)
	}
	require.Len(t, survivors, 1)
	assert.True(t, survivors[0].Equal(literal.NewLitVec(lit(2, true), lit(3, true))))
}

// Scenario 3: a 25-clause blowup over a single pivot makes the resolvent
// set larger than the original cost, so the simplifier abandons the
// elimination and leaves the pivot untouched.
func TestBVEAbandonsOnBlowup(t *testing.T) {
	d := cnf.NewDagCnf()
	// One clause per pair (a, b) with a in 2..6 and b in 7..11, 25 in all;
	// variable 1 is the shared pivot, positive when a is even (15 clauses)
	// and negative when a is odd (10 clauses). None of the 150 resolvents
	// is tautological, so the resolvent count passes the original cost of
	// 25 and elimination is abandoned.
	for i := 0; i < 11; i++ {
		d.NewVar()
	}
	nextVar := literal.Var(12)
	for a := literal.Var(2); a <= 6; a++ {
		for b := literal.Var(7); b <= 11; b++ {
			d.NewVarTo(nextVar)
			d.AddRel(nextVar, literal.LitVvec{literal.NewLitVec(
				lit(1, a%2 == 0),
				literal.NewLit(a, true),
				literal.NewLit(b, true),
				literal.NewLit(nextVar, true),
			)})
			nextVar++
		}
	}

	out, unsat := simplify.Simplify(d, nil, core.DefaultConfig())
	require.False(t, unsat)
	assert.True(t, out.HasRel(1) || countClausesMentioning(out, literal.Var(1)) > 0,
		"pivot with an oversized resolvent set must survive simplification")
}

func countClausesMentioning(d *cnf.DagCnf, target literal.Var) int {
	n := 0
	for v := literal.Var(0); v <= d.MaxVar(); v++ {
		for _, cls := range d.Group(v) {
			for _, l := range cls {
				if l.Var() == target {
					n++
					break
				}
			}
		}
	}
	return n
}

// Scenario 4: [1,2,3], [¬1,2,3] self-subsume down to [2,3].
func TestSelfSubsumption(t *testing.T) {
	d := cnf.NewDagCnf()
	for i := 0; i < 3; i++ {
		d.NewVar()
	}
	d.AddRel(3, literal.LitVvec{
		literal.NewLitVec(lit(1, true), lit(2, true), lit(3, true)),
		literal.NewLitVec(lit(1, false), lit(2, true), lit(3, true)),
	})

	out, unsat := simplify.Simplify(d, nil, core.DefaultConfig())
	require.False(t, unsat)

	var survivors []literal.LitVec
	for v := literal.Var(1); v <= out.MaxVar(); v++ {
		survivors = append(survivors, out.Group(v)...)
	}
	require.Len(t, survivors, 1)
	assert.True(t, survivors[0].Equal(literal.NewLitVec(lit(2, true), lit(3, true))))
}

func TestSimplifyKeepsFrozenUnit(t *testing.T) {
	d := cnf.NewDagCnf()
	d.NewVar()
	d.AddRel(1, literal.LitVvec{literal.NewLitVec(lit(1, true))})

	out, unsat := simplify.Simplify(d, []literal.Var{1}, core.DefaultConfig())
	require.False(t, unsat)
	require.True(t, out.HasRel(1))
	assert.True(t, out.Group(1)[0].Equal(literal.NewLitVec(lit(1, true))))
}

func TestSimplifyDetectsRefutation(t *testing.T) {
	d := cnf.NewDagCnf()
	d.NewVar()
	d.AddRel(1, literal.LitVvec{
		literal.NewLitVec(lit(1, true)),
		literal.NewLitVec(lit(1, false)),
	})

	_, unsat := simplify.Simplify(d, nil, core.DefaultConfig())
	assert.True(t, unsat)
}
