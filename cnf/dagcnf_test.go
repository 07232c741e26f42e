package cnf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xDarkicex/logicform/cnf"
	"github.com/xDarkicex/logicform/container"
	"github.com/xDarkicex/logicform/literal"
)

func TestDagCnfNewAndLastLiteralConvention(t *testing.T) {
	d := cnf.NewDagCnf()
	v1 := d.NewVar()
	v2 := d.NewVar()
	n := d.NewAnd(v1.Lit(), v2.Lit())

	require.True(t, d.HasRel(n.Var()))
	for _, cls := range d.Group(n.Var()) {
		assert.Equal(t, n.Var(), cls.Last().Var(), "defining variable must be the clause's last literal")
	}
	assert.ElementsMatch(t, []literal.Var{v1, v2}, d.Dep(n.Var()))
}

func TestDagCnfAddRelRejectsSecondAttach(t *testing.T) {
	d := cnf.NewDagCnf()
	v1 := d.NewVar()
	n := d.NewVar()
	d.AddRel(n, literal.LitVvec{literal.NewLitVec(v1.Lit(), n.Lit())})
	assert.Panics(t, func() {
		d.AddRel(n, literal.LitVvec{literal.NewLitVec(v1.Lit().Not(), n.Lit())})
	})
}

func TestDagCnfFaninsFanoutsRoot(t *testing.T) {
	d := cnf.NewDagCnf()
	v1 := d.NewVar()
	v2 := d.NewVar()
	v3 := d.NewVar()
	n1 := d.NewAnd(v1.Lit(), v2.Lit())
	n2 := d.NewOr(n1, v3.Lit())

	fanins := d.Fanins(n2.Var())
	assert.True(t, fanins[n1.Var()])
	assert.True(t, fanins[v1])
	assert.True(t, fanins[v2])
	assert.True(t, fanins[v3])

	fanouts := d.Fanouts(v1)
	assert.True(t, fanouts[n1.Var()])
	assert.True(t, fanouts[n2.Var()])

	root := d.Root()
	assert.True(t, root[n2.Var()])
	assert.False(t, root[n1.Var()], "n1 is reached by n2, so it is not a root")
}

// Scenario 5 (spec §8): build n3 = n1 ∧ n2 over variables {0,1,2,3}, drop n1
// from the seed list but keep n3 — rearrange must still pull n1 in
// transitively and renumber order-preservingly to {0,1,2,3}.
func TestDagCnfRearrangePullsInTransitiveDeps(t *testing.T) {
	d := cnf.NewDagCnf()
	n1 := d.NewVar().Lit()
	n2 := d.NewVar().Lit()
	n3 := d.NewAnd(n1, n2)

	vvmap := d.Rearrange(n3.Var())

	assert.Equal(t, literal.Var(0), vvmap.Map(literal.ConstVar))
	seen := map[literal.Var]bool{}
	for _, v := range []literal.Var{literal.ConstVar, n1.Var(), n2.Var(), n3.Var()} {
		seen[vvmap.Map(v)] = true
	}
	assert.Len(t, seen, 4, "all four variables must receive distinct images")
	assert.Less(t, vvmap.Map(n1.Var()), vvmap.Map(n3.Var()))
	assert.Less(t, vvmap.Map(n2.Var()), vvmap.Map(n3.Var()))
}

// TestDagCnfReplaceRewritesClausesAndDeps checks the common case: v1 is
// replaced by v4's literal everywhere it occurs, both in n's clause body
// and in n's dependency list, and v1 itself is cleared since it is now
// superseded. v4 is allocated first so that it is the smaller variable,
// as Replace requires of every replacement target.
func TestDagCnfReplaceRewritesClausesAndDeps(t *testing.T) {
	d := cnf.NewDagCnf()
	v4 := d.NewVar()
	v1 := d.NewVar()
	v2 := d.NewVar()
	n := d.NewAnd(v1.Lit(), v2.Lit())

	m := container.NewVarLMap()
	m.Set(v1, v4.Lit())
	d.Replace(m)

	require.False(t, d.HasRel(v1), "v1 must be cleared once superseded")
	cls := d.Group(n.Var())[0]
	assert.True(t, cls.Contains(v4.Lit()))
	assert.False(t, cls.Contains(v1.Lit()))
	assert.ElementsMatch(t, []literal.Var{v4, v2}, d.Dep(n.Var()))
}

// TestDagCnfReplaceToConstTrueIsNotMistakenForUnmapped is the regression
// case: replacing a variable with ConstVar's positive literal (value 0)
// must still be treated as present in the map, even though 0 is also the
// zero value VarLMap.Map returns for an unmapped variable.
func TestDagCnfReplaceToConstTrueIsNotMistakenForUnmapped(t *testing.T) {
	d := cnf.NewDagCnf()
	v1 := d.NewVar()
	v2 := d.NewVar()
	n := d.NewAnd(v1.Lit(), v2.Lit())

	m := container.NewVarLMap()
	m.Set(v1, literal.ConstLit(true))
	require.True(t, m.Has(v1))
	require.Equal(t, literal.Lit(0), m.Map(v1), "ConstLit(true) must read as the zero Lit")

	d.Replace(m)

	require.False(t, d.HasRel(v1), "v1 must be cleared once superseded, even though it maps to the zero Lit")
	cls := d.Group(n.Var())[0]
	assert.True(t, cls.Contains(literal.ConstLit(true)), "v1's occurrence must be rewritten to ConstVar's positive literal")
	assert.False(t, cls.Contains(v1.Lit()))
	assert.ElementsMatch(t, []literal.Var{literal.ConstVar, v2}, d.Dep(n.Var()))
}

func TestDagCnfPolFilterDropsOneDirection(t *testing.T) {
	d := cnf.NewDagCnf()
	v1 := d.NewVar()
	n := d.NewVar()
	d.AddRel(n, literal.LitVvec{
		literal.NewLitVec(v1.Lit(), n.Lit()),
		literal.NewLitVec(v1.Lit().Not(), n.Lit().Not()),
	})
	d.PolFilter(false)
	for _, cls := range d.Group(n) {
		assert.True(t, cls.Last().Polarity())
	}
}
