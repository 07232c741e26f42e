package cnf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xDarkicex/logicform/cnf"
	"github.com/xDarkicex/logicform/literal"
)

func TestCnfNewCarriesConstUnit(t *testing.T) {
	c := cnf.NewCnf()
	require.Equal(t, 1, c.Len())
	assert.Equal(t, literal.ConstVar, c.MaxVar())
	assert.True(t, c.Clauses()[0].Equal(literal.NewLitVec(literal.ConstLit(true))))
}

func TestCnfArrangeCompactsDomain(t *testing.T) {
	c := cnf.NewCnf()
	c.NewVarTo(literal.Var(10))
	c.AddClause(literal.NewLit(3, true), literal.NewLit(7, false))
	c.AddClause(literal.NewLit(7, true))

	m := c.Arrange()
	assert.Equal(t, literal.Var(2), c.MaxVar(), "only ConstVar, 3 and 7 are referenced")
	assert.Equal(t, literal.Var(0), m[literal.ConstVar])
	assert.Less(t, m[literal.Var(3)], m[literal.Var(7)])
}
