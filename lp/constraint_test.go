package lp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lpviz/lpviz/lp"
)

// TestConstraint_NormalizeLessEq: x + y ≤ 4 stays a single ≤ row.
func TestConstraint_NormalizeLessEq(t *testing.T) {
	c := lp.NewConstraint(lp.Var(0).Add(lp.Var(1)), lp.LessEq, lp.Const(4))
	rows := c.Normalize()
	require.Len(t, rows, 1)

	a, b := rows[0].Row(2)
	assert.Equal(t, []float64{1, 1}, a)
	assert.Equal(t, 4.0, b)
}

// TestConstraint_NormalizeGreaterEq: x ≥ 2 becomes −x ≤ −2.
func TestConstraint_NormalizeGreaterEq(t *testing.T) {
	c := lp.NewConstraint(lp.Var(0), lp.GreaterEq, lp.Const(2))
	rows := c.Normalize()
	require.Len(t, rows, 1)

	a, b := rows[0].Row(1)
	assert.Equal(t, []float64{-1}, a)
	assert.Equal(t, -2.0, b)
}

// TestConstraint_NormalizeEq: x = 3 splits into x ≤ 3 and −x ≤ −3.
func TestConstraint_NormalizeEq(t *testing.T) {
	c := lp.NewConstraint(lp.Var(0), lp.Eq, lp.Const(3))
	rows := c.Normalize()
	require.Len(t, rows, 2)

	a0, b0 := rows[0].Row(1)
	a1, b1 := rows[1].Row(1)
	assert.Equal(t, []float64{1}, a0)
	assert.Equal(t, 3.0, b0)
	assert.Equal(t, []float64{-1}, a1)
	assert.Equal(t, -3.0, b1)
}

// TestConstraint_Satisfied checks all three operators against the original
// relation, with boundary points inside tolerance.
func TestConstraint_Satisfied(t *testing.T) {
	le := lp.NewConstraint(lp.Var(0), lp.LessEq, lp.Const(1))
	ge := lp.NewConstraint(lp.Var(0), lp.GreaterEq, lp.Const(1))
	eq := lp.NewConstraint(lp.Var(0), lp.Eq, lp.Const(1))

	assert.True(t, le.Satisfied([]float64{0.5}, 0))
	assert.True(t, le.Satisfied([]float64{1 + 1e-12}, 0), "boundary within tolerance")
	assert.False(t, le.Satisfied([]float64{1.1}, 0))

	assert.True(t, ge.Satisfied([]float64{2}, 0))
	assert.False(t, ge.Satisfied([]float64{0.5}, 0))

	assert.True(t, eq.Satisfied([]float64{1}, 0))
	assert.False(t, eq.Satisfied([]float64{1.1}, 0))
}

// TestConstraint_String renders the canonical diff form.
func TestConstraint_String(t *testing.T) {
	c := lp.NewConstraint(lp.Var(0).Scale(2), lp.LessEq, lp.Const(10))
	assert.Equal(t, "-10 + 2x0 <= 0", c.String())
}
