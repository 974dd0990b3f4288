package simplex

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lpviz/lpviz/lp"
)

// quadProblem is the canonical scenario: maximize 3x+2y subject to
// x+y ≤ 4, x ≤ 2 and explicit nonnegativity rows.
func quadProblem(t *testing.T) *lp.Problem {
	t.Helper()
	p, err := lp.NewProblem(
		lp.Var(0).Scale(3).Add(lp.Var(1).Scale(2)),
		[]lp.Constraint{
			lp.NewConstraint(lp.Var(0).Add(lp.Var(1)), lp.LessEq, lp.Const(4)),
			lp.NewConstraint(lp.Var(0), lp.LessEq, lp.Const(2)),
			lp.NewConstraint(lp.Var(0), lp.GreaterEq, lp.Const(0)),
			lp.NewConstraint(lp.Var(1), lp.GreaterEq, lp.Const(0)),
		},
		lp.Maximize, 2,
	)
	require.NoError(t, err)

	return p
}

// identityColumns checks the reduced-row-echelon invariant: every basic
// column is 1 in its own row and 0 everywhere else (within eps).
func identityColumns(t *testing.T, tb *Tableau) {
	t.Helper()
	for r, col := range tb.basis {
		for i := 0; i < tb.m; i++ {
			want := 0.0
			if i == r {
				want = 1.0
			}
			if got := tb.a.At(i, col); math.Abs(got-want) > tb.eps {
				t.Fatalf("basis col %d at row %d = %v; want %v", col, i, got, want)
			}
		}
		if math.Abs(tb.obj[col]) > tb.eps {
			t.Fatalf("objective row not eliminated for basic col %d: %v", col, tb.obj[col])
		}
	}
}

// TestTableau_PivotIdentityInvariant verifies the invariant after every
// pivot of a full optimizing run.
func TestTableau_PivotIdentityInvariant(t *testing.T) {
	tb := newTableau(quadProblem(t), DefaultOptions())
	require.Equal(t, 0, tb.art, "all rhs nonnegative, no artificials expected")

	tb.setObjective([]float64{3, 2})
	identityColumns(t, tb)

	for steps := 0; ; steps++ {
		require.Less(t, steps, 50, "run did not terminate")
		col := tb.entering()
		if col < 0 {
			break
		}
		row := tb.leaving(col)
		require.GreaterOrEqual(t, row, 0, "bounded scenario must have a leaving row")
		tb.pivot(row, col)
		identityColumns(t, tb)
		assert.True(t, tb.FeasibleNow(), "pivot left a negative basic value")
	}

	assert.InDelta(t, 2.0, tb.Vertex()[0], 1e-9)
	assert.InDelta(t, 2.0, tb.Vertex()[1], 1e-9)
}

// TestTableau_EnteringTieBreak: equal reduced costs resolve to the lowest
// column index.
func TestTableau_EnteringTieBreak(t *testing.T) {
	p, err := lp.NewProblem(
		lp.Var(0).Add(lp.Var(1)),
		[]lp.Constraint{
			lp.NewConstraint(lp.Var(0).Add(lp.Var(1)), lp.LessEq, lp.Const(1)),
		},
		lp.Maximize, 2,
	)
	require.NoError(t, err)

	tb := newTableau(p, DefaultOptions())
	tb.setObjective([]float64{1, 1})
	assert.Equal(t, 0, tb.entering(), "tie between x0 and x1 must pick x0")
}

// TestTableau_AdjacentPivots_Deterministic checks stable enumeration order
// and that every enumerated pivot is applicable and stays feasible.
func TestTableau_AdjacentPivots_Deterministic(t *testing.T) {
	tb, err := Feasible(quadProblem(t))
	require.NoError(t, err)

	first := tb.AdjacentPivots()
	second := tb.AdjacentPivots()
	require.Equal(t, first, second, "enumeration must be deterministic")
	require.NotEmpty(t, first)

	for _, pv := range first {
		c := tb.Clone()
		require.NoError(t, c.Apply(pv))
		assert.True(t, c.FeasibleNow(), "pivot %+v broke feasibility", pv)
	}
}

// TestTableau_Apply_Singular rejects out-of-range and non-positive pivots.
func TestTableau_Apply_Singular(t *testing.T) {
	tb, err := Feasible(quadProblem(t))
	require.NoError(t, err)

	assert.ErrorIs(t, tb.Apply(Pivot{Col: -1, Row: 0}), ErrSingularPivot)
	assert.ErrorIs(t, tb.Apply(Pivot{Col: 0, Row: tb.m}), ErrSingularPivot)

	// Column 0 has coefficient -1 in the x ≥ 0 row.
	var negRow int
	for r := 0; r < tb.m; r++ {
		if tb.a.At(r, 0) < 0 {
			negRow = r

			break
		}
	}
	assert.ErrorIs(t, tb.Apply(Pivot{Col: 0, Row: negRow}), ErrSingularPivot)
}

// TestTableau_CloneIndependence: mutations of a clone never leak back.
func TestTableau_CloneIndependence(t *testing.T) {
	tb, err := Feasible(quadProblem(t))
	require.NoError(t, err)

	before := tb.Basis()
	c := tb.Clone()
	pvs := c.AdjacentPivots()
	require.NotEmpty(t, pvs)
	require.NoError(t, c.Apply(pvs[0]))

	assert.Equal(t, before, tb.Basis(), "Apply on clone mutated the original")
	assert.NotEqual(t, before, c.Basis())
}

// TestTableau_PhaseOneArtificials: x ≥ 1 needs an artificial and lands on a
// feasible basis with the artificial columns stripped.
func TestTableau_PhaseOneArtificials(t *testing.T) {
	p, err := lp.NewProblem(
		lp.Var(0),
		[]lp.Constraint{
			lp.NewConstraint(lp.Var(0), lp.GreaterEq, lp.Const(1)),
			lp.NewConstraint(lp.Var(0), lp.LessEq, lp.Const(3)),
		},
		lp.Maximize, 1,
	)
	require.NoError(t, err)

	tb, err := Feasible(p)
	require.NoError(t, err)
	assert.Equal(t, 0, tb.art)
	assert.Equal(t, tb.n+tb.slacks, tb.cols, "artificial columns must be gone")
	assert.True(t, tb.FeasibleNow())
	assert.GreaterOrEqual(t, tb.Vertex()[0], 1.0-1e-9, "seed vertex must satisfy x >= 1")
}
