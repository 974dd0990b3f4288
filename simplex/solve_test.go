package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lpviz/lpviz/lp"
	"github.com/lpviz/lpviz/simplex"
)

const eps = 1e-9

// mustProblem builds a problem and fails the test on construction errors.
func mustProblem(t *testing.T, obj lp.LinearFunction, cs []lp.Constraint, dir lp.Direction, dim int) *lp.Problem {
	t.Helper()
	p, err := lp.NewProblem(obj, cs, dir, dim)
	require.NoError(t, err)

	return p
}

// TestSolve_EndToEnd: maximize 3x+2y s.t. x+y≤4, x≤2, x≥0, y≥0.
// Expected optimum (2,2) with value 10.
func TestSolve_EndToEnd(t *testing.T) {
	p := mustProblem(t,
		lp.Var(0).Scale(3).Add(lp.Var(1).Scale(2)),
		[]lp.Constraint{
			lp.NewConstraint(lp.Var(0).Add(lp.Var(1)), lp.LessEq, lp.Const(4)),
			lp.NewConstraint(lp.Var(0), lp.LessEq, lp.Const(2)),
			lp.NewConstraint(lp.Var(0), lp.GreaterEq, lp.Const(0)),
			lp.NewConstraint(lp.Var(1), lp.GreaterEq, lp.Const(0)),
		},
		lp.Maximize, 2)

	res, err := simplex.Solve(p)
	require.NoError(t, err)
	require.Equal(t, simplex.StatusOptimal, res.Status)
	assert.InDelta(t, 2.0, res.Point[0], eps)
	assert.InDelta(t, 2.0, res.Point[1], eps)
	assert.InDelta(t, 10.0, res.Objective, eps)

	// Every Phase-2 snapshot sits inside the original feasible region.
	for _, st := range res.Steps {
		if st.Phase != simplex.PhaseTwo {
			continue
		}
		assert.True(t, p.Feasible(st.Coords, eps), "step %d at %v leaves the region", st.Step, st.Coords)
	}

	// Monotone objective during Phase 2 of a maximization run.
	prev := -1e300
	for _, st := range res.Steps {
		if st.Phase != simplex.PhaseTwo {
			continue
		}
		assert.GreaterOrEqual(t, st.Objective, prev-eps,
			"objective regressed at step %d", st.Step)
		prev = st.Objective
	}
}

// TestSolve_Unbounded: maximize x subject only to x ≥ 0.
func TestSolve_Unbounded(t *testing.T) {
	p := mustProblem(t,
		lp.Var(0),
		[]lp.Constraint{lp.NewConstraint(lp.Var(0), lp.GreaterEq, lp.Const(0))},
		lp.Maximize, 1)

	res, err := simplex.Solve(p)
	require.NoError(t, err)
	assert.Equal(t, simplex.StatusUnbounded, res.Status)
	assert.True(t, res.Status.IsUnbounded())
	assert.Nil(t, res.Point)
}

// TestSolve_Infeasible: x ≥ 2 and x ≤ 1 admit no point.
func TestSolve_Infeasible(t *testing.T) {
	p := mustProblem(t,
		lp.Var(0),
		[]lp.Constraint{
			lp.NewConstraint(lp.Var(0), lp.GreaterEq, lp.Const(2)),
			lp.NewConstraint(lp.Var(0), lp.LessEq, lp.Const(1)),
		},
		lp.Maximize, 1)

	res, err := simplex.Solve(p)
	require.NoError(t, err)
	assert.Equal(t, simplex.StatusInfeasible, res.Status)
	assert.True(t, res.Status.IsInfeasible())

	// Feasible surfaces the same outcome as a sentinel for the explorer.
	_, err = simplex.Feasible(p)
	assert.ErrorIs(t, err, simplex.ErrInfeasible)
}

// TestSolve_Minimize: minimize x+y s.t. x+y ≥ 2 → optimum value 2.
func TestSolve_Minimize(t *testing.T) {
	p := mustProblem(t,
		lp.Var(0).Add(lp.Var(1)),
		[]lp.Constraint{
			lp.NewConstraint(lp.Var(0).Add(lp.Var(1)), lp.GreaterEq, lp.Const(2)),
		},
		lp.Minimize, 2)

	res, err := simplex.Solve(p)
	require.NoError(t, err)
	require.Equal(t, simplex.StatusOptimal, res.Status)
	assert.InDelta(t, 2.0, res.Objective, eps)
	assert.InDelta(t, 2.0, res.Point[0]+res.Point[1], eps)
}

// TestSolve_EqualityConstraint: maximize y with y = 1, y ≤ 3.
func TestSolve_EqualityConstraint(t *testing.T) {
	p := mustProblem(t,
		lp.Var(0),
		[]lp.Constraint{
			lp.NewConstraint(lp.Var(0), lp.Eq, lp.Const(1)),
			lp.NewConstraint(lp.Var(0), lp.LessEq, lp.Const(3)),
		},
		lp.Maximize, 1)

	res, err := simplex.Solve(p)
	require.NoError(t, err)
	require.Equal(t, simplex.StatusOptimal, res.Status)
	assert.InDelta(t, 1.0, res.Point[0], eps)
	assert.InDelta(t, 1.0, res.Objective, eps)
}

// TestSolve_ObjectiveConstantCarried: a constant term shifts the reported
// value but not the optimal vertex.
func TestSolve_ObjectiveConstantCarried(t *testing.T) {
	p := mustProblem(t,
		lp.New(7, map[int]float64{0: 1}),
		[]lp.Constraint{lp.NewConstraint(lp.Var(0), lp.LessEq, lp.Const(3))},
		lp.Maximize, 1)

	res, err := simplex.Solve(p)
	require.NoError(t, err)
	require.Equal(t, simplex.StatusOptimal, res.Status)
	assert.InDelta(t, 3.0, res.Point[0], eps)
	assert.InDelta(t, 10.0, res.Objective, eps)
}

// TestSolve_Errors covers misuse and option violations.
func TestSolve_Errors(t *testing.T) {
	_, err := simplex.Solve(nil)
	assert.ErrorIs(t, err, simplex.ErrNilProblem)

	p := mustProblem(t,
		lp.Var(0),
		[]lp.Constraint{lp.NewConstraint(lp.Var(0), lp.LessEq, lp.Const(1))},
		lp.Maximize, 1)

	_, err = simplex.Solve(p, simplex.WithEpsilon(-1))
	assert.ErrorIs(t, err, simplex.ErrOptionViolation)

	_, err = simplex.Solve(p, simplex.WithMaxPivots(-1))
	assert.ErrorIs(t, err, simplex.ErrOptionViolation)
}

// TestSolve_PivotLimit aborts with ErrPivotLimit on an absurdly low budget.
func TestSolve_PivotLimit(t *testing.T) {
	p := mustProblem(t,
		lp.Var(0).Scale(3).Add(lp.Var(1).Scale(2)),
		[]lp.Constraint{
			lp.NewConstraint(lp.Var(0).Add(lp.Var(1)), lp.LessEq, lp.Const(4)),
			lp.NewConstraint(lp.Var(0), lp.LessEq, lp.Const(2)),
		},
		lp.Maximize, 2)

	_, err := simplex.Solve(p, simplex.WithMaxPivots(1))
	assert.ErrorIs(t, err, simplex.ErrPivotLimit)
}

// TestResult_Stepping exercises StepCount/StateAt, the PREVIOUS/NEXT API.
func TestResult_Stepping(t *testing.T) {
	p := mustProblem(t,
		lp.Var(0).Scale(3).Add(lp.Var(1).Scale(2)),
		[]lp.Constraint{
			lp.NewConstraint(lp.Var(0).Add(lp.Var(1)), lp.LessEq, lp.Const(4)),
			lp.NewConstraint(lp.Var(0), lp.LessEq, lp.Const(2)),
		},
		lp.Maximize, 2)

	res, err := simplex.Solve(p)
	require.NoError(t, err)
	require.GreaterOrEqual(t, res.StepCount(), 2, "at least initial state and one pivot")

	for i := 0; i < res.StepCount(); i++ {
		st, err := res.StateAt(i)
		require.NoError(t, err)
		assert.Equal(t, i, st.Step)
		assert.Len(t, st.Coords, 2)
		assert.NotEmpty(t, st.Basis)
	}

	_, err = res.StateAt(-1)
	assert.ErrorIs(t, err, simplex.ErrStepOutOfRange)
	_, err = res.StateAt(res.StepCount())
	assert.ErrorIs(t, err, simplex.ErrStepOutOfRange)

	// First snapshot is the initial tableau at the origin.
	first, _ := res.StateAt(0)
	assert.Equal(t, []float64{0, 0}, first.Coords)
}

// TestSolve_Degenerate: redundant constraints stacked on the same vertex
// must still terminate under the index tie-break rules.
func TestSolve_Degenerate(t *testing.T) {
	p := mustProblem(t,
		lp.Var(0).Add(lp.Var(1)),
		[]lp.Constraint{
			lp.NewConstraint(lp.Var(0), lp.LessEq, lp.Const(1)),
			lp.NewConstraint(lp.Var(0), lp.LessEq, lp.Const(1)), // duplicate
			lp.NewConstraint(lp.Var(0).Add(lp.Var(1)), lp.LessEq, lp.Const(1)),
		},
		lp.Maximize, 2)

	res, err := simplex.Solve(p)
	require.NoError(t, err)
	require.Equal(t, simplex.StatusOptimal, res.Status)
	assert.InDelta(t, 1.0, res.Objective, eps)
}
