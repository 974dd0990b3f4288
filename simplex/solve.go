// Package simplex - the two-phase run loop.
package simplex

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/lpviz/lpviz/lp"
)

// runner holds the mutable state of one Solve/Feasible run.
type runner struct {
	t      *Tableau
	o      Options
	p      *lp.Problem
	pivots int
	steps  []State
	snap   bool // record State snapshots
}

// Solve runs the full simplex state machine on p:
//
//	Phase1 (when artificial variables are needed) → Phase2 → terminal status.
//
// The returned Result carries the terminal Status (Optimal, Unbounded or
// Infeasible — outcomes, not errors), the optimal point and value for
// optimal runs, and one State snapshot for the initial tableau plus one per
// pivot in either phase.
//
// Errors: ErrNilProblem, ErrOptionViolation, ErrPivotLimit.
func Solve(p *lp.Problem, opts ...Option) (*Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNilProblem
	}

	r := &runner{t: newTableau(p, o), o: o, p: p, snap: true}
	r.record(r.startPhase())

	if err = r.phaseOne(); err != nil {
		if errors.Is(err, ErrInfeasible) {
			o.Logger.Debug("run terminated", zap.Stringer("status", StatusInfeasible))

			return &Result{Status: StatusInfeasible, Steps: r.steps}, nil
		}

		return nil, err
	}

	r.t.setObjective(objectiveVector(p))
	status, err := r.phaseTwo()
	if err != nil {
		return nil, err
	}
	o.Logger.Debug("run terminated",
		zap.Stringer("status", status),
		zap.Int("pivots", r.pivots))

	res := &Result{Status: status, Steps: r.steps}
	if status == StatusOptimal {
		res.Point = r.t.Vertex()
		res.Objective = p.Objective.Evaluate(res.Point)
	}

	return res, nil
}

// Feasible runs only Phase 1 and returns the tableau reduced to an initial
// basic feasible solution, with artificial columns stripped and a zeroed
// objective row. This is the seed for explore's basis-graph walk.
//
// Errors: ErrNilProblem, ErrOptionViolation, ErrInfeasible, ErrPivotLimit.
func Feasible(p *lp.Problem, opts ...Option) (*Tableau, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNilProblem
	}

	r := &runner{t: newTableau(p, o), o: o, p: p}
	if err = r.phaseOne(); err != nil {
		return nil, err
	}
	r.t.setObjective(nil)

	return r.t, nil
}

// startPhase tags the initial snapshot: PhaseOne when artificials exist.
func (r *runner) startPhase() Phase {
	if r.t.art > 0 {
		return PhaseOne
	}

	return PhaseTwo
}

// objectiveVector extracts the structural cost vector in maximization sense
// (negated for Minimize; the run always maximizes internally).
func objectiveVector(p *lp.Problem) []float64 {
	c := make([]float64, p.Dim)
	for j := 0; j < p.Dim; j++ {
		c[j] = p.Objective.Coefficient(j)
		if p.Direction == lp.Minimize {
			c[j] = -c[j]
		}
	}

	return c
}

// record appends one immutable snapshot of the current tableau.
func (r *runner) record(phase Phase) {
	if !r.snap {
		return
	}
	coords := r.t.Vertex()
	r.steps = append(r.steps, State{
		Step:      len(r.steps),
		Phase:     phase,
		Basis:     r.t.Basis(),
		Coords:    coords,
		Objective: r.p.Objective.Evaluate(coords),
	})
}

// budget enforces the MaxPivots guard.
func (r *runner) budget() error {
	r.pivots++
	if r.o.MaxPivots > 0 && r.pivots > r.o.MaxPivots {
		return fmt.Errorf("%w: %d", ErrPivotLimit, r.o.MaxPivots)
	}

	return nil
}

// phaseOne drives Σ artificials to zero, then pivots residual artificials
// out of the basis (dropping rows that turn out redundant) and strips the
// artificial columns. No-op when the initial slack basis is already
// feasible.
func (r *runner) phaseOne() error {
	t := r.t
	if t.art == 0 {
		return nil
	}
	t.setPhaseOneObjective()

	for {
		col := t.entering()
		if col < 0 {
			break
		}
		row := t.leaving(col)
		if row < 0 {
			// Phase 1 maximizes -Σ artificials, bounded above by zero; a
			// missing leaving row means the tableau is numerically broken.
			return fmt.Errorf("simplex: phase 1: %w", ErrUnbounded)
		}
		if err := r.budget(); err != nil {
			return err
		}
		t.pivot(row, col)
		r.record(PhaseOne)
	}

	if inf := t.infeasibility(); inf > r.o.Epsilon {
		return fmt.Errorf("%w: residual infeasibility %g", ErrInfeasible, inf)
	}
	r.o.Logger.Debug("phase 1 complete", zap.Int("pivots", r.pivots))

	// Pivot zero-valued artificials out of the basis where possible; rows
	// with no eligible element are redundant and dropped.
	for row := t.m - 1; row >= 0; row-- {
		if t.basis[row] < t.n+t.slacks {
			continue
		}
		col := -1
		for j := 0; j < t.n+t.slacks; j++ {
			if !t.isBasic(j) && absAbove(t.a.At(row, j), r.o.Epsilon) {
				col = j

				break
			}
		}
		if col < 0 {
			t.dropRow(row)

			continue
		}
		if err := r.budget(); err != nil {
			return err
		}
		t.pivot(row, col)
		r.record(PhaseOne)
	}
	t.stripArtificials()

	return nil
}

// absAbove reports |v| > eps.
func absAbove(v, eps float64) bool { return v > eps || v < -eps }

// phaseTwo optimizes the installed objective to termination: StatusOptimal
// when no negative reduced cost remains, StatusUnbounded when an entering
// column has no positive coefficient in any row.
func (r *runner) phaseTwo() (Status, error) {
	t := r.t
	for {
		col := t.entering()
		if col < 0 {
			return StatusOptimal, nil
		}
		row := t.leaving(col)
		if row < 0 {
			r.o.Logger.Debug("unbounded direction", zap.Int("col", col))

			return StatusUnbounded, nil
		}
		if err := r.budget(); err != nil {
			return StatusUnbounded, err
		}
		t.pivot(row, col)
		r.record(PhaseTwo)
	}
}
