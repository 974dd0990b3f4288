// Package simplex options, statuses, snapshots and sentinel errors.
package simplex

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/lpviz/lpviz/lp"
)

// Sentinel errors for the engine.
var (
	// ErrNilProblem is returned when a nil *lp.Problem is passed.
	ErrNilProblem = errors.New("simplex: problem is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("simplex: invalid option supplied")

	// ErrInfeasible is returned by Feasible when Phase 1 cannot drive the
	// artificial variables to zero. Solve maps it to StatusInfeasible.
	ErrInfeasible = errors.New("simplex: problem is infeasible")

	// ErrUnbounded marks an entering column with no positive row
	// coefficient in a context where boundedness is guaranteed (Phase 1);
	// an unbounded Phase-2 direction is reported as StatusUnbounded instead.
	ErrUnbounded = errors.New("simplex: problem is unbounded")

	// ErrPivotLimit is returned when MaxPivots is exceeded.
	ErrPivotLimit = errors.New("simplex: pivot limit exceeded")

	// ErrSingularPivot is returned by Tableau.Apply for a pivot element too
	// close to zero.
	ErrSingularPivot = errors.New("simplex: pivot element within tolerance of zero")

	// ErrStepOutOfRange is returned by Result.StateAt for a bad index.
	ErrStepOutOfRange = errors.New("simplex: step index out of range")
)

// Status is the terminal outcome of a simplex run.
type Status int

const (
	// StatusOptimal — no negative reduced cost remains; Result.Point holds
	// an optimal vertex.
	StatusOptimal Status = iota

	// StatusUnbounded — the objective improves without bound along some
	// feasible direction.
	StatusUnbounded

	// StatusInfeasible — the feasible region is empty.
	StatusInfeasible
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusUnbounded:
		return "unbounded"
	default:
		return "infeasible"
	}
}

// IsOptimal reports whether the run found an optimum.
func (s Status) IsOptimal() bool { return s == StatusOptimal }

// IsUnbounded reports whether the objective is unbounded.
func (s Status) IsUnbounded() bool { return s == StatusUnbounded }

// IsInfeasible reports whether the feasible region is empty.
func (s Status) IsInfeasible() bool { return s == StatusInfeasible }

// Phase identifies which part of the two-phase method produced a State.
type Phase int

const (
	// PhaseOne — driving artificial variables out to find a first feasible
	// basis. Coordinates of PhaseOne states need not satisfy the original
	// constraints yet.
	PhaseOne Phase = iota + 1

	// PhaseTwo — optimizing the caller's objective over the feasible region.
	PhaseTwo
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	if p == PhaseOne {
		return "phase1"
	}

	return "phase2"
}

// State is an immutable snapshot of the run after a pivot (Step == 0 is the
// initial tableau). The full ordered sequence lives in Result.Steps so a UI
// can step forward and backward without re-running the algorithm.
type State struct {
	// Step is the snapshot's index in the run history.
	Step int

	// Phase tags which phase produced the snapshot.
	Phase Phase

	// Basis holds the basic column indices in ascending order
	// (0..dim-1 structural, then slack columns).
	Basis []int

	// Coords is the decision-variable vector of the current vertex
	// (length = problem dimension).
	Coords []float64

	// Objective is the caller's original objective evaluated at Coords.
	Objective float64
}

// Result is the outcome of one Solve run. Read-only once returned; safe to
// share with a visualization layer without locking.
type Result struct {
	// Status is the terminal state of the run.
	Status Status

	// Objective is the optimal value (meaningful when Status is
	// StatusOptimal).
	Objective float64

	// Point is the optimal vertex (length = problem dimension) when Status
	// is StatusOptimal, nil otherwise.
	Point []float64

	// Steps is the ordered pivot history, snapshot 0 being the initial
	// tableau.
	Steps []State
}

// StepCount returns the number of recorded snapshots.
func (r *Result) StepCount() int { return len(r.Steps) }

// StateAt returns snapshot i, serving PREVIOUS/NEXT navigation without any
// recomputation. Returns ErrStepOutOfRange when i is outside [0,StepCount).
func (r *Result) StateAt(i int) (State, error) {
	if i < 0 || i >= len(r.Steps) {
		return State{}, fmt.Errorf("%w: %d of %d", ErrStepOutOfRange, i, len(r.Steps))
	}

	return r.Steps[i], nil
}

// Option configures a simplex run via functional arguments. Invalid options
// are recorded and surfaced as ErrOptionViolation when the run starts.
type Option func(*Options)

// Options holds the tunable parameters of a run.
type Options struct {
	// Epsilon is the floating tolerance for reduced costs, ratio ties and
	// feasibility checks.
	Epsilon float64

	// MaxPivots, if > 0, aborts the run with ErrPivotLimit after that many
	// pivots. A value of 0 explicitly disables the guard.
	MaxPivots int

	// Logger receives Debug-level pivot traces. Defaults to zap.NewNop().
	Logger *zap.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with lp.DefaultEpsilon, a 10000-pivot
// guard, and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Epsilon:   lp.DefaultEpsilon,
		MaxPivots: 10000,
		Logger:    zap.NewNop(),
	}
}

// WithEpsilon overrides the floating tolerance.
//
//	e > 0:  use e
//	e <= 0: invalid option → ErrOptionViolation
func WithEpsilon(e float64) Option {
	return func(o *Options) {
		if e <= 0 {
			o.err = fmt.Errorf("%w: epsilon %v", ErrOptionViolation, e)

			return
		}
		o.Epsilon = e
	}
}

// WithMaxPivots bounds the number of pivots per run.
//
//	n > 0:  abort with ErrPivotLimit after n pivots
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxPivots(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: max pivots %d", ErrOptionViolation, n)

			return
		}
		o.MaxPivots = n
	}
}

// WithLogger injects a zap logger for Debug-level pivot traces.
// A nil logger is ignored and the no-op default kept.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// buildOptions folds opts over the defaults and reports the first recorded
// option violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}
