// Package solve options, scene model and sentinel errors.
package solve

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/lpviz/lpviz/explore"
	"github.com/lpviz/lpviz/geom"
	"github.com/lpviz/lpviz/hull"
	"github.com/lpviz/lpviz/lp"
	"github.com/lpviz/lpviz/simplex"
)

// Sentinel errors for the façade.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solve: invalid option supplied")

	// ErrNoGeometry is returned by StepPoint for problems of dimension
	// four or higher, which render as a textual Trace instead.
	ErrNoGeometry = errors.New("solve: no geometry above three dimensions")
)

// TraceRecord is the textual-display surrogate for one step of a
// high-dimensional run (Dim ≥ 4).
type TraceRecord struct {
	// Step is the snapshot index in the run history.
	Step int

	// Basis holds the basic column indices in ascending order.
	Basis []int

	// Coords is the decision-variable vector at this step.
	Coords []float64

	// Objective is the original objective evaluated at Coords.
	Objective float64
}

// Scene bundles everything a renderer needs for one solved problem.
// Read-only once returned.
type Scene struct {
	// Dim is the problem dimension the geometry was dispatched on.
	Dim int

	// Status is the terminal outcome of the simplex run.
	Status simplex.Status

	// Objective and Point describe the optimum for StatusOptimal runs.
	Objective float64
	Point     []float64

	// Steps is the full ordered pivot history.
	Steps []simplex.State

	// Vertices are all reachable extreme points (empty for infeasible runs).
	Vertices []explore.Vertex

	// Polygon is the ordered 2D boundary (Dim == 2, StatusOptimal only).
	Polygon []geom.Point

	// Triangles is the outward-wound 3D hull (Dim == 3, StatusOptimal only).
	Triangles []hull.Triangle

	// Trace carries per-step textual records (Dim ≥ 4 only).
	Trace []TraceRecord
}

// StepCount returns the number of recorded snapshots.
func (s *Scene) StepCount() int { return len(s.Steps) }

// StateAt returns snapshot i without recomputation; this is how
// PREVIOUS/NEXT navigation is served.
func (s *Scene) StateAt(i int) (simplex.State, error) {
	if i < 0 || i >= len(s.Steps) {
		return simplex.State{}, fmt.Errorf("%w: %d of %d", simplex.ErrStepOutOfRange, i, len(s.Steps))
	}

	return s.Steps[i], nil
}

// StepPoint returns the current-vertex marker for snapshot i as a drawable
// point (Z zero for 2D problems). Returns ErrNoGeometry for Dim ≥ 4.
func (s *Scene) StepPoint(i int) (geom.Point, error) {
	if s.Dim > 3 {
		return geom.Point{}, ErrNoGeometry
	}
	st, err := s.StateAt(i)
	if err != nil {
		return geom.Point{}, err
	}

	return geom.FromCoords(st.Coords), nil
}

// Option configures Build via functional arguments. Invalid options are
// recorded and surfaced as ErrOptionViolation when Build is invoked.
type Option func(*Options)

// Options holds the tunables forwarded to the simplex run and the
// exploration walk.
type Options struct {
	// Ctx bounds the exploration phase.
	Ctx context.Context

	// Epsilon is the shared floating tolerance.
	Epsilon float64

	// MaxPivots bounds the simplex run (0 = no limit).
	MaxPivots int

	// MaxBases bounds the exploration walk (0 = no limit).
	MaxBases int

	// Logger receives Debug traces from both phases. Defaults to
	// zap.NewNop().
	Logger *zap.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions mirrors the sub-package defaults.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Epsilon:   lp.DefaultEpsilon,
		MaxPivots: 10000,
		MaxBases:  100000,
		Logger:    zap.NewNop(),
	}
}

// WithContext sets a custom context for cancelling the exploration walk.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithEpsilon overrides the shared floating tolerance (must be > 0).
func WithEpsilon(e float64) Option {
	return func(o *Options) {
		if e <= 0 {
			o.err = fmt.Errorf("%w: epsilon %v", ErrOptionViolation, e)

			return
		}
		o.Epsilon = e
	}
}

// WithMaxPivots bounds the simplex run (0 = no limit, negative invalid).
func WithMaxPivots(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: max pivots %d", ErrOptionViolation, n)

			return
		}
		o.MaxPivots = n
	}
}

// WithMaxBases bounds the exploration walk (0 = no limit, negative invalid).
func WithMaxBases(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: max bases %d", ErrOptionViolation, n)

			return
		}
		o.MaxBases = n
	}
}

// WithLogger injects a zap logger shared by both phases.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
