// Package explore options, results and sentinel errors for the basis-graph
// walk.
package explore

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/lpviz/lpviz/lp"
)

// Sentinel errors for exploration.
var (
	// ErrProblemNil is returned if a nil problem pointer is passed.
	ErrProblemNil = errors.New("explore: problem is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("explore: invalid option supplied")

	// ErrBasisLimit is returned when the walk exceeds MaxBases.
	ErrBasisLimit = errors.New("explore: basis limit exceeded")
)

// Vertex is one extreme point of the feasible polyhedron.
type Vertex struct {
	// Coords is the decision-variable coordinate vector
	// (length = problem dimension).
	Coords []float64

	// Basis is the first-discovered basis representing this point, in
	// ascending column order; degenerate points keep only the first.
	Basis []int
}

// Result is the outcome of one exploration. Read-only once returned.
type Result struct {
	// Vertices are the deduplicated extreme points in BFS discovery order.
	Vertices []Vertex

	// BasisCount is the number of distinct feasible bases visited; it
	// exceeds len(Vertices) exactly when the polyhedron is degenerate.
	BasisCount int
}

// Points returns just the coordinate vectors, in discovery order.
func (r *Result) Points() [][]float64 {
	pts := make([][]float64, len(r.Vertices))
	for i, v := range r.Vertices {
		pts[i] = v.Coords
	}

	return pts
}

// Option configures exploration via functional arguments. Invalid options
// are recorded and surfaced as ErrOptionViolation when Explore is invoked.
type Option func(*Options)

// Options holds parameters and callbacks of the walk.
type Options struct {
	// Ctx allows cancellation of long exhaustive walks.
	Ctx context.Context

	// Epsilon is the floating tolerance for feasibility and coordinate
	// deduplication.
	Epsilon float64

	// MaxBases, if > 0, aborts with ErrBasisLimit once more bases than this
	// have been visited. A value of 0 explicitly disables the guard.
	MaxBases int

	// OnVertex is called once per newly discovered (deduplicated) vertex.
	OnVertex func(v Vertex)

	// Logger receives Debug-level discovery traces. Defaults to zap.NewNop().
	Logger *zap.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, lp.DefaultEpsilon,
// a 100000-basis guard, a no-op hook and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Epsilon:  lp.DefaultEpsilon,
		MaxBases: 100000,
		OnVertex: func(Vertex) {},
		Logger:   zap.NewNop(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
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

// WithMaxBases bounds the number of visited bases.
//
//	n > 0:  abort with ErrBasisLimit beyond n bases
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxBases(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: max bases %d", ErrOptionViolation, n)

			return
		}
		o.MaxBases = n
	}
}

// WithOnVertex registers a callback fired once per discovered vertex.
func WithOnVertex(fn func(v Vertex)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVertex = fn
		}
	}
}

// WithLogger injects a zap logger for Debug-level discovery traces.
// A nil logger is ignored and the no-op default kept.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
