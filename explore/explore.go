// Package explore - breadth-first walk over the graph of feasible bases.
package explore

import (
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/lpviz/lpviz/lp"
	"github.com/lpviz/lpviz/simplex"
)

// walker encapsulates the mutable BFS state of one exploration.
type walker struct {
	opts    Options
	queue   []*simplex.Tableau
	visited map[string]bool // canonical basis key → seen
	coords  map[string]bool // snapped coordinate key → reported
	res     *Result
}

// Explore discovers every extreme point of p's feasible region reachable by
// single pivots from the Phase-1 seed basis, applying any number of
// functional Options.
//
// Returns ErrProblemNil or ErrOptionViolation for invalid input, a wrapped
// simplex.ErrInfeasible when the region is empty, ErrBasisLimit when the
// MaxBases guard trips, or the context's error on cancellation.
func Explore(p *lp.Problem, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if p == nil {
		return nil, ErrProblemNil
	}

	seed, err := simplex.Feasible(p,
		simplex.WithEpsilon(o.Epsilon),
		simplex.WithLogger(o.Logger))
	if err != nil {
		return nil, err
	}

	w := &walker{
		opts:    o,
		visited: make(map[string]bool),
		coords:  make(map[string]bool),
		res:     &Result{},
	}
	if err = w.enqueue(seed); err != nil {
		return nil, err
	}

	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per dequeued basis)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		t := w.queue[0]
		w.queue = w.queue[1:]

		for _, pv := range t.AdjacentPivots() {
			next := t.Clone()
			if err := next.Apply(pv); err != nil {
				return err
			}
			if !next.FeasibleNow() {
				continue
			}
			if w.visited[basisKey(next.Basis())] {
				continue
			}
			if err := w.enqueue(next); err != nil {
				return err
			}
		}
	}

	return nil
}

// enqueue marks the tableau's basis visited, reports its vertex when the
// coordinates are new, and schedules the basis for neighbor expansion.
func (w *walker) enqueue(t *simplex.Tableau) error {
	basis := t.Basis()
	w.visited[basisKey(basis)] = true
	w.res.BasisCount++
	if w.opts.MaxBases > 0 && w.res.BasisCount > w.opts.MaxBases {
		return ErrBasisLimit
	}

	point := t.Vertex()
	if key := coordKey(point, w.opts.Epsilon); !w.coords[key] {
		w.coords[key] = true
		v := Vertex{Coords: point, Basis: basis}
		w.res.Vertices = append(w.res.Vertices, v)
		w.opts.OnVertex(v)
		w.opts.Logger.Debug("vertex discovered",
			zap.Float64s("coords", point),
			zap.Ints("basis", basis))
	}
	w.queue = append(w.queue, t)

	return nil
}

// basisKey canonicalizes a sorted basis as a map key; node identity is the
// basis contents, never tableau object identity.
func basisKey(basis []int) string {
	var sb strings.Builder
	for i, b := range basis {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(b))
	}

	return sb.String()
}

// coordKey snaps coordinates to the eps grid so points equal within
// tolerance share a key (degenerate bases collapse to one vertex).
func coordKey(point []float64, eps float64) string {
	var sb strings.Builder
	for i, v := range point {
		s := math.Round(v/eps) * eps
		if s == 0 {
			s = 0 // normalize -0
		}
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatFloat(s, 'g', -1, 64))
	}

	return sb.String()
}
