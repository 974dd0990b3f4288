// Package solve - the Build entry point wiring engine, explorer and hull.
package solve

import (
	"go.uber.org/zap"

	"github.com/lpviz/lpviz/explore"
	"github.com/lpviz/lpviz/geom"
	"github.com/lpviz/lpviz/hull"
	"github.com/lpviz/lpviz/lp"
	"github.com/lpviz/lpviz/simplex"
)

// Build solves p and assembles the render-ready Scene for its dimension:
// the stepping history always, the reachable vertex set unless the region
// is empty, and hull geometry (polygon or triangle list) for bounded runs
// in two or three dimensions. Dimensions of four and above get a textual
// Trace instead of geometry.
//
// Errors: simplex.ErrNilProblem, ErrOptionViolation, the sub-package limit
// errors (simplex.ErrPivotLimit, explore.ErrBasisLimit) and context errors
// from a cancelled exploration. Infeasible and Unbounded are not errors;
// they arrive as Scene.Status.
func Build(p *lp.Problem, opts ...Option) (*Scene, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	res, err := simplex.Solve(p,
		simplex.WithEpsilon(o.Epsilon),
		simplex.WithMaxPivots(o.MaxPivots),
		simplex.WithLogger(o.Logger))
	if err != nil {
		return nil, err
	}

	sc := &Scene{
		Dim:       p.Dim,
		Status:    res.Status,
		Objective: res.Objective,
		Point:     res.Point,
		Steps:     res.Steps,
	}
	if p.Dim >= 4 {
		sc.Trace = traceOf(res.Steps)
	}
	if res.Status.IsInfeasible() {
		return sc, nil
	}

	vres, err := explore.Explore(p,
		explore.WithContext(o.Ctx),
		explore.WithEpsilon(o.Epsilon),
		explore.WithMaxBases(o.MaxBases),
		explore.WithLogger(o.Logger))
	if err != nil {
		return nil, err
	}
	sc.Vertices = vres.Vertices

	if res.Status.IsOptimal() {
		switch p.Dim {
		case 2:
			sc.Polygon = hull.Polygon(geom.FromCoordSet(vres.Points()))
		case 3:
			sc.Triangles = hull.Triangulate(geom.FromCoordSet(vres.Points()))
		}
	}

	o.Logger.Debug("scene built",
		zap.Int("dim", sc.Dim),
		zap.Stringer("status", sc.Status),
		zap.Int("steps", len(sc.Steps)),
		zap.Int("vertices", len(sc.Vertices)),
		zap.Int("polygon", len(sc.Polygon)),
		zap.Int("triangles", len(sc.Triangles)))

	return sc, nil
}

// traceOf converts the step history into textual display records.
func traceOf(steps []simplex.State) []TraceRecord {
	trace := make([]TraceRecord, len(steps))
	for i, st := range steps {
		trace[i] = TraceRecord{
			Step:      st.Step,
			Basis:     st.Basis,
			Coords:    st.Coords,
			Objective: st.Objective,
		}
	}

	return trace
}
