// Package hull - 2D boundary polygons via Andrew's monotone chain.
package hull

import (
	"sort"

	"github.com/lpviz/lpviz/geom"
)

// Polygon returns the convex boundary of pts (X and Y components; Z is
// ignored and zeroed) in counter-clockwise order, starting at the
// lexicographically smallest vertex.
//
// Degenerate inputs degrade instead of failing: an empty set yields nil, a
// single distinct point a 1-gon, and collinear input the extreme segment.
// Interior and duplicate points never appear in the result.
func Polygon(pts []geom.Point) []geom.Point {
	flat := make([]geom.Point, len(pts))
	for i, p := range pts {
		flat[i] = p.ProjectOnXY()
	}
	ps := dedup(flat)
	if len(ps) <= 2 {
		return ps
	}

	// Lower then upper chain; cross ≤ 0 drops clockwise turns and
	// collinear mid-points.
	lower := chain(ps)
	reverse(ps)
	upper := chain(ps)

	// Chains share their endpoints.
	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}

// dedup sorts lexicographically and removes points coinciding within
// Epsilon, leaving the result order-independent of the input.
func dedup(pts []geom.Point) []geom.Point {
	ps := append([]geom.Point(nil), pts...)
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].X != ps[j].X {
			return ps[i].X < ps[j].X
		}
		if ps[i].Y != ps[j].Y {
			return ps[i].Y < ps[j].Y
		}

		return ps[i].Z < ps[j].Z
	})
	out := ps[:0]
	for _, p := range ps {
		if len(out) == 0 || !p.Near(out[len(out)-1], Epsilon) {
			out = append(out, p)
		}
	}

	return out
}

// chain builds one monotone half-hull over the sorted points.
func chain(ps []geom.Point) []geom.Point {
	var h []geom.Point
	for _, p := range ps {
		for len(h) >= 2 && cross2(h[len(h)-2], h[len(h)-1], p) <= Epsilon {
			h = h[:len(h)-1]
		}
		h = append(h, p)
	}

	return h
}

// cross2 is the z-component of (b−a)×(c−a): positive for a counter-clockwise
// turn a→b→c.
func cross2(a, b, c geom.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func reverse(ps []geom.Point) {
	for i, j := 0, len(ps)-1; i < j; i, j = i+1, j-1 {
		ps[i], ps[j] = ps[j], ps[i]
	}
}
