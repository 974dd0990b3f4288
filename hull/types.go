// Package hull shared types and tolerances.
package hull

import "github.com/lpviz/lpviz/geom"

// Epsilon is the geometric tolerance: points closer than this coincide and
// plane distances below it count as incident.
const Epsilon = 1e-9

// Triangle is one hull face with vertices in winding order: A→B→C is
// counter-clockwise when seen from outside the hull.
type Triangle struct {
	A, B, C geom.Point
}

// Normal returns the (unnormalized) face normal (B−A)×(C−A); it points away
// from the hull interior.
func (t Triangle) Normal() geom.Point {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A))
}

// Centroid returns the triangle's barycenter.
func (t Triangle) Centroid() geom.Point {
	return t.A.Add(t.B).Add(t.C).Scale(1.0 / 3.0)
}
