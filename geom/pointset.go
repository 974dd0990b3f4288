// Package geom - bulk operations over point collections.
package geom

// PointSet is an ordered collection of points, typically the vertex set of
// one feasible region. Bulk transforms return new sets.
type PointSet []Point

// NewPointSet copies pts into a fresh PointSet.
func NewPointSet(pts []Point) PointSet {
	return append(PointSet(nil), pts...)
}

// FromCoordSet lifts LP coordinate vectors into a PointSet.
func FromCoordSet(coords [][]float64) PointSet {
	set := make(PointSet, len(coords))
	for i, c := range coords {
		set[i] = FromCoords(c)
	}

	return set
}

// apply maps fn over the set into a new PointSet.
func (s PointSet) apply(fn func(Point) Point) PointSet {
	out := make(PointSet, len(s))
	for i, p := range s {
		out[i] = fn(p)
	}

	return out
}

// RotateAroundX rotates every point about the X axis by angle (radians).
func (s PointSet) RotateAroundX(angle float64) PointSet {
	return s.apply(func(p Point) Point { return p.RotateAroundX(angle) })
}

// RotateAroundY rotates every point about the Y axis by angle (radians).
func (s PointSet) RotateAroundY(angle float64) PointSet {
	return s.apply(func(p Point) Point { return p.RotateAroundY(angle) })
}

// RotateAroundZ rotates every point about the Z axis by angle (radians).
func (s PointSet) RotateAroundZ(angle float64) PointSet {
	return s.apply(func(p Point) Point { return p.RotateAroundZ(angle) })
}

// ProjectOnXY drops every point onto the z=0 plane.
func (s PointSet) ProjectOnXY() PointSet {
	return s.apply(Point.ProjectOnXY)
}

// Centroid returns the arithmetic mean of the set; the zero Point for an
// empty set.
func (s PointSet) Centroid() Point {
	if len(s) == 0 {
		return Point{}
	}
	var c Point
	for _, p := range s {
		c = c.Add(p)
	}

	return c.Scale(1 / float64(len(s)))
}
