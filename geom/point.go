// Package geom - the Point value type and its vector algebra.
package geom

import "math"

// Point is a position (or free vector) in 3D space. 2D data leaves Z zero.
type Point struct {
	X, Y, Z float64
}

// Pt is shorthand for Point{X: x, Y: y, Z: z}.
func Pt(x, y, z float64) Point { return Point{X: x, Y: y, Z: z} }

// FromCoords lifts an LP coordinate vector into a Point, zero-filling
// missing components and ignoring components beyond the third.
func FromCoords(coords []float64) Point {
	var p Point
	if len(coords) > 0 {
		p.X = coords[0]
	}
	if len(coords) > 1 {
		p.Y = coords[1]
	}
	if len(coords) > 2 {
		p.Z = coords[2]
	}

	return p
}

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z} }

// Sub returns p − q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }

// Scale returns k·p.
func (p Point) Scale(k float64) Point { return Point{k * p.X, k * p.Y, k * p.Z} }

// Dot returns the scalar product p·q.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y + p.Z*q.Z }

// Cross returns the vector product p×q.
func (p Point) Cross(q Point) Point {
	return Point{
		X: p.Y*q.Z - p.Z*q.Y,
		Y: p.Z*q.X - p.X*q.Z,
		Z: p.X*q.Y - p.Y*q.X,
	}
}

// Norm returns the Euclidean length of p.
func (p Point) Norm() float64 { return math.Sqrt(p.Dot(p)) }

// Near reports whether p and q coincide within eps per component.
func (p Point) Near(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps && math.Abs(p.Z-q.Z) <= eps
}

// RotateAroundX returns p rotated by angle (radians) about the X axis.
func (p Point) RotateAroundX(angle float64) Point {
	sin, cos := math.Sincos(angle)

	return Point{
		X: p.X,
		Y: cos*p.Y - sin*p.Z,
		Z: sin*p.Y + cos*p.Z,
	}
}

// RotateAroundY returns p rotated by angle (radians) about the Y axis.
func (p Point) RotateAroundY(angle float64) Point {
	sin, cos := math.Sincos(angle)

	return Point{
		X: cos*p.X + sin*p.Z,
		Y: p.Y,
		Z: cos*p.Z - sin*p.X,
	}
}

// RotateAroundZ returns p rotated by angle (radians) about the Z axis.
func (p Point) RotateAroundZ(angle float64) Point {
	sin, cos := math.Sincos(angle)

	return Point{
		X: cos*p.X - sin*p.Y,
		Y: sin*p.X + cos*p.Y,
		Z: p.Z,
	}
}

// ProjectOnXY drops p onto the z=0 plane (the camera looks along −Z).
func (p Point) ProjectOnXY() Point { return Point{X: p.X, Y: p.Y} }
