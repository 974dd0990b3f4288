// Package geom provides the small value-type vector math the rendering
// boundary consumes: 3D points, axis rotations, XY projection, and bulk
// operations over point sets.
//
// Points are plain float64 triples; 2D callers simply leave Z at zero.
// Every operation returns a new value — rotating a PointSet yields a fresh
// set, so a renderer can re-derive camera transforms from the untouched
// original each frame.
//
// Winding helpers (Cross, Dot, signed volumes) back the hull package's
// outward-orientation checks.
package geom
