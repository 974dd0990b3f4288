// Package hull builds renderable convex-hull geometry from the vertex sets
// produced by LP exploration.
//
// What
//
//   - Polygon: 2D boundary of a point set (X,Y components), returned in
//     counter-clockwise order via Andrew's monotone chain. Degenerate inputs
//     never fail: one distinct point yields a single-point polygon, collinear
//     input yields the extreme segment.
//   - Triangulate: 3D triangulated hull with outward-consistent winding so a
//     renderer can back-face cull. Faces are found by supporting-plane
//     enumeration, coplanar face points are ordered angularly and fan
//     triangulated, and each triangle is flipped when its plane normal faces
//     the hull centroid. Fully coplanar input degenerates to one flat
//     fan-triangulated polygon.
//
// Per-vertex normals are not computed; the accepted rendering model is flat
// shading without lighting.
//
// Intended input scale
//
//	Vertex sets of small LP polytopes (tens of points). Triangulate
//	enumerates point triples against all points, O(n⁴) — simple and robust
//	at this scale, not a general-purpose hull library.
//
// Determinism
//
//	Input order does not affect the vertex membership of the result;
//	starting point and rotation of the returned orderings follow the
//	lexicographic minimum, so equal sets produce identical geometry.
package hull
