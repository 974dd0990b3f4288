// Package hull - 3D triangulated hulls with outward winding.
package hull

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/lpviz/lpviz/geom"
)

// Triangulate returns the triangulated convex hull of pts with every
// triangle wound counter-clockwise as seen from outside, suitable for
// back-face culling under flat shading.
//
// Faces are discovered by supporting-plane enumeration: a plane through
// three points bounds the hull when all points lie on one side of it. All
// points incident to one supporting plane form a face, ordered angularly
// around the face centroid and fan-triangulated. Outwardness is enforced by
// the signed side of the hull centroid: a triangle whose normal points
// toward the centroid is flipped.
//
// Degenerate inputs degrade instead of failing: fewer than three distinct
// points yield nil; a fully coplanar set yields its flat boundary polygon
// fan-triangulated once (winding follows the plane normal).
func Triangulate(pts []geom.Point) []Triangle {
	ps := dedup(pts)
	if len(ps) < 3 {
		return nil
	}
	center := geom.PointSet(ps).Centroid()

	var faces [][]int
	seen := make(map[string]bool)
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			for k := j + 1; k < len(ps); k++ {
				face, ok := supportingFace(ps, i, j, k)
				if !ok {
					continue
				}
				if key := faceKey(face); !seen[key] {
					seen[key] = true
					faces = append(faces, face)
				}
			}
		}
	}

	var tris []Triangle
	for _, face := range faces {
		tris = append(tris, fanTriangulate(ps, face, center)...)
	}

	return tris
}

// supportingFace tests whether the plane through ps[i], ps[j], ps[k] bounds
// the point set, and if so returns the indices of every point incident to
// that plane (the full face, handles >3 coplanar hull points).
func supportingFace(ps []geom.Point, i, j, k int) ([]int, bool) {
	n := ps[j].Sub(ps[i]).Cross(ps[k].Sub(ps[i]))
	nn := n.Norm()
	if nn <= Epsilon {
		return nil, false // collinear triple spans no plane
	}
	n = n.Scale(1 / nn)

	minD, maxD := math.Inf(1), math.Inf(-1)
	for _, p := range ps {
		d := n.Dot(p.Sub(ps[i]))
		minD = math.Min(minD, d)
		maxD = math.Max(maxD, d)
	}
	if minD < -Epsilon && maxD > Epsilon {
		return nil, false // points on both sides
	}

	var face []int
	for idx, p := range ps {
		if math.Abs(n.Dot(p.Sub(ps[i]))) <= Epsilon {
			face = append(face, idx)
		}
	}

	return face, true
}

// faceKey canonicalizes a face by its sorted member indices.
func faceKey(face []int) string {
	var sb strings.Builder
	for i, idx := range face {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(idx))
	}

	return sb.String()
}

// fanTriangulate orders the face points angularly around the face centroid
// and emits a triangle fan, flipping each triangle whose normal faces the
// hull centroid.
func fanTriangulate(ps []geom.Point, face []int, center geom.Point) []Triangle {
	fc := geom.Point{}
	for _, idx := range face {
		fc = fc.Add(ps[idx])
	}
	fc = fc.Scale(1 / float64(len(face)))

	// Plane basis (u, v) from the first spanning pair.
	u := ps[face[1]].Sub(ps[face[0]])
	u = u.Scale(1 / u.Norm())
	n := planeNormal(ps, face)
	v := n.Cross(u)

	ordered := append([]int(nil), face...)
	sort.Slice(ordered, func(a, b int) bool {
		pa, pb := ps[ordered[a]].Sub(fc), ps[ordered[b]].Sub(fc)

		return math.Atan2(v.Dot(pa), u.Dot(pa)) < math.Atan2(v.Dot(pb), u.Dot(pb))
	})

	tris := make([]Triangle, 0, len(ordered)-2)
	for i := 1; i < len(ordered)-1; i++ {
		t := Triangle{A: ps[ordered[0]], B: ps[ordered[i]], C: ps[ordered[i+1]]}
		// Outward check: the hull centroid must sit behind the face. Zero
		// dot means a flat (coplanar) hull; keep the fan's own orientation.
		if t.Normal().Dot(t.A.Sub(center)) < -Epsilon {
			t.B, t.C = t.C, t.B
		}
		tris = append(tris, t)
	}

	return tris
}

// planeNormal returns a unit normal of the face plane from its first
// non-collinear spanning triple.
func planeNormal(ps []geom.Point, face []int) geom.Point {
	base := ps[face[0]]
	u := ps[face[1]].Sub(base)
	for _, idx := range face[2:] {
		n := u.Cross(ps[idx].Sub(base))
		if nn := n.Norm(); nn > Epsilon {
			return n.Scale(1 / nn)
		}
	}

	// Unreachable for a face produced by supportingFace.
	return geom.Pt(0, 0, 1)
}
