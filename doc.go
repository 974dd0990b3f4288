// Package lpviz solves small linear programs with the simplex method and
// prepares everything a renderer needs to draw them: the step-by-step
// pivoting trajectory, every reachable vertex of the feasible polyhedron,
// and a consistently wound convex hull of the feasible region.
//
// 🚀 What is lpviz?
//
//	A pure-Go linear-programming visualization core that brings together:
//		• Problem modelling: sparse linear functions, constraints, objectives
//		• A two-phase simplex engine exposing one pivot at a time
//		• Breadth-first exploration of every reachable basic feasible solution
//		• Convex-hull construction (2D polygons, 3D triangle lists) for rendering
//		• Point/vector geometry helpers for camera-side transforms
//
// ✨ Why choose lpviz?
//
//   - Deterministic – fixed entering/leaving tie-break rules, reproducible runs
//   - Step-aware – every pivot yields an immutable snapshot for PREVIOUS/NEXT UIs
//   - Renderer-agnostic – emits plain points, polygons and triangles; no GUI deps
//   - Honest outcomes – Infeasible and Unbounded are result statuses, not panics
//
// Everything is organized under six subpackages:
//
//	lp/      — LinearFunction, Constraint, Problem model
//	simplex/ — tableau, two-phase pivoting state machine, step history
//	explore/ — BFS over the graph of feasible bases (vertex enumeration)
//	hull/    — 2D boundary polygons and 3D triangulated hulls
//	geom/    — Point math: rotations, projection, centroids
//	solve/   — façade wiring it all together per output dimension
//
// Quick ASCII example, the feasible region of x+y≤4, x≤2 (x,y≥0):
//
//	 y
//	 4│╲
//	  │ ╲
//	 2│  ╲
//	  │███│
//	  └───┴──── x
//	      2
//
// Dive into DESIGN.md for the architecture notes.
//
//	go get github.com/lpviz/lpviz
package lpviz
