// Package solve is the boundary façade between the algorithmic core and a
// rendering layer: one call runs the simplex trajectory, enumerates every
// reachable vertex, and builds the hull geometry appropriate for the
// problem's dimension.
//
// Output contract, per dimension
//
//   - Dim == 2: Scene.Polygon — the feasible region's boundary in
//     counter-clockwise order — plus a per-step 2D point via StepPoint.
//   - Dim == 3: Scene.Triangles — an outward-wound triangle list for
//     back-face culling — plus a per-step 3D point.
//   - Dim >= 4: no geometry; Scene.Trace carries structured
//     {step, basis, coordinates, objective} records for textual display.
//
// Hull geometry is only built for StatusOptimal runs: an unbounded region
// has no finite hull and an infeasible one no points at all. The discovered
// vertex set and the full step history are populated whenever they exist,
// so a UI can still narrate what happened.
//
// The Scene is read-only once returned and safe to share with a renderer
// without locking; stepping (StepCount/StateAt/StepPoint) never recomputes
// anything.
package solve
