// Package simplex implements the two-phase simplex method over a dense
// tableau, exposing one pivot at a time and an immutable snapshot of every
// step for PREVIOUS/NEXT style user interfaces.
//
// What
//
//   - Solve runs the full state machine
//     Phase1 (when artificial variables are needed) → Phase2 → terminal
//     status, returning a Result with the final Status, optimal point and
//     value, and the ordered []State step history.
//   - Feasible runs only Phase 1 and hands back the reduced Tableau sitting
//     at an initial basic feasible solution — the seed the explore package
//     walks from.
//   - Tableau exposes the pivot mechanics (Clone, AdjacentPivots, Apply,
//     Basis, Vertex) so callers can traverse the graph of feasible bases
//     without re-deriving the linear algebra.
//
// Pivot rules (fixed, deterministic)
//
//   - Entering: most negative reduced cost (Dantzig), tie-break by lowest
//     column index.
//   - Leaving: minimum ratio test over rows with positive pivot-column
//     coefficient, tie-break by lowest basic-variable index (Bland-style),
//     which prevents cycling on degenerate vertices.
//
// Each pivot normalizes the pivot row and eliminates the pivot column from
// every other row and from the objective row, so after every step the basic
// column of each row is exactly the identity column (within ε).
//
// Outcomes
//
//	Optimal, Unbounded and Infeasible are values of Result.Status — ordinary
//	data for the caller to render, never an error or a panic. Errors are
//	reserved for misuse (nil problem, invalid option) and for the MaxPivots
//	safety limit.
//
// Determinism
//
//	Given a Problem, the run is fully reproducible: tie-breaks are by index,
//	there is no randomness, and the tableau is owned exclusively by its run.
//
// Complexity (m = ≤-form rows, n = variables)
//
//   - One pivot: O(m·(n+m)) row operations.
//   - A run: bounded by the number of basic feasible solutions; MaxPivots
//     provides a hard guard for pathological inputs.
//
// See docs in the explore package for full-vertex enumeration on top of
// these primitives.
package simplex
