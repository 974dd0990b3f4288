// Package explore enumerates every reachable vertex of an LP's feasible
// polyhedron by breadth-first search over the implicit graph of basic
// feasible solutions.
//
// What
//
//   - Nodes are bases (identified by their sorted basic-column contents,
//     never by object identity), edges are single feasible pivots.
//   - Starting from the Phase-1 seed basis (simplex.Feasible), every
//     non-basic entering column whose ratio test succeeds is followed,
//     regardless of whether it improves the objective — the optimizing
//     trajectory visits only one path; rendering needs all extreme points.
//   - Output is a deduplicated vertex list in BFS discovery order, each
//     point tagged with its first-discovered basis for step correlation.
//
// Determinism
//
//	AdjacentPivots enumerates candidate pivots in ascending column-then-row
//	order and the queue is FIFO, so discovery order is fully reproducible.
//
// Degeneracy
//
//	Several bases can share one geometric vertex. All of them are visited
//	(they are distinct graph nodes and may unlock different neighbors), but
//	coordinates are deduplicated within ε before being reported.
//
// Complexity
//
//	Bounded by the number of feasible bases, combinatorial in the
//	constraint/variable count: C(n+m, m) in the worst case. WithMaxBases
//	guards against blowup; WithContext allows cooperative cancellation of
//	long exhaustive walks.
//
// Errors
//
//   - ErrProblemNil        if the problem pointer is nil.
//   - ErrOptionViolation   for invalid options.
//   - ErrBasisLimit        when MaxBases is exceeded.
//   - simplex.ErrInfeasible (wrapped) when the region is empty.
package explore
