// Package lp models linear programs: sparse linear functions over indexed
// variables, relational constraints, and the Problem bundle consumed by the
// simplex engine.
//
// What
//
//   - LinearFunction: a sparse map from variable index → coefficient plus a
//     constant term. Arithmetic (Add, Sub, Scale, Neg) returns new values;
//     nothing mutates in place. Coefficient lookup for an absent variable
//     returns 0, never an error.
//   - Constraint: lhs OP rhs with OP ∈ {Eq, LessEq, GreaterEq}, stored in the
//     canonical form (lhs − rhs) OP 0 and normalizable to pure ≤-rows for
//     tableau construction (Eq splits into two opposing ≤ rows).
//   - Problem: objective + constraints + optimization Direction + dimension.
//     Construction validates variable indexing up front, so a
//     DimensionMismatch can never surface mid-pivot.
//
// Conventions
//
//   - Variables are indices 0..Dim-1 into a coordinate vector. Decision
//     variables are implicitly nonnegative (standard-form simplex); an
//     explicit x ≥ 0 constraint is accepted and simply becomes a redundant
//     row.
//   - Evaluate treats variables beyond the supplied point's length as zero.
//     This is a deliberate choice (sparse valuation semantics), not an error.
//   - Equality between linear functions is tolerance-based: two functions are
//     equal when every coefficient and the constant differ by at most ε.
//     DefaultEpsilon (1e-9) is the fixed module-wide tolerance.
//
// Errors
//
//   - ErrDimensionMismatch — a function references a variable index ≥ Dim.
//   - ErrBadDimension      — Dim < 1.
//   - ErrNoObjective       — the objective has no variable terms.
//
// See simplex for the pivoting engine and solve for the rendering façade.
package lp
