// Package lp shared constants, enumerations and sentinel errors.
package lp

import "errors"

// DefaultEpsilon is the module-wide floating tolerance used for coefficient
// equality, feasibility checks and pivot-element guards.
const DefaultEpsilon = 1e-9

// Sentinel errors for problem construction.
var (
	// ErrDimensionMismatch is returned when the objective or a constraint
	// references a variable index outside 0..Dim-1.
	ErrDimensionMismatch = errors.New("lp: variable index outside problem dimension")

	// ErrBadDimension is returned when a problem is built with Dim < 1.
	ErrBadDimension = errors.New("lp: dimension must be at least 1")

	// ErrNoObjective is returned when the objective carries no variable terms.
	ErrNoObjective = errors.New("lp: objective has no variable terms")
)

// Direction selects the optimization sense of a Problem.
type Direction int

const (
	// Minimize seeks the smallest objective value over the feasible region.
	Minimize Direction = iota

	// Maximize seeks the largest objective value over the feasible region.
	Maximize
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d == Maximize {
		return "maximize"
	}

	return "minimize"
}

// RelOp is the relational operator of a Constraint.
type RelOp int

const (
	// Eq constrains lhs = rhs.
	Eq RelOp = iota

	// LessEq constrains lhs ≤ rhs.
	LessEq

	// GreaterEq constrains lhs ≥ rhs.
	GreaterEq
)

// String implements fmt.Stringer.
func (op RelOp) String() string {
	switch op {
	case LessEq:
		return "<="
	case GreaterEq:
		return ">="
	default:
		return "="
	}
}
