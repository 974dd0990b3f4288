// Package lp - the Problem bundle handed to the simplex engine.
package lp

import "fmt"

// Problem is one linear program: an objective to optimize in the given
// Direction over Dim implicitly nonnegative decision variables, subject to
// Constraints. Built once via NewProblem and read-only afterwards.
type Problem struct {
	// Objective is the linear function being optimized. Its constant term is
	// carried through to reported objective values.
	Objective LinearFunction

	// Constraints restrict the feasible region. Explicit xᵢ ≥ 0 rows are
	// allowed and redundant (nonnegativity is implicit).
	Constraints []Constraint

	// Direction is Minimize or Maximize.
	Direction Direction

	// Dim is the number of decision variables; all referenced variable
	// indices must lie in 0..Dim-1.
	Dim int
}

// NewProblem validates variable indexing and returns the immutable problem.
//
// Errors:
//   - ErrBadDimension      when dim < 1.
//   - ErrNoObjective       when the objective references no variables.
//   - ErrDimensionMismatch when the objective or any constraint references a
//     variable index ≥ dim. Rejected here, before any pivoting can start.
func NewProblem(objective LinearFunction, constraints []Constraint, dir Direction, dim int) (*Problem, error) {
	if dim < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadDimension, dim)
	}
	if objective.MaxVar() < 0 {
		return nil, ErrNoObjective
	}
	if m := objective.MaxVar(); m >= dim {
		return nil, fmt.Errorf("%w: objective references x%d, dim=%d", ErrDimensionMismatch, m, dim)
	}
	for k, c := range constraints {
		if m := c.MaxVar(); m >= dim {
			return nil, fmt.Errorf("%w: constraint %d references x%d, dim=%d", ErrDimensionMismatch, k, m, dim)
		}
	}

	cs := make([]Constraint, len(constraints))
	copy(cs, constraints)

	return &Problem{Objective: objective, Constraints: cs, Direction: dir, Dim: dim}, nil
}

// Feasible reports whether point satisfies every constraint within eps.
// Implicit nonnegativity is included in the check.
func (p *Problem) Feasible(point []float64, eps float64) bool {
	if eps <= 0 {
		eps = DefaultEpsilon
	}
	for i := 0; i < p.Dim && i < len(point); i++ {
		if point[i] < -eps {
			return false
		}
	}
	for _, c := range p.Constraints {
		if !c.Satisfied(point, eps) {
			return false
		}
	}

	return true
}

// NormalizedRows expands every constraint to canonical ≤-form and emits the
// dense rows (a, b) with a·x ≤ b used for tableau construction. Eq
// constraints contribute two rows each.
func (p *Problem) NormalizedRows() (a [][]float64, b []float64) {
	for _, c := range p.Constraints {
		for _, row := range c.Normalize() {
			ra, rb := row.Row(p.Dim)
			a = append(a, ra)
			b = append(b, rb)
		}
	}

	return a, b
}
