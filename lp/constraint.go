// Package lp - relational constraints and their canonical ≤-form.
package lp

import (
	"fmt"
	"math"
)

// Constraint is a linear relation lhs OP rhs, stored canonically as
// diff OP 0 with diff = lhs − rhs (the original sides are folded at
// construction and never kept separately).
type Constraint struct {
	diff LinearFunction
	op   RelOp
}

// NewConstraint builds a constraint from two linear functions and an
// operator, folding it into (lhs − rhs) OP 0 form.
func NewConstraint(lhs LinearFunction, op RelOp, rhs LinearFunction) Constraint {
	return Constraint{diff: lhs.Sub(rhs), op: op}
}

// Diff returns the canonical left side (lhs − rhs).
func (c Constraint) Diff() LinearFunction { return c.diff }

// Op returns the relational operator.
func (c Constraint) Op() RelOp { return c.op }

// MaxVar returns the largest variable index the constraint references,
// or -1 when it references none.
func (c Constraint) MaxVar() int { return c.diff.MaxVar() }

// Normalize rewrites the constraint into pure ≤-form rows:
//
//	LessEq    → [ diff ≤ 0 ]
//	GreaterEq → [ −diff ≤ 0 ]
//	Eq        → [ diff ≤ 0, −diff ≤ 0 ]
//
// The returned rows together describe exactly the same feasible set.
func (c Constraint) Normalize() []Constraint {
	switch c.op {
	case GreaterEq:
		return []Constraint{{diff: c.diff.Neg(), op: LessEq}}
	case Eq:
		return []Constraint{
			{diff: c.diff, op: LessEq},
			{diff: c.diff.Neg(), op: LessEq},
		}
	default:
		return []Constraint{{diff: c.diff, op: LessEq}}
	}
}

// Row emits the dense tableau row of a ≤-form constraint: the coefficient
// vector a (length dim) and right-hand side b such that a·x ≤ b.
// Call Normalize first; Row on a non-LessEq constraint reflects only the
// stored diff ≤ 0 reading.
func (c Constraint) Row(dim int) (a []float64, b float64) {
	a = make([]float64, dim)
	for _, i := range c.diff.Variables() {
		if i < dim {
			a[i] = c.diff.Coefficient(i)
		}
	}

	return a, -c.diff.Constant()
}

// Satisfied reports whether point satisfies the ORIGINAL relation within eps.
// eps ≤ 0 falls back to DefaultEpsilon.
func (c Constraint) Satisfied(point []float64, eps float64) bool {
	if eps <= 0 {
		eps = DefaultEpsilon
	}
	v := c.diff.Evaluate(point)
	switch c.op {
	case LessEq:
		return v <= eps
	case GreaterEq:
		return v >= -eps
	default:
		return math.Abs(v) <= eps
	}
}

// String renders the constraint in its canonical "diff OP 0" form.
func (c Constraint) String() string {
	return fmt.Sprintf("%s %s 0", c.diff, c.op)
}
