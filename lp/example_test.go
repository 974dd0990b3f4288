package lp_test

import (
	"fmt"

	"github.com/lpviz/lpviz/lp"
)

// ExampleNewProblem models
//
//	maximize 3x + 2y
//	subject to x + y ≤ 4, x ≤ 2
//
// over two nonnegative decision variables and prints its canonical rows.
func ExampleNewProblem() {
	objective := lp.Var(0).Scale(3).Add(lp.Var(1).Scale(2))
	constraints := []lp.Constraint{
		lp.NewConstraint(lp.Var(0).Add(lp.Var(1)), lp.LessEq, lp.Const(4)),
		lp.NewConstraint(lp.Var(0), lp.LessEq, lp.Const(2)),
	}

	p, err := lp.NewProblem(objective, constraints, lp.Maximize, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	a, b := p.NormalizedRows()
	for i := range a {
		fmt.Printf("%v <= %v\n", a[i], b[i])
	}
	fmt.Println("objective:", p.Objective)
	// Output:
	// [1 1] <= 4
	// [1 0] <= 2
	// objective: 0 + 3x0 + 2x1
}

// ExampleLinearFunction_Evaluate shows implicit-zero valuation semantics.
func ExampleLinearFunction_Evaluate() {
	f := lp.New(10, map[int]float64{0: 20, 2: -2})
	// x2 is not covered by the point and reads as 0.
	fmt.Println(f.Evaluate([]float64{2, -432}))
	// Output:
	// 50
}
