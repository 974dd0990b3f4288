// Package lp - sparse linear functions over indexed variables.
//
// A LinearFunction is a constant plus a finite sum aᵢ·xᵢ. Storage is sparse:
// absent indices mean zero. All arithmetic produces fresh values; the internal
// map is never shared with callers.
package lp

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// LinearFunction represents constant + Σ coeffs[i]·x[i] with sparse
// coefficient storage. The zero value is the constant function 0.
type LinearFunction struct {
	constant float64
	coeffs   map[int]float64
}

// New builds a LinearFunction from a constant term and a coefficient map.
// The map is copied; entries that are exactly zero are dropped to keep the
// sparse invariant (absent ⇔ zero).
func New(constant float64, coeffs map[int]float64) LinearFunction {
	f := LinearFunction{constant: constant, coeffs: make(map[int]float64, len(coeffs))}
	for i, c := range coeffs {
		if c != 0 {
			f.coeffs[i] = c
		}
	}

	return f
}

// Var returns the function xᵢ (single variable, coefficient 1, constant 0).
func Var(i int) LinearFunction {
	return New(0, map[int]float64{i: 1})
}

// Const returns the constant function c.
func Const(c float64) LinearFunction {
	return New(c, nil)
}

// Constant reports the constant term.
func (f LinearFunction) Constant() float64 { return f.constant }

// Coefficient reports the coefficient of xᵢ; absent variables yield 0.
func (f LinearFunction) Coefficient(i int) float64 { return f.coeffs[i] }

// Variables returns the indices with nonzero coefficients in ascending order.
func (f LinearFunction) Variables() []int {
	vars := make([]int, 0, len(f.coeffs))
	for i := range f.coeffs {
		vars = append(vars, i)
	}
	sort.Ints(vars)

	return vars
}

// MaxVar returns the largest referenced variable index, or -1 for a constant
// function. Problem construction uses it to validate dimensions.
func (f LinearFunction) MaxVar() int {
	maxIdx := -1
	for i := range f.coeffs {
		if i > maxIdx {
			maxIdx = i
		}
	}

	return maxIdx
}

// clone returns a deep copy safe for mutation by the arithmetic helpers.
func (f LinearFunction) clone() LinearFunction {
	g := LinearFunction{constant: f.constant, coeffs: make(map[int]float64, len(f.coeffs))}
	for i, c := range f.coeffs {
		g.coeffs[i] = c
	}

	return g
}

// Add returns f + g as a new LinearFunction.
func (f LinearFunction) Add(g LinearFunction) LinearFunction {
	sum := f.clone()
	sum.constant += g.constant
	for i, c := range g.coeffs {
		next := sum.coeffs[i] + c
		if next == 0 {
			delete(sum.coeffs, i)
		} else {
			sum.coeffs[i] = next
		}
	}

	return sum
}

// Sub returns f − g as a new LinearFunction.
func (f LinearFunction) Sub(g LinearFunction) LinearFunction {
	return f.Add(g.Neg())
}

// Scale returns k·f as a new LinearFunction.
func (f LinearFunction) Scale(k float64) LinearFunction {
	if k == 0 {
		return Const(0)
	}
	scaled := LinearFunction{constant: k * f.constant, coeffs: make(map[int]float64, len(f.coeffs))}
	for i, c := range f.coeffs {
		scaled.coeffs[i] = k * c
	}

	return scaled
}

// Neg returns −f.
func (f LinearFunction) Neg() LinearFunction { return f.Scale(-1) }

// Evaluate applies f to a coordinate vector. Variable indices past the end of
// point evaluate as zero (sparse valuation semantics).
func (f LinearFunction) Evaluate(point []float64) float64 {
	val := f.constant
	for i, c := range f.coeffs {
		if i < len(point) {
			val += c * point[i]
		}
	}

	return val
}

// Equal reports whether f and g agree within eps on the constant and every
// coefficient (including coefficients present on only one side, compared
// against zero). eps ≤ 0 falls back to DefaultEpsilon.
func (f LinearFunction) Equal(g LinearFunction, eps float64) bool {
	if eps <= 0 {
		eps = DefaultEpsilon
	}
	if math.Abs(f.constant-g.constant) > eps {
		return false
	}
	for i, c := range f.coeffs {
		if math.Abs(c-g.coeffs[i]) > eps {
			return false
		}
	}
	for i, c := range g.coeffs {
		if _, seen := f.coeffs[i]; !seen && math.Abs(c) > eps {
			return false
		}
	}

	return true
}

// Key returns a canonical string usable as a map key for deduplication.
// Coefficients are snapped to the DefaultEpsilon grid so that functions equal
// within tolerance share a key.
func (f LinearFunction) Key() string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatFloat(snap(f.constant), 'g', -1, 64))
	for _, i := range f.Variables() {
		c := snap(f.coeffs[i])
		if c == 0 {
			continue
		}
		sb.WriteByte('|')
		sb.WriteString(strconv.Itoa(i))
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
	}

	return sb.String()
}

// snap rounds v to the DefaultEpsilon grid, mapping -0 to +0.
func snap(v float64) float64 {
	s := math.Round(v/DefaultEpsilon) * DefaultEpsilon
	if s == 0 {
		return 0
	}

	return s
}

// String renders the function as "c + a0·x0 + a1·x1 …" with signs folded in.
func (f LinearFunction) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatFloat(f.constant, 'g', -1, 64))
	for _, i := range f.Variables() {
		c := f.coeffs[i]
		if c >= 0 {
			sb.WriteString(" + ")
		} else {
			sb.WriteString(" - ")
			c = -c
		}
		fmt.Fprintf(&sb, "%gx%d", c, i)
	}

	return sb.String()
}
