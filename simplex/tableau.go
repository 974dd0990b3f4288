// Package simplex - dense tableau storage and pivot mechanics.
//
// Column layout: [0,n) structural variables, [n,n+m) slacks, and during
// Phase 1 only, [n+m,n+m+art) artificial variables. The objective row is
// kept in reduced-cost form for a maximization run: optimal when no entry is
// below -ε, and the entering column is the most negative entry.
package simplex

import (
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/lpviz/lpviz/lp"
)

// Pivot identifies one basis exchange: column Col enters the basis, the
// variable basic in row Row leaves.
type Pivot struct {
	Col int
	Row int
}

// Tableau is the mutable pivoting state of one simplex run. It is owned
// exclusively by that run; use Clone before mutating a shared instance.
type Tableau struct {
	m      int // constraint rows
	n      int // structural variables (problem dimension)
	slacks int // slack columns (one per original ≤-row, never dropped)
	art    int // artificial columns still present (0 after Phase 1)
	cols   int // n + slacks + art

	a     *mat.Dense // m × cols constraint coefficients
	b     []float64  // right-hand sides, kept ≥ 0 up to ε
	obj   []float64  // reduced-cost row, maximization sense
	zval  float64    // objective value of the current basis (internal sense)
	basis []int      // basis[r] = column basic in row r

	eps float64
	log *zap.Logger
}

// newTableau builds the initial tableau from the problem's canonical ≤-rows:
// slack variables make every row an equality, rows with negative right-hand
// side are negated and given an artificial variable. The returned tableau has
// a zeroed objective row; callers install Phase-1 or Phase-2 costs.
func newTableau(p *lp.Problem, o Options) *Tableau {
	rows, rhs := p.NormalizedRows()
	m, n := len(rows), p.Dim

	// First pass: count artificials (rows arriving with negative rhs).
	art := 0
	for _, bv := range rhs {
		if bv < 0 {
			art++
		}
	}

	cols := n + m + art
	t := &Tableau{
		m:      m,
		n:      n,
		slacks: m,
		art:    art,
		cols:   cols,
		a:     mat.NewDense(maxInt(m, 1), maxInt(cols, 1), nil),
		b:     make([]float64, m),
		obj:   make([]float64, cols),
		basis: make([]int, m),
		eps:   o.Epsilon,
		log:   o.Logger,
	}

	nextArt := n + m
	for r := 0; r < m; r++ {
		row := t.a.RawRowView(r)
		copy(row, rows[r])
		row[n+r] = 1 // slack
		t.b[r] = rhs[r]
		t.basis[r] = n + r
		if rhs[r] < 0 {
			// Negate to restore b ≥ 0, then seed feasibility with an
			// artificial basic variable.
			floats.Scale(-1, row)
			t.b[r] = -t.b[r]
			row[nextArt] = 1
			t.basis[r] = nextArt
			nextArt++
		}
	}

	return t
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}

// Clone returns a deep copy sharing no mutable state with t.
func (t *Tableau) Clone() *Tableau {
	c := *t
	c.a = mat.DenseCopyOf(t.a)
	c.b = append([]float64(nil), t.b...)
	c.obj = append([]float64(nil), t.obj...)
	c.basis = append([]int(nil), t.basis...)

	return &c
}

// Rows returns the number of constraint rows currently in the tableau.
func (t *Tableau) Rows() int { return t.m }

// Cols returns the number of variable columns currently in the tableau.
func (t *Tableau) Cols() int { return t.cols }

// Basis returns the basic column indices in ascending order. The sorted
// contents, not the receiver identity, define basis equality.
func (t *Tableau) Basis() []int {
	bs := append([]int(nil), t.basis...)
	sort.Ints(bs)

	return bs
}

// Vertex returns the decision-variable coordinates of the current basic
// solution (nonbasic variables are zero by definition).
func (t *Tableau) Vertex() []float64 {
	x := make([]float64, t.n)
	for r, col := range t.basis {
		if col < t.n {
			x[col] = t.b[r]
		}
	}

	return x
}

// isBasic reports whether column j is basic in some row.
func (t *Tableau) isBasic(j int) bool {
	for _, col := range t.basis {
		if col == j {
			return true
		}
	}

	return false
}

// entering selects the entering column by the Dantzig rule: the most
// negative reduced cost, lowest index on ties. Returns -1 when no reduced
// cost is below -ε (current basis optimal).
func (t *Tableau) entering() int {
	best, bestVal := -1, -t.eps
	for j := 0; j < t.cols; j++ {
		if t.obj[j] < bestVal && !t.isBasic(j) {
			best, bestVal = j, t.obj[j]
		}
	}

	return best
}

// leaving runs the minimum ratio test for entering column col: among rows
// with coefficient > ε, pick the smallest b/a ratio, breaking ties by the
// lowest basic-variable index (Bland-style, guards against cycling).
// Returns -1 when no row qualifies (unbounded direction).
func (t *Tableau) leaving(col int) int {
	row, bestRatio := -1, 0.0
	for r := 0; r < t.m; r++ {
		arc := t.a.At(r, col)
		if arc <= t.eps {
			continue
		}
		ratio := t.b[r] / arc
		switch {
		case row < 0 || ratio < bestRatio-t.eps:
			row, bestRatio = r, ratio
		case math.Abs(ratio-bestRatio) <= t.eps && t.basis[r] < t.basis[row]:
			row = r
		}
	}

	return row
}

// pivot performs one basis exchange: normalize the pivot row, then eliminate
// the pivot column from every other row and from the objective row. The
// eliminated entries are written as exact zeros to stop rounding drift.
func (t *Tableau) pivot(row, col int) {
	pr := t.a.RawRowView(row)
	pe := pr[col]
	floats.Scale(1/pe, pr)
	pr[col] = 1
	t.b[row] /= pe

	for r := 0; r < t.m; r++ {
		if r == row {
			continue
		}
		rr := t.a.RawRowView(r)
		f := rr[col]
		if f == 0 {
			continue
		}
		floats.AddScaled(rr, -f, pr)
		rr[col] = 0
		t.b[r] -= f * t.b[row]
	}

	if f := t.obj[col]; f != 0 {
		floats.AddScaled(t.obj, -f, pr)
		t.obj[col] = 0
		t.zval -= f * t.b[row]
	}

	t.log.Debug("pivot",
		zap.Int("row", row),
		zap.Int("col", col),
		zap.Int("leaves", t.basis[row]),
		zap.Float64("objective", -t.zval))

	t.basis[row] = col
}

// AdjacentPivots enumerates every valid basis exchange from the current
// basis, regardless of objective direction: for each nonbasic column whose
// ratio test succeeds, one Pivot per row achieving the minimum ratio (ties
// within ε are distinct degenerate neighbors). Order is deterministic:
// ascending column, then ascending row.
func (t *Tableau) AdjacentPivots() []Pivot {
	var pivots []Pivot
	for j := 0; j < t.cols; j++ {
		if t.isBasic(j) {
			continue
		}
		best := math.Inf(1)
		for r := 0; r < t.m; r++ {
			if arc := t.a.At(r, j); arc > t.eps {
				if ratio := t.b[r] / arc; ratio < best {
					best = ratio
				}
			}
		}
		if math.IsInf(best, 1) {
			continue
		}
		for r := 0; r < t.m; r++ {
			if arc := t.a.At(r, j); arc > t.eps && math.Abs(t.b[r]/arc-best) <= t.eps {
				pivots = append(pivots, Pivot{Col: j, Row: r})
			}
		}
	}

	return pivots
}

// Apply performs pv on the tableau.
//
// Errors: ErrSingularPivot when pv is out of bounds or its pivot element is
// ≤ ε (a ratio-test pivot needs a strictly positive element).
func (t *Tableau) Apply(pv Pivot) error {
	if pv.Row < 0 || pv.Row >= t.m || pv.Col < 0 || pv.Col >= t.cols {
		return fmt.Errorf("%w: pivot (%d,%d) outside %dx%d tableau",
			ErrSingularPivot, pv.Row, pv.Col, t.m, t.cols)
	}
	if t.a.At(pv.Row, pv.Col) <= t.eps {
		return fmt.Errorf("%w: element %v at (%d,%d)",
			ErrSingularPivot, t.a.At(pv.Row, pv.Col), pv.Row, pv.Col)
	}
	t.pivot(pv.Row, pv.Col)

	return nil
}

// FeasibleNow reports whether every basic value is nonnegative within ε.
func (t *Tableau) FeasibleNow() bool {
	for _, bv := range t.b {
		if bv < -t.eps {
			return false
		}
	}

	return true
}

// setObjective installs a maximization objective c over the structural
// columns and re-reduces it against the current basis so every basic column
// reads zero.
func (t *Tableau) setObjective(c []float64) {
	for j := range t.obj {
		t.obj[j] = 0
	}
	for j := 0; j < t.n && j < len(c); j++ {
		t.obj[j] = -c[j]
	}
	t.zval = 0
	t.reduceObjective()
}

// setPhaseOneObjective installs minimize Σ artificials (as maximize of its
// negation) and re-reduces against the artificial basis.
func (t *Tableau) setPhaseOneObjective() {
	for j := range t.obj {
		t.obj[j] = 0
	}
	for j := t.n + t.slacks; j < t.cols; j++ {
		t.obj[j] = 1
	}
	t.zval = 0
	t.reduceObjective()
}

// reduceObjective eliminates every basic column from the objective row.
func (t *Tableau) reduceObjective() {
	for r, col := range t.basis {
		f := t.obj[col]
		if f == 0 {
			continue
		}
		floats.AddScaled(t.obj, -f, t.a.RawRowView(r))
		t.obj[col] = 0
		t.zval -= f * t.b[r]
	}
}

// infeasibility is the Phase-1 optimum Σ artificials for the current basis
// (valid once Phase 1 terminates; 0 within ε means a feasible basis exists).
func (t *Tableau) infeasibility() float64 { return -t.zval }

// dropRow removes redundant row r (all-zero after Phase 1) from the tableau.
func (t *Tableau) dropRow(r int) {
	rows := make([][]float64, 0, t.m-1)
	for i := 0; i < t.m; i++ {
		if i != r {
			rows = append(rows, append([]float64(nil), t.a.RawRowView(i)...))
		}
	}
	t.b = append(t.b[:r], t.b[r+1:]...)
	t.basis = append(t.basis[:r], t.basis[r+1:]...)
	t.m--
	t.a = mat.NewDense(maxInt(t.m, 1), t.cols, nil)
	for i, row := range rows {
		copy(t.a.RawRowView(i), row)
	}
}

// stripArtificials removes the artificial columns once none is basic.
// Column indices below n+m are unchanged, so basis entries stay valid.
func (t *Tableau) stripArtificials() {
	if t.art == 0 {
		return
	}
	keep := t.n + t.slacks
	a := mat.NewDense(maxInt(t.m, 1), keep, nil)
	for r := 0; r < t.m; r++ {
		copy(a.RawRowView(r), t.a.RawRowView(r)[:keep])
	}
	t.a = a
	t.obj = t.obj[:keep]
	t.cols = keep
	t.art = 0
}
