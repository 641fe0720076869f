// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"github.com/katalvlaran/rowtrace/elimination"
	"github.com/katalvlaran/rowtrace/matrix"
	"github.com/katalvlaran/rowtrace/step"
)

// Analysis is the classification of A·x = b together with every artifact
// the trace reports.
type Analysis struct {
	Type SolutionType

	// RankA is the pivot count of the coefficient part; RankAb adds one when a
	// contradiction row (0 = c, c ≠ 0) exists.
	RankA, RankAb int
	// ContradictionRow is the first inconsistent row, or -1.
	ContradictionRow int
	// Variables is the number of unknowns (columns of A).
	Variables int

	Reduced   *matrix.Dense // RREF of A
	Constants []float64     // transformed b
	PivotCols []int
	FreeCols  []int
	ZeroRows  []step.ZeroRow

	// Solution is set only for SolutionUnique (empty, not nil, when Variables == 0).
	Solution []float64
	// ParticularSolution, BasisVectors and Equations are set only for SolutionInfinite.
	ParticularSolution []float64
	BasisVectors       [][]float64
	Equations          []step.Equation
}

// SolutionType is the classification of a system.
type SolutionType = step.SolutionType

// Classifications, re-exported for callers that only import solver.
const (
	Unique   = step.SolutionUnique
	Infinite = step.SolutionInfinite
	None     = step.SolutionNone
)

// Analyze classifies A·x = b without recording steps. A nil b is the
// homogeneous system A·x = 0.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrNonFinite.
func Analyze(m *matrix.Dense, b []float64) (*Analysis, error) {
	b, err := constantsFor(m, b)
	if err != nil {
		return nil, err
	}
	res, err := elimination.Reduce(m, b)
	if err != nil {
		return nil, fmt.Errorf("solver: %w", err)
	}

	return analyze(res, m.Cols()), nil
}

// constantsFor validates b against m, substituting zeros for a nil b.
func constantsFor(m *matrix.Dense, b []float64) ([]float64, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("solver: %w", err)
	}
	if b == nil {
		return make([]float64, m.Rows()), nil
	}
	if err := matrix.ValidateConstants(b, m.Rows()); err != nil {
		return nil, fmt.Errorf("solver: constants: %w", err)
	}

	return b, nil
}

// analyze derives ranks, classification and solution artifacts from an RREF.
//
// Implementation:
//   - Stage 1: rank(A) = |pivotCols|. Rows at index >= rank(A) are zero rows;
//     the first whose constant exceeds Epsilon is a contradiction and bumps
//     rank([A|b]) by one.
//   - Stage 2: rank(A) == rank([A|b]) == n is unique; == but < n is infinite;
//     otherwise no solution.
//   - Stage 3 (unique): x[pivotCols[i]] = b[i], other entries 0.
//   - Stage 3 (infinite): one equation per pivot row, particular solution with
//     free variables at 0, one basis vector per free column by back-substitution.
//
// Complexity:
//   - Time O(f·r·n) for f free columns, Space O(f·n).
func analyze(res *elimination.Result, vars int) *Analysis {
	R := res.Matrix
	b := res.Constants
	rankA := res.Rank()

	a := &Analysis{
		RankA:            rankA,
		RankAb:           rankA,
		ContradictionRow: -1,
		Variables:        vars,
		Reduced:          R,
		Constants:        b,
		PivotCols:        res.PivotCols,
	}

	for i := rankA; i < R.Rows(); i++ {
		bad := matrix.IsNonZero(b[i])
		a.ZeroRows = append(a.ZeroRows, step.ZeroRow{Row: i, Constant: b[i], Contradiction: bad})
		if bad && a.ContradictionRow < 0 {
			a.ContradictionRow = i
			a.RankAb = rankA + 1
		}
	}

	switch {
	case a.RankA == a.RankAb && a.RankA == vars:
		a.Type = Unique
		a.Solution = make([]float64, vars)
		for i, pc := range a.PivotCols {
			a.Solution[pc] = b[i]
		}
	case a.RankA == a.RankAb:
		a.Type = Infinite
		a.FreeCols = freeColumns(a.PivotCols, vars)
		a.Equations = equations(R, b, a.PivotCols, a.FreeCols)
		a.ParticularSolution = make([]float64, vars)
		for i, pc := range a.PivotCols {
			a.ParticularSolution[pc] = b[i]
		}
		a.BasisVectors = basis(R, a.PivotCols, a.FreeCols, vars)
	default:
		a.Type = None
	}

	return a
}

// freeColumns lists the columns of [0, vars) that hold no pivot, ascending.
func freeColumns(pivotCols []int, vars int) []int {
	isPivot := make([]bool, vars)
	for _, pc := range pivotCols {
		isPivot[pc] = true
	}
	free := make([]int, 0, vars-len(pivotCols))
	for j := 0; j < vars; j++ {
		if !isPivot[j] {
			free = append(free, j)
		}
	}

	return free
}

// equations reads x[pivot] = b[i] - Σ R[i][f]·x[f] off each pivot row.
// Terms carry the moved-over sign (Coeff = -R[i][f]); zero entries are skipped.
func equations(R *matrix.Dense, b []float64, pivotCols, freeCols []int) []step.Equation {
	eqs := make([]step.Equation, 0, len(pivotCols))
	for i, pc := range pivotCols {
		eq := step.Equation{PivotVar: pc, Row: i, Constant: b[i]}
		for _, f := range freeCols {
			v, _ := R.At(i, f)
			if matrix.IsNonZero(v) {
				eq.Terms = append(eq.Terms, step.Term{FreeVar: f, Coeff: -v})
			}
		}
		eqs = append(eqs, eq)
	}

	return eqs
}

// basis builds one null-space vector per free column: that free variable is 1,
// the others 0, and pivot variables are back-substituted from the bottom pivot
// row up as x[pc] = -Σ_{j>pc} R[row][j]·x[j].
func basis(R *matrix.Dense, pivotCols, freeCols []int, vars int) [][]float64 {
	out := make([][]float64, 0, len(freeCols))
	for _, f := range freeCols {
		v := make([]float64, vars)
		v[f] = 1
		for row := len(pivotCols) - 1; row >= 0; row-- {
			pc := pivotCols[row]
			sum := 0.0
			for j := pc + 1; j < vars; j++ {
				r, _ := R.At(row, j)
				sum += r * v[j]
			}
			v[pc] = -sum
		}
		out = append(out, v)
	}

	return out
}
