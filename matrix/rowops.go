// SPDX-License-Identifier: MIT

// Package matrix - elementary row primitives.
//
// Purpose:
//   - Provide the pure building blocks of Gaussian elimination: column
//     extraction, zero-row test, row combination, row swap, vector scaling.
//
// Contract:
//   - No primitive mutates its receiver or arguments; each returns fresh
//     storage. Trace snapshots rely on this: a step taken before an operation
//     must stay valid after it.
//   - Validation failures return sentinels (ErrOutOfRange, ErrNonFinite,
//     ErrNotVector) wrapped with the primitive name.
package matrix

import "fmt"

const (
	opSumRows    = "SumRows"
	opSwitchRows = "SwitchRows"
	opScaleVec   = "ScalarVectorProduct"
	opIsZeroRow  = "IsZeroRow"
)

// Column returns a copy of column j.
// Errors: ErrOutOfRange if j<0 or j>=Cols.
// Complexity: O(r).
func (m *Dense) Column(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxColumn, -1, j, ErrOutOfRange)
	}
	col := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		col[i] = m.data[i*m.c+j]
	}

	return col, nil
}

// IsZeroRow reports whether every entry of row i satisfies |x| < Epsilon.
// An empty row (0 columns) is a zero row.
// Errors: ErrOutOfRange.
// Complexity: O(c).
func (m *Dense) IsZeroRow(i int) (bool, error) {
	if i < 0 || i >= m.r {
		return false, matrixErrorf(opIsZeroRow, fmt.Errorf("row %d: %w", i, ErrOutOfRange))
	}
	base := i * m.c
	for j := 0; j < m.c; j++ {
		if !IsZero(m.data[base+j]) {
			return false, nil
		}
	}

	return true, nil
}

// SumRows returns the new row  row[dst] + k·row[src]  without mutating m.
// MAIN DESCRIPTION:
//   - The row-combination primitive used by every elimination step.
//
// Implementation:
//   - Stage 1: reject non-finite k (ErrNonFinite); this check runs first.
//   - Stage 2: bounds-check src and dst (ErrOutOfRange).
//   - Stage 3: out[j] = k*src[j] + dst[j] in fixed j order.
//
// Complexity:
//   - Time O(c), Space O(c).
func (m *Dense) SumRows(src, dst int, k float64) ([]float64, error) {
	if !IsFinite(k) {
		return nil, matrixErrorf(opSumRows, fmt.Errorf("multiple %v: %w", k, ErrNonFinite))
	}
	if src < 0 || src >= m.r || dst < 0 || dst >= m.r {
		return nil, matrixErrorf(opSumRows, fmt.Errorf("rows (%d,%d): %w", src, dst, ErrOutOfRange))
	}

	out := make([]float64, m.c)
	sb, db := src*m.c, dst*m.c
	for j := 0; j < m.c; j++ {
		out[j] = k*m.data[sb+j] + m.data[db+j]
	}

	return out, nil
}

// SwitchRows returns a new Dense equal to m with rows i1 and i2 exchanged.
// The result never aliases m. i1 == i2 yields a plain copy.
// Errors: ErrOutOfRange.
// Complexity: O(r*c).
func (m *Dense) SwitchRows(i1, i2 int) (*Dense, error) {
	if i1 < 0 || i1 >= m.r || i2 < 0 || i2 >= m.r {
		return nil, matrixErrorf(opSwitchRows, fmt.Errorf("rows (%d,%d): %w", i1, i2, ErrOutOfRange))
	}
	out := m.Copy()
	if i1 == i2 {
		return out, nil
	}
	a, b := i1*m.c, i2*m.c
	for j := 0; j < m.c; j++ {
		out.data[a+j], out.data[b+j] = out.data[b+j], out.data[a+j]
	}

	return out, nil
}

// ScalarVectorProduct returns k·vec as a fresh slice.
// Errors: ErrNotVector when vec is nil.
// Complexity: O(len(vec)).
func ScalarVectorProduct(vec []float64, k float64) ([]float64, error) {
	if vec == nil {
		return nil, matrixErrorf(opScaleVec, ErrNotVector)
	}
	out := make([]float64, len(vec))
	for i, v := range vec {
		out[i] = v * k
	}

	return out, nil
}

// IsPivotElement reports whether (row, col) of an RREF grid is a pivot:
// col is listed in pivotCols, the entry is 1 within Epsilon and every entry
// left of it in the row is zero. Out-of-range coordinates report false.
// Assumes data is already in RREF.
func IsPivotElement(data [][]float64, row, col int, pivotCols []int) bool {
	if row < 0 || row >= len(data) || col < 0 || col >= len(data[row]) {
		return false
	}
	listed := false
	for _, pc := range pivotCols {
		if pc == col {
			listed = true
			break
		}
	}
	if !listed || !IsOne(data[row][col]) {
		return false
	}
	for j := 0; j < col; j++ {
		if IsNonZero(data[row][j]) {
			return false
		}
	}

	return true
}
