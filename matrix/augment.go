// SPDX-License-Identifier: MIT

// Package matrix - augmentation and column slicing.
//
// Purpose:
//   - Build [A|b] and [A|I] for the solver and the inversion engine.
//   - Slice a contiguous column band back out (e.g. the inverse from [I|A⁻¹]).
//
// All helpers allocate a fresh Dense; inputs are never mutated.
package matrix

import "fmt"

const (
	opAugmentVector   = "AugmentVector"
	opAugmentIdentity = "AugmentIdentity"
	opColumns         = "Columns"
)

// AugmentVector returns the r×(c+1) matrix [m | vec].
// Errors: ErrNotVector (nil vec), ErrDimensionMismatch (len(vec) != Rows),
// ErrNonFinite (NaN/±Inf in vec).
// Complexity: O(r*c).
func (m *Dense) AugmentVector(vec []float64) (*Dense, error) {
	if vec == nil {
		return nil, matrixErrorf(opAugmentVector, ErrNotVector)
	}
	if len(vec) != m.r {
		return nil, matrixErrorf(opAugmentVector, fmt.Errorf("len %d, rows %d: %w", len(vec), m.r, ErrDimensionMismatch))
	}
	if err := ValidateFiniteVec(vec); err != nil {
		return nil, matrixErrorf(opAugmentVector, err)
	}

	out, err := NewDense(m.r, m.c+1)
	if err != nil {
		return nil, matrixErrorf(opAugmentVector, err)
	}
	w := m.c + 1
	for i := 0; i < m.r; i++ {
		copy(out.data[i*w:i*w+m.c], m.data[i*m.c:(i+1)*m.c])
		out.data[i*w+m.c] = vec[i]
	}

	return out, nil
}

// AugmentIdentity returns the n×2n matrix [m | I_n] for a square m.
// Errors: ErrNonSquare.
// Complexity: O(n^2).
func (m *Dense) AugmentIdentity() (*Dense, error) {
	if m.r != m.c {
		return nil, matrixErrorf(opAugmentIdentity, fmt.Errorf("%dx%d: %w", m.r, m.c, ErrNonSquare))
	}
	n := m.r
	out, err := NewDense(n, 2*n)
	if err != nil {
		return nil, matrixErrorf(opAugmentIdentity, err)
	}
	w := 2 * n
	for i := 0; i < n; i++ {
		copy(out.data[i*w:i*w+n], m.data[i*n:(i+1)*n])
		out.data[i*w+n+i] = 1.0
	}

	return out, nil
}

// Columns returns a copy of the column band [c0, c1).
// Errors: ErrOutOfRange unless 0 <= c0 <= c1 <= Cols.
// Complexity: O(r*(c1-c0)).
func (m *Dense) Columns(c0, c1 int) (*Dense, error) {
	if c0 < 0 || c1 < c0 || c1 > m.c {
		return nil, matrixErrorf(opColumns, fmt.Errorf("[%d,%d) of %d: %w", c0, c1, m.c, ErrOutOfRange))
	}
	w := c1 - c0
	out, err := NewDense(m.r, w)
	if err != nil {
		return nil, matrixErrorf(opColumns, err)
	}
	for i := 0; i < m.r; i++ {
		copy(out.data[i*w:(i+1)*w], m.data[i*m.c+c0:i*m.c+c1])
	}

	return out, nil
}
