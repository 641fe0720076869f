// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Guarantee value semantics: constructors deep-copy their input and no two
//     Dense values ever share a backing buffer.
//   - Enforce a numeric policy (rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Build matrices from [][]float64 with New; it validates the grid and copies it.
//   - Use Data() to take an independent [][]float64 snapshot (trace steps do this).
//   - Row primitives (SumRows/SwitchRows/...) live in rowops.go and never mutate.
//
// Complexity quicksheet:
//   - New: O(r*c) copy; At/Set: O(1); Clone/Data: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"     // method tag used in error wrappers
	ctxSet    = "Set"    // method tag used in error wrappers
	ctxRow    = "Row"    // method tag used in error wrappers
	ctxSetRow = "SetRow" // method tag used in error wrappers
	ctxColumn = "Column" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Inputs:
//   - method: context tag (ctxAt/ctxSet/...)
//   - row, col: coordinates (-1 when not applicable)
//   - err: sentinel (e.g., ErrOutOfRange, ErrNonFinite)
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); both may be zero.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set (policy default from numeric.go).
type Dense struct {
	r, c           int       // row and column counts (>=0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil) // *Dense implements our public Matrix interface
	_ fmt.Stringer = (*Dense)(nil)
)

// New builds a Dense from a row grid, deep-copying every value.
// MAIN DESCRIPTION:
//   - Canonical constructor for user input ("create").
//
// Implementation:
//   - Stage 1: rows = len(data); cols = len(data[0]) (0 when there are no rows).
//   - Stage 2: every row must have exactly cols entries; else ErrShape.
//   - Stage 3: every value must be finite; else ErrNonFinite.
//   - Stage 4: copy into a fresh flat buffer.
//
// Behavior highlights:
//   - The caller's slices are never retained; later edits to data do not leak in.
//   - A nil or empty grid yields a legal 0×0 matrix.
//
// Errors:
//   - ErrShape (ragged grid), ErrNonFinite (NaN/±Inf entry).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(data [][]float64) (*Dense, error) {
	rows := len(data)
	cols := 0
	if rows > 0 {
		cols = len(data[0])
	}

	buf := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		if len(data[i]) != cols {
			return nil, fmt.Errorf("New: row %d has %d entries, want %d: %w", i, len(data[i]), cols, ErrShape)
		}
		for j := 0; j < cols; j++ {
			if !IsFinite(data[i][j]) {
				return nil, fmt.Errorf("New: value at (%d,%d): %w", i, j, ErrNonFinite)
			}
		}
		copy(buf[i*cols:(i+1)*cols], data[i])
	}

	return &Dense{r: rows, c: cols, data: buf, validateNaNInf: DefaultValidateNaNInf}, nil
}

// NewDense creates an r×c zero matrix using row-major storage.
//
// Errors:
//   - ErrShape when rows<0 or cols<0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrShape)
	}
	// make() zero-fills deterministically; len may legally be 0.
	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with their own context.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNonFinite for NaN/±Inf under the default policy.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && !IsFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNonFinite)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy) as a Matrix.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix { return m.Copy() }

// Copy is Clone with the concrete return type; engines use it for working copies.
// Complexity: O(r*c).
func (m *Dense) Copy() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// Data returns an independent [][]float64 snapshot of the matrix.
// MAIN DESCRIPTION:
//   - Used by the trace engines to freeze the working matrix into a step.
//
// Behavior highlights:
//   - Every row is a fresh slice; mutating the result never touches m and
//     later mutation of m never shows up in the result.
//   - A 0-row matrix yields an empty, non-nil slice.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Data() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, -1, ErrOutOfRange)
	}
	row := make([]float64, m.c)
	copy(row, m.data[i*m.c:(i+1)*m.c])

	return row, nil
}

// SetRow overwrites row i with a copy of vals.
// MAIN DESCRIPTION:
//   - The only bulk mutator; engines call it on their private working copies.
//
// Errors:
//   - ErrOutOfRange (bad i), ErrDimensionMismatch (len(vals) != Cols),
//     ErrNonFinite (NaN/±Inf under the default policy).
func (m *Dense) SetRow(i int, vals []float64) error {
	if i < 0 || i >= m.r {
		return denseErrorf(ctxSetRow, i, -1, ErrOutOfRange)
	}
	if len(vals) != m.c {
		return denseErrorf(ctxSetRow, i, -1, ErrDimensionMismatch)
	}
	if m.validateNaNInf {
		for j, v := range vals {
			if !IsFinite(v) {
				return denseErrorf(ctxSetRow, i, j, ErrNonFinite)
			}
		}
	}
	copy(m.data[i*m.c:(i+1)*m.c], vals)

	return nil
}

// String provides a readable row-wise dump for diagnostics.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
