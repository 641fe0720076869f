// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points named after the classic row-reduction vocabulary
//     (create, getColumn, checkZeros, sumRows, switchRows, clone).
//   - Avoid any logic duplication: each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Prefer the *Dense methods inside engines; the facades exist for callers
//     that think in terms of the textbook primitives.

package matrix

// Create builds a validated Dense from a row grid (deep copy).
// Errors: ErrShape, ErrNonFinite.
func Create(data [][]float64) (*Dense, error) {
	return New(data)
}

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// GetColumn returns a copy of column j of m.
// Errors: ErrNilMatrix, ErrOutOfRange.
func GetColumn(m *Dense, j int) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return m.Column(j)
}

// CheckZeros reports whether row i of m is a zero row (every |x| < Epsilon).
// Errors: ErrNilMatrix, ErrOutOfRange.
func CheckZeros(m *Dense, i int) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, err
	}

	return m.IsZeroRow(i)
}

// SumRows returns row[i2] + k·row[i1] of m as a new slice.
// Errors: ErrNilMatrix, ErrNonFinite, ErrOutOfRange.
func SumRows(m *Dense, i1, i2 int, k float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return m.SumRows(i1, i2, k)
}

// SwitchRows returns a copy of m with rows i1 and i2 exchanged.
// Errors: ErrNilMatrix, ErrOutOfRange.
func SwitchRows(m *Dense, i1, i2 int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return m.SwitchRows(i1, i2)
}

// Clone returns a deep copy of m; a nil m yields nil.
func Clone(m *Dense) *Dense {
	if m == nil {
		return nil
	}

	return m.Copy()
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Thin wrapper over Matrix.Clone for API discoverability.
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// Product is an alias of Mul kept for readability in verification code
// (Product(a, inv) ≈ I).
func Product(a, b Matrix) (Matrix, error) {
	return Mul(a, b)
}
