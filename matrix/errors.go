// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package and by the trace engines built on top of it. All primitives MUST
// return these sentinels and tests MUST check them via errors.Is. No primitive
// panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites add context with matrixErrorf or
// denseErrorf; callers still match with errors.Is.
//
// TAXONOMY (construction / primitive validation only):
//   ErrShape      - ragged or otherwise invalid grid        ("ShapeError")
//   ErrOutOfRange - row/column index outside its bounds     ("RangeError")
//   ErrNonFinite  - NaN/±Inf where a finite value is needed ("ArithmeticError")
//   ErrNotVector  - argument is not a vector                ("TypeError")
//
// Singular matrices and inconsistent systems are NOT errors: the engines
// report them as terminal trace steps.

var (
	// ErrShape is returned when a grid is ragged (rows of different lengths)
	// or a requested shape is negative.
	ErrShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row/Column) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonFinite signals a NaN or ±Inf value where finite values are
	// required (ingestion, Set, row-combination multiples, constant vectors).
	ErrNonFinite = errors.New("matrix: NaN or Inf encountered")

	// ErrNotVector signals that a vector argument is missing (nil).
	ErrNotVector = errors.New("matrix: not a valid vector")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows, or a constant vector whose length
	// differs from the row count.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
