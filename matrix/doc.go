// Package matrix is the numeric foundation of rowtrace.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with value semantics: constructors
//     deep-copy their input and no two Dense values share storage.
//   - Pure elementary row primitives (SumRows, SwitchRows, ScalarVectorProduct,
//     Column, IsZeroRow) that never mutate their inputs, so snapshots taken
//     before an operation stay valid after it.
//   - Augmentation helpers ([A|b], [A|I]) and column slicing.
//   - Verification kernels (Mul, MatVec, Transpose, AllClose).
//   - Epsilon, the single zero tolerance shared by every comparison in the
//     elimination, solving and inversion engines.
//
// Malformed input is reported with sentinel errors (ErrShape, ErrOutOfRange,
// ErrNonFinite, ErrNotVector, ...) matched with errors.Is.
package matrix
