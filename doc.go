// Package rowtrace is a deterministic step-trace engine for row reduction.
//
// Given a matrix (and optionally a constant vector) it performs Gaussian or
// Gauss-Jordan elimination, solves linear systems or inverts matrices, and
// returns not just the result but every intermediate state: each pivot
// search, swap, scale and elimination, frozen as an independent snapshot.
//
// ✨ What you get
//
//   - REF / RREF traces with a fixed pivot tie-break (exact 1, then -1, then first nonzero)
//   - Full solving: unique solution, parametric general solution
//     (particular solution + null-space basis) or an inconsistency verdict
//   - Inversion through [A|I] with singularity detection
//   - A seekable, rewindable Trace that never recomputes
//
// Under the hood, everything is organized in subpackages:
//
//	matrix/        Dense values, pure row primitives, Epsilon, validators
//	step/          Step record, Trace, Cursor, Recorder and options
//	elimination/   REF and RREF engines
//	solver/        rank analysis and classification of A·x = b
//	inverse/       Gauss-Jordan inversion
//	cmd/rowtrace   CLI and HTTP service
//
// Quick example:
//
//	m, _ := matrix.New([][]float64{{2, 0}, {0, 3}})
//	tr, _ := rowtrace.Run(rowtrace.Full, m, []float64{4, 9})
//	last, _ := tr.Last()
//	fmt.Println(last.Solution) // [2 3]
//
// Singular matrices and unsolvable systems are not errors: they are the last
// step of the trace. Errors are reserved for malformed input.
package rowtrace
