// SPDX-License-Identifier: MIT

// Package matrix: numeric policy (single source of truth).
//
// Every zero / equality test in the module goes through the predicates below,
// so singular-column and free-variable detection stay consistent between the
// elimination engine, the solver and the inversion engine.
//
// Notes:
//   - Epsilon is intentionally fixed; traces must be reproducible bit-for-bit
//     for identical inputs.
//   - IsZero is strict (|x| < Epsilon) while IsNonZero is |x| > Epsilon; the
//     boundary value Epsilon itself is neither, exactly like the row scans.
package matrix

import "math"

// Epsilon is the fixed tolerance used system-wide for zero and equality tests.
const Epsilon = 1e-10

// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
const DefaultValidateNaNInf = true

// IsZero reports |x| < Epsilon.
func IsZero(x float64) bool { return math.Abs(x) < Epsilon }

// IsNonZero reports |x| > Epsilon.
func IsNonZero(x float64) bool { return math.Abs(x) > Epsilon }

// IsOne reports |x-1| < Epsilon.
func IsOne(x float64) bool { return math.Abs(x-1) < Epsilon }

// IsNegOne reports |x+1| < Epsilon.
func IsNegOne(x float64) bool { return math.Abs(x+1) < Epsilon }

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
