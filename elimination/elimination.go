// SPDX-License-Identifier: MIT

// Package elimination implements traced Gaussian (REF) and Gauss-Jordan
// (RREF) elimination over matrix.Dense.
//
// Key features:
//   - Run(m, constants, jordan, opts...): full step trace, one step per decision point
//   - Record(rec, ...): the same engine emitting into a caller-owned Recorder
//   - Reduce(m, constants): silent RREF through the identical code path
//
// Algorithm:
//
//   - Phase 1 (forward), per column j while pivot rows remain: scan rows from
//     the next pivot row down; an exact 1 wins immediately, else the first -1,
//     else the first nonzero. No candidate makes j a free column. Swap the
//     chosen row up, scale it to 1, clear entries below.
//   - Phase 2 (backward, jordan only): pivots from last to first, clear entries above.
//
// Complexity:
//
//   - Time:   O(r·c·min(r,c)) arithmetic; each step snapshot adds O(r·c).
//   - Memory: O(S·r·c) for S recorded steps.
//
// Errors:
//
//   - matrix.ErrNilMatrix         if m is nil.
//   - matrix.ErrDimensionMismatch if constants is non-nil and len != Rows.
//   - matrix.ErrNonFinite         if constants holds NaN/±Inf.
//   - context.Canceled            if ctx is done.
//   - any error returned by the OnStep hook.
package elimination

import (
	"fmt"

	"github.com/katalvlaran/rowtrace/matrix"
	"github.com/katalvlaran/rowtrace/step"
)

// Result is the final state of an elimination.
type Result struct {
	// Matrix is the reduced matrix (REF or RREF).
	Matrix *matrix.Dense
	// PivotCols lists pivot columns in discovery order; len is the rank.
	PivotCols []int
	// Pivots lists final pivot positions in discovery order.
	Pivots []step.Position
	// Constants is the transformed constant vector; nil when none was given.
	Constants []float64
}

// Rank returns the number of pivots.
func (r *Result) Rank() int { return len(r.PivotCols) }

// Run traces the elimination of m (and the parallel constant vector, if any).
// jordan selects RREF (true) or REF (false). The input is never mutated.
func Run(m *matrix.Dense, constants []float64, jordan bool, opts ...step.Option) (*step.Trace, error) {
	rec := step.NewRecorder(opts...)
	if _, err := Record(rec, m, constants, jordan); err != nil {
		return nil, err
	}

	return rec.Trace(), nil
}

// REF traces forward elimination only.
func REF(m *matrix.Dense, constants []float64, opts ...step.Option) (*step.Trace, error) {
	return Run(m, constants, false, opts...)
}

// RREF traces both phases.
func RREF(m *matrix.Dense, constants []float64, opts ...step.Option) (*step.Trace, error) {
	return Run(m, constants, true, opts...)
}

// Reduce returns the RREF of m without recording steps. It runs exactly the
// code Run does, so its floats agree bit-for-bit with a traced run.
func Reduce(m *matrix.Dense, constants []float64) (*Result, error) {
	return Record(step.NewSilent(), m, constants, true)
}

// Record runs the elimination emitting every step into rec.
func Record(rec *step.Recorder, m *matrix.Dense, constants []float64, jordan bool) (*Result, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("elimination: %w", err)
	}
	if err := matrix.ValidateConstants(constants, m.Rows()); err != nil {
		return nil, fmt.Errorf("elimination: constants: %w", err)
	}

	e := &eliminator{
		rec:       rec,
		work:      m.Copy(),
		jordan:    jordan,
		pivotCols: make([]int, 0, m.Cols()),
		pivots:    make([]step.Position, 0, m.Cols()),
	}
	if constants != nil {
		e.aug = make([]float64, len(constants))
		copy(e.aug, constants)
	}

	if err := e.forward(); err != nil {
		return nil, err
	}
	if jordan {
		if err := e.backward(); err != nil {
			return nil, err
		}
	}
	if err := e.final(); err != nil {
		return nil, err
	}

	rec.Options().Logger.Debug("elimination finished",
		"jordan", jordan,
		"rank", len(e.pivotCols),
		"steps", rec.Len(),
	)

	return &Result{
		Matrix:    e.work,
		PivotCols: e.pivotCols,
		Pivots:    e.pivots,
		Constants: e.aug,
	}, nil
}
