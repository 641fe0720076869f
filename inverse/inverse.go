// SPDX-License-Identifier: MIT

// Package inverse traces matrix inversion by Gauss-Jordan elimination on the
// augmented matrix [A|I].
//
// Key features:
//   - InverseSteps(m, opts...): full step trace ending in complete or no_inverse
//   - Invert(m): the inverse alone (or ok == false for singular input)
//
// Algorithm:
//
//   - Pivot search scans columns 0..n-1 only and takes the first nonzero entry
//     at or below the next pivot row. There is deliberately no 1/-1 preference here.
//   - A column without a candidate means A is singular: the scan stops.
//   - Otherwise: swap if needed, scale the pivot row to 1, clear the column in
//     every other row (above and below).
//   - With n pivots the right half of the final [I|A⁻¹] is the inverse.
//
// A non-square input is reported as a terminal error step, not as a Go error.
//
// Complexity:
//
//   - Time:   O(n³) arithmetic plus O(n²) per recorded step.
//   - Memory: O(S·n²) for S recorded steps.
package inverse

import (
	"fmt"

	"github.com/katalvlaran/rowtrace/matrix"
	"github.com/katalvlaran/rowtrace/step"
)

// InverseSteps traces the inversion of m. The input is never mutated.
//
// Errors:
//   - matrix.ErrNilMatrix if m is nil.
//   - context errors and OnStep hook errors.
func InverseSteps(m *matrix.Dense, opts ...step.Option) (*step.Trace, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("inverse: %w", err)
	}
	rec := step.NewRecorder(opts...)
	if _, err := record(rec, m); err != nil {
		return nil, err
	}

	return rec.Trace(), nil
}

// Invert returns A⁻¹, or ok == false when m is singular.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
func Invert(m *matrix.Dense) (inv *matrix.Dense, ok bool, err error) {
	if err = matrix.ValidateNotNil(m); err != nil {
		return nil, false, fmt.Errorf("inverse: %w", err)
	}
	if err = matrix.ValidateSquare(m); err != nil {
		return nil, false, fmt.Errorf("inverse: %w", err)
	}
	inv, err = record(step.NewSilent(), m)
	if err != nil {
		return nil, false, err
	}

	return inv, inv != nil, nil
}

// inverter holds the working state of one inversion.
type inverter struct {
	rec       *step.Recorder
	work      *matrix.Dense // [A|I], n×2n
	n         int
	pivotCols []int
}

// emit snapshots the augmented working matrix into a step.
func (v *inverter) emit(action step.Action, ops []step.Operand, extra func(*step.Step)) error {
	if v.rec.Silent() {
		return nil
	}
	s := step.Step{
		Phase:       step.PhaseInverse,
		Action:      action,
		Description: step.Describe(string(action), ops...),
		Matrix:      v.work.Data(),
		Augmented:   true,
		PivotCols:   v.pivotCols,
	}
	if extra != nil {
		extra(&s)
	}

	return v.rec.Emit(s)
}

// record runs the inversion; a nil result with a nil error means "no inverse".
func record(rec *step.Recorder, m *matrix.Dense) (*matrix.Dense, error) {
	original := m.Data()
	n := m.Rows()
	dims := []step.Operand{step.Op(step.OpRows, float64(m.Rows())), step.Op(step.OpCols, float64(m.Cols()))}

	if m.Rows() != m.Cols() {
		return nil, rec.Emit(step.Step{
			Phase:       step.PhaseInverse,
			Action:      step.ActionError,
			Description: step.Describe(string(step.ActionError), dims...),
			Matrix:      original,
			IsValid:     step.Bool(false),
		})
	}

	if err := rec.Emit(step.Step{
		Phase:       step.PhaseInverse,
		Action:      step.ActionStart,
		Description: step.Describe(string(step.ActionStart), step.Op(step.OpN, float64(n))),
		Matrix:      original,
		IsValid:     step.Bool(true),
	}); err != nil {
		return nil, err
	}
	if err := rec.Emit(step.Step{
		Phase:       step.PhaseInverse,
		Action:      step.ActionCreateAugmented,
		Description: step.Describe(string(step.ActionCreateAugmented), step.Op(step.OpN, float64(n))),
		Matrix:      original,
		Augmented:   true,
	}); err != nil {
		return nil, err
	}

	aug, err := m.AugmentIdentity()
	if err != nil {
		return nil, fmt.Errorf("inverse: %w", err)
	}
	v := &inverter{rec: rec, work: aug, n: n, pivotCols: make([]int, 0, n)}

	if err = v.emit(step.ActionAugmentedCreated, []step.Operand{step.Op(step.OpN, float64(n))},
		func(s *step.Step) { s.OriginalMatrix = original }); err != nil {
		return nil, err
	}
	if err = v.emit(step.ActionEliminationStart, nil, nil); err != nil {
		return nil, err
	}

	singular, err := v.reduce()
	if err != nil {
		return nil, err
	}

	rank := len(v.pivotCols)
	if singular || rank < n {
		return nil, rec.Emit(step.Step{
			Phase:       step.PhaseInverse,
			Action:      step.ActionNoInverse,
			Description: step.Describe(string(step.ActionNoInverse), step.Op(step.OpRank, float64(rank)), step.Op(step.OpN, float64(n))),
			Matrix:      original,
			PivotCols:   v.pivotCols,
			Rank:        step.Int(rank),
			HasInverse:  step.Bool(false),
		})
	}

	inv, err := v.work.Columns(n, 2*n)
	if err != nil {
		return nil, fmt.Errorf("inverse: %w", err)
	}
	invData := inv.Data()

	if err = v.emit(step.ActionExtractInverse, []step.Operand{step.Op(step.OpN, float64(n))},
		func(s *step.Step) { s.InverseMatrix = invData }); err != nil {
		return nil, err
	}
	if err = rec.Emit(step.Step{
		Phase:          step.PhaseInverse,
		Action:         step.ActionComplete,
		Description:    step.Describe(string(step.ActionComplete), step.Op(step.OpN, float64(n))),
		OriginalMatrix: original,
		InverseMatrix:  invData,
		Rank:           step.Int(n),
		HasInverse:     step.Bool(true),
	}); err != nil {
		return nil, err
	}

	rec.Options().Logger.Debug("inversion finished", "n", n, "steps", rec.Len())

	return inv, nil
}

// reduce runs Gauss-Jordan over columns 0..n-1 and reports singularity.
func (v *inverter) reduce() (singular bool, err error) {
	next := 0
	for j := 0; j < v.n; j++ {
		if next >= v.n {
			break
		}
		col, start := j, next
		if err = v.emit(step.ActionSearchPivot,
			[]step.Operand{step.Op(step.OpCol, float64(j)), step.Op(step.OpSearchStart, float64(next))},
			func(s *step.Step) {
				s.CurrentColumn = step.Int(col)
				s.SearchStart = step.Int(start)
			}); err != nil {
			return false, err
		}

		pivotRow := -1
		for i := next; i < v.n; i++ {
			x, _ := v.work.At(i, j)
			if matrix.IsNonZero(x) {
				pivotRow = i
				break
			}
		}
		if pivotRow < 0 {
			return true, v.emit(step.ActionSingularDetected,
				[]step.Operand{step.Op(step.OpCol, float64(j))},
				func(s *step.Step) { s.CurrentColumn = step.Int(col) })
		}

		v.pivotCols = append(v.pivotCols, j)
		pr := pivotRow
		value, _ := v.work.At(pivotRow, j)
		if err = v.emit(step.ActionPivotFound,
			[]step.Operand{step.Op(step.OpRow, float64(pivotRow)), step.Op(step.OpCol, float64(j)), step.Op(step.OpValue, value)},
			func(s *step.Step) { s.PivotPosition = step.At(pr, col) }); err != nil {
			return false, err
		}

		if err = v.bringUp(pivotRow, next); err != nil {
			return false, err
		}
		if err = v.normalize(j, next); err != nil {
			return false, err
		}
		if err = v.clearColumn(j, next); err != nil {
			return false, err
		}
		if err = v.emit(step.ActionColumnComplete, []step.Operand{step.Op(step.OpCol, float64(j))}, nil); err != nil {
			return false, err
		}
		next++
	}

	return false, nil
}

func (v *inverter) bringUp(pivotRow, next int) error {
	if pivotRow == next {
		return nil
	}
	ops := []step.Operand{step.Op(step.OpFrom, float64(pivotRow)), step.Op(step.OpTo, float64(next))}
	if err := v.emit(step.ActionSwapExplanation, ops, nil); err != nil {
		return err
	}
	swapped, err := v.work.SwitchRows(pivotRow, next)
	if err != nil {
		return fmt.Errorf("inverse: %w", err)
	}
	v.work = swapped

	return v.emit(step.ActionSwapped, ops, nil)
}

// normalize always scales the pivot row by 1/pivot, even when the pivot is 1.
func (v *inverter) normalize(j, row int) error {
	p, _ := v.work.At(row, j)
	k := 1 / p
	ops := []step.Operand{step.Op(step.OpRow, float64(row)), step.Op(step.OpValue, p), step.Op(step.OpFactor, k)}
	if err := v.emit(step.ActionScaleExplanation, ops, nil); err != nil {
		return err
	}
	vals, err := v.work.Row(row)
	if err != nil {
		return fmt.Errorf("inverse: %w", err)
	}
	if vals, err = matrix.ScalarVectorProduct(vals, k); err != nil {
		return fmt.Errorf("inverse: %w", err)
	}
	if err = v.work.SetRow(row, vals); err != nil {
		return fmt.Errorf("inverse: %w", err)
	}

	return v.emit(step.ActionScaled, ops, nil)
}

// clearColumn eliminates column j from every row except the pivot row.
func (v *inverter) clearColumn(j, pivotRow int) error {
	if err := v.emit(step.ActionEliminateExplanation,
		[]step.Operand{step.Op(step.OpCol, float64(j)), step.Op(step.OpPivotRow, float64(pivotRow))}, nil); err != nil {
		return err
	}
	for i := 0; i < v.n; i++ {
		if i == pivotRow {
			continue
		}
		x, _ := v.work.At(i, j)
		if !matrix.IsNonZero(x) {
			continue
		}
		factor := -x
		row := i
		ops := []step.Operand{
			step.Op(step.OpRow, float64(i)),
			step.Op(step.OpCol, float64(j)),
			step.Op(step.OpPivotRow, float64(pivotRow)),
			step.Op(step.OpFactor, factor),
		}
		target := func(s *step.Step) { s.TargetPosition = step.At(row, j) }
		if err := v.emit(step.ActionEliminateRow, ops, target); err != nil {
			return err
		}
		vals, err := v.work.SumRows(pivotRow, i, factor)
		if err != nil {
			return fmt.Errorf("inverse: %w", err)
		}
		if err = v.work.SetRow(i, vals); err != nil {
			return fmt.Errorf("inverse: %w", err)
		}
		if err = v.emit(step.ActionRowEliminated, ops, target); err != nil {
			return err
		}
	}

	return nil
}
