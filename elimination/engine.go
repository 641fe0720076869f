// SPDX-License-Identifier: MIT

package elimination

import (
	"github.com/katalvlaran/rowtrace/matrix"
	"github.com/katalvlaran/rowtrace/step"
)

// eliminator encapsulates the working state of one elimination.
type eliminator struct {
	rec       *step.Recorder
	work      *matrix.Dense   // private working copy
	aug       []float64       // transformed constants, nil when absent
	jordan    bool            // run phase 2
	pivotCols []int           // pivot columns, discovery order
	pivots    []step.Position // pivot positions, discovery order
}

// pivotKind classifies the outcome of a pivot search.
type pivotKind int

const (
	pivotNone pivotKind = iota
	pivotOne
	pivotNegOne
	pivotOther
)

var foundActions = map[pivotKind]step.Action{
	pivotOne:    step.ActionPerfectPivotFound,
	pivotNegOne: step.ActionNegativePivotFound,
	pivotOther:  step.ActionPivotFound,
}

// emit snapshots the working state into a step and records it.
// extra, if non-nil, fills the action-specific fields.
func (e *eliminator) emit(action step.Action, desc step.Description, extra func(*step.Step)) error {
	if e.rec.Silent() {
		return nil
	}
	s := step.Step{
		Phase:           step.PhaseRREF,
		Action:          action,
		Description:     desc,
		Matrix:          e.work.Data(),
		PivotCols:       e.pivotCols,
		Pivots:          e.pivots,
		AugmentedVector: e.aug,
	}
	if extra != nil {
		extra(&s)
	}

	return e.rec.Emit(s)
}

func (e *eliminator) jordanOperand() step.Operand {
	if e.jordan {
		return step.Op(step.OpJordan, 1)
	}

	return step.Op(step.OpJordan, 0)
}

// searchPivot scans column j from row start downward.
// Priority: the first exact 1 ends the scan; otherwise the first -1; otherwise
// the first nonzero. A second -1 competes as a plain nonzero.
func (e *eliminator) searchPivot(j, start int) (row int, kind pivotKind, details []step.SearchEntry) {
	one, neg, other := -1, -1, -1
	rows := e.work.Rows()
	details = make([]step.SearchEntry, 0, rows-start)
	for i := start; i < rows; i++ {
		v, _ := e.work.At(i, j)
		details = append(details, step.SearchEntry{Row: i, Value: v})
		if matrix.IsOne(v) {
			one = i
			break
		} else if matrix.IsNegOne(v) && neg < 0 {
			neg = i
		} else if matrix.IsNonZero(v) && other < 0 {
			other = i
		}
	}

	switch {
	case one >= 0:
		return one, pivotOne, details
	case neg >= 0:
		return neg, pivotNegOne, details
	case other >= 0:
		return other, pivotOther, details
	default:
		return -1, pivotNone, details
	}
}

// swap exchanges rows a and b of the working matrix and the constants.
func (e *eliminator) swap(a, b int) error {
	swapped, err := e.work.SwitchRows(a, b)
	if err != nil {
		return err
	}
	e.work = swapped
	if e.aug != nil {
		e.aug[a], e.aug[b] = e.aug[b], e.aug[a]
	}

	return nil
}

// scale multiplies row i (and its constant) by k.
func (e *eliminator) scale(i int, k float64) error {
	row, err := e.work.Row(i)
	if err != nil {
		return err
	}
	scaled, err := matrix.ScalarVectorProduct(row, k)
	if err != nil {
		return err
	}
	if err = e.work.SetRow(i, scaled); err != nil {
		return err
	}
	if e.aug != nil {
		e.aug[i] *= k
	}

	return nil
}

// combine sets row dst to row dst + k·row src (and the same for constants).
func (e *eliminator) combine(src, dst int, k float64) error {
	row, err := e.work.SumRows(src, dst, k)
	if err != nil {
		return err
	}
	if err = e.work.SetRow(dst, row); err != nil {
		return err
	}
	if e.aug != nil {
		e.aug[dst] += k * e.aug[src]
	}

	return nil
}

// forward runs phase 1 and leaves the matrix in REF.
func (e *eliminator) forward() error {
	if err := e.emit(step.ActionStart, step.Describe(string(step.ActionStart), e.jordanOperand()), nil); err != nil {
		return err
	}
	if err := e.emit(step.ActionGaussStart, step.Describe(string(step.ActionGaussStart), e.jordanOperand()), nil); err != nil {
		return err
	}

	rows, cols := e.work.Rows(), e.work.Cols()
	next := 0
	for j := 0; j < cols; j++ {
		col, start := j, next
		if next >= rows {
			return e.emit(step.ActionNoMoreRows,
				step.Describe(string(step.ActionNoMoreRows), step.Op(step.OpCol, float64(j))),
				func(s *step.Step) {
					s.CurrentColumn = step.Int(col)
					s.SearchStart = step.Int(start)
				})
		}

		err := e.emit(step.ActionSearchPivot,
			step.Describe(string(step.ActionSearchPivot),
				step.Op(step.OpCol, float64(j)),
				step.Op(step.OpSearchStart, float64(next))),
			func(s *step.Step) {
				s.CurrentColumn = step.Int(col)
				s.SearchStart = step.Int(start)
			})
		if err != nil {
			return err
		}

		pivotRow, kind, details := e.searchPivot(j, next)
		if kind == pivotNone {
			err = e.emit(step.ActionNoPivotDetailed,
				step.Describe(string(step.ActionNoPivotDetailed),
					step.Op(step.OpCol, float64(j)),
					step.Op(step.OpSearchStart, float64(next))),
				func(s *step.Step) {
					s.CurrentColumn = step.Int(col)
					s.SearchDetails = details
				})
			if err != nil {
				return err
			}
			continue // free column: pivot row does not advance
		}

		if err = e.pivotFound(j, next, pivotRow, kind, details); err != nil {
			return err
		}
		if err = e.bringUp(j, next, pivotRow); err != nil {
			return err
		}
		if err = e.normalize(j, next); err != nil {
			return err
		}
		if err = e.clearBelow(j, next); err != nil {
			return err
		}
		err = e.emit(step.ActionPivotForwardComplete,
			step.Describe(string(step.ActionPivotForwardComplete),
				step.Op(step.OpRow, float64(next)),
				step.Op(step.OpCol, float64(j)),
				e.jordanOperand()),
			nil)
		if err != nil {
			return err
		}
		next++
	}

	return nil
}

// pivotFound records the chosen pivot at its pre-swap position.
func (e *eliminator) pivotFound(j, next, pivotRow int, kind pivotKind, details []step.SearchEntry) error {
	value, _ := e.work.At(pivotRow, j)
	e.pivotCols = append(e.pivotCols, j)
	e.pivots = append(e.pivots, step.Position{Row: pivotRow, Col: j})

	action := foundActions[kind]

	return e.emit(action,
		step.Describe(string(action),
			step.Op(step.OpRow, float64(pivotRow)),
			step.Op(step.OpCol, float64(j)),
			step.Op(step.OpValue, value),
			step.Op(step.OpSearchStart, float64(next))),
		func(s *step.Step) {
			s.PivotPosition = step.At(pivotRow, j)
			s.SearchDetails = details
		})
}

// bringUp swaps the pivot row into position next when needed.
func (e *eliminator) bringUp(j, next, pivotRow int) error {
	if pivotRow == next {
		return e.emit(step.ActionPivotCorrectPosition,
			step.Describe(string(step.ActionPivotCorrectPosition),
				step.Op(step.OpRow, float64(next)),
				step.Op(step.OpCol, float64(j))),
			nil)
	}

	ops := []step.Operand{step.Op(step.OpFrom, float64(pivotRow)), step.Op(step.OpTo, float64(next))}
	if err := e.emit(step.ActionSwapNeeded, step.Describe(string(step.ActionSwapNeeded), ops...), nil); err != nil {
		return err
	}
	if err := e.swap(pivotRow, next); err != nil {
		return err
	}
	e.pivots[len(e.pivots)-1].Row = next

	return e.emit(step.ActionSwap, step.Describe(string(step.ActionSwap), ops...), nil)
}

// normalize scales the pivot at (next, j) to 1 unless it already is.
func (e *eliminator) normalize(j, next int) error {
	p, _ := e.work.At(next, j)
	if matrix.IsOne(p) {
		return e.emit(step.ActionPivotAlreadyOne,
			step.Describe(string(step.ActionPivotAlreadyOne),
				step.Op(step.OpRow, float64(next)),
				step.Op(step.OpCol, float64(j))),
			nil)
	}

	k := 1 / p
	ops := []step.Operand{
		step.Op(step.OpRow, float64(next)),
		step.Op(step.OpValue, p),
		step.Op(step.OpFactor, k),
	}
	if err := e.emit(step.ActionScaleExplanation, step.Describe(string(step.ActionScaleExplanation), ops...), nil); err != nil {
		return err
	}
	if err := e.scale(next, k); err != nil {
		return err
	}

	return e.emit(step.ActionScale, step.Describe(string(step.ActionScale), ops...), nil)
}

// clearBelow eliminates column j in every row below the pivot row.
func (e *eliminator) clearBelow(j, pivotRow int) error {
	eliminated := 0
	for i := pivotRow + 1; i < e.work.Rows(); i++ {
		v, _ := e.work.At(i, j)
		if !matrix.IsNonZero(v) {
			continue
		}
		if err := e.eliminateRow(step.ActionEliminateExplanation, step.ActionEliminate, i, j, pivotRow, v); err != nil {
			return err
		}
		eliminated++
	}
	if eliminated > 0 {
		return nil
	}

	return e.emit(step.ActionNoEliminationNeeded,
		step.Describe(string(step.ActionNoEliminationNeeded),
			step.Op(step.OpRow, float64(pivotRow)),
			step.Op(step.OpCol, float64(j))),
		nil)
}

// eliminateRow zeroes (i, j) using the pivot row: row i += (-v)·pivot row.
func (e *eliminator) eliminateRow(explain, done step.Action, i, j, pivotRow int, v float64) error {
	factor := -v
	ops := []step.Operand{
		step.Op(step.OpRow, float64(i)),
		step.Op(step.OpCol, float64(j)),
		step.Op(step.OpPivotRow, float64(pivotRow)),
		step.Op(step.OpValue, v),
		step.Op(step.OpFactor, factor),
	}
	target := func(s *step.Step) { s.TargetPosition = step.At(i, j) }

	if err := e.emit(explain, step.Describe(string(explain), ops...), target); err != nil {
		return err
	}
	if err := e.combine(pivotRow, i, factor); err != nil {
		return err
	}

	return e.emit(done, step.Describe(string(done), ops...), target)
}

// backward runs phase 2: pivots from last to first, clearing entries above.
func (e *eliminator) backward() error {
	if err := e.emit(step.ActionGaussJordanStart,
		step.Describe(string(step.ActionGaussJordanStart), step.Op(step.OpRank, float64(len(e.pivots)))),
		nil); err != nil {
		return err
	}

	for p := len(e.pivots) - 1; p >= 0; p-- {
		pv := e.pivots[p]
		current := func(s *step.Step) { s.CurrentPivot = step.At(pv.Row, pv.Col) }
		pos := []step.Operand{step.Op(step.OpRow, float64(pv.Row)), step.Op(step.OpCol, float64(pv.Col))}

		if err := e.emit(step.ActionBackSubstituteStart,
			step.Describe(string(step.ActionBackSubstituteStart), pos...), current); err != nil {
			return err
		}

		eliminated := 0
		for i := 0; i < pv.Row; i++ {
			v, _ := e.work.At(i, pv.Col)
			if !matrix.IsNonZero(v) {
				continue
			}
			if err := e.eliminateRow(step.ActionEliminateAboveExpl, step.ActionEliminateAbove, i, pv.Col, pv.Row, v); err != nil {
				return err
			}
			eliminated++
		}
		if eliminated == 0 {
			if err := e.emit(step.ActionNoEliminationAboveNeeded,
				step.Describe(string(step.ActionNoEliminationAboveNeeded), pos...), nil); err != nil {
				return err
			}
		}

		if err := e.emit(step.ActionPivotPhase2Complete,
			step.Describe(string(step.ActionPivotPhase2Complete), pos...), nil); err != nil {
			return err
		}
	}

	return nil
}

// final emits the summary step with rank and free-variable count.
func (e *eliminator) final() error {
	rank := len(e.pivotCols)
	free := e.work.Cols() - rank

	return e.emit(step.ActionFinal,
		step.Describe(string(step.ActionFinal),
			e.jordanOperand(),
			step.Op(step.OpRank, float64(rank)),
			step.Op(step.OpFree, float64(free))),
		func(s *step.Step) {
			s.Rank = step.Int(rank)
			s.FreeVariables = step.Int(free)
		})
}
