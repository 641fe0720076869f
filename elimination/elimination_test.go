// SPDX-License-Identifier: MIT
package elimination_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/rowtrace/elimination"
	"github.com/katalvlaran/rowtrace/matrix"
	"github.com/katalvlaran/rowtrace/step"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, data [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.New(data)
	require.NoError(t, err)

	return m
}

func actions(tr *step.Trace) []step.Action {
	out := make([]step.Action, 0, tr.Len())
	for _, s := range tr.All() {
		out = append(out, s.Action)
	}

	return out
}

func TestREF_ActionSequence(t *testing.T) {
	t.Parallel()

	m := mustNew(t, [][]float64{{2, 4}, {1, 3}})
	tr, err := elimination.REF(m, []float64{6, 4})
	require.NoError(t, err)

	want := []step.Action{
		step.ActionStart, step.ActionGaussStart,
		step.ActionSearchPivot, step.ActionPerfectPivotFound,
		step.ActionSwapNeeded, step.ActionSwap,
		step.ActionPivotAlreadyOne,
		step.ActionEliminateExplanation, step.ActionEliminate,
		step.ActionPivotForwardComplete,
		step.ActionSearchPivot, step.ActionPivotFound,
		step.ActionPivotCorrectPosition,
		step.ActionScaleExplanation, step.ActionScale,
		step.ActionNoEliminationNeeded,
		step.ActionPivotForwardComplete,
		step.ActionFinal,
	}
	assert.Equal(t, want, actions(tr))

	last, err := tr.Last()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 3}, {0, 1}}, last.Matrix)
	assert.Equal(t, []float64{4, 1}, last.AugmentedVector)
	require.NotNil(t, last.Rank)
	assert.Equal(t, 2, *last.Rank)
	assert.Equal(t, 0, *last.FreeVariables)
	v, ok := last.Description.Operand(step.OpJordan)
	require.True(t, ok)
	assert.Equal(t, 0.0, v)
}

func TestRREF_SolvesAlongside(t *testing.T) {
	t.Parallel()

	m := mustNew(t, [][]float64{{2, 4}, {1, 3}})
	tr, err := elimination.RREF(m, []float64{6, 4})
	require.NoError(t, err)

	assert.NotEqual(t, -1, tr.Find(step.ActionGaussJordanStart))
	assert.NotEqual(t, -1, tr.Find(step.ActionEliminateAbove))

	last, err := tr.Last()
	require.NoError(t, err)
	assert.Equal(t, step.ActionFinal, last.Action)
	assert.Equal(t, [][]float64{{1, 0}, {0, 1}}, last.Matrix)
	assert.Equal(t, []float64{1, 1}, last.AugmentedVector)
	assert.Equal(t, []step.Position{{Row: 0, Col: 0}, {Row: 1, Col: 1}}, last.Pivots)

	// input untouched
	assert.Equal(t, [][]float64{{2, 4}, {1, 3}}, m.Data())
}

func TestPivotMovesWithSwap(t *testing.T) {
	t.Parallel()

	m := mustNew(t, [][]float64{{2, 4}, {1, 3}})
	tr, err := elimination.REF(m, nil)
	require.NoError(t, err)

	found, err := tr.At(tr.Find(step.ActionPerfectPivotFound))
	require.NoError(t, err)
	assert.Equal(t, &step.Position{Row: 1, Col: 0}, found.PivotPosition)
	assert.Equal(t, []step.Position{{Row: 1, Col: 0}}, found.Pivots)
	assert.Equal(t, []step.SearchEntry{{Row: 0, Value: 2}, {Row: 1, Value: 1}}, found.SearchDetails)

	swapped, err := tr.At(tr.Find(step.ActionSwap))
	require.NoError(t, err)
	assert.Equal(t, []step.Position{{Row: 0, Col: 0}}, swapped.Pivots)
	assert.Equal(t, [][]float64{{1, 3}, {2, 4}}, swapped.Matrix)
	assert.Nil(t, swapped.AugmentedVector)
}

func TestPivotTieBreak(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		column  [][]float64
		action  step.Action
		wantRow int
	}{
		{"exact one beats earlier minus one", [][]float64{{-1}, {3}, {1}}, step.ActionPerfectPivotFound, 2},
		{"minus one beats earlier nonzero", [][]float64{{5}, {-1}, {2}}, step.ActionNegativePivotFound, 1},
		{"first nonzero otherwise", [][]float64{{0}, {4}, {2}}, step.ActionPivotFound, 1},
		{"first one ends the scan", [][]float64{{1}, {1}}, step.ActionPerfectPivotFound, 0},
		{"second minus one counts as nonzero", [][]float64{{0}, {-1}, {-1}}, step.ActionNegativePivotFound, 1},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tr, err := elimination.REF(mustNew(t, tc.column), nil)
			require.NoError(t, err)

			idx := tr.Find(tc.action)
			require.NotEqual(t, -1, idx, "expected %s", tc.action)
			s, err := tr.At(idx)
			require.NoError(t, err)
			assert.Equal(t, tc.wantRow, s.PivotPosition.Row)
		})
	}
}

func TestNoPivotColumnIsFree(t *testing.T) {
	t.Parallel()

	m := mustNew(t, [][]float64{{0, 1}, {0, 2}})
	tr, err := elimination.RREF(m, nil)
	require.NoError(t, err)

	noPivot, err := tr.At(tr.Find(step.ActionNoPivotDetailed))
	require.NoError(t, err)
	assert.Equal(t, 0, *noPivot.CurrentColumn)
	assert.Len(t, noPivot.SearchDetails, 2)

	last, err := tr.Last()
	require.NoError(t, err)
	assert.Equal(t, 1, *last.Rank)
	assert.Equal(t, 1, *last.FreeVariables)
	assert.Equal(t, []int{1}, last.PivotCols)
	assert.Equal(t, [][]float64{{0, 1}, {0, 0}}, last.Matrix)
}

func TestNoMoreRows(t *testing.T) {
	t.Parallel()

	tr, err := elimination.REF(mustNew(t, [][]float64{{1, 2, 3}}), nil)
	require.NoError(t, err)

	idx := tr.Find(step.ActionNoMoreRows)
	require.NotEqual(t, -1, idx)
	s, err := tr.At(idx)
	require.NoError(t, err)
	assert.Equal(t, 1, *s.CurrentColumn)
	assert.Equal(t, 1, *s.SearchStart)
	assert.Equal(t, idx+1, tr.Len()-1, "final follows immediately")
}

func TestFirstStepIsInitialState(t *testing.T) {
	t.Parallel()

	data := [][]float64{{0, 2, 1}, {3, 1, 1}, {6, 2, 2}}
	tr, err := elimination.RREF(mustNew(t, data), []float64{1, 2, 3})
	require.NoError(t, err)

	first, err := tr.First()
	require.NoError(t, err)
	assert.Equal(t, step.PhaseRREF, first.Phase)
	assert.Equal(t, step.ActionStart, first.Action)
	assert.Equal(t, data, first.Matrix)
	assert.Equal(t, []float64{1, 2, 3}, first.AugmentedVector)
	assert.Empty(t, first.PivotCols)
}

func TestTraceAgreesWithReduce(t *testing.T) {
	t.Parallel()

	inputs := [][][]float64{
		{{2, 1, -1}, {-3, -1, 2}, {-2, 1, 2}},
		{{1, 2, 3}, {2, 4, 6}, {1, 0, 1}},
		{{0, 0}, {0, 0}},
		{{3, 7}, {1, 5}, {2, 2}},
	}
	for _, data := range inputs {
		m := mustNew(t, data)
		b := make([]float64, m.Rows())
		for i := range b {
			b[i] = float64(i + 1)
		}
		tr, err := elimination.RREF(m, b)
		require.NoError(t, err)
		res, err := elimination.Reduce(m, b)
		require.NoError(t, err)

		last, err := tr.Last()
		require.NoError(t, err)
		assert.Equal(t, res.Matrix.Data(), last.Matrix)
		assert.Equal(t, res.Constants, last.AugmentedVector)
		assert.Equal(t, res.PivotCols, last.PivotCols)
		assert.Equal(t, res.Rank(), *last.Rank)
	}
}

func TestRREF_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := [][][]float64{
		{{2, 1, -1}, {-3, -1, 2}, {-2, 1, 2}},
		{{1, 2, 3, 4}, {2, 4, 6, 8}, {0, 1, 5, 1}},
		{{0, 3}, {0, 6}},
		{{4, -2}, {1, 7}, {3, 3}},
	}
	for _, data := range inputs {
		once, err := elimination.Reduce(mustNew(t, data), nil)
		require.NoError(t, err)
		twice, err := elimination.Reduce(once.Matrix, nil)
		require.NoError(t, err)
		assert.Equal(t, once.Matrix.Data(), twice.Matrix.Data())
		assert.Equal(t, once.PivotCols, twice.PivotCols)
	}
}

func TestRankMatchesOracle(t *testing.T) {
	t.Parallel()

	inputs := [][][]float64{
		{{1, 2}, {3, 4}},
		{{1, 2}, {2, 4}},
		{{0, 0, 0}, {0, 0, 0}},
		{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
		{{2, 0, 1, 3}, {1, 1, 0, 2}, {3, 1, 1, 5}},
		{{1, 0}, {0, 1}, {1, 1}},
		{{5, -3, 2}, {-1, 4, 0}, {2, 2, 7}, {1, 1, 1}},
	}
	for _, data := range inputs {
		res, err := elimination.Reduce(mustNew(t, data), nil)
		require.NoError(t, err)
		assert.Equal(t, minorRank(data), res.Rank(), "matrix %v", data)
	}
}

func TestSnapshotsSurviveLaterSteps(t *testing.T) {
	t.Parallel()

	tr, err := elimination.RREF(mustNew(t, [][]float64{{2, 4}, {1, 3}}), nil)
	require.NoError(t, err)

	seen := make(map[step.Action][][]float64)
	for _, s := range tr.All() {
		if _, ok := seen[s.Action]; !ok {
			seen[s.Action] = s.Matrix
		}
	}
	assert.Equal(t, [][]float64{{2, 4}, {1, 3}}, seen[step.ActionSwapNeeded])
	assert.Equal(t, [][]float64{{1, 3}, {2, 4}}, seen[step.ActionEliminateExplanation])
	assert.Equal(t, [][]float64{{1, 3}, {0, -2}}, seen[step.ActionEliminate])
}

func TestEmptyMatrix(t *testing.T) {
	t.Parallel()

	tr, err := elimination.RREF(mustNew(t, nil), nil)
	require.NoError(t, err)
	assert.Equal(t, []step.Action{
		step.ActionStart, step.ActionGaussStart, step.ActionGaussJordanStart, step.ActionFinal,
	}, actions(tr))
}

func TestErrors(t *testing.T) {
	t.Parallel()

	_, err := elimination.RREF(nil, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	m := mustNew(t, [][]float64{{1, 2}, {3, 4}})
	_, err = elimination.RREF(m, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = elimination.Reduce(m, []float64{1, math.Inf(1)})
	require.ErrorIs(t, err, matrix.ErrNonFinite)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = elimination.RREF(m, nil, step.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)

	boom := errors.New("boom")
	count := 0
	_, err = elimination.REF(m, nil, step.WithOnStep(func(i int, s step.Step) error {
		count++
		if s.Action == step.ActionSearchPivot {
			return boom
		}
		return nil
	}))
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 3, count)
}

// minorRank is an independent rank oracle for small integer matrices: the
// largest k for which some k×k minor has a nonzero (exact) determinant.
func minorRank(data [][]float64) int {
	rows := len(data)
	if rows == 0 {
		return 0
	}
	cols := len(data[0])
	maxK := rows
	if cols < maxK {
		maxK = cols
	}
	for k := maxK; k > 0; k-- {
		for _, rs := range combinations(rows, k) {
			for _, cs := range combinations(cols, k) {
				sub := make([][]int64, k)
				for i, r := range rs {
					sub[i] = make([]int64, k)
					for j, c := range cs {
						sub[i][j] = int64(data[r][c])
					}
				}
				if det(sub) != 0 {
					return k
				}
			}
		}
	}

	return 0
}

func combinations(n, k int) [][]int {
	var out [][]int
	var rec func(start int, cur []int)
	rec = func(start int, cur []int) {
		if len(cur) == k {
			out = append(out, append([]int(nil), cur...))
			return
		}
		for i := start; i < n; i++ {
			rec(i+1, append(cur, i))
		}
	}
	rec(0, nil)

	return out
}

// det is a Laplace expansion along the first row.
func det(m [][]int64) int64 {
	n := len(m)
	if n == 1 {
		return m[0][0]
	}
	var sum int64
	sign := int64(1)
	for c := 0; c < n; c++ {
		minor := make([][]int64, 0, n-1)
		for r := 1; r < n; r++ {
			row := make([]int64, 0, n-1)
			row = append(row, m[r][:c]...)
			row = append(row, m[r][c+1:]...)
			minor = append(minor, row)
		}
		sum += sign * m[0][c] * det(minor)
		sign = -sign
	}

	return sum
}
