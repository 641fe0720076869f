// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense storage and value semantics.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/rowtrace/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Shapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		data       [][]float64
		rows, cols int
		wantErr    error
	}{
		{"nil grid", nil, 0, 0, nil},
		{"empty grid", [][]float64{}, 0, 0, nil},
		{"rows without columns", [][]float64{{}, {}}, 2, 0, nil},
		{"2x3", [][]float64{{1, 2, 3}, {4, 5, 6}}, 2, 3, nil},
		{"ragged", [][]float64{{1, 2}, {3}}, 0, 0, matrix.ErrShape},
		{"nan", [][]float64{{1, math.NaN()}}, 0, 0, matrix.ErrNonFinite},
		{"inf", [][]float64{{math.Inf(-1)}}, 0, 0, matrix.ErrNonFinite},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := matrix.New(tc.data)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.rows, m.Rows())
			assert.Equal(t, tc.cols, m.Cols())
		})
	}
}

func TestNew_DeepCopiesInput(t *testing.T) {
	t.Parallel()

	src := [][]float64{{1, 2}, {3, 4}}
	m := MustNew(t, src)
	src[0][0] = 99

	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

func TestNewDense_NegativeShape(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewDense(-1, 2)
	require.ErrorIs(t, err, matrix.ErrShape)

	m, err := matrix.NewDense(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Rows())
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 2)
	_, err := m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNonFinite)

	MustSet(t, m, 1, 1, 7)
	assert.Equal(t, 7.0, MustAt(t, m, 1, 1))
}

func TestDense_CloneNeverAliases(t *testing.T) {
	t.Parallel()

	m := MustNew(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Copy()
	MustSet(t, c, 0, 0, 42)
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))

	snap := m.Data()
	snap[1][1] = -5
	assert.Equal(t, 4.0, MustAt(t, m, 1, 1))

	MustSet(t, m, 0, 1, 9)
	assert.Equal(t, 2.0, snap[0][1])
}

func TestDense_RowSetRow(t *testing.T) {
	t.Parallel()

	m := MustNew(t, [][]float64{{1, 2}, {3, 4}})
	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, row)

	require.NoError(t, m.SetRow(0, []float64{5, 6}))
	assert.Equal(t, [][]float64{{5, 6}, {3, 4}}, m.Data())

	require.ErrorIs(t, m.SetRow(2, []float64{1, 1}), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SetRow(0, []float64{1}), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, m.SetRow(0, []float64{1, math.Inf(1)}), matrix.ErrNonFinite)

	_, err = m.Row(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_String(t *testing.T) {
	t.Parallel()

	m := MustNew(t, [][]float64{{1, 2.5}, {0, -1}})
	assert.Equal(t, "[1, 2.5]\n[0, -1]\n", m.String())
}

func TestNewIdentity(t *testing.T) {
	t.Parallel()

	I := IdentityDense(t, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			assert.Equal(t, want, MustAt(t, I, i, j))
		}
	}
}
