// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the elementary row primitives.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rowtrace/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumn(t *testing.T) {
	t.Parallel()

	m := MustNew(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	col, err := m.Column(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4, 6}, col)

	_, err = m.Column(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.GetColumn(m, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.GetColumn(nil, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestIsZeroRow_Epsilon(t *testing.T) {
	t.Parallel()

	m := MustNew(t, [][]float64{
		{0, 1e-11, -5e-11},
		{0, 1e-10, 0},
		{0, 0, 2},
	})
	tests := []struct {
		row  int
		want bool
	}{
		{0, true},
		{1, false}, // |x| == Epsilon is not < Epsilon
		{2, false},
	}
	for _, tc := range tests {
		got, err := matrix.CheckZeros(m, tc.row)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "row %d", tc.row)
	}

	_, err := m.IsZeroRow(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestSumRows(t *testing.T) {
	t.Parallel()

	m := MustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	before := m.Data()

	out, err := matrix.SumRows(m, 0, 1, -4)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, -3, -6}, out)
	assert.Equal(t, before, m.Data(), "input must not be mutated")

	tests := []struct {
		name     string
		src, dst int
		k        float64
		wantErr  error
	}{
		{"src out of range", 2, 0, 1, matrix.ErrOutOfRange},
		{"dst negative", 0, -1, 1, matrix.ErrOutOfRange},
		{"nan multiple", 0, 1, math.NaN(), matrix.ErrNonFinite},
		{"inf multiple checked before range", 9, 9, math.Inf(1), matrix.ErrNonFinite},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := m.SumRows(tc.src, tc.dst, tc.k)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestSwitchRows_NoAliasing(t *testing.T) {
	t.Parallel()

	m := MustNew(t, [][]float64{{1, 2}, {3, 4}})
	s, err := matrix.SwitchRows(m, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{3, 4}, {1, 2}}, s.Data())
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.Data())

	MustSet(t, s, 0, 0, 100)
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))

	same, err := m.SwitchRows(1, 1)
	require.NoError(t, err)
	assert.Equal(t, m.Data(), same.Data())

	_, err = m.SwitchRows(0, 5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestScalarVectorProduct(t *testing.T) {
	t.Parallel()

	in := []float64{2, -4, 0}
	out, err := matrix.ScalarVectorProduct(in, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, -2, 0}, out)
	assert.Equal(t, []float64{2, -4, 0}, in)

	_, err = matrix.ScalarVectorProduct(nil, 2)
	require.ErrorIs(t, err, matrix.ErrNotVector)

	empty, err := matrix.ScalarVectorProduct([]float64{}, 2)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestIsPivotElement(t *testing.T) {
	t.Parallel()

	data := [][]float64{
		{1, 2, 0},
		{0, 0, 1},
	}
	pivots := []int{0, 2}

	assert.True(t, matrix.IsPivotElement(data, 0, 0, pivots))
	assert.True(t, matrix.IsPivotElement(data, 1, 2, pivots))
	assert.False(t, matrix.IsPivotElement(data, 0, 1, pivots), "not a pivot column")
	assert.False(t, matrix.IsPivotElement(data, 0, 2, pivots), "zero entry")
	assert.False(t, matrix.IsPivotElement(data, 5, 0, pivots))
	assert.False(t, matrix.IsPivotElement(data, 0, -1, pivots))
}

func TestClone_Facades(t *testing.T) {
	t.Parallel()

	assert.Nil(t, matrix.Clone(nil))
	m := MustNew(t, [][]float64{{1}})
	c := matrix.Clone(m)
	MustSet(t, c, 0, 0, 2)
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))

	cm := matrix.CloneMatrix(m)
	assert.Equal(t, 1.0, MustAt(t, cm, 0, 0))

	created, err := matrix.Create([][]float64{{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, 2, created.Cols())

	z, err := matrix.NewZeros(2, 3)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, z.Data())
}
