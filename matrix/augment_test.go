// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rowtrace/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAugmentVector(t *testing.T) {
	t.Parallel()

	m := MustNew(t, [][]float64{{1, 2}, {3, 4}})
	aug, err := m.AugmentVector([]float64{5, 6})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2, 5}, {3, 4, 6}}, aug.Data())
	assert.Equal(t, 2, m.Cols())

	_, err = m.AugmentVector(nil)
	require.ErrorIs(t, err, matrix.ErrNotVector)
	_, err = m.AugmentVector([]float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = m.AugmentVector([]float64{1, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNonFinite)
}

func TestAugmentIdentityAndColumns(t *testing.T) {
	t.Parallel()

	m := MustNew(t, [][]float64{{2, 1}, {7, 4}})
	aug, err := m.AugmentIdentity()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{2, 1, 1, 0}, {7, 4, 0, 1}}, aug.Data())

	right, err := aug.Columns(2, 4)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0}, {0, 1}}, right.Data())

	empty, err := aug.Columns(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Cols())

	_, err = aug.Columns(3, 5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = aug.Columns(2, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = MustDense(t, 2, 3).AugmentIdentity()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
