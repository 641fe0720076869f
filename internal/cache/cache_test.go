// SPDX-License-Identifier: MIT
package cache_test

import (
	"testing"

	"github.com/katalvlaran/rowtrace"
	"github.com/katalvlaran/rowtrace/internal/cache"
	"github.com/katalvlaran/rowtrace/step"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	t.Parallel()

	a := [][]float64{{1, 2}, {3, 4}}
	k := cache.Key(rowtrace.RREF, a, nil)
	assert.Len(t, k, 32)
	assert.Equal(t, k, cache.Key(rowtrace.RREF, [][]float64{{1, 2}, {3, 4}}, nil))

	distinct := []string{
		k,
		cache.Key(rowtrace.REF, a, nil),
		cache.Key(rowtrace.RREF, a, []float64{}),
		cache.Key(rowtrace.RREF, a, []float64{0, 0}),
		cache.Key(rowtrace.RREF, [][]float64{{1, 2, 3, 4}}, nil),
		cache.Key(rowtrace.RREF, [][]float64{{1, 2}, {3, 5}}, nil),
	}
	seen := map[string]bool{}
	for _, d := range distinct {
		assert.False(t, seen[d], "collision on %s", d)
		seen[d] = true
	}
}

func TestLRU(t *testing.T) {
	t.Parallel()

	_, err := cache.New(0)
	require.ErrorIs(t, err, cache.ErrSize)

	c, err := cache.New(2)
	require.NoError(t, err)
	tr := step.NewTrace(nil)

	c.Add(cache.Entry{ID: "a", Operation: rowtrace.REF, Trace: tr})
	c.Add(cache.Entry{ID: "b", Operation: rowtrace.RREF, Trace: tr})
	_, ok := c.Get("a") // a becomes most recent
	require.True(t, ok)
	evicted := c.Add(cache.Entry{ID: "c", Operation: rowtrace.Full, Trace: tr})
	assert.True(t, evicted)

	_, ok = c.Get("b")
	assert.False(t, ok)
	e, ok := c.Get("c")
	require.True(t, ok)
	assert.Equal(t, rowtrace.Full, e.Operation)
	assert.Equal(t, 2, c.Len())

	c.Purge()
	assert.Zero(t, c.Len())
}
