// SPDX-License-Identifier: MIT

// Package cache keeps recently computed traces addressable by a content key,
// so identical requests are answered without recomputation.
package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"math"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/rowtrace"
	"github.com/katalvlaran/rowtrace/step"
)

// ErrSize is returned for a non-positive capacity.
var ErrSize = errors.New("cache: size must be positive")

// Entry is one cached trace. Entries are never mutated after Add; the
// trace hands out copies of its steps.
type Entry struct {
	ID        string             `json:"id"`
	Operation rowtrace.Operation `json:"operation"`
	Trace     *step.Trace        `json:"-"`
}

// Cache is a fixed-size LRU of entries, safe for concurrent use.
type Cache struct {
	entries *lru.Cache[string, Entry]
}

// New returns a cache holding at most size entries.
func New(size int) (*Cache, error) {
	if size <= 0 {
		return nil, ErrSize
	}
	c, err := lru.New[string, Entry](size)
	if err != nil {
		return nil, err
	}

	return &Cache{entries: c}, nil
}

// Get looks up id and marks it recently used.
func (c *Cache) Get(id string) (Entry, bool) { return c.entries.Get(id) }

// Add stores e under e.ID and reports whether an older entry was evicted.
func (c *Cache) Add(e Entry) (evicted bool) { return c.entries.Add(e.ID, e) }

// Len returns the number of cached entries.
func (c *Cache) Len() int { return c.entries.Len() }

// Purge drops every entry.
func (c *Cache) Purge() { c.entries.Purge() }

// Key derives the content address of a request: the first 16 bytes of a
// SHA-256 over the operation, the shape, every entry and the constants.
// A nil constant vector and an empty one hash differently.
func Key(op rowtrace.Operation, data [][]float64, constants []float64) string {
	h := sha256.New()
	var buf [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}

	put(uint64(op))
	put(uint64(len(data)))
	for _, row := range data {
		put(uint64(len(row)))
		for _, v := range row {
			put(math.Float64bits(v))
		}
	}
	if constants == nil {
		put(math.MaxUint64)
	} else {
		put(uint64(len(constants)))
		for _, v := range constants {
			put(math.Float64bits(v))
		}
	}

	return hex.EncodeToString(h.Sum(nil)[:16])
}
