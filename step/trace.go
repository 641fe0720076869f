// SPDX-License-Identifier: MIT

package step

import (
	"encoding/json"
	"fmt"
	"iter"
)

// Trace is an ordered, finite, immutable sequence of steps. Index 0 is the
// state before any operation; Len()-1 is the terminal state.
//
// Every accessor hands out deep copies, so a Trace can be shared between
// goroutines (e.g. through a cache) and re-read in any order.
type Trace struct {
	steps []Step
}

// NewTrace builds a Trace from steps, copying each of them.
func NewTrace(steps []Step) *Trace {
	owned := make([]Step, len(steps))
	for i, s := range steps {
		owned[i] = s.Clone()
	}

	return &Trace{steps: owned}
}

// Len returns the number of steps.
func (t *Trace) Len() int {
	if t == nil {
		return 0
	}

	return len(t.steps)
}

// At returns a copy of step i.
// Errors: ErrStepOutOfRange.
func (t *Trace) At(i int) (Step, error) {
	if i < 0 || i >= t.Len() {
		return Step{}, fmt.Errorf("Trace.At(%d) of %d: %w", i, t.Len(), ErrStepOutOfRange)
	}

	return t.steps[i].Clone(), nil
}

// First returns a copy of the initial step.
func (t *Trace) First() (Step, error) { return t.At(0) }

// Last returns a copy of the terminal step.
func (t *Trace) Last() (Step, error) { return t.At(t.Len() - 1) }

// All iterates (index, copy of step) in order.
func (t *Trace) All() iter.Seq2[int, Step] {
	return func(yield func(int, Step) bool) {
		for i := 0; i < t.Len(); i++ {
			if !yield(i, t.steps[i].Clone()) {
				return
			}
		}
	}
}

// Steps returns a copy of every step.
func (t *Trace) Steps() []Step {
	out := make([]Step, t.Len())
	for i := range out {
		out[i] = t.steps[i].Clone()
	}

	return out
}

// Find returns the index of the first step with the given action, or -1.
func (t *Trace) Find(a Action) int {
	for i := 0; i < t.Len(); i++ {
		if t.steps[i].Action == a {
			return i
		}
	}

	return -1
}

// MarshalJSON encodes the trace as a JSON array of steps.
func (t *Trace) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	steps := t.steps
	if steps == nil {
		steps = []Step{}
	}

	return json.Marshal(steps)
}

// UnmarshalJSON decodes a JSON array of steps.
func (t *Trace) UnmarshalJSON(b []byte) error {
	var steps []Step
	if err := json.Unmarshal(b, &steps); err != nil {
		return fmt.Errorf("Trace.UnmarshalJSON: %w", err)
	}
	t.steps = steps

	return nil
}
