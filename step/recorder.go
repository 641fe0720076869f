// SPDX-License-Identifier: MIT

package step

import (
	"context"
	"fmt"
)

// Recorder accumulates the steps of one computation.
//
// Implementation:
//   - Stage 1: Emit checks the context (cancellation aborts production).
//   - Stage 2: the step is deep-copied, so callers may pass live working
//     slices without the trace ever observing later mutation.
//   - Stage 3: the OnStep hook sees its own copy; the logger gets a Debug record.
//
// A silent Recorder (NewSilent) drops every step; the engines use it to run the
// exact same elimination logic when only the final result is needed.
type Recorder struct {
	opts   Options
	steps  []Step
	silent bool
}

// NewRecorder returns a Recorder configured by opts.
func NewRecorder(opts ...Option) *Recorder {
	return &Recorder{opts: Apply(opts...)}
}

// NewSilent returns a Recorder that discards everything it is handed.
func NewSilent() *Recorder {
	return &Recorder{opts: DefaultOptions(), silent: true}
}

// Silent reports whether the recorder discards steps.
func (r *Recorder) Silent() bool { return r.silent }

// Context returns the context steps are produced under.
func (r *Recorder) Context() context.Context { return r.opts.Ctx }

// Options returns the recorder configuration (used to hand the same options
// to a nested engine run).
func (r *Recorder) Options() Options { return r.opts }

// Emit records s.
// Errors: ctx.Err() once the context is done; the hook's error, wrapped.
func (r *Recorder) Emit(s Step) error {
	if r.silent {
		return nil
	}
	select {
	case <-r.opts.Ctx.Done():
		return r.opts.Ctx.Err()
	default:
	}

	owned := s.Clone()
	index := len(r.steps)
	r.steps = append(r.steps, owned)
	r.opts.Logger.Debug("step recorded",
		"index", index,
		"phase", string(owned.Phase),
		"action", string(owned.Action),
	)

	if r.opts.OnStep != nil {
		if err := r.opts.OnStep(index, owned.Clone()); err != nil {
			return fmt.Errorf("step: OnStep hook at %d (%s): %w", index, owned.Action, err)
		}
	}

	return nil
}

// Len returns the number of recorded steps.
func (r *Recorder) Len() int { return len(r.steps) }

// Trace freezes the recorded steps into a Trace. The recorder must not be
// used afterwards.
func (r *Recorder) Trace() *Trace {
	t := &Trace{steps: r.steps}
	r.steps = nil

	return t
}
