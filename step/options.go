// SPDX-License-Identifier: MIT

package step

import (
	"context"
	"io"
	"log/slog"
)

// Option configures trace production.
// Use with elimination.Run, solver.SolveSystemSteps, inverse.InverseSteps.
type Option func(*Options)

// Options holds configurable parameters shared by every engine.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is checked before each step is recorded; a cancelled context aborts
	// production with ctx.Err().
	Ctx context.Context

	// OnStep, if non-nil, is invoked after a step is recorded with its index
	// and a private copy of the step. Returning an error aborts production.
	OnStep func(index int, s Step) error

	// Logger receives a Debug record per step. Defaults to a discarding logger.
	Logger *slog.Logger
}

// DefaultOptions returns Options with:
//   - Background context
//   - No step hook
//   - A logger that discards everything
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		OnStep: nil,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext returns an Option that sets the Context for production.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep returns an Option that installs fn as a per-step hook.
func WithOnStep(fn func(index int, s Step) error) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// WithLogger returns an Option that routes per-step Debug records to l.
// A nil logger has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Apply folds opts over DefaultOptions.
func Apply(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
