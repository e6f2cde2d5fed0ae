// Package informed: tunable options and error definitions for the
// heuristic-guided strategies.
package informed

import (
	"context"
	"errors"
)

// Sentinel errors for the informed strategies.
var (
	// ErrNilHeuristic is returned when a nil heuristic is supplied.
	ErrNilHeuristic = errors.New("informed: heuristic is nil")

	// ErrOptionViolation is returned when an invalid Option is
	// supplied.
	ErrOptionViolation = errors.New("informed: invalid option supplied")
)

// Option configures a strategy via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks shared by Greedy and AStar.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per
	// expansion.
	Ctx context.Context

	// OnExpand is called each time a node is popped from the frontier
	// and processed, with the state value and its depth.
	OnExpand func(state any, depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context and a
// no-op expansion hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnExpand: func(any, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExpand registers a callback to run on every node expansion.
func WithOnExpand(fn func(state any, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// buildOptions applies opts over the defaults and surfaces any
// recorded violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}
