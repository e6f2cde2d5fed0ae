// Package uninformed: tunable options and error definitions for the
// blind search strategies.
package uninformed

import (
	"context"
	"errors"
	"fmt"
)

// Default bounding parameters.
const (
	// DefaultDepthLimit is the hard depth limit applied by DFS when
	// WithDepthLimit is not supplied.
	DefaultDepthLimit = 10000

	// DefaultMaxDepth is the deepening cap applied by IDS when
	// WithMaxDepth is not supplied.
	DefaultMaxDepth = 1000
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("uninformed: invalid option supplied")

// Option configures a strategy via functional arguments. An invalid
// Option (e.g. a negative depth limit) is recorded internally and
// surfaced as ErrOptionViolation when the strategy is invoked.
type Option func(*Options)

// Options holds parameters and callbacks shared by the blind
// strategies. Not every field applies to every strategy: DepthLimit
// bounds DFS, MaxDepth bounds IDS, and the rest are common.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per
	// expansion.
	Ctx context.Context

	// DepthLimit is the hard depth bound for DFS. Nodes at this depth
	// are still expanded, but their children are not generated.
	DepthLimit int

	// MaxDepth is the largest depth limit IDS will try before giving
	// up.
	MaxDepth int

	// OnExpand is called each time a node is popped from the frontier
	// and processed, with the state value and its depth.
	OnExpand func(state any, depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: background
// context, DefaultDepthLimit, DefaultMaxDepth, and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		DepthLimit: DefaultDepthLimit,
		MaxDepth:   DefaultMaxDepth,
		OnExpand:   func(any, int) {},
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

// WithDepthLimit sets the DFS hard depth limit.
//
//	d >= 0: expand nodes up to depth d (d == 0 expands only the root)
//	d < 0:  invalid → ErrOptionViolation
func WithDepthLimit(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: DepthLimit cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.DepthLimit = d
	}
}

// WithMaxDepth sets the IDS deepening cap.
//
//	d >= 0: try depth limits 0..d inclusive
//	d < 0:  invalid → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
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
