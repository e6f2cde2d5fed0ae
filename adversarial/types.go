// Package adversarial: the Game contract, evaluator and metrics types,
// options, and sentinel errors for the minimax engines.
package adversarial

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for the adversarial engines.
var (
	// ErrNilGame is returned when a nil Game is passed to an engine.
	ErrNilGame = errors.New("adversarial: game is nil")

	// ErrInconsistentGame is returned when a non-terminal state
	// reports zero legal moves. The Game contract requires those two
	// to agree.
	ErrInconsistentGame = errors.New("adversarial: non-terminal state with no legal moves")

	// ErrOptionViolation is returned when an invalid Option is
	// supplied.
	ErrOptionViolation = errors.New("adversarial: invalid option supplied")
)

// WinValue is the base magnitude of a terminal win or loss. The engine
// offsets it by the remaining search depth so that faster wins and
// slower losses score better.
const WinValue = 10000.0

// NoMove is returned as the chosen move when the root position is
// already terminal.
const NoMove = -1

// DefaultMaxDepth is the search horizon applied when WithMaxDepth is
// not supplied.
const DefaultMaxDepth = 4

// Outcome classifies a terminal position from one player's
// perspective.
type Outcome int

const (
	// Draw is a terminal position with no winner.
	Draw Outcome = iota
	// Win means the asked-about player has won.
	Win
	// Loss means the asked-about player has lost.
	Loss
)

// Game is the mutable two-player game consumed by the engines.
//
// Apply and Undo mutate the game in place; the engines guarantee every
// Apply is matched by an Undo before they return, including on error
// paths. Terminal status must be a pure function of the current board,
// never cached stale, and a non-terminal state must offer at least one
// legal move.
type Game interface {
	// Player returns the side to move, +1 or -1.
	Player() int

	// LegalMoves enumerates the legal move identifiers, empty iff the
	// position is terminal.
	LegalMoves() []int

	// Apply plays the given move for the side to move.
	Apply(move int) error

	// Undo reverts the most recent Apply, restoring board and side to
	// move exactly.
	Undo() error

	// Outcome reports the terminal result from player's perspective;
	// ok is false while the game is still in progress.
	Outcome(player int) (out Outcome, ok bool)
}

// Evaluator statically scores a non-terminal position from the given
// player's perspective; depth is the ply distance from the search
// root. It must be symmetric: Evaluator(p, d) == -Evaluator(-p, d).
// Evaluators are supplied as closures over the concrete game value.
type Evaluator func(player, depth int) float64

// Metrics accumulates performance counters for one engine invocation.
// It is owned by the top-level call and threaded through the
// recursion, not shared globally.
type Metrics struct {
	// NodesExpanded counts recursive search calls.
	NodesExpanded int

	// NodesPruned counts sibling moves skipped by alpha-beta cutoffs.
	// Always zero for plain minimax.
	NodesPruned int

	// MaxDepthReached is the deepest ply visited.
	MaxDepthReached int

	// Elapsed is the wall-clock duration of the invocation.
	Elapsed time.Duration
}

// Option configures an engine via functional arguments.
type Option func(*Options)

// Options holds the engine parameters.
type Options struct {
	// MaxDepth is the search horizon in plies; must be ≥ 1.
	MaxDepth int

	// Eval scores non-terminal horizon positions. Defaults to the
	// all-zero evaluator, which reduces the engine to terminal-only
	// scoring.
	Eval Evaluator

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with DefaultMaxDepth and the
// all-zero evaluator.
func DefaultOptions() Options {
	return Options{
		MaxDepth: DefaultMaxDepth,
		Eval:     func(int, int) float64 { return 0 },
	}
}

// WithMaxDepth sets the search horizon in plies.
//
//	d >= 1: search d plies deep
//	d < 1:  invalid → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 1 {
			o.err = fmt.Errorf("%w: MaxDepth must be at least 1 (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// WithEvaluator sets the static evaluation function for horizon
// positions.
func WithEvaluator(fn Evaluator) Option {
	return func(o *Options) {
		if fn != nil {
			o.Eval = fn
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
