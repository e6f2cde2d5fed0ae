package adversarial

import (
	"fmt"
	"math"
	"time"
)

// Minimax searches game to the configured horizon with plain negamax
// and returns the best move for the side to move, alongside the
// invocation's Metrics. If the root position is already terminal the
// chosen move is NoMove with a nil error.
//
// Returns ErrNilGame, ErrOptionViolation, ErrInconsistentGame, or any
// error surfaced by the game's Apply/Undo.
func Minimax(game Game, opts ...Option) (int, *Metrics, error) {
	return run(game, opts, false)
}

// AlphaBeta searches game like Minimax but maintains the (alpha, beta)
// bounds and prunes the remaining sibling moves the instant
// alpha ≥ beta. It chooses a move with exactly the same value as
// Minimax for the same depth and evaluator; only NodesExpanded and
// NodesPruned differ.
func AlphaBeta(game Game, opts ...Option) (int, *Metrics, error) {
	return run(game, opts, true)
}

// run validates inputs, times the search, and dispatches the shared
// recursion with the pruning switch set per engine.
func run(game Game, opts []Option, prune bool) (int, *Metrics, error) {
	if game == nil {
		return NoMove, nil, ErrNilGame
	}
	o, err := buildOptions(opts)
	if err != nil {
		return NoMove, nil, err
	}

	w := &walker{game: game, opts: &o, prune: prune, metrics: &Metrics{}}

	start := time.Now()
	_, move, err := w.search(0, math.Inf(-1), math.Inf(1))
	w.metrics.Elapsed = time.Since(start)
	if err != nil {
		return NoMove, w.metrics, err
	}

	return move, w.metrics, nil
}

// walker carries the engine state through one recursion chain. The
// metrics accumulator is owned by the top-level invocation and passed
// down explicitly.
type walker struct {
	game    Game
	opts    *Options
	prune   bool
	metrics *Metrics
}

// search is the negamax recursion: values are always from the
// perspective of the side to move, and each level negates its child's
// value. alpha is the best value the current side can already
// guarantee, beta the bound its opponent will allow.
func (w *walker) search(depth int, alpha, beta float64) (float64, int, error) {
	w.metrics.NodesExpanded++
	if depth > w.metrics.MaxDepthReached {
		w.metrics.MaxDepthReached = depth
	}

	player := w.game.Player()
	if out, terminal := w.game.Outcome(player); terminal {
		return w.terminalValue(out, depth), NoMove, nil
	}
	if depth >= w.opts.MaxDepth {
		return w.opts.Eval(player, depth), NoMove, nil
	}

	moves := w.game.LegalMoves()
	if len(moves) == 0 {
		return 0, NoMove, ErrInconsistentGame
	}

	best := math.Inf(-1)
	bestMove := NoMove
	for i, mv := range moves {
		if err := w.game.Apply(mv); err != nil {
			return 0, NoMove, fmt.Errorf("adversarial: apply move %d: %w", mv, err)
		}

		value, _, serr := w.search(depth+1, -beta, -alpha)

		// The undo must run before any failure propagates, or the
		// caller is left holding a corrupted board.
		if uerr := w.game.Undo(); uerr != nil {
			return 0, NoMove, fmt.Errorf("adversarial: undo move %d: %w", mv, uerr)
		}
		if serr != nil {
			return 0, NoMove, serr
		}

		value = -value
		if value > best {
			best = value
			bestMove = mv
		}

		if w.prune {
			if value > alpha {
				alpha = value
			}
			if alpha >= beta {
				// Cutoff: every remaining sibling is provably
				// irrelevant to the final decision.
				w.metrics.NodesPruned += len(moves) - i - 1

				break
			}
		}
	}

	return best, bestMove, nil
}

// terminalValue scores a terminal outcome for the side to move,
// offset by the remaining depth so shallower wins (and deeper losses)
// score better.
func (w *walker) terminalValue(out Outcome, depth int) float64 {
	remaining := float64(w.opts.MaxDepth - depth)
	if remaining < 0 {
		remaining = 0
	}
	switch out {
	case Win:
		return WinValue + remaining
	case Loss:
		return -(WinValue + remaining)
	default:
		return 0
	}
}
