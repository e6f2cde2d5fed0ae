// Package adversarial implements depth-limited minimax and alpha-beta
// search over a two-player, zero-sum game in negamax form.
//
// The engine consumes a mutable Game: move generation, in-place
// Apply/Undo, and a terminal test with per-player outcome. The game
// tree is never materialized — recursion depth equals search depth and
// each call frame owns only its local bounds, so there is no node
// graph to build or collect. The board is exclusively owned by one
// recursion chain at a time: every explored move is applied, searched,
// and undone before control returns, and the undo runs on error paths
// too, so a failed search never leaves the caller's board corrupted.
//
// Values are always from the perspective of the side to move. Terminal
// positions score ±(WinValue + remaining depth) — faster wins and
// slower losses are preferred — and draws score zero. Non-terminal
// leaves at the depth horizon are scored by the Evaluator, which must
// be symmetric: eval(player) == -eval(opponent).
//
// AlphaBeta chooses a move with exactly the same value as Minimax for
// the same depth and evaluator; pruning changes only the node counts.
// Move order affects how much is pruned, never which move wins.
//
// Both engines thread an explicit Metrics accumulator through the
// recursion (expanded nodes, pruned siblings, deepest ply, elapsed
// time) instead of mutating ambient state, so invocations stay pure
// and testable in isolation.
package adversarial
