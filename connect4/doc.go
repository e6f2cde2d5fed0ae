// Package connect4 supplies a 6×7 Connect Four game state for the
// adversarial engines.
//
// The board holds discs for players +1 and -1; a move drops a disc
// into a column and it falls to the lowest empty cell. Moves are
// recorded on a history stack so Undo restores the board and side to
// move exactly — the invariant the engines' apply/undo discipline
// depends on. Terminal status (four in a row in any direction, or a
// full board draw) is recomputed from the board on every query, never
// cached.
//
// Evaluator returns a classic weighted static evaluation: open-three
// threats weighted highest, then a center-control bonus, then
// two-in-a-row counts, each taken as a player-minus-opponent
// difference so the function is symmetric by construction.
package connect4
