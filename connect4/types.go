// Package connect4: board dimensions and sentinel errors.
package connect4

import "errors"

// Board dimensions.
const (
	// Rows is the board height.
	Rows = 6
	// Cols is the board width.
	Cols = 7
)

// Sentinel errors for move application and undo.
var (
	// ErrBadColumn is returned for a move outside [0, Cols).
	ErrBadColumn = errors.New("connect4: column out of range")

	// ErrColumnFull is returned when the chosen column has no empty
	// cell.
	ErrColumnFull = errors.New("connect4: column is full")

	// ErrNoHistory is returned by Undo on a game with no moves played.
	ErrNoHistory = errors.New("connect4: no move to undo")
)

// scanDirections are the four line directions checked for wins,
// threats, and pair counts: right, down, down-right, down-left.
var scanDirections = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}
