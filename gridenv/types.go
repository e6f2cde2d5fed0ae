// Package gridenv: cell values, coordinates, states, and sentinel
// errors for the grid-maze environment.
package gridenv

import "errors"

// Sentinel errors for grid construction and validation.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridenv: grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridenv: all rows must have the same length")

	// ErrOutOfBounds indicates a start, key, or goal position outside
	// the grid.
	ErrOutOfBounds = errors.New("gridenv: position outside the grid")

	// ErrBlockedCell indicates a start, key, or goal position on a
	// wall cell.
	ErrBlockedCell = errors.New("gridenv: position is a wall cell")

	// ErrBadCell indicates an unrecognized rune in an ASCII grid.
	ErrBadCell = errors.New("gridenv: unrecognized cell rune")

	// ErrMissingMarker indicates an ASCII grid without exactly one
	// start, key, and goal marker.
	ErrMissingMarker = errors.New("gridenv: grid must mark start, key, and goal exactly once")
)

// Cell values recognized by New.
const (
	// CellFree is a walkable cell.
	CellFree = 0
	// CellWall is an impassable cell.
	CellWall = 1
)

// Point is a grid coordinate: X is the column, Y is the row, both
// zero-based from the top-left corner.
type Point struct {
	X, Y int
}

// State is the agent's search state: its position plus whether the key
// has been collected. The flag participates in equality, so visiting a
// cell with and without the key are distinct states.
type State struct {
	X, Y   int
	HasKey bool
}

// Point returns the position component of the state.
func (s State) Point() Point { return Point{X: s.X, Y: s.Y} }
