package gridenv

import (
	"fmt"

	"github.com/lavrin/wayfarer/core"
)

// moves lists the four orthogonal actions with their coordinate
// offsets, in the order successors are generated.
var moves = []struct {
	action string
	dx, dy int
}{
	{"up", 0, -1},
	{"down", 0, 1},
	{"left", -1, 0},
	{"right", 1, 0},
}

// Env is an immutable grid-maze environment. It implements
// core.Environment[State] with four-directional unit-cost movement and
// a key-then-goal objective.
type Env struct {
	width, height int
	cells         [][]int
	start         Point
	key           Point
	goal          Point
}

// New constructs an Env from a non-empty, rectangular cell grid and
// the start, key, and goal positions. The grid is deep-copied to keep
// the environment immutable.
//
// Returns ErrEmptyGrid or ErrNonRectangular for a malformed grid, and
// ErrOutOfBounds or ErrBlockedCell when a marker does not sit on a
// walkable cell.
func New(cells [][]int, start, key, goal Point) (*Env, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	// Deep copy to prevent external mutation.
	copied := make([][]int, h)
	for y := 0; y < h; y++ {
		copied[y] = make([]int, w)
		copy(copied[y], cells[y])
	}

	env := &Env{width: w, height: h, cells: copied, start: start, key: key, goal: goal}
	for _, p := range []Point{start, key, goal} {
		if !env.InBounds(p.X, p.Y) {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, p.X, p.Y)
		}
		if !env.Walkable(p.X, p.Y) {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrBlockedCell, p.X, p.Y)
		}
	}

	return env, nil
}

// Parse builds an Env from ASCII rows. Recognized runes:
//
//	'.'  free cell        '#'  wall
//	'S'  start (free)     'K'  key (free)     'G'  goal (free)
//
// Each of S, K, and G must appear exactly once; any other rune yields
// ErrBadCell.
func Parse(rows []string) (*Env, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	cells := make([][]int, len(rows))
	var start, key, goal *Point
	for y, row := range rows {
		cells[y] = make([]int, 0, len(row))
		for x, r := range []byte(row) {
			switch r {
			case '.':
				cells[y] = append(cells[y], CellFree)
			case '#':
				cells[y] = append(cells[y], CellWall)
			case 'S', 'K', 'G':
				cells[y] = append(cells[y], CellFree)
				p := Point{X: x, Y: y}
				switch r {
				case 'S':
					if start != nil {
						return nil, ErrMissingMarker
					}
					start = &p
				case 'K':
					if key != nil {
						return nil, ErrMissingMarker
					}
					key = &p
				case 'G':
					if goal != nil {
						return nil, ErrMissingMarker
					}
					goal = &p
				}
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadCell, r, x, y)
			}
		}
	}
	if start == nil || key == nil || goal == nil {
		return nil, ErrMissingMarker
	}

	return New(cells, *start, *key, *goal)
}

// Width returns the number of columns.
func (e *Env) Width() int { return e.width }

// Height returns the number of rows.
func (e *Env) Height() int { return e.height }

// Start returns the start position.
func (e *Env) Start() Point { return e.start }

// Key returns the key position.
func (e *Env) Key() Point { return e.key }

// Goal returns the goal position.
func (e *Env) Goal() Point { return e.goal }

// InBounds reports whether (x,y) lies within the grid boundaries.
func (e *Env) InBounds(x, y int) bool {
	return x >= 0 && x < e.width && y >= 0 && y < e.height
}

// Walkable reports whether (x,y) is in bounds and not a wall.
func (e *Env) Walkable(x, y int) bool {
	return e.InBounds(x, y) && e.cells[y][x] != CellWall
}

// InitialState returns the agent at the start cell without the key —
// unless the start cell is the key cell, in which case the key is held
// from the outset.
func (e *Env) InitialState() State {
	return State{X: e.start.X, Y: e.start.Y, HasKey: e.start == e.key}
}

// IsGoal reports whether the agent stands on the goal cell while
// holding the key.
func (e *Env) IsGoal(s State) bool {
	return s.HasKey && s.X == e.goal.X && s.Y == e.goal.Y
}

// Successors enumerates the walkable orthogonal moves out of s, each
// at unit cost. Stepping onto the key cell sets HasKey.
func (e *Env) Successors(s State) []core.Successor[State] {
	succs := make([]core.Successor[State], 0, len(moves))
	for _, m := range moves {
		nx, ny := s.X+m.dx, s.Y+m.dy
		if !e.Walkable(nx, ny) {
			continue
		}
		next := State{
			X:      nx,
			Y:      ny,
			HasKey: s.HasKey || (nx == e.key.X && ny == e.key.Y),
		}
		succs = append(succs, core.Successor[State]{State: next, Action: m.action, Cost: 1})
	}

	return succs
}
