package heuristics

import (
	"math"

	"github.com/lavrin/wayfarer/core"
	"github.com/lavrin/wayfarer/gridenv"
)

// Manhattan returns the L1-distance heuristic bound to goal and key.
// Without the key the estimate is |s→key| + |key→goal|; with it,
// |s→goal|. Admissible and consistent for four-directional unit-cost
// movement.
func Manhattan(goal, key gridenv.Point) core.Heuristic[gridenv.State] {
	return func(s gridenv.State) float64 {
		if s.HasKey {
			return manhattan(s.X, s.Y, goal.X, goal.Y)
		}

		return manhattan(s.X, s.Y, key.X, key.Y) + manhattan(key.X, key.Y, goal.X, goal.Y)
	}
}

// Euclidean returns the L2-distance heuristic bound to goal and key,
// staged the same way as Manhattan. It is admissible (the straight
// line never exceeds the grid walk) but weaker than Manhattan on
// orthogonal grids.
func Euclidean(goal, key gridenv.Point) core.Heuristic[gridenv.State] {
	return func(s gridenv.State) float64 {
		if s.HasKey {
			return euclidean(s.X, s.Y, goal.X, goal.Y)
		}

		return euclidean(s.X, s.Y, key.X, key.Y) + euclidean(key.X, key.Y, goal.X, goal.Y)
	}
}

// Zero returns the all-zero heuristic. Feeding it to A* reduces the
// search to uniform-cost; useful as a baseline.
func Zero() core.Heuristic[gridenv.State] {
	return func(gridenv.State) float64 { return 0 }
}

// manhattan is |x1-x2| + |y1-y2|.
func manhattan(x1, y1, x2, y2 int) float64 {
	return math.Abs(float64(x1-x2)) + math.Abs(float64(y1-y2))
}

// euclidean is the straight-line distance between the two cells.
func euclidean(x1, y1, x2, y2 int) float64 {
	dx, dy := float64(x1-x2), float64(y1-y2)

	return math.Sqrt(dx*dx + dy*dy)
}
