package informed

import "github.com/lavrin/wayfarer/core"

// AStar runs A* search on env: the frontier is ordered by f = g + h,
// ties broken toward the smaller h (prefer states closer to the goal
// among equal f), then by insertion order.
//
// With an admissible heuristic the returned path is optimal. With a
// consistent heuristic no closed state is ever re-expanded; with an
// admissible-but-inconsistent one the engine stays correct by
// reopening a closed state whenever a strictly cheaper path to it is
// discovered, at the price of extra expansions.
//
// Returns core.ErrNilEnvironment, ErrNilHeuristic, ErrOptionViolation,
// core.ErrNegativeStepCost, core.ErrNegativeHeuristic, or the
// context's error; frontier exhaustion without a goal is a normal
// Success == false Result.
func AStar[S comparable](env core.Environment[S], h core.Heuristic[S], opts ...Option) (*core.Result[S], error) {
	if env == nil {
		return nil, core.ErrNilEnvironment
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	// Order by f = g+h with h as the tie-break; reopen closed states
	// on strictly cheaper rediscovery.
	return bestFirst(env, h, &o, func(g, h float64) (float64, float64) {
		return g + h, h
	}, true)
}
