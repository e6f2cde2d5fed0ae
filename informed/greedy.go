package informed

import "github.com/lavrin/wayfarer/core"

// Greedy runs greedy best-first search on env: the frontier is ordered
// purely by the heuristic value h(state), with insertion order
// breaking ties. Accumulated cost plays no part in the ordering, so
// Greedy can return arbitrarily suboptimal paths; the closed set
// guarantees termination on finite spaces.
//
// Returns core.ErrNilEnvironment, ErrNilHeuristic, ErrOptionViolation,
// core.ErrNegativeStepCost, core.ErrNegativeHeuristic, or the
// context's error; frontier exhaustion without a goal is a normal
// Success == false Result.
func Greedy[S comparable](env core.Environment[S], h core.Heuristic[S], opts ...Option) (*core.Result[S], error) {
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

	// Order by h alone; no reopening — first expansion closes a state
	// for good.
	return bestFirst(env, h, &o, func(_, h float64) (float64, float64) {
		return h, 0
	}, false)
}
