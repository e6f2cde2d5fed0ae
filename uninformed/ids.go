package uninformed

import "github.com/lavrin/wayfarer/core"

// IDS runs iterative deepening search on env: depth-limited DFS passes
// with limits 0, 1, 2, … up to the cap set by WithMaxDepth (default
// DefaultMaxDepth). IDS is complete and optimal when step costs are
// uniform, while keeping DFS's memory profile.
//
// NodesExpanded, NodesGenerated, and Visited accumulate across all
// iterations, so the counts read high next to single-pass strategies;
// that inflation is the documented cost of re-exploration, not a bug.
//
// Exceeding the cap without finding a goal is a normal
// Success == false Result — it signals "try a larger limit", not a
// fault.
func IDS[S comparable](env core.Environment[S], opts ...Option) (*core.Result[S], error) {
	if env == nil {
		return nil, core.ErrNilEnvironment
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	tracker := core.StartTracker()
	res := &core.Result[S]{Visited: make(map[S]struct{})}

	for limit := 0; limit <= o.MaxDepth; limit++ {
		goal, err := depthLimited(env, &o, limit, res)
		if err != nil {
			return nil, err
		}
		if goal != nil {
			res.Complete(goal)

			return core.Finish(tracker, res), nil
		}
	}

	return core.Finish(tracker, res), nil
}
