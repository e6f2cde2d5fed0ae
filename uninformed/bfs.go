package uninformed

import (
	"fmt"

	"github.com/lavrin/wayfarer/core"
)

// BFS runs breadth-first search on env, expanding states in order of
// discovery depth via a FIFO frontier. Duplicate states are filtered
// at generation time, so each reachable state enters the frontier at
// most once.
//
// Returns core.ErrNilEnvironment for a nil environment,
// ErrOptionViolation for bad options, core.ErrNegativeStepCost if the
// environment breaks its cost contract, or the context's error on
// cancellation. Frontier exhaustion without a goal is a normal
// Success == false Result.
func BFS[S comparable](env core.Environment[S], opts ...Option) (*core.Result[S], error) {
	if env == nil {
		return nil, core.ErrNilEnvironment
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	tracker := core.StartTracker()
	root := core.NewRoot(env.InitialState())

	frontier := core.NewQueue[S]()
	frontier.Push(root)
	// seen filters duplicates at generation time; Visited records
	// expansions for diagnostics.
	seen := map[S]struct{}{root.State: {}}
	res := &core.Result[S]{
		NodesGenerated: 1,
		Visited:        make(map[S]struct{}),
	}

	for frontier.Len() > 0 {
		// cancellation check (once per expansion)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		n := frontier.Pop()
		res.NodesExpanded++
		res.Visited[n.State] = struct{}{}
		o.OnExpand(n.State, n.Depth)

		if env.IsGoal(n.State) {
			res.Complete(n)

			return core.Finish(tracker, res), nil
		}

		for _, succ := range env.Successors(n.State) {
			if succ.Cost < 0 {
				return nil, fmt.Errorf("%w: action %q cost %v", core.ErrNegativeStepCost, succ.Action, succ.Cost)
			}
			if _, ok := seen[succ.State]; ok {
				continue
			}
			seen[succ.State] = struct{}{}
			res.NodesGenerated++
			frontier.Push(n.Child(succ.State, succ.Action, succ.Cost))
		}
	}

	// Frontier exhausted: normal failure outcome.
	return core.Finish(tracker, res), nil
}
