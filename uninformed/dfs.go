package uninformed

import (
	"fmt"

	"github.com/lavrin/wayfarer/core"
)

// DFS runs depth-first search on env with a hard depth limit
// (WithDepthLimit, default DefaultDepthLimit). The limit guarantees
// termination on implicit graphs of unbounded depth: a branch that
// reaches the limit is abandoned, and the search backtracks rather
// than failing outright. DFS is neither optimal nor complete beyond
// its limit.
//
// Returns core.ErrNilEnvironment, ErrOptionViolation,
// core.ErrNegativeStepCost, or the context's error; exhausting the
// stack without a goal is a normal Success == false Result.
func DFS[S comparable](env core.Environment[S], opts ...Option) (*core.Result[S], error) {
	if env == nil {
		return nil, core.ErrNilEnvironment
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	tracker := core.StartTracker()
	res := &core.Result[S]{Visited: make(map[S]struct{})}

	goal, err := depthLimited(env, &o, o.DepthLimit, res)
	if err != nil {
		return nil, err
	}
	if goal != nil {
		res.Complete(goal)
	}

	return core.Finish(tracker, res), nil
}

// depthLimited is one depth-bounded LIFO pass, shared by DFS and IDS.
// It accumulates expansion/generation counts and expanded states into
// res and returns the goal node, or nil when the bounded space is
// exhausted. Duplicate filtering is scoped to the pass and tracks the
// shallowest depth each state was generated at: a state reached again
// on a strictly shorter path is regenerated, otherwise the deep first
// visit could block a solution that fits inside the limit. IDS relies
// on the per-pass scope to regenerate states at later, deeper
// iterations.
func depthLimited[S comparable](env core.Environment[S], o *Options, limit int, res *core.Result[S]) (*core.Node[S], error) {
	root := core.NewRoot(env.InitialState())

	frontier := core.NewStack[S]()
	frontier.Push(root)
	seen := map[S]int{root.State: 0}
	res.NodesGenerated++

	for frontier.Len() > 0 {
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
			return n, nil
		}

		// At the limit the branch is abandoned: no children generated.
		if n.Depth >= limit {
			continue
		}

		for _, succ := range env.Successors(n.State) {
			if succ.Cost < 0 {
				return nil, fmt.Errorf("%w: action %q cost %v", core.ErrNegativeStepCost, succ.Action, succ.Cost)
			}
			if depth, ok := seen[succ.State]; ok && n.Depth+1 >= depth {
				continue
			}
			seen[succ.State] = n.Depth + 1
			res.NodesGenerated++
			frontier.Push(n.Child(succ.State, succ.Action, succ.Cost))
		}
	}

	return nil, nil
}
