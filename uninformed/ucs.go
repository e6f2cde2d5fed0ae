package uninformed

import (
	"fmt"

	"github.com/lavrin/wayfarer/core"
)

// UCS runs uniform-cost search on env: a min-priority frontier ordered
// by cumulative path cost g, with insertion order breaking ties. UCS is
// complete and optimal for any non-negative step costs.
//
// Duplicate handling uses the lazy-decrease-key frontier: rediscovering
// a state at a lower cost pushes a fresh entry, and a popped entry is
// skipped when the closed set already holds a cost ≤ its own. A closed
// state therefore reopens only on a strictly cheaper path — the
// invariant that keeps UCS correct without in-heap decrease-key.
//
// Returns core.ErrNilEnvironment, ErrOptionViolation,
// core.ErrNegativeStepCost, or the context's error; frontier
// exhaustion without a goal is a normal Success == false Result.
func UCS[S comparable](env core.Environment[S], opts ...Option) (*core.Result[S], error) {
	if env == nil {
		return nil, core.ErrNilEnvironment
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	tracker := core.StartTracker()
	root := core.NewRoot(env.InitialState())

	frontier := core.NewPriorityFrontier[S]()
	frontier.Push(root, 0, 0)
	// closed maps each expanded state to the cost it was closed at.
	closed := make(map[S]float64)
	res := &core.Result[S]{
		NodesGenerated: 1,
		Visited:        make(map[S]struct{}),
	}

	for frontier.Len() > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		n := frontier.Pop()
		if best, done := closed[n.State]; done && n.Cost >= best {
			// Stale heap entry: the state was already closed at a cost
			// no worse than this one.
			continue
		}
		closed[n.State] = n.Cost
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
			child := n.Child(succ.State, succ.Action, succ.Cost)
			if best, done := closed[succ.State]; done && child.Cost >= best {
				continue
			}
			res.NodesGenerated++
			frontier.Push(child, child.Cost, 0)
		}
	}

	return core.Finish(tracker, res), nil
}
