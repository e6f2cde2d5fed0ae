package informed

import (
	"fmt"

	"github.com/lavrin/wayfarer/core"
)

// ordering maps a node's cumulative cost g and heuristic value h to
// the frontier's (priority, tie) pair. It is the only thing that
// distinguishes Greedy from A*: both run the same best-first loop.
type ordering func(g, h float64) (priority, tie float64)

// bestFirst is the shared best-first expansion loop. The reopen flag
// selects the closed-set policy: when true (A*), a closed state is
// re-examined on a strictly cheaper rediscovery; when false (Greedy),
// a state closes permanently on first expansion.
func bestFirst[S comparable](env core.Environment[S], h core.Heuristic[S], o *Options, order ordering, reopen bool) (*core.Result[S], error) {
	tracker := core.StartTracker()

	root := core.NewRoot(env.InitialState())
	rootH, err := eval(h, root.State)
	if err != nil {
		return nil, err
	}

	frontier := core.NewPriorityFrontier[S]()
	prio, tie := order(0, rootH)
	frontier.Push(root, prio, tie)

	// closed maps each expanded state to the cost it was closed at.
	closed := make(map[S]float64)
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
		if best, done := closed[n.State]; done {
			if !reopen || n.Cost >= best {
				continue
			}
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
			if best, done := closed[succ.State]; done {
				if !reopen || child.Cost >= best {
					continue
				}
			}
			childH, err := eval(h, child.State)
			if err != nil {
				return nil, err
			}
			res.NodesGenerated++
			prio, tie = order(child.Cost, childH)
			frontier.Push(child, prio, tie)
		}
	}

	return core.Finish(tracker, res), nil
}

// eval applies the heuristic and enforces the h ≥ 0 contract.
func eval[S comparable](h core.Heuristic[S], s S) (float64, error) {
	v := h(s)
	if v < 0 {
		return 0, fmt.Errorf("%w: h = %v", core.ErrNegativeHeuristic, v)
	}

	return v, nil
}
