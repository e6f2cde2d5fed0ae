// Package core: problem abstraction, contract errors, and the Result
// record shared by all search strategies.
package core

import (
	"errors"
	"time"
)

// Sentinel errors for environment and heuristic contract violations.
// Strategies fail fast with these rather than produce an incorrect
// Result.
var (
	// ErrNilEnvironment is returned when a nil Environment is passed to
	// a strategy.
	ErrNilEnvironment = errors.New("core: environment is nil")

	// ErrNegativeStepCost is returned when a successor reports a
	// negative step cost, which breaks the cost-accounting invariants
	// of every strategy.
	ErrNegativeStepCost = errors.New("core: negative step cost from environment")

	// ErrNegativeHeuristic is returned when a heuristic evaluates to a
	// negative value, violating the h(state) ≥ 0 contract.
	ErrNegativeHeuristic = errors.New("core: negative heuristic value")
)

// Successor describes one transition out of a state: the state reached,
// the label of the action taken, and the non-negative step cost.
type Successor[S comparable] struct {
	State  S
	Action string
	Cost   float64
}

// Environment is the state-transition provider consumed by every
// search strategy. Implementations must be deterministic for a given
// problem instance: the engines treat each invocation as a one-shot
// computation over an immutable problem.
//
// Successors must return a finite slice per call; completeness of BFS
// and UCS additionally requires a finite reachable state space, which
// is the supplier's responsibility.
type Environment[S comparable] interface {
	// InitialState returns the start state of the problem instance.
	InitialState() S

	// IsGoal reports whether s satisfies the goal test.
	IsGoal(s S) bool

	// Successors enumerates every transition out of s.
	// Step costs must be ≥ 0.
	Successors(s S) []Successor[S]
}

// Heuristic estimates the remaining cost from a state to the nearest
// goal. The contract is h(s) ≥ 0 for all states and h(goal) == 0.
// Admissibility (never overestimating the true remaining cost) is
// required for A* optimality; consistency additionally prevents
// re-expansion.
type Heuristic[S comparable] func(s S) float64

// Result is the immutable record produced exactly once per strategy
// invocation. A search that exhausts its frontier without reaching a
// goal is a normal outcome: Success is false, Path and Actions are
// empty, and the metrics cover the work done up to exhaustion.
type Result[S comparable] struct {
	// Success reports whether a goal state was reached.
	Success bool

	// Path is the ordered state sequence from the initial state to the
	// goal, inclusive. Empty on failure.
	Path []S

	// Actions holds the action labels along Path; len(Actions) is
	// len(Path)-1 on success, 0 on failure.
	Actions []string

	// PathCost is the cumulative cost of Path (0 on failure).
	PathCost float64

	// NodesExpanded counts states popped from the frontier and
	// processed.
	NodesExpanded int

	// NodesGenerated counts states produced by the successor function,
	// plus one for the initial state.
	NodesGenerated int

	// Runtime is the wall-clock duration of the invocation.
	Runtime time.Duration

	// PeakMemory is the number of heap bytes allocated during the
	// invocation, sampled from the runtime allocator at completion.
	PeakMemory uint64

	// Visited holds every state that entered the closed set, for
	// diagnostics and visualization.
	Visited map[S]struct{}
}

// Complete marks r successful with the solution ending at goal,
// reconstructing Path and Actions from the node's parent chain.
func (r *Result[S]) Complete(goal *Node[S]) {
	r.Success = true
	r.Path = goal.Path()
	r.Actions = goal.Actions()
	r.PathCost = goal.Cost
}
