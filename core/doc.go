// Package core defines the shared problem abstraction and bookkeeping
// primitives used by every search strategy in wayfarer:
//
//   - Environment: the state-transition provider (initial state, goal
//     test, successor generation with per-action cost)
//   - Heuristic: a pure, non-negative estimate of remaining cost
//   - Node: a search-tree node carrying cumulative cost, depth, and a
//     parent link for path reconstruction
//   - Frontier: FIFO, LIFO, and min-priority open sets with
//     lazy-decrease-key semantics
//   - Result: the immutable per-invocation record (path, cost, node
//     counts, runtime, memory, visited set)
//   - Tracker: monotonic clock and heap-allocation sampling wrapped
//     around every strategy's main loop
//
// States are opaque values constrained only by comparability, so they
// can serve directly as map keys for visited-set membership. Two action
// sequences reaching the same state value denote the same search node
// for closed-set purposes.
//
// The package carries no strategy logic of its own; see the uninformed,
// informed, and adversarial packages for the engines built on top.
package core
