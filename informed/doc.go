// Package informed implements the heuristic-guided search strategies
// over a core.Environment: greedy best-first search and A*.
//
// Greedy orders its frontier purely by the heuristic value h(state),
// ignoring accumulated cost. It is neither optimal nor complete in
// general; the mandatory closed set is what guarantees termination on
// any finite space.
//
// A* orders its frontier by f = g + h, breaking ties toward the
// smaller h (states closer to the goal win among equal f), then by
// insertion order. With an admissible heuristic A* is optimal; with a
// consistent one it additionally never re-expands a closed state. The
// engine stays correct under admissible-but-inconsistent heuristics by
// reopening a closed state whenever a strictly cheaper path to it
// turns up — the same lazy-decrease-key discipline as UCS, just less
// efficient.
//
// Heuristic contract: h(state) ≥ 0 and h(goal) == 0. A negative value
// is a contract violation and fails the invocation fast with
// core.ErrNegativeHeuristic rather than returning a silently wrong
// Result.
package informed
