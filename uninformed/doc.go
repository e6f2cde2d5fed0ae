// Package uninformed implements the blind search strategies over a
// core.Environment: breadth-first search, depth-limited depth-first
// search, uniform-cost search, and iterative deepening.
//
// Strategy guarantees:
//
//   - BFS  — complete on finite spaces; optimal only when every step
//     cost is equal (the grid environments here use uniform cost 1, so
//     BFS is optimal by construction — a precondition, not a general
//     guarantee).
//   - DFS  — neither complete beyond its depth limit nor optimal; the
//     hard limit guarantees termination on implicit graphs. A branch
//     exceeding the limit is abandoned, not reported as an error.
//   - UCS  — complete and optimal for any non-negative step costs;
//     closed states reopen only on a strictly cheaper rediscovery.
//   - IDS  — complete and optimal under uniform step costs; expansion
//     and generation counts accumulate across all deepening
//     iterations, so they read high next to single-pass strategies.
//     That inflation is expected, not a defect.
//
// Shared duplicate-state policy: a state is identified solely by its
// value, never by the path that reached it.
//
// All four strategies accept functional Options (context cancellation,
// depth limits, an OnExpand hook) and return a core.Result. Frontier
// exhaustion without a goal is a normal Success == false outcome.
package uninformed
