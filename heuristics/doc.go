// Package heuristics supplies pure heuristic constructors for the
// grid-maze environment: Manhattan and Euclidean distance, plus the
// zero heuristic that degrades A* to uniform-cost search.
//
// Every constructor is bound to the environment's static goal
// information (the goal and key positions) and returns a
// core.Heuristic closure over gridenv.State.
//
// The key-then-goal objective makes the estimate two-staged: while the
// key is not held, the heuristic is the sum of two admissible legs —
// current position to the key, then key to goal — and once the key is
// held it is the direct estimate to the goal. Dropping the first leg
// would keep admissibility but lose information; summing the two legs
// keeps the estimate admissible because any solution must visit the
// key cell before the goal.
package heuristics
