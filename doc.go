// Package wayfarer is a toolkit for exploring discrete state spaces
// and adversarial game trees: uninformed and heuristic-guided search
// over any comparable state type, and depth-limited minimax with
// alpha-beta pruning over mutable two-player games.
//
// 🚀 What is wayfarer?
//
//	A small, pure-Go library that brings together:
//		• Blind strategies: BFS, depth-limited DFS, uniform-cost, iterative deepening
//		• Guided strategies: greedy best-first and A* with pluggable heuristics
//		• Adversarial engines: minimax and alpha-beta with symmetric static evaluation
//		• Uniform instrumentation: expansion/generation counts, runtime, memory, visited sets
//
// ✨ Why choose wayfarer?
//
//   - One problem abstraction – supply an Environment, pick a strategy, read a Result
//   - Honest outcomes – exhaustion and depth limits are results, contract breaches are errors
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – functional options, expansion hooks, caller-supplied heuristics and evaluators
//
// Everything is organized under focused subpackages:
//
//	core/        — Environment, Node, frontiers, Result & metrics plumbing
//	uninformed/  — BFS, DFS (depth-limited), UCS, IDS
//	informed/    — Greedy best-first, A*
//	adversarial/ — minimax, alpha-beta, evaluation contract
//	gridenv/     — grid-maze Environment with a key-then-goal objective
//	heuristics/  — Manhattan, Euclidean, and zero heuristics for gridenv
//	connect4/    — 6×7 Connect Four game state + static evaluation
//
// Quick ASCII example:
//
//	S . # .
//	. K # .
//	. . . G
//
//	an agent at S must collect the key K before the goal G accepts it.
//
// Dive into the per-package docs for the strategy guarantees, option
// surfaces, and worked examples.
package wayfarer
