// Package gridenv models a rectangular maze grid as a
// core.Environment for the search strategies.
//
// A grid is a non-empty, rectangular 2D slice of cell values: CellFree
// cells are walkable, CellWall cells are not. The agent starts at a
// start cell, must step onto the key cell to pick up the key, and the
// goal test holds only when the agent stands on the goal cell while
// holding the key. Movement is four-directional at uniform cost 1.
//
// A State is the agent's coordinates plus the has-key flag, so the
// same position before and after collecting the key is two distinct
// states — the flag is part of state identity, exactly what the
// two-stage heuristics in package heuristics rely on.
//
// Grids can be built from a value slice with New or from ASCII rows
// with Parse:
//
//	env, err := gridenv.Parse([]string{
//	    "S.#",
//	    ".K#",
//	    "..G",
//	})
//
// The package validates its inputs eagerly (empty or ragged grids,
// markers out of bounds or on walls) and is immutable once built, so a
// single Env can safely serve any number of sequential searches.
package gridenv
