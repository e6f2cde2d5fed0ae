// Package wayfarer_test runs every strategy against one shared
// scenario and cross-checks their guarantees: the optimal strategies
// agree on the cheapest cost, the heuristic ones never beat it, and the
// instrumentation stays coherent across the board.
package wayfarer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lavrin/wayfarer/core"
	"github.com/lavrin/wayfarer/gridenv"
	"github.com/lavrin/wayfarer/heuristics"
	"github.com/lavrin/wayfarer/informed"
	"github.com/lavrin/wayfarer/uninformed"
)

// courier is a 10x10 open grid: pick up the key at (4,4), deliver to
// the far corner. The optimal cost is the two Manhattan legs,
// 8 + 10 = 18.
func courier(t *testing.T) *gridenv.Env {
	t.Helper()
	env, err := gridenv.Parse([]string{
		"S.........",
		"..........",
		"..........",
		"..........",
		"....K.....",
		"..........",
		"..........",
		"..........",
		"..........",
		".........G",
	})
	require.NoError(t, err)

	return env
}

const optimalCost = 18.0

func TestScenario_OptimalStrategiesAgree(t *testing.T) {
	env := courier(t)
	runs := map[string]func() (*core.Result[gridenv.State], error){
		"bfs": func() (*core.Result[gridenv.State], error) {
			return uninformed.BFS[gridenv.State](env)
		},
		"ucs": func() (*core.Result[gridenv.State], error) {
			return uninformed.UCS[gridenv.State](env)
		},
		"astar/manhattan": func() (*core.Result[gridenv.State], error) {
			return informed.AStar(env, heuristics.Manhattan(env.Goal(), env.Key()))
		},
		"astar/euclidean": func() (*core.Result[gridenv.State], error) {
			return informed.AStar(env, heuristics.Euclidean(env.Goal(), env.Key()))
		},
		"greedy/manhattan": func() (*core.Result[gridenv.State], error) {
			return informed.Greedy(env, heuristics.Manhattan(env.Goal(), env.Key()))
		},
	}

	for name, run := range runs {
		t.Run(name, func(t *testing.T) {
			res, err := run()
			require.NoError(t, err)
			require.True(t, res.Success)
			require.Equal(t, optimalCost, res.PathCost)

			// Path shape: starts at the initial state, ends on the goal,
			// one action per edge.
			require.Equal(t, env.InitialState(), res.Path[0])
			require.True(t, env.IsGoal(res.Path[len(res.Path)-1]))
			require.Len(t, res.Actions, len(res.Path)-1)
		})
	}
}

func TestScenario_DepthFirstFamiliesComplete(t *testing.T) {
	env := courier(t)

	dfsRes, err := uninformed.DFS[gridenv.State](env)
	require.NoError(t, err)
	require.True(t, dfsRes.Success)
	require.GreaterOrEqual(t, dfsRes.PathCost, optimalCost)

	idsRes, err := uninformed.IDS[gridenv.State](env)
	require.NoError(t, err)
	require.True(t, idsRes.Success)
	require.GreaterOrEqual(t, idsRes.PathCost, optimalCost)
}

func TestScenario_InformedSearchExpandsLess(t *testing.T) {
	env := courier(t)

	ucsRes, err := uninformed.UCS[gridenv.State](env)
	require.NoError(t, err)
	astarRes, err := informed.AStar(env, heuristics.Manhattan(env.Goal(), env.Key()))
	require.NoError(t, err)

	require.LessOrEqual(t, astarRes.NodesExpanded, ucsRes.NodesExpanded)
}

func TestScenario_MetricsAreCoherent(t *testing.T) {
	env := courier(t)
	res, err := uninformed.BFS[gridenv.State](env)
	require.NoError(t, err)

	require.Positive(t, res.NodesExpanded)
	require.GreaterOrEqual(t, res.NodesGenerated, res.NodesExpanded)
	require.Len(t, res.Visited, res.NodesExpanded)
	require.GreaterOrEqual(t, res.Runtime, time.Duration(0))
}
