// Package uninformed_test validates the blind strategies: option and
// contract errors, solution correctness on small mazes, depth-limit
// semantics, and the uniform-cost optimality guarantees.
package uninformed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lavrin/wayfarer/core"
	"github.com/lavrin/wayfarer/gridenv"
	"github.com/lavrin/wayfarer/uninformed"
)

// deadEnd is an environment whose initial state has no successors and
// is not a goal.
type deadEnd struct{}

func (deadEnd) InitialState() string                       { return "stuck" }
func (deadEnd) IsGoal(string) bool                         { return false }
func (deadEnd) Successors(string) []core.Successor[string] { return nil }

// negCost reports a negative step cost, violating the Environment
// contract.
type negCost struct{}

func (negCost) InitialState() string { return "a" }
func (negCost) IsGoal(string) bool   { return false }
func (negCost) Successors(string) []core.Successor[string] {
	return []core.Successor[string]{{State: "b", Action: "bad", Cost: -1}}
}

// smallMaze is a 4x3 grid with a wall column splitting start from
// goal: the agent must go down to the key, around the wall, and back
// up. The optimal cost is 7.
func smallMaze(t *testing.T) *gridenv.Env {
	t.Helper()
	env, err := gridenv.Parse([]string{
		"S.#G",
		"..#.",
		"K...",
	})
	require.NoError(t, err)

	return env
}

// ------------------------------------------------------------------------
// 1. Validation.
// ------------------------------------------------------------------------

func TestBFS_NilEnvironment(t *testing.T) {
	_, err := uninformed.BFS[string](nil)
	require.ErrorIs(t, err, core.ErrNilEnvironment)
}

func TestDFS_NegativeDepthLimit(t *testing.T) {
	_, err := uninformed.DFS[gridenv.State](smallMaze(t), uninformed.WithDepthLimit(-1))
	require.ErrorIs(t, err, uninformed.ErrOptionViolation)
}

func TestIDS_NegativeMaxDepth(t *testing.T) {
	_, err := uninformed.IDS[gridenv.State](smallMaze(t), uninformed.WithMaxDepth(-3))
	require.ErrorIs(t, err, uninformed.ErrOptionViolation)
}

func TestBFS_NegativeStepCostFailsFast(t *testing.T) {
	_, err := uninformed.BFS[string](negCost{})
	require.ErrorIs(t, err, core.ErrNegativeStepCost)
}

func TestUCS_NegativeStepCostFailsFast(t *testing.T) {
	_, err := uninformed.UCS[string](negCost{})
	require.ErrorIs(t, err, core.ErrNegativeStepCost)
}

func TestBFS_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := uninformed.BFS[gridenv.State](smallMaze(t), uninformed.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// ------------------------------------------------------------------------
// 2. Exhaustion is a result, not an error.
// ------------------------------------------------------------------------

func TestAllStrategies_DeadEndIsNormalFailure(t *testing.T) {
	type run func() (*core.Result[string], error)
	runs := map[string]run{
		"bfs": func() (*core.Result[string], error) { return uninformed.BFS[string](deadEnd{}) },
		"dfs": func() (*core.Result[string], error) { return uninformed.DFS[string](deadEnd{}) },
		"ucs": func() (*core.Result[string], error) { return uninformed.UCS[string](deadEnd{}) },
		"ids": func() (*core.Result[string], error) {
			return uninformed.IDS[string](deadEnd{}, uninformed.WithMaxDepth(3))
		},
	}
	for name, r := range runs {
		t.Run(name, func(t *testing.T) {
			res, err := r()
			require.NoError(t, err)
			require.False(t, res.Success)
			require.Empty(t, res.Path)
			require.Empty(t, res.Actions)
			require.GreaterOrEqual(t, res.NodesExpanded, 1)
		})
	}
}

// ------------------------------------------------------------------------
// 3. Solution correctness on a small maze.
// ------------------------------------------------------------------------

func TestBFS_FindsOptimalPathOnUniformCosts(t *testing.T) {
	env := smallMaze(t)
	res, err := uninformed.BFS[gridenv.State](env)
	require.NoError(t, err)
	require.True(t, res.Success)

	// Path starts at the initial state and ends on the goal with the
	// key in hand.
	require.Equal(t, env.InitialState(), res.Path[0])
	require.True(t, env.IsGoal(res.Path[len(res.Path)-1]))
	require.Len(t, res.Actions, len(res.Path)-1)
	require.Equal(t, float64(len(res.Actions)), res.PathCost)
	require.Positive(t, res.NodesExpanded)
	require.GreaterOrEqual(t, res.NodesGenerated, res.NodesExpanded)
}

func TestUCS_MatchesBFSOnUniformCosts(t *testing.T) {
	env := smallMaze(t)
	bfsRes, err := uninformed.BFS[gridenv.State](env)
	require.NoError(t, err)
	ucsRes, err := uninformed.UCS[gridenv.State](env)
	require.NoError(t, err)

	require.True(t, bfsRes.Success)
	require.True(t, ucsRes.Success)
	require.Equal(t, bfsRes.PathCost, ucsRes.PathCost)
}

func TestDFS_SucceedsButNeverCheaperThanBFS(t *testing.T) {
	env := smallMaze(t)
	bfsRes, err := uninformed.BFS[gridenv.State](env)
	require.NoError(t, err)
	dfsRes, err := uninformed.DFS[gridenv.State](env)
	require.NoError(t, err)

	require.True(t, dfsRes.Success)
	require.GreaterOrEqual(t, dfsRes.PathCost, bfsRes.PathCost)
}

func TestIDS_OptimalOnUniformCostsWithInflatedCounts(t *testing.T) {
	env := smallMaze(t)
	bfsRes, err := uninformed.BFS[gridenv.State](env)
	require.NoError(t, err)
	idsRes, err := uninformed.IDS[gridenv.State](env)
	require.NoError(t, err)

	require.True(t, idsRes.Success)
	require.Equal(t, bfsRes.PathCost, idsRes.PathCost)
	// Re-exploration across iterations inflates the counters by
	// design.
	require.Greater(t, idsRes.NodesExpanded, bfsRes.NodesExpanded)
}

// ------------------------------------------------------------------------
// 4. Depth limiting.
// ------------------------------------------------------------------------

func TestDFS_DepthLimitAbandonsBranch(t *testing.T) {
	env := smallMaze(t)

	// The optimum needs more than two actions: a limit of 2 must fail,
	// and that failure is a normal outcome.
	res, err := uninformed.DFS[gridenv.State](env, uninformed.WithDepthLimit(2))
	require.NoError(t, err)
	require.False(t, res.Success)
}

func TestIDS_MaxDepthTooSmallFails(t *testing.T) {
	env := smallMaze(t)
	res, err := uninformed.IDS[gridenv.State](env, uninformed.WithMaxDepth(2))
	require.NoError(t, err)
	require.False(t, res.Success)
}

func TestIDS_FindsSolutionAtExactLimit(t *testing.T) {
	env := smallMaze(t)
	bfsRes, err := uninformed.BFS[gridenv.State](env)
	require.NoError(t, err)
	optimal := len(bfsRes.Actions)

	res, err := uninformed.IDS[gridenv.State](env, uninformed.WithMaxDepth(optimal))
	require.NoError(t, err)
	require.True(t, res.Success)
	require.Len(t, res.Actions, optimal)
}

// ------------------------------------------------------------------------
// 5. No re-expansion: UCS never processes a state twice at equal or
//    higher cost.
// ------------------------------------------------------------------------

func TestUCS_NeverReexpandsAtHigherCost(t *testing.T) {
	env := smallMaze(t)
	expansions := make(map[gridenv.State]int)
	_, err := uninformed.UCS[gridenv.State](env, uninformed.WithOnExpand(func(state any, _ int) {
		expansions[state.(gridenv.State)]++
	}))
	require.NoError(t, err)

	for s, n := range expansions {
		require.Equal(t, 1, n, "state %+v expanded %d times", s, n)
	}
}
