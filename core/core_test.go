// Package core_test validates the shared search primitives: node path
// reconstruction, frontier ordering policies, priority tie-breaking,
// and the metrics tracker.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lavrin/wayfarer/core"
)

func TestNode_RootHasNoParentAndZeroCost(t *testing.T) {
	root := core.NewRoot("start")
	require.Nil(t, root.Parent)
	require.Zero(t, root.Cost)
	require.Zero(t, root.Depth)
	require.Equal(t, []string{"start"}, root.Path())
	require.Empty(t, root.Actions())
}

func TestNode_ChildAccumulatesCostAndDepth(t *testing.T) {
	root := core.NewRoot("a")
	b := root.Child("b", "right", 2)
	c := b.Child("c", "down", 3)

	require.Equal(t, 5.0, c.Cost)
	require.Equal(t, 2, c.Depth)
	require.Equal(t, []string{"a", "b", "c"}, c.Path())
	require.Equal(t, []string{"right", "down"}, c.Actions())
}

func TestQueue_PopsInFIFOOrder(t *testing.T) {
	q := core.NewQueue[int]()
	for i := 1; i <= 3; i++ {
		q.Push(core.NewRoot(i))
	}

	require.Equal(t, 3, q.Len())
	require.Equal(t, 1, q.Pop().State)
	require.Equal(t, 2, q.Pop().State)
	require.Equal(t, 3, q.Pop().State)
	require.Nil(t, q.Pop())
}

func TestStack_PopsInLIFOOrder(t *testing.T) {
	s := core.NewStack[int]()
	for i := 1; i <= 3; i++ {
		s.Push(core.NewRoot(i))
	}

	require.Equal(t, 3, s.Pop().State)
	require.Equal(t, 2, s.Pop().State)
	require.Equal(t, 1, s.Pop().State)
	require.Nil(t, s.Pop())
}

func TestPriorityFrontier_OrdersByPriority(t *testing.T) {
	pf := core.NewPriorityFrontier[string]()
	pf.Push(core.NewRoot("high"), 9, 0)
	pf.Push(core.NewRoot("low"), 1, 0)
	pf.Push(core.NewRoot("mid"), 5, 0)

	require.Equal(t, "low", pf.Pop().State)
	require.Equal(t, "mid", pf.Pop().State)
	require.Equal(t, "high", pf.Pop().State)
	require.Nil(t, pf.Pop())
}

func TestPriorityFrontier_TieBrokenBySecondaryKey(t *testing.T) {
	// Equal primary priority: the smaller tie value must win,
	// regardless of insertion order.
	pf := core.NewPriorityFrontier[string]()
	pf.Push(core.NewRoot("far"), 10, 7)
	pf.Push(core.NewRoot("near"), 10, 2)

	require.Equal(t, "near", pf.Pop().State)
	require.Equal(t, "far", pf.Pop().State)
}

func TestPriorityFrontier_FullTieFallsBackToInsertionOrder(t *testing.T) {
	pf := core.NewPriorityFrontier[string]()
	pf.Push(core.NewRoot("first"), 4, 1)
	pf.Push(core.NewRoot("second"), 4, 1)
	pf.Push(core.NewRoot("third"), 4, 1)

	require.Equal(t, "first", pf.Pop().State)
	require.Equal(t, "second", pf.Pop().State)
	require.Equal(t, "third", pf.Pop().State)
}

func TestTracker_FinishStampsRuntimeAndMemory(t *testing.T) {
	tr := core.StartTracker()
	// Allocate something measurable before finishing.
	buf := make([]byte, 1<<16)
	_ = buf

	res := core.Finish(tr, &core.Result[int]{Success: true})
	require.True(t, res.Success)
	require.GreaterOrEqual(t, res.Runtime.Nanoseconds(), int64(0))
}
