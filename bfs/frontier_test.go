package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/contagion/bfs"
	"github.com/katalvlaran/contagion/core"
)

// diamond is 0→1, 0→2, 1→3, 2→3, plus an unreachable 4→0.
func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.FromEdges(5, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 0, To: 2, Weight: 1},
		{From: 1, To: 3, Weight: 1},
		{From: 2, To: 3, Weight: 1},
		{From: 4, To: 0, Weight: 1},
	})
	require.NoError(t, err)

	return g
}

func TestFrontier_RingByRing(t *testing.T) {
	g := diamond(t)
	f := bfs.NewFrontier(g.NodeCount())
	f.Reset(0)

	assert.Equal(t, []int{0}, f.Discovered())
	assert.False(t, f.Exhausted())

	assert.Equal(t, 2, f.Expand(g, 0))
	assert.Equal(t, []int{0, 1, 2}, f.Discovered())
	assert.Equal(t, 1, f.Distance(1))
	assert.Equal(t, 1, f.Distance(2))
	assert.False(t, f.Exhausted(), "ring 1 is queued but not expanded")

	assert.Equal(t, 1, f.Expand(g, 1))
	assert.Equal(t, []int{0, 1, 2, 3}, f.Discovered())
	assert.Equal(t, 2, f.Distance(3))

	assert.Equal(t, 0, f.Expand(g, 2))
	assert.True(t, f.Exhausted())
	assert.Equal(t, 0, f.Expand(g, 3), "expanding an exhausted frontier is a no-op")
	assert.Equal(t, bfs.Undiscovered, f.Distance(4))
	assert.Equal(t, 4, f.Len())
}

func TestFrontier_ResetClearsPreviousRun(t *testing.T) {
	g := diamond(t)
	f := bfs.NewFrontier(g.NodeCount())

	f.Reset(0)
	for step := 0; f.Expand(g, step) > 0; step++ {
	}
	require.Equal(t, 4, f.Len())

	f.Reset(3)
	assert.Equal(t, []int{3}, f.Discovered())
	for v := 0; v < 5; v++ {
		if v == 3 {
			assert.Equal(t, 0, f.Distance(v))
			continue
		}
		assert.Equal(t, bfs.Undiscovered, f.Distance(v), "node %d", v)
	}
	assert.Equal(t, 0, f.Expand(g, 0), "3 is a sink")
}

func TestFrontier_SelfLoopNotRequeued(t *testing.T) {
	g, err := core.FromEdges(2, []core.Edge{{From: 0, To: 0, Weight: 1}, {From: 0, To: 1, Weight: 1}})
	require.NoError(t, err)

	f := bfs.NewFrontier(2)
	f.Reset(0)
	assert.Equal(t, 1, f.Expand(g, 0))
	assert.Equal(t, []int{0, 1}, f.Discovered())
}

func TestDistances(t *testing.T) {
	g := diamond(t)

	d, err := bfs.Distances(g, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 2, 3, 0}, d)

	d, err = bfs.Distances(g, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{-1, -1, -1, 0, -1}, d)
}

func TestDistances_Errors(t *testing.T) {
	_, err := bfs.Distances(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.Distances(diamond(t), 5)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}
