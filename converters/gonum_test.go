package converters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/contagion/builder"
	"github.com/katalvlaran/contagion/converters"
	"github.com/katalvlaran/contagion/core"
)

func TestToGonum(t *testing.T) {
	g, err := core.FromEdges(4, []core.Edge{
		{From: 0, To: 1, Weight: 0.25},
		{From: 1, To: 2, Weight: 0.5},
		{From: 2, To: 2, Weight: 1},
	})
	require.NoError(t, err)

	dst, loops, err := converters.ToGonum(g)
	require.NoError(t, err)
	assert.Equal(t, 1, loops)
	assert.Equal(t, 4, dst.Nodes().Len(), "isolated node 3 kept")

	w, ok := dst.Weight(0, 1)
	assert.True(t, ok)
	assert.Equal(t, 0.25, w)
	assert.True(t, dst.HasEdgeFromTo(1, 2))
	assert.False(t, dst.HasEdgeFromTo(2, 1))
}

func TestFromGonum_SparseIDs(t *testing.T) {
	src := simple.NewWeightedDirectedGraph(0, 0)
	for _, id := range []int64{40, 10, 30} {
		src.AddNode(simple.Node(id))
	}
	src.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(10), T: simple.Node(40), W: 0.5})
	src.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(10), T: simple.Node(30), W: 0.75})
	src.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(40), T: simple.Node(10), W: 1})

	g, ids, err := converters.FromGonum(src)
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 30, 40}, ids)
	assert.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: 0.75},
		{From: 0, To: 2, Weight: 0.5},
		{From: 2, To: 0, Weight: 1},
	}, g.Edges())
	assert.NoError(t, g.Validate())
}

func TestRoundTrip(t *testing.T) {
	g, err := builder.RandomSparse(25, 0.15, builder.WithSeed(4), builder.WithWeightFn(builder.UniformWeightFn(0, 1)))
	require.NoError(t, err)

	dst, loops, err := converters.ToGonum(g)
	require.NoError(t, err)
	require.Zero(t, loops)

	back, ids, err := converters.FromGonum(dst)
	require.NoError(t, err)
	for i, id := range ids {
		assert.Equal(t, int64(i), id)
	}
	assert.Equal(t, g.Edges(), back.Edges())
}

func TestNilGraphs(t *testing.T) {
	_, _, err := converters.ToGonum(nil)
	assert.ErrorIs(t, err, converters.ErrGraphNil)
	_, _, err = converters.FromGonum(nil)
	assert.ErrorIs(t, err, converters.ErrGraphNil)
}
