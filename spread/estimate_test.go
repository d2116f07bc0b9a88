package spread_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/contagion/builder"
	"github.com/katalvlaran/contagion/core"
	"github.com/katalvlaran/contagion/dfs"
	"github.com/katalvlaran/contagion/spread"
)

const eps = 1e-12

// chain3 builds A→B→C with weights wAB and wBC.
func chain3(t *testing.T, wAB, wBC float64) *core.Graph {
	t.Helper()
	g, err := core.FromEdges(3, []core.Edge{
		{From: 0, To: 1, Weight: wAB},
		{From: 1, To: 2, Weight: wBC},
	})
	require.NoError(t, err)

	return g
}

func TestEstimate_Validation(t *testing.T) {
	g := chain3(t, 1, 1)
	cases := []struct {
		name string
		g    *core.Graph
		mode spread.Mode
		beta float64
		opts []spread.Option
		want error
	}{
		{"nil graph", nil, spread.FixedSteps(1), 1, nil, spread.ErrGraphNil},
		{"zero mode", g, spread.Mode{}, 1, nil, spread.ErrInvalidParameter},
		{"fixed zero", g, spread.FixedSteps(0), 1, nil, spread.ErrInvalidParameter},
		{"fixed negative", g, spread.FixedSteps(-2), 1, nil, spread.ErrInvalidParameter},
		{"tolerance zero", g, spread.UntilConverged(0), 1, nil, spread.ErrInvalidParameter},
		{"tolerance NaN", g, spread.UntilConverged(math.NaN()), 1, nil, spread.ErrInvalidParameter},
		{"beta negative", g, spread.FixedSteps(1), -0.1, nil, spread.ErrInvalidParameter},
		{"beta NaN", g, spread.FixedSteps(1), math.NaN(), nil, spread.ErrInvalidParameter},
		{"beta Inf", g, spread.FixedSteps(1), math.Inf(1), nil, spread.ErrInvalidParameter},
		{"workers zero", g, spread.FixedSteps(1), 1, []spread.Option{spread.WithWorkers(0)}, spread.ErrInvalidParameter},
		{"max steps negative", g, spread.FixedSteps(1), 1, []spread.Option{spread.WithMaxSteps(-1)}, spread.ErrInvalidParameter},
		{"seed out of range", g, spread.FixedSteps(1), 1, []spread.Option{spread.WithSeeds(3)}, spread.ErrInvalidParameter},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rep, err := spread.Estimate(tc.g, tc.mode, tc.beta, tc.opts...)
			assert.Nil(t, rep)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestEstimate_EmptyGraph(t *testing.T) {
	g, err := core.FromEdges(0, nil)
	require.NoError(t, err)

	rep, err := spread.Estimate(g, spread.UntilConverged(1e-6), 1)
	require.NoError(t, err)
	assert.Equal(t, 0, rep.Len())
}

// TestEstimate_NoEdges: every node scores 0 in both modes.
func TestEstimate_NoEdges(t *testing.T) {
	g, err := core.FromEdges(5, nil)
	require.NoError(t, err)

	for _, mode := range []spread.Mode{spread.FixedSteps(3), spread.UntilConverged(1e-6)} {
		rep, err := spread.Estimate(g, mode, 1)
		require.NoError(t, err)
		assert.Equal(t, make([]float64, 5), rep.Scores, mode.String())
	}
}

func TestEstimate_CertainChain(t *testing.T) {
	g := chain3(t, 1, 1)

	rep, err := spread.Estimate(g, spread.FixedSteps(2), 1)
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3, rep.Score(0), eps)
	assert.InDelta(t, 1.0/3, rep.Score(1), eps)
	assert.InDelta(t, 0, rep.Score(2), eps)
	assert.Equal(t, []int{2, 2, 2}, rep.Steps)

	conv, err := spread.Estimate(g, spread.UntilConverged(1e-6), 1)
	require.NoError(t, err)
	assert.InDeltaSlice(t, rep.Scores, conv.Scores, eps)
	// A needs two infecting steps and one quiet step to see convergence.
	assert.Equal(t, []int{3, 2, 1}, conv.Steps)
}

// TestEstimate_HorizonTruncates: one step only reaches the first hop.
func TestEstimate_HorizonTruncates(t *testing.T) {
	rep, err := spread.Estimate(chain3(t, 1, 1), spread.FixedSteps(1), 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3, rep.Score(0), eps)
}

func TestEstimate_PartialChain(t *testing.T) {
	rep, err := spread.Estimate(chain3(t, 0.5, 1), spread.FixedSteps(2), 1)
	require.NoError(t, err)
	// B with 0.5, then C with 0.5·1.
	assert.InDelta(t, 1.0/3, rep.Score(0), eps)
	assert.InDelta(t, 1.0/3, rep.Score(1), eps)
}

func TestEstimate_BetaScalesWeights(t *testing.T) {
	half, err := spread.Estimate(chain3(t, 1, 1), spread.FixedSteps(2), 0.5)
	require.NoError(t, err)
	// B: 0.5, C: 0.25.
	assert.InDelta(t, 0.75/3, half.Score(0), eps)

	zero, err := spread.Estimate(chain3(t, 1, 1), spread.FixedSteps(2), 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, zero.Scores)
}

// TestEstimate_TwoParents combines independent exposures:
// 0→2 (0.5) and 1→2 (0.5), both seeded from 3.
func TestEstimate_TwoParents(t *testing.T) {
	g, err := core.FromEdges(4, []core.Edge{
		{From: 3, To: 0, Weight: 1},
		{From: 3, To: 1, Weight: 1},
		{From: 0, To: 2, Weight: 0.5},
		{From: 1, To: 2, Weight: 0.5},
	})
	require.NoError(t, err)

	rep, err := spread.Estimate(g, spread.UntilConverged(1e-9), 1)
	require.NoError(t, err)
	// 0 and 1 surely, 2 with 1-(0.5·0.5).
	assert.InDelta(t, (2+0.75)/4, rep.Score(3), eps)
}

func TestEstimate_IsolatedSeed(t *testing.T) {
	g, err := core.FromEdges(4, []core.Edge{{From: 1, To: 2, Weight: 1}, {From: 2, To: 3, Weight: 1}})
	require.NoError(t, err)

	rep, err := spread.Estimate(g, spread.UntilConverged(1e-6), 1)
	require.NoError(t, err)
	assert.Zero(t, rep.Score(0))
	assert.InDelta(t, 2.0/4, rep.Score(1), eps)
}

// TestEstimate_CycleDoesNotReinfectSeed: the seed stays out of its own count.
func TestEstimate_CycleDoesNotReinfectSeed(t *testing.T) {
	g, err := builder.Cycle(3)
	require.NoError(t, err)

	rep, err := spread.Estimate(g, spread.FixedSteps(10), 1)
	require.NoError(t, err)
	for v := 0; v < 3; v++ {
		assert.InDelta(t, 2.0/3, rep.Score(v), eps)
	}
}

func TestEstimate_MonotoneInBeta(t *testing.T) {
	g, err := builder.RandomSparse(15, 0.2, builder.WithSeed(11), builder.WithWeightFn(builder.UniformWeightFn(0.1, 0.9)))
	require.NoError(t, err)

	mode := spread.FixedSteps(g.NodeCount())
	var prev []float64
	for _, beta := range []float64{0, 0.1, 0.25, 0.5, 0.75, 1} {
		rep, err := spread.Estimate(g, mode, beta)
		require.NoError(t, err)
		if prev != nil {
			for v := range rep.Scores {
				assert.GreaterOrEqual(t, rep.Scores[v], prev[v]-eps, "node %d beta %g", v, beta)
			}
		}
		prev = rep.Scores
	}
}

// TestEstimate_ModeEquivalenceOnDAG: on a DAG the longest path is a horizon
// after which nothing changes, so FixedSteps(L) matches convergence.
func TestEstimate_ModeEquivalenceOnDAG(t *testing.T) {
	g, err := builder.RandomSparse(10, 0.35,
		builder.WithSeed(5), builder.WithAcyclic(), builder.WithWeightFn(builder.UniformWeightFn(0.3, 0.7)))
	require.NoError(t, err)
	depth, err := dfs.LongestPath(g)
	require.NoError(t, err)

	fixed, err := spread.Estimate(g, spread.FixedSteps(max(depth, 1)), 1)
	require.NoError(t, err)
	conv, err := spread.Estimate(g, spread.UntilConverged(1e-12), 1)
	require.NoError(t, err)
	assert.InDeltaSlice(t, fixed.Scores, conv.Scores, 1e-6)

	longer, err := spread.Estimate(g, spread.FixedSteps(depth+5), 1)
	require.NoError(t, err)
	assert.InDeltaSlice(t, fixed.Scores, longer.Scores, eps)
}

func TestEstimate_NormalizationRoundTrip(t *testing.T) {
	g, err := builder.Star(6, builder.WithConstantWeight(0.5))
	require.NoError(t, err)

	rep, err := spread.Estimate(g, spread.FixedSteps(1), 1)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, rep.Raw(0), eps)
	for v := range rep.Scores {
		assert.InDelta(t, rep.Raw(v), rep.Score(v)*float64(g.NodeCount()), eps)
	}
}

func TestEstimate_WorkersDeterministic(t *testing.T) {
	g, err := builder.RandomSparse(40, 0.1, builder.WithSeed(3), builder.WithWeightFn(builder.UniformWeightFn(0, 1)))
	require.NoError(t, err)

	one, err := spread.Estimate(g, spread.UntilConverged(1e-8), 1, spread.WithWorkers(1))
	require.NoError(t, err)
	many, err := spread.Estimate(g, spread.UntilConverged(1e-8), 1, spread.WithWorkers(8))
	require.NoError(t, err)
	assert.Equal(t, one.Scores, many.Scores)
	assert.Equal(t, one.Steps, many.Steps)
}

func TestEstimate_WithSeeds(t *testing.T) {
	rep, err := spread.Estimate(chain3(t, 1, 1), spread.FixedSteps(2), 1, spread.WithSeeds(1))
	require.NoError(t, err)
	assert.Zero(t, rep.Score(0))
	assert.InDelta(t, 1.0/3, rep.Score(1), eps)
	assert.Equal(t, []int{0, 2, 0}, rep.Steps)
}

func TestEstimate_MaxStepsCapsConvergence(t *testing.T) {
	g, err := builder.Chain(6)
	require.NoError(t, err)

	rep, err := spread.Estimate(g, spread.UntilConverged(1e-9), 1, spread.WithMaxSteps(2))
	require.NoError(t, err)
	assert.InDelta(t, 2.0/6, rep.Score(0), eps)
	assert.Equal(t, 2, rep.Steps[0])
}

// The convergence test looks only at discovered nodes. A weak first link
// changes the first ring by less than the tolerance, so the run stops after
// one step even though certain links lie further down the chain.
func TestEstimate_ConvergenceStopsOnQuietFirstRing(t *testing.T) {
	g, err := core.FromEdges(4, []core.Edge{
		{From: 0, To: 1, Weight: 1e-4},
		{From: 1, To: 2, Weight: 1},
		{From: 2, To: 3, Weight: 1},
	})
	require.NoError(t, err)

	conv, err := spread.Estimate(g, spread.UntilConverged(1e-3), 1, spread.WithSeeds(0))
	require.NoError(t, err)
	assert.Equal(t, 1, conv.Steps[0])
	assert.InDelta(t, 1e-4, conv.Raw(0), eps)

	fixed, err := spread.Estimate(g, spread.FixedSteps(3), 1, spread.WithSeeds(0))
	require.NoError(t, err)
	assert.Equal(t, 3, fixed.Steps[0])
	assert.InDelta(t, 3e-4, fixed.Raw(0), eps)
}

func TestEstimate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep, err := spread.Estimate(chain3(t, 1, 1), spread.FixedSteps(2), 1, spread.WithContext(ctx))
	assert.Nil(t, rep)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFromIterations(t *testing.T) {
	assert.Equal(t, spread.ModeUntilConverged, spread.FromIterations(0, 1e-4).Kind())
	assert.Equal(t, spread.ModeUntilConverged, spread.FromIterations(-3, 1e-4).Kind())
	assert.Equal(t, 1e-4, spread.FromIterations(0, 1e-4).Tolerance())

	m := spread.FromIterations(7, 1e-4)
	assert.Equal(t, spread.ModeFixedSteps, m.Kind())
	assert.Equal(t, 7, m.Steps())
	assert.Equal(t, "FixedSteps(7)", m.String())
	assert.Equal(t, "Mode(invalid)", spread.Mode{}.String())
}
