package spread_test

import (
	"fmt"

	"github.com/katalvlaran/contagion/core"
	"github.com/katalvlaran/contagion/spread"
)

// ExampleEstimate scores the chain A→B→C where every edge always transmits.
// A reaches both others, B reaches C, C reaches nobody.
func ExampleEstimate() {
	g, _ := core.FromEdges(3, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 1},
	})

	rep, err := spread.Estimate(g, spread.UntilConverged(1e-6), 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range rep.Top(0) {
		fmt.Printf("#%d node=%d score=%.4f raw=%.1f\n", e.Rank, e.Node, e.Score, e.Raw)
	}
	// Output:
	// #1 node=0 score=0.6667 raw=2.0
	// #2 node=1 score=0.3333 raw=1.0
	// #3 node=2 score=0.0000 raw=0.0
}

// ExampleFromIterations shows the single-integer convention: non-positive
// iteration counts mean "run until converged".
func ExampleFromIterations() {
	fmt.Println(spread.FromIterations(0, 1e-3))
	fmt.Println(spread.FromIterations(4, 1e-3))
	// Output:
	// UntilConverged(0.001)
	// FixedSteps(4)
}
