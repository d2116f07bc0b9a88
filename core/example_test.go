package core_test

import (
	"fmt"

	"github.com/katalvlaran/contagion/core"
)

// ExampleFromAdjacency builds the graph the way a dataset loader hands it
// over: predecessor lists with weights, successor lists without.
func ExampleFromAdjacency() {
	// 0 → 1 (0.5), 1 → 2 (1.0)
	inList := [][]int{{}, {0}, {1}}
	inWeight := [][]float64{{}, {0.5}, {1.0}}
	outList := [][]int{{1}, {2}, {}}

	g, err := core.FromAdjacency(inList, inWeight, outList, core.WithStrict())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("nodes:", g.NodeCount(), "edges:", g.EdgeCount())
	for v := 0; v < g.NodeCount(); v++ {
		fmt.Println(v, "→", g.Successors(v))
	}

	// Output:
	// nodes: 3 edges: 2
	// 0 → [{1 0.5}]
	// 1 → [{2 1}]
	// 2 → []
}

// ExampleFromEdges shows duplicate resolution: the last weight wins.
func ExampleFromEdges() {
	g, _ := core.FromEdges(2, []core.Edge{
		{From: 0, To: 1, Weight: 0.2},
		{From: 0, To: 1, Weight: 0.7},
	})
	w, _ := g.Weight(0, 1)
	fmt.Println(g.EdgeCount(), w)

	// Output:
	// 1 0.7
}
