package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/contagion/core"
	"github.com/katalvlaran/contagion/dfs"
)

// ExampleLongestPath measures the depth of a small dependency DAG:
//
//	0 → 1 → 3 → 4
//	0 → 2 ↗
func ExampleLongestPath() {
	g, _ := core.FromEdges(5, []core.Edge{
		{From: 0, To: 1, Weight: 1}, {From: 0, To: 2, Weight: 1},
		{From: 1, To: 3, Weight: 1}, {From: 2, To: 3, Weight: 1},
		{From: 3, To: 4, Weight: 1},
	})

	order, _ := dfs.TopologicalSort(g)
	depth, _ := dfs.LongestPath(g)
	fmt.Println(order)
	fmt.Println(depth)
	// Output:
	// [0 2 1 3 4]
	// 3
}
