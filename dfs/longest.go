// SPDX-License-Identifier: MIT
//
// File: longest.go
// Role: LongestPath, the DAG depth in edges.

package dfs

import "github.com/katalvlaran/contagion/core"

// LongestPath returns the number of edges on the longest directed path of g.
// A graph with no edges has longest path 0.
//
// On a DAG, any cascade seeded anywhere stops changing after this many
// timesteps, which makes it a safe fixed horizon.
//
// Errors: as TopologicalSort.
// Complexity: O(V + E).
func LongestPath(g *core.Graph, opts ...Option) (int, error) {
	// 1) Topological order, or ErrCycleDetected.
	order, err := TopologicalSort(g, opts...)
	if err != nil {
		return 0, err
	}

	// 2) Relax in topological order; depth[v] = edges on the longest path ending at v.
	depth := make([]int, g.NodeCount())
	best := 0
	for _, u := range order {
		for _, a := range g.Successors(u) {
			if d := depth[u] + 1; d > depth[a.Node] {
				depth[a.Node] = d
				best = max(best, d)
			}
		}
	}

	return best, nil
}
