// SPDX-License-Identifier: MIT
//
// File: gonum.go
// Role: core.Graph ⇄ gonum graph.Weighted adapters.

package converters

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/contagion/core"
)

// ErrGraphNil is returned when a nil source graph is passed.
var ErrGraphNil = errors.New("converters: graph is nil")

// absentWeight is what the exported gonum graph reports for missing edges.
const absentWeight = 0

// ToGonum copies g into a new weighted directed gonum graph. Node v of g
// becomes simple.Node(v); every node is added even when isolated.
// Self-loops are dropped (simple graphs cannot hold them); the count of
// dropped loops is returned.
//
// Complexity: O(V + E).
func ToGonum(g *core.Graph) (*simple.WeightedDirectedGraph, int, error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}

	dst := simple.NewWeightedDirectedGraph(0, absentWeight)
	for v := 0; v < g.NodeCount(); v++ {
		dst.AddNode(simple.Node(v))
	}

	loops := 0
	for u := 0; u < g.NodeCount(); u++ {
		for _, a := range g.Successors(u) {
			if a.Node == u {
				loops++
				continue
			}
			dst.SetWeightedEdge(simple.WeightedEdge{
				F: simple.Node(u),
				T: simple.Node(a.Node),
				W: a.Weight,
			})
		}
	}

	return dst, loops, nil
}

// FromGonum builds a core.Graph from src. Nodes are indexed in ascending
// gonum id order; ids[i] is the gonum id of core node i. Successors of each
// node follow ascending target id, so the result is deterministic even
// though gonum iteration order is not.
//
// Complexity: O(V log V + E log E).
func FromGonum(src graph.Weighted) (*core.Graph, []int64, error) {
	if src == nil {
		return nil, nil, ErrGraphNil
	}

	nodes := graph.NodesOf(src.Nodes())
	ids := make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	index := make(map[int64]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	var edges []core.Edge
	for _, uid := range ids {
		targets := graph.NodesOf(src.From(uid))
		sort.Slice(targets, func(i, j int) bool { return targets[i].ID() < targets[j].ID() })
		for _, t := range targets {
			w, ok := src.Weight(uid, t.ID())
			if !ok {
				continue
			}
			edges = append(edges, core.Edge{From: index[uid], To: index[t.ID()], Weight: w})
		}
	}

	g, err := core.FromEdges(len(ids), edges)
	if err != nil {
		return nil, nil, fmt.Errorf("converters: FromGonum: %w", err)
	}

	return g, ids, nil
}
