// SPDX-License-Identifier: MIT
//
// File: topological.go
// Role: TopologicalSort via three-colour DFS with back-edge detection.

package dfs

import (
	"fmt"

	"github.com/katalvlaran/contagion/core"
)

// topoSorter holds the traversal state of one TopologicalSort call.
type topoSorter struct {
	graph *core.Graph
	opts  options
	state []int // White, Gray or Black per node
	order []int // post-order
}

// TopologicalSort returns every node of g ordered so that for each edge
// u→v, u precedes v. Roots are visited in ascending id order and successors
// in adjacency order, so the result is deterministic.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrCycleDetected (wrapped with the offending edge) if g has a cycle.
//   - ctx.Err() if the WithCancelContext context is cancelled.
//
// Complexity: O(V + E) time, O(V) memory.
func TopologicalSort(g *core.Graph, opts ...Option) ([]int, error) {
	// 1) Validate input and resolve options.
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2) Every node starts White.
	n := g.NodeCount()
	t := &topoSorter{
		graph: g,
		opts:  o,
		state: make([]int, n),
		order: make([]int, 0, n),
	}
	// 3) Start a DFS from each still-White root, lowest id first.
	for v := 0; v < n; v++ {
		if t.state[v] == White {
			if err := t.visit(v); err != nil {
				return nil, err
			}
		}
	}

	// 4) Reverse post-order is a topological order.
	for i, j := 0, len(t.order)-1; i < j; i, j = i+1, j-1 {
		t.order[i], t.order[j] = t.order[j], t.order[i]
	}

	return t.order, nil
}

// visit colours v Gray, recurses into White successors and finishes v Black.
// Reaching a Gray node means the edge closes a cycle.
func (t *topoSorter) visit(v int) error {
	// 1) Honour cancellation once per node.
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}

	// 2) Enter v and scan its successors.
	t.state[v] = Gray
	for _, a := range t.graph.Successors(v) {
		switch t.state[a.Node] {
		case Gray:
			return fmt.Errorf("%w: back edge %d→%d", ErrCycleDetected, v, a.Node)
		case White:
			if err := t.visit(a.Node); err != nil {
				return err
			}
		}
	}
	// 3) All descendants finished: v is done.
	t.state[v] = Black
	t.order = append(t.order, v)

	return nil
}
