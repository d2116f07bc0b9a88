// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: constructors. Everything that allocates a Graph lives here.
// Policy:
//   - Structural breakage always fails with ErrMalformedGraph.
//   - Mirror inconsistency fails only under WithStrict().
//   - Duplicate (u,v) pairs: first position kept, last weight wins.

package core

import "fmt"

// pair identifies a directed edge u→v.
type pair struct{ u, v int }

// FromEdges builds a Graph with n nodes from an edge list.
// The result is mirror-consistent by construction, so it takes no options.
//
// Errors:
//   - ErrMalformedGraph if n < 0.
//   - ErrNodeOutOfRange (wrapped with ErrMalformedGraph) if an endpoint is outside [0, n).
//
// Complexity: O(n + E) time and space.
func FromEdges(n int, edges []Edge) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative node count %d", ErrMalformedGraph, n)
	}

	// Resolve duplicates before touching adjacency so positions stay stable.
	index := make(map[pair]int, len(edges))
	unique := make([]Edge, 0, len(edges))
	for i, e := range edges {
		if err := checkRange(n, e.From); err != nil {
			return nil, fmt.Errorf("%w: edge %d source: %w", ErrMalformedGraph, i, err)
		}
		if err := checkRange(n, e.To); err != nil {
			return nil, fmt.Errorf("%w: edge %d target: %w", ErrMalformedGraph, i, err)
		}
		key := pair{e.From, e.To}
		if at, seen := index[key]; seen {
			unique[at].Weight = e.Weight
			continue
		}
		index[key] = len(unique)
		unique = append(unique, e)
	}

	g := newGraph(n)
	for _, e := range unique {
		g.succ[e.From] = append(g.succ[e.From], Arc{Node: e.To, Weight: e.Weight})
		g.pred[e.To] = append(g.pred[e.To], Arc{Node: e.From, Weight: e.Weight})
	}
	g.edges = len(unique)

	return g, nil
}

// FromAdjacency builds a Graph from index-aligned adjacency lists:
// inList[v] are the predecessors of v, inWeight[v] their weights in the same
// order, outList[u] the successors of u. Successor weights are read from the
// mirrored predecessor entry.
//
// Errors:
//   - ErrMalformedGraph if len(inList), len(inWeight), len(outList) differ,
//     if len(inList[v]) != len(inWeight[v]) for some v, or if a node id is out
//     of range (the chain also matches ErrNodeOutOfRange).
//   - ErrMalformedGraph under WithStrict() if an edge appears on one side only.
//
// Complexity: O(N + E) time and space.
func FromAdjacency(inList [][]int, inWeight [][]float64, outList [][]int, opts ...Option) (*Graph, error) {
	cfg := newBuildConfig(opts...)

	n := len(inList)
	if len(inWeight) != n || len(outList) != n {
		return nil, fmt.Errorf("%w: list lengths differ (in=%d, inWeight=%d, out=%d)",
			ErrMalformedGraph, n, len(inWeight), len(outList))
	}

	g := newGraph(n)

	// 1) Predecessor side carries the weights.
	weights := make(map[pair]float64)
	for v := 0; v < n; v++ {
		if len(inList[v]) != len(inWeight[v]) {
			return nil, fmt.Errorf("%w: node %d has %d predecessors but %d weights",
				ErrMalformedGraph, v, len(inList[v]), len(inWeight[v]))
		}
		at := make(map[int]int, len(inList[v]))
		for k, u := range inList[v] {
			if err := checkRange(n, u); err != nil {
				return nil, fmt.Errorf("%w: predecessor %d of node %d: %w", ErrMalformedGraph, k, v, err)
			}
			w := inWeight[v][k]
			weights[pair{u, v}] = w
			if i, seen := at[u]; seen {
				g.pred[v][i].Weight = w
				continue
			}
			at[u] = len(g.pred[v])
			g.pred[v] = append(g.pred[v], Arc{Node: u, Weight: w})
		}
	}

	// 2) Successor side borrows weights from the mirror.
	mirrored := make(map[pair]struct{}, len(weights))
	for u := 0; u < n; u++ {
		for k, v := range outList[u] {
			if err := checkRange(n, v); err != nil {
				return nil, fmt.Errorf("%w: successor %d of node %d: %w", ErrMalformedGraph, k, u, err)
			}
			key := pair{u, v}
			if _, seen := mirrored[key]; seen {
				continue
			}
			mirrored[key] = struct{}{}

			w, ok := weights[key]
			if !ok && cfg.strict {
				return nil, fmt.Errorf("%w: edge %d→%d listed as successor only", ErrMalformedGraph, u, v)
			}
			g.succ[u] = append(g.succ[u], Arc{Node: v, Weight: w})
			g.edges++
		}
	}

	// 3) Unmirrored predecessor entries: an error in strict mode, counted otherwise.
	for v := 0; v < n; v++ {
		for _, a := range g.pred[v] {
			if _, ok := mirrored[pair{a.Node, v}]; ok {
				continue
			}
			if cfg.strict {
				return nil, fmt.Errorf("%w: edge %d→%d listed as predecessor only", ErrMalformedGraph, a.Node, v)
			}
			g.predOnly++
		}
	}

	return g, nil
}

// newGraph allocates empty adjacency for n nodes.
func newGraph(n int) *Graph {
	return &Graph{
		succ: make([][]Arc, n),
		pred: make([][]Arc, n),
	}
}

// checkRange reports ErrNodeOutOfRange when v ∉ [0, n).
func checkRange(n, v int) error {
	if v < 0 || v >= n {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrNodeOutOfRange, v, n)
	}

	return nil
}
