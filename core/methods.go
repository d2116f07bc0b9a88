// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: read-only queries on an immutable Graph.
// Policy:
//   - No locks: the Graph never changes after construction.
//   - Adjacency accessors return the shared slices; callers must not modify them.
//   - Per-node accessors panic on out-of-range ids, like slice indexing.

package core

import (
	"fmt"
	"sort"
)

// NodeCount returns N, the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	return len(g.succ)
}

// EdgeCount returns the number of distinct edges on the successor side.
// A leniently built graph may hold more edges on the predecessor side; see
// GraphStats.PredecessorOnly.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Successors returns the ordered successor arcs of v.
// Complexity: O(1).
func (g *Graph) Successors(v int) []Arc {
	return g.succ[v]
}

// Predecessors returns the ordered predecessor arcs of v.
// Complexity: O(1).
func (g *Graph) Predecessors(v int) []Arc {
	return g.pred[v]
}

// OutDegree returns len(Successors(v)).
func (g *Graph) OutDegree(v int) int {
	return len(g.succ[v])
}

// InDegree returns len(Predecessors(v)).
func (g *Graph) InDegree(v int) int {
	return len(g.pred[v])
}

// Weight returns the weight of u→v and whether the edge exists.
// Out-of-range ids report (0, false).
// Complexity: O(deg⁺(u)).
func (g *Graph) Weight(u, v int) (float64, bool) {
	if u < 0 || u >= len(g.succ) {
		return 0, false
	}
	for _, a := range g.succ[u] {
		if a.Node == v {
			return a.Weight, true
		}
	}

	return 0, false
}

// Edges returns every successor-side edge sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for u, arcs := range g.succ {
		for _, a := range arcs {
			out = append(out, Edge{From: u, To: a.Node, Weight: a.Weight})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// Stats produces a snapshot of counts, degree extremes and weight range.
// Complexity: O(V + E).
func (g *Graph) Stats() GraphStats {
	st := GraphStats{Nodes: len(g.succ), Edges: g.edges, PredecessorOnly: g.predOnly}
	first := true
	for v := range g.succ {
		out, in := len(g.succ[v]), len(g.pred[v])
		switch {
		case out == 0 && in == 0:
			st.Isolated++
		case in == 0:
			st.Sources++
		case out == 0:
			st.Sinks++
		}
		st.MaxOutDegree = max(st.MaxOutDegree, out)
		st.MaxInDegree = max(st.MaxInDegree, in)

		for _, a := range g.succ[v] {
			if first {
				st.MinWeight, st.MaxWeight = a.Weight, a.Weight
				first = false
				continue
			}
			st.MinWeight = min(st.MinWeight, a.Weight)
			st.MaxWeight = max(st.MaxWeight, a.Weight)
		}
	}

	return st
}

// Validate checks mirror consistency: every successor entry (u→v, w) has a
// predecessor entry (u→v, w) under v, and vice versa. Graphs built by
// FromEdges or by FromAdjacency with WithStrict always validate.
//
// Returns ErrMalformedGraph describing the first inconsistency found.
// Complexity: O(E log E).
func (g *Graph) Validate() error {
	fromSucc := make(map[pair]float64, g.edges)
	for u, arcs := range g.succ {
		for _, a := range arcs {
			fromSucc[pair{u, a.Node}] = a.Weight
		}
	}

	seen := 0
	for v, arcs := range g.pred {
		for _, a := range arcs {
			w, ok := fromSucc[pair{a.Node, v}]
			if !ok {
				return fmt.Errorf("%w: edge %d→%d has no successor entry", ErrMalformedGraph, a.Node, v)
			}
			if w != a.Weight {
				return fmt.Errorf("%w: edge %d→%d weight %g (successor) != %g (predecessor)",
					ErrMalformedGraph, a.Node, v, w, a.Weight)
			}
			seen++
		}
	}
	if seen != len(fromSucc) {
		// Some successor entry had no predecessor twin; report the smallest for determinism.
		for _, e := range g.Edges() {
			if !hasArc(g.pred[e.To], e.From) {
				return fmt.Errorf("%w: edge %d→%d has no predecessor entry", ErrMalformedGraph, e.From, e.To)
			}
		}
	}

	return nil
}

func hasArc(arcs []Arc, node int) bool {
	for _, a := range arcs {
		if a.Node == node {
			return true
		}
	}

	return false
}
