// Package core provides the immutable, index-addressed directed graph that
// every diffusion engine in contagion reads from.
//
// The Graph G = (V,E) is built once and never mutated afterwards:
//
//   - Nodes are dense integers in [0, N); labels belong to callers.
//   - Every node carries an ordered successor list and an ordered
//     predecessor list of Arc{Node, Weight}.
//   - An edge (u,v,w) appears as Arc{v,w} under Successors(u) and as
//     Arc{u,w} under Predecessors(v), with the same w.
//   - At most one weight is kept per (u,v): duplicates resolve last-wins,
//     keeping the position of the first occurrence.
//   - Weights are transmission probabilities and are not clamped.
//
// Why immutable?
//
//	Both engines fan seeds out across goroutines. A graph that never changes
//	after construction needs no locks: concurrent readers are always safe,
//	and the adjacency slices can be handed out without copying.
//
// Constructors:
//
//	FromAdjacency(inList, inWeight, outList, opts...) // loader contract
//	FromEdges(n, edges)                               // edge list, mirror-consistent by construction
//
// Options:
//
//	WithStrict() - FromAdjacency rejects mirror inconsistencies with
//	               ErrMalformedGraph instead of trusting the input.
//
// Queries (all O(1) unless noted):
//
//	NodeCount() int
//	EdgeCount() int
//	Successors(v) []Arc      // shared slice, do not modify
//	Predecessors(v) []Arc    // shared slice, do not modify
//	OutDegree(v), InDegree(v)
//	Weight(u, v) (float64, bool)  // O(deg⁺(u))
//	Edges() []Edge                // O(E), sorted by (From, To)
//	Stats() GraphStats            // O(V+E)
//	Validate() error              // O(E log E)
//
// Errors:
//
//	ErrMalformedGraph  - adjacency data is structurally broken or inconsistent.
//	ErrNodeOutOfRange  - a node id lies outside [0, N).
package core
