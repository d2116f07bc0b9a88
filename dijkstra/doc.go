// Package dijkstra finds the most likely transmission chain from a seed to
// every other node of a contagion graph.
//
// Overview:
//
//   - Edge weights are transmission probabilities; a chain's probability is
//     the product of its (beta-scaled, capped at 1) edge probabilities.
//   - Products of values in [0,1] only shrink as a chain grows, so
//     Dijkstra's best-first order applies unchanged with a max-heap.
//   - Result.Path(v) rebuilds the chain Source→…→v from predecessors.
//
// When to use:
//
//   - To explain a high spread score: which route carries most of it.
//   - To bound infection probability from below without simulation.
//
// Options:
//
//   - Source(v)              required seed node.
//   - WithBeta(beta)         weight multiplier (default 1).
//   - WithMinProbability(p)  skip chains less likely than p.
//
// Errors:
//
//   - ErrNoSource, ErrNilGraph, ErrVertexNotFound, ErrNegativeWeight.
//   - Option constructors panic on ErrBadBeta and ErrBadMinProbability.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
package dijkstra
