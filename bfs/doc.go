// Package bfs provides the ring-by-ring breadth-first frontier used to bound
// diffusion updates to the nodes a seed can already reach.
//
// What
//
//   - Frontier is an append-only queue of discovered nodes in discovery order,
//     with a read cursor (everything before it has been expanded) and a write
//     cursor (the end of the queue).
//   - Each call to Expand(g, step) expands exactly the nodes that were queued
//     but not yet expanded when the call started; every undiscovered successor
//     gets distance step+1 and is appended. One call therefore grows the
//     discovered set by one BFS ring.
//   - Reset(seed) rewinds the frontier for the next seed, touching only the
//     nodes the previous run discovered.
//   - Distances(g, seed) runs a frontier to exhaustion and returns hop counts.
//
// Why
//
//	A node more than t hops from the seed cannot have a non-zero infection
//	probability after t steps. Restricting updates to Discovered() is exact
//	and turns a per-seed O(t·E) sweep into O(t·E_reach).
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - Expand:    O(Σ out-degree of the expanded ring)
//   - Reset:     O(previously discovered)
//   - Distances: O(V + E)
//   - Memory:    O(V) for the queue and the distance slice
//
// A Frontier is not safe for concurrent use; give each worker its own.
package bfs
