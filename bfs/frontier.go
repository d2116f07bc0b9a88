// SPDX-License-Identifier: MIT
//
// File: frontier.go
// Role: reusable BFS frontier with read/write cursors and a distance map.

package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/contagion/core"
)

// Undiscovered is the distance of a node the frontier has not reached.
const Undiscovered = -1

// Sentinel errors for Distances.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the seed is outside [0, N).
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")
)

// Frontier is a growable BFS queue over nodes [0, N).
//
// queue[:read] have been expanded; queue[read:] were discovered by the last
// expansion and wait for the next one. dist[v] is v's hop count from the
// seed, or Undiscovered.
type Frontier struct {
	queue []int
	dist  []int
	read  int
}

// NewFrontier allocates a frontier for n nodes with nothing discovered.
// Call Reset before the first Expand.
func NewFrontier(n int) *Frontier {
	dist := make([]int, n)
	for i := range dist {
		dist[i] = Undiscovered
	}

	return &Frontier{dist: dist}
}

// Reset forgets the previous run and seeds the queue with seed at distance 0.
// Complexity: O(previously discovered).
func (f *Frontier) Reset(seed int) {
	for _, v := range f.queue {
		f.dist[v] = Undiscovered
	}
	f.queue = f.queue[:0]
	f.read = 0

	f.dist[seed] = 0
	f.queue = append(f.queue, seed)
}

// Expand expands every queued-but-unexpanded node. Successors not yet
// discovered get distance step+1 and are appended in visit order.
// Returns the number of newly discovered nodes; 0 means the reachable set is
// complete and further calls are no-ops.
func (f *Frontier) Expand(g *core.Graph, step int) int {
	end := len(f.queue) // nodes appended below belong to the next ring
	before := end
	for ; f.read < end; f.read++ {
		for _, a := range g.Successors(f.queue[f.read]) {
			if f.dist[a.Node] == Undiscovered {
				f.dist[a.Node] = step + 1
				f.queue = append(f.queue, a.Node)
			}
		}
	}

	return len(f.queue) - before
}

// Discovered returns every node found so far, in discovery order.
// The slice is owned by the frontier and valid until the next Expand or Reset.
func (f *Frontier) Discovered() []int {
	return f.queue
}

// Len returns the number of discovered nodes (the write cursor).
func (f *Frontier) Len() int {
	return len(f.queue)
}

// Exhausted reports whether every discovered node has been expanded.
func (f *Frontier) Exhausted() bool {
	return f.read == len(f.queue)
}

// Distance returns v's hop count from the seed, or Undiscovered.
func (f *Frontier) Distance(v int) int {
	return f.dist[v]
}

// Distances runs a full BFS from seed and returns the hop count of every
// node, Undiscovered for nodes the seed cannot reach.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound.
// Complexity: O(V + E).
func Distances(g *core.Graph, seed int) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if seed < 0 || seed >= g.NodeCount() {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, seed)
	}

	f := NewFrontier(g.NodeCount())
	f.Reset(seed)
	for step := 0; f.Expand(g, step) > 0; step++ {
	}

	return f.dist, nil
}
