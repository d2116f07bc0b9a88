// SPDX-License-Identifier: MIT
//
// File: dijkstra.go
// Role: best-first search for the most likely transmission chain from one seed.

package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/contagion/core"
)

// Dijkstra finds, for every node v, the single chain Source→…→v whose
// edges are most likely to all transmit, i.e. the path maximizing the
// product of min(1, beta·w) along it.
//
// Effective probabilities never exceed 1, so a chain's probability never
// grows as it extends; that monotonicity is what lets the classic
// best-first order apply with a max-heap on probability instead of a
// min-heap on distance. Edges whose effective probability is 0 are
// impassable.
//
// The chain probability is a lower bound on the chance that v is infected
// from Source at all: the mean-field estimate sums over every chain, this
// reports the dominant one.
//
// Validation order:
//  1. Source must be set (ErrNoSource).
//  2. g must be non-nil (ErrNilGraph).
//  3. Source must be in [0, N) (ErrVertexNotFound).
//  4. No edge may carry a negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate source and graph.
	if cfg.Source == -1 {
		return nil, ErrNoSource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.NodeCount()
	if cfg.Source < 0 || cfg.Source >= n {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrVertexNotFound, cfg.Source, n)
	}

	// 3) Fail fast on negative weights before touching the heap.
	for u := 0; u < n; u++ {
		for _, a := range g.Successors(u) {
			if a.Weight < 0 {
				return nil, fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, u, a.Node, a.Weight)
			}
		}
	}

	// 4) Allocate state and run the best-first loop.
	r := &runner{
		g:       g,
		options: cfg,
		prob:    make([]float64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init()
	r.process()

	return &Result{Source: cfg.Source, Prob: r.prob, Prev: r.prev}, nil
}

// runner holds the mutable state for one search.
type runner struct {
	g       *core.Graph
	options Options
	prob    []float64
	prev    []int
	visited []bool
	pq      nodePQ
}

// init marks every node unreached and pushes Source with probability 1.
func (r *runner) init() {
	// 1) No predecessors yet; Prob is already 0 everywhere.
	for v := range r.prev {
		r.prev[v] = -1
	}
	r.prob[r.options.Source] = 1

	// 2) Seed the heap.
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, prob: 1})
}

// process pops nodes in order of decreasing chain probability; the first
// pop of a node finalizes it.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// 1) Most likely pending node.
		item := heap.Pop(&r.pq).(*nodeItem)

		// 2) Skip entries superseded by a better push.
		if r.visited[item.id] {
			continue
		}

		// 3) Finalize and relax.
		r.visited[item.id] = true
		r.relax(item.id)
	}
}

// relax tries to improve every successor of the finalized node u.
func (r *runner) relax(u int) {
	for _, a := range r.g.Successors(u) {
		// 1) Finalized nodes cannot improve.
		v := a.Node
		if r.visited[v] {
			continue
		}

		// 2) Effective probability, capped at 1; 0 means impassable.
		q := min(a.Weight*r.options.Beta, 1)
		if q <= 0 {
			continue
		}

		// 3) Prune chains below the cutoff.
		cand := r.prob[u] * q
		if cand < r.options.MinProbability {
			continue
		}

		// 4) Strictly better only, so ties keep the first chain found.
		if cand <= r.prob[v] {
			continue
		}

		// 5) Record and push (lazy decrease-key).
		r.prob[v] = cand
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, prob: cand})
	}
}

// nodeItem is a heap entry: a node and the chain probability it was pushed with.
type nodeItem struct {
	id   int
	prob float64
}

// nodePQ is a max-heap on prob with lazy decrease-key: improved nodes are
// pushed again and stale entries skipped on pop. Ties pop the lower id first.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].prob != pq[j].prob {
		return pq[i].prob > pq[j].prob
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
