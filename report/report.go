// SPDX-License-Identifier: MIT
//
// Package report holds the per-node result of a diffusion run: a normalized
// spread score for every node in [0, N), plus the engine-specific detail
// needed to undo the normalization or judge statistical quality.
//
// Normalization convention: Score(v) is the expected number of nodes other
// than v that a cascade seeded at v eventually infects, divided by N.
// Raw(v) = Score(v)·N recovers the expected count.
package report

import (
	"fmt"
	"sort"
)

// Report is the outcome of one whole-graph engine run.
// Slices are indexed by node id and have length Nodes; detail slices that an
// engine does not produce are nil.
type Report struct {
	// Nodes is N, the node count of the graph the report was computed on.
	Nodes int

	// Scores holds the normalized score of every node.
	Scores []float64

	// Steps holds, per seed, how many timesteps the estimator ran.
	Steps []int

	// MeanSpread holds, per seed, the mean cascade size including the seed.
	MeanSpread []float64

	// StdErr holds, per seed, the standard error of MeanSpread.
	StdErr []float64
}

// Entry is one row of a ranking.
type Entry struct {
	Rank  int     // 1-based
	Node  int     // node id
	Score float64 // normalized score
	Raw   float64 // Score·N
}

// New allocates a report for n nodes with all scores zero.
func New(n int) *Report {
	return &Report{Nodes: n, Scores: make([]float64, n)}
}

// Len returns the number of scored nodes.
func (r *Report) Len() int {
	return len(r.Scores)
}

// Score returns the normalized score of v.
func (r *Report) Score(v int) float64 {
	return r.Scores[v]
}

// Raw returns the un-normalized expected count of other infected nodes.
func (r *Report) Raw(v int) float64 {
	return r.Scores[v] * float64(r.Nodes)
}

// Map returns the node→score mapping expected by ranking code.
func (r *Report) Map() map[int]float64 {
	m := make(map[int]float64, len(r.Scores))
	for v, s := range r.Scores {
		m[v] = s
	}

	return m
}

// Ranking returns node ids ordered by descending score; ties keep
// ascending id order.
// Complexity: O(N log N).
func (r *Report) Ranking() []int {
	order := make([]int, len(r.Scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return r.Scores[order[i]] > r.Scores[order[j]]
	})

	return order
}

// Top returns the first k entries of Ranking. k ≤ 0 or k > N returns all.
func (r *Report) Top(k int) []Entry {
	order := r.Ranking()
	if k <= 0 || k > len(order) {
		k = len(order)
	}
	out := make([]Entry, k)
	for i := 0; i < k; i++ {
		v := order[i]
		out[i] = Entry{Rank: i + 1, Node: v, Score: r.Scores[v], Raw: r.Raw(v)}
	}

	return out
}

// String implements fmt.Stringer with a compact summary.
func (r *Report) String() string {
	return fmt.Sprintf("report{nodes=%d}", r.Nodes)
}
