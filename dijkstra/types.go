// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Options, Result and sentinel errors for the most-likely-chain search.

package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrNoSource indicates that Source was never set.
	ErrNoSource = errors.New("dijkstra: source node not set")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates a source outside [0, N).
	ErrVertexNotFound = errors.New("dijkstra: source node not in graph")

	// ErrNegativeWeight indicates an edge whose transmission probability is below zero.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadBeta indicates a negative, NaN or infinite weight multiplier.
	ErrBadBeta = errors.New("dijkstra: beta must be finite and non-negative")

	// ErrBadMinProbability indicates a cutoff outside [0, 1].
	ErrBadMinProbability = errors.New("dijkstra: MinProbability must lie in [0, 1]")
)

// Options configures Dijkstra.
//
// Source         – seed node id (required).
// Beta           – multiplier applied to every edge weight; products above 1 count as 1.
// MinProbability – chains less likely than this are not explored. Default 0 (no cutoff).
type Options struct {
	Source         int
	Beta           float64
	MinProbability float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the seed node.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// WithBeta scales every edge weight by beta.
// Panics with ErrBadBeta on a negative, NaN or infinite value.
func WithBeta(beta float64) Option {
	if beta < 0 || math.IsNaN(beta) || math.IsInf(beta, 0) {
		panic(fmt.Sprintf("%s: got %g", ErrBadBeta, beta))
	}

	return func(o *Options) {
		o.Beta = beta
	}
}

// WithMinProbability prunes every chain whose probability falls below p.
// Panics with ErrBadMinProbability when p ∉ [0, 1].
func WithMinProbability(p float64) Option {
	if !(p >= 0 && p <= 1) {
		panic(fmt.Sprintf("%s: got %g", ErrBadMinProbability, p))
	}

	return func(o *Options) {
		o.MinProbability = p
	}
}

// DefaultOptions returns no source, Beta 1 and no probability cutoff.
func DefaultOptions() Options {
	return Options{
		Source: -1,
		Beta:   1,
	}
}

// Result holds, for every node, the probability of the single most likely
// transmission chain from Source and the node before it on that chain.
type Result struct {
	// Source is the seed node.
	Source int

	// Prob[v] is the product of edge probabilities along the most likely
	// chain Source→…→v; 1 for Source, 0 when v is unreachable or pruned.
	Prob []float64

	// Prev[v] is v's predecessor on that chain, -1 for Source and for
	// unreachable nodes.
	Prev []int
}

// Path returns the most likely chain Source→…→target, or nil when target
// is out of range or unreachable.
func (r *Result) Path(target int) []int {
	if target < 0 || target >= len(r.Prob) || r.Prob[target] == 0 {
		return nil
	}

	var rev []int
	for v := target; v != -1; v = r.Prev[v] {
		rev = append(rev, v)
	}
	path := make([]int, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}

	return path
}
