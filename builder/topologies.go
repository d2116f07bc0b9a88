// SPDX-License-Identifier: MIT
// Package: contagion/builder
//
// topologies.go: deterministic topologies: Chain, Star, Cycle, Complete,
// BinaryTree.
//
// Determinism:
//   • Edges are emitted in a fixed order (source asc, then target asc).
//   • Weights are drawn in emission order, so a seeded WeightFn is stable.

package builder

import (
	"fmt"

	"github.com/katalvlaran/contagion/core"
)

// Minimum sizes per constructor.
const (
	MinChainNodes    = 2
	MinStarNodes     = 2
	MinCycleNodes    = 3
	MinCompleteNodes = 1
	MinTreeDepth     = 0
)

// Method tags used as error context.
const (
	methodChain      = "Chain"
	methodStar       = "Star"
	methodCycle      = "Cycle"
	methodComplete   = "Complete"
	methodBinaryTree = "BinaryTree"
)

// edgeSink collects edges in emission order and applies the weight policy.
type edgeSink struct {
	cfg   builderConfig
	edges []core.Edge
}

func (s *edgeSink) add(u, v int) {
	s.edges = append(s.edges, core.Edge{From: u, To: v, Weight: s.cfg.weightFn(s.cfg.rng)})
	if s.cfg.bidirectional {
		s.edges = append(s.edges, core.Edge{From: v, To: u, Weight: s.cfg.weightFn(s.cfg.rng)})
	}
}

func (s *edgeSink) graph(method string, n int) (*core.Graph, error) {
	g, err := core.FromEdges(n, s.edges)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return g, nil
}

func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewVertices)
	}

	return nil
}

// Chain returns the path 0→1→…→n-1.
// Complexity: O(n).
func Chain(n int, opts ...Option) (*core.Graph, error) {
	if err := validateMin(methodChain, "n", n, MinChainNodes); err != nil {
		return nil, err
	}
	s := &edgeSink{cfg: newBuilderConfig(opts...)}
	for i := 0; i+1 < n; i++ {
		s.add(i, i+1)
	}

	return s.graph(methodChain, n)
}

// Star returns a hub 0 with spokes 0→i for i in [1, n).
// Complexity: O(n).
func Star(n int, opts ...Option) (*core.Graph, error) {
	if err := validateMin(methodStar, "n", n, MinStarNodes); err != nil {
		return nil, err
	}
	s := &edgeSink{cfg: newBuilderConfig(opts...)}
	for i := 1; i < n; i++ {
		s.add(0, i)
	}

	return s.graph(methodStar, n)
}

// Cycle returns the ring 0→1→…→n-1→0.
// Complexity: O(n).
func Cycle(n int, opts ...Option) (*core.Graph, error) {
	if err := validateMin(methodCycle, "n", n, MinCycleNodes); err != nil {
		return nil, err
	}
	s := &edgeSink{cfg: newBuilderConfig(opts...)}
	for i := 0; i < n; i++ {
		s.add(i, (i+1)%n)
	}

	return s.graph(methodCycle, n)
}

// Complete returns every ordered pair i→j, i≠j. WithBidirectional is
// redundant here and is ignored.
// Complexity: O(n²).
func Complete(n int, opts ...Option) (*core.Graph, error) {
	if err := validateMin(methodComplete, "n", n, MinCompleteNodes); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	cfg.bidirectional = false
	s := &edgeSink{cfg: cfg}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				s.add(i, j)
			}
		}
	}

	return s.graph(methodComplete, n)
}

// BinaryTree returns a complete binary out-tree of the given depth rooted
// at 0, heap-indexed: node i has children 2i+1 and 2i+2. Depth 0 is a single
// node; depth d has 2^(d+1)-1 nodes.
// Complexity: O(2^depth).
func BinaryTree(depth int, opts ...Option) (*core.Graph, error) {
	if err := validateMin(methodBinaryTree, "depth", depth, MinTreeDepth); err != nil {
		return nil, err
	}
	n := 1<<(depth+1) - 1
	s := &edgeSink{cfg: newBuilderConfig(opts...)}
	for i := 0; 2*i+1 < n; i++ {
		s.add(i, 2*i+1)
		s.add(i, 2*i+2)
	}

	return s.graph(methodBinaryTree, n)
}
