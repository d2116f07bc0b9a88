// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Arc, Edge, GraphStats, Option and the sentinel errors.

package core

import "errors"

// Sentinel errors for graph construction and validation.
var (
	// ErrMalformedGraph indicates adjacency data that is structurally broken
	// (mismatched list lengths) or, in strict mode, mirror-inconsistent.
	ErrMalformedGraph = errors.New("core: malformed graph")

	// ErrNodeOutOfRange indicates a node id outside [0, N).
	ErrNodeOutOfRange = errors.New("core: node id out of range")
)

// Arc is one adjacency entry: the node on the other end and the edge weight.
type Arc struct {
	// Node is the successor (in a successor list) or the predecessor
	// (in a predecessor list).
	Node int

	// Weight is the transmission probability of the edge.
	Weight float64
}

// Edge is a directed, weighted edge From→To.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// GraphStats is a read-only snapshot of a Graph's shape.
type GraphStats struct {
	Nodes        int
	Edges        int
	Sources      int // nodes with no predecessors but at least one successor
	Sinks        int // nodes with no successors but at least one predecessor
	Isolated     int // nodes with neither
	MaxOutDegree int
	MaxInDegree  int
	MinWeight    float64 // 0 when Edges == 0
	MaxWeight    float64 // 0 when Edges == 0

	// PredecessorOnly counts edges present only on the predecessor side
	// (lenient FromAdjacency). They are not in Edges but still carry
	// infection into their target.
	PredecessorOnly int
}

// Option configures graph construction.
type Option func(*buildConfig)

// buildConfig holds construction-time settings.
type buildConfig struct {
	strict bool
}

// WithStrict makes FromAdjacency reject mirror-inconsistent input with
// ErrMalformedGraph. Without it the input is trusted: a successor with no
// mirrored predecessor entry gets weight 0, and a predecessor entry with no
// mirrored successor is kept on the predecessor side only.
func WithStrict() Option {
	return func(c *buildConfig) { c.strict = true }
}

func newBuildConfig(opts ...Option) buildConfig {
	var cfg buildConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// Graph is an immutable directed weighted graph over nodes [0, N).
//
// succ[u] lists Arc{v, w} for every edge u→v in adjacency order;
// pred[v] lists Arc{u, w} for every edge u→v in adjacency order.
// A Graph is safe for concurrent use by any number of readers.
type Graph struct {
	succ     [][]Arc
	pred     [][]Arc
	edges    int
	predOnly int // lenient FromAdjacency: predecessor entries with no successor twin
}
