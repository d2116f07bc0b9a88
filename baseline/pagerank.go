// SPDX-License-Identifier: MIT
//
// Package baseline scores nodes with classic centralities (degree,
// PageRank) and measures rank agreement between any two reports, so that
// diffusion scores can be compared against them.
package baseline

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/graph/network"

	"github.com/katalvlaran/contagion/converters"
	"github.com/katalvlaran/contagion/core"
	"github.com/katalvlaran/contagion/report"
)

// Defaults used by the command-line tool.
const (
	DefaultDamping   = 0.85
	DefaultTolerance = 1e-6
)

// Sentinel errors.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("baseline: graph is nil")

	// ErrInvalidParameter is returned for out-of-range numeric arguments.
	ErrInvalidParameter = errors.New("baseline: invalid parameter")
)

// PageRank returns a report whose Scores hold the edge-weighted PageRank of
// every node: a node spreads its rank over its successors in proportion to
// the transmission weights, and a node with no outgoing weight spreads it
// uniformly. Self-loops are dropped. Scores sum to 1 for a non-empty graph.
func PageRank(g *core.Graph, damping, tolerance float64) (*report.Report, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !(damping > 0 && damping < 1) {
		return nil, fmt.Errorf("%w: damping must be in (0,1), got %g", ErrInvalidParameter, damping)
	}
	if !(tolerance > 0) {
		return nil, fmt.Errorf("%w: tolerance must be > 0, got %g", ErrInvalidParameter, tolerance)
	}
	dg, _, err := converters.ToGonum(g)
	if err != nil {
		return nil, fmt.Errorf("baseline: %w", err)
	}

	rep := report.New(g.NodeCount())
	if g.NodeCount() == 0 {
		return rep, nil
	}
	for id, rank := range network.PageRankSparse(dg, damping, tolerance) {
		rep.Scores[id] = rank
	}

	return rep, nil
}
