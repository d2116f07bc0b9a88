// SPDX-License-Identifier: MIT
// Package: contagion/builder
//
// random_sparse.go: RandomSparse(n, p), an Erdős–Rényi-like directed graph.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - An RNG is required when 0 < p < 1 (else ErrNeedRandSource).
//   - No self-loops. WithAcyclic keeps only i<j pairs.
//
// Determinism: trials run for i asc, then j asc; the edge trial and the
// weight draw share the RNG in that order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/contagion/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse samples each admissible ordered pair (i, j) independently
// with probability p.
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64, opts ...Option) (*core.Graph, error) {
	if err := validateMin(methodRandomSparse, "n", n, minRandomSparseVertices); err != nil {
		return nil, err
	}
	if !(p >= 0 && p <= 1) {
		return nil, fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil && p > 0 && p < 1 {
		return nil, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
	}

	// Pairs are enumerated explicitly; mirroring would double-sample.
	cfg.bidirectional = false
	s := &edgeSink{cfg: cfg}
	for i := 0; i < n; i++ {
		j0 := 0
		if cfg.acyclic {
			j0 = i + 1
		}
		for j := j0; j < n; j++ {
			if i == j {
				continue
			}
			switch {
			case p == 0:
			case p == 1:
				s.add(i, j)
			case cfg.rng.Float64() < p:
				s.add(i, j)
			}
		}
	}

	return s.graph(methodRandomSparse, n)
}
