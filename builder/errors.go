// SPDX-License-Identifier: MIT
// Package: contagion/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w ("Chain: n=1 < min=2: ...").
//   • Constructors never panic; panics are confined to option and
//     weight-function constructors (programmer error).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, depth) is below the
// minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates an edge probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (use WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")
