// SPDX-License-Identifier: MIT
// Package: contagion/builder
//
// weight_fn.go: edge-weight generators. Weights are transmission
// probabilities, so every generator stays inside [0,1].

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight of every edge when no WeightFn is set:
// a certain transmission.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight from an optional RNG.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields p.
// Panics if p ∉ [0,1].
func ConstantWeightFn(p float64) WeightFn {
	if !(p >= 0 && p <= 1) {
		panic(fmt.Sprintf("ConstantWeightFn: p must be in [0,1], got %g", p))
	}

	return func(_ *rand.Rand) float64 {
		return p
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics unless 0 ≤ min ≤ max ≤ 1.
// If rng is nil it yields DefaultEdgeWeight (deterministic fallback).
func UniformWeightFn(min, max float64) WeightFn {
	if !(min >= 0 && min <= max && max <= 1) {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max ≤ 1, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}
