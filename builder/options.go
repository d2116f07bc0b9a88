// SPDX-License-Identifier: MIT
// Package: contagion/builder
//
// options.go: functional options and the resolved builderConfig.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: randomness only via WithSeed or WithRand.
//   • Later options override earlier ones.

package builder

import "math/rand"

// Option customizes a constructor before the graph is built.
type Option func(*builderConfig)

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	rng           *rand.Rand // nil means “no randomness”
	weightFn      WeightFn
	bidirectional bool // emit v→u alongside every u→v
	acyclic       bool // RandomSparse: only i<j pairs
}

func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{weightFn: DefaultWeightFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithConstantWeight is shorthand for WithWeightFn(ConstantWeightFn(p)).
func WithConstantWeight(p float64) Option {
	return WithWeightFn(ConstantWeightFn(p))
}

// WithBidirectional mirrors every generated edge u→v with v→u. The reverse
// edge draws its own weight.
func WithBidirectional() Option {
	return func(c *builderConfig) {
		c.bidirectional = true
	}
}

// WithAcyclic restricts RandomSparse to pairs i<j, which yields a DAG.
// Ignored by the deterministic topologies.
func WithAcyclic() Option {
	return func(c *builderConfig) {
		c.acyclic = true
	}
}
