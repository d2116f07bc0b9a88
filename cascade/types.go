// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: functional options and sentinel errors for Simulate.

package cascade

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"

	"github.com/rs/zerolog"
)

// Sentinel errors for Simulate.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("cascade: graph is nil")

	// ErrInvalidParameter is returned for a bad trial count, beta or option.
	ErrInvalidParameter = errors.New("cascade: invalid parameter")
)

// Option configures Simulate. Invalid values are recorded and surfaced as
// ErrInvalidParameter when Simulate is invoked.
type Option func(*Options)

// Options holds the tunables of a simulation.
type Options struct {
	// Ctx allows cancellation between seeds and between trials.
	Ctx context.Context

	// Beta multiplies every edge weight. Default 1.
	Beta float64

	// Workers is the number of goroutines simulating seeds.
	Workers int

	// Logger receives one debug line at start and one at finish.
	Logger zerolog.Logger

	// Seeds, if non-nil, restricts the simulation to these node ids.
	Seeds []int

	err error
}

// DefaultOptions returns beta 1, background context, GOMAXPROCS workers,
// a no-op logger and every node as a seed.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Beta:    1,
		Workers: runtime.GOMAXPROCS(0),
		Logger:  zerolog.Nop(),
	}
}

// WithBeta sets the weight multiplier (finite, ≥ 0).
func WithBeta(beta float64) Option {
	return func(o *Options) {
		if beta < 0 || math.IsNaN(beta) || math.IsInf(beta, 0) {
			o.err = fmt.Errorf("%w: beta must be finite and ≥ 0, got %g", ErrInvalidParameter, beta)
			return
		}
		o.Beta = beta
	}
}

// WithContext sets a context for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the number of seed workers (n ≥ 1).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be ≥ 1, got %d", ErrInvalidParameter, n)
			return
		}
		o.Workers = n
	}
}

// WithLogger routes diagnostics to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithSeeds restricts the simulation to the given ids.
func WithSeeds(ids ...int) Option {
	return func(o *Options) {
		o.Seeds = append([]int(nil), ids...)
	}
}
