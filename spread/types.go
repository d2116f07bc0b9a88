// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Mode, functional options and sentinel errors for Estimate.

package spread

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"

	"github.com/rs/zerolog"
)

// Epsilon guards the relative-change division for nodes whose uninfected
// probability is already ~0.
const Epsilon = 1e-10

// Sentinel errors for Estimate.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("spread: graph is nil")

	// ErrInvalidParameter is returned for an invalid mode, beta or option.
	ErrInvalidParameter = errors.New("spread: invalid parameter")
)

// ModeKind selects the stopping rule.
type ModeKind int

const (
	// ModeFixedSteps runs a fixed number of timesteps per seed.
	ModeFixedSteps ModeKind = iota + 1

	// ModeUntilConverged runs until the maximum relative change in any
	// discovered node's uninfected probability is within tolerance.
	ModeUntilConverged
)

// Mode is the stopping rule of a run. The zero Mode is invalid; build one
// with FixedSteps, UntilConverged or FromIterations.
type Mode struct {
	kind      ModeKind
	steps     int
	tolerance float64
}

// FixedSteps stops each seed after exactly n timesteps (n ≥ 1).
func FixedSteps(n int) Mode {
	return Mode{kind: ModeFixedSteps, steps: n}
}

// UntilConverged stops each seed once the relative change of every
// discovered node falls at or below tolerance (tolerance > 0).
func UntilConverged(tolerance float64) Mode {
	return Mode{kind: ModeUntilConverged, tolerance: tolerance}
}

// FromIterations maps the single-integer convention used by the reference
// tooling: niter < 1 selects UntilConverged(tolerance), otherwise
// FixedSteps(niter).
func FromIterations(niter int, tolerance float64) Mode {
	if niter < 1 {
		return UntilConverged(tolerance)
	}

	return FixedSteps(niter)
}

// Kind returns the stopping rule.
func (m Mode) Kind() ModeKind { return m.kind }

// Steps returns n for FixedSteps(n), 0 otherwise.
func (m Mode) Steps() int { return m.steps }

// Tolerance returns tol for UntilConverged(tol), 0 otherwise.
func (m Mode) Tolerance() float64 { return m.tolerance }

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m.kind {
	case ModeFixedSteps:
		return fmt.Sprintf("FixedSteps(%d)", m.steps)
	case ModeUntilConverged:
		return fmt.Sprintf("UntilConverged(%g)", m.tolerance)
	default:
		return "Mode(invalid)"
	}
}

func (m Mode) validate() error {
	switch m.kind {
	case ModeFixedSteps:
		if m.steps < 1 {
			return fmt.Errorf("%w: FixedSteps requires n ≥ 1, got %d", ErrInvalidParameter, m.steps)
		}
	case ModeUntilConverged:
		if !(m.tolerance > 0) {
			return fmt.Errorf("%w: UntilConverged requires tolerance > 0, got %g", ErrInvalidParameter, m.tolerance)
		}
	default:
		return fmt.Errorf("%w: mode not set", ErrInvalidParameter)
	}

	return nil
}

func validateBeta(beta float64) error {
	if beta < 0 || math.IsNaN(beta) || math.IsInf(beta, 0) {
		return fmt.Errorf("%w: beta must be finite and ≥ 0, got %g", ErrInvalidParameter, beta)
	}

	return nil
}

// Option configures Estimate via functional arguments.
// An invalid Option is recorded and surfaced as ErrInvalidParameter when
// Estimate is invoked.
type Option func(*Options)

// Options holds the tunables of a run.
type Options struct {
	// Ctx allows cancellation between seeds and between steps.
	Ctx context.Context

	// Workers is the number of goroutines evaluating seeds.
	Workers int

	// Logger receives one debug line when a run starts and one when it ends.
	Logger zerolog.Logger

	// MaxSteps, if > 0, caps the steps of any seed in either mode.
	MaxSteps int

	// Seeds, if non-nil, restricts evaluation to these node ids; every other
	// node keeps score 0.
	Seeds []int

	err error
}

// DefaultOptions returns background context, GOMAXPROCS workers, a no-op
// logger, no step cap and every node as a seed.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: runtime.GOMAXPROCS(0),
		Logger:  zerolog.Nop(),
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

// WithLogger routes run diagnostics to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithMaxSteps caps the number of steps per seed (0 = no cap).
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: max steps must be ≥ 0, got %d", ErrInvalidParameter, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithSeeds restricts the run to the given seed ids. Calling it with no ids
// leaves every node a seed.
func WithSeeds(ids ...int) Option {
	return func(o *Options) {
		o.Seeds = append([]int(nil), ids...)
	}
}
