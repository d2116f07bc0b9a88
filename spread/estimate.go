// SPDX-License-Identifier: MIT
//
// File: estimate.go
// Role: Estimate entry point, seed fan-out and the per-seed recurrence.

package spread

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/contagion/bfs"
	"github.com/katalvlaran/contagion/core"
	"github.com/katalvlaran/contagion/internal/workerpool"
	"github.com/katalvlaran/contagion/report"
)

// Estimate computes the normalized spread score of every seed of g under
// mode, with every edge weight multiplied by beta.
//
// Returns a report whose Scores[s] is the expected number of nodes other
// than s infected by a cascade seeded at s, divided by N, and whose Steps[s]
// is the number of timesteps seed s ran.
//
// Validation happens before any computation (fail fast, no partial report):
//  1. g must be non-nil (ErrGraphNil).
//  2. options must be valid (ErrInvalidParameter).
//  3. mode must be valid (ErrInvalidParameter).
//  4. beta must be finite and ≥ 0 (ErrInvalidParameter).
//  5. every WithSeeds id must lie in [0, N) and appear once (ErrInvalidParameter).
func Estimate(g *core.Graph, mode Mode, beta float64, opts ...Option) (*report.Report, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := mode.validate(); err != nil {
		return nil, err
	}
	if err := validateBeta(beta); err != nil {
		return nil, err
	}

	n := g.NodeCount()
	seeds := o.Seeds
	if seeds == nil {
		seeds = workerpool.Range(n)
	}
	seen := make(map[int]struct{}, len(seeds))
	for _, s := range seeds {
		if s < 0 || s >= n {
			return nil, fmt.Errorf("%w: seed %d not in [0, %d)", ErrInvalidParameter, s, n)
		}
		if _, dup := seen[s]; dup {
			return nil, fmt.Errorf("%w: duplicate seed %d", ErrInvalidParameter, s)
		}
		seen[s] = struct{}{}
	}

	log := o.Logger.With().Str("component", "spread").Logger()
	log.Debug().
		Int("nodes", n).
		Int("edges", g.EdgeCount()).
		Int("seeds", len(seeds)).
		Stringer("mode", mode).
		Float64("beta", beta).
		Int("workers", o.Workers).
		Msg("estimate started")
	started := time.Now()

	rep := report.New(n)
	rep.Steps = make([]int, n)

	err := workerpool.Run(o.Ctx, seeds, o.Workers, func() workerpool.Task {
		st := newState(g, beta)

		return func(ctx context.Context, seed int) error {
			raw, steps, err := st.run(ctx, seed, mode, o.MaxSteps)
			if err != nil {
				return err
			}
			rep.Scores[seed] = raw / float64(n)
			rep.Steps[seed] = steps

			return nil
		}
	})
	if err != nil {
		return nil, err
	}

	total := 0
	for _, s := range rep.Steps {
		total += s
	}
	log.Debug().Dur("elapsed", time.Since(started)).Int("steps", total).Msg("estimate finished")

	return rep, nil
}

// state is one worker's scratch, reused across seeds. Only nodes in the
// frontier are ever written, so reset touches only those.
type state struct {
	g    *core.Graph
	beta float64

	uninfected []float64 // P(not infected so far)
	prev       []float64 // uninfected before the current step
	last       []float64 // P(infected during the previous step)
	just       []float64 // P(infected during the current step)

	frontier *bfs.Frontier
}

func newState(g *core.Graph, beta float64) *state {
	n := g.NodeCount()
	st := &state{
		g:          g,
		beta:       beta,
		uninfected: make([]float64, n),
		prev:       make([]float64, n),
		last:       make([]float64, n),
		just:       make([]float64, n),
		frontier:   bfs.NewFrontier(n),
	}
	for i := 0; i < n; i++ {
		st.uninfected[i] = 1
		st.prev[i] = 1
	}

	return st
}

// reset restores the previous seed's footprint to the pristine state and
// seeds the next run.
func (st *state) reset(seed int) {
	for _, v := range st.frontier.Discovered() {
		st.uninfected[v] = 1
		st.prev[v] = 1
		st.last[v] = 0
		st.just[v] = 0
	}
	st.frontier.Reset(seed)

	st.uninfected[seed] = 0
	st.last[seed] = 1
}

// run evaluates one seed and returns its raw score and the steps taken.
func (st *state) run(ctx context.Context, seed int, mode Mode, maxSteps int) (float64, int, error) {
	st.reset(seed)

	steps := 0
	for {
		if mode.kind == ModeFixedSteps && steps >= mode.steps {
			break
		}
		if maxSteps > 0 && steps >= maxSteps {
			break
		}
		if err := ctx.Err(); err != nil {
			return 0, steps, err
		}

		st.frontier.Expand(st.g, steps)
		st.step()
		steps++

		if mode.kind == ModeUntilConverged && st.maxRelativeChange() <= mode.tolerance {
			break
		}
	}

	return st.spread(seed), steps, nil
}

// step applies one timestep of the recurrence to every discovered node.
// All justInfected values are computed from the previous step's lastInfected
// before any of them is committed.
func (st *state) step() {
	nodes := st.frontier.Discovered()
	for _, v := range nodes {
		st.prev[v] = st.uninfected[v]

		q := 1.0
		for _, a := range st.g.Predecessors(v) {
			q *= 1 - st.last[a.Node]*st.beta*a.Weight
		}
		st.just[v] = (1 - q) * st.uninfected[v]
	}
	for _, v := range nodes {
		st.uninfected[v] -= st.just[v]
		st.last[v] = st.just[v]
		st.just[v] = 0
	}
}

// maxRelativeChange is the convergence statistic over the discovered
// frontier. NaN ratios are skipped.
func (st *state) maxRelativeChange() float64 {
	worst := 0.0
	for _, v := range st.frontier.Discovered() {
		if r := (st.prev[v] - st.uninfected[v]) / (st.prev[v] + Epsilon); r > worst {
			worst = r
		}
	}

	return worst
}

// spread sums the infection probability of every discovered node but the seed.
// Undiscovered nodes have uninfected == 1 and contribute nothing.
func (st *state) spread(seed int) float64 {
	sum := 0.0
	for _, v := range st.frontier.Discovered() {
		if v != seed {
			sum += 1 - st.uninfected[v]
		}
	}

	return sum
}
