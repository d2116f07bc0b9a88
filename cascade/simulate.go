// SPDX-License-Identifier: MIT
//
// File: simulate.go
// Role: Simulate entry point and the independent-cascade trial loop.

package cascade

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/gammazero/deque"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/contagion/core"
	"github.com/katalvlaran/contagion/internal/workerpool"
	"github.com/katalvlaran/contagion/report"
)

// Simulate runs trialsPerSeed independent-cascade trials from every seed of g.
//
// In one trial the seed is active; each newly active node u gets a single
// chance to activate every inactive successor v, succeeding with probability
// w(u,v)·beta. The trial ends when no newly active node remains.
//
// The report carries, per seed s:
//   - MeanSpread[s]: mean number of active nodes at the end, seed included.
//   - StdErr[s]:     standard error of that mean (0 for a single trial).
//   - Scores[s]:     (MeanSpread[s] - 1) / N, comparable with spread.Estimate.
//
// rng is consumed once per seed, in seed order, before any work starts; a
// nil rng means a fixed default seed. Results do not depend on WithWorkers.
//
// Errors: ErrGraphNil; ErrInvalidParameter for trialsPerSeed < 1, bad
// options or seeds outside [0, N); ctx.Err() on cancellation.
func Simulate(g *core.Graph, trialsPerSeed int, rng *rand.Rand, opts ...Option) (*report.Report, error) {
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
	if trialsPerSeed < 1 {
		return nil, fmt.Errorf("%w: trials per seed must be ≥ 1, got %d", ErrInvalidParameter, trialsPerSeed)
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

	log := o.Logger.With().Str("component", "cascade").Logger()
	log.Debug().
		Int("nodes", n).
		Int("edges", g.EdgeCount()).
		Int("seeds", len(seeds)).
		Int("trials", trialsPerSeed).
		Float64("beta", o.Beta).
		Int("workers", o.Workers).
		Msg("simulation started")
	started := time.Now()

	streams := seedStreams(rng, seeds)

	rep := report.New(n)
	rep.MeanSpread = make([]float64, n)
	rep.StdErr = make([]float64, n)

	// Positions, not ids, are fanned out so each task finds its stream.
	err := workerpool.Run(o.Ctx, workerpool.Range(len(seeds)), o.Workers, func() workerpool.Task {
		sim := newSimulator(g, o.Beta, trialsPerSeed)

		return func(ctx context.Context, i int) error {
			seed := seeds[i]
			mean, se, err := sim.run(ctx, seed, streams[i])
			if err != nil {
				return err
			}
			rep.MeanSpread[seed] = mean
			rep.StdErr[seed] = se
			rep.Scores[seed] = (mean - 1) / float64(n)

			return nil
		}
	})
	if err != nil {
		return nil, err
	}

	log.Debug().
		Dur("elapsed", time.Since(started)).
		Int("trials", trialsPerSeed*len(seeds)).
		Msg("simulation finished")

	return rep, nil
}

// simulator is one worker's scratch, reused across seeds and trials.
type simulator struct {
	g      *core.Graph
	beta   float64
	active *roaring.Bitmap
	queue  deque.Deque[int]
	sizes  []float64
}

func newSimulator(g *core.Graph, beta float64, trials int) *simulator {
	return &simulator{
		g:      g,
		beta:   beta,
		active: roaring.New(),
		sizes:  make([]float64, trials),
	}
}

// run returns the mean cascade size of seed and its standard error.
func (sim *simulator) run(ctx context.Context, seed int, rng *rand.Rand) (float64, float64, error) {
	for t := range sim.sizes {
		if err := ctx.Err(); err != nil {
			return 0, 0, err
		}
		sim.sizes[t] = float64(sim.trial(seed, rng))
	}

	if len(sim.sizes) == 1 {
		return sim.sizes[0], 0, nil
	}
	mean, std := stat.MeanStdDev(sim.sizes, nil)

	return mean, stat.StdErr(std, float64(len(sim.sizes))), nil
}

// trial runs one cascade and returns the number of active nodes.
// The queue is FIFO, so every node activated in round k is expanded before
// any node of round k+1.
func (sim *simulator) trial(seed int, rng *rand.Rand) uint64 {
	sim.active.Clear()
	sim.active.Add(uint32(seed))
	sim.queue.PushBack(seed)

	for sim.queue.Len() > 0 {
		u := sim.queue.PopFront()
		for _, a := range sim.g.Successors(u) {
			if sim.active.Contains(uint32(a.Node)) {
				continue
			}
			if rng.Float64() < a.Weight*sim.beta {
				sim.active.Add(uint32(a.Node))
				sim.queue.PushBack(a.Node)
			}
		}
	}

	return sim.active.GetCardinality()
}
