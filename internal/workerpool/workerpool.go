// SPDX-License-Identifier: MIT
//
// Package workerpool fans independent units of work (seeds) out to a fixed
// number of goroutines. Each goroutine builds its own scratch state once and
// reuses it for every index it receives, so per-seed buffers are allocated
// once per worker instead of once per seed.
package workerpool

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Task processes one index. It owns the scratch state captured by its
// closure and must write only to the output slot for that index.
type Task func(ctx context.Context, index int) error

// Run feeds every element of indices to workers goroutines. newTask is called
// once inside each goroutine. The first task error, or cancellation of ctx,
// stops the fan-out; Run returns that error after every goroutine has exited.
func Run(ctx context.Context, indices []int, workers int, newTask func() Task) error {
	if workers < 1 {
		workers = 1
	}
	if workers > len(indices) {
		workers = max(len(indices), 1)
	}

	grp, ctx := errgroup.WithContext(ctx)
	indexC := make(chan int)

	grp.Go(func() error {
		defer close(indexC)
		for _, i := range indices {
			select {
			case indexC <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		return nil
	})

	for w := 0; w < workers; w++ {
		grp.Go(func() error {
			task := newTask()
			for i := range indexC {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := task(ctx, i); err != nil {
					return err
				}
			}

			return nil
		})
	}

	return grp.Wait()
}

// Range returns [0, n) as a slice, the usual input to Run.
func Range(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
