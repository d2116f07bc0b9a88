// Package cascade estimates node influence by Monte Carlo simulation of the
// independent cascade model on a core.Graph.
//
// What:
//
//	For every seed s, Simulate runs T independent trials. In a trial, each
//	node that becomes active gets exactly one chance to activate each of its
//	inactive successors v, succeeding with probability w(u,v)·beta. The
//	number of active nodes at the end (seed included) is one sample of the
//	cascade size.
//
// Why:
//
//	The simulation is the ground truth the mean-field estimator in package
//	spread approximates. It is unbiased but noisy: the standard error of the
//	mean shrinks as 1/√T, which Report.StdErr exposes per seed.
//
// Determinism:
//
//	The caller's *rand.Rand is consumed once per seed, in seed order, before
//	the fan-out, to derive an independent stream per seed. The same RNG
//	seed gives bit-identical reports for any worker count.
//
// Data structures:
//
//   - active set: a roaring bitmap, cleared between trials.
//   - frontier:   a FIFO deque, which processes cascades round by round.
//   - statistics: gonum/stat for the mean and standard deviation.
//
// Complexity: O(T · Σ_s reach(s)) time where reach(s) counts the edges a
// trial from s can touch; O(N) scratch per worker.
//
// Errors:
//
//   - ErrGraphNil          graph pointer is nil
//   - ErrInvalidParameter  trialsPerSeed < 1, bad beta/workers/seeds
//   - context.Canceled     cancelled via WithContext
package cascade
