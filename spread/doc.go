// Package spread implements the deterministic mean-field spread estimator
// ("viral centrality"): for every seed node it approximates the expected
// number of other nodes an independent cascade started at that seed
// eventually infects.
//
// What
//
//   - Per seed s the estimator tracks, for every node n, the probability that
//     n is still uninfected and the probability that n became infected in the
//     previous step.
//   - Each step first grows a BFS frontier around s by one ring, then updates
//     every discovered node:
//
//     q(n)         = Π over in-edges (p, w) of (1 − lastInfected(p)·beta·w)
//     justInfected = (1 − q(n)) · uninfected(n)
//     uninfected  -= justInfected
//     lastInfected = justInfected
//
//   - Nodes outside the frontier cannot have been reached yet and keep
//     uninfected = 1 exactly, so they are never touched.
//   - The seed's raw score is Σ over n ≠ s of (1 − uninfected(n)); the
//     reported score is raw / N.
//
// Stopping
//
//   - FixedSteps(n): run exactly n steps.
//   - UntilConverged(tol): after each step, stop once
//     max over discovered nodes of (prev − cur)/(prev + Epsilon) ≤ tol.
//     The maximum is taken only over the discovered frontier; a seed whose
//     first ring carries very small weights can therefore stop after one
//     step. That behaviour is kept on purpose for comparability with
//     published results.
//
// Concurrency
//
//	Seeds are independent. Estimate fans them out to WithWorkers goroutines
//	(default GOMAXPROCS); each worker reuses one scratch state and writes only
//	its seed's report slot. The graph is shared read-only.
//
// Complexity (per seed, T steps, E_r edges inside the reachable cone)
//
//   - Time:   O(T · E_r)
//   - Memory: O(V) per worker
//
// Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrInvalidParameter  for FixedSteps(n<1), UntilConverged(tol≤0 or NaN),
//     a zero Mode, beta < 0 or non-finite, and invalid options.
//   - ctx.Err() if the context passed through WithContext is cancelled.
package spread
