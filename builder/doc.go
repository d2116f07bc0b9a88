// Package builder produces deterministic core.Graph fixtures for tests,
// benchmarks, examples and the command-line tool.
//
// Topologies:
//
//   - Chain(n):       0→1→…→n-1
//   - Star(n):        hub 0 with spokes 0→i
//   - Cycle(n):       0→1→…→n-1→0
//   - Complete(n):    every ordered pair i→j, i≠j
//   - BinaryTree(d):  heap-indexed out-tree of depth d
//   - RandomSparse(n, p): each ordered pair kept with probability p
//
// Options:
//
//   - WithSeed / WithRand:    RNG for RandomSparse and random weights
//   - WithWeightFn:           per-edge weight generator
//   - WithConstantWeight(p):  every edge has weight p
//   - WithBidirectional():    mirror every edge (Chain, Star, Cycle, BinaryTree)
//   - WithAcyclic():          RandomSparse keeps only i<j pairs (a DAG)
//
// Weight functions: DefaultWeightFn (1), ConstantWeightFn(p),
// UniformWeightFn(min, max). All stay within [0,1].
//
// Guarantees:
//
//   - Same inputs, options and seed ⇒ identical graphs.
//   - Option and weight-function constructors panic on meaningless input;
//     graph constructors only return sentinel errors.
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource.
package builder
