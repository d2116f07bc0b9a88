// Package dfs provides depth-first routines on directed acyclic core.Graphs:
// topological order and longest-path depth.
//
// What:
//
//   - TopologicalSort: a linear ordering of nodes such that for every edge
//     u→v, u comes first. Three-colour marking (White, Gray, Black) detects
//     back edges and reports ErrCycleDetected.
//   - LongestPath: the number of edges on the longest directed path,
//     computed by relaxing edges in topological order.
//
// Why:
//
//	On a DAG the mean-field recurrence in package spread stops changing
//	after LongestPath(g) timesteps. That gives a FixedSteps horizon that is
//	exactly equivalent to running until convergence, and lets callers pick
//	a step budget without guessing.
//
// Complexity:
//
//   - TopologicalSort: Time O(V+E), Memory O(V)
//   - LongestPath:     Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil       graph pointer is nil
//   - ErrCycleDetected  graph has a directed cycle (self-loops included)
//   - context.Canceled  cancelled via WithCancelContext
package dfs
