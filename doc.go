// Package contagion ranks the nodes of a directed, weighted network by how
// far a contagion seeded at each of them is expected to spread.
//
// Every edge u→v carries a transmission probability w: the chance that an
// infected u passes the contagion to v. Two engines score every node:
//
//	spread/     deterministic mean-field "viral centrality": per seed, iterate
//	            each node's uninfected probability over time, fixed steps or
//	            until converged. Fast, approximate on graphs with loops.
//	cascade/    Monte Carlo independent cascade: repeat random outbreaks per
//	            seed and average their sizes. Slow, unbiased, carries a
//	            standard error.
//
// Both read the same immutable graph and return the same report type:
//
//	core/         immutable index-addressed Graph with successor and
//	              predecessor lists, built once from edges or adjacency
//	report/       per-node Score, Raw, Ranking and Top
//	bfs/          level-synchronous frontier that bounds the estimator's work
//	dfs/          topological order and longest path, the exact horizon on a DAG
//	builder/      deterministic fixtures: chains, stars, trees, random graphs
//	dataset/      JSON adjacency datasets and plain edge lists
//	converters/   gonum graph interop
//	baseline/     degree and PageRank scores plus Kendall's tau between rankings
//	dijkstra/     most likely transmission chain from one seed
//
// Quick example:
//
//	0 ──0.5──▶ 1 ──1.0──▶ 2
//
//	rep, _ := spread.Estimate(g, spread.UntilConverged(1e-6), 1)
//	rep.Raw(0) // 1.0: node 1 with p=0.5, node 2 with p=0.5
//
// The contagion command (cmd/contagion) wraps all of this for datasets on disk:
//
//	contagion estimate --data congress.json --steps auto
//	contagion simulate --data congress.json --trials 10000
//	contagion compare  --data congress.json
//	contagion chain    --data congress.json --from alice --to carol
package contagion
