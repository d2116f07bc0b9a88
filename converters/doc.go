// Package converters provides two-way adapters between core.Graph and
// gonum/graph.
//
// ToGonum exports a core.Graph as a *simple.WeightedDirectedGraph whose
// node ids equal the dense core ids, so any gonum algorithm (PageRank,
// shortest paths, community detection) can run on the same topology.
//
// FromGonum imports any graph.Weighted. Gonum ids are sparse int64 values;
// they are mapped to dense indices in ascending id order and the mapping is
// returned alongside the graph.
//
// Self-loops: gonum simple graphs reject them, so ToGonum drops them and
// reports how many were dropped.
package converters
