// SPDX-License-Identifier: MIT

package baseline

import (
	"github.com/katalvlaran/contagion/core"
	"github.com/katalvlaran/contagion/report"
)

// Degree returns the degree centrality of every node: (in + out) / (N - 1),
// ignoring weights. Graphs with fewer than two nodes score 0.
func Degree(g *core.Graph) (*report.Report, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.NodeCount()
	rep := report.New(n)
	if n < 2 {
		return rep, nil
	}
	for v := 0; v < n; v++ {
		rep.Scores[v] = float64(g.InDegree(v)+g.OutDegree(v)) / float64(n-1)
	}

	return rep, nil
}
