// SPDX-License-Identifier: MIT

package cli

import (
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/contagion/dijkstra"
)

// hop is one link of a printed transmission chain.
type hop struct {
	Step  int     `json:"step"`
	Node  int     `json:"node"`
	Label string  `json:"label"`
	Prob  float64 `json:"prob"`
}

func (a *app) newChainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "chain",
		Short:   "Show the most likely transmission chain between two nodes",
		Example: "  contagion chain --data congress.json --from alice --to carol",
		Args:    cobra.NoArgs,
		RunE:    a.runChain,
	}
	f := cmd.Flags()
	f.String("from", "", "seed node: username or id")
	f.String("to", "", "target node: username or id")
	f.Float64("min-prob", 0, "ignore chains less likely than this")

	return cmd
}

func (a *app) runChain(cmd *cobra.Command, _ []string) error {
	ds, g, err := loadGraph(a.cfg, a.log)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	fromName, _ := flags.GetString("from")
	toName, _ := flags.GetString("to")
	minProb, _ := flags.GetFloat64("min-prob")

	from, ok := ds.Lookup(fromName)
	if !ok {
		return usageErrorf("unknown --from node %q", fromName)
	}
	to, ok := ds.Lookup(toName)
	if !ok {
		return usageErrorf("unknown --to node %q", toName)
	}
	if !(minProb >= 0 && minProb <= 1) {
		return usageErrorf("--min-prob must lie in [0, 1], got %g", minProb)
	}
	beta := a.cfg.Beta()
	if beta < 0 || math.IsNaN(beta) || math.IsInf(beta, 0) {
		return usageErrorf("--beta must be finite and ≥ 0, got %g", beta)
	}

	res, err := dijkstra.Dijkstra(g,
		dijkstra.Source(from),
		dijkstra.WithBeta(beta),
		dijkstra.WithMinProbability(minProb),
	)
	if err != nil {
		return err
	}

	path := res.Path(to)
	if path == nil {
		a.log.Warn().Str("from", fromName).Str("to", toName).Msg("no chain found")
	}
	hops := make([]hop, len(path))
	for i, v := range path {
		hops[i] = hop{Step: i, Node: v, Label: ds.Label(v), Prob: res.Prob[v]}
	}

	switch strings.ToLower(a.cfg.OutputFormat()) {
	case "json":
		return writeJSON(a.stdout, hops)
	case "table":
		data := make([][]string, len(hops))
		for i, h := range hops {
			data[i] = []string{strconv.Itoa(h.Step), strconv.Itoa(h.Node), h.Label, formatFloat(h.Prob)}
		}

		return writeTable(a.stdout, []string{"Step", "Node", "Label", "Chain prob"}, data, 2)
	default:
		return usageErrorf("unknown output format %q (want table or json)", a.cfg.OutputFormat())
	}
}
