// SPDX-License-Identifier: MIT

package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/contagion/baseline"
	"github.com/katalvlaran/contagion/report"
	"github.com/katalvlaran/contagion/spread"
)

func (a *app) newEstimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Score every node with the mean-field spread estimator",
		Example: "  contagion estimate --data congress.json --steps auto\n" +
			"  contagion estimate --data net.edges --format edgelist --baseline pagerank --output json",
		Args: cobra.NoArgs,
		RunE: a.runEstimate,
	}
	f := cmd.Flags()
	f.String("steps", "0", `timesteps per seed: N ≥ 1, 0 to run until converged, or "auto"`)
	f.Float64("tolerance", 0.001, "relative-change threshold when running until converged")
	f.Int("max-steps", 0, "hard cap on timesteps per seed (0 = none)")
	f.String("baseline", "", `extra column to print: "pagerank"`)

	return cmd
}

func (a *app) runEstimate(cmd *cobra.Command, _ []string) error {
	if err := a.cfg.Bind(cmd, map[string]string{
		"steps":     "estimate.steps",
		"tolerance": "estimate.tolerance",
		"max-steps": "estimate.max_steps",
		"baseline":  "estimate.baseline",
	}); err != nil {
		return err
	}

	ds, g, err := loadGraph(a.cfg, a.log)
	if err != nil {
		return err
	}
	mode, err := parseMode(a.cfg.Steps(), a.cfg.Tolerance(), g, a.log)
	if err != nil {
		return err
	}

	var pr *report.Report
	switch strings.ToLower(a.cfg.Baseline()) {
	case "":
	case "pagerank":
		if pr, err = baseline.PageRank(g, baseline.DefaultDamping, baseline.DefaultTolerance); err != nil {
			return err
		}
	default:
		return usageErrorf("unknown baseline %q (want pagerank)", a.cfg.Baseline())
	}

	rep, err := spread.Estimate(g, mode, a.cfg.Beta(),
		spread.WithContext(cmd.Context()),
		spread.WithWorkers(max(a.cfg.Workers(), 1)),
		spread.WithMaxSteps(a.cfg.MaxSteps()),
		spread.WithLogger(a.log),
	)
	if err != nil {
		return err
	}
	a.log.Info().Stringer("mode", mode).Float64("beta", a.cfg.Beta()).Msg("estimate complete")

	return writeRows(a.stdout, a.cfg.OutputFormat(), rows(rep, ds, a.cfg.Top(), pr))
}
