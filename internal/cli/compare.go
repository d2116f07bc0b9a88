// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/contagion/baseline"
	"github.com/katalvlaran/contagion/cascade"
	"github.com/katalvlaran/contagion/report"
	"github.com/katalvlaran/contagion/spread"
)

// agreement is the rank correlation of one method with the simulation.
type agreement struct {
	Method string  `json:"method"`
	Tau    float64 `json:"kendallTau"`
}

func (a *app) newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Rank-correlate estimator and baselines against the simulated ground truth",
		Long: "compare simulates the independent cascade model to obtain a ground-truth " +
			"ranking, then reports Kendall's tau between it and the rankings of the " +
			"mean-field estimator, degree centrality and PageRank.",
		Args: cobra.NoArgs,
		RunE: a.runCompare,
	}
	f := cmd.Flags()
	f.String("steps", "0", `estimator timesteps per seed: N ≥ 1, 0 to converge, or "auto"`)
	f.Float64("tolerance", 0.001, "estimator convergence threshold")
	f.Int("max-steps", 0, "hard cap on estimator timesteps per seed (0 = none)")
	f.Int("trials", 1000, "simulation trials per seed")
	f.Int64("seed", 1, "random seed")

	return cmd
}

func (a *app) runCompare(cmd *cobra.Command, _ []string) error {
	if err := a.cfg.Bind(cmd, map[string]string{
		"steps":     "estimate.steps",
		"tolerance": "estimate.tolerance",
		"max-steps": "estimate.max_steps",
		"trials":    "simulate.trials",
		"seed":      "simulate.seed",
	}); err != nil {
		return err
	}

	_, g, err := loadGraph(a.cfg, a.log)
	if err != nil {
		return err
	}
	mode, err := parseMode(a.cfg.Steps(), a.cfg.Tolerance(), g, a.log)
	if err != nil {
		return err
	}
	workers := max(a.cfg.Workers(), 1)

	truth, err := cascade.Simulate(g, a.cfg.Trials(), rand.New(rand.NewSource(a.cfg.Seed())),
		cascade.WithBeta(a.cfg.Beta()),
		cascade.WithContext(cmd.Context()),
		cascade.WithWorkers(workers),
		cascade.WithLogger(a.log),
	)
	if err != nil {
		return err
	}
	est, err := spread.Estimate(g, mode, a.cfg.Beta(),
		spread.WithContext(cmd.Context()),
		spread.WithWorkers(workers),
		spread.WithMaxSteps(a.cfg.MaxSteps()),
		spread.WithLogger(a.log),
	)
	if err != nil {
		return err
	}
	deg, err := baseline.Degree(g)
	if err != nil {
		return err
	}
	pr, err := baseline.PageRank(g, baseline.DefaultDamping, baseline.DefaultTolerance)
	if err != nil {
		return err
	}

	methods := []struct {
		name string
		rep  *report.Report
	}{
		{"estimate", est},
		{"degree", deg},
		{"pagerank", pr},
	}
	out := make([]agreement, 0, len(methods))
	for _, m := range methods {
		tau, err := baseline.KendallTau(m.rep, truth)
		if err != nil {
			return err
		}
		out = append(out, agreement{Method: m.name, Tau: tau})
	}

	return writeAgreement(a.stdout, a.cfg.OutputFormat(), out)
}

func writeAgreement(w io.Writer, format string, as []agreement) error {
	switch strings.ToLower(format) {
	case "json":
		return writeJSON(w, as)
	case "table":
		data := make([][]string, len(as))
		for i, ag := range as {
			data[i] = []string{ag.Method, formatFloat(ag.Tau)}
		}

		return writeTable(w, []string{"Method", "Kendall τ"}, data, 0)
	default:
		return usageErrorf("unknown output format %q (want table or json)", format)
	}
}

func usageErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, args...))
}
