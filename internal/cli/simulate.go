// SPDX-License-Identifier: MIT

package cli

import (
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/contagion/cascade"
)

func (a *app) newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "simulate",
		Short:   "Score every node by Monte Carlo independent-cascade simulation",
		Example: "  contagion simulate --data congress.json --trials 10000 --seed 7",
		Args:    cobra.NoArgs,
		RunE:    a.runSimulate,
	}
	f := cmd.Flags()
	f.Int("trials", 1000, "trials per seed")
	f.Int64("seed", 1, "random seed")

	return cmd
}

func (a *app) runSimulate(cmd *cobra.Command, _ []string) error {
	if err := a.cfg.Bind(cmd, map[string]string{
		"trials": "simulate.trials",
		"seed":   "simulate.seed",
	}); err != nil {
		return err
	}

	ds, g, err := loadGraph(a.cfg, a.log)
	if err != nil {
		return err
	}

	rep, err := cascade.Simulate(g, a.cfg.Trials(), rand.New(rand.NewSource(a.cfg.Seed())),
		cascade.WithBeta(a.cfg.Beta()),
		cascade.WithContext(cmd.Context()),
		cascade.WithWorkers(max(a.cfg.Workers(), 1)),
		cascade.WithLogger(a.log),
	)
	if err != nil {
		return err
	}
	a.log.Info().Int("trials", a.cfg.Trials()).Int64("seed", a.cfg.Seed()).Msg("simulation complete")

	return writeRows(a.stdout, a.cfg.OutputFormat(), rows(rep, ds, a.cfg.Top(), nil))
}
