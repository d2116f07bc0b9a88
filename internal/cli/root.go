// SPDX-License-Identifier: MIT

// Package cli implements the contagion command-line tool: cobra commands
// over a viper-backed Config, zerolog diagnostics on stderr and
// lipgloss tables (or JSON) on stdout.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app is the state shared by every command of one invocation.
type app struct {
	cfg    *Config
	log    zerolog.Logger
	stdout io.Writer
	stderr io.Writer
}

// NewRootCmd builds the command tree writing results to stdout and
// diagnostics to stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{cfg: NewConfig(), log: zerolog.Nop(), stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "contagion",
		Short: "Rank nodes of a weighted network by how far a contagion spreads from them",
		Long: "contagion scores every node of a directed network whose edge weights are " +
			"transmission probabilities: 'estimate' runs the fast mean-field recurrence, " +
			"'simulate' runs Monte Carlo independent-cascade trials, and 'compare' " +
			"measures how well each ranking matches the simulated one.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default .contagion.yaml)")
	pf.String("data", "", "dataset file")
	pf.String("format", "json", "dataset format: json or edgelist")
	pf.Bool("strict", false, "reject datasets whose adjacency lists disagree")
	pf.Float64("beta", 1, "multiplier applied to every edge weight")
	pf.Int("workers", 0, "seed workers (default: number of CPUs)")
	pf.Int("top", 10, "rows to print (0 = all)")
	pf.String("output", "table", "output format: table or json")
	pf.String("log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(a.newEstimateCmd(), a.newSimulateCmd(), a.newCompareCmd(), a.newChainCmd())

	return root
}

// setup loads configuration, binds the persistent flags and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("config")
	if err := a.cfg.Load(path); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := a.cfg.Bind(cmd, map[string]string{
		"data":      "data.path",
		"format":    "data.format",
		"strict":    "data.strict",
		"beta":      "model.beta",
		"top":       "output.top",
		"output":    "output.format",
		"log-level": "logging.level",
	}); err != nil {
		return err
	}
	// 0 means "not set": keep the configured worker count.
	if w, _ := cmd.Flags().GetInt("workers"); w > 0 {
		a.cfg.Set("performance.workers", w)
	}
	a.log = a.cfg.CreateLogger(a.stderr)

	return nil
}

// Execute runs the tool with os.Args, cancelling on SIGINT or SIGTERM.
// It returns the process exit code.
func Execute() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nshutting down...")
		cancel()
	}()

	if err := NewRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return 0
}
