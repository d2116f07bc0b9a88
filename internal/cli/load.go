// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/contagion/core"
	"github.com/katalvlaran/contagion/dataset"
	"github.com/katalvlaran/contagion/dfs"
	"github.com/katalvlaran/contagion/spread"
)

// errUsage marks bad flag or config values.
var errUsage = errors.New("usage")

// loadGraph reads the configured dataset and builds its graph.
func loadGraph(cfg *Config, log zerolog.Logger) (*dataset.Dataset, *core.Graph, error) {
	path := cfg.DataPath()
	if path == "" {
		return nil, nil, fmt.Errorf("%w: --data is required", errUsage)
	}

	var (
		ds  *dataset.Dataset
		err error
	)
	switch strings.ToLower(cfg.DataFormat()) {
	case "json":
		ds, err = dataset.LoadFile(path)
	case "edgelist", "edges":
		var f *os.File
		if f, err = os.Open(path); err != nil {
			return nil, nil, err
		}
		defer f.Close()
		ds, err = dataset.LoadEdgeList(f)
	default:
		return nil, nil, fmt.Errorf("%w: unknown data format %q (want json or edgelist)", errUsage, cfg.DataFormat())
	}
	if err != nil {
		return nil, nil, err
	}

	var opts []core.Option
	if cfg.Strict() {
		if err := ds.Verify(); err != nil {
			return nil, nil, err
		}
		opts = append(opts, core.WithStrict())
	}
	g, err := ds.Graph(opts...)
	if err != nil {
		return nil, nil, err
	}

	st := g.Stats()
	log.Info().
		Str("path", path).
		Int("nodes", st.Nodes).
		Int("edges", st.Edges).
		Int("isolated", st.Isolated).
		Int("predecessor_only", st.PredecessorOnly).
		Float64("min_weight", st.MinWeight).
		Float64("max_weight", st.MaxWeight).
		Msg("graph loaded")

	return ds, g, nil
}

// parseMode turns the steps setting into a stopping rule:
//
//	"auto"  FixedSteps(longest path) on a DAG, UntilConverged otherwise
//	n ≥ 1   FixedSteps(n)
//	n ≤ 0   UntilConverged(tolerance)
func parseMode(steps string, tolerance float64, g *core.Graph, log zerolog.Logger) (spread.Mode, error) {
	if strings.EqualFold(steps, "auto") {
		depth, err := dfs.LongestPath(g)
		switch {
		case errors.Is(err, dfs.ErrCycleDetected):
			log.Info().Msg("graph has cycles, running until converged")
			return spread.UntilConverged(tolerance), nil
		case err != nil:
			return spread.Mode{}, err
		}
		log.Info().Int("depth", depth).Msg("graph is acyclic, using its depth as horizon")

		return spread.FixedSteps(max(depth, 1)), nil
	}

	n, err := strconv.Atoi(steps)
	if err != nil {
		return spread.Mode{}, fmt.Errorf("%w: steps must be an integer or \"auto\", got %q", errUsage, steps)
	}

	return spread.FromIterations(n, tolerance), nil
}
