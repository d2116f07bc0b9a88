// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	c := NewConfig()
	assert.Equal(t, "json", c.DataFormat())
	assert.False(t, c.Strict())
	assert.Equal(t, 1.0, c.Beta())
	assert.Equal(t, "0", c.Steps())
	assert.Equal(t, 0.001, c.Tolerance())
	assert.Equal(t, 0, c.MaxSteps())
	assert.Empty(t, c.Baseline())
	assert.Equal(t, 1000, c.Trials())
	assert.Equal(t, int64(1), c.Seed())
	assert.Equal(t, runtime.NumCPU(), c.Workers())
	assert.Equal(t, "info", c.LogLevel())
	assert.Equal(t, 10, c.Top())
	assert.Equal(t, "table", c.OutputFormat())
}

func TestConfig_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contagion.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model:\n  beta: 0.25\nsimulate:\n  trials: 42\n"), 0o600))
	t.Setenv("CONTAGION_SIMULATE_TRIALS", "7")

	c := NewConfig()
	require.NoError(t, c.Load(path))
	assert.Equal(t, 0.25, c.Beta())
	assert.Equal(t, 7, c.Trials(), "environment beats file")

	c.Set("simulate.trials", 3)
	assert.Equal(t, 3, c.Trials())
}

func TestConfig_LoadMissing(t *testing.T) {
	c := NewConfig()
	assert.Error(t, c.Load(filepath.Join(t.TempDir(), "nope.yaml")))
	assert.NoError(t, NewConfig().Load(""), "search path may be empty")
}

func TestConfig_CreateLogger(t *testing.T) {
	var buf bytes.Buffer
	c := NewConfig()
	c.Set("logging.level", "shouting")
	log := c.CreateLogger(&buf)

	log.Debug().Msg("hidden")
	log.Info().Msg("visible")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "visible")
	assert.Contains(t, buf.String(), "contagion")
}
