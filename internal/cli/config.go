// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config wraps a viper instance with typed getters and defaults.
type Config struct {
	v *viper.Viper
}

// NewConfig returns a configuration populated with defaults only.
func NewConfig() *Config {
	v := viper.New()

	v.SetDefault("data.path", "")
	v.SetDefault("data.format", "json")
	v.SetDefault("data.strict", false)

	v.SetDefault("model.beta", 1.0)

	v.SetDefault("estimate.steps", "0")
	v.SetDefault("estimate.tolerance", 0.001)
	v.SetDefault("estimate.max_steps", 0)
	v.SetDefault("estimate.baseline", "")

	v.SetDefault("simulate.trials", 1000)
	v.SetDefault("simulate.seed", 1)

	v.SetDefault("performance.workers", runtime.NumCPU())

	v.SetDefault("logging.level", "info")

	v.SetDefault("output.top", 10)
	v.SetDefault("output.format", "table")

	return &Config{v: v}
}

// Load reads path, or searches ./.contagion.yaml and ~/.contagion.yaml when
// path is empty, and enables CONTAGION_* environment overrides
// (model.beta ⇒ CONTAGION_MODEL_BETA). A missing search-path file is fine;
// a missing explicit file is an error.
func (c *Config) Load(path string) error {
	c.v.SetEnvPrefix("CONTAGION")
	c.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	c.v.AutomaticEnv()

	if path != "" {
		c.v.SetConfigFile(path)
		return c.v.ReadInConfig()
	}

	c.v.SetConfigName(".contagion")
	c.v.SetConfigType("yaml")
	c.v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		c.v.AddConfigPath(home)
	}
	var notFound viper.ConfigFileNotFoundError
	if err := c.v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		return err
	}

	return nil
}

// Bind maps command flags onto config keys; a flag set on the command line
// overrides file and environment values. Unknown flag names are skipped.
func (c *Config) Bind(cmd *cobra.Command, flagToKey map[string]string) error {
	for name, key := range flagToKey {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := c.v.BindPFlag(key, f); err != nil {
			return err
		}
	}

	return nil
}

// Set allows overriding a key, mostly from tests.
func (c *Config) Set(key string, value any) {
	c.v.Set(key, value)
}

func (c *Config) DataPath() string { return c.v.GetString("data.path") }
func (c *Config) DataFormat() string { return c.v.GetString("data.format") }
func (c *Config) Strict() bool { return c.v.GetBool("data.strict") }

func (c *Config) Beta() float64 { return c.v.GetFloat64("model.beta") }

func (c *Config) Steps() string { return c.v.GetString("estimate.steps") }
func (c *Config) Tolerance() float64 { return c.v.GetFloat64("estimate.tolerance") }
func (c *Config) MaxSteps() int { return c.v.GetInt("estimate.max_steps") }
func (c *Config) Baseline() string { return c.v.GetString("estimate.baseline") }

func (c *Config) Trials() int { return c.v.GetInt("simulate.trials") }
func (c *Config) Seed() int64 { return c.v.GetInt64("simulate.seed") }
func (c *Config) Workers() int { return c.v.GetInt("performance.workers") }

func (c *Config) LogLevel() string { return c.v.GetString("logging.level") }

func (c *Config) Top() int { return c.v.GetInt("output.top") }
func (c *Config) OutputFormat() string { return c.v.GetString("output.format") }

// CreateLogger builds a console logger on w at the configured level.
// An unknown level falls back to info.
func (c *Config) CreateLogger(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", "contagion").Logger()
}
