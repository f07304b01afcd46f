// Package config loads experiment configuration from an optional YAML file,
// an optional .env file and RUMORSIM_* environment variables.
package config

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/katalvlaran/rumorsim/galam"
	"github.com/katalvlaran/rumorsim/matrix"
)

// EnvPrefix prefixes every environment override, e.g. RUMORSIM_MODEL_DAYS.
const EnvPrefix = "RUMORSIM"

// Config represents the complete application configuration
type Config struct {
	Model   ModelConfig   `mapstructure:"model"`
	Solver  SolverConfig  `mapstructure:"solver"`
	Sweep   SweepConfig   `mapstructure:"sweep"`
	Storage StorageConfig `mapstructure:"storage"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ModelConfig holds the interaction distribution and simulation inputs
type ModelConfig struct {
	Weights      []float64 `mapstructure:"weights"`
	InitialRatio float64   `mapstructure:"initial_ratio"`
	Days         int       `mapstructure:"days"`
	Delta        float64   `mapstructure:"delta"`
}

// SolverConfig holds killing-point root finder tolerances
type SolverConfig struct {
	ImagTolerance float64 `mapstructure:"imag_tolerance"`
	RootTolerance float64 `mapstructure:"root_tolerance"`
	MaxIterations int     `mapstructure:"max_iterations"`
	Workers       int     `mapstructure:"workers"` // 0 selects GOMAXPROCS
}

// SweepConfig holds the default sensitivity sweep
type SweepConfig struct {
	GroupSize int     `mapstructure:"group_size"`
	From      float64 `mapstructure:"from"`
	To        float64 `mapstructure:"to"`
	Step      float64 `mapstructure:"step"`
}

// StorageConfig holds the run history database location; empty disables it
type StorageConfig struct {
	Path string `mapstructure:"path"`
}

// OutputConfig holds report rendering configuration
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from an optional file and environment variables.
//
// The .env file named by RUMORSIM_ENV (default ".env") is loaded first when
// present; variables already set in the process environment win. An empty
// path skips the config file and uses defaults plus environment.
func Load(path string) (*Config, error) {
	envFile := os.Getenv(EnvPrefix + "_ENV")
	if envFile == "" {
		envFile = ".env"
	}
	// Missing .env is not an error
	_ = godotenv.Load(envFile)

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults configures default values for all configuration options
func setDefaults(v *viper.Viper) {
	// Model defaults: one interaction a day in groups of 2, 3 and 4
	v.SetDefault("model.weights", galam.DefaultWeights())
	v.SetDefault("model.initial_ratio", 0.85)
	v.SetDefault("model.days", 20)
	v.SetDefault("model.delta", 0.05)

	// Solver defaults
	v.SetDefault("solver.imag_tolerance", galam.DefaultImagTolerance)
	v.SetDefault("solver.root_tolerance", galam.DefaultRootTolerance)
	v.SetDefault("solver.max_iterations", matrix.DefaultMaxIterations)
	v.SetDefault("solver.workers", 0)

	// Sweep defaults: weight of triples from 1 to 19
	v.SetDefault("sweep.group_size", 3)
	v.SetDefault("sweep.from", 1.0)
	v.SetDefault("sweep.to", 19.0)
	v.SetDefault("sweep.step", 1.0)

	// Storage defaults
	v.SetDefault("storage.path", "")

	// Output defaults
	v.SetDefault("output.format", "table")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Validate checks that all configuration values are valid
func (c *Config) Validate() error {
	// Validate Model config
	if _, err := galam.NewDistribution(c.Model.Weights...); err != nil {
		return fmt.Errorf("model.weights: %w", err)
	}
	if !finite(c.Model.InitialRatio) || c.Model.InitialRatio < 0 || c.Model.InitialRatio > 1 {
		return fmt.Errorf("model.initial_ratio must be between 0.0 and 1.0")
	}
	if c.Model.Days < 1 {
		return fmt.Errorf("model.days must be at least 1")
	}
	if !finite(c.Model.Delta) || c.Model.Delta <= 0 || c.Model.Delta >= 1 {
		return fmt.Errorf("model.delta must be strictly between 0.0 and 1.0")
	}

	// Validate Solver config
	if !finite(c.Solver.ImagTolerance) || c.Solver.ImagTolerance <= 0 {
		return fmt.Errorf("solver.imag_tolerance must be positive and finite")
	}
	if !finite(c.Solver.RootTolerance) || c.Solver.RootTolerance <= 0 {
		return fmt.Errorf("solver.root_tolerance must be positive and finite")
	}
	if c.Solver.MaxIterations < 1 {
		return fmt.Errorf("solver.max_iterations must be at least 1")
	}
	if c.Solver.Workers < 0 {
		return fmt.Errorf("solver.workers must not be negative")
	}

	// Validate Sweep config
	if c.Sweep.GroupSize < 1 || c.Sweep.GroupSize > galam.MaxGroupSize {
		return fmt.Errorf("sweep.group_size must be between 1 and %d", galam.MaxGroupSize)
	}
	if _, err := galam.WeightRange(c.Sweep.From, c.Sweep.To, c.Sweep.Step); err != nil {
		return fmt.Errorf("sweep: %w", err)
	}

	// Validate Output config
	validOutputs := map[string]bool{"table": true, "json": true, "yaml": true, "csv": true}
	if !validOutputs[c.Output.Format] {
		return fmt.Errorf("output.format must be one of: table, json, yaml, csv")
	}

	// Validate Logging config
	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("logging.format must be one of: json, console")
	}

	return nil
}

// finite rejects NaN and ±Inf, which slip through ordered comparisons.
func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Distribution builds the configured interaction distribution.
func (c *Config) Distribution() (galam.Distribution, error) {
	return galam.NewDistribution(c.Model.Weights...)
}

// SolverOptions translates solver settings into galam options.
func (c *Config) SolverOptions() []galam.Option {
	opts := []galam.Option{
		galam.WithImagTolerance(c.Solver.ImagTolerance),
		galam.WithRootTolerance(c.Solver.RootTolerance),
		galam.WithMaxIterations(c.Solver.MaxIterations),
	}
	if c.Solver.Workers > 0 {
		opts = append(opts, galam.WithWorkers(c.Solver.Workers))
	}

	return opts
}
