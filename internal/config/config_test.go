package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rumorsim/galam"
	"github.com/katalvlaran/rumorsim/matrix"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rumorsim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("RUMORSIM_ENV", filepath.Join(t.TempDir(), "missing.env"))

	cfg, err := Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, galam.DefaultWeights(), cfg.Model.Weights)
	assert.Equal(t, 0.85, cfg.Model.InitialRatio)
	assert.Equal(t, 20, cfg.Model.Days)
	assert.Equal(t, matrix.DefaultMaxIterations, cfg.Solver.MaxIterations)
	assert.Equal(t, 3, cfg.Sweep.GroupSize)
	assert.Equal(t, "table", cfg.Output.Format)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Storage.Path)
}

func TestLoadAndValidate(t *testing.T) {
	t.Setenv("RUMORSIM_ENV", filepath.Join(t.TempDir(), "missing.env"))
	path := writeConfig(t, `
model:
  weights: [0, 0, 1, 0, 1]
  initial_ratio: 0.6
  days: 40
  delta: 0.1

solver:
  imag_tolerance: 1e-8
  root_tolerance: 1e-10
  max_iterations: 50
  workers: 2

sweep:
  group_size: 4
  from: 2
  to: 10
  step: 2

storage:
  path: "./runs.db"

output:
  format: "yaml"

logging:
  level: "debug"
  format: "json"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, []float64{0, 0, 1, 0, 1}, cfg.Model.Weights)
	assert.Equal(t, 0.6, cfg.Model.InitialRatio)
	assert.Equal(t, 40, cfg.Model.Days)
	assert.Equal(t, 50, cfg.Solver.MaxIterations)
	assert.Equal(t, 4, cfg.Sweep.GroupSize)
	assert.Equal(t, "./runs.db", cfg.Storage.Path)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Len(t, cfg.SolverOptions(), 4)

	d, err := cfg.Distribution()
	require.NoError(t, err)
	k, err := galam.FindKillingPoint(d, cfg.SolverOptions()...)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, k, 1e-9)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("RUMORSIM_MODEL_DAYS=7\n"), 0o600))
	t.Setenv("RUMORSIM_ENV", envFile)
	t.Setenv("RUMORSIM_LOGGING_LEVEL", "warn")
	// godotenv does not overwrite variables that are already set
	t.Setenv("RUMORSIM_MODEL_DAYS", "9")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 9, cfg.Model.Days)
}

// TestEnvNonFiniteTolerance: "NaN" parses as a float, so Validate must stop
// it before SolverOptions hands it to the panicking option constructors.
func TestEnvNonFiniteTolerance(t *testing.T) {
	t.Setenv("RUMORSIM_ENV", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("RUMORSIM_SOLVER_IMAG_TOLERANCE", "NaN")
	t.Setenv("RUMORSIM_SOLVER_ROOT_TOLERANCE", "+Inf")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(cfg.Solver.ImagTolerance))
	require.Error(t, cfg.Validate())

	cfg.Solver.ImagTolerance = galam.DefaultImagTolerance
	require.ErrorContains(t, cfg.Validate(), "solver.root_tolerance")

	cfg.Solver.RootTolerance = galam.DefaultRootTolerance
	require.NoError(t, cfg.Validate())
	assert.NotPanics(t, func() { cfg.SolverOptions() })
}

func TestValidateErrors(t *testing.T) {
	t.Setenv("RUMORSIM_ENV", filepath.Join(t.TempDir(), "missing.env"))
	base, err := Load("")
	require.NoError(t, err)

	cases := map[string]func(c *Config){
		"zero weights":       func(c *Config) { c.Model.Weights = []float64{0, 0} },
		"ratio":              func(c *Config) { c.Model.InitialRatio = 1.2 },
		"NaN ratio":          func(c *Config) { c.Model.InitialRatio = math.NaN() },
		"days":               func(c *Config) { c.Model.Days = 0 },
		"delta":              func(c *Config) { c.Model.Delta = 1 },
		"NaN delta":          func(c *Config) { c.Model.Delta = math.NaN() },
		"imag tolerance":     func(c *Config) { c.Solver.ImagTolerance = 0 },
		"NaN imag tolerance": func(c *Config) { c.Solver.ImagTolerance = math.NaN() },
		"root tolerance":     func(c *Config) { c.Solver.RootTolerance = -1 },
		"Inf root tolerance": func(c *Config) { c.Solver.RootTolerance = math.Inf(1) },
		"max iterations":     func(c *Config) { c.Solver.MaxIterations = 0 },
		"workers":            func(c *Config) { c.Solver.Workers = -1 },
		"group size":         func(c *Config) { c.Sweep.GroupSize = 8 },
		"sweep range":        func(c *Config) { c.Sweep.Step = 0 },
		"output format":      func(c *Config) { c.Output.Format = "xml" },
		"log level":          func(c *Config) { c.Logging.Level = "trace" },
		"log format":         func(c *Config) { c.Logging.Format = "text" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := *base
			c.Model.Weights = append([]float64(nil), base.Model.Weights...)
			mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
