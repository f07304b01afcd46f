package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/rumorsim/galam"
	"github.com/katalvlaran/rumorsim/internal/config"
	"github.com/katalvlaran/rumorsim/internal/logger"
	"github.com/katalvlaran/rumorsim/internal/report"
	"github.com/katalvlaran/rumorsim/internal/store"
)

var version = "0.1.0-dev"

// app carries the state shared by every subcommand once the root
// pre-run hook has loaded configuration.
type app struct {
	cfg    *config.Config
	log    *zap.Logger
	store  *store.Store // nil when persistence is disabled
	format report.Format
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	a := &app{}
	err := newRootCmd(a).ExecuteContext(ctx)
	stop()
	if cerr := a.close(); err == nil {
		err = cerr
	}
	if err != nil {
		a.logger().Error("command failed", zap.Error(err))
		a.logger().Sync()
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rumorsim",
		Short: "Galam majority-rule rumor spreading model",
		Long: `rumorsim computes the killing point of the Galam rumor model and
simulates how the fraction of truth believers evolves day by day.

Interaction weights are given per group size 1..7, e.g. --weights 0,1,1,1
for one discussion a day in groups of 2, 3 and 4.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("format", "", "Output format: table, json, yaml, csv")
	rootCmd.PersistentFlags().String("store", "", "SQLite run history path (overrides storage.path)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(
		newVersionCmd(),
		newKillingPointCmd(a),
		newEvolveCmd(a),
		newPredictCmd(a),
		newBracketCmd(a),
		newSweepCmd(a),
		newHistoryCmd(a),
		newShowCmd(a),
	)

	return rootCmd
}

// setup loads configuration, applies global flag overrides and opens the
// logger and the optional run store.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if f, _ := cmd.Flags().GetString("format"); f != "" {
		cfg.Output.Format = f
	}
	if cmd.Flags().Changed("store") {
		cfg.Storage.Path, _ = cmd.Flags().GetString("store")
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Logging.Level = lvl
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if a.format, err = report.ParseFormat(cfg.Output.Format); err != nil {
		return err
	}
	if a.log, err = logger.New(cfg.Logging); err != nil {
		return err
	}
	a.cfg = cfg

	if cfg.Storage.Path != "" {
		if a.store, err = store.Open(cmd.Context(), cfg.Storage.Path); err != nil {
			return err
		}
	}
	a.log.Debug("configuration loaded",
		zap.String("config", path),
		zap.String("format", string(a.format)),
		zap.String("store", cfg.Storage.Path),
	)

	return nil
}

func (a *app) close() error {
	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil

	return err
}

// logger returns the configured logger, or a production logger when
// configuration failed before one was built.
func (a *app) logger() *zap.Logger {
	if a.log == nil {
		l, err := zap.NewProduction()
		if err != nil {
			return zap.NewNop()
		}
		a.log = l
	}

	return a.log
}

// distribution builds the interaction distribution from --weights when
// given, else from model.weights.
func (a *app) distribution(cmd *cobra.Command) (galam.Distribution, error) {
	weights := a.cfg.Model.Weights
	if cmd.Flags().Changed("weights") {
		weights, _ = cmd.Flags().GetFloat64Slice("weights")
	}

	return galam.NewDistribution(weights...)
}

// emit renders r to the command output and records it in the run store.
func (a *app) emit(cmd *cobra.Command, r report.Report) error {
	if err := report.Render(cmd.OutOrStdout(), r, a.format); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	if a.store != nil {
		if err := a.store.Save(cmd.Context(), r); err != nil {
			return err
		}
		a.log.Debug("run saved", zap.String("run_id", r.RunID))
	}

	return nil
}

// addWeightsFlag registers --weights on model commands.
func addWeightsFlag(cmd *cobra.Command) {
	cmd.Flags().Float64Slice("weights", nil, "Interaction weights for group sizes 1..7 (default model.weights)")
}

// floatFlag returns the flag value when set on the command line, else def.
func floatFlag(cmd *cobra.Command, name string, def float64) float64 {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetFloat64(name)
		return v
	}

	return def
}

// intFlag returns the flag value when set on the command line, else def.
func intFlag(cmd *cobra.Command, name string, def int) int {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetInt(name)
		return v
	}

	return def
}
