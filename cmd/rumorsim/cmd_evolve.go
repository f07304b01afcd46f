package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/rumorsim/galam"
	"github.com/katalvlaran/rumorsim/internal/report"
)

func newEvolveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evolve",
		Short: "Simulate the truth ratio day by day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.distribution(cmd)
			if err != nil {
				return err
			}
			initial := floatFlag(cmd, "initial", a.cfg.Model.InitialRatio)
			days := intFlag(cmd, "days", a.cfg.Model.Days)

			traj, err := galam.Evolve(d, initial, days)
			if err != nil {
				return err
			}
			a.log.Info("trajectory computed",
				zap.Stringer("distribution", d),
				zap.Float64("initial", initial),
				zap.Int("days", days),
				zap.Float64("final", traj.Final()),
				zap.Int("settle_day", traj.SettleDay(1e-3)),
			)

			return a.emit(cmd, report.NewEvolve(d, traj))
		},
	}
	addWeightsFlag(cmd)
	cmd.Flags().Float64("initial", 0, "Initial truth ratio in [0,1] (default model.initial_ratio)")
	cmd.Flags().Int("days", 0, "Trajectory length including day 0 (default model.days)")

	return cmd
}
