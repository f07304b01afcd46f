package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/rumorsim/galam"
	"github.com/katalvlaran/rumorsim/internal/report"
)

func newPredictCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Tell whether a rumor spreads or dies out from a starting ratio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.distribution(cmd)
			if err != nil {
				return err
			}
			initial := floatFlag(cmd, "initial", a.cfg.Model.InitialRatio)

			out, k, err := galam.Predict(d, initial, a.cfg.SolverOptions()...)
			if err != nil {
				return err
			}
			a.log.Info("prediction",
				zap.Float64("initial", initial),
				zap.Float64("killing_point", k),
				zap.Stringer("outcome", out),
			)

			return a.emit(cmd, report.NewPredict(d, initial, out, k))
		},
	}
	addWeightsFlag(cmd)
	cmd.Flags().Float64("initial", 0, "Initial truth ratio in [0,1] (default model.initial_ratio)")

	return cmd
}
