package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/rumorsim/galam"
	"github.com/katalvlaran/rumorsim/internal/report"
)

func newBracketCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bracket",
		Short: "Evolve trajectories started just above, on and just below K",
		Long: `Start three trajectories at K·(1+delta), K and K·(1−delta) to compare
how fast a rumor invades with how slowly it recedes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.distribution(cmd)
			if err != nil {
				return err
			}
			delta := floatFlag(cmd, "delta", a.cfg.Model.Delta)
			days := intFlag(cmd, "days", a.cfg.Model.Days)

			res, err := galam.Bracket(d, delta, days, a.cfg.SolverOptions()...)
			if err != nil {
				return err
			}
			a.log.Info("bracket computed",
				zap.Float64("killing_point", res.KillingPoint),
				zap.Float64("delta", delta),
				zap.Int("above_settle_day", res.Above.SettleDay(1e-3)),
				zap.Int("below_settle_day", res.Below.SettleDay(1e-3)),
			)

			return a.emit(cmd, report.NewBracket(d, res))
		},
	}
	addWeightsFlag(cmd)
	cmd.Flags().Float64("delta", 0, "Relative offset from K in (0,1) (default model.delta)")
	cmd.Flags().Int("days", 0, "Trajectory length including day 0 (default model.days)")

	return cmd
}
