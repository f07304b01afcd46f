package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/rumorsim/galam"
	"github.com/katalvlaran/rumorsim/internal/report"
)

func newSweepCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Killing point as the weight of one group size varies",
		Long: `Vary the raw weight of one group size over [from, to] in steps of step,
holding the other weights fixed, and report the killing point of each mix.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := a.distribution(cmd)
			if err != nil {
				return err
			}
			k := intFlag(cmd, "group-size", a.cfg.Sweep.GroupSize)
			values, err := galam.WeightRange(
				floatFlag(cmd, "from", a.cfg.Sweep.From),
				floatFlag(cmd, "to", a.cfg.Sweep.To),
				floatFlag(cmd, "step", a.cfg.Sweep.Step),
			)
			if err != nil {
				return err
			}

			a.log.Debug("sweep starting", zap.Int("group_size", k), zap.Int("points", len(values)))
			points, err := galam.Sweep(cmd.Context(), base, k, values, a.cfg.SolverOptions()...)
			if err != nil {
				return err
			}
			a.log.Info("sweep computed", zap.Int("group_size", k), zap.Int("points", len(points)))

			return a.emit(cmd, report.NewSweep(base, k, points))
		},
	}
	addWeightsFlag(cmd)
	cmd.Flags().Int("group-size", 0, "Group size whose weight is swept, 1..7 (default sweep.group_size)")
	cmd.Flags().Float64("from", 0, "First weight (default sweep.from)")
	cmd.Flags().Float64("to", 0, "Last weight (default sweep.to)")
	cmd.Flags().Float64("step", 0, "Weight increment (default sweep.step)")

	return cmd
}
