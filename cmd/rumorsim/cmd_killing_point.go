package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/rumorsim/galam"
	"github.com/katalvlaran/rumorsim/internal/report"
)

func newKillingPointCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "killing-point",
		Short: "Compute the critical truth ratio K",
		Long: `Compute the killing point K: the unique fixed point of the daily update
strictly inside (0,1). Ratios above K end in total truth, ratios below K in
total rumor. Fails when no unique interior fixed point exists.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.distribution(cmd)
			if err != nil {
				return err
			}
			k, err := galam.FindKillingPoint(d, a.cfg.SolverOptions()...)
			if err != nil {
				return err
			}
			a.log.Info("killing point computed",
				zap.Stringer("distribution", d),
				zap.Float64("killing_point", k),
			)

			return a.emit(cmd, report.NewKillingPoint(d, k))
		},
	}
	addWeightsFlag(cmd)

	return cmd
}
