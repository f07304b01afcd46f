package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/rumorsim/internal/report"
)

var errNoStore = errors.New("run history is disabled: set --store or storage.path")

func newHistoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List stored runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.store == nil {
				return errNoStore
			}
			limit, _ := cmd.Flags().GetInt("limit")
			runs, err := a.store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			a.log.Debug("history listed", zap.Int("runs", len(runs)))

			return report.RenderSummaries(cmd.OutOrStdout(), runs, a.format)
		},
	}
	cmd.Flags().Int("limit", 20, "Maximum number of runs to list (0 for all)")

	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Print a stored run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.store == nil {
				return errNoStore
			}
			r, err := a.store.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return report.Render(cmd.OutOrStdout(), r, a.format)
		},
	}
}
