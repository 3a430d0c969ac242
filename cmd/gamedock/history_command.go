package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent ingestion runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := ctx.openJournal()
			if err != nil {
				return fmt.Errorf("open journal: %w", err)
			}
			out := cmd.OutOrStdout()
			if runs == nil {
				fmt.Fprintln(out, "Run journal is disabled in the configuration")
				return nil
			}
			defer runs.Close()

			recorded, err := runs.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(recorded) == 0 {
				fmt.Fprintln(out, "No recorded runs")
				return nil
			}

			rows := make([][]string, 0, len(recorded))
			for _, run := range recorded {
				detail := run.Detail
				if len(detail) > 60 {
					detail = detail[:57] + "..."
				}
				rows = append(rows, []string{
					run.StartedAt.Local().Format("2006-01-02 15:04"),
					run.GameID,
					run.FinalState,
					run.Stage,
					yesNo(run.DryRun),
					detail,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Started", "Game", "Result", "Stage", "Dry run", "Detail"},
				rows,
			))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to show")
	return cmd
}
