package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalog entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.catalogStore()
			if err != nil {
				return err
			}
			doc, err := store.Load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(doc.Games) == 0 {
				fmt.Fprintln(out, "Catalog is empty")
				return nil
			}

			rows := make([][]string, 0, len(doc.Games))
			for _, game := range doc.Games {
				rows = append(rows, []string{
					game.ID,
					game.Name,
					game.Type,
					game.Version,
					yesNo(game.Playable),
					game.LastUpdated,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "Name", "Type", "Version", "Playable", "Updated"},
				rows,
			))
			return nil
		},
	}
}
