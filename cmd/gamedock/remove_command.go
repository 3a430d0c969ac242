package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gamedock/internal/catalog"
)

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a game's directory and catalog entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}
			store, err := ctx.catalogStore()
			if err != nil {
				return err
			}

			removed := false
			err = store.Update(func(doc *catalog.Document) error {
				kept := doc.Games[:0]
				for _, game := range doc.Games {
					if game.ID == id {
						removed = true
						continue
					}
					kept = append(kept, game)
				}
				doc.Games = kept
				return nil
			})
			if err != nil {
				return err
			}

			// The thumbnail lives under the destination, so removing the
			// directory covers it.
			dest := cfg.GameDir(id)
			destRemoved := false
			if _, statErr := os.Stat(dest); statErr == nil {
				if err := os.RemoveAll(dest); err != nil {
					return fmt.Errorf("remove game directory: %w", err)
				}
				destRemoved = true
			}

			out := cmd.OutOrStdout()
			if !removed && !destRemoved {
				fmt.Fprintf(out, "Nothing to remove for %s\n", id)
				return nil
			}
			fmt.Fprintf(out, "Removed %s (catalog entry: %s, directory: %s)\n", id, yesNo(removed), yesNo(destRemoved))
			return nil
		},
	}
}
