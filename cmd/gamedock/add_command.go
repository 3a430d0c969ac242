package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"gamedock/internal/catalog"
	"gamedock/internal/ingest"
	"gamedock/internal/input"
	"gamedock/internal/logging"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	var versionFlag string
	var dryRun bool
	var nameFlag string
	var typeFlag string
	var descriptionFlag string

	cmd := &cobra.Command{
		Use:   "add <id> <source>",
		Short: "Ingest a game package and register it in the catalog",
		Long: `Ingest a game package from a zip archive or directory, normalize its
structure, build Ren'Py source projects for the web, and register the
result in the catalog. An existing entry with the same id is replaced.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			// A dry run must leave the filesystem alone, so directories
			// and the log file are only set up for a real ingestion.
			var logger *slog.Logger
			if dryRun {
				logger, err = logging.New(logging.Options{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
				if err != nil {
					return err
				}
			} else {
				if err := cfg.EnsureDirectories(); err != nil {
					return err
				}
				logger, err = ctx.ensureLogger()
				if err != nil {
					return err
				}
			}

			store, err := ctx.catalogStore()
			if err != nil {
				return err
			}

			sourcePath, err := filepath.Abs(args[1])
			if err != nil {
				return fmt.Errorf("resolve source path: %w", err)
			}

			var provider input.Provider
			if input.Interactive() {
				provider = input.NewTerminal()
			} else {
				provider = input.NewStatic(nil)
			}

			opts := []ingest.Option{}
			if !dryRun {
				runs, err := ctx.openJournal()
				if err != nil {
					return fmt.Errorf("open journal: %w", err)
				}
				if runs != nil {
					defer runs.Close()
					opts = append(opts, ingest.WithJournal(runs))
				}
			}

			pipeline := ingest.New(cfg, logger, store, provider, opts...)
			report, err := pipeline.Run(cmd.Context(), ingest.Request{
				ID:         args[0],
				SourcePath: sourcePath,
				Version:    versionFlag,
				DryRun:     dryRun,
				Fields: catalog.DescriptiveFields{
					Name:        nameFlag,
					Type:        typeFlag,
					Description: descriptionFlag,
				},
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if report.DryRun {
				fmt.Fprintf(out, "Dry run for %s (nothing was modified)\n", report.GameID)
				fmt.Fprintf(out, "  Source:          %s\n", report.Source)
				fmt.Fprintf(out, "  Classification:  %s\n", report.Classification)
				fmt.Fprintf(out, "  Flatten:         %s", yesNo(report.Flatten))
				if report.Flatten {
					fmt.Fprintf(out, " (%s)", report.RootPrefix)
				}
				fmt.Fprintln(out)
				fmt.Fprintf(out, "  Build required:  %s\n", yesNo(report.BuildRequired))
				fmt.Fprintf(out, "  Destination:     %s", report.Destination)
				if report.DestinationExists {
					fmt.Fprint(out, " (would be replaced)")
				}
				fmt.Fprintln(out)
				return nil
			}

			fmt.Fprintf(out, "Added %s version %s (entry point %s)\n", report.GameID, report.Version, report.EntryPoint)
			if report.Thumbnail != "" {
				fmt.Fprintf(out, "Thumbnail: %s\n", report.Thumbnail)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&versionFlag, "version", "", "Version label for this release")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Inspect the package and report the plan without modifying anything")
	cmd.Flags().StringVar(&nameFlag, "name", "", "Display name for a new catalog entry")
	cmd.Flags().StringVar(&typeFlag, "type", "", "Game type for a new catalog entry (html, renpy, rpgmaker, download-only)")
	cmd.Flags().StringVar(&descriptionFlag, "description", "", "Description for a new catalog entry")

	return cmd
}
