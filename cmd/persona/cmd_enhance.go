package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/personakit/persona/internal/category"
	"github.com/personakit/persona/internal/enrich"
	"github.com/personakit/persona/internal/logging"
	"github.com/spf13/cobra"
)

func newEnhanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enhance",
		Short: "Derive trait groups for every persona document",
		Long: `Derive the psychological trait groups for every persona document in
the profiles directory and write the enhanced documents back in place.

Documents that already carry derived traits are left untouched, so the
command is safe to re-run.

Example:
  persona enhance --profiles-dir ./personalities --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if dir, _ := cmd.Flags().GetString("profiles-dir"); dir != "" {
				cfg.Profiles.Dir = dir
			}
			if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
				cfg.Enrichment.DryRun = true
			}
			reportOnly, _ := cmd.Flags().GetBool("report-only")

			logger := logging.NewLogger(cfg.Logging.Level, os.Stderr)

			var traces *logging.TraceLogger
			if cfg.Logging.TraceDir != "" {
				traces = logging.NewTraceLogger(cfg.Logging.TraceDir, cfg.Logging.Level)
				defer traces.Close()
			}

			index, err := category.LoadIndex(cfg.IndexPath())
			if err != nil {
				if !errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("loading category index: %w", err)
				}
				logger.Debug("no category index, using document categories only")
				index = nil
			}

			enricher := enrich.New(category.NewResolver(index), cfg.Enrichment.Version, logger, traces)
			processor := enrich.NewProcessor(enricher, logger)
			processor.DryRun = cfg.Enrichment.DryRun
			processor.ReportOnly = reportOnly

			stats, err := processor.Run(cfg.Profiles.Dir)
			if err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				json.NewEncoder(cmd.OutOrStdout()).Encode(stats)
			} else {
				if cfg.Enrichment.DryRun {
					fmt.Fprintln(cmd.OutOrStdout(), "Dry run, no documents written.")
				}
				fmt.Fprint(cmd.OutOrStdout(), stats.Summary())
			}

			return nil
		},
	}

	cmd.Flags().String("profiles-dir", "", "Directory of persona documents (overrides config)")
	cmd.Flags().Bool("dry-run", false, "Derive traits without writing documents back")
	cmd.Flags().Bool("report-only", false, "Tally documents and categories without deriving traits")

	return cmd
}
