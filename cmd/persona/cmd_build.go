package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/personakit/persona/internal/dist"
	"github.com/personakit/persona/internal/logging"
	"github.com/spf13/cobra"
)

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Assemble distribution files from the collection",
		Long: `Read every persona document and write the distribution outputs:
the combined collection (all.json), one file per category, and one file
per sufficiently shared tag.

Example:
  persona build --profiles-dir ./personalities --out ./dist`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if dir, _ := cmd.Flags().GetString("profiles-dir"); dir != "" {
				cfg.Profiles.Dir = dir
			}
			if out, _ := cmd.Flags().GetString("out"); out != "" {
				cfg.Build.OutDir = out
			}
			if n, _ := cmd.Flags().GetInt("min-tag-members"); n > 0 {
				cfg.Build.MinTagMembers = n
			}

			logger := logging.NewLogger(cfg.Logging.Level, os.Stderr)
			builder := dist.NewBuilder(cfg.Build.MinTagMembers, logger)

			result, err := builder.Build(cfg.Profiles.Dir, cfg.Build.OutDir)
			if err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				json.NewEncoder(cmd.OutOrStdout()).Encode(result)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Built %d personas into %s (%d categories, %d tags)\n",
					result.Personas, cfg.Build.OutDir, result.Categories, result.Tags)
			}

			return nil
		},
	}

	cmd.Flags().String("profiles-dir", "", "Directory of persona documents (overrides config)")
	cmd.Flags().String("out", "", "Output directory (overrides config)")
	cmd.Flags().Int("min-tag-members", 0, "Minimum personas sharing a tag for a tag file (overrides config)")

	return cmd
}
