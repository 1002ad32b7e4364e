package main

import (
	"encoding/json"
	"fmt"

	"github.com/personakit/persona/internal/validate"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check persona documents for structural problems",
		Long: `Check every persona document in the profiles directory: required
fields, id shape, filename agreement, OCEAN score ranges, and duplicate
ids. Warnings (such as an unrecognized category) do not fail the check.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if dir, _ := cmd.Flags().GetString("profiles-dir"); dir != "" {
				cfg.Profiles.Dir = dir
			}

			report, err := validate.CheckDir(cfg.Profiles.Dir)
			if err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
					"files":    report.Files,
					"errors":   report.Errors(),
					"warnings": report.Warnings(),
					"issues":   report.Issues,
					"ok":       report.OK(),
				})
			} else {
				for _, issue := range report.Issues {
					fmt.Fprintln(cmd.OutOrStdout(), issue.String())
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Checked %d files: %d errors, %d warnings\n",
					report.Files, report.Errors(), report.Warnings())
			}

			if !report.OK() {
				return fmt.Errorf("validation failed with %d errors", report.Errors())
			}
			return nil
		},
	}

	cmd.Flags().String("profiles-dir", "", "Directory of persona documents (overrides config)")

	return cmd
}
