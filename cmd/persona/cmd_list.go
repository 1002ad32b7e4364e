package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/personakit/persona/internal/profile"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List personas in the collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if dir, _ := cmd.Flags().GetString("profiles-dir"); dir != "" {
				cfg.Profiles.Dir = dir
				cfg.Profiles.Collection = ""
			}

			s, err := openStore(cfg)
			if err != nil {
				return err
			}

			tags, _ := cmd.Flags().GetStringSlice("tags")
			cat, _ := cmd.Flags().GetString("category")

			var personas []profile.Record
			switch {
			case len(tags) > 0:
				personas = s.FilterByTags(tags)
			case cat != "":
				personas = s.FilterByCategory(cat)
			default:
				personas = s.All()
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
					"personas": personas,
					"count":    len(personas),
				})
				return nil
			}

			if len(personas) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No personas found.")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Personas (%d):\n\n", len(personas))
			for i, p := range personas {
				line := fmt.Sprintf("%d. %s", i+1, p.Name())
				if c := p.Category(); c != "" {
					line += fmt.Sprintf(" [%s]", c)
				}
				if p.Enhanced() {
					line += " (enhanced)"
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
				if t := p.Tags(); len(t) > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "   Tags: %s\n", strings.Join(t, ", "))
				}
			}

			return nil
		},
	}

	cmd.Flags().String("profiles-dir", "", "Directory of persona documents (overrides config)")
	cmd.Flags().StringSlice("tags", nil, "Only personas carrying at least one of these tags")
	cmd.Flags().String("category", "", "Only personas in this category")

	return cmd
}
