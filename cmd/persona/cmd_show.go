package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/personakit/persona/internal/profile"
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <name-or-id>",
		Short: "Show a persona document",
		Args:  cobra.ExactArgs(1),
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

			key := args[0]
			found, ok := s.Get(key)
			if !ok {
				for _, p := range s.All() {
					if p.ID() == key {
						found, ok = p, true
						break
					}
				}
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if !ok {
				if jsonOut {
					json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
						"error": "persona not found",
						"key":   key,
					})
					return nil
				}
				return fmt.Errorf("persona not found: %s", key)
			}

			if jsonOut {
				json.NewEncoder(cmd.OutOrStdout()).Encode(found)
				return nil
			}

			printPersona(cmd, found)
			return nil
		},
	}

	cmd.Flags().String("profiles-dir", "", "Directory of persona documents (overrides config)")

	return cmd
}

func printPersona(cmd *cobra.Command, p profile.Record) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Persona: %s\n", p.Name())
	fmt.Fprintf(out, "ID: %s\n", p.ID())
	if c := p.Category(); c != "" {
		fmt.Fprintf(out, "Category: %s\n", c)
	}
	if t := p.Tags(); len(t) > 0 {
		fmt.Fprintf(out, "Tags: %s\n", strings.Join(t, ", "))
	}

	if p.HasOcean() {
		scores := p.Ocean()
		fmt.Fprintln(out, "OCEAN:")
		fmt.Fprintf(out, "  Openness:          %.0f\n", scores.Openness)
		fmt.Fprintf(out, "  Conscientiousness: %.0f\n", scores.Conscientiousness)
		fmt.Fprintf(out, "  Extraversion:      %.0f\n", scores.Extraversion)
		fmt.Fprintf(out, "  Agreeableness:     %.0f\n", scores.Agreeableness)
		fmt.Fprintf(out, "  Neuroticism:       %.0f\n", scores.Neuroticism)
	}

	if contributions := p.Contributions(); len(contributions) > 0 {
		fmt.Fprintln(out, "Contributions:")
		for _, c := range contributions {
			fmt.Fprintf(out, "  - %s\n", c)
		}
	}

	if p.Enhanced() {
		fmt.Fprintln(out, "Enhanced: yes")
		if meta, ok := p[profile.FieldEnhancementMetadata].(map[string]any); ok {
			if date, ok := meta["enhanced_date"].(string); ok {
				fmt.Fprintf(out, "  Date: %s\n", date)
			}
			if v, ok := meta["enhancement_version"].(string); ok {
				fmt.Fprintf(out, "  Version: %s\n", v)
			}
			if c, ok := meta["category_used"].(string); ok {
				fmt.Fprintf(out, "  Category used: %s\n", c)
			}
		}
	} else {
		fmt.Fprintln(out, "Enhanced: no")
	}
}
