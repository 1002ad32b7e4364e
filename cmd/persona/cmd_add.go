package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/personakit/persona/internal/profile"
	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new persona document skeleton",
		Long: `Create a new persona document in the profiles directory. The id is
derived from the name, and the OCEAN scores start at the neutral
midpoint for later editing.

Example:
  persona add --name "Ada Lovelace" --category scientist --tags math,computing`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if dir, _ := cmd.Flags().GetString("profiles-dir"); dir != "" {
				cfg.Profiles.Dir = dir
			}

			name, _ := cmd.Flags().GetString("name")
			cat, _ := cmd.Flags().GetString("category")
			tags, _ := cmd.Flags().GetStringSlice("tags")

			id := profile.SlugID(name)
			if id == "" {
				return fmt.Errorf("name %q does not yield a usable id", name)
			}

			path := filepath.Join(cfg.Profiles.Dir, id+".json")
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("persona already exists: %s", path)
			}

			doc := profile.Record{
				"id":       id,
				"name":     name,
				"category": cat,
				"ocean": map[string]any{
					"openness":          profile.NeutralScore,
					"conscientiousness": profile.NeutralScore,
					"extraversion":      profile.NeutralScore,
					"agreeableness":     profile.NeutralScore,
					"neuroticism":       profile.NeutralScore,
				},
			}
			if len(tags) > 0 {
				doc["tags"] = tags
			}

			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding document: %w", err)
			}
			data = append(data, '\n')

			if err := os.MkdirAll(cfg.Profiles.Dir, 0755); err != nil {
				return fmt.Errorf("creating profiles dir: %w", err)
			}
			if err := os.WriteFile(path, data, 0644); err != nil {
				return fmt.Errorf("writing document: %w", err)
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{
					"status": "created",
					"id":     id,
					"path":   path,
				})
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			}

			return nil
		},
	}

	cmd.Flags().String("profiles-dir", "", "Directory of persona documents (overrides config)")
	cmd.Flags().String("name", "", "Display name of the persona (required)")
	cmd.Flags().String("category", "", "Trait category")
	cmd.Flags().StringSlice("tags", nil, "Tags for the persona")
	cmd.MarkFlagRequired("name")

	return cmd
}
