package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newRandomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Pick a random persona",
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

			cat, _ := cmd.Flags().GetString("category")
			picked, ok := s.Random(cat)
			if !ok {
				if cat != "" {
					return fmt.Errorf("no personas in category %q", cat)
				}
				return fmt.Errorf("collection is empty")
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				json.NewEncoder(cmd.OutOrStdout()).Encode(picked)
				return nil
			}

			printPersona(cmd, picked)
			return nil
		},
	}

	cmd.Flags().String("profiles-dir", "", "Directory of persona documents (overrides config)")
	cmd.Flags().String("category", "", "Restrict the pick to one category")

	return cmd
}
