package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search personas by name or id",
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

			matches := s.Search(args[0])

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
					"query":    args[0],
					"personas": matches,
					"count":    len(matches),
				})
				return nil
			}

			if len(matches) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No personas matching %q.\n", args[0])
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Matches (%d):\n", len(matches))
			for _, p := range matches {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s (%s)\n", p.Name(), p.ID())
			}

			return nil
		},
	}

	cmd.Flags().String("profiles-dir", "", "Directory of persona documents (overrides config)")

	return cmd
}
