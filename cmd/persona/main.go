package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/personakit/persona/internal/config"
	"github.com/personakit/persona/internal/store"
	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "persona",
		Short: "Persona - personality profile store and enrichment",
		Long: `persona manages a collection of personality profile documents.

It validates persona documents, derives psychological trait groups from
OCEAN scores and category, and assembles distribution files for
downstream consumers.`,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON (for tool consumption)")
	rootCmd.PersistentFlags().String("config", "", "Config file path (default ~/.persona/config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(
		newVersionCmd(),
		newAddCmd(),
		newEnhanceCmd(),
		newListCmd(),
		newShowCmd(),
		newSearchCmd(),
		newRandomCmd(),
		newValidateCmd(),
		newBuildCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{"version": version})
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "persona version %s\n", version)
			}
		},
	}
}

// loadConfig loads configuration, honoring the --config flag.
func loadConfig(cmd *cobra.Command) (*config.PersonaConfig, error) {
	path, _ := cmd.Flags().GetString("config")

	var cfg *config.PersonaConfig
	var err error
	if path != "" {
		cfg, err = config.LoadFromFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// openStore loads the persona collection, preferring an explicit
// collection file over the profiles directory.
func openStore(cfg *config.PersonaConfig) (*store.Store, error) {
	if cfg.Profiles.Collection != "" {
		return store.Load(cfg.Profiles.Collection)
	}
	return store.LoadDir(cfg.Profiles.Dir)
}
