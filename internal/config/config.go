// Package config provides unified configuration loading for persona.
// It supports loading from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// PersonaConfig contains all persona configuration settings.
type PersonaConfig struct {
	// Profiles contains settings for locating persona documents.
	Profiles ProfilesConfig `json:"profiles" yaml:"profiles"`

	// Enrichment contains settings for the trait enrichment pipeline.
	Enrichment EnrichmentConfig `json:"enrichment" yaml:"enrichment"`

	// Build contains settings for the distribution build.
	Build BuildConfig `json:"build" yaml:"build"`

	// Logging contains settings for operational and trace logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// ProfilesConfig configures where persona documents live.
type ProfilesConfig struct {
	// Dir is the directory holding one JSON document per persona.
	Dir string `json:"dir" yaml:"dir"`

	// Collection is an optional path to a single JSON file holding the
	// full persona collection, used by list/show/search when set.
	Collection string `json:"collection,omitempty" yaml:"collection,omitempty"`

	// Index is the path to the category index file (categories.json),
	// relative to Dir when not absolute. Not to be confused with the
	// collection's name/summary index (index.json), which persona only
	// ever skips.
	Index string `json:"index,omitempty" yaml:"index,omitempty"`
}

// EnrichmentConfig configures trait derivation.
type EnrichmentConfig struct {
	// Version is stamped into enhancement_metadata on every enriched
	// document.
	Version string `json:"version" yaml:"version"`

	// DryRun derives traits without writing documents back.
	DryRun bool `json:"dry_run" yaml:"dry_run"`
}

// BuildConfig configures the distribution build output.
type BuildConfig struct {
	// OutDir is the directory the build writes into.
	OutDir string `json:"out_dir" yaml:"out_dir"`

	// MinTagMembers is the minimum number of personas sharing a tag for
	// that tag to get its own output file.
	MinTagMembers int `json:"min_tag_members" yaml:"min_tag_members"`
}

// LoggingConfig configures persona's logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	// "debug" enables enrichment tracing to traces.jsonl.
	// "trace" additionally includes every derived trait value.
	Level string `json:"level" yaml:"level"`

	// TraceDir is the directory trace files are written to. Empty
	// disables trace file output regardless of level.
	TraceDir string `json:"trace_dir,omitempty" yaml:"trace_dir,omitempty"`
}

// Default returns a PersonaConfig with sensible defaults.
func Default() *PersonaConfig {
	return &PersonaConfig{
		Profiles: ProfilesConfig{
			Dir:   "personalities",
			Index: "categories.json",
		},
		Enrichment: EnrichmentConfig{
			Version: "1.0",
		},
		Build: BuildConfig{
			OutDir:        "dist",
			MinTagMembers: 3,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from the default locations and environment variables.
// Order: defaults -> ~/.persona/config.yaml -> environment variables
func Load() (*PersonaConfig, error) {
	config := Default()

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".persona", "config.yaml")
		if _, statErr := os.Stat(configPath); statErr == nil {
			fileConfig, loadErr := LoadFromFile(configPath)
			if loadErr != nil {
				return nil, fmt.Errorf("loading config file: %w", loadErr)
			}
			config = fileConfig
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file.
func LoadFromFile(path string) (*PersonaConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return config, nil
}

// Validate checks that the configuration is valid.
func (c *PersonaConfig) Validate() error {
	if c.Profiles.Dir == "" {
		return fmt.Errorf("profiles dir must not be empty")
	}

	if c.Enrichment.Version == "" {
		return fmt.Errorf("enrichment version must not be empty")
	}

	if c.Build.MinTagMembers < 1 {
		return fmt.Errorf("min_tag_members must be at least 1, got %d", c.Build.MinTagMembers)
	}

	validLevels := map[string]bool{"info": true, "debug": true, "trace": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}

	return nil
}

// IndexPath resolves the category index path against the profiles dir.
func (c *PersonaConfig) IndexPath() string {
	if c.Profiles.Index == "" {
		return ""
	}
	if filepath.IsAbs(c.Profiles.Index) {
		return c.Profiles.Index
	}
	return filepath.Join(c.Profiles.Dir, c.Profiles.Index)
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(config *PersonaConfig) {
	if v := os.Getenv("PERSONA_PROFILES_DIR"); v != "" {
		config.Profiles.Dir = v
	}

	if v := os.Getenv("PERSONA_COLLECTION"); v != "" {
		config.Profiles.Collection = v
	}

	if v := os.Getenv("PERSONA_ENRICHMENT_VERSION"); v != "" {
		config.Enrichment.Version = v
	}

	if v := os.Getenv("PERSONA_DRY_RUN"); v != "" {
		config.Enrichment.DryRun = v == "true" || v == "1"
	}

	if v := os.Getenv("PERSONA_BUILD_DIR"); v != "" {
		config.Build.OutDir = v
	}

	if v := os.Getenv("PERSONA_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
}
