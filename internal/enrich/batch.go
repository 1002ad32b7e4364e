package enrich

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/personakit/persona/internal/profile"
)

// excludedFiles are collection-level files living alongside the persona
// documents that must never be enhanced.
var excludedFiles = map[string]bool{
	"categories.json": true,
	"index.json":      true,
}

// Stats summarizes one batch run.
type Stats struct {
	TotalFiles int            `json:"total_files"`
	Enhanced   int            `json:"enhanced"`
	Skipped    int            `json:"skipped"`
	Errors     int            `json:"errors"`
	Categories map[string]int `json:"categories"`
}

// Summary renders the stats as a short human-readable report.
func (s Stats) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Processed %d files: %d enhanced, %d skipped, %d errors\n",
		s.TotalFiles, s.Enhanced, s.Skipped, s.Errors)
	if s.TotalFiles > 0 {
		rate := float64(s.TotalFiles-s.Errors) / float64(s.TotalFiles) * 100
		fmt.Fprintf(&b, "Success rate: %.1f%%\n", rate)
	}

	if len(s.Categories) > 0 {
		cats := make([]string, 0, len(s.Categories))
		for c := range s.Categories {
			cats = append(cats, c)
		}
		sort.Strings(cats)

		b.WriteString("Categories:\n")
		for _, c := range cats {
			fmt.Fprintf(&b, "  %s: %d\n", c, s.Categories[c])
		}
	}
	return b.String()
}

// Processor runs the enricher over every persona document in a
// directory, writing enhanced documents back in place.
type Processor struct {
	enricher *Enricher
	logger   *slog.Logger

	// DryRun derives traits and counts outcomes without writing
	// anything back.
	DryRun bool

	// ReportOnly tallies files and categories without deriving or
	// writing anything.
	ReportOnly bool
}

// NewProcessor creates a Processor around an Enricher.
func NewProcessor(enricher *Enricher, logger *slog.Logger) *Processor {
	return &Processor{enricher: enricher, logger: logger}
}

// Run enhances every eligible .json document in dir. Per-document
// failures are counted, logged, and do not abort the run. The error
// return covers only directory-level failures.
func (p *Processor) Run(dir string) (Stats, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Stats{}, fmt.Errorf("reading profiles dir: %w", err)
	}

	stats := Stats{Categories: make(map[string]int)}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") || excludedFiles[name] {
			continue
		}
		stats.TotalFiles++

		path := filepath.Join(dir, name)
		if err := p.processFile(path, &stats); err != nil {
			stats.Errors++
			p.logger.Error("failed to process document", "file", name, "error", err)
		}
	}

	p.logger.Info("batch run complete",
		"total", stats.TotalFiles,
		"enhanced", stats.Enhanced,
		"skipped", stats.Skipped,
		"errors", stats.Errors)

	return stats, nil
}

// processFile enhances a single document and updates stats. Skips are
// not errors: a document missing its identity fields, or one already
// enhanced, is left alone and counted.
func (p *Processor) processFile(path string, stats *Stats) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading document: %w", err)
	}

	var rec profile.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}

	if rec.ID() == "" || rec.Name() == "" {
		stats.Skipped++
		p.logger.Warn("document missing id or name, skipping", "file", filepath.Base(path))
		return nil
	}

	cat := rec.Category()
	if cat == "" {
		cat = "unknown"
	}
	stats.Categories[cat]++

	if p.ReportOnly {
		stats.Skipped++
		return nil
	}

	enriched, changed := p.enricher.Enrich(rec)
	if !changed {
		stats.Skipped++
		return nil
	}

	if p.DryRun {
		stats.Enhanced++
		return nil
	}

	out, err := json.MarshalIndent(enriched, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	out = append(out, '\n')

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}

	stats.Enhanced++
	p.logger.Debug("enhanced document", "file", filepath.Base(path))
	return nil
}
