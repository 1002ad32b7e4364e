// Package dist assembles the distribution outputs for a persona
// collection: one combined file plus per-category and per-tag slices.
package dist

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

// excludedFiles are collection-level files that are not persona
// documents.
var excludedFiles = map[string]bool{
	"categories.json": true,
	"index.json":      true,
}

// Result summarizes one build.
type Result struct {
	Personas   int `json:"personas"`
	Categories int `json:"categories"`
	Tags       int `json:"tags"`
}

// Builder writes distribution files for a persona collection.
type Builder struct {
	logger *slog.Logger

	// MinTagMembers is the minimum number of personas sharing a tag
	// before the tag gets its own output file.
	MinTagMembers int
}

// NewBuilder creates a Builder with the given tag threshold.
func NewBuilder(minTagMembers int, logger *slog.Logger) *Builder {
	return &Builder{MinTagMembers: minTagMembers, logger: logger}
}

// Build reads every persona document in dir and writes the combined
// collection and its slices under outDir:
//
//	outDir/all.json              every persona, sorted by name
//	outDir/by-category/<c>.json  personas in category c
//	outDir/by-tag/<t>.json       personas tagged t, when enough share it
func (b *Builder) Build(dir, outDir string) (Result, error) {
	docs, err := loadDocs(dir)
	if err != nil {
		return Result{}, err
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].Name() < docs[j].Name() })

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return Result{}, fmt.Errorf("creating output dir: %w", err)
	}

	if err := writeJSON(filepath.Join(outDir, "all.json"), docs); err != nil {
		return Result{}, err
	}

	byCategory := make(map[string][]profile.Record)
	byTag := make(map[string][]profile.Record)
	for _, doc := range docs {
		if cat := doc.Category(); cat != "" {
			byCategory[cat] = append(byCategory[cat], doc)
		}
		for _, tag := range doc.Tags() {
			byTag[tag] = append(byTag[tag], doc)
		}
	}

	catDir := filepath.Join(outDir, "by-category")
	if err := os.MkdirAll(catDir, 0755); err != nil {
		return Result{}, fmt.Errorf("creating category dir: %w", err)
	}
	for cat, members := range byCategory {
		if err := writeJSON(filepath.Join(catDir, cat+".json"), members); err != nil {
			return Result{}, err
		}
	}

	tagDir := filepath.Join(outDir, "by-tag")
	if err := os.MkdirAll(tagDir, 0755); err != nil {
		return Result{}, fmt.Errorf("creating tag dir: %w", err)
	}
	tags := 0
	for tag, members := range byTag {
		if len(members) < b.MinTagMembers {
			continue
		}
		if err := writeJSON(filepath.Join(tagDir, tag+".json"), members); err != nil {
			return Result{}, err
		}
		tags++
	}

	result := Result{Personas: len(docs), Categories: len(byCategory), Tags: tags}
	b.logger.Info("build complete",
		"personas", result.Personas,
		"categories", result.Categories,
		"tags", result.Tags,
		"out", outDir)
	return result, nil
}

// loadDocs reads every persona document in dir, in filename order.
func loadDocs(dir string) ([]profile.Record, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading profiles dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") || excludedFiles[name] {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	docs := make([]profile.Record, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		var rec profile.Record
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		docs = append(docs, rec)
	}
	return docs, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}
