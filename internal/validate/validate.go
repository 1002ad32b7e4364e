// Package validate checks persona documents for structural problems
// before they enter the collection: missing identity fields, malformed
// ids, out-of-range OCEAN scores, duplicate ids.
package validate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/personakit/persona/internal/category"
	"github.com/personakit/persona/internal/profile"
)

// idPattern is the allowed shape of a persona id.
var idPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

// oceanFactors are the five score keys every ocean block must carry.
var oceanFactors = []string{
	"openness", "conscientiousness", "extraversion", "agreeableness", "neuroticism",
}

// excludedFiles are collection-level files that are not persona
// documents and are never validated.
var excludedFiles = map[string]bool{
	"categories.json": true,
	"index.json":      true,
}

// Issue is one problem found in a document. Warnings do not fail
// validation.
type Issue struct {
	File    string `json:"file"`
	Message string `json:"message"`
	Warning bool   `json:"warning,omitempty"`
}

func (i Issue) String() string {
	kind := "error"
	if i.Warning {
		kind = "warning"
	}
	return fmt.Sprintf("%s: %s: %s", i.File, kind, i.Message)
}

// Report collects the outcome of validating a collection.
type Report struct {
	Files  int     `json:"files"`
	Issues []Issue `json:"issues"`
}

// Errors counts non-warning issues.
func (r Report) Errors() int {
	n := 0
	for _, i := range r.Issues {
		if !i.Warning {
			n++
		}
	}
	return n
}

// Warnings counts warning issues.
func (r Report) Warnings() int {
	return len(r.Issues) - r.Errors()
}

// OK reports whether validation passed (warnings allowed).
func (r Report) OK() bool {
	return r.Errors() == 0
}

// CheckDir validates every persona document in dir. The error return
// covers only directory-level failures; per-document problems land in
// the report.
func CheckDir(dir string) (Report, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Report{}, fmt.Errorf("reading profiles dir: %w", err)
	}

	var report Report
	seenIDs := make(map[string]string)

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") || excludedFiles[name] {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		report.Files++

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			report.Issues = append(report.Issues, Issue{File: name, Message: fmt.Sprintf("unreadable: %v", err)})
			continue
		}

		var rec profile.Record
		if err := json.Unmarshal(data, &rec); err != nil {
			report.Issues = append(report.Issues, Issue{File: name, Message: fmt.Sprintf("invalid JSON: %v", err)})
			continue
		}

		report.Issues = append(report.Issues, CheckDoc(name, rec)...)

		if id := rec.ID(); id != "" {
			if prev, dup := seenIDs[id]; dup {
				report.Issues = append(report.Issues, Issue{
					File:    name,
					Message: fmt.Sprintf("duplicate id %q (also in %s)", id, prev),
				})
			} else {
				seenIDs[id] = name
			}
		}
	}

	return report, nil
}

// CheckDoc validates a single parsed document. filename may be empty
// when the document did not come from a file.
func CheckDoc(filename string, rec profile.Record) []Issue {
	var issues []Issue
	add := func(warning bool, format string, args ...any) {
		issues = append(issues, Issue{File: filename, Message: fmt.Sprintf(format, args...), Warning: warning})
	}

	id := rec.ID()
	switch {
	case id == "":
		add(false, "missing required field id")
	case !idPattern.MatchString(id):
		add(false, "id %q must match %s", id, idPattern.String())
	case filename != "" && filename != id+".json":
		add(false, "filename should be %s.json", id)
	}

	if rec.Name() == "" {
		add(false, "missing required field name")
	}

	cat := rec.Category()
	if cat == "" {
		add(false, "missing required field category")
	} else if !category.IsKnown(cat) {
		add(true, "unrecognized category %q", cat)
	}

	ocean, hasOcean := rec["ocean"].(map[string]any)
	if !hasOcean {
		add(false, "missing required field ocean")
		return issues
	}

	for _, factor := range oceanFactors {
		v, ok := ocean[factor]
		if !ok {
			add(false, "ocean missing factor %s", factor)
			continue
		}
		score, ok := toNumber(v)
		if !ok {
			add(false, "ocean.%s is not a number", factor)
			continue
		}
		if score < 0 || score > 100 {
			add(false, "ocean.%s = %v out of range 0-100", factor, score)
		}
	}

	return issues
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}
