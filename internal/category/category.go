// Package category resolves which trait category applies to a persona.
// Categories come from the document itself when present, otherwise from
// the collection's category index file.
package category

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// DefaultCategory is used when neither the document nor the index names
// a category.
const DefaultCategory = "default"

// Known lists every category the derivation rules treat specially.
// Documents may carry other categories; they fall through to generic
// rule branches.
var Known = []string{
	"scientist", "philosopher", "artist", "writer", "statesman", "leader",
	"religious", "musician", "composer", "poet", "filmmaker", "comedian",
	"athlete", "explorer", "mathematician", "historian", "tech_leader",
	"activist", "entrepreneur",
}

// IsKnown reports whether c is one of the categories with dedicated
// derivation rules.
func IsKnown(c string) bool {
	for _, k := range Known {
		if k == c {
			return true
		}
	}
	return false
}

// Member is one persona entry in the category index.
type Member struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Index maps a category name to its member personas, as read from the
// collection's index file.
type Index struct {
	byCategory map[string][]Member
	byID       map[string]string
}

// indexFile is the on-disk shape: {"categories": {"scientist": [{"id": ...}]}}.
// A bare top-level category map is also accepted.
type indexFile struct {
	Categories map[string][]Member `json:"categories"`
}

// LoadIndex reads a category index from path. A missing file is an
// error satisfying errors.Is(err, fs.ErrNotExist) so callers can treat
// it as "no index" rather than a failure.
func LoadIndex(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("category index %s: %w", path, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("reading category index: %w", err)
	}

	var file indexFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing category index %s: %w", path, err)
	}

	cats := file.Categories
	if cats == nil {
		var bare map[string][]Member
		if err := json.Unmarshal(data, &bare); err != nil {
			return nil, fmt.Errorf("parsing category index %s: %w", path, err)
		}
		cats = bare
	}

	return NewIndex(cats), nil
}

// NewIndex builds an Index from a category-to-members map.
func NewIndex(cats map[string][]Member) *Index {
	idx := &Index{
		byCategory: make(map[string][]Member, len(cats)),
		byID:       make(map[string]string),
	}
	for cat, members := range cats {
		idx.byCategory[cat] = append(idx.byCategory[cat], members...)
		for _, m := range members {
			if m.ID == "" {
				continue
			}
			idx.byID[m.ID] = cat
		}
	}
	return idx
}

// CategoryOf returns the category the index assigns to id, or "" when
// the id is not listed.
func (idx *Index) CategoryOf(id string) string {
	if idx == nil {
		return ""
	}
	return idx.byID[id]
}

// Members returns the personas listed under a category.
func (idx *Index) Members(cat string) []Member {
	if idx == nil {
		return nil
	}
	return idx.byCategory[cat]
}

// Resolver decides the effective category for a persona. The index may
// be nil, in which case only the document's own category is consulted.
type Resolver struct {
	index *Index
}

// NewResolver wraps an index (which may be nil) in a Resolver.
func NewResolver(index *Index) *Resolver {
	return &Resolver{index: index}
}

// Resolve returns the category to derive traits with. Precedence: the
// document's own category field, then the index entry for its id, then
// DefaultCategory.
func (r *Resolver) Resolve(id, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if r != nil && r.index != nil {
		if cat := r.index.CategoryOf(id); cat != "" {
			return cat
		}
	}
	return DefaultCategory
}
