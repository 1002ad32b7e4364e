// Package store provides the in-memory persona collection store.
// It indexes documents by display name, preserving the order personas
// were first added.
package store

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/personakit/persona/internal/profile"
)

// excludedFiles are collection-level files living alongside persona
// documents.
var excludedFiles = map[string]bool{
	"categories.json": true,
	"index.json":      true,
}

// Store holds a persona collection indexed by display name. A repeated
// name replaces the stored document but keeps the original position.
// Thread-safe for concurrent access.
type Store struct {
	mu    sync.RWMutex
	names []string
	byKey map[string]profile.Record
}

// New returns an empty Store.
func New() *Store {
	return &Store{byKey: make(map[string]profile.Record)}
}

// collectionFile is the envelope shape some collection files use:
// {"personalities": [...]}. A bare top-level array is also accepted.
type collectionFile struct {
	Personalities []profile.Record `json:"personalities"`
}

// Load reads a persona collection from a JSON file and returns a Store
// holding it. A missing file is an error satisfying
// errors.Is(err, fs.ErrNotExist); a malformed file is a plain error.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("persona collection %s: %w", path, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("reading persona collection: %w", err)
	}

	var records []profile.Record
	if err := json.Unmarshal(data, &records); err != nil {
		var envelope collectionFile
		if envErr := json.Unmarshal(data, &envelope); envErr != nil || envelope.Personalities == nil {
			return nil, fmt.Errorf("parsing persona collection %s: %w", path, err)
		}
		records = envelope.Personalities
	}

	s := New()
	for _, rec := range records {
		s.Add(rec)
	}
	return s, nil
}

// LoadDir reads every persona document in dir (one JSON file per
// persona) into a Store, in filename order. Collection-level files
// (categories.json, index.json) are skipped.
func LoadDir(dir string) (*Store, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("profiles dir %s: %w", dir, fs.ErrNotExist)
		}
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

	s := New()
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		var rec profile.Record
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		s.Add(rec)
	}
	return s, nil
}

// Add inserts or replaces a persona. Documents without both an id and
// a name are ignored. Replacement keeps the name's original position.
func (s *Store) Add(rec profile.Record) {
	name := rec.Name()
	if rec.ID() == "" || name == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byKey[name]; !exists {
		s.names = append(s.names, name)
	}
	s.byKey[name] = rec
}

// Get returns the persona stored under name.
func (s *Store) Get(name string) (profile.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.byKey[name]
	return rec, ok
}

// All returns every persona in insertion order.
func (s *Store) All() []profile.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]profile.Record, 0, len(s.names))
	for _, name := range s.names {
		out = append(out, s.byKey[name])
	}
	return out
}

// Names returns the stored display names in insertion order.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Count returns the number of stored personas.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.names)
}

// FilterByTags returns personas carrying at least one of the given
// tags, in insertion order.
func (s *Store) FilterByTags(tags []string) []profile.Record {
	want := make(map[string]bool, len(tags))
	for _, t := range tags {
		want[t] = true
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]profile.Record, 0)
	for _, name := range s.names {
		rec := s.byKey[name]
		for _, tag := range rec.Tags() {
			if want[tag] {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}

// FilterByCategory returns personas whose category field matches, in
// insertion order.
func (s *Store) FilterByCategory(cat string) []profile.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]profile.Record, 0)
	for _, name := range s.names {
		if rec := s.byKey[name]; rec.Category() == cat {
			out = append(out, rec)
		}
	}
	return out
}

// Search returns personas whose name or id contains the query,
// case-insensitive, in insertion order.
func (s *Store) Search(query string) []profile.Record {
	q := strings.ToLower(query)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]profile.Record, 0)
	for _, name := range s.names {
		rec := s.byKey[name]
		if strings.Contains(strings.ToLower(name), q) ||
			strings.Contains(strings.ToLower(rec.ID()), q) {
			out = append(out, rec)
		}
	}
	return out
}

// Random returns a random persona, restricted to a category when cat is
// non-empty. ok is false when no persona qualifies.
func (s *Store) Random(cat string) (profile.Record, bool) {
	var pool []profile.Record
	if cat == "" {
		pool = s.All()
	} else {
		pool = s.FilterByCategory(cat)
	}
	if len(pool) == 0 {
		return nil, false
	}
	return pool[rand.Intn(len(pool))], true
}
