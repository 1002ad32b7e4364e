// Package profile defines the Profile Record: one persona's JSON document
// with its primary trait inputs and any derived attribute groups.
// Records are schemaless maps so unknown fields pass through untouched.
package profile

import (
	"strings"
)

// Reserved field names written by enrichment. Raw input records are not
// expected to carry these; on merge the derived value wins.
const (
	FieldBehavioralTraits      = "behavioral_traits"
	FieldCognitiveStyle        = "cognitive_style"
	FieldSocialDynamics        = "social_dynamics"
	FieldCommunicationPatterns = "communication_patterns"
	FieldWorkMethodology       = "work_methodology"
	FieldEmotionalProfile      = "emotional_profile"
	FieldLegacyImpact          = "legacy_impact"
	FieldCategorySpecific      = "category_specific"
	FieldEnhancementMetadata   = "enhancement_metadata"
)

// Record is one personality profile document. Keys beyond the ones this
// package reads are opaque and preserved as-is.
type Record map[string]any

// ID returns the record's id field, or "" if absent.
func (r Record) ID() string {
	return getString(r, "id", "")
}

// Name returns the record's name field, or "" if absent.
func (r Record) Name() string {
	return getString(r, "name", "")
}

// Category returns the explicit category field, or "" if absent.
func (r Record) Category() string {
	return getString(r, "category", "")
}

// Tags returns the record's tag list. Absent or malformed tags are an
// empty list, never an error.
func (r Record) Tags() []string {
	return getStringSlice(r, "tags")
}

// Contributions returns the free-text contributions list in input order.
func (r Record) Contributions() []string {
	return getStringSlice(r, "contributions")
}

// Enhanced reports whether the record already carries derived traits.
// The behavioral_traits field is the idempotence marker for enrichment.
func (r Record) Enhanced() bool {
	_, ok := r[FieldBehavioralTraits]
	return ok
}

// HasOcean reports whether a non-empty ocean vector is present on the
// input. Used as a provenance flag in enhancement_metadata.
func (r Record) HasOcean() bool {
	return len(getMap(r, "ocean")) > 0
}

// HasLinguisticProfile reports whether a non-empty linguistic_profile is
// present on the input.
func (r Record) HasLinguisticProfile() bool {
	return len(getMap(r, "linguistic_profile")) > 0
}

// SentenceLength returns linguistic_profile.syntax_patterns.sentence_length,
// defaulting to "medium" when any level of the nesting is absent.
func (r Record) SentenceLength() string {
	syntax := getMap(getMap(r, "linguistic_profile"), "syntax_patterns")
	return getString(syntax, "sentence_length", "medium")
}

// Clone returns a shallow copy of the record. Derived groups are attached
// to the copy so enrichment never mutates its input.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Merge returns a shallow merge of r and fields; values in fields win on
// key collision.
func (r Record) Merge(fields map[string]any) Record {
	out := r.Clone()
	for k, v := range fields {
		out[k] = v
	}
	return out
}

// SlugID derives a lowercase id slug from a display name: non-alphanumeric
// characters are dropped, runs of spaces and hyphens collapse to a single
// underscore, and the result is capped at 50 characters.
func SlugID(name string) string {
	var b strings.Builder
	lastSep := true // suppress a leading separator
	for _, c := range strings.ToLower(name) {
		switch {
		case c >= 'a' && c <= 'z' || c >= '0' && c <= '9':
			b.WriteRune(c)
			lastSep = false
		case c == ' ' || c == '-' || c == '_':
			if !lastSep {
				b.WriteByte('_')
				lastSep = true
			}
		}
	}
	s := strings.TrimSuffix(b.String(), "_")
	if len(s) > 50 {
		s = s[:50]
	}
	return s
}

// getString extracts a string field, returning defaultVal on absence or
// wrong type.
func getString(m map[string]any, key, defaultVal string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return defaultVal
}

// getStringSlice extracts a string list, tolerating the []any shape JSON
// decoding produces. Non-string elements are dropped.
func getStringSlice(m map[string]any, key string) []string {
	if v, ok := m[key].([]string); ok {
		return v
	}
	if v, ok := m[key].([]any); ok {
		result := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		return result
	}
	return nil
}

// getMap extracts a nested map field, or nil.
func getMap(m map[string]any, key string) map[string]any {
	if v, ok := m[key].(map[string]any); ok {
		return v
	}
	return nil
}

// getFloat extracts a numeric field, tolerating int for records built in
// code rather than decoded from JSON.
func getFloat(m map[string]any, key string, defaultVal float64) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return defaultVal
}
