// Package traits derives secondary personality attribute groups from a
// small set of primary inputs: a five-factor (OCEAN) score vector, a
// category label, a sentence-length hint, and a contributions list.
// All derivations are pure and deterministic.
package traits

import (
	"github.com/personakit/persona/internal/profile"
)

// Inputs carries everything a derivation can read. Score defaults (50 for
// absent OCEAN fields, "medium" for a missing sentence-length hint) are
// the caller's responsibility; see profile.Record accessors.
type Inputs struct {
	Category       string
	Scores         profile.Scores
	SentenceLength string
	Contributions  []string
	Name           string
}

// rule pairs a predicate with the value chosen when it matches.
// Scalar fields are derived by evaluating an ordered rule table, first
// match wins. Category rules are listed before threshold rules so a
// category override always beats the OCEAN baseline.
type rule struct {
	when  func(Inputs) bool
	value string
}

// pick evaluates rules in order and returns the first matching value,
// or fallback if none match.
func pick(in Inputs, rules []rule, fallback string) string {
	for _, r := range rules {
		if r.when(in) {
			return r.value
		}
	}
	return fallback
}

// categoryIn matches when the input category is one of labels.
func categoryIn(labels ...string) func(Inputs) bool {
	return func(in Inputs) bool {
		for _, l := range labels {
			if in.Category == l {
				return true
			}
		}
		return false
	}
}
