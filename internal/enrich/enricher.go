// Package enrich derives psychological trait groups for persona
// documents and applies them in place. Derivation is deterministic:
// the same document always produces the same traits.
package enrich

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/personakit/persona/internal/category"
	"github.com/personakit/persona/internal/logging"
	"github.com/personakit/persona/internal/profile"
	"github.com/personakit/persona/internal/traits"
)

// DateLayout is the format of enhancement_metadata.enhanced_date.
const DateLayout = time.RFC3339

// Enricher derives the trait groups for a persona document. Documents
// that already carry behavioral_traits pass through untouched.
type Enricher struct {
	resolver *category.Resolver
	version  string
	logger   *slog.Logger
	traces   *logging.TraceLogger

	// now is swappable for deterministic tests.
	now func() time.Time
}

// New creates an Enricher. resolver and traces may be nil; logger must
// not be.
func New(resolver *category.Resolver, version string, logger *slog.Logger, traces *logging.TraceLogger) *Enricher {
	return &Enricher{
		resolver: resolver,
		version:  version,
		logger:   logger,
		traces:   traces,
		now:      time.Now,
	}
}

// Enrich returns the document with all trait groups applied, plus
// whether anything was added. An already-enhanced document is returned
// unchanged. The input is never mutated.
//
// A panic inside derivation is recovered: the original document comes
// back unchanged and the failure is logged.
func (e *Enricher) Enrich(rec profile.Record) (profile.Record, bool) {
	if rec.Enhanced() {
		e.logger.Debug("already enhanced, skipping", "persona", rec.Name())
		e.traces.Log(logging.TraceEvent{
			Persona: rec.Name(),
			ID:      rec.ID(),
			Outcome: "already_enhanced",
		})
		return rec, false
	}

	fields, err := e.derive(rec)
	if err != nil {
		e.logger.Warn("trait derivation failed", "persona", rec.Name(), "error", err)
		e.traces.Log(logging.TraceEvent{
			Persona: rec.Name(),
			ID:      rec.ID(),
			Outcome: "derivation_failed",
			Error:   err.Error(),
		})
		return rec, false
	}

	e.traces.Log(logging.TraceEvent{
		Persona:  rec.Name(),
		ID:       rec.ID(),
		Category: e.category(rec),
		Outcome:  "enriched",
	})

	return rec.Merge(fields), true
}

// derive computes every trait group for rec. Recovery here keeps one
// malformed document from aborting a batch run.
func (e *Enricher) derive(rec profile.Record) (fields map[string]any, err error) {
	defer func() {
		if r := recover(); r != nil {
			fields = nil
			err = fmt.Errorf("derivation panic: %v", r)
		}
	}()

	cat := e.category(rec)
	in := traits.Inputs{
		Category:       cat,
		Scores:         rec.Ocean(),
		SentenceLength: rec.SentenceLength(),
		Contributions:  rec.Contributions(),
		Name:           rec.Name(),
	}

	return map[string]any{
		profile.FieldBehavioralTraits:      traits.DeriveBehavioral(in),
		profile.FieldCognitiveStyle:        traits.DeriveCognitive(in),
		profile.FieldSocialDynamics:        traits.DeriveSocial(in),
		profile.FieldCommunicationPatterns: traits.DeriveCommunication(in),
		profile.FieldWorkMethodology:       traits.DeriveWork(in),
		profile.FieldEmotionalProfile:      traits.DeriveEmotional(in),
		profile.FieldLegacyImpact:          traits.DeriveLegacy(in),
		profile.FieldCategorySpecific:      traits.CategoryTemplate(cat),
		profile.FieldEnhancementMetadata: map[string]any{
			"enhanced_date":       e.now().UTC().Format(DateLayout),
			"enhancement_version": e.version,
			"category_used":       cat,
			"ocean_based":         rec.HasOcean(),
			"linguistic_based":    rec.HasLinguisticProfile(),
		},
	}, nil
}

// category resolves the effective trait category for rec.
func (e *Enricher) category(rec profile.Record) string {
	return e.resolver.Resolve(rec.ID(), rec.Category())
}
