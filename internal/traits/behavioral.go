package traits

// BehavioralTraits is the derived behavioral attribute group. Every list
// is deduplicated in first-seen order and capped.
type BehavioralTraits struct {
	CoreValues         []string `json:"core_values"`
	PrimaryMotivations []string `json:"primary_motivations"`
	Fears              []string `json:"fears"`
	Strengths          []string `json:"strengths"`
	Weaknesses         []string `json:"weaknesses"`
	Habits             []string `json:"habits"`
	Quirks             []string `json:"quirks"`
}

// List caps per field.
const (
	capCoreValues         = 5
	capPrimaryMotivations = 4
	capFears              = 4
	capStrengths          = 5
	capWeaknesses         = 3
	capHabits             = 4
	capQuirks             = 3
)

// behavioralAdditions is one category's fixed candidate contribution,
// applied after the OCEAN-driven candidates.
type behavioralAdditions struct {
	coreValues         []string
	primaryMotivations []string
	fears              []string
	strengths          []string
	weaknesses         []string
	habits             []string
	quirks             []string
}

// categoryBehavioral lists the six categories that contribute extra
// behavioral candidates. Other categories add nothing here.
var categoryBehavioral = map[string]behavioralAdditions{
	"scientist": {
		coreValues:         []string{"empirical_truth", "methodological_rigor", "knowledge_advancement"},
		primaryMotivations: []string{"understanding_mechanisms", "solving_complex_problems"},
		habits:             []string{"systematic_observation", "hypothesis_testing", "peer_review_engagement"},
		quirks:             []string{"detail_obsession", "skeptical_questioning"},
	},
	"artist": {
		coreValues:         []string{"aesthetic_beauty", "emotional_expression", "cultural_impact"},
		primaryMotivations: []string{"creative_self_expression", "aesthetic_innovation"},
		habits:             []string{"constant_creation", "aesthetic_sensitivity", "inspiration_seeking"},
		quirks:             []string{"unconventional_lifestyle", "intense_emotional_expression"},
	},
	"philosopher": {
		coreValues:         []string{"rational_inquiry", "wisdom", "universal_principles"},
		primaryMotivations: []string{"understanding_existence", "logical_consistency"},
		habits:             []string{"deep_contemplation", "logical_analysis", "concept_refinement"},
		quirks:             []string{"abstract_focus", "questioning_assumptions"},
	},
	"statesman": {
		coreValues:         []string{"public_service", "justice", "collective_welfare"},
		primaryMotivations: []string{"social_change", "legacy_building"},
		habits:             []string{"strategic_planning", "coalition_building", "public_speaking"},
		strengths:          []string{"persuasion", "strategic_thinking", "crisis_management"},
	},
	"musician": {
		coreValues:         []string{"artistic_authenticity", "emotional_resonance", "cultural_expression"},
		primaryMotivations: []string{"emotional_connection", "artistic_legacy"},
		habits:             []string{"daily_practice", "improvisation", "collaboration"},
		quirks:             []string{"rhythmic_sensitivity", "emotional_intensity"},
	},
	"athlete": {
		coreValues:         []string{"excellence", "competition", "physical_mastery"},
		primaryMotivations: []string{"peak_performance", "victory"},
		habits:             []string{"rigorous_training", "performance_analysis", "mental_preparation"},
		strengths:          []string{"discipline", "focus", "resilience"},
	},
}

// DeriveBehavioral builds the behavioral_traits group. OCEAN-driven
// candidates are collected first (factor by factor, high band then low
// band), the category contribution last, so under cap pressure the
// factor-driven candidates survive.
func DeriveBehavioral(in Inputs) BehavioralTraits {
	s := in.Scores

	coreValues := newTraitList(capCoreValues)
	primaryMotivations := newTraitList(capPrimaryMotivations)
	fears := newTraitList(capFears)
	strengths := newTraitList(capStrengths)
	weaknesses := newTraitList(capWeaknesses)
	habits := newTraitList(capHabits)
	quirks := newTraitList(capQuirks)

	switch {
	case s.Openness >= 70:
		coreValues.add("creativity", "intellectual_curiosity", "aesthetic_appreciation")
		primaryMotivations.add("novelty_seeking", "intellectual_exploration")
		strengths.add("adaptability", "creative_thinking", "pattern_recognition")
		habits.add("constant_learning", "experimenting_with_ideas")
		quirks.add("unconventional_perspectives", "abstract_thinking")
	case s.Openness <= 30:
		coreValues.add("tradition", "stability", "practicality")
		fears.add("uncertainty", "radical_change")
		strengths.add("consistency", "practical_focus")
		weaknesses.add("resistance_to_change", "limited_perspective")
	}

	switch {
	case s.Conscientiousness >= 70:
		coreValues.add("discipline", "responsibility", "achievement")
		primaryMotivations.add("goal_achievement", "excellence")
		strengths.add("organization", "persistence", "reliability")
		habits.add("systematic_planning", "quality_control")
	case s.Conscientiousness <= 30:
		weaknesses.add("procrastination", "inconsistency")
		quirks.add("spontaneous_decisions", "flexible_approach")
	}

	switch {
	case s.Extraversion >= 70:
		coreValues.add("social_connection", "influence", "energy")
		primaryMotivations.add("social_impact", "recognition")
		strengths.add("communication", "leadership", "enthusiasm")
		habits.add("networking", "public_engagement")
	case s.Extraversion <= 30:
		coreValues.add("solitude", "deep_reflection", "authenticity")
		strengths.add("deep_thinking", "focused_attention", "self_awareness")
		habits.add("solitary_work", "intensive_study")
		quirks.add("preference_for_written_communication", "small_groups")
	}

	switch {
	case s.Agreeableness >= 70:
		coreValues.add("compassion", "cooperation", "harmony")
		primaryMotivations.add("helping_others", "social_harmony")
		strengths.add("empathy", "collaboration", "diplomacy")
		fears.add("conflict", "causing_harm")
	case s.Agreeableness <= 30:
		coreValues.add("independence", "truth", "efficiency")
		strengths.add("objectivity", "decisive_action", "competitiveness")
		weaknesses.add("interpersonal_friction", "inflexibility")
	}

	// Neuroticism uses a lower high cut than the other factors.
	switch {
	case s.Neuroticism >= 60:
		fears.add("failure", "rejection", "loss_of_control")
		weaknesses.add("emotional_volatility", "stress_sensitivity")
		quirks.add("perfectionist_tendencies", "heightened_awareness")
	case s.Neuroticism <= 30:
		strengths.add("emotional_stability", "stress_resilience", "confidence")
		habits.add("calm_decision_making", "steady_performance")
	}

	if extra, ok := categoryBehavioral[in.Category]; ok {
		coreValues.add(extra.coreValues...)
		primaryMotivations.add(extra.primaryMotivations...)
		fears.add(extra.fears...)
		strengths.add(extra.strengths...)
		weaknesses.add(extra.weaknesses...)
		habits.add(extra.habits...)
		quirks.add(extra.quirks...)
	}

	return BehavioralTraits{
		CoreValues:         coreValues.values(),
		PrimaryMotivations: primaryMotivations.values(),
		Fears:              fears.values(),
		Strengths:          strengths.values(),
		Weaknesses:         weaknesses.values(),
		Habits:             habits.values(),
		Quirks:             quirks.values(),
	}
}
