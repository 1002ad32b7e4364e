package traits

// categoryTemplates holds the fixed category_specific group per category:
// four static fields each, no score dependence. Unknown categories get
// defaultTemplate.
var categoryTemplates = map[string]map[string]string{
	"scientist": {
		"methodology_focus":        "empirical_validation",
		"research_approach":        "hypothesis_driven",
		"collaboration_preference": "peer_review",
		"innovation_driver":        "curiosity_driven",
	},
	"philosopher": {
		"reasoning_style":    "systematic_analysis",
		"inquiry_method":     "socratic_questioning",
		"truth_seeking":      "rational_discourse",
		"wisdom_application": "practical_ethics",
	},
	"artist": {
		"creative_process":     "intuitive_expression",
		"aesthetic_philosophy": "beauty_as_truth",
		"inspiration_source":   "emotional_experience",
		"artistic_legacy":      "cultural_transformation",
	},
	"writer": {
		"narrative_style":     "character_driven",
		"language_mastery":    "literary_innovation",
		"thematic_focus":      "human_condition",
		"cultural_reflection": "social_commentary",
	},
	"statesman": {
		"governance_style":  "consensus_building",
		"policy_approach":   "pragmatic_idealism",
		"crisis_management": "calm_resolution",
		"public_service":    "collective_welfare",
	},
	"leader": {
		"leadership_philosophy": "servant_leadership",
		"decision_framework":    "stakeholder_inclusive",
		"change_management":     "transformational",
		"team_building":         "empowerment_focused",
	},
	"religious": {
		"spiritual_practice": "contemplative_discipline",
		"teaching_method":    "experiential_wisdom",
		"community_role":     "moral_guidance",
		"transcendence_path": "inner_transformation",
	},
	"musician": {
		"musical_expression":     "emotional_authenticity",
		"performance_style":      "audience_connection",
		"creative_collaboration": "artistic_synergy",
		"cultural_influence":     "generational_impact",
	},
	"composer": {
		"compositional_approach": "structural_innovation",
		"harmonic_philosophy":    "emotional_architecture",
		"musical_legacy":         "stylistic_evolution",
		"technical_mastery":      "theoretical_foundation",
	},
	"poet": {
		"poetic_voice":          "authentic_expression",
		"metaphorical_thinking": "symbolic_language",
		"rhythm_sensitivity":    "musical_language",
		"emotional_resonance":   "universal_themes",
	},
	"filmmaker": {
		"visual_storytelling":  "cinematic_language",
		"narrative_structure":  "emotional_journey",
		"artistic_vision":      "cultural_reflection",
		"technical_innovation": "medium_evolution",
	},
	"comedian": {
		"humor_philosophy":    "truth_through_laughter",
		"observational_skill": "social_commentary",
		"timing_mastery":      "comedic_precision",
		"audience_connection": "shared_humanity",
	},
	"athlete": {
		"performance_mindset": "excellence_pursuit",
		"training_philosophy": "disciplined_preparation",
		"competitive_spirit":  "victory_driven",
		"physical_mastery":    "mind_body_integration",
	},
	"explorer": {
		"discovery_drive":     "frontier_pushing",
		"risk_tolerance":      "calculated_courage",
		"adaptability":        "environmental_mastery",
		"knowledge_expansion": "human_understanding",
	},
	"mathematician": {
		"logical_framework":        "abstract_reasoning",
		"pattern_recognition":      "mathematical_beauty",
		"proof_methodology":        "rigorous_validation",
		"theoretical_contribution": "knowledge_foundation",
	},
	"historian": {
		"historical_method":      "evidence_analysis",
		"narrative_construction": "factual_storytelling",
		"temporal_perspective":   "long_term_patterns",
		"cultural_preservation":  "memory_keeper",
	},
	"tech_leader": {
		"innovation_philosophy": "technological_progress",
		"problem_solving":       "systematic_engineering",
		"scalability_thinking":  "global_impact",
		"future_vision":         "technological_transformation",
	},
	"activist": {
		"social_mission":     "justice_pursuit",
		"change_strategy":    "grassroots_mobilization",
		"resistance_methods": "nonviolent_action",
		"community_building": "collective_empowerment",
	},
	"entrepreneur": {
		"business_philosophy": "value_creation",
		"risk_management":     "calculated_ventures",
		"innovation_drive":    "market_disruption",
		"leadership_style":    "visionary_execution",
	},
}

var defaultTemplate = map[string]string{
	"core_approach":       "individual_excellence",
	"contribution_method": "specialized_expertise",
	"influence_style":     "domain_leadership",
	"legacy_building":     "knowledge_advancement",
}

// CategoryTemplate returns a copy of the category_specific template for
// the given category, falling back to the default template.
func CategoryTemplate(category string) map[string]string {
	tmpl, ok := categoryTemplates[category]
	if !ok {
		tmpl = defaultTemplate
	}
	out := make(map[string]string, len(tmpl))
	for k, v := range tmpl {
		out[k] = v
	}
	return out
}
