package traits

// LegacyImpact is the derived legacy attribute group. Unlike the other
// groups it reads the contributions list and the persona's display name.
type LegacyImpact struct {
	PrimaryContributions []string `json:"primary_contributions"`
	InfluenceDomains     []string `json:"influence_domains"`
	InnovationStyle      string   `json:"innovation_style"`
	MentorshipApproach   string   `json:"mentorship_approach"`
	KnowledgeSharing     string   `json:"knowledge_sharing"`
	CulturalImpact       string   `json:"cultural_impact"`
}

// maxPrimaryContributions caps the contribution excerpt; input order is
// preserved and duplicates are kept.
const maxPrimaryContributions = 4

// influenceDomains maps a category to its fixed three influence domains.
var influenceDomains = map[string][]string{
	"scientist":   {"scientific_methodology", "technological_advancement", "education"},
	"philosopher": {"intellectual_discourse", "ethical_frameworks", "academic_thought"},
	"artist":      {"cultural_expression", "aesthetic_standards", "creative_techniques"},
	"writer":      {"literary_tradition", "language_evolution", "cultural_narrative"},
	"statesman":   {"political_systems", "social_justice", "international_relations"},
	"musician":    {"musical_evolution", "cultural_identity", "artistic_expression"},
	"religious":   {"spiritual_practice", "moral_philosophy", "community_guidance"},
	"athlete":     {"sports_excellence", "physical_culture", "competitive_standards"},
}

var genericInfluenceDomains = []string{"cultural_influence", "human_knowledge", "social_progress"}

// globalImpactNames is the fixed allowlist of display names whose
// cultural impact is rated "global" regardless of category.
var globalImpactNames = map[string]bool{
	"Einstein":    true,
	"Shakespeare": true,
	"Mozart":      true,
	"Gandhi":      true,
}

func DeriveLegacy(in Inputs) LegacyImpact {
	primary := in.Contributions
	if len(primary) > maxPrimaryContributions {
		primary = primary[:maxPrimaryContributions]
	}
	if primary == nil {
		primary = []string{}
	}

	domains, ok := influenceDomains[in.Category]
	if !ok {
		domains = genericInfluenceDomains
	}

	manyContributions := func(Inputs) bool { return len(primary) >= 3 }

	return LegacyImpact{
		PrimaryContributions: primary,
		InfluenceDomains:     domains,

		InnovationStyle: pick(in, []rule{
			{categoryIn("scientist", "artist"), "paradigm-shifting"},
			{categoryIn("philosopher", "religious"), "foundational"},
			{manyContributions, "revolutionary"},
		}, "incremental"),

		MentorshipApproach: pick(in, []rule{
			{categoryIn("religious", "leader"), "transformational"},
			{categoryIn("scientist", "philosopher"), "formal"},
		}, "inspirational"),

		KnowledgeSharing: pick(in, []rule{
			{categoryIn("religious", "philosopher"), "evangelical"},
			{categoryIn("scientist", "educator"), "open"},
		}, "selective"),

		CulturalImpact: pick(in, []rule{
			{func(in Inputs) bool {
				return categoryIn("religious", "philosopher")(in) && len(primary) >= 2
			}, "universal"},
			{func(in Inputs) bool { return globalImpactNames[in.Name] }, "global"},
		}, "regional"),
	}
}
