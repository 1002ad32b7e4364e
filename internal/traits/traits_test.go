package traits

import (
	"reflect"
	"testing"

	"github.com/personakit/persona/internal/profile"
)

// neutral returns inputs with every score at the midpoint and no
// category, the baseline every rule table falls through from.
func neutral() Inputs {
	return Inputs{
		Scores:         profile.Scores{Openness: 50, Conscientiousness: 50, Extraversion: 50, Agreeableness: 50, Neuroticism: 50},
		SentenceLength: "medium",
	}
}

func TestDeriveCognitive(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Inputs)
		want   CognitiveStyle
	}{
		{
			"neutral defaults",
			func(in *Inputs) {},
			CognitiveStyle{
				ThinkingPattern:       "systematic",
				LearningStyle:         "auditory",
				ProblemSolving:        "creative",
				DecisionMaking:        "intuitive",
				InformationProcessing: "big-picture",
				CreativityLevel:       "moderate",
			},
		},
		{
			"high openness baseline",
			func(in *Inputs) { in.Scores.Openness = 65 },
			CognitiveStyle{
				ThinkingPattern:       "analytical",
				LearningStyle:         "visual",
				ProblemSolving:        "creative",
				DecisionMaking:        "intuitive",
				InformationProcessing: "big-picture",
				CreativityLevel:       "moderate",
			},
		},
		{
			"artist override beats low openness",
			func(in *Inputs) { in.Category = "artist"; in.Scores.Openness = 20 },
			CognitiveStyle{
				ThinkingPattern:       "intuitive",
				LearningStyle:         "auditory",
				ProblemSolving:        "creative",
				DecisionMaking:        "intuitive",
				InformationProcessing: "big-picture",
				CreativityLevel:       "exceptional",
			},
		},
		{
			"scientist with high conscientiousness",
			func(in *Inputs) { in.Category = "scientist"; in.Scores.Conscientiousness = 75 },
			CognitiveStyle{
				ThinkingPattern:       "analytical",
				LearningStyle:         "kinesthetic",
				ProblemSolving:        "methodical",
				DecisionMaking:        "deliberate",
				InformationProcessing: "detail-focused",
				CreativityLevel:       "high",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := neutral()
			tt.mutate(&in)
			if got := DeriveCognitive(in); got != tt.want {
				t.Errorf("DeriveCognitive() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDeriveSocialBands(t *testing.T) {
	tests := []struct {
		name         string
		extraversion float64
		want         string
	}{
		{"low is introverted", 20, "introverted"},
		{"just below band", 39, "introverted"},
		{"band low edge", 40, "ambivert"},
		{"band high edge", 60, "ambivert"},
		{"above band", 61, "extroverted"},
		{"high", 90, "extroverted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := neutral()
			in.Scores.Extraversion = tt.extraversion
			if got := DeriveSocial(in).InteractionStyle; got != tt.want {
				t.Errorf("InteractionStyle at E=%v = %q, want %q", tt.extraversion, got, tt.want)
			}
		})
	}
}

func TestDeriveSocialOverrides(t *testing.T) {
	in := neutral()
	in.Category = "statesman"
	in.Scores.Extraversion = 80
	got := DeriveSocial(in)
	if got.LeadershipStyle != "transformational" {
		t.Errorf("LeadershipStyle = %q, want transformational", got.LeadershipStyle)
	}
	if got.InfluenceStyle != "inspirational" {
		t.Errorf("InfluenceStyle = %q, want inspirational", got.InfluenceStyle)
	}
	if got.TrustBuilding != "quick" {
		t.Errorf("TrustBuilding = %q, want quick", got.TrustBuilding)
	}

	in.Scores.Extraversion = 40
	if got := DeriveSocial(in).LeadershipStyle; got != "strategic" {
		t.Errorf("LeadershipStyle for reserved statesman = %q, want strategic", got)
	}
}

func TestDeriveCommunication(t *testing.T) {
	t.Run("sentence length hint", func(t *testing.T) {
		in := neutral()
		in.SentenceLength = "long"
		if got := DeriveCommunication(in).VerbalStyle; got != "elaborate" {
			t.Errorf("VerbalStyle = %q, want elaborate", got)
		}
		in.SentenceLength = "short"
		if got := DeriveCommunication(in).VerbalStyle; got != "concise" {
			t.Errorf("VerbalStyle = %q, want concise", got)
		}
	})

	t.Run("comedian humor override", func(t *testing.T) {
		in := neutral()
		in.Category = "comedian"
		in.Scores.Extraversion = 10
		if got := DeriveCommunication(in).HumorUsage; got != "constant" {
			t.Errorf("HumorUsage = %q, want constant", got)
		}
	})

	t.Run("poet storytelling override", func(t *testing.T) {
		in := neutral()
		in.Category = "poet"
		if got := DeriveCommunication(in).Storytelling; got != "personal" {
			t.Errorf("Storytelling = %q, want personal", got)
		}
	})

	t.Run("concise leader beats long sentences", func(t *testing.T) {
		in := neutral()
		in.Category = "leader"
		in.SentenceLength = "long"
		if got := DeriveCommunication(in).VerbalStyle; got != "concise" {
			t.Errorf("VerbalStyle = %q, want concise", got)
		}
	})
}

func TestDeriveWork(t *testing.T) {
	t.Run("adaptive planning wins over structured", func(t *testing.T) {
		in := neutral()
		in.Scores.Conscientiousness = 75
		in.Scores.Openness = 85
		got := DeriveWork(in)
		if got.PlanningStyle != "adaptive" {
			t.Errorf("PlanningStyle = %q, want adaptive", got.PlanningStyle)
		}
		if got.AttentionDetail != "big-picture" {
			t.Errorf("AttentionDetail = %q, want big-picture", got.AttentionDetail)
		}
		if got.QualityStandards != "experimental" {
			t.Errorf("QualityStandards = %q, want experimental", got.QualityStandards)
		}
	})

	t.Run("athlete pace override", func(t *testing.T) {
		in := neutral()
		in.Category = "athlete"
		in.Scores.Conscientiousness = 90
		if got := DeriveWork(in).Pace; got != "intense" {
			t.Errorf("Pace = %q, want intense", got)
		}
	})

	t.Run("musician improvises", func(t *testing.T) {
		in := neutral()
		in.Category = "musician"
		in.Scores.Conscientiousness = 90
		if got := DeriveWork(in).ExecutionStyle; got != "improvisational" {
			t.Errorf("ExecutionStyle = %q, want improvisational", got)
		}
	})
}

func TestDeriveEmotional(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Inputs)
		field  func(EmotionalProfile) string
		want   string
	}{
		{
			"volatile at high neuroticism",
			func(in *Inputs) { in.Scores.Neuroticism = 75 },
			func(p EmotionalProfile) string { return p.EmotionalStability },
			"volatile",
		},
		{
			"stable at low neuroticism",
			func(in *Inputs) { in.Scores.Neuroticism = 35 },
			func(p EmotionalProfile) string { return p.EmotionalStability },
			"stable",
		},
		{
			"freeze beats flow",
			func(in *Inputs) { in.Scores.Agreeableness = 80; in.Scores.Neuroticism = 10 },
			func(p EmotionalProfile) string { return p.StressResponse },
			"freeze",
		},
		{
			"flight for strong introverts",
			func(in *Inputs) { in.Scores.Extraversion = 20 },
			func(p EmotionalProfile) string { return p.StressResponse },
			"flight",
		},
		{
			"activist empathy override",
			func(in *Inputs) { in.Category = "activist"; in.Scores.Agreeableness = 10 },
			func(p EmotionalProfile) string { return p.EmpathyLevel },
			"exceptional",
		},
		{
			"explorer resilience beats fragile",
			func(in *Inputs) { in.Category = "explorer"; in.Scores.Neuroticism = 90 },
			func(p EmotionalProfile) string { return p.Resilience },
			"antifragile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := neutral()
			tt.mutate(&in)
			if got := tt.field(DeriveEmotional(in)); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDeriveBehavioralCapsAndDedup(t *testing.T) {
	in := neutral()
	// High on everything positive plus a category contribution: far more
	// candidates than the caps allow.
	in.Category = "scientist"
	in.Scores = profile.Scores{Openness: 90, Conscientiousness: 90, Extraversion: 90, Agreeableness: 90, Neuroticism: 10}

	got := DeriveBehavioral(in)

	checks := []struct {
		name  string
		list  []string
		limit int
	}{
		{"core_values", got.CoreValues, 5},
		{"primary_motivations", got.PrimaryMotivations, 4},
		{"fears", got.Fears, 4},
		{"strengths", got.Strengths, 5},
		{"weaknesses", got.Weaknesses, 3},
		{"habits", got.Habits, 4},
		{"quirks", got.Quirks, 3},
	}
	for _, c := range checks {
		if len(c.list) > c.limit {
			t.Errorf("%s has %d entries, cap is %d", c.name, len(c.list), c.limit)
		}
		seen := make(map[string]bool)
		for _, v := range c.list {
			if seen[v] {
				t.Errorf("%s contains duplicate %q", c.name, v)
			}
			seen[v] = true
		}
	}

	// First-seen order: openness candidates precede conscientiousness.
	wantCore := []string{"creativity", "intellectual_curiosity", "aesthetic_appreciation", "discipline", "responsibility"}
	if !reflect.DeepEqual(got.CoreValues, wantCore) {
		t.Errorf("CoreValues = %v, want %v", got.CoreValues, wantCore)
	}
}

func TestDeriveBehavioralCategoryCandidates(t *testing.T) {
	in := neutral()
	in.Category = "athlete"
	got := DeriveBehavioral(in)

	wantCore := []string{"excellence", "competition", "physical_mastery"}
	if !reflect.DeepEqual(got.CoreValues, wantCore) {
		t.Errorf("CoreValues = %v, want %v", got.CoreValues, wantCore)
	}
	if len(got.Fears) != 0 {
		t.Errorf("Fears = %v, want empty", got.Fears)
	}
}

func TestDeriveBehavioralUnknownCategory(t *testing.T) {
	in := neutral()
	in.Category = "blockchain"
	got := DeriveBehavioral(in)
	if len(got.CoreValues) != 0 || len(got.Habits) != 0 {
		t.Errorf("unknown category added candidates: %+v", got)
	}
}

func TestDeriveLegacy(t *testing.T) {
	t.Run("contributions capped in order", func(t *testing.T) {
		in := neutral()
		in.Contributions = []string{"A", "B", "C", "D", "E"}
		got := DeriveLegacy(in)
		want := []string{"A", "B", "C", "D"}
		if !reflect.DeepEqual(got.PrimaryContributions, want) {
			t.Errorf("PrimaryContributions = %v, want %v", got.PrimaryContributions, want)
		}
		if got.InnovationStyle != "revolutionary" {
			t.Errorf("InnovationStyle = %q, want revolutionary", got.InnovationStyle)
		}
	})

	t.Run("generic domains for unknown category", func(t *testing.T) {
		got := DeriveLegacy(neutral())
		want := []string{"cultural_influence", "human_knowledge", "social_progress"}
		if !reflect.DeepEqual(got.InfluenceDomains, want) {
			t.Errorf("InfluenceDomains = %v, want %v", got.InfluenceDomains, want)
		}
		if got.InnovationStyle != "incremental" {
			t.Errorf("InnovationStyle = %q, want incremental", got.InnovationStyle)
		}
		if got.CulturalImpact != "regional" {
			t.Errorf("CulturalImpact = %q, want regional", got.CulturalImpact)
		}
	})

	t.Run("universal impact for prolific philosophers", func(t *testing.T) {
		in := neutral()
		in.Category = "philosopher"
		in.Contributions = []string{"A", "B"}
		got := DeriveLegacy(in)
		if got.CulturalImpact != "universal" {
			t.Errorf("CulturalImpact = %q, want universal", got.CulturalImpact)
		}
		if got.KnowledgeSharing != "evangelical" {
			t.Errorf("KnowledgeSharing = %q, want evangelical", got.KnowledgeSharing)
		}
		if got.MentorshipApproach != "formal" {
			t.Errorf("MentorshipApproach = %q, want formal", got.MentorshipApproach)
		}
	})

	t.Run("name allowlist", func(t *testing.T) {
		in := neutral()
		in.Name = "Mozart"
		if got := DeriveLegacy(in).CulturalImpact; got != "global" {
			t.Errorf("CulturalImpact = %q, want global", got)
		}
	})
}

func TestCategoryTemplate(t *testing.T) {
	got := CategoryTemplate("scientist")
	if got["methodology_focus"] != "empirical_validation" {
		t.Errorf("scientist template = %v", got)
	}

	def := CategoryTemplate("gaming")
	if def["core_approach"] != "individual_excellence" {
		t.Errorf("default template = %v", def)
	}

	// Returned maps are copies; mutating one must not leak into the table.
	got["methodology_focus"] = "mutated"
	if again := CategoryTemplate("scientist"); again["methodology_focus"] != "empirical_validation" {
		t.Error("CategoryTemplate leaked internal state")
	}
}

// Scenario from the enrichment contract: a high-openness, organized,
// introverted scientist.
func TestScientistScenario(t *testing.T) {
	in := Inputs{
		Category:       "scientist",
		Scores:         profile.Scores{Openness: 85, Conscientiousness: 75, Extraversion: 20, Agreeableness: 55, Neuroticism: 25},
		SentenceLength: "medium",
		Contributions:  []string{"A", "B", "C", "D", "E"},
		Name:           "ada",
	}

	if got := DeriveCognitive(in).ThinkingPattern; got != "analytical" {
		t.Errorf("ThinkingPattern = %q, want analytical", got)
	}
	if got := DeriveWork(in).PlanningStyle; got != "adaptive" {
		t.Errorf("PlanningStyle = %q, want adaptive", got)
	}
	legacy := DeriveLegacy(in)
	if !reflect.DeepEqual(legacy.PrimaryContributions, []string{"A", "B", "C", "D"}) {
		t.Errorf("PrimaryContributions = %v", legacy.PrimaryContributions)
	}
	if legacy.InnovationStyle != "paradigm-shifting" {
		t.Errorf("InnovationStyle = %q, want paradigm-shifting", legacy.InnovationStyle)
	}
}

func TestTraitListTruncation(t *testing.T) {
	l := newTraitList(3)
	l.add("a", "b")
	l.add("b", "c", "d", "e")
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(l.values(), want) {
		t.Errorf("values() = %v, want %v", l.values(), want)
	}
}
