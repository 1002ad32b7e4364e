package traits

// EmotionalProfile is the derived emotional attribute group, driven by
// neuroticism/agreeableness/extraversion at 30/40/50/60/70 splits.
type EmotionalProfile struct {
	EmotionalStability    string `json:"emotional_stability"`
	StressResponse        string `json:"stress_response"`
	EmpathyLevel          string `json:"empathy_level"`
	SelfAwareness         string `json:"self_awareness"`
	EmotionalIntelligence string `json:"emotional_intelligence"`
	Resilience            string `json:"resilience"`
}

func DeriveEmotional(in Inputs) EmotionalProfile {
	n := func(in Inputs) float64 { return in.Scores.Neuroticism }
	a := func(in Inputs) float64 { return in.Scores.Agreeableness }
	e := func(in Inputs) float64 { return in.Scores.Extraversion }

	return EmotionalProfile{
		EmotionalStability: pick(in, []rule{
			{func(in Inputs) bool { return n(in) >= 70 }, "volatile"},
			{func(in Inputs) bool { return n(in) <= 40 }, "stable"},
		}, "variable"),

		StressResponse: pick(in, []rule{
			{func(in Inputs) bool { return a(in) >= 70 }, "freeze"},
			{func(in Inputs) bool { return e(in) <= 30 }, "flight"},
			{func(in Inputs) bool { return n(in) <= 30 }, "flow"},
		}, "fight"),

		EmpathyLevel: pick(in, []rule{
			{categoryIn("religious", "activist"), "exceptional"},
			{func(in Inputs) bool { return a(in) >= 60 }, "high"},
		}, "moderate"),

		SelfAwareness: pick(in, []rule{
			{categoryIn("philosopher", "religious"), "profound"},
			{func(in Inputs) bool { return e(in) <= 40 }, "strong"},
		}, "developing"),

		EmotionalIntelligence: pick(in, []rule{
			{categoryIn("leader", "statesman"), "high"},
			{func(in Inputs) bool { return a(in) >= 60 && n(in) <= 50 }, "high"},
		}, "moderate"),

		Resilience: pick(in, []rule{
			{categoryIn("athlete", "explorer"), "antifragile"},
			{func(in Inputs) bool { return n(in) >= 70 }, "fragile"},
			{func(in Inputs) bool { return n(in) <= 30 }, "strong"},
		}, "moderate"),
	}
}
