package traits

// WorkMethodology is the derived work-style attribute group, driven by
// the conscientiousness/openness scores at 60/70 splits.
type WorkMethodology struct {
	PlanningStyle    string `json:"planning_style"`
	ExecutionStyle   string `json:"execution_style"`
	AttentionDetail  string `json:"attention_detail"`
	Pace             string `json:"pace"`
	Persistence      string `json:"persistence"`
	QualityStandards string `json:"quality_standards"`
}

func DeriveWork(in Inputs) WorkMethodology {
	conscHigh := func(in Inputs) bool { return in.Scores.Conscientiousness >= 60 }
	conscVeryHigh := func(in Inputs) bool { return in.Scores.Conscientiousness >= 70 }
	openHigh := func(in Inputs) bool { return in.Scores.Openness >= 60 }
	openVeryHigh := func(in Inputs) bool { return in.Scores.Openness >= 70 }

	return WorkMethodology{
		PlanningStyle: pick(in, []rule{
			{openVeryHigh, "adaptive"},
			{conscHigh, "structured"},
		}, "flexible"),

		ExecutionStyle: pick(in, []rule{
			{categoryIn("artist", "musician"), "improvisational"},
			{conscHigh, "systematic"},
		}, "iterative"),

		AttentionDetail: pick(in, []rule{
			{openVeryHigh, "big-picture"},
			{conscVeryHigh, "meticulous"},
		}, "balanced"),

		Pace: pick(in, []rule{
			{categoryIn("athlete", "entrepreneur"), "intense"},
			{conscHigh, "steady"},
		}, "variable"),

		Persistence: pick(in, []rule{
			{openHigh, "adaptive"},
			{conscVeryHigh, "relentless"},
		}, "strategic"),

		QualityStandards: pick(in, []rule{
			{openVeryHigh, "experimental"},
			{conscVeryHigh, "perfectionist"},
		}, "pragmatic"),
	}
}
