package traits

// CognitiveStyle is the derived cognitive attribute group: six scalar
// fields chosen by ordered rule tables over category and the
// openness/conscientiousness scores.
type CognitiveStyle struct {
	ThinkingPattern       string `json:"thinking_pattern"`
	LearningStyle         string `json:"learning_style"`
	ProblemSolving        string `json:"problem_solving"`
	DecisionMaking        string `json:"decision_making"`
	InformationProcessing string `json:"information_processing"`
	CreativityLevel       string `json:"creativity_level"`
}

func DeriveCognitive(in Inputs) CognitiveStyle {
	openHigh := func(in Inputs) bool { return in.Scores.Openness >= 60 }
	openVeryHigh := func(in Inputs) bool { return in.Scores.Openness >= 70 }
	conscHigh := func(in Inputs) bool { return in.Scores.Conscientiousness >= 60 }

	return CognitiveStyle{
		ThinkingPattern: pick(in, []rule{
			{categoryIn("artist", "musician", "poet"), "intuitive"},
			{categoryIn("scientist", "mathematician"), "analytical"},
			{categoryIn("leader", "statesman"), "strategic"},
			{openHigh, "analytical"},
		}, "systematic"),

		LearningStyle: pick(in, []rule{
			{categoryIn("scientist", "mathematician"), "kinesthetic"},
			{categoryIn("writer", "philosopher"), "auditory"},
			{openHigh, "visual"},
		}, "auditory"),

		ProblemSolving: pick(in, []rule{
			{categoryIn("artist", "musician"), "creative"},
			{categoryIn("scientist", "mathematician"), "methodical"},
			{conscHigh, "methodical"},
		}, "creative"),

		DecisionMaking: pick(in, []rule{
			{categoryIn("leader", "entrepreneur"), "quick"},
			{categoryIn("philosopher", "scientist"), "deliberate"},
			{conscHigh, "deliberate"},
		}, "intuitive"),

		InformationProcessing: pick(in, []rule{
			{openVeryHigh, "big-picture"},
			{conscHigh, "detail-focused"},
		}, "big-picture"),

		CreativityLevel: pick(in, []rule{
			{categoryIn("artist", "musician", "writer", "poet"), "exceptional"},
			{categoryIn("scientist", "mathematician"), "high"},
			{openVeryHigh, "high"},
		}, "moderate"),
	}
}
