package traits

// CommunicationPatterns is the derived communication attribute group. It
// is the only group that reads the linguistic sentence-length hint.
type CommunicationPatterns struct {
	VerbalStyle         string `json:"verbal_style"`
	ListeningStyle      string `json:"listening_style"`
	PersuasionApproach  string `json:"persuasion_approach"`
	Storytelling        string `json:"storytelling"`
	HumorUsage          string `json:"humor_usage"`
	EmotionalExpression string `json:"emotional_expression"`
}

func DeriveCommunication(in Inputs) CommunicationPatterns {
	extraHigh := func(in Inputs) bool { return in.Scores.Extraversion >= 60 }
	extraVeryHigh := func(in Inputs) bool { return in.Scores.Extraversion >= 70 }
	openHigh := func(in Inputs) bool { return in.Scores.Openness >= 60 }
	openVeryHigh := func(in Inputs) bool { return in.Scores.Openness >= 70 }

	return CommunicationPatterns{
		VerbalStyle: pick(in, []rule{
			{categoryIn("philosopher", "writer"), "elaborate"},
			{categoryIn("leader", "entrepreneur"), "concise"},
			{func(in Inputs) bool { return in.SentenceLength == "long" }, "elaborate"},
		}, "concise"),

		ListeningStyle: pick(in, []rule{
			{categoryIn("religious", "philosopher"), "empathetic"},
			{extraHigh, "active"},
		}, "empathetic"),

		PersuasionApproach: pick(in, []rule{
			{categoryIn("scientist", "mathematician"), "logical"},
			{categoryIn("artist", "musician"), "emotional"},
			{categoryIn("religious", "statesman"), "ethical"},
			{openHigh, "logical"},
		}, "emotional"),

		Storytelling: pick(in, []rule{
			{categoryIn("writer", "poet"), "personal"},
			{openVeryHigh, "metaphorical"},
		}, "factual"),

		HumorUsage: pick(in, []rule{
			{categoryIn("comedian"), "constant"},
			{extraVeryHigh, "frequent"},
		}, "occasional"),

		EmotionalExpression: pick(in, []rule{
			{extraHigh, "open"},
		}, "controlled"),
	}
}
