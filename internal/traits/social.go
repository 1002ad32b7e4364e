package traits

// SocialDynamics is the derived social attribute group, driven by the
// extraversion/agreeableness scores with a 40-60 middle band and
// category overrides.
type SocialDynamics struct {
	InteractionStyle string `json:"interaction_style"`
	LeadershipStyle  string `json:"leadership_style"`
	ConflictApproach string `json:"conflict_approach"`
	Collaboration    string `json:"collaboration"`
	InfluenceStyle   string `json:"influence_style"`
	TrustBuilding    string `json:"trust_building"`
}

func DeriveSocial(in Inputs) SocialDynamics {
	e := func(in Inputs) float64 { return in.Scores.Extraversion }
	a := func(in Inputs) float64 { return in.Scores.Agreeableness }

	return SocialDynamics{
		// 40-60 is the ambivert band; it takes precedence at the 60
		// boundary.
		InteractionStyle: pick(in, []rule{
			{func(in Inputs) bool { return e(in) >= 40 && e(in) <= 60 }, "ambivert"},
			{func(in Inputs) bool { return e(in) > 60 }, "extroverted"},
		}, "introverted"),

		LeadershipStyle: pick(in, []rule{
			{func(in Inputs) bool {
				return categoryIn("leader", "statesman")(in) && e(in) >= 60
			}, "transformational"},
			{categoryIn("leader", "statesman"), "strategic"},
			{categoryIn("scientist", "philosopher"), "intellectual"},
			{func(in Inputs) bool { return a(in) >= 60 }, "democratic"},
		}, "authoritative"),

		// No category override; agreeableness bands only, with the
		// collaborative band winning at the 60 boundary.
		ConflictApproach: pick(in, []rule{
			{func(in Inputs) bool { return a(in) >= 40 && a(in) <= 60 }, "collaborative"},
			{func(in Inputs) bool { return a(in) > 60 }, "mediating"},
		}, "confrontational"),

		Collaboration: pick(in, []rule{
			{categoryIn("scientist", "artist", "writer"), "selective"},
			{func(in Inputs) bool { return a(in) >= 60 }, "team-oriented"},
		}, "independent"),

		InfluenceStyle: pick(in, []rule{
			{categoryIn("religious", "statesman"), "inspirational"},
			{categoryIn("scientist", "philosopher"), "logical"},
			{func(in Inputs) bool { return e(in) >= 70 }, "charismatic"},
		}, "logical"),

		TrustBuilding: pick(in, []rule{
			{func(in Inputs) bool { return e(in) >= 70 }, "quick"},
			{func(in Inputs) bool { return a(in) >= 60 }, "gradual"},
		}, "selective"),
	}
}
