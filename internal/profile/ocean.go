package profile

// NeutralScore is the midpoint substituted for any absent OCEAN field.
// Absent fields behave exactly like a 50, they never short-circuit rules.
const NeutralScore = 50

// Scores is the five-factor (OCEAN) trait vector, each field nominally
// in [0,100].
type Scores struct {
	Openness          float64
	Conscientiousness float64
	Extraversion      float64
	Agreeableness     float64
	Neuroticism       float64
}

// Ocean returns the record's five-factor score vector. Missing fields,
// or a missing ocean mapping entirely, default to NeutralScore.
func (r Record) Ocean() Scores {
	ocean := getMap(r, "ocean")
	return Scores{
		Openness:          getFloat(ocean, "openness", NeutralScore),
		Conscientiousness: getFloat(ocean, "conscientiousness", NeutralScore),
		Extraversion:      getFloat(ocean, "extraversion", NeutralScore),
		Agreeableness:     getFloat(ocean, "agreeableness", NeutralScore),
		Neuroticism:       getFloat(ocean, "neuroticism", NeutralScore),
	}
}
