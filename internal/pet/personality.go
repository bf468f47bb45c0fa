package pet

type Personality string

const (
	PersonalityLazy       Personality = "lazy"
	PersonalityPlayful    Personality = "playful"
	PersonalityGluttonous Personality = "gluttonous"
	PersonalityCalm       Personality = "calm"
	PersonalityCurious    Personality = "curious"
)

var Personalities = []Personality{
	PersonalityLazy,
	PersonalityPlayful,
	PersonalityGluttonous,
	PersonalityCalm,
	PersonalityCurious,
}

// Multipliers scale the named quantity wherever it is computed.
type Multipliers struct {
	ExpGain       float64
	EnergyDrain   float64
	HappinessGain float64
	SatietyDrain  float64
}

var neutral = Multipliers{ExpGain: 1, EnergyDrain: 1, HappinessGain: 1, SatietyDrain: 1}

var personalityTable = map[Personality]Multipliers{
	PersonalityLazy:       {ExpGain: 0.9, EnergyDrain: 0.8, HappinessGain: 1.0, SatietyDrain: 1.1},
	PersonalityPlayful:    {ExpGain: 1.1, EnergyDrain: 1.2, HappinessGain: 1.2, SatietyDrain: 1.0},
	PersonalityGluttonous: {ExpGain: 1.0, EnergyDrain: 1.0, HappinessGain: 0.9, SatietyDrain: 1.3},
	PersonalityCalm:       {ExpGain: 1.0, EnergyDrain: 0.9, HappinessGain: 1.0, SatietyDrain: 0.9},
	PersonalityCurious:    {ExpGain: 1.2, EnergyDrain: 1.1, HappinessGain: 1.0, SatietyDrain: 1.0},
}

func (p Personality) IsValid() bool {
	_, ok := personalityTable[p]
	return ok
}

// Multipliers returns the personality's table row; unknown values are neutral.
func (p Personality) Multipliers() Multipliers {
	if m, ok := personalityTable[p]; ok {
		return m
	}
	return neutral
}
