package pet

import "time"

// GainExp adds exp and levels up as many times as the total allows.
// It returns the number of levels gained.
func (p *Pet) GainExp(amount float64) int {
	if amount < 0 {
		return 0
	}
	if p.MaxExp <= 0 {
		p.MaxExp = StartMaxExp
	}
	p.Exp += amount
	levels := 0
	for p.Exp >= p.MaxExp {
		p.Exp -= p.MaxExp
		p.Level++
		p.MaxExp *= ExpGrowthRate
		levels++
	}
	return levels
}

// SkillGain reports the outcome of AddSkillExp. Coins come from fortune
// level-ups and are credited by the caller.
type SkillGain struct {
	Skill        SkillName
	Exp          float64
	LevelsGained int
	Level        int
	Coins        int
}

// AddSkillExp scales amount by the skill's talent and applies the level-up
// bonus once per level gained.
func (p *Pet) AddSkillExp(name SkillName, amount float64) (SkillGain, error) {
	s, ok := p.Skills[name]
	if !ok || !name.IsValid() {
		return SkillGain{}, ErrUnknownSkill
	}
	gain := SkillGain{Skill: name}
	if amount <= 0 {
		gain.Level = s.Level
		return gain, nil
	}
	if s.MaxExp <= 0 {
		s.MaxExp = StartMaxExp
	}
	gain.Exp = amount * (1 + float64(s.Talent)/100)
	s.Exp += gain.Exp
	for s.Exp >= s.MaxExp {
		s.Exp -= s.MaxExp
		s.Level++
		s.MaxExp *= ExpGrowthRate
		gain.LevelsGained++
		gain.Coins += p.skillBonus(name, s.Level)
	}
	gain.Level = s.Level
	return gain, nil
}

func (p *Pet) skillBonus(name SkillName, level int) int {
	switch name {
	case SkillStamina:
		p.Energy = clamp(p.Energy + 20)
	case SkillCharm:
		p.Happiness = clamp(p.Happiness + 10)
	case SkillStrength:
		p.Satiety = clamp(p.Satiety + 10)
	case SkillFortune:
		return level * 10
	}
	return 0
}

// HighestSkillLevel returns the level of the pet's best skill.
func (p *Pet) HighestSkillLevel() int {
	best := 0
	for _, s := range p.Skills {
		if s.Level > best {
			best = s.Level
		}
	}
	return best
}

type TrainResult struct {
	Skill        SkillGain
	EnergySpent  float64
	LevelsGained int
}

// Train spends energy to practice a skill and earns a little pet exp.
func (p *Pet) Train(name SkillName, now time.Time) (TrainResult, error) {
	if !name.IsValid() {
		return TrainResult{}, ErrUnknownSkill
	}
	if p.Energy < TrainEnergyCost {
		return TrainResult{}, GateError{Action: "training", Vital: "energy", Need: TrainEnergyCost, Have: p.Energy}
	}
	m := p.Personality.Multipliers()
	before := p.Energy
	p.Energy = clamp(p.Energy - TrainEnergyCost*m.EnergyDrain)
	spent := before - p.Energy

	gain, err := p.AddSkillExp(name, TrainSkillExp)
	if err != nil {
		return TrainResult{}, err
	}
	levels := p.GainExp(TrainPetExp * m.ExpGain)

	p.showStatus(now)
	if levels > 0 || gain.LevelsGained > 0 {
		p.showDisplay(DisplayLevelUp, now)
	}
	return TrainResult{Skill: gain, EnergySpent: spent, LevelsGained: levels}, nil
}
