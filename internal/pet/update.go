package pet

import (
	"math"
	"time"
)

// Update advances the pet by dt: passive decay, display timers and idle wandering.
func (p *Pet) Update(now time.Time, dt time.Duration, rng Rand) {
	if dt < 0 {
		dt = 0
	}
	secs := dt.Seconds()
	m := p.Personality.Multipliers()

	p.Satiety = clamp(p.Satiety - SatietyDecayPerSecond*m.SatietyDrain*secs)
	p.Happiness = clamp(p.Happiness - HappinessDecayPerSecond*secs)
	if p.State == StateSleeping {
		p.Energy = clamp(p.Energy + SleepRecoveryPerSecond*secs)
	} else {
		p.Energy = clamp(p.Energy - EnergyDecayPerSecond*m.EnergyDrain*secs)
	}

	if p.display != DisplayNone && !now.Before(p.displayUntil) {
		p.display = DisplayNone
	}

	since := now.Sub(p.stateSince)
	switch p.State {
	case StateDragging:
		return
	case StateSleeping:
		if p.Energy >= WakeThreshold {
			p.setState(StateIdle, now)
		}
	case StateIdle:
		if since >= RestDuration {
			p.Target = p.bounds.Random(rng)
			p.setState(StateMoving, now)
		}
	case StateMoving, StateWalkingAway:
		if since >= MoveDuration {
			p.settle(now)
			return
		}
		p.step(now, secs, rng)
	}
}

func (p *Pet) settle(now time.Time) {
	if p.Energy < TiredThreshold {
		p.setState(StateSleeping, now)
		return
	}
	p.setState(StateIdle, now)
}

// Speed is the current walking speed in px/s; healthier pets move faster.
func (p *Pet) Speed() float64 {
	return math.Min(BaseSpeed*(0.5+(p.Satiety+p.Energy)/200), MaxSpeed)
}

func (p *Pet) step(now time.Time, secs float64, rng Rand) {
	if p.Satiety <= 0 {
		return
	}
	d := p.Target.Sub(p.Position)
	dist := d.Len()
	if math.Abs(d.X) > 0.1 {
		p.Direction = direction(d.X)
	}
	if dist < ArrivalThreshold {
		if p.Energy < TiredThreshold {
			p.setState(StateSleeping, now)
			return
		}
		p.Target = p.bounds.Random(rng)
		p.State = StateMoving
		return
	}
	travel := p.Speed() * secs
	if travel >= dist {
		p.Position = p.Target
		return
	}
	p.Position = p.Position.Add(d.Scale(travel / dist))
}
