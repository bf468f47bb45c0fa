package pet

import (
	"math"
	"time"

	"kittyhaven/internal/catalog"
)

// dragRestore is where the pet was and what it was doing before a grab.
type dragRestore struct {
	state    State
	since    time.Time
	position Vec
	target   Vec
}

// StartDrag grabs the pet at pointer.
func (p *Pet) StartDrag(pointer Vec, now time.Time) {
	p.preDrag = dragRestore{state: p.State, since: p.stateSince, position: p.Position, target: p.Target}
	p.dragOffset = pointer.Sub(p.Position)
	p.lastDragAt = now
	p.dragSpeed = 0
	p.setState(StateDragging, now)
	p.showStatus(now)
}

// UpdateDrag follows the pointer and measures drag speed in px/ms.
// Dragging faster than DragSpeedThreshold upsets the pet a little each move.
func (p *Pet) UpdateDrag(pointer Vec, now time.Time) {
	if p.State != StateDragging {
		return
	}
	dt := float64(now.Sub(p.lastDragAt)) / float64(time.Millisecond)
	if dt < 1 {
		dt = 1
	}
	next := p.bounds.Clamp(pointer.Sub(p.dragOffset))
	delta := next.Sub(p.Position)
	p.dragSpeed = delta.Len() / dt
	p.Position = next
	p.Target = next
	if math.Abs(delta.X) > 0.1 {
		p.Direction = direction(delta.X)
	}
	p.lastDragAt = now
	if p.dragSpeed > DragSpeedThreshold {
		p.Happiness = clamp(p.Happiness - DragFastPenalty)
	}
}

type Release string

const (
	ReleaseNone   Release = ""
	ReleaseGentle Release = "gentle"
	ReleaseRough  Release = "rough"
)

// StopDrag drops the pet. A fast release sends it walking away to a random
// point 100..300px off; a gentle one pleases it.
func (p *Pet) StopDrag(rng Rand, now time.Time) Release {
	if p.State != StateDragging {
		return ReleaseNone
	}
	rough := p.dragSpeed > DragSpeedThreshold
	p.dragSpeed = 0
	p.lastDragAt = time.Time{}

	if !rough {
		p.Happiness = clamp(p.Happiness + GentleReleaseGain)
		p.setState(StateIdle, now)
		return ReleaseGentle
	}

	p.Happiness = clamp(p.Happiness - FastReleasePenalty)
	angle := rng.Float64() * 2 * math.Pi
	dist := WalkAwayMin + rng.Float64()*WalkAwaySpread
	p.Target = p.bounds.Clamp(p.Position.Add(Vec{math.Cos(angle) * dist, math.Sin(angle) * dist}))
	p.setState(StateWalkingAway, now)
	return ReleaseRough
}

// CancelDrag undoes a grab that never became a drag: the pet goes back to
// where it was and what it was doing, with no release effect.
func (p *Pet) CancelDrag() {
	if p.State != StateDragging {
		return
	}
	p.State = p.preDrag.state
	p.stateSince = p.preDrag.since
	p.Position = p.preDrag.position
	p.Target = p.preDrag.target
	p.dragSpeed = 0
	p.lastDragAt = time.Time{}
}

// Pet strokes the cat.
func (p *Pet) Pet(now time.Time) {
	p.Happiness = clamp(p.Happiness + PetHappinessGain)
	p.showStatus(now)
}

// ItemEffect holds the deltas actually applied by UseItem.
type ItemEffect struct {
	Satiety      float64
	Happiness    float64
	Energy       float64
	Exp          float64
	LevelsGained int
	Favorite     bool
}

// UseItem feeds a food or plays with a toy.
func (p *Pet) UseItem(item catalog.Item, now time.Time) ItemEffect {
	m := p.Personality.Multipliers()
	eff := ItemEffect{Favorite: item.ID != "" && (item.ID == p.FavoriteFood || item.ID == p.FavoriteToy)}
	bonus := 1.0
	if eff.Favorite {
		bonus = FavoriteBonus
	}

	before := p.Satiety
	p.Satiety = clamp(p.Satiety + item.Satiety*bonus)
	eff.Satiety = p.Satiety - before

	before = p.Happiness
	p.Happiness = clamp(p.Happiness + item.Happiness*bonus*m.HappinessGain)
	eff.Happiness = p.Happiness - before

	energy := item.Energy * bonus
	if energy < 0 {
		energy *= m.EnergyDrain
	}
	before = p.Energy
	p.Energy = clamp(p.Energy + energy)
	eff.Energy = p.Energy - before

	eff.Exp = item.Exp * bonus * m.ExpGain
	eff.LevelsGained = p.GainExp(eff.Exp)

	p.showStatus(now)
	if item.Type == catalog.TypeFood {
		p.showDisplay(DisplayEating, now)
	} else {
		p.showDisplay(DisplayPlaying, now)
	}
	if eff.LevelsGained > 0 {
		p.showDisplay(DisplayLevelUp, now)
	}
	return eff
}

func direction(dx float64) int {
	if dx < 0 {
		return -1
	}
	return 1
}
