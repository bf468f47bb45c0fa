package pet

import (
	"math"
	"time"
)

// Rand is the random source injected into creation and movement.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (v Vec) Add(o Vec) Vec       { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec       { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }
func (v Vec) Len() float64        { return math.Hypot(v.X, v.Y) }
func (v Vec) Dist(o Vec) float64  { return v.Sub(o).Len() }

// Bounds is the rectangle a pet may walk or be dragged within.
type Bounds struct {
	Left, Top, Right, Bottom float64
}

const boundsMargin = 100

// CanvasBounds keeps pets away from the edges and out of the bottom quarter,
// where the buttons live.
func CanvasBounds(width, height float64) Bounds {
	return Bounds{
		Left:   boundsMargin,
		Top:    boundsMargin,
		Right:  width - boundsMargin,
		Bottom: height - height*0.25 - boundsMargin,
	}
}

func (b Bounds) Clamp(v Vec) Vec {
	return Vec{
		X: math.Max(b.Left, math.Min(b.Right, v.X)),
		Y: math.Max(b.Top, math.Min(b.Bottom, v.Y)),
	}
}

func (b Bounds) Center() Vec {
	return b.Clamp(Vec{(b.Left + b.Right) / 2, (b.Top + b.Bottom) / 2})
}

func (b Bounds) Random(rng Rand) Vec {
	return b.Clamp(Vec{
		X: b.Left + rng.Float64()*math.Max(0, b.Right-b.Left),
		Y: b.Top + rng.Float64()*math.Max(0, b.Bottom-b.Top),
	})
}

type State string

const (
	StateIdle        State = "idle"
	StateMoving      State = "moving"
	StateDragging    State = "dragging"
	StateWalkingAway State = "walking_away"
	StateSleeping    State = "sleeping"
)

// Display is a transient presentation state entered on an action and left
// after DisplayDuration. It never affects vitals.
type Display string

const (
	DisplayNone    Display = ""
	DisplayEating  Display = "eating"
	DisplayPlaying Display = "playing"
	DisplayLevelUp Display = "level_up"
)

type Mood string

const (
	MoodNormal Mood = "normal"
	MoodHappy  Mood = "happy"
	MoodSad    Mood = "sad"
	MoodTired  Mood = "tired"
)

type SkillName string

const (
	SkillStamina  SkillName = "stamina"
	SkillCharm    SkillName = "charm"
	SkillStrength SkillName = "strength"
	SkillFortune  SkillName = "fortune"
)

// SkillNames is the fixed skill order; the last one absorbs the budget remainder.
var SkillNames = []SkillName{SkillStamina, SkillCharm, SkillStrength, SkillFortune}

func (s SkillName) IsValid() bool {
	switch s {
	case SkillStamina, SkillCharm, SkillStrength, SkillFortune:
		return true
	default:
		return false
	}
}

type Skill struct {
	Points int     `json:"points"`
	Level  int     `json:"level"`
	Exp    float64 `json:"exp"`
	MaxExp float64 `json:"max_exp"`
	Talent int     `json:"talent"`
}

const (
	MaxVital = 100.0

	StartSatiety   = 50.0
	StartHappiness = 50.0
	StartEnergy    = 100.0

	StartMaxExp    = 100.0
	ExpGrowthRate  = 1.2
	MaxTalent      = 100
	SkillBudgetMin = 50
	SkillBudgetMax = 100
	SkillMinPoints = 5

	// DragSpeedThreshold is in pixels per millisecond.
	DragSpeedThreshold = 0.5
	DragFastPenalty    = 0.2
	FastReleasePenalty = 5.0
	GentleReleaseGain  = 2.0
	WalkAwayMin        = 100.0
	WalkAwaySpread     = 200.0

	PetHappinessGain = 5.0
	FavoriteBonus    = 1.5

	// Speeds are in pixels per second.
	BaseSpeed        = 60.0
	MaxSpeed         = 120.0
	ArrivalThreshold = 2.0
	TouchSize        = 80.0

	TiredThreshold = 20.0
	WakeThreshold  = 80.0

	// Decay rates are per second of simulated time.
	SatietyDecayPerSecond   = 0.05
	HappinessDecayPerSecond = 0.03
	EnergyDecayPerSecond    = 0.04
	SleepRecoveryPerSecond  = 0.5

	TrainEnergyCost = 10.0
	TrainSkillExp   = 20.0
	TrainPetExp     = 5.0

	MaxNameLength = 24
	DefaultName   = "Mochi"
)

const (
	StatusDuration  = 2 * time.Second
	DisplayDuration = 2 * time.Second
	MoveDuration    = 5 * time.Second
	RestDuration    = 5 * time.Second
)

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > MaxVital {
		return MaxVital
	}
	return v
}
