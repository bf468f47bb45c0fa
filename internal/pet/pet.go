// Package pet models a single cat: vitals, progression, skills, personality,
// the drag interaction state machine and idle wandering.
package pet

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	Colors    = []string{"orange", "black", "white", "grey", "calico", "cream"}
	Patterns  = []string{"solid", "tabby", "tuxedo", "spotted", "pointed"}
	EyeColors = []string{"amber", "green", "blue", "copper", "odd"}
	Traits    = []string{"long tail", "extra toes", "crooked whiskers", "loud purr", "tiny ears", "fluffy cheeks"}
)

type Pet struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Color        string      `json:"color"`
	Pattern      string      `json:"pattern"`
	EyeColor     string      `json:"eye_color"`
	Trait        string      `json:"trait"`
	Personality  Personality `json:"personality"`
	FavoriteFood string      `json:"favorite_food"`
	FavoriteToy  string      `json:"favorite_toy"`
	AdoptedAt    time.Time   `json:"adopted_at"`

	Satiety   float64 `json:"satiety"`
	Happiness float64 `json:"happiness"`
	Energy    float64 `json:"energy"`

	Level  int     `json:"level"`
	Exp    float64 `json:"exp"`
	MaxExp float64 `json:"max_exp"`

	Skills map[SkillName]*Skill `json:"skills"`

	State     State `json:"state"`
	Position  Vec   `json:"position"`
	Target    Vec   `json:"target"`
	Direction int   `json:"direction"`

	bounds       Bounds
	stateSince   time.Time
	dragOffset   Vec
	preDrag      dragRestore
	lastDragAt   time.Time
	dragSpeed    float64
	statusUntil  time.Time
	display      Display
	displayUntil time.Time
}

// Options configures a new pet. Kind selects the coat color when it names one
// of Colors; any other value picks a random color.
type Options struct {
	Name     string
	Kind     string
	Position Vec
	Bounds   Bounds
	Foods    []string
	Toys     []string
	Now      time.Time
}

func pick(rng Rand, list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[rng.IntN(len(list))]
}

func New(rng Rand, opts Options) *Pet {
	name := strings.TrimSpace(opts.Name)
	if name == "" {
		name = DefaultName
	}
	color := pick(rng, Colors)
	for _, c := range Colors {
		if strings.EqualFold(c, opts.Kind) {
			color = c
		}
	}

	p := &Pet{
		ID:           uuid.NewString(),
		Name:         name,
		Color:        color,
		Pattern:      pick(rng, Patterns),
		EyeColor:     pick(rng, EyeColors),
		Trait:        pick(rng, Traits),
		Personality:  Personalities[rng.IntN(len(Personalities))],
		FavoriteFood: pick(rng, opts.Foods),
		FavoriteToy:  pick(rng, opts.Toys),
		AdoptedAt:    opts.Now,
		Satiety:      StartSatiety,
		Happiness:    StartHappiness,
		Energy:       StartEnergy,
		Level:        1,
		MaxExp:       StartMaxExp,
		Skills:       newSkills(rng),
		Direction:    1,
		bounds:       opts.Bounds,
	}
	p.Position = opts.Bounds.Clamp(opts.Position)
	p.Target = p.Position
	p.setState(StateIdle, opts.Now)
	return p
}

// newSkills splits a random budget in [SkillBudgetMin, SkillBudgetMax] across
// SkillNames with at least SkillMinPoints each.
func newSkills(rng Rand) map[SkillName]*Skill {
	total := SkillBudgetMin + rng.IntN(SkillBudgetMax-SkillBudgetMin+1)
	remaining := total
	skills := make(map[SkillName]*Skill, len(SkillNames))
	for i, name := range SkillNames {
		points := remaining
		if i < len(SkillNames)-1 {
			reserved := SkillMinPoints * (len(SkillNames) - i - 1)
			spare := remaining - reserved - SkillMinPoints
			points = SkillMinPoints + rng.IntN(spare+1)
		}
		remaining -= points
		skills[name] = &Skill{
			Points: points,
			Level:  1,
			MaxExp: StartMaxExp,
			Talent: rng.IntN(MaxTalent + 1),
		}
	}
	return skills
}

// Restore normalizes a pet decoded from a save: clamps vitals, fills missing
// skills and drops transient interaction state.
func (p *Pet) Restore(bounds Bounds, now time.Time) {
	p.bounds = bounds
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if strings.TrimSpace(p.Name) == "" {
		p.Name = DefaultName
	}
	p.Satiety = clamp(p.Satiety)
	p.Happiness = clamp(p.Happiness)
	p.Energy = clamp(p.Energy)
	if p.Level < 1 {
		p.Level = 1
	}
	if p.MaxExp <= 0 {
		p.MaxExp = StartMaxExp
	}
	if p.Exp < 0 {
		p.Exp = 0
	}
	p.GainExp(0)
	if p.Skills == nil {
		p.Skills = map[SkillName]*Skill{}
	}
	for _, name := range SkillNames {
		s := p.Skills[name]
		if s == nil {
			s = &Skill{Points: SkillMinPoints}
			p.Skills[name] = s
		}
		if s.Level < 1 {
			s.Level = 1
		}
		if s.MaxExp <= 0 {
			s.MaxExp = StartMaxExp
		}
	}
	if p.Direction == 0 {
		p.Direction = 1
	}
	switch p.State {
	case StateMoving, StateWalkingAway, StateSleeping:
	default:
		p.State = StateIdle
	}
	p.Position = bounds.Clamp(p.Position)
	p.Target = bounds.Clamp(p.Target)
	p.stateSince = now
	p.dragSpeed = 0
}

func (p *Pet) setState(s State, now time.Time) {
	p.State = s
	p.stateSince = now
}

func (p *Pet) showDisplay(d Display, now time.Time) {
	if p.display == DisplayLevelUp && d != DisplayLevelUp && now.Before(p.displayUntil) {
		return
	}
	p.display = d
	p.displayUntil = now.Add(DisplayDuration)
}

func (p *Pet) showStatus(now time.Time) {
	p.statusUntil = now.Add(StatusDuration)
}

// Celebrate opens the level-up display, used when exp arrives from outside an action.
func (p *Pet) Celebrate(now time.Time) {
	p.showDisplay(DisplayLevelUp, now)
	p.showStatus(now)
}

func (p *Pet) Bounds() Bounds {
	return p.bounds
}

func (p *Pet) SetBounds(b Bounds) {
	p.bounds = b
	p.Position = b.Clamp(p.Position)
	p.Target = b.Clamp(p.Target)
}

func (p *Pet) IsDragging() bool {
	return p.State == StateDragging
}

func (p *Pet) DragSpeed() float64 {
	return p.dragSpeed
}

func (p *Pet) StatusVisible(now time.Time) bool {
	return now.Before(p.statusUntil)
}

func (p *Pet) Display(now time.Time) Display {
	if now.Before(p.displayUntil) {
		return p.display
	}
	return DisplayNone
}

// Mood derives the pet's mood from its vitals by priority.
func (p *Pet) Mood() Mood {
	switch {
	case p.Energy < 20:
		return MoodTired
	case p.Satiety < 30:
		return MoodSad
	case p.Happiness > 80:
		return MoodHappy
	case p.Happiness < 30:
		return MoodSad
	default:
		return MoodNormal
	}
}

// Touched reports whether point falls within the pet's hit box.
func (p *Pet) Touched(point Vec) bool {
	half := TouchSize / 2
	return math.Abs(point.X-p.Position.X) <= half && math.Abs(point.Y-p.Position.Y) <= half
}

func (p *Pet) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > MaxNameLength {
		return ErrInvalidName
	}
	p.Name = name
	return nil
}

// View is a read-only projection handed to renderers.
type View struct {
	ID            string
	Name          string
	Color         string
	Pattern       string
	Personality   Personality
	Level         int
	Exp           float64
	MaxExp        float64
	Satiety       float64
	Happiness     float64
	Energy        float64
	Mood          Mood
	State         State
	Display       Display
	StatusVisible bool
	Position      Vec
	Direction     int
	Skills        map[SkillName]Skill
}

func (p *Pet) View(now time.Time) View {
	skills := make(map[SkillName]Skill, len(p.Skills))
	for k, v := range p.Skills {
		skills[k] = *v
	}
	return View{
		ID:            p.ID,
		Name:          p.Name,
		Color:         p.Color,
		Pattern:       p.Pattern,
		Personality:   p.Personality,
		Level:         p.Level,
		Exp:           p.Exp,
		MaxExp:        p.MaxExp,
		Satiety:       p.Satiety,
		Happiness:     p.Happiness,
		Energy:        p.Energy,
		Mood:          p.Mood(),
		State:         p.State,
		Display:       p.Display(now),
		StatusVisible: p.StatusVisible(now),
		Position:      p.Position,
		Direction:     p.Direction,
		Skills:        skills,
	}
}
