package pet

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kittyhaven/internal/catalog"
)

var t0 = time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)

func newTestRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func newTestPet(t *testing.T) (*Pet, *rand.Rand) {
	t.Helper()
	rng := newTestRand(1)
	b := CanvasBounds(800, 1200)
	p := New(rng, Options{
		Name:     "Tofu",
		Position: b.Center(),
		Bounds:   b,
		Foods:    []string{"fish", "cat_food"},
		Toys:     []string{"yarn_ball"},
		Now:      t0,
	})
	p.Personality = PersonalityCalm
	return p, rng
}

func assertVitalsInRange(t *testing.T, p *Pet) {
	t.Helper()
	for name, v := range map[string]float64{"satiety": p.Satiety, "happiness": p.Happiness, "energy": p.Energy} {
		assert.GreaterOrEqual(t, v, 0.0, name)
		assert.LessOrEqual(t, v, MaxVital, name)
	}
}

func TestNewPetDefaults(t *testing.T) {
	p, _ := newTestPet(t)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Tofu", p.Name)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 0.0, p.Exp)
	assert.Equal(t, StartMaxExp, p.MaxExp)
	assert.Equal(t, StateIdle, p.State)
	assert.Contains(t, []string{"fish", "cat_food"}, p.FavoriteFood)
	assert.Equal(t, "yarn_ball", p.FavoriteToy)
	assert.Len(t, p.Skills, len(SkillNames))
}

func TestNewPetKindSelectsColor(t *testing.T) {
	p := New(newTestRand(3), Options{Kind: "Calico", Bounds: CanvasBounds(800, 1200), Now: t0})
	assert.Equal(t, "calico", p.Color)
	assert.Equal(t, DefaultName, p.Name)
}

func TestSkillBudgetDistribution(t *testing.T) {
	for seed := uint64(0); seed < 500; seed++ {
		skills := newSkills(newTestRand(seed))
		total := 0
		for _, name := range SkillNames {
			s := skills[name]
			require.NotNil(t, s, "seed %d skill %s", seed, name)
			assert.GreaterOrEqual(t, s.Points, SkillMinPoints, "seed %d skill %s", seed, name)
			assert.GreaterOrEqual(t, s.Talent, 0)
			assert.LessOrEqual(t, s.Talent, MaxTalent)
			assert.Equal(t, 1, s.Level)
			total += s.Points
		}
		assert.GreaterOrEqual(t, total, SkillBudgetMin, "seed %d", seed)
		assert.LessOrEqual(t, total, SkillBudgetMax, "seed %d", seed)
	}
}

func TestGainExpSpansLevels(t *testing.T) {
	p, _ := newTestPet(t)

	levels := p.GainExp(250)

	assert.Equal(t, 2, levels)
	assert.Equal(t, 3, p.Level)
	assert.InDelta(t, 30.0, p.Exp, 1e-9)
	assert.InDelta(t, 144.0, p.MaxExp, 1e-9)
}

func TestGainExpInvariant(t *testing.T) {
	p, _ := newTestPet(t)
	rng := newTestRand(7)

	for i := 0; i < 200; i++ {
		p.GainExp(rng.Float64() * 400)
		require.Less(t, p.Exp, p.MaxExp)

		want := StartMaxExp
		for l := 1; l < p.Level; l++ {
			want *= ExpGrowthRate
		}
		require.Equal(t, want, p.MaxExp, "level %d", p.Level)
	}
}

func TestAddSkillExpTalentAndBonus(t *testing.T) {
	p, _ := newTestPet(t)
	p.Skills[SkillFortune].Talent = 50
	p.Skills[SkillFortune].Exp = 0

	gain, err := p.AddSkillExp(SkillFortune, 100)
	require.NoError(t, err)

	assert.InDelta(t, 150.0, gain.Exp, 1e-9)
	assert.Equal(t, 1, gain.LevelsGained)
	assert.Equal(t, 2, gain.Level)
	assert.Equal(t, 20, gain.Coins)
	assert.InDelta(t, 50.0, p.Skills[SkillFortune].Exp, 1e-9)
	assert.InDelta(t, 120.0, p.Skills[SkillFortune].MaxExp, 1e-9)
}

func TestAddSkillExpRestoresVital(t *testing.T) {
	p, _ := newTestPet(t)
	p.Skills[SkillCharm].Talent = 0
	p.Happiness = 40

	gain, err := p.AddSkillExp(SkillCharm, 100)
	require.NoError(t, err)

	assert.Equal(t, 1, gain.LevelsGained)
	assert.Equal(t, 0, gain.Coins)
	assert.Equal(t, 50.0, p.Happiness)
}

func TestAddSkillExpUnknownSkill(t *testing.T) {
	p, _ := newTestPet(t)
	_, err := p.AddSkillExp("hunting", 10)
	assert.ErrorIs(t, err, ErrUnknownSkill)
}

func TestTrainNeedsEnergy(t *testing.T) {
	p, _ := newTestPet(t)
	p.Energy = 5

	_, err := p.Train(SkillStamina, t0)

	var gate GateError
	require.ErrorAs(t, err, &gate)
	assert.Equal(t, "energy", gate.Vital)
	assert.Equal(t, 5.0, p.Energy)
}

func TestTrainSpendsEnergy(t *testing.T) {
	p, _ := newTestPet(t)
	p.Energy = 50
	p.Skills[SkillStrength].Talent = 0

	res, err := p.Train(SkillStrength, t0)
	require.NoError(t, err)

	assert.InDelta(t, TrainEnergyCost*PersonalityCalm.Multipliers().EnergyDrain, res.EnergySpent, 1e-9)
	assert.InDelta(t, TrainSkillExp, p.Skills[SkillStrength].Exp, 1e-9)
	assert.InDelta(t, TrainPetExp, p.Exp, 1e-9)
	assert.True(t, p.StatusVisible(t0.Add(time.Second)))
}

func TestGentleDrag(t *testing.T) {
	p, rng := newTestPet(t)
	start := p.Position

	p.StartDrag(start, t0)
	require.True(t, p.IsDragging())
	p.UpdateDrag(start.Add(Vec{10, 0}), t0.Add(100*time.Millisecond))

	assert.InDelta(t, 0.1, p.DragSpeed(), 1e-9)
	assert.Equal(t, 1, p.Direction)
	assert.Equal(t, StartHappiness, p.Happiness)

	rel := p.StopDrag(rng, t0.Add(200*time.Millisecond))
	assert.Equal(t, ReleaseGentle, rel)
	assert.Equal(t, StateIdle, p.State)
	assert.Equal(t, StartHappiness+GentleReleaseGain, p.Happiness)
	assert.Equal(t, 0.0, p.DragSpeed())
}

func TestRoughDragWalksAway(t *testing.T) {
	p, rng := newTestPet(t)
	start := p.Position

	p.StartDrag(start, t0)
	p.UpdateDrag(start.Add(Vec{-100, 0}), t0.Add(10*time.Millisecond))

	assert.InDelta(t, 10.0, p.DragSpeed(), 1e-9)
	assert.Equal(t, -1, p.Direction)
	assert.InDelta(t, StartHappiness-DragFastPenalty, p.Happiness, 1e-9)

	rel := p.StopDrag(rng, t0.Add(20*time.Millisecond))
	assert.Equal(t, ReleaseRough, rel)
	assert.Equal(t, StateWalkingAway, p.State)
	assert.InDelta(t, StartHappiness-DragFastPenalty-FastReleasePenalty, p.Happiness, 1e-9)
	assert.Equal(t, p.Bounds().Clamp(p.Target), p.Target)
}

func TestDragKeepsOffsetAndBounds(t *testing.T) {
	p, _ := newTestPet(t)
	start := p.Position

	p.StartDrag(start.Add(Vec{20, 10}), t0)
	p.UpdateDrag(start.Add(Vec{50, 10}), t0.Add(time.Second))
	assert.InDelta(t, start.X+30, p.Position.X, 1e-9)
	assert.InDelta(t, start.Y, p.Position.Y, 1e-9)

	p.UpdateDrag(Vec{-5000, 5000}, t0.Add(2*time.Second))
	b := p.Bounds()
	assert.Equal(t, b.Left, p.Position.X)
	assert.Equal(t, b.Bottom, p.Position.Y)
}

func TestStopDragWhenNotDragging(t *testing.T) {
	p, rng := newTestPet(t)
	assert.Equal(t, ReleaseNone, p.StopDrag(rng, t0))
	assert.Equal(t, StartHappiness, p.Happiness)
}

func TestCancelDragRestoresSleepingCat(t *testing.T) {
	p, _ := newTestPet(t)
	start := p.Position
	p.Target = start.Add(Vec{40, 0})
	p.setState(StateSleeping, t0)

	p.StartDrag(start, t0.Add(time.Second))
	p.UpdateDrag(start.Add(Vec{4, 3}), t0.Add(1200*time.Millisecond))
	p.CancelDrag()

	assert.Equal(t, StateSleeping, p.State)
	assert.Equal(t, start, p.Position)
	assert.Equal(t, start.Add(Vec{40, 0}), p.Target)
	assert.Equal(t, StartHappiness, p.Happiness)
	assert.Zero(t, p.DragSpeed())

	p.CancelDrag()
	assert.Equal(t, StateSleeping, p.State)
}

func TestPettingOpensStatusWindow(t *testing.T) {
	p, _ := newTestPet(t)
	p.Happiness = 98

	p.Pet(t0)

	assert.Equal(t, MaxVital, p.Happiness)
	assert.True(t, p.StatusVisible(t0.Add(1900*time.Millisecond)))
	assert.False(t, p.StatusVisible(t0.Add(StatusDuration)))
}

func TestUseItemFavoriteBonus(t *testing.T) {
	p, _ := newTestPet(t)
	p.FavoriteFood = "fish"
	fish, _ := catalog.Default().Lookup("fish")

	eff := p.UseItem(fish, t0)

	assert.True(t, eff.Favorite)
	assert.InDelta(t, 15.0, eff.Satiety, 1e-9)
	assert.InDelta(t, 7.5, eff.Happiness, 1e-9)
	assert.InDelta(t, 7.5, eff.Exp, 1e-9)
	assert.Equal(t, DisplayEating, p.Display(t0.Add(time.Second)))
	assert.Equal(t, DisplayNone, p.Display(t0.Add(DisplayDuration)))
}

func TestUseItemPersonalityScaling(t *testing.T) {
	p, _ := newTestPet(t)
	p.FavoriteFood = ""
	p.FavoriteToy = ""
	p.Personality = PersonalityPlayful
	yarn, _ := catalog.Default().Lookup("yarn_ball")

	eff := p.UseItem(yarn, t0)

	m := PersonalityPlayful.Multipliers()
	assert.False(t, eff.Favorite)
	assert.InDelta(t, yarn.Happiness*m.HappinessGain, eff.Happiness, 1e-9)
	assert.InDelta(t, yarn.Energy*m.EnergyDrain, eff.Energy, 1e-9)
	assert.InDelta(t, yarn.Exp*m.ExpGain, eff.Exp, 1e-9)
	assert.Equal(t, DisplayPlaying, p.Display(t0))
}

func TestUseItemLevelUpDisplay(t *testing.T) {
	p, _ := newTestPet(t)
	p.Exp = 99
	salmon, _ := catalog.Default().Lookup("salmon")

	eff := p.UseItem(salmon, t0)

	assert.Equal(t, 1, eff.LevelsGained)
	assert.Equal(t, DisplayLevelUp, p.Display(t0))
}

func TestVitalsStayClamped(t *testing.T) {
	p, rng := newTestPet(t)
	items := catalog.Default().All()
	now := t0

	for i := 0; i < 2000; i++ {
		now = now.Add(time.Duration(rng.IntN(5000)) * time.Millisecond)
		switch rng.IntN(6) {
		case 0:
			p.UseItem(items[rng.IntN(len(items))], now)
		case 1:
			p.Pet(now)
		case 2:
			p.StartDrag(p.Position, now)
			p.UpdateDrag(Vec{rng.Float64() * 2000, rng.Float64() * 2000}, now.Add(time.Millisecond))
			p.StopDrag(rng, now.Add(2*time.Millisecond))
		case 3:
			p.Update(now, time.Duration(rng.IntN(600))*time.Second, rng)
		case 4:
			_, _ = p.Train(SkillNames[rng.IntN(len(SkillNames))], now)
		case 5:
			p.GainExp(rng.Float64() * 100)
		}
		assertVitalsInRange(t, p)
		require.Less(t, p.Exp, p.MaxExp)
	}
}

func TestMoodPriority(t *testing.T) {
	cases := []struct {
		satiety, happiness, energy float64
		want                       Mood
	}{
		{satiety: 10, happiness: 90, energy: 10, want: MoodTired},
		{satiety: 20, happiness: 90, energy: 50, want: MoodSad},
		{satiety: 50, happiness: 90, energy: 50, want: MoodHappy},
		{satiety: 50, happiness: 20, energy: 50, want: MoodSad},
		{satiety: 50, happiness: 50, energy: 50, want: MoodNormal},
	}
	for _, tc := range cases {
		p := &Pet{Satiety: tc.satiety, Happiness: tc.happiness, Energy: tc.energy}
		assert.Equal(t, tc.want, p.Mood(), "%+v", tc)
	}
}

func TestUpdateWandersAfterRest(t *testing.T) {
	p, rng := newTestPet(t)

	p.Update(t0.Add(4*time.Second), 4*time.Second, rng)
	assert.Equal(t, StateIdle, p.State)

	p.Update(t0.Add(RestDuration), time.Second, rng)
	require.Equal(t, StateMoving, p.State)

	before := p.Position.Dist(p.Target)
	p.Update(t0.Add(RestDuration+time.Second), time.Second, rng)
	after := p.Position.Dist(p.Target)
	if before >= ArrivalThreshold {
		assert.Less(t, after, before)
	}

	p.Update(t0.Add(RestDuration+MoveDuration), 4*time.Second, rng)
	assert.Equal(t, StateIdle, p.State)
}

func TestUpdateDecay(t *testing.T) {
	p, rng := newTestPet(t)
	p.Personality = PersonalityGluttonous

	p.Update(t0.Add(time.Second), 100*time.Second, rng)

	m := PersonalityGluttonous.Multipliers()
	assert.InDelta(t, StartSatiety-SatietyDecayPerSecond*m.SatietyDrain*100, p.Satiety, 1e-9)
	assert.InDelta(t, StartHappiness-HappinessDecayPerSecond*100, p.Happiness, 1e-9)
	assert.InDelta(t, StartEnergy-EnergyDecayPerSecond*m.EnergyDrain*100, p.Energy, 1e-9)
}

func TestTiredPetSleepsAndWakes(t *testing.T) {
	p, rng := newTestPet(t)
	p.Energy = 10
	p.Target = p.Bounds().Random(rng)
	p.setState(StateMoving, t0)

	p.Update(t0.Add(MoveDuration), 0, rng)
	require.Equal(t, StateSleeping, p.State)

	p.Update(t0.Add(MoveDuration+time.Minute), 200*time.Second, rng)
	assert.Equal(t, StateIdle, p.State)
	assert.GreaterOrEqual(t, p.Energy, WakeThreshold)
}

func TestDraggingSkipsWandering(t *testing.T) {
	p, rng := newTestPet(t)
	p.StartDrag(p.Position, t0)
	pos := p.Position

	p.Update(t0.Add(time.Minute), time.Minute, rng)

	assert.Equal(t, StateDragging, p.State)
	assert.Equal(t, pos, p.Position)
}

func TestSpeedScalesWithVitals(t *testing.T) {
	full := &Pet{Satiety: 100, Energy: 100}
	assert.Equal(t, BaseSpeed*1.5, full.Speed())
	assert.LessOrEqual(t, full.Speed(), MaxSpeed)
	hungry := &Pet{Satiety: 0, Energy: 0}
	assert.Equal(t, BaseSpeed*0.5, hungry.Speed())
}

func TestTouched(t *testing.T) {
	p, _ := newTestPet(t)
	assert.True(t, p.Touched(p.Position.Add(Vec{39, -39})))
	assert.False(t, p.Touched(p.Position.Add(Vec{41, 0})))
}

func TestRename(t *testing.T) {
	p, _ := newTestPet(t)
	require.NoError(t, p.Rename("  Biscuit "))
	assert.Equal(t, "Biscuit", p.Name)
	assert.ErrorIs(t, p.Rename("   "), ErrInvalidName)
	assert.ErrorIs(t, p.Rename("abcdefghijklmnopqrstuvwxyz"), ErrInvalidName)
}

func TestRestoreNormalizes(t *testing.T) {
	p := &Pet{Satiety: 140, Happiness: -3, Energy: 50, Exp: 130, MaxExp: 100, State: StateDragging}
	b := CanvasBounds(800, 1200)

	p.Restore(b, t0)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, DefaultName, p.Name)
	assert.Equal(t, MaxVital, p.Satiety)
	assert.Equal(t, 0.0, p.Happiness)
	assert.Equal(t, 2, p.Level)
	assert.InDelta(t, 30.0, p.Exp, 1e-9)
	assert.Equal(t, StateIdle, p.State)
	assert.Len(t, p.Skills, len(SkillNames))
	assert.Equal(t, b.Clamp(Vec{}), p.Position)
}
