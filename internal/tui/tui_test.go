package tui

import (
	"context"
	"math"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"kittyhaven/internal/clock"
	"kittyhaven/internal/config"
	"kittyhaven/internal/engine"
	"kittyhaven/internal/pet"
	"kittyhaven/internal/storage"
)

var t0 = time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)

func testOpener(hooks Hooks) (*engine.Service, func(), error) {
	svc, err := engine.New(context.Background(), engine.Options{
		Store:     storage.NewMemoryStore(),
		Clock:     clock.NewMock(t0),
		Rand:      rand.New(rand.NewPCG(3, 4)),
		Notifier:  hooks.Notifier,
		Confirmer: hooks.Confirmer,
		Renderer:  hooks.Renderer,
		Config:    config.Default(),
	})
	return svc, func() {}, err
}

func update(t *testing.T, m boardModel, msg tea.Msg) boardModel {
	t.Helper()
	next, _ := m.Update(msg)
	bm, ok := next.(boardModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return bm
}

func newLoadedModel(t *testing.T) boardModel {
	t.Helper()
	m := newBoardModel(context.Background(), func(_ context.Context, h Hooks) (*engine.Service, func(), error) {
		return testOpener(h)
	})
	msg := m.openCmd()()
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m = update(t, m, msg)
	if m.err != nil {
		t.Fatalf("open: %v", m.err)
	}
	if m.svc == nil || m.loading {
		t.Fatalf("model not loaded")
	}
	return m
}

func press(t *testing.T, m boardModel, k string) boardModel {
	t.Helper()
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	return update(t, m, msg)
}

func quantity(svc *engine.Service, id string) int {
	for _, e := range svc.Inventory() {
		if e.ID == id {
			return e.Quantity
		}
	}
	return 0
}

func TestCanvasMappingRoundTrip(t *testing.T) {
	m := newLoadedModel(t)
	cols, rows := m.sceneSize()
	w, h := m.canvas()
	cellW, cellH := w/float64(cols), h/float64(rows)

	for _, p := range []pet.Vec{{X: 0, Y: 0}, {X: 375, Y: 667}, {X: 749, Y: 1333}, {X: 120, Y: 900}} {
		x, y := m.toScreen(p)
		q, ok := m.toCanvas(x, y)
		if !ok {
			t.Fatalf("toCanvas(%d,%d) outside scene", x, y)
		}
		if math.Abs(q.X-p.X) > cellW || math.Abs(q.Y-p.Y) > cellH {
			t.Fatalf("round trip %v -> %v, want within one cell", p, q)
		}
	}
}

func TestToCanvasOutsideScene(t *testing.T) {
	m := newLoadedModel(t)
	if _, ok := m.toCanvas(0, 0); ok {
		t.Fatalf("header row mapped into scene")
	}
	cols, _ := m.sceneSize()
	if _, ok := m.toCanvas(sceneLeft+cols, sceneTop); ok {
		t.Fatalf("sidebar column mapped into scene")
	}
}

func TestPetKeyPaysCoins(t *testing.T) {
	m := newLoadedModel(t)
	before := m.svc.Coins()
	m = press(t, m, "p")
	if got := m.svc.Coins(); got <= before || got > before+engine.PetCoinsMax {
		t.Fatalf("coins=%d, want in (%d, %d]", got, before, before+engine.PetCoinsMax)
	}
}

func TestClickOnCatPets(t *testing.T) {
	m := newLoadedModel(t)
	before := m.svc.Coins()
	col, y := m.toScreen(m.svc.Pets()[0].Position)

	m = update(t, m, tea.MouseMsg{X: col, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.svc.Pets()[0].State != pet.StateDragging {
		t.Fatalf("state=%s, want dragging after press", m.svc.Pets()[0].State)
	}
	m = update(t, m, tea.MouseMsg{X: col, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if got := m.svc.Coins(); got <= before {
		t.Fatalf("coins=%d, want more than %d after a tap", got, before)
	}
	if m.svc.Pets()[0].State == pet.StateDragging {
		t.Fatalf("cat still dragging after release")
	}
}

func TestShopDialogBuysOne(t *testing.T) {
	m := newLoadedModel(t)
	m = press(t, m, "s")
	d := m.sess.dialog()
	if d == nil {
		t.Fatalf("shop dialog not open")
	}
	items := m.svc.ShopItems()
	if len(d.options) != len(items) {
		t.Fatalf("options=%d, want %d", len(d.options), len(items))
	}

	first := items[0]
	coins, have := m.svc.Coins(), quantity(m.svc, first.ID)
	m = press(t, m, "enter")
	if m.sess.dialog() != nil {
		t.Fatalf("dialog still open after choosing")
	}
	if got := quantity(m.svc, first.ID); got != have+1 {
		t.Fatalf("%s quantity=%d, want %d", first.ID, got, have+1)
	}
	if got := m.svc.Coins(); got != coins-first.Cost {
		t.Fatalf("coins=%d, want %d", got, coins-first.Cost)
	}
}

func TestDialogEscCloses(t *testing.T) {
	m := newLoadedModel(t)
	m = press(t, m, "t")
	d := m.sess.dialog()
	if d == nil || d.kind != dialogTrain {
		t.Fatalf("train dialog not open")
	}
	if len(d.options) != len(pet.SkillNames) {
		t.Fatalf("options=%d, want %d", len(d.options), len(pet.SkillNames))
	}
	m = press(t, m, "esc")
	if m.sess.dialog() != nil {
		t.Fatalf("dialog still open after esc")
	}
}

func TestTasksPanelClaims(t *testing.T) {
	m := newLoadedModel(t)
	m = press(t, m, "i")
	claimable := len(m.svc.Claimable())
	if claimable == 0 {
		t.Fatalf("nothing claimable after signing in")
	}
	m = press(t, m, "k")
	if m.svc.Panel() != engine.PanelTasks {
		t.Fatalf("panel=%q, want tasks", m.svc.Panel())
	}
	m = press(t, m, "enter")
	if got := len(m.svc.Claimable()); got != claimable-1 {
		t.Fatalf("claimable=%d, want %d", got, claimable-1)
	}
}

func TestSessionConfirmIsNonBlocking(t *testing.T) {
	s := &session{}
	if _, ok := s.Confirm("Shop", "Pick", []string{"a", "b"}); ok {
		t.Fatalf("Confirm reported a choice")
	}
	d := s.dialog()
	if d == nil || d.kind != dialogShop || len(d.options) != 2 {
		t.Fatalf("dialog=%+v, want shop prompt with 2 options", d)
	}
}

func TestSessionKeepsRecentToasts(t *testing.T) {
	s := &session{}
	for i := 0; i < maxToasts+3; i++ {
		s.Notify(strings.Repeat("x", i+1), engine.KindInfo)
	}
	got := s.recentToasts()
	if len(got) != maxToasts {
		t.Fatalf("toasts=%d, want %d", len(got), maxToasts)
	}
	if last := got[len(got)-1].msg; len(last) != maxToasts+3 {
		t.Fatalf("last toast=%q, want the newest", last)
	}
}

func TestViewShowsScene(t *testing.T) {
	m := newLoadedModel(t)
	out := m.View()
	for _, want := range []string{"Kittyhaven", m.svc.Pets()[0].Name, "Shop"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q", want)
		}
	}
}

func TestRenderPetShowsLevelUpBadge(t *testing.T) {
	v := pet.View{Name: "Tofu", Level: 2, MaxExp: 120, Mood: pet.MoodNormal, Display: pet.DisplayLevelUp}
	if out := renderPet(v); !strings.Contains(out, "LEVEL UP") {
		t.Fatalf("level-up badge missing:\n%s", out)
	}
	v.Display = pet.DisplayNone
	if out := renderPet(v); strings.Contains(out, "LEVEL UP") {
		t.Fatalf("badge shown without a level up:\n%s", out)
	}
}
