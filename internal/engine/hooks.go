package engine

import (
	"time"

	"kittyhaven/internal/pet"
)

type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// Notifier shows short messages to the player.
type Notifier interface {
	Notify(msg string, kind Kind)
}

// Confirmer asks the player to choose one of options. ok is false when the
// dialog was dismissed.
type Confirmer interface {
	Confirm(title, body string, options []string) (index int, ok bool)
}

// Renderer draws one frame.
type Renderer interface {
	Render(pets []pet.View, ui UIState)
}

type Panel string

const (
	PanelNone  Panel = ""
	PanelBag   Panel = "bag"
	PanelTasks Panel = "tasks"
)

// UIState is everything besides the pets a renderer needs for a frame.
type UIState struct {
	Now         time.Time
	Coins       int
	Pending     int
	Streak      int
	SignedToday bool
	Selected    int
	Claimable   int
	Panel       Panel
	Buttons     []Button
	// Pressed is the button under an active pointer press, if any.
	Pressed ButtonID
}

type nopNotifier struct{}

func (nopNotifier) Notify(string, Kind) {}

type nopConfirmer struct{}

func (nopConfirmer) Confirm(string, string, []string) (int, bool) { return 0, false }

type nopRenderer struct{}

func (nopRenderer) Render([]pet.View, UIState) {}

// NotifyFunc adapts a function to Notifier.
type NotifyFunc func(msg string, kind Kind)

func (f NotifyFunc) Notify(msg string, kind Kind) { f(msg, kind) }

// RenderFunc adapts a function to Renderer.
type RenderFunc func(pets []pet.View, ui UIState)

func (f RenderFunc) Render(pets []pet.View, ui UIState) { f(pets, ui) }
