package tui

import (
	"sync"
	"time"

	"kittyhaven/internal/engine"
	"kittyhaven/internal/pet"
)

const maxToasts = 4

type toast struct {
	msg  string
	kind engine.Kind
	at   time.Time
}

type dialogKind int

const (
	dialogShop dialogKind = iota
	dialogTrain
)

type dialog struct {
	kind    dialogKind
	title   string
	body    string
	options []string
	cursor  int
}

// session receives engine callbacks. It is shared by every copy of the
// board model and may be written while the service is being opened.
type session struct {
	mu     sync.Mutex
	pets   []pet.View
	ui     engine.UIState
	toasts []toast
	prompt *dialog
}

func (s *session) Notify(msg string, kind engine.Kind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.toasts = append(s.toasts, toast{msg: msg, kind: kind, at: time.Now()})
	if len(s.toasts) > maxToasts {
		s.toasts = s.toasts[len(s.toasts)-maxToasts:]
	}
}

func (s *session) Render(pets []pet.View, ui engine.UIState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pets = pets
	s.ui = ui
}

// Confirm cannot block inside the bubbletea update loop, so it opens the
// board's own dialog and reports the engine's request as dismissed. The
// board completes the purchase when the player chooses.
func (s *session) Confirm(title, body string, options []string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompt = &dialog{kind: dialogShop, title: title, body: body, options: options}
	return 0, false
}

func (s *session) frame() ([]pet.View, engine.UIState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pets, s.ui
}

func (s *session) recentToasts() []toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]toast(nil), s.toasts...)
}

func (s *session) dialog() *dialog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prompt
}

func (s *session) setDialog(d *dialog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompt = d
}
