package engine

import (
	"context"
	"fmt"

	"kittyhaven/internal/pet"
)

// TapSlop is how far a pointer may travel between down and up and still count as a tap.
const TapSlop = 10.0

type targetKind int

const (
	targetNone targetKind = iota
	targetButton
	targetPet
)

type pointerState struct {
	kind   targetKind
	button ButtonID
	pet    int
	start  pet.Vec
	travel float64
}

// PointerDown resolves what is under p: buttons first, then pets from the
// topmost down. Pressing a pet grabs it.
func (s *Service) PointerDown(p pet.Vec) {
	s.pointer = pointerState{start: p}
	if id := s.layout.ButtonAt(p); id != ButtonNone {
		s.pointer.kind = targetButton
		s.pointer.button = id
		return
	}
	for i := len(s.pets) - 1; i >= 0; i-- {
		if s.pets[i].Touched(p) {
			s.pointer.kind = targetPet
			s.pointer.pet = i
			s.selected = i
			s.pets[i].StartDrag(p, s.clock.Now())
			return
		}
	}
}

func (s *Service) PointerMove(p pet.Vec) {
	if s.pointer.kind != targetPet {
		return
	}
	if d := p.Dist(s.pointer.start); d > s.pointer.travel {
		s.pointer.travel = d
	}
	s.pets[s.pointer.pet].UpdateDrag(p, s.clock.Now())
}

// PointerUp finishes a press. A button fires when released over itself; a
// pet released without moving counts as petting.
func (s *Service) PointerUp(ctx context.Context, p pet.Vec) error {
	ptr := s.pointer
	s.pointer = pointerState{}

	switch ptr.kind {
	case targetButton:
		if s.layout.ButtonAt(p) != ptr.button {
			return nil
		}
		return s.Press(ctx, ptr.button)
	case targetPet:
		if ptr.pet >= len(s.pets) {
			return nil
		}
		if d := p.Dist(ptr.start); d > ptr.travel {
			ptr.travel = d
		}
		cat := s.pets[ptr.pet]
		if ptr.travel <= TapSlop {
			cat.CancelDrag()
			_, err := s.Pet(ctx, ptr.pet)
			return err
		}
		if cat.StopDrag(s.rng, s.clock.Now()) == pet.ReleaseRough {
			s.notify.Notify(fmt.Sprintf("%s did not enjoy that", cat.Name), KindWarning)
		}
		s.save(ctx)
	}
	return nil
}

// Press runs the action bound to a button.
func (s *Service) Press(ctx context.Context, id ButtonID) error {
	switch id {
	case ButtonShop:
		return s.OpenShop(ctx)
	case ButtonFeed:
		_, err := s.Feed(ctx, s.selected, "")
		return err
	case ButtonBag:
		s.togglePanel(PanelBag)
	case ButtonTasks:
		s.togglePanel(PanelTasks)
	case ButtonSignIn:
		_, err := s.SignIn(ctx)
		return err
	case ButtonCollect:
		_, err := s.CollectCoins(ctx)
		return err
	}
	return nil
}

func (s *Service) togglePanel(p Panel) {
	if s.panel == p {
		s.panel = PanelNone
		return
	}
	s.panel = p
}

func (s *Service) Panel() Panel {
	return s.panel
}

func (s *Service) SetPanel(p Panel) {
	s.panel = p
}
