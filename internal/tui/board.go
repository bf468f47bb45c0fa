package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"kittyhaven/internal/engine"
)

// Hooks are the board's implementations of the engine UI capabilities.
type Hooks struct {
	Notifier  engine.Notifier
	Confirmer engine.Confirmer
	Renderer  engine.Renderer
}

// Opener builds the service the board drives, wired to hooks. The returned
// func releases its resources.
type Opener func(ctx context.Context, hooks Hooks) (*engine.Service, func(), error)

func RunBoard(ctx context.Context, open Opener, out io.Writer) error {
	m := newBoardModel(ctx, open)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if fm, ok := final.(boardModel); ok && fm.svc != nil {
		if serr := fm.svc.Save(ctx); serr != nil && err == nil {
			err = serr
		}
		if fm.cleanup != nil {
			fm.cleanup()
		}
	}
	return err
}
