package ui

import (
	"fmt"
	"io"

	"kittyhaven/internal/engine"
)

// Toaster prints notifications as styled lines.
type Toaster struct {
	W io.Writer
}

func (t Toaster) Notify(msg string, kind engine.Kind) {
	fmt.Fprintln(t.W, Toast(msg, kind))
}

func Toast(msg string, kind engine.Kind) string {
	switch kind {
	case engine.KindSuccess:
		return Good.Render(IconSparkle + " " + msg)
	case engine.KindWarning:
		return Warn.Render(IconWarn + " " + msg)
	case engine.KindError:
		return Bad.Render(IconError + " " + msg)
	default:
		return Muted.Render(IconInfo + " " + msg)
	}
}
