package pet

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownSkill = errors.New("unknown skill")
	ErrInvalidName  = errors.New("invalid pet name")
)

// GateError indicates an action is blocked until a vital recovers.
type GateError struct {
	Action string
	Vital  string
	Need   float64
	Have   float64
}

func (e GateError) Error() string {
	return fmt.Sprintf("%s needs %s %.0f (currently %.0f)", e.Action, e.Vital, e.Need, e.Have)
}
