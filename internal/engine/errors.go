package engine

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownPet   = errors.New("unknown pet")
	ErrWrongItem    = errors.New("item cannot be used that way")
	ErrNothingToUse = errors.New("nothing suitable in the bag")
)

// RosterFullError is returned when adopting past the household limit.
type RosterFullError struct {
	Limit int
}

func (e RosterFullError) Error() string {
	return fmt.Sprintf("the house is full (limit %d cats)", e.Limit)
}

// AssetError indicates a configured resource file could not be loaded.
// It is fatal at startup.
type AssetError struct {
	Path string
	Err  error
}

func (e AssetError) Error() string {
	return fmt.Sprintf("load asset %s: %v", e.Path, e.Err)
}

func (e AssetError) Unwrap() error {
	return e.Err
}
