package app

import (
	"errors"
	"fmt"
)

// ErrQuit signals a clean shutdown requested by the user.
var ErrQuit = errors.New("quit requested")

// InitError wraps a failure while bringing up an application component.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("initializing %s: %v", e.Component, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}
