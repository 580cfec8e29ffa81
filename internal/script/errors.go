package script

import "errors"

// Sentinel errors for script loading.
var (
	// ErrNoHandler is returned when a script does not define on_event.
	ErrNoHandler = errors.New("script does not define an on_event function")

	// ErrNoSignature is returned when a script's signature global is
	// missing, empty, or names no known event types.
	ErrNoSignature = errors.New("script does not declare a usable signature")
)
