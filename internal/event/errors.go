package event

import "errors"

// Sentinel errors for the event bus.
var (
	// ErrInvalidEvent is returned by Enqueue for an event whose type is
	// not exactly one bit.
	ErrInvalidEvent = errors.New("event type must be a single bit")

	// ErrNilHandler is returned when a nil handler is subscribed.
	ErrNilHandler = errors.New("handler cannot be nil")

	// ErrEmptySignature is returned when a subscription signature has
	// no bits set; such a handler could never match anything.
	ErrEmptySignature = errors.New("subscription signature is empty")
)
