package event

import (
	"time"

	"github.com/google/uuid"
)

// Event is an immutable record of something that happened.
// Events are created by a producer, moved through the Bus queue, and
// discarded after dispatch.
type Event struct {
	typ     Type
	payload any
	meta    Metadata
}

// Metadata contains standard information attached to every event.
type Metadata struct {
	// ID is a unique identifier for this event instance.
	ID string

	// Timestamp is when the event was created.
	Timestamp time.Time

	// Source identifies the producer that created the event.
	Source string
}

// New creates an event of the given type. The payload is opaque to the
// dispatcher; handlers type-assert it.
func New(typ Type, payload any) Event {
	return NewWithSource(typ, payload, "")
}

// NewWithSource creates an event with an explicit source name.
func NewWithSource(typ Type, payload any, source string) Event {
	return Event{
		typ:     typ,
		payload: payload,
		meta: Metadata{
			ID:        uuid.New().String(),
			Timestamp: time.Now(),
			Source:    source,
		},
	}
}

// Type returns the event's type.
func (e Event) Type() Type {
	return e.typ
}

// Is returns true iff the event's type equals t exactly.
// This is an equality test, not a bitmask intersection.
func (e Event) Is(t Type) bool {
	return e.typ == t
}

// Payload returns the event payload.
func (e Event) Payload() any {
	return e.payload
}

// Metadata returns the event metadata.
func (e Event) Metadata() Metadata {
	return e.meta
}
