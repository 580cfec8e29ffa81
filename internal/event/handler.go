package event

import "context"

// Handler is the interface for event handlers.
//
// Handle returns stop == true to end propagation of the current event:
// no handler registered after this one is offered the event. Later
// events are unaffected. A non-nil error is reported to the Bus's
// ErrorHandler and does not stop propagation.
//
// A handler does not carry its own signature; the signature bitmask is
// supplied when the handler is subscribed, so the same handler can be
// subscribed with different signatures.
type Handler interface {
	Handle(ctx context.Context, ev Event) (stop bool, err error)
}

// HandlerFunc is a function adapter for Handler.
type HandlerFunc func(ctx context.Context, ev Event) (bool, error)

// Handle implements the Handler interface.
func (f HandlerFunc) Handle(ctx context.Context, ev Event) (bool, error) {
	return f(ctx, ev)
}

// ErrorHandler is called when a handler returns an error.
type ErrorHandler func(ev Event, err error)

// PanicHandler is called when a handler panics during dispatch.
// It receives the event being processed, the panic value, and the
// stack trace captured at the point of the panic.
type PanicHandler func(ev Event, recovered any, stack []byte)
