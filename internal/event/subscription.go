package event

// Subscription is the capability returned by Subscribe. It is the only
// handle for removing a handler from the Bus: the handler itself never
// needs to know about the bus, and a subscription's lifetime can be
// tied to a scope with defer.
type Subscription struct {
	bus       *Bus
	tok       token
	signature Type
	closed    bool
}

// Close removes the handler from the Bus. It is safe to call multiple
// times or on a nil Subscription; the underlying registry entry is
// spent exactly once.
//
// Closing mid-dispatch is supported: a handler may close its own
// subscription or any other, and the closed handler is never invoked
// afterwards, including for the event currently propagating.
func (s *Subscription) Close() {
	if s == nil || s.closed {
		return
	}
	s.closed = true
	s.bus.registry.remove(s.tok)
}

// Signature returns the bitmask this subscription was registered with.
// Signatures are fixed at subscribe time.
func (s *Subscription) Signature() Type {
	return s.signature
}
