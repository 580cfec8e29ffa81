package event

import (
	"context"
	"runtime/debug"
)

// Bus is the central event dispatcher. It owns a FIFO queue of pending
// events and the handler registry.
//
// A Bus is created explicitly with NewBus and passed to producers and
// subscribers; there is no package-level instance. Always pass a *Bus:
// copying the struct would share internal state between two values.
//
// The Bus is single-threaded: all methods must be called from the same
// goroutine. Handlers may freely subscribe, close subscriptions, and
// enqueue events from inside Handle.
type Bus struct {
	registry *registry
	queue    *queue

	errorHandler ErrorHandler
	panicHandler PanicHandler

	draining bool
	stats    busStats
}

// busStats accumulates dispatch counters. Plain fields: the Bus is
// confined to one goroutine.
type busStats struct {
	enqueued      uint64
	dispatched    uint64
	delivered     uint64
	stopped       uint64
	handlerErrors uint64
	handlerPanics uint64
}

// Stats is a point-in-time snapshot of Bus counters.
type Stats struct {
	// Enqueued is the total number of events accepted by Enqueue.
	Enqueued uint64

	// Dispatched is the number of events popped and routed by Drain.
	Dispatched uint64

	// Delivered is the number of successful handler invocations.
	Delivered uint64

	// Stopped is the number of events whose propagation a handler ended early.
	Stopped uint64

	// HandlerErrors is the number of handler invocations that returned errors.
	HandlerErrors uint64

	// HandlerPanics is the number of handler invocations that panicked.
	HandlerPanics uint64

	// ActiveSubscriptions is the current number of live subscriptions.
	ActiveSubscriptions int

	// QueueDepth is the current number of pending events.
	QueueDepth int
}

// NewBus creates a Bus with the given options.
func NewBus(opts ...Option) *Bus {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Bus{
		registry:     newRegistry(),
		queue:        newQueue(cfg.queueCapacity),
		errorHandler: cfg.errorHandler,
		panicHandler: cfg.panicHandler,
	}
}

// Subscribe registers a handler for every event whose type intersects
// the signature bitmask. Earlier subscriptions are offered events
// first. The returned Subscription is the only way to unregister.
func (b *Bus) Subscribe(sig Type, h Handler) (*Subscription, error) {
	if h == nil {
		return nil, ErrNilHandler
	}
	if sig == TypeNone {
		return nil, ErrEmptySignature
	}

	tok := b.registry.add(h, sig)
	return &Subscription{bus: b, tok: tok, signature: sig}, nil
}

// SubscribeFunc is a convenience method for subscribing a function handler.
func (b *Bus) SubscribeFunc(sig Type, fn HandlerFunc) (*Subscription, error) {
	return b.Subscribe(sig, fn)
}

// Enqueue appends an event to the tail of the pending queue. It never
// dispatches; call Drain to deliver. An event whose type is not exactly
// one bit is rejected with ErrInvalidEvent.
func (b *Bus) Enqueue(ev Event) error {
	if !ev.typ.IsSingle() {
		return ErrInvalidEvent
	}
	b.queue.push(ev)
	b.stats.enqueued++
	return nil
}

// Drain pops and dispatches pending events in strict FIFO order until
// the queue is empty. Each event is offered to matching handlers in
// registration order; a handler returning stop ends the walk for that
// event only. Events enqueued by handlers mid-drain are processed in
// the same call.
//
// Draining an empty queue is a no-op. A nested Drain from inside a
// handler is also a no-op: the outer call owns the loop. Drain checks
// the context between events and returns ctx.Err() if it is cancelled;
// undelivered events stay queued.
func (b *Bus) Drain(ctx context.Context) error {
	if b.draining {
		return nil
	}
	b.draining = true
	defer func() { b.draining = false }()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		ev, ok := b.queue.pop()
		if !ok {
			return nil
		}
		b.dispatch(ctx, ev)
	}
}

// Stats returns a snapshot of bus counters.
func (b *Bus) Stats() Stats {
	return Stats{
		Enqueued:            b.stats.enqueued,
		Dispatched:          b.stats.dispatched,
		Delivered:           b.stats.delivered,
		Stopped:             b.stats.stopped,
		HandlerErrors:       b.stats.handlerErrors,
		HandlerPanics:       b.stats.handlerPanics,
		ActiveSubscriptions: b.registry.count(),
		QueueDepth:          b.queue.len(),
	}
}

// dispatch routes one event through the registry.
func (b *Bus) dispatch(ctx context.Context, ev Event) {
	b.stats.dispatched++
	b.registry.walk(func(h Handler, sig Type) bool {
		if !sig.Has(ev.typ) {
			return true
		}
		stop := b.invoke(ctx, ev, h)
		if stop {
			b.stats.stopped++
			return false
		}
		return true
	})
}

// invoke runs one handler with panic recovery. A panicking handler
// never stops propagation.
func (b *Bus) invoke(ctx context.Context, ev Event, h Handler) (stop bool) {
	defer func() {
		if rec := recover(); rec != nil {
			b.stats.handlerPanics++
			b.reportPanic(ev, rec, debug.Stack())
			stop = false
		}
	}()

	stop, err := h.Handle(ctx, ev)
	if err != nil {
		b.stats.handlerErrors++
		if b.errorHandler != nil {
			b.errorHandler(ev, err)
		}
		return stop
	}

	b.stats.delivered++
	return stop
}

// reportPanic calls the configured PanicHandler, shielding the bus
// from a panic handler that itself panics.
func (b *Bus) reportPanic(ev Event, rec any, stack []byte) {
	if b.panicHandler == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	b.panicHandler(ev, rec, stack)
}
