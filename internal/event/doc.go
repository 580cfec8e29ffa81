// Package event provides an in-process publish/subscribe dispatcher.
//
// The dispatcher routes events to handlers by type signature: each
// subscription carries a bitmask of event types it wants, and an event
// is offered to every subscription whose mask intersects the event's
// type. Handlers run in registration order, and any handler can stop
// propagation of the current event.
//
// # Architecture
//
//	            ┌─────────────────────────────────────┐
//	            │                 Bus                  │
//	            │  - FIFO queue of pending events      │
//	            │  - handler registry (arena-backed)   │
//	            │  - drain loop with propagation stop  │
//	            └─────────────────────────────────────┘
//	                     │                    │
//	                     ▼                    ▼
//	           ┌─────────────────┐  ┌─────────────────┐
//	           │    registry      │  │     queue       │
//	           │  - token-checked │  │  - ring buffer  │
//	           │    entries       │  │  - strict FIFO  │
//	           │  - stable walk   │  └─────────────────┘
//	           └─────────────────┘
//
// # Basic Usage
//
//	bus := event.NewBus()
//
//	sub, err := bus.SubscribeFunc(
//	    event.TypeKeyPressed|event.TypeKeyReleased,
//	    func(ctx context.Context, ev event.Event) (bool, error) {
//	        fmt.Println("key activity")
//	        return true, nil // stop propagation for this event
//	    },
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer sub.Close()
//
//	bus.Enqueue(event.New(event.TypeKeyPressed, nil))
//	bus.Drain(context.Background())
//
// # Delivery Rules
//
// Enqueue never dispatches; Drain pops events one at a time and walks
// the registry in registration order. Earlier-registered handlers are
// offered each event first. A handler returning stop ends the walk for
// that event only; later events in the queue are unaffected. Draining
// an empty queue is a no-op.
//
// # Reentrancy
//
// Handlers may subscribe, close subscriptions (their own included),
// and enqueue further events while an event is being dispatched. A
// subscription closed mid-walk is never invoked afterwards, and its
// removal never skips or duplicates delivery to the remaining
// handlers. Events enqueued from a handler are drained in FIFO order
// by the drain already in progress; a nested Drain call from inside a
// handler is a no-op.
//
// # Concurrency
//
// The Bus is single-threaded: all calls must come from one goroutine
// (typically the main loop that owns the bus). Handler
// invocation is a direct, blocking call with no suspension or timeout.
//
// # Failure Model
//
// Handler errors are reported to the configured ErrorHandler and do
// not stop propagation. Handler panics are recovered, reported to the
// PanicHandler, and counted. Closing a subscription whose registry
// entry no longer exists is an invariant violation and panics.
package event
