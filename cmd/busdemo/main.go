// Package main is a minimal non-interactive tour of the event bus:
// two handlers share a signature, the first one stops propagation,
// and the second never sees the event.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dshills/eventkit/internal/event"
	"github.com/dshills/eventkit/internal/input"
)

func main() {
	os.Exit(run())
}

func run() int {
	bus := event.NewBus()

	blocker, err := bus.SubscribeFunc(
		event.TypeKeyPressed|event.TypeKeyReleased,
		func(ctx context.Context, ev event.Event) (bool, error) {
			fmt.Printf("blocker: %s %v, stopping propagation\n", ev.Type(), ev.Payload())
			return true, nil
		},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer blocker.Close()

	listener, err := bus.SubscribeFunc(
		event.TypeKeyPressed|event.TypeKeyReleased,
		func(ctx context.Context, ev event.Event) (bool, error) {
			fmt.Printf("listener: %s (should not be reached)\n", ev.Type())
			return false, nil
		},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer listener.Close()

	ev := event.New(event.TypeKeyPressed, input.Key{Rune: 'a'})
	if err := bus.Enqueue(ev); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := bus.Drain(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	stats := bus.Stats()
	fmt.Printf("dispatched %d, delivered %d, stopped %d\n",
		stats.Dispatched, stats.Delivered, stats.Stopped)
	return 0
}
