package event_test

import (
	"context"
	"fmt"

	"github.com/dshills/eventkit/internal/event"
)

// Example_basicUsage demonstrates queueing and draining events.
func Example_basicUsage() {
	bus := event.NewBus()

	sub, err := bus.SubscribeFunc(
		event.TypeKeyPressed|event.TypeKeyReleased,
		func(ctx context.Context, ev event.Event) (bool, error) {
			fmt.Printf("key activity: %s\n", ev.Type())
			return false, nil
		},
	)
	if err != nil {
		fmt.Printf("Subscribe failed: %v\n", err)
		return
	}
	defer sub.Close()

	bus.Enqueue(event.New(event.TypeKeyPressed, nil))
	bus.Enqueue(event.New(event.TypeKeyReleased, nil))
	if err := bus.Drain(context.Background()); err != nil {
		fmt.Printf("Drain failed: %v\n", err)
	}

	// Output:
	// key activity: key_pressed
	// key activity: key_released
}

// Example_stopPropagation shows a handler ending delivery of one event.
func Example_stopPropagation() {
	bus := event.NewBus()

	bus.SubscribeFunc(event.TypeKeyPressed, func(ctx context.Context, ev event.Event) (bool, error) {
		fmt.Println("first handler claims the key press")
		return true, nil
	})
	bus.SubscribeFunc(event.TypeKeyPressed, func(ctx context.Context, ev event.Event) (bool, error) {
		fmt.Println("never reached")
		return false, nil
	})

	bus.Enqueue(event.New(event.TypeKeyPressed, nil))
	bus.Drain(context.Background())

	// Output: first handler claims the key press
}
