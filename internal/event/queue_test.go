package event

import "testing"

func TestQueue_FIFO(t *testing.T) {
	q := newQueue(4)

	if _, ok := q.pop(); ok {
		t.Fatal("expected pop on empty queue to report false")
	}

	q.push(New(TypeKeyPressed, 1))
	q.push(New(TypeKeyPressed, 2))
	q.push(New(TypeKeyPressed, 3))

	for want := 1; want <= 3; want++ {
		ev, ok := q.pop()
		if !ok {
			t.Fatalf("expected event %d, queue empty", want)
		}
		if ev.Payload() != want {
			t.Errorf("expected payload %d, got %v", want, ev.Payload())
		}
	}
	if q.len() != 0 {
		t.Errorf("expected empty queue, len %d", q.len())
	}
}

func TestQueue_WrapAndGrow(t *testing.T) {
	q := newQueue(2)

	// Advance head so the ring wraps, then force growth.
	q.push(New(TypeKeyPressed, 0))
	if _, ok := q.pop(); !ok {
		t.Fatal("expected pop to succeed")
	}

	for i := 1; i <= 5; i++ {
		q.push(New(TypeKeyPressed, i))
	}
	if q.len() != 5 {
		t.Fatalf("expected len 5, got %d", q.len())
	}

	for want := 1; want <= 5; want++ {
		ev, ok := q.pop()
		if !ok {
			t.Fatalf("expected event %d, queue empty", want)
		}
		if ev.Payload() != want {
			t.Errorf("expected payload %d after grow, got %v", want, ev.Payload())
		}
	}
}

func TestQueue_DefaultCapacity(t *testing.T) {
	q := newQueue(0)
	if len(q.buf) != defaultQueueCapacity {
		t.Errorf("expected default capacity %d, got %d", defaultQueueCapacity, len(q.buf))
	}
}
