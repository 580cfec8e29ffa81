package event

// defaultQueueCapacity is the initial ring size for a Bus queue.
const defaultQueueCapacity = 64

// queue is a slice-backed FIFO ring buffer of pending events.
// It grows on demand and never reorders: pop returns events in exactly
// the order push received them.
type queue struct {
	buf  []Event
	head int
	n    int
}

func newQueue(capacity int) *queue {
	if capacity <= 0 {
		capacity = defaultQueueCapacity
	}
	return &queue{buf: make([]Event, capacity)}
}

func (q *queue) push(ev Event) {
	if q.n == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.n)%len(q.buf)] = ev
	q.n++
}

func (q *queue) pop() (Event, bool) {
	if q.n == 0 {
		return Event{}, false
	}
	ev := q.buf[q.head]
	q.buf[q.head] = Event{} // release payload reference
	q.head = (q.head + 1) % len(q.buf)
	q.n--
	return ev, true
}

func (q *queue) len() int {
	return q.n
}

// grow doubles the ring, copying pending events head-first so FIFO
// order is preserved across the reallocation.
func (q *queue) grow() {
	buf := make([]Event, 2*len(q.buf))
	for i := 0; i < q.n; i++ {
		buf[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = buf
	q.head = 0
}
