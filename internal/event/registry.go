package event

// token identifies one registry entry. It packs an arena index with a
// slot generation so a token kept past its entry's removal can never
// alias a recycled slot.
type token uint64

func makeToken(idx int32, gen uint32) token {
	return token(uint64(gen)<<32 | uint64(uint32(idx)))
}

func (t token) index() int32 {
	return int32(uint32(t))
}

func (t token) generation() uint32 {
	return uint32(t >> 32)
}

type entryState uint8

const (
	// stateFree marks a recycled slot awaiting reuse.
	stateFree entryState = iota

	// stateActive marks a live, dispatchable entry.
	stateActive

	// stateDead marks an entry removed during a live walk. Dead entries
	// keep their list links until the outermost walk finishes.
	stateDead
)

// entry is one arena slot. Entries are threaded on an intrusive doubly
// linked list in registration order.
type entry struct {
	handler   Handler
	signature Type
	gen       uint32
	state     entryState
	prev      int32
	next      int32
}

// registry is an ordered collection of subscribed handlers.
//
// Entries live in an arena addressed by generation-checked tokens,
// giving O(1) removal without invalidating any other entry's identity.
// Removal during a walk marks the entry dead; dead entries are skipped
// by the walk and swept only when the walk depth returns to zero, so
// the traversal never skips or revisits a surviving entry no matter
// which entries are removed mid-walk.
type registry struct {
	entries []entry
	free    []int32
	dead    []int32
	head    int32
	tail    int32
	walking int
	size    int
}

func newRegistry() *registry {
	return &registry{head: -1, tail: -1}
}

// add appends a handler at the tail of the registration order and
// returns the token that must be used to remove it.
func (r *registry) add(h Handler, sig Type) token {
	var idx int32
	if n := len(r.free); n > 0 {
		idx = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		r.entries = append(r.entries, entry{})
		idx = int32(len(r.entries) - 1)
	}

	e := &r.entries[idx]
	e.handler = h
	e.signature = sig
	e.state = stateActive
	e.prev = r.tail
	e.next = -1

	if r.tail >= 0 {
		r.entries[r.tail].next = idx
	} else {
		r.head = idx
	}
	r.tail = idx
	r.size++

	return makeToken(idx, e.gen)
}

// remove removes exactly the entry identified by tok.
//
// An out-of-range, stale, or already-removed token means the caller's
// view of the registry has desynchronized from reality; continuing
// would corrupt dispatch, so remove panics rather than recovering.
func (r *registry) remove(tok token) {
	idx := tok.index()
	if idx < 0 || int(idx) >= len(r.entries) {
		panic("event: unregister of unknown handler token")
	}

	e := &r.entries[idx]
	if e.state == stateFree || e.gen != tok.generation() {
		panic("event: unregister of stale handler token")
	}
	if e.state == stateDead {
		panic("event: handler token unregistered twice")
	}

	e.state = stateDead
	r.size--

	if r.walking > 0 {
		// A walk is standing on the list; keep the links intact and
		// defer the unlink until the outermost walk finishes.
		r.dead = append(r.dead, idx)
		return
	}
	r.release(idx)
}

// walk visits active entries in registration order. Returning false
// from fn ends the walk. Entries removed by fn are skipped; entries
// added by fn are visited if the walk has not yet passed their
// position. Safe at any reentrancy depth.
func (r *registry) walk(fn func(h Handler, sig Type) bool) {
	r.walking++
	defer func() {
		r.walking--
		if r.walking == 0 {
			r.sweep()
		}
	}()

	// The post statement re-reads next after fn runs: fn may grow the
	// arena (invalidating held pointers) or mark entries dead, but dead
	// entries keep valid links until the sweep.
	for idx := r.head; idx >= 0; idx = r.entries[idx].next {
		e := &r.entries[idx]
		if e.state != stateActive {
			continue
		}
		if !fn(e.handler, e.signature) {
			return
		}
	}
}

// release unlinks a slot and recycles it. The generation bump retires
// every token previously issued for this slot.
func (r *registry) release(idx int32) {
	e := &r.entries[idx]

	if e.prev >= 0 {
		r.entries[e.prev].next = e.next
	} else {
		r.head = e.next
	}
	if e.next >= 0 {
		r.entries[e.next].prev = e.prev
	} else {
		r.tail = e.prev
	}

	e.handler = nil
	e.state = stateFree
	e.gen++
	e.prev = -1
	e.next = -1
	r.free = append(r.free, idx)
}

func (r *registry) sweep() {
	for _, idx := range r.dead {
		r.release(idx)
	}
	r.dead = r.dead[:0]
}

// count returns the number of live entries.
func (r *registry) count() int {
	return r.size
}
