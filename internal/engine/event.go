package engine

// Events is a per-frame event queue. Producers Send during input polling,
// one consumer drains it once per frame. Arrival order is preserved.
type Events[T any] struct {
	pending []T
}

func (e *Events[T]) Send(ev T) {
	e.pending = append(e.pending, ev)
}

// Drain calls fn for each queued event in arrival order and empties the queue.
// A nil fn discards the events.
func (e *Events[T]) Drain(fn func(T)) {
	if fn != nil {
		for _, ev := range e.pending {
			fn(ev)
		}
	}
	e.pending = e.pending[:0]
}

// Len returns the number of queued events (for debugging)
func (e *Events[T]) Len() int {
	return len(e.pending)
}

// MouseMotion is a raw pointer delta in screen pixels. Positive DY is downward.
type MouseMotion struct {
	DX, DY float32
}

// MouseWheel is a scroll delta. Positive Y scrolls away from the user.
type MouseWheel struct {
	Y float32
}
