// Package event provides a single-slot-per-type mailbox with a one-tick
// read delay. A value written during tick N becomes visible to readers for
// exactly tick N+1 and is cleared at the N+1 → N+2 boundary. It is a
// mailbox, not a queue: writing the same type again before it is read
// overwrites, and last write wins.
package event

import "reflect"

// Channel owns one staged slot and one visible slot per event type. The
// owning scheduler calls Age once per tick boundary, after all systems have
// run; systems only touch the channel through Writer and Reader views.
type Channel struct {
	visible map[reflect.Type]any
	staged  map[reflect.Type]any

	// pendingClear holds the clear step for every slot promoted at the
	// previous boundary. Running these before promoting means a slot that
	// was re-written during its visible tick survives into the next one.
	pendingClear []func()
}

func NewChannel() *Channel {
	return &Channel{
		visible: make(map[reflect.Type]any, 8),
		staged:  make(map[reflect.Type]any, 8),
	}
}

// Age advances the channel one tick boundary: slots published at the
// previous boundary are cleared, then this tick's writes are promoted from
// staged to visible and their own clear step is queued for the next
// boundary.
func (c *Channel) Age() {
	for _, fn := range c.pendingClear {
		fn()
	}
	c.pendingClear = c.pendingClear[:0]
	for t, v := range c.staged {
		c.visible[t] = v
		c.pendingClear = append(c.pendingClear, func() { delete(c.visible, t) })
	}
	clear(c.staged)
}

// Clear drops all staged and visible slots.
func (c *Channel) Clear() {
	clear(c.visible)
	clear(c.staged)
	c.pendingClear = nil
}

// Writer stages events of type T.
type Writer[T any] struct {
	ch *Channel
}

func WriterFor[T any](ch *Channel) Writer[T] {
	return Writer[T]{ch: ch}
}

// Write stages v to become visible after the current tick's systems have
// all finished. A second write to the same type overwrites the first.
func (w Writer[T]) Write(v T) {
	w.ch.staged[reflect.TypeOf((*T)(nil)).Elem()] = v
}

// Reader observes events of type T published at the end of the previous
// tick.
type Reader[T any] struct {
	ch *Channel
}

func ReaderFor[T any](ch *Channel) Reader[T] {
	return Reader[T]{ch: ch}
}

// Has reports whether an event of type T is visible this tick.
func (r Reader[T]) Has() bool {
	_, ok := r.ch.visible[reflect.TypeOf((*T)(nil)).Elem()]
	return ok
}

// Read returns the visible event of type T. The event must be present —
// guard with Has first; reading an absent slot is a caller bug and panics.
func (r Reader[T]) Read() T {
	v, ok := r.ch.visible[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		panic("event: read of empty slot; check Has first")
	}
	return v.(T)
}
