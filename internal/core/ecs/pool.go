package ecs

import "fmt"

// handle identifies one live instance drawn from a pool. Identity rides on
// the ticket, not the instance pointer: zero-size types share a single
// allocation, so pointer comparison cannot tell their instances apart.
type handle struct {
	inst   any
	ticket uint64
}

// pool allocates instances of exactly one data type it has no compile-time
// knowledge of. The create and assign callbacks are captured at the first
// call site that mentions the concrete type, so the owning store only ever
// handles opaque instance handles.
//
// Destroyed instances are parked in a cache and handed back by Create
// without being re-zeroed; callers overwrite field state on reuse.
type pool struct {
	live   []handle
	cache  []any
	index  map[uint64]int
	next   uint64
	create func() any
}

func newPool(create func() any) *pool {
	if create == nil {
		panic("ecs: pool requires a non-nil create function")
	}
	return &pool{
		index:  make(map[uint64]int, 16),
		create: create,
	}
}

// Create returns a live handle, drawing the instance from the cache when
// one is available and constructing otherwise. Each handle gets a fresh
// ticket even when the instance memory is recycled.
func (p *pool) Create() handle {
	var inst any
	if n := len(p.cache); n > 0 {
		inst = p.cache[n-1]
		p.cache = p.cache[:n-1]
	} else {
		inst = p.create()
	}
	h := handle{inst: inst, ticket: p.next}
	p.next++
	p.index[h.ticket] = len(p.live)
	p.live = append(p.live, h)
	return h
}

// Destroy releases a live handle into the cache in O(1) by swapping it with
// the last live entry and popping. The handle must be live; destroying an
// untracked handle is a caller bug and panics.
func (p *pool) Destroy(h handle) {
	idx, ok := p.index[h.ticket]
	if !ok {
		panic(fmt.Sprintf("ecs: destroy of instance not tracked by pool: %T", h.inst))
	}
	last := len(p.live) - 1
	if idx != last {
		moved := p.live[last]
		p.live[idx] = moved
		p.index[moved.ticket] = idx
	}
	p.live = p.live[:last]
	delete(p.index, h.ticket)
	p.cache = append(p.cache, h.inst)
}

func (p *pool) Len() int {
	return len(p.live)
}
