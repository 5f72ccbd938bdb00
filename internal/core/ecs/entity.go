package ecs

// Entity is an opaque handle with no intrinsic data. It joins component
// records across per-type storage tables.
type Entity uint32

// entityGen hands out monotonically increasing entity ids. An id is never
// handed out twice within a process; the dense slot an entity occupies in
// any one sparse set is recycled, the id itself is not.
type entityGen struct {
	next Entity
}

func (g *entityGen) Next() Entity {
	id := g.next
	g.next++
	return id
}
