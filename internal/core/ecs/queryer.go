package ecs

// Queryer is a read-only view over the World's component storage, handed to
// each update system for the duration of one tick. It observes the tick's
// shared snapshot: commands staged during the tick are not visible through
// it.
type Queryer struct {
	world *World
}

// Query returns the entities holding every keyed component type. The first
// key's sparse set drives the scan, so list the narrowest type first when
// it matters for speed; the result is the full intersection regardless of
// order. Result order is storage order, not spawn order.
func (q Queryer) Query(keys ...TypeKey) []Entity {
	if len(keys) == 0 {
		return nil
	}
	ids := make([]TypeID, len(keys))
	for i, k := range keys {
		ids[i] = q.world.types.id(categoryComponent, k.rtype)
	}
	return q.world.store.query(ids)
}

// HasKey reports whether e currently holds the keyed component type. It
// serves callers that resolve types at runtime, like the scripting bridge;
// Go systems use Has.
func (q Queryer) HasKey(e Entity, k TypeKey) bool {
	id := q.world.types.id(categoryComponent, k.rtype)
	return q.world.store.has(e, id)
}

// Has reports whether e currently holds a component of type T.
func Has[T any](q Queryer, e Entity) bool {
	id := q.world.types.id(categoryComponent, typeOf[T]())
	return q.world.store.has(e, id)
}

// Get returns e's component of type T for in-place reads and field writes.
// The component must be present — guard with Has first; calling Get on an
// absent component is a caller bug and panics.
func Get[T any](q Queryer, e Entity) *T {
	id := q.world.types.id(categoryComponent, typeOf[T]())
	return q.world.store.get(e, id).(*T)
}
