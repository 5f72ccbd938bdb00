package ecs

// Resources is a read view over the World's singleton resources, handed to
// each update system for the duration of one tick.
type Resources struct {
	world *World
}

// HasResource reports whether a resource of type T is currently set. This
// is the sanctioned probe before GetResource.
func HasResource[T any](r Resources) bool {
	id := r.world.types.id(categoryResource, typeOf[T]())
	return r.world.store.hasResource(id)
}

// GetResource returns the resource of type T. The resource must be set —
// guard with HasResource first; reading an unset resource is a caller bug
// and panics.
func GetResource[T any](r Resources) *T {
	id := r.world.types.id(categoryResource, typeOf[T]())
	return r.world.store.getResource(id).(*T)
}
