package ecs

import "reflect"

// TypeID identifies one data type within one category for the lifetime of
// the owning World. Ids are assigned the first time a (category, type) pair
// is requested and are never reclaimed.
type TypeID uint32

type typeCategory uint8

const (
	categoryComponent typeCategory = iota
	categoryResource
	categoryCount
)

// typeRegistry maps (category, concrete type) to a TypeID. It is owned by a
// World rather than being process-global so independently built worlds never
// share or collide ids, and tests can reset the mapping by building a fresh
// World.
type typeRegistry struct {
	ids  [categoryCount]map[reflect.Type]TypeID
	next [categoryCount]TypeID
}

func newTypeRegistry() *typeRegistry {
	r := &typeRegistry{}
	for c := range r.ids {
		r.ids[c] = make(map[reflect.Type]TypeID, 16)
	}
	return r
}

// id returns the identifier for t within cat, assigning the next free id on
// first request. The same type used as both a component and a resource gets
// two independent ids.
func (r *typeRegistry) id(cat typeCategory, t reflect.Type) TypeID {
	if id, ok := r.ids[cat][t]; ok {
		return id
	}
	id := r.next[cat]
	r.next[cat]++
	r.ids[cat][t] = id
	return id
}

// typeOf resolves the reflect.Type for T without needing a value of T.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
