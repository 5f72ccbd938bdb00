package ecs

import "reflect"

// Component is a staged component value plus the capability record the
// type-erased storage needs to handle it: how to construct a fresh instance
// and how to assign a value over a possibly-recycled one. Built by With at
// a call site that knows the concrete type; everything downstream is opaque.
type Component struct {
	rtype  reflect.Type
	value  any
	create func() any
	assign func(dst, src any)
}

// With stamps v for use in Commands.Spawn.
func With[T any](v T) Component {
	return Component{
		rtype:  typeOf[T](),
		value:  v,
		create: func() any { return new(T) },
		assign: func(dst, src any) { *dst.(*T) = src.(T) },
	}
}

// TypeKey names a component type in a query without resolving its TypeID;
// resolution happens against the queried World's own registry.
type TypeKey struct {
	rtype reflect.Type
}

// Key builds the query key for component type T.
func Key[T any]() TypeKey {
	return TypeKey{rtype: typeOf[T]()}
}
