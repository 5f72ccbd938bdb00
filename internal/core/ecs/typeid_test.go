package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type typeA struct{ _ int }
type typeB struct{ _ string }

func TestTypeRegistryStableIDs(t *testing.T) {
	r := newTypeRegistry()
	a1 := r.id(categoryComponent, typeOf[typeA]())
	b1 := r.id(categoryComponent, typeOf[typeB]())
	a2 := r.id(categoryComponent, typeOf[typeA]())

	assert.Equal(t, a1, a2, "identical (category, type) always yields the same id")
	assert.NotEqual(t, a1, b1, "distinct types within a category never collide")
}

func TestTypeRegistryCategoriesIndependent(t *testing.T) {
	r := newTypeRegistry()
	asComponent := r.id(categoryComponent, typeOf[typeA]())
	asResource := r.id(categoryResource, typeOf[typeA]())

	// both counters start at zero, so the same type lands on the same
	// number in each category while remaining independently assigned
	assert.Equal(t, TypeID(0), asComponent)
	assert.Equal(t, TypeID(0), asResource)

	b := r.id(categoryResource, typeOf[typeB]())
	assert.Equal(t, TypeID(1), b)
	assert.Equal(t, TypeID(0), r.id(categoryComponent, typeOf[typeA]()))
}

func TestTypeRegistryPerWorld(t *testing.T) {
	// ids are world-owned, not process-global: a fresh registry restarts
	r1 := newTypeRegistry()
	r1.id(categoryComponent, typeOf[typeB]())
	r1.id(categoryComponent, typeOf[typeA]())

	r2 := newTypeRegistry()
	assert.Equal(t, TypeID(0), r2.id(categoryComponent, typeOf[typeA]()))
}
