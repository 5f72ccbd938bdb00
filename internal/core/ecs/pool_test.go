package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type poolWidget struct {
	n int
}

func newWidgetPool() *pool {
	return newPool(func() any { return new(poolWidget) })
}

func TestPoolCreateFresh(t *testing.T) {
	p := newWidgetPool()
	a := p.Create()
	b := p.Create()
	require.NotSame(t, a.inst, b.inst)
	assert.NotEqual(t, a.ticket, b.ticket)
	assert.Equal(t, 2, p.Len())
}

func TestPoolRecyclesDestroyed(t *testing.T) {
	p := newWidgetPool()
	a := p.Create()
	a.inst.(*poolWidget).n = 42
	p.Destroy(a)
	assert.Equal(t, 0, p.Len())

	b := p.Create()
	assert.Same(t, a.inst, b.inst)
	assert.NotEqual(t, a.ticket, b.ticket)
	// cached instances are not re-zeroed on reuse
	assert.Equal(t, 42, b.inst.(*poolWidget).n)
}

func TestPoolDestroySwapsWithLast(t *testing.T) {
	p := newWidgetPool()
	a := p.Create()
	b := p.Create()
	c := p.Create()

	p.Destroy(b)
	assert.Equal(t, 2, p.Len())

	// remaining handles stay tracked and destroyable
	p.Destroy(a)
	p.Destroy(c)
	assert.Equal(t, 0, p.Len())
}

func TestPoolZeroSizeInstancesKeepIdentity(t *testing.T) {
	// zero-size values all share one allocation, so liveness must not key
	// on the instance pointer
	p := newPool(func() any { return new(struct{}) })
	a := p.Create()
	b := p.Create()
	assert.Equal(t, 2, p.Len())

	require.NotPanics(t, func() { p.Destroy(a) })
	require.NotPanics(t, func() { p.Destroy(b) })
	assert.Equal(t, 0, p.Len())
	assert.Panics(t, func() { p.Destroy(b) })
}

func TestPoolDestroyUntrackedPanics(t *testing.T) {
	p := newWidgetPool()
	p.Create()
	assert.Panics(t, func() { p.Destroy(handle{inst: new(poolWidget), ticket: 999}) })
}

func TestPoolDoubleDestroyPanics(t *testing.T) {
	p := newWidgetPool()
	a := p.Create()
	p.Destroy(a)
	assert.Panics(t, func() { p.Destroy(a) })
}

func TestPoolNilCreatePanics(t *testing.T) {
	assert.Panics(t, func() { newPool(nil) })
}
