package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func members(s *sparseSet) map[Entity]bool {
	out := make(map[Entity]bool, s.len())
	for _, e := range s.entities() {
		out[e] = true
	}
	return out
}

func TestSparseSetAddContains(t *testing.T) {
	s := newSparseSet(0)
	for _, e := range []Entity{0, 1, 5, 31, 32, 33, 1000} {
		assert.False(t, s.contains(e))
		s.add(e)
		assert.True(t, s.contains(e))
	}
	assert.Equal(t, 7, s.len())
}

func TestSparseSetRemoveSwapsWithLast(t *testing.T) {
	s := newSparseSet(0)
	s.add(10)
	s.add(20)
	s.add(30)

	s.remove(20)
	require.Equal(t, 2, s.len())
	assert.False(t, s.contains(20))
	assert.True(t, s.contains(10))
	assert.True(t, s.contains(30))
	// dense stays compact and lookup still round-trips for the moved entity
	for i, e := range s.entities() {
		assert.Equal(t, uint32(i), s.pages[s.page(e)][s.offset(e)])
	}
}

func TestSparseSetRemoveLast(t *testing.T) {
	s := newSparseSet(0)
	s.add(7)
	s.remove(7)
	assert.Equal(t, 0, s.len())
	assert.False(t, s.contains(7))

	// removing again is a no-op
	s.remove(7)
	assert.Equal(t, 0, s.len())
}

func TestSparseSetRemoveAbsent(t *testing.T) {
	s := newSparseSet(0)
	s.add(1)
	s.remove(999) // never added, page never allocated
	assert.Equal(t, 1, s.len())
	assert.True(t, s.contains(1))
}

func TestSparseSetPageGrowth(t *testing.T) {
	s := newSparseSet(4)
	s.add(17) // page 4, pages 0-3 stay nil
	require.True(t, s.contains(17))
	assert.False(t, s.contains(3))
	assert.Nil(t, s.pages[0])
}

func TestSparseSetAddRemoveSequence(t *testing.T) {
	s := newSparseSet(8)
	live := make(map[Entity]bool)
	ops := []struct {
		add bool
		e   Entity
	}{
		{true, 3}, {true, 12}, {true, 64}, {false, 3}, {true, 9},
		{false, 64}, {true, 3}, {false, 12}, {true, 70}, {false, 9},
	}
	for _, op := range ops {
		if op.add {
			s.add(op.e)
			live[op.e] = true
		} else {
			s.remove(op.e)
			delete(live, op.e)
		}
		for e := range live {
			assert.True(t, s.contains(e), "entity %d should be contained", e)
		}
		assert.Equal(t, len(live), s.len())
		assert.Equal(t, live, members(s), "iteration must yield exactly the live set")
	}
}

func TestSparseSetClear(t *testing.T) {
	s := newSparseSet(0)
	s.add(1)
	s.add(2)
	s.clear()
	assert.Equal(t, 0, s.len())
	assert.False(t, s.contains(1))
}
