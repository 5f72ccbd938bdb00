package ecs

import "math"

// DefaultPageSize is the sparse lookup page width used when none is
// configured.
const DefaultPageSize = 32

// absent marks an empty sparse slot.
const absent = uint32(math.MaxUint32)

// sparseSet indexes the entities holding one component type. The dense
// slice holds every member contiguously for cache-friendly iteration; the
// paged sparse table maps an entity id back to its dense slot so membership,
// insertion and removal are O(1). Pages are allocated lazily so large entity
// ids do not force one giant lookup table.
//
// Invariant: dense[lookup(e)] == e for every contained e. Removal swaps the
// victim with the last dense element, so iteration order is not spawn order
// and changes across removals.
type sparseSet struct {
	dense    []Entity
	pages    [][]uint32
	pageSize uint32
}

func newSparseSet(pageSize uint32) *sparseSet {
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	return &sparseSet{pageSize: pageSize}
}

// add appends e to the dense slice. The page for e must be assured before
// the slot is written, never after.
func (s *sparseSet) add(e Entity) {
	s.dense = append(s.dense, e)
	s.assure(e)
	s.pages[s.page(e)][s.offset(e)] = uint32(len(s.dense) - 1)
}

// remove is a no-op when e is absent. A non-last member is swapped with the
// last dense element and both lookup slots are fixed up; the last member is
// popped directly so no stale slot is ever read.
func (s *sparseSet) remove(e Entity) {
	if !s.contains(e) {
		return
	}
	idx := s.pages[s.page(e)][s.offset(e)]
	last := uint32(len(s.dense) - 1)
	if idx != last {
		moved := s.dense[last]
		s.dense[idx] = moved
		s.pages[s.page(moved)][s.offset(moved)] = idx
	}
	s.pages[s.page(e)][s.offset(e)] = absent
	s.dense = s.dense[:last]
}

func (s *sparseSet) contains(e Entity) bool {
	p := s.page(e)
	if p >= uint32(len(s.pages)) || s.pages[p] == nil {
		return false
	}
	return s.pages[p][s.offset(e)] != absent
}

func (s *sparseSet) len() int {
	return len(s.dense)
}

// entities exposes the dense slice for iteration. Callers must not mutate
// the set while ranging over it.
func (s *sparseSet) entities() []Entity {
	return s.dense
}

func (s *sparseSet) clear() {
	s.dense = nil
	s.pages = nil
}

func (s *sparseSet) page(e Entity) uint32   { return uint32(e) / s.pageSize }
func (s *sparseSet) offset(e Entity) uint32 { return uint32(e) % s.pageSize }

// assure grows the page table so the page for e exists.
func (s *sparseSet) assure(e Entity) {
	p := s.page(e)
	for uint32(len(s.pages)) <= p {
		s.pages = append(s.pages, nil)
	}
	if s.pages[p] == nil {
		pg := make([]uint32, s.pageSize)
		for i := range pg {
			pg[i] = absent
		}
		s.pages[p] = pg
	}
}
