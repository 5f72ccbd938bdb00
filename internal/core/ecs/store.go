package ecs

import "fmt"

// componentInfo pairs the pool owning one component type's instances with
// the sparse set indexing which entities hold it.
type componentInfo struct {
	pool *pool
	set  *sparseSet
}

// resourceInfo holds the at-most-one live instance of a resource type. A
// removed resource keeps its entry with a nil instance so a later set can
// rebuild it.
type resourceInfo struct {
	instance any
}

// store owns all component and resource storage for a World. It is only
// ever mutated at command commit points, never while systems iterate.
type store struct {
	components map[TypeID]*componentInfo
	containers map[Entity]map[TypeID]handle
	resources  map[TypeID]*resourceInfo
	pageSize   uint32
}

func newStore(pageSize uint32) *store {
	return &store{
		components: make(map[TypeID]*componentInfo, 16),
		containers: make(map[Entity]map[TypeID]handle, 256),
		resources:  make(map[TypeID]*resourceInfo, 8),
		pageSize:   pageSize,
	}
}

// ensureComponent lazily creates the (pool, sparse set) pair for a
// never-seen component type. Idempotent on repeat calls; the callbacks from
// the first call win.
func (s *store) ensureComponent(id TypeID, create func() any) *componentInfo {
	if info, ok := s.components[id]; ok {
		return info
	}
	info := &componentInfo{
		pool: newPool(create),
		set:  newSparseSet(s.pageSize),
	}
	s.components[id] = info
	return info
}

// attach inserts an already-assigned instance as entity e's component of
// type id. A duplicate stamp for the same type on one spawn wins over the
// earlier one, which goes back to the pool; the sparse set is never double
// populated.
func (s *store) attach(e Entity, id TypeID, h handle) {
	info, ok := s.components[id]
	if !ok {
		panic(fmt.Sprintf("ecs: attach against component storage never created (type %d)", id))
	}
	container, ok := s.containers[e]
	if !ok {
		container = make(map[TypeID]handle, 4)
		s.containers[e] = container
	}
	if old, ok := container[id]; ok {
		info.pool.Destroy(old)
	} else {
		info.set.add(e)
	}
	container[id] = h
}

// destroyEntity releases every component instance held by e and drops e
// from every sparse set. Unknown entities are a no-op.
func (s *store) destroyEntity(e Entity) {
	container, ok := s.containers[e]
	if !ok {
		return
	}
	for id, h := range container {
		info, ok := s.components[id]
		if !ok {
			panic(fmt.Sprintf("ecs: destroy against component storage never created (type %d)", id))
		}
		info.pool.Destroy(h)
		info.set.remove(e)
	}
	delete(s.containers, e)
}

// query returns the entities holding every listed component type. The first
// type's sparse set drives the scan; each candidate is filtered against the
// remaining types through its component container.
func (s *store) query(ids []TypeID) []Entity {
	if len(ids) == 0 {
		return nil
	}
	first, ok := s.components[ids[0]]
	if !ok {
		return nil
	}
	var out []Entity
scan:
	for _, e := range first.set.entities() {
		container := s.containers[e]
		for _, id := range ids[1:] {
			if _, ok := container[id]; !ok {
				continue scan
			}
		}
		out = append(out, e)
	}
	return out
}

func (s *store) has(e Entity, id TypeID) bool {
	container, ok := s.containers[e]
	if !ok {
		return false
	}
	_, ok = container[id]
	return ok
}

// get returns e's instance of component type id. The component must be
// present; callers guard with has first.
func (s *store) get(e Entity, id TypeID) any {
	h, ok := s.containers[e][id]
	if !ok {
		panic(fmt.Sprintf("ecs: get of component %d absent on entity %d; check Has first", id, e))
	}
	return h.inst
}

// setResource binds inst as the singleton for resource type id, replacing
// any previous instance. A resource cleared by removeResource is recreatable
// here.
func (s *store) setResource(id TypeID, inst any) {
	if info, ok := s.resources[id]; ok {
		info.instance = inst
		return
	}
	s.resources[id] = &resourceInfo{instance: inst}
}

// removeResource clears the live instance but keeps the type registered.
func (s *store) removeResource(id TypeID) {
	if info, ok := s.resources[id]; ok {
		info.instance = nil
	}
}

func (s *store) hasResource(id TypeID) bool {
	info, ok := s.resources[id]
	return ok && info.instance != nil
}

// getResource returns the live instance for resource type id. The resource
// must be present; callers guard with hasResource first.
func (s *store) getResource(id TypeID) any {
	info, ok := s.resources[id]
	if !ok || info.instance == nil {
		panic(fmt.Sprintf("ecs: get of resource %d that is not set; check Has first", id))
	}
	return info.instance
}

// clear drops all component storage, containers and resources.
func (s *store) clear() {
	s.components = make(map[TypeID]*componentInfo, 16)
	s.containers = make(map[Entity]map[TypeID]handle, 256)
	s.resources = make(map[TypeID]*resourceInfo, 8)
}
