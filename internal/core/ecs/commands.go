package ecs

// spawnRecord is one staged entity spawn: the eagerly allocated id plus the
// component stamps to attach at commit.
type spawnRecord struct {
	entity Entity
	comps  []Component
}

// Commands stages the structural mutations a system requests during a tick.
// Nothing here touches live storage while systems are iterating; the World
// commits every buffer once all systems in the tick have run. The one
// exception is SetResource, which applies immediately so resources seeded
// before the scheduler starts are visible to the very first system that
// reads them.
//
// Commit replays in a fixed phase order: destroys, then resource removals,
// then spawns.
type Commands struct {
	world      *World
	spawns     []spawnRecord
	destroys   []Entity
	resRemoves []TypeID
}

func newCommands(w *World) *Commands {
	return &Commands{world: w}
}

// Spawn stages a new entity carrying the given components and returns its
// id immediately, so the same tick can log the id or hand it to another
// staged command. The components land in storage only at commit.
func (c *Commands) Spawn(comps ...Component) Entity {
	e := c.world.entities.Next()
	c.spawns = append(c.spawns, spawnRecord{entity: e, comps: comps})
	return e
}

// Destroy stages the removal of e and every component it holds.
func (c *Commands) Destroy(e Entity) *Commands {
	c.destroys = append(c.destroys, e)
	return c
}

// SetResource binds v as the singleton resource of type T, applying
// immediately rather than at commit.
func SetResource[T any](c *Commands, v T) *Commands {
	id := c.world.types.id(categoryResource, typeOf[T]())
	inst := new(T)
	*inst = v
	c.world.store.setResource(id, inst)
	return c
}

// RemoveResource stages clearing the resource of type T. The type stays
// registered and a later SetResource recreates the instance.
func RemoveResource[T any](c *Commands) *Commands {
	id := c.world.types.id(categoryResource, typeOf[T]())
	c.resRemoves = append(c.resRemoves, id)
	return c
}

// pending reports how many deferred commands the buffer holds.
func (c *Commands) pending() int {
	return len(c.spawns) + len(c.destroys) + len(c.resRemoves)
}

// execute commits the buffer against live storage: destroys first, then
// resource removals, then spawns. Called exactly once per buffer, by the
// World, after every system in the tick has finished.
func (c *Commands) execute() {
	for _, e := range c.destroys {
		c.world.store.destroyEntity(e)
	}
	for _, id := range c.resRemoves {
		c.world.store.removeResource(id)
	}
	for _, sp := range c.spawns {
		for _, comp := range sp.comps {
			id := c.world.types.id(categoryComponent, comp.rtype)
			info := c.world.store.ensureComponent(id, comp.create)
			h := info.pool.Create()
			comp.assign(h.inst, comp.value)
			c.world.store.attach(sp.entity, id, h)
		}
	}
	c.spawns = nil
	c.destroys = nil
	c.resRemoves = nil
}
