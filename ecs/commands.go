package ecs

import "reflect"

// Commands provides a buffer for deferred world operations that are executed
// at the end of a scheduler pass. This lets systems queue structural changes
// (spawns, destroys, component adds and removes) while iterating storage.
type Commands struct {
	spawns   []spawnCommand
	destroys []Entity
	adds     []addComponentCommand
	removes  []removeComponentCommand
	defers   []deferCommand
}

func newCommands() *Commands {
	return &Commands{}
}

type deferCommand struct {
	fn func(w *World)
}

type spawnCommand struct {
	components []any
}

type addComponentCommand struct {
	entity    Entity
	component any
}

type removeComponentCommand struct {
	entity   Entity
	compType reflect.Type
}

// Defer queues a function to run against the world after all other commands.
func (c *Commands) Defer(fn func(w *World)) {
	c.defers = append(c.defers, deferCommand{fn: fn})
}

// Spawn queues creation of a new entity carrying the given components.
// Each component's type must be registered before the buffer is flushed.
func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, spawnCommand{components: components})
}

// Destroy queues an entity destruction.
func (c *Commands) Destroy(e Entity) {
	c.destroys = append(c.destroys, e)
}

// Add queues a component attachment. The component's type must be registered
// before the buffer is flushed.
func (c *Commands) Add(e Entity, component any) {
	c.adds = append(c.adds, addComponentCommand{
		entity:    e,
		component: component,
	})
}

// Remove queues removal of the entity's component of the given type.
func (c *Commands) Remove(e Entity, compType reflect.Type) {
	c.removes = append(c.removes, removeComponentCommand{
		entity:   e,
		compType: compType,
	})
}

// Flush applies all queued commands to the world, resetting the buffer state.
// Destroys run first; adds and removes targeting a destroyed entity are
// suppressed so a queued attach cannot resurrect storage for a dead handle.
func (c *Commands) Flush(w *World) {
	destroyed := make(map[Entity]bool)

	for _, e := range c.destroys {
		w.DestroyEntity(e)
		destroyed[e] = true
	}

	for _, cmd := range c.removes {
		if !destroyed[cmd.entity] {
			w.components.removeErased(cmd.entity, cmd.compType)
		}
	}

	for _, cmd := range c.adds {
		if !destroyed[cmd.entity] {
			w.components.insertErased(cmd.entity, cmd.component)
		}
	}

	for _, cmd := range c.spawns {
		e := w.CreateEntity()
		for _, component := range cmd.components {
			w.components.insertErased(e, component)
		}
	}

	for _, df := range c.defers {
		df.fn(w)
	}

	c.spawns = c.spawns[:0]
	c.destroys = c.destroys[:0]
	c.adds = c.adds[:0]
	c.removes = c.removes[:0]
	c.defers = c.defers[:0]
}
