package ecs

import "iter"

// World composes one entity registry, one component manager, one event
// manager, a resource container, and a deferred command buffer. It is the
// single point through which application code creates and destroys entities,
// attaches and queries components, and publishes and drains events.
//
// A World is exclusively owned by the call site driving it: every operation is
// synchronous and runs to completion before the next begins, and nothing in
// the core is safe for concurrent use.
type World struct {
	entities   *EntityManager
	components *ComponentManager
	events     *EventManager
	resources  *Resources
	commands   *Commands
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		entities:   NewEntityManager(),
		components: NewComponentManager(),
		events:     NewEventManager(),
		resources:  newResources(),
		commands:   newCommands(),
	}
}

// CreateEntity allocates a fresh entity handle.
func (w *World) CreateEntity() Entity {
	return w.entities.Create()
}

// DestroyEntity removes the entity's components from every registered storage,
// then invalidates the handle. The component sweep happens strictly before the
// identity is destroyed; the other way around, a recycled handle could be
// swept by its predecessor's cleanup.
func (w *World) DestroyEntity(e Entity) {
	w.components.RemoveAll(e)
	w.entities.Destroy(e)
}

// Alive reports whether the handle refers to a live entity.
func (w *World) Alive(e Entity) bool {
	return w.entities.Alive(e)
}

// ClearEvents empties every event queue of every type.
func (w *World) ClearEvents() {
	w.events.Clear()
}

// Entities returns the underlying entity registry.
func (w *World) Entities() *EntityManager {
	return w.entities
}

// Components returns the underlying component manager.
func (w *World) Components() *ComponentManager {
	return w.components
}

// Events returns the underlying event manager.
func (w *World) Events() *EventManager {
	return w.events
}

// Commands returns the world's deferred command buffer. Queued commands take
// effect when the buffer is flushed, which the Scheduler does after each pass.
func (w *World) Commands() *Commands {
	return w.commands
}

// Register creates an empty storage for component type T if none exists.
// Idempotent; Add registers implicitly, so calling this is only needed when a
// type must be visible to sweeps or erased commands before its first Add.
func Register[T any](w *World) {
	registerComponent[T](w.components)
}

// Add attaches a component to the entity, overwriting any existing component
// of the same type. The entity's liveness is not checked: attaching to a
// destroyed or never-created handle simply creates an entry that normal
// entity iteration can no longer reach once the handle is stale.
func Add[T any](w *World, e Entity, component T) {
	registerComponent[T](w.components).Insert(e, component)
}

// Get returns a copy of the entity's component of type T. The second result
// is false when T has no storage or the entity has no entry; absence is a
// normal outcome, not an error.
func Get[T any](w *World, e Entity) (T, bool) {
	if cs := storageFor[T](w.components); cs != nil {
		if ptr := cs.get(e); ptr != nil {
			return *ptr, true
		}
	}
	var zero T
	return zero, false
}

// Mut returns a pointer to the entity's component of type T, or nil if the
// entity has none. Mutations through the pointer are immediately visible to
// subsequent reads. The pointer stays valid until the entry is removed.
func Mut[T any](w *World, e Entity) *T {
	cs := storageFor[T](w.components)
	if cs == nil {
		return nil
	}
	return cs.get(e)
}

// Has reports whether the entity holds a component of type T.
func Has[T any](w *World, e Entity) bool {
	cs := storageFor[T](w.components)
	return cs != nil && cs.Has(e)
}

// Remove detaches the entity's component of type T, if present.
func Remove[T any](w *World, e Entity) {
	if cs := storageFor[T](w.components); cs != nil {
		cs.Remove(e)
	}
}

// Query returns every entity currently holding a component of type T. The
// result is empty, not an error, when T has no storage or no entries. Order
// is unspecified and must not be relied on.
func Query[T any](w *World) []Entity {
	cs := storageFor[T](w.components)
	if cs == nil {
		return nil
	}

	entities := make([]Entity, 0, cs.Len())
	for e := range cs.Entities() {
		entities = append(entities, e)
	}
	return entities
}

// Each iterates every entity holding a component of type T together with a
// pointer to its component. Order is unspecified. The caller must not add or
// remove entries of type T while iterating; mutate through the yielded
// pointers, or defer structural changes through the command buffer.
func Each[T any](w *World) iter.Seq2[Entity, *T] {
	cs := storageFor[T](w.components)
	if cs == nil {
		return func(yield func(Entity, *T) bool) {}
	}
	return cs.all()
}

// RegisterEvent creates an empty queue for event type E if none exists.
// Idempotent; PushEvent registers implicitly.
func RegisterEvent[E any](w *World) {
	registerEvent[E](w.events)
}

// PushEvent appends an event to the back of E's queue, creating the queue if
// this is the first event of its type.
func PushEvent[E any](w *World, event E) {
	registerEvent[E](w.events).Push(event)
}

// TakeEvents removes and returns all queued events of type E in publish
// order. Draining is type-scoped and destructive: queues of other types are
// untouched, and a second take without an intervening push returns nil.
func TakeEvents[E any](w *World) []E {
	q := queueFor[E](w.events)
	if q == nil {
		return nil
	}
	return q.Take()
}

// EventsOf returns E's queue for inspection or manual consumption, or nil if
// no event of type E was ever registered or pushed.
func EventsOf[E any](w *World) *EventQueue[E] {
	return queueFor[E](w.events)
}
