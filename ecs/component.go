package ecs

import "reflect"

// ComponentManager owns one type-erased storage per component type, keyed by
// the component's runtime type. Storages are created lazily the first time a
// type is registered or a component of that type is added.
type ComponentManager struct {
	storages map[reflect.Type]iComponentStorage
}

// NewComponentManager creates an empty component registry.
func NewComponentManager() *ComponentManager {
	return &ComponentManager{
		storages: make(map[reflect.Type]iComponentStorage),
	}
}

// RemoveAll sweeps the entity out of every registered storage. The manager has
// no per-entity type index, so the sweep visits all storages regardless of
// which types the entity actually holds.
func (m *ComponentManager) RemoveAll(e Entity) {
	for _, storage := range m.storages {
		storage.Remove(e)
	}
}

// TypeCount returns the number of registered component types.
func (m *ComponentManager) TypeCount() int {
	return len(m.storages)
}

// insertErased stores a component through the type-erased path, normalizing
// pointer values to their element type. The component's type must already be
// registered; panics otherwise.
func (m *ComponentManager) insertErased(e Entity, component any) {
	t := componentType(component)
	storage, ok := m.storages[t]
	if !ok {
		panic("component type " + t.String() + " not registered")
	}
	storage.Insert(e, component)
}

// removeErased drops the entity's entry from the storage for the given type,
// if one is registered.
func (m *ComponentManager) removeErased(e Entity, t reflect.Type) {
	if storage, ok := m.storages[t]; ok {
		storage.Remove(e)
	}
}

// registerComponent creates an empty storage for T if none exists. Idempotent.
func registerComponent[T any](m *ComponentManager) *componentStorage[T] {
	t := reflect.TypeFor[T]()
	if storage, ok := m.storages[t]; ok {
		return assertStorage[T](storage, t)
	}

	cs := newComponentStorage[T]()
	m.storages[t] = cs
	return cs
}

// storageFor recovers the concrete storage for T, or nil if T was never registered.
func storageFor[T any](m *ComponentManager) *componentStorage[T] {
	t := reflect.TypeFor[T]()
	storage, ok := m.storages[t]
	if !ok {
		return nil
	}
	return assertStorage[T](storage, t)
}

// assertStorage recovers the concrete storage type. A storage is only ever
// registered under its own component type, so a failed assertion is an
// internal invariant violation, not a caller error.
func assertStorage[T any](storage iComponentStorage, t reflect.Type) *componentStorage[T] {
	cs, ok := storage.(*componentStorage[T])
	if !ok {
		panic("storage registered under " + t.String() + " holds a different component type")
	}
	return cs
}

// componentType resolves the storage key for a component value, dereferencing
// pointers so T and *T land in the same storage.
func componentType(component any) reflect.Type {
	t := reflect.TypeOf(component)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}
