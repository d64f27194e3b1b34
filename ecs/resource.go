package ecs

import "reflect"

// Resources holds world-scoped singleton values that are not associated with
// any entity, keyed by their runtime type. Use this for shared state such as
// a turn counter or a random source.
type Resources struct {
	items map[reflect.Type]any
}

func newResources() *Resources {
	return &Resources{
		items: make(map[reflect.Type]any),
	}
}

// Len returns the number of stored resources.
func (r *Resources) Len() int {
	return len(r.items)
}

// SetResource stores a resource value of type T, replacing any existing one.
func SetResource[T any](w *World, value T) {
	w.resources.items[reflect.TypeFor[T]()] = &value
}

// Resource returns a pointer to the stored resource of type T. The second
// result is false when no resource of that type was set. Mutations through
// the pointer are visible to subsequent calls.
func Resource[T any](w *World) (*T, bool) {
	item, ok := w.resources.items[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}

	ptr, ok := item.(*T)
	if !ok {
		panic("resource registered under " + reflect.TypeFor[T]().String() + " holds a different type")
	}
	return ptr, true
}

// RemoveResource drops the stored resource of type T, if any.
func RemoveResource[T any](w *World) {
	delete(w.resources.items, reflect.TypeFor[T]())
}
