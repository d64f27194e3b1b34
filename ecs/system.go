package ecs

// System represents a behavior that is run once per scheduler pass with
// mutable access to the world. User-defined systems implement this interface
// and can carry state fields that persist between passes.
type System interface {
	Update(w *World)
}
