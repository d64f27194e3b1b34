package ecs

import "iter"

// iComponentStorage is an interface for a type-erased component storage.
type iComponentStorage interface {
	Insert(e Entity, component any)
	Remove(e Entity)
	Has(e Entity) bool
	Clear()
	Len() int
	Entities() iter.Seq[Entity]
}
