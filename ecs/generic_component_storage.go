package ecs

import (
	"iter"

	"github.com/kamstrup/intmap"
)

const (
	storageBlockSize = 64
)

// componentStorage is a generic implementation of iComponentStorage.
// It stores components of a specific type `T` in blocks and maps each owning
// entity to its slot through an integer-keyed index. Slots freed by removal
// are reused before new slots are claimed, so the blocks stay dense-ish
// without ever moving a live component.
type componentStorage[T any] struct {
	index     *intmap.Map[Entity, int]
	blocks    [][storageBlockSize]T
	owners    [][storageBlockSize]Entity
	filled    [][storageBlockSize]bool
	freeSlots []int
	nextIndex int
}

func newComponentStorage[T any]() *componentStorage[T] {
	return &componentStorage[T]{
		index: intmap.New[Entity, int](storageBlockSize),
	}
}

// Insert stores a component for the entity, overwriting any existing entry.
// The component may be passed as T or *T.
func (cs *componentStorage[T]) Insert(e Entity, component any) {
	var concrete T
	if ptr, ok := component.(*T); ok {
		concrete = *ptr
	} else if val, ok := component.(T); ok {
		concrete = val
	} else {
		return // Invalid type
	}

	if slot, ok := cs.index.Get(e); ok {
		blockIdx := slot / storageBlockSize
		slotIdx := slot % storageBlockSize
		cs.blocks[blockIdx][slotIdx] = concrete
		return
	}

	var slot int
	if n := len(cs.freeSlots); n > 0 {
		slot = cs.freeSlots[n-1]
		cs.freeSlots = cs.freeSlots[:n-1]
	} else {
		slot = cs.nextIndex
		cs.nextIndex++
	}

	blockIdx := slot / storageBlockSize
	slotIdx := slot % storageBlockSize

	if blockIdx >= len(cs.blocks) {
		cs.blocks = append(cs.blocks, [storageBlockSize]T{})
		cs.owners = append(cs.owners, [storageBlockSize]Entity{})
		cs.filled = append(cs.filled, [storageBlockSize]bool{})
	}

	cs.blocks[blockIdx][slotIdx] = concrete
	cs.owners[blockIdx][slotIdx] = e
	cs.filled[blockIdx][slotIdx] = true
	cs.index.Put(e, slot)
}

// get returns a pointer to the entity's component, or nil if it has none.
// The pointer stays valid until the entry is removed or the storage is cleared.
func (cs *componentStorage[T]) get(e Entity) *T {
	slot, ok := cs.index.Get(e)
	if !ok {
		return nil
	}

	return &cs.blocks[slot/storageBlockSize][slot%storageBlockSize]
}

// Remove drops the entity's entry and marks its slot free for reuse.
func (cs *componentStorage[T]) Remove(e Entity) {
	slot, ok := cs.index.Get(e)
	if !ok {
		return
	}

	blockIdx := slot / storageBlockSize
	slotIdx := slot % storageBlockSize

	var zero T
	cs.blocks[blockIdx][slotIdx] = zero // Zero out the value
	cs.owners[blockIdx][slotIdx] = 0
	cs.filled[blockIdx][slotIdx] = false
	cs.freeSlots = append(cs.freeSlots, slot)
	cs.index.Del(e)
}

// Has checks if the entity owns a component in this storage.
func (cs *componentStorage[T]) Has(e Entity) bool {
	_, ok := cs.index.Get(e)
	return ok
}

// Clear drops every entry and releases the blocks.
func (cs *componentStorage[T]) Clear() {
	cs.blocks = nil
	cs.owners = nil
	cs.filled = nil
	cs.freeSlots = nil
	cs.nextIndex = 0
	cs.index.Clear()
}

// Len returns the number of stored components.
func (cs *componentStorage[T]) Len() int {
	return cs.nextIndex - len(cs.freeSlots)
}

// Entities iterates the owning entities in slot order. Slot order depends on
// the insert/remove history and must not be relied on.
func (cs *componentStorage[T]) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for i := 0; i < cs.nextIndex; i++ {
			blockIdx := i / storageBlockSize
			slotIdx := i % storageBlockSize

			if cs.filled[blockIdx][slotIdx] {
				if !yield(cs.owners[blockIdx][slotIdx]) {
					return
				}
			}
		}
	}
}

// all iterates entities together with pointers to their components, in slot order.
func (cs *componentStorage[T]) all() iter.Seq2[Entity, *T] {
	return func(yield func(Entity, *T) bool) {
		for i := 0; i < cs.nextIndex; i++ {
			blockIdx := i / storageBlockSize
			slotIdx := i % storageBlockSize

			if cs.filled[blockIdx][slotIdx] {
				if !yield(cs.owners[blockIdx][slotIdx], &cs.blocks[blockIdx][slotIdx]) {
					return
				}
			}
		}
	}
}
