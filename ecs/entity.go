package ecs

// Entity encodes both the generation (upper 32 bits) and the slot id (lower 32 bits).
// Two entities are equal only when both halves match, so a handle issued before a
// slot was recycled never compares equal to the handle occupying that slot now.
type Entity uint64

// NewEntity creates an Entity from a slot id and generation
func NewEntity(id uint32, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(id))
}

// Id extracts the slot id from the entity
func (e Entity) Id() uint32 {
	return uint32(e & 0xFFFFFFFF)
}

// Generation extracts the generation counter from the entity
func (e Entity) Generation() uint32 {
	return uint32(e >> 32)
}

// EntityManager allocates, recycles, and validates entity handles.
// Slot ids are dense; each slot carries a generation counter that is bumped
// on destroy so stale handles can be told apart from the slot's current occupant.
type EntityManager struct {
	nextId      uint32
	freeIds     []uint32
	generations []uint32
}

// NewEntityManager creates an empty entity registry.
func NewEntityManager() *EntityManager {
	return &EntityManager{}
}

// Create returns a fresh entity handle. Destroyed slot ids are reused before
// new ids are minted; a reused id comes back with its already-bumped generation,
// so the returned handle is distinct from every handle issued for that id before.
func (m *EntityManager) Create() Entity {
	if n := len(m.freeIds); n > 0 {
		id := m.freeIds[n-1]
		m.freeIds = m.freeIds[:n-1]
		return NewEntity(id, m.generations[id])
	}

	id := m.nextId
	m.nextId++
	m.generations = append(m.generations, 0)
	return NewEntity(id, 0)
}

// Destroy invalidates the handle and frees its slot id for reuse.
// Destroying a handle whose id was never allocated, or whose generation is
// stale, is a silent no-op. A slot id enters the free list at most once per
// live destroy, so double destroys cannot corrupt the registry.
func (m *EntityManager) Destroy(e Entity) {
	id := e.Id()
	if int(id) >= len(m.generations) {
		return
	}
	if m.generations[id] != e.Generation() {
		return
	}

	m.generations[id]++
	m.freeIds = append(m.freeIds, id)
}

// Alive reports whether the handle refers to the slot's current occupant.
func (m *EntityManager) Alive(e Entity) bool {
	id := e.Id()
	return int(id) < len(m.generations) && m.generations[id] == e.Generation()
}

// Len returns the number of live entities.
func (m *EntityManager) Len() int {
	return int(m.nextId) - len(m.freeIds)
}
