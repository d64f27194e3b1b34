package ecs

import "sort"

// WorldStats is a snapshot of a world's contents.
type WorldStats struct {
	EntityCount        int
	ComponentTypeCount int
	EventTypeCount     int
	QueuedEventCount   int
	ResourceCount      int
	ComponentBreakdown []TypeStats
	EventBreakdown     []TypeStats
}

// TypeStats counts the entries held for a single registered type.
type TypeStats struct {
	Type  string
	Count int
}

// CollectStats walks the world and returns a snapshot of its contents.
// Breakdowns are sorted by type name so reports are stable across runs.
func (w *World) CollectStats() *WorldStats {
	stats := &WorldStats{
		EntityCount:        w.entities.Len(),
		ComponentTypeCount: w.components.TypeCount(),
		EventTypeCount:     w.events.TypeCount(),
		ResourceCount:      w.resources.Len(),
	}

	stats.ComponentBreakdown = make([]TypeStats, 0, len(w.components.storages))
	for t, storage := range w.components.storages {
		stats.ComponentBreakdown = append(stats.ComponentBreakdown, TypeStats{
			Type:  t.String(),
			Count: storage.Len(),
		})
	}

	stats.EventBreakdown = make([]TypeStats, 0, len(w.events.queues))
	for t, queue := range w.events.queues {
		stats.EventBreakdown = append(stats.EventBreakdown, TypeStats{
			Type:  t.String(),
			Count: queue.Len(),
		})
		stats.QueuedEventCount += queue.Len()
	}

	sort.Slice(stats.ComponentBreakdown, func(i, j int) bool {
		return stats.ComponentBreakdown[i].Type < stats.ComponentBreakdown[j].Type
	})
	sort.Slice(stats.EventBreakdown, func(i, j int) bool {
		return stats.EventBreakdown[i].Type < stats.EventBreakdown[j].Type
	})

	return stats
}
