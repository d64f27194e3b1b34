package ecs_test

import (
	"testing"

	"github.com/plus3/mite/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventQueuePushAndPop(t *testing.T) {
	queue := ecs.NewEventQueue[DamageEvent]()

	queue.Push(DamageEvent{Amount: 10})
	queue.Push(DamageEvent{Amount: 20})

	event, ok := queue.Pop()
	require.True(t, ok)
	assert.Equal(t, DamageEvent{Amount: 10}, event)

	event, ok = queue.Pop()
	require.True(t, ok)
	assert.Equal(t, DamageEvent{Amount: 20}, event)

	_, ok = queue.Pop()
	assert.False(t, ok)
}

func TestEventQueueFifoOrder(t *testing.T) {
	queue := ecs.NewEventQueue[DamageEvent]()

	for i := 0; i < 5; i++ {
		queue.Push(DamageEvent{Amount: i})
	}

	for i := 0; i < 5; i++ {
		event, ok := queue.Pop()
		require.True(t, ok)
		assert.Equal(t, i, event.Amount)
	}
}

func TestEventQueueIterDoesNotConsume(t *testing.T) {
	queue := ecs.NewEventQueue[DamageEvent]()

	queue.Push(DamageEvent{Amount: 1})
	queue.Push(DamageEvent{Amount: 2})

	var seen []int
	for event := range queue.Events() {
		seen = append(seen, event.Amount)
	}

	assert.Equal(t, []int{1, 2}, seen)
	assert.Equal(t, 2, queue.Len())
}

func TestEventQueueTake(t *testing.T) {
	queue := ecs.NewEventQueue[DamageEvent]()

	queue.Push(DamageEvent{Amount: 1})
	queue.Push(DamageEvent{Amount: 2})
	queue.Push(DamageEvent{Amount: 3})

	events := queue.Take()
	assert.Equal(t, []DamageEvent{{Amount: 1}, {Amount: 2}, {Amount: 3}}, events)
	assert.Equal(t, 0, queue.Len())

	// A second take without an intervening push yields nothing
	assert.Nil(t, queue.Take())
}

func TestPushEventAutoRegisters(t *testing.T) {
	world := ecs.NewWorld()

	ecs.PushEvent(world, DamageEvent{Amount: 42})

	queue := ecs.EventsOf[DamageEvent](world)
	require.NotNil(t, queue)
	assert.Equal(t, 1, queue.Len())
}

func TestEventsOfUnregisteredTypeIsNil(t *testing.T) {
	world := ecs.NewWorld()

	assert.Nil(t, ecs.EventsOf[DamageEvent](world))
	assert.Nil(t, ecs.TakeEvents[DamageEvent](world))
}

func TestDrainingIsTypeScoped(t *testing.T) {
	world := ecs.NewWorld()

	ecs.PushEvent(world, DamageEvent{Amount: 10})
	ecs.PushEvent(world, SpawnEvent{Id: 99})
	ecs.PushEvent(world, DamageEvent{Amount: 20})

	damage := ecs.TakeEvents[DamageEvent](world)
	assert.Equal(t, []DamageEvent{{Amount: 10}, {Amount: 20}}, damage)

	// Spawn events are untouched by the damage drain
	spawns := ecs.TakeEvents[SpawnEvent](world)
	assert.Equal(t, []SpawnEvent{{Id: 99}}, spawns)
}

func TestEventsPersistAcrossTicksUntilDrained(t *testing.T) {
	world := ecs.NewWorld()
	scheduler := ecs.NewScheduler()

	ecs.PushEvent(world, DamageEvent{Amount: 5})
	scheduler.Once(world)
	scheduler.Once(world)

	// Nothing drained the queue, so the event is still there
	events := ecs.TakeEvents[DamageEvent](world)
	assert.Equal(t, []DamageEvent{{Amount: 5}}, events)
}

func TestClearEmptiesEveryQueue(t *testing.T) {
	world := ecs.NewWorld()

	ecs.PushEvent(world, DamageEvent{Amount: 1})
	ecs.PushEvent(world, SpawnEvent{Id: 2})

	world.ClearEvents()

	assert.Empty(t, ecs.TakeEvents[DamageEvent](world))
	assert.Empty(t, ecs.TakeEvents[SpawnEvent](world))

	// Queues stay registered and usable after a clear
	ecs.PushEvent(world, DamageEvent{Amount: 3})
	assert.Equal(t, []DamageEvent{{Amount: 3}}, ecs.TakeEvents[DamageEvent](world))
}

func TestRegisterEventIsIdempotent(t *testing.T) {
	world := ecs.NewWorld()

	ecs.RegisterEvent[DamageEvent](world)
	ecs.PushEvent(world, DamageEvent{Amount: 7})
	ecs.RegisterEvent[DamageEvent](world)

	assert.Equal(t, []DamageEvent{{Amount: 7}}, ecs.TakeEvents[DamageEvent](world))
	assert.Equal(t, 1, world.Events().TypeCount())
}
