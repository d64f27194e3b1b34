package ecs_test

import (
	"testing"

	"github.com/plus3/mite/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorldBasics(t *testing.T) {
	world := ecs.NewWorld()

	e1 := world.CreateEntity()
	e2 := world.CreateEntity()

	ecs.Add(world, e1, Health{Current: 100, Max: 100})
	ecs.Add(world, e1, Tag("marked"))
	ecs.Add(world, e2, Health{Current: 50, Max: 100})

	h1, ok := ecs.Get[Health](world, e1)
	require.True(t, ok)
	assert.Equal(t, 100, h1.Current)

	h2, ok := ecs.Get[Health](world, e2)
	require.True(t, ok)
	assert.Equal(t, 50, h2.Current)

	assert.True(t, ecs.Has[Tag](world, e1))
	assert.False(t, ecs.Has[Tag](world, e2))

	if h := ecs.Mut[Health](world, e1); h != nil {
		h.Current -= 20
	}
	h1, _ = ecs.Get[Health](world, e1)
	assert.Equal(t, 80, h1.Current)

	assert.ElementsMatch(t, []ecs.Entity{e1, e2}, ecs.Query[Health](world))
	assert.ElementsMatch(t, []ecs.Entity{e1}, ecs.Query[Tag](world))
}

func TestDestroyEntitySweepsAllComponents(t *testing.T) {
	world := ecs.NewWorld()

	e := world.CreateEntity()
	ecs.Add(world, e, Position{X: 1, Y: 2})
	ecs.Add(world, e, Health{Current: 100, Max: 100})
	ecs.Add(world, e, Score(12))

	world.DestroyEntity(e)

	assert.False(t, ecs.Has[Position](world, e))
	assert.False(t, ecs.Has[Health](world, e))
	assert.False(t, ecs.Has[Score](world, e))
	assert.False(t, world.Alive(e))
}

func TestRecycledEntityStartsClean(t *testing.T) {
	world := ecs.NewWorld()

	e1 := world.CreateEntity()
	ecs.Add(world, e1, Health{Current: 100, Max: 100})

	world.DestroyEntity(e1)

	e2 := world.CreateEntity()
	assert.Equal(t, e1.Id(), e2.Id())
	assert.NotEqual(t, e1.Generation(), e2.Generation())
	assert.False(t, ecs.Has[Health](world, e2))
}

// Destroying the same handle twice must not sweep components off the slot's
// next occupant. The component sweep runs before the identity is invalidated,
// so the cleanup pass can never hit a recycled handle.
func TestDoubleDestroyDoesNotTouchRecycledEntity(t *testing.T) {
	world := ecs.NewWorld()

	e1 := world.CreateEntity()
	world.DestroyEntity(e1)

	e2 := world.CreateEntity()
	require.Equal(t, e1.Id(), e2.Id())
	ecs.Add(world, e2, Health{Current: 75, Max: 100})

	// e1 is stale; this destroy must be a complete no-op for e2
	world.DestroyEntity(e1)

	assert.True(t, world.Alive(e2))
	h, ok := ecs.Get[Health](world, e2)
	require.True(t, ok)
	assert.Equal(t, 75, h.Current)
}

func TestWorldEvents(t *testing.T) {
	world := ecs.NewWorld()

	ecs.PushEvent(world, DamageEvent{Amount: 10})
	ecs.PushEvent(world, DamageEvent{Amount: 20})

	events := ecs.TakeEvents[DamageEvent](world)
	require.Len(t, events, 2)
	assert.Equal(t, 10, events[0].Amount)
	assert.Equal(t, 20, events[1].Amount)

	assert.Empty(t, ecs.TakeEvents[DamageEvent](world))
}

func TestQueryAfterMixedChurn(t *testing.T) {
	world := ecs.NewWorld()

	var kept []ecs.Entity
	for i := 0; i < 20; i++ {
		e := world.CreateEntity()
		ecs.Add(world, e, Counter{Value: i})
		if i%3 == 0 {
			world.DestroyEntity(e)
		} else {
			kept = append(kept, e)
		}
	}

	assert.ElementsMatch(t, kept, ecs.Query[Counter](world))
}

func TestManagerAccessors(t *testing.T) {
	world := ecs.NewWorld()

	assert.NotNil(t, world.Entities())
	assert.NotNil(t, world.Components())
	assert.NotNil(t, world.Events())
	assert.NotNil(t, world.Commands())

	e := world.CreateEntity()
	assert.True(t, world.Entities().Alive(e))
}
