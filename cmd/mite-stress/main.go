package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/plus3/mite/ecs"
)

type position struct{ X, Y float64 }
type velocity struct{ DX, DY float64 }
type hitpoints struct{ Current, Max int }
type lifetime struct{ Ticks int }
type label struct{ Value string }

type movementSystem struct{}

func (movementSystem) Update(w *ecs.World) {
	for e, pos := range ecs.Each[position](w) {
		if vel := ecs.Mut[velocity](w, e); vel != nil {
			pos.X += vel.DX
			pos.Y += vel.DY
		}
	}
}

type decaySystem struct{}

func (decaySystem) Update(w *ecs.World) {
	for e, lt := range ecs.Each[lifetime](w) {
		lt.Ticks--
		if lt.Ticks <= 0 {
			w.Commands().Destroy(e)
		}
	}
}

type respawnSystem struct {
	rng *rand.Rand
}

func (s *respawnSystem) Update(w *ecs.World) {
	for i := 0; i < s.rng.Intn(8); i++ {
		spawnRandomEntity(w, s.rng)
	}
}

type damageSystem struct {
	rng *rand.Rand
}

func (s *damageSystem) Update(w *ecs.World) {
	for e, hp := range ecs.Each[hitpoints](w) {
		hp.Current -= s.rng.Intn(3)
		if hp.Current <= 0 {
			w.Commands().Destroy(e)
		}
	}
}

func registerAllComponents(w *ecs.World) {
	ecs.Register[position](w)
	ecs.Register[velocity](w)
	ecs.Register[hitpoints](w)
	ecs.Register[lifetime](w)
	ecs.Register[label](w)
}

func spawnRandomEntity(w *ecs.World, rng *rand.Rand) {
	e := w.CreateEntity()
	ecs.Add(w, e, position{X: rng.Float64() * 100, Y: rng.Float64() * 100})
	if rng.Intn(2) == 0 {
		ecs.Add(w, e, velocity{DX: rng.Float64(), DY: rng.Float64()})
	}
	if rng.Intn(2) == 0 {
		ecs.Add(w, e, hitpoints{Current: 50 + rng.Intn(50), Max: 100})
	}
	if rng.Intn(4) == 0 {
		ecs.Add(w, e, lifetime{Ticks: 10 + rng.Intn(200)})
	}
	if rng.Intn(4) == 0 {
		ecs.Add(w, e, label{Value: fmt.Sprintf("entity-%d", e.Id())})
	}
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The initial number of entities to create.")
	seed := flag.Int64("seed", 1, "Seed for the random entity generator.")
	flag.Parse()

	log.Println("Starting mite stress test...")

	rng := rand.New(rand.NewSource(*seed))

	// 1. Setup World and Scheduler
	world := ecs.NewWorld()
	registerAllComponents(world)

	scheduler := ecs.NewScheduler()
	scheduler.Register(movementSystem{})
	scheduler.Register(&damageSystem{rng: rng})
	scheduler.Register(decaySystem{})
	scheduler.Register(&respawnSystem{rng: rng})

	// 2. Populate the world with initial entities
	log.Printf("Populating world with %d entities...\n", *entityCount)
	for i := 0; i < *entityCount; i++ {
		spawnRandomEntity(world, rng)
	}
	log.Println("Population complete.")

	// 3. Run the simulation loop
	report := &Report{
		Duration: *duration,
		Entities: *entityCount,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			scheduler.Once(world)
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	report.WorldStats = world.CollectStats()
	report.SchedulerStats = scheduler.GetStats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	// 4. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
