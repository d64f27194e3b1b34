package ecs_test

// Common test component types
type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Name struct {
	Value string
}

type Health struct {
	Current int
	Max     int
}

type Counter struct {
	Value int
}

type Flag struct {
	On bool
}

// Custom primitive types for testing non-struct components
type Score int32
type Tag string

// Common test event types
type DamageEvent struct {
	Amount int
}

type SpawnEvent struct {
	Id uint32
}
