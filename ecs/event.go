package ecs

import (
	"iter"
	"reflect"
)

// iEventQueue is an interface for a type-erased event queue.
type iEventQueue interface {
	Clear()
	Len() int
}

// EventQueue is a FIFO queue of events of a single type. Events are never
// dropped implicitly: they stay queued across ticks until popped, taken, or
// cleared.
type EventQueue[E any] struct {
	events []E
}

// NewEventQueue creates an empty queue.
func NewEventQueue[E any]() *EventQueue[E] {
	return &EventQueue[E]{}
}

// Push appends an event to the back of the queue.
func (q *EventQueue[E]) Push(event E) {
	q.events = append(q.events, event)
}

// Pop removes and returns the oldest queued event.
func (q *EventQueue[E]) Pop() (E, bool) {
	if len(q.events) == 0 {
		var zero E
		return zero, false
	}

	event := q.events[0]
	q.events = q.events[1:]
	return event, true
}

// Take removes and returns all queued events in publish order.
// A second Take without an intervening Push returns nil.
func (q *EventQueue[E]) Take() []E {
	if len(q.events) == 0 {
		return nil
	}

	events := q.events
	q.events = nil
	return events
}

// Events iterates the queued events in publish order without consuming them.
func (q *EventQueue[E]) Events() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, event := range q.events {
			if !yield(event) {
				return
			}
		}
	}
}

// Len returns the number of queued events.
func (q *EventQueue[E]) Len() int {
	return len(q.events)
}

// Clear drops all queued events.
func (q *EventQueue[E]) Clear() {
	q.events = nil
}

// EventManager owns one queue per event type, keyed by the event's runtime
// type. Queues are created lazily on first registration or first push, and
// consuming one type's queue never disturbs another's.
type EventManager struct {
	queues map[reflect.Type]iEventQueue
}

// NewEventManager creates an empty event registry.
func NewEventManager() *EventManager {
	return &EventManager{
		queues: make(map[reflect.Type]iEventQueue),
	}
}

// Clear empties every queue of every event type.
func (m *EventManager) Clear() {
	for _, queue := range m.queues {
		queue.Clear()
	}
}

// TypeCount returns the number of registered event types.
func (m *EventManager) TypeCount() int {
	return len(m.queues)
}

// registerEvent creates an empty queue for E if none exists. Idempotent.
func registerEvent[E any](m *EventManager) *EventQueue[E] {
	t := reflect.TypeFor[E]()
	if queue, ok := m.queues[t]; ok {
		return assertQueue[E](queue, t)
	}

	q := NewEventQueue[E]()
	m.queues[t] = q
	return q
}

// queueFor recovers the concrete queue for E, or nil if E was never registered.
func queueFor[E any](m *EventManager) *EventQueue[E] {
	t := reflect.TypeFor[E]()
	queue, ok := m.queues[t]
	if !ok {
		return nil
	}
	return assertQueue[E](queue, t)
}

// assertQueue recovers the concrete queue type. A queue is only ever
// registered under its own event type, so a failed assertion is an internal
// invariant violation, not a caller error.
func assertQueue[E any](queue iEventQueue, t reflect.Type) *EventQueue[E] {
	q, ok := queue.(*EventQueue[E])
	if !ok {
		panic("queue registered under " + t.String() + " holds a different event type")
	}
	return q
}
