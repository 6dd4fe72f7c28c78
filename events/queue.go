// @focus: #event { queue }
package events

import (
	"sync"

	"github.com/lixenwraith/overworld/constants"
)

// EventQueue is a bounded FIFO ring buffer for game events
// Overflow: oldest events are overwritten when full
type EventQueue struct {
	mu     sync.Mutex
	events [constants.EventQueueSize]GameEvent
	head   uint64 // Read index
	tail   uint64 // Write index
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, dropping the oldest if the buffer is full
func (eq *EventQueue) Push(event GameEvent) {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	eq.events[eq.tail&constants.EventBufferMask] = event
	eq.tail++
	if eq.tail-eq.head > constants.EventQueueSize {
		eq.head = eq.tail - constants.EventQueueSize
	}
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	n := eq.tail - eq.head
	if n == 0 {
		return nil
	}

	result := make([]GameEvent, 0, n)
	for i := eq.head; i < eq.tail; i++ {
		idx := i & constants.EventBufferMask
		result = append(result, eq.events[idx])
		eq.events[idx] = GameEvent{}
	}
	eq.head = eq.tail
	return result
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return int(eq.tail - eq.head)
}

// Clear drops all pending events
func (eq *EventQueue) Clear() {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	for i := eq.head; i < eq.tail; i++ {
		eq.events[i&constants.EventBufferMask] = GameEvent{}
	}
	eq.head = eq.tail
}
