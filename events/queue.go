// @focus: #event { queue }
package events

import "github.com/lixenwraith/lightcycle/constants"

// EventQueue is a fixed-capacity ring buffer of game events
// Pushed by the simulation tick and drained by the frame loop on the same goroutine
//
// Overflow: Oldest events overwritten when full
type EventQueue struct {
	events [constants.EventQueueSize]GameEvent
	head   uint64 // Read index
	tail   uint64 // Write index
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, overwriting the oldest unread one when full
func (eq *EventQueue) Push(event GameEvent) {
	eq.events[eq.tail&constants.EventBufferMask] = event
	eq.tail++
	if eq.tail-eq.head > constants.EventQueueSize {
		eq.head = eq.tail - constants.EventQueueSize
	}
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	n := eq.tail - eq.head
	if n == 0 {
		return nil
	}
	result := make([]GameEvent, 0, n)
	for i := eq.head; i < eq.tail; i++ {
		result = append(result, eq.events[i&constants.EventBufferMask])
	}
	eq.head = eq.tail
	return result
}

// Len returns the number of unread events
func (eq *EventQueue) Len() int {
	return int(eq.tail - eq.head)
}
