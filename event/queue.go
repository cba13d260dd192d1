// Package event implements the engine's priority event queue: a min-heap
// ordered by (time, sequence) so that events scheduled for the same tick
// drain in the order they were created. The heap itself follows the
// container/heap.Interface pattern used by joeycumines-go-utilpkg's
// eventloop timerHeap; the (time, sequence) tie-break comes from
// original_source's SimulationEvent, whose Ord reverses time then
// creation_time for BinaryHeap min-heap behavior.
package event

import (
	"container/heap"

	"github.com/metalogic/simcore/state"
)

// PortIndex -1 means "evaluate every port of the gate" rather than a
// single one, matching original_source's SimulationEvent.port_index
// convention.
const AllPorts = -1

// Event is one scheduled unit of work: at Time, gate GateID's port
// PortIndex (or every port, if PortIndex == AllPorts) should observe
// NewState.
type Event struct {
	Time      uint64
	Sequence  uint64
	GateID    string
	PortIndex int
	NewState  state.State
}

// Queue is a priority event queue keyed by (Time, Sequence) ascending.
// It is not safe for concurrent use; the engine owns it exclusively.
type Queue struct {
	h    eventHeap
	next uint64
}

// New returns an empty queue.
func New() *Queue {
	return &Queue{}
}

// Push schedules an event for time carrying newState for gateID's
// portIndex (or AllPorts), stamping it with the next sequence number so
// that equal-time events drain in push order.
func (q *Queue) Push(time uint64, gateID string, portIndex int, newState state.State) {
	heap.Push(&q.h, Event{
		Time:      time,
		Sequence:  q.next,
		GateID:    gateID,
		PortIndex: portIndex,
		NewState:  newState,
	})
	q.next++
}

// Pop removes and returns the earliest event. ok is false if the queue
// is empty.
func (q *Queue) Pop() (ev Event, ok bool) {
	if q.h.Len() == 0 {
		return Event{}, false
	}
	return heap.Pop(&q.h).(Event), true
}

// Peek returns the earliest event without removing it.
func (q *Queue) Peek() (ev Event, ok bool) {
	if q.h.Len() == 0 {
		return Event{}, false
	}
	return q.h[0], true
}

// Len reports the number of pending events.
func (q *Queue) Len() int { return q.h.Len() }

// IsEmpty reports whether the queue has no pending events.
func (q *Queue) IsEmpty() bool { return q.h.Len() == 0 }

// Clear drops every pending event and resets the sequence counter, so a
// freshly cleared queue behaves exactly like a new one.
func (q *Queue) Clear() {
	q.h = nil
	q.next = 0
}

// RemoveEventsForGate drops every pending event addressed to gateID,
// e.g. when a gate is being reset and its stale scheduled transitions
// must not fire.
func (q *Queue) RemoveEventsForGate(gateID string) {
	kept := q.h[:0]
	for _, ev := range q.h {
		if ev.GateID != gateID {
			kept = append(kept, ev)
		}
	}
	q.h = kept
	heap.Init(&q.h)
}

// eventHeap implements container/heap.Interface for Event, ordered by
// (Time, Sequence) ascending so heap.Pop yields the earliest event, and
// events tied on Time drain in Sequence (creation) order.
type eventHeap []Event

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	if h[i].Time != h[j].Time {
		return h[i].Time < h[j].Time
	}
	return h[i].Sequence < h[j].Sequence
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) {
	*h = append(*h, x.(Event))
}

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	ev := old[n-1]
	*h = old[:n-1]
	return ev
}
