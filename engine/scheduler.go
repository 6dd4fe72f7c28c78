// @focus: #engine { scheduler }
package engine

import (
	"container/heap"
	"time"
)

// TimerID identifies a scheduled callback, zero is never issued
type TimerID uint64

// timer is a (deadline, action) entry
type timer struct {
	id       TimerID
	deadline time.Duration
	interval time.Duration // Zero for one-shot
	seq      uint64        // Tie-break, preserves scheduling order
	fn       func()
	index    int
}

// timerHeap orders timers by deadline then scheduling order
type timerHeap []*timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].deadline != h[j].deadline {
		return h[i].deadline < h[j].deadline
	}
	return h[i].seq < h[j].seq
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*timer)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}

// Scheduler is a queue of timed callbacks drained once per tick by the frame driver
// Time is session time, advanced only by the driver. Not safe for concurrent use,
// all calls happen on the game loop.
type Scheduler struct {
	now    time.Duration
	queue  timerHeap
	byID   map[TimerID]*timer
	nextID TimerID
	seq    uint64
}

// NewScheduler creates an empty scheduler at time zero
func NewScheduler() *Scheduler {
	return &Scheduler{
		byID: make(map[TimerID]*timer),
	}
}

// Now returns the time of the last drain
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn once, d after the current time
func (s *Scheduler) After(d time.Duration, fn func()) TimerID {
	return s.schedule(d, 0, fn)
}

// Every schedules fn repeatedly, first firing d after the current time
// A non-positive interval is treated as a one-shot
func (s *Scheduler) Every(d time.Duration, fn func()) TimerID {
	return s.schedule(d, d, fn)
}

func (s *Scheduler) schedule(d, interval time.Duration, fn func()) TimerID {
	if d < 0 {
		d = 0
	}
	if interval < 0 {
		interval = 0
	}
	s.nextID++
	s.seq++
	t := &timer{
		id:       s.nextID,
		deadline: s.now + d,
		interval: interval,
		seq:      s.seq,
		fn:       fn,
	}
	heap.Push(&s.queue, t)
	s.byID[t.id] = t
	return t.id
}

// Cancel removes a pending timer, returns false if it already fired or was cancelled
func (s *Scheduler) Cancel(id TimerID) bool {
	t, ok := s.byID[id]
	if !ok {
		return false
	}
	delete(s.byID, id)
	if t.index >= 0 {
		heap.Remove(&s.queue, t.index)
	}
	return true
}

// Pending reports whether id is still scheduled
func (s *Scheduler) Pending(id TimerID) bool {
	_, ok := s.byID[id]
	return ok
}

// Drain advances time to now and fires every timer due at or before it, in deadline order
// Repeating timers are rescheduled from their deadline, so a long tick fires them once per elapsed period
// Callbacks may schedule or cancel timers; newly due ones fire within the same drain
func (s *Scheduler) Drain(now time.Duration) int {
	if now > s.now {
		s.now = now
	}

	fired := 0
	for len(s.queue) > 0 {
		t := s.queue[0]
		if t.deadline > s.now {
			break
		}
		heap.Pop(&s.queue)

		if t.interval > 0 {
			s.seq++
			t.deadline += t.interval
			t.seq = s.seq
			heap.Push(&s.queue, t)
		} else {
			delete(s.byID, t.id)
		}

		fired++
		t.fn()
	}
	return fired
}

// Clear drops every pending timer and rewinds time to zero
func (s *Scheduler) Clear() {
	for i := range s.queue {
		s.queue[i] = nil
	}
	s.queue = s.queue[:0]
	s.byID = make(map[TimerID]*timer)
	s.now = 0
}

// Len returns the number of pending timers
func (s *Scheduler) Len() int {
	return len(s.byID)
}
