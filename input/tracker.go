// @focus: #input { hold }
package input

import (
	"sync"
	"time"

	"github.com/lixenwraith/overworld/constants"
)

type hold struct {
	last    time.Time
	repeats int
}

// HoldTracker emulates held keys from press and auto-repeat events
// A key stays held for KeyHoldInitial after its first event, then for
// KeyHoldRepeat after each repeat. Pressing the opposite direction releases it.
type HoldTracker struct {
	mu    sync.Mutex
	holds map[Action]*hold
}

// NewHoldTracker creates an empty tracker
func NewHoldTracker() *HoldTracker {
	return &HoldTracker{holds: make(map[Action]*hold)}
}

// Press records a key event for action at now
func (t *HoldTracker) Press(a Action, now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if opp := opposite(a); opp != ActionNone {
		delete(t.holds, opp)
	}

	h, ok := t.holds[a]
	if !ok || !t.activeLocked(h, now) {
		t.holds[a] = &hold{last: now}
		return
	}
	h.last = now
	h.repeats++
}

// Held reports whether action counts as held at now
func (t *HoldTracker) Held(a Action, now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	h, ok := t.holds[a]
	if !ok {
		return false
	}
	if !t.activeLocked(h, now) {
		delete(t.holds, a)
		return false
	}
	return true
}

// Release forgets action immediately
func (t *HoldTracker) Release(a Action) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.holds, a)
}

// ReleaseAll forgets every held action
func (t *HoldTracker) ReleaseAll() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.holds = make(map[Action]*hold)
}

func (t *HoldTracker) activeLocked(h *hold, now time.Time) bool {
	window := constants.KeyHoldInitial
	if h.repeats > 0 {
		window = constants.KeyHoldRepeat
	}
	return now.Sub(h.last) < window
}
