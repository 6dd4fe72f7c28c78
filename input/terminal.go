// @focus: #input { terminal }
package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// ScreenToWorld converts a terminal cell to world coordinates
type ScreenToWorld func(col, row int) (x, y float64)

// Terminal turns tcell events into per-frame State snapshots
// HandleEvent runs on the polling goroutine, Snapshot on the game loop
type Terminal struct {
	mu     sync.Mutex
	keys   *KeyTable
	holds  *HoldTracker
	button bool // Primary mouse button held
	col    int
	row    int
}

// NewTerminal creates an adapter using keys, DefaultKeyTable when nil
func NewTerminal(keys *KeyTable) *Terminal {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Terminal{
		keys:  keys,
		holds: NewHoldTracker(),
	}
}

// HandleEvent records a tcell event and returns the discrete action it carries
// Only ActionPause and ActionQuit are returned; movement and fire are folded into the snapshot
func (t *Terminal) HandleEvent(ev tcell.Event, now time.Time) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a := t.keys.Lookup(ev)
		switch a {
		case ActionPause, ActionQuit:
			return a
		case ActionNone:
			return ActionNone
		}
		t.holds.Press(a, now)

	case *tcell.EventMouse:
		col, row := ev.Position()
		t.mu.Lock()
		t.col, t.row = col, row
		t.button = ev.Buttons()&tcell.Button1 != 0
		t.mu.Unlock()

	case *tcell.EventFocus:
		if !ev.Focused {
			t.holds.ReleaseAll()
			t.mu.Lock()
			t.button = false
			t.mu.Unlock()
		}
	}
	return ActionNone
}

// Snapshot returns the input state at now, pointer converted with toWorld
func (t *Terminal) Snapshot(now time.Time, toWorld ScreenToWorld) State {
	t.mu.Lock()
	button, col, row := t.button, t.col, t.row
	t.mu.Unlock()

	s := State{
		Up:    t.holds.Held(ActionUp, now),
		Down:  t.holds.Held(ActionDown, now),
		Left:  t.holds.Held(ActionLeft, now),
		Right: t.holds.Held(ActionRight, now),
		Fire:  button || t.holds.Held(ActionFire, now),
	}
	if toWorld != nil {
		s.PointerX, s.PointerY = toWorld(col, row)
	}
	return s
}
