package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/overworld/constants"
)

var t0 = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestKeyTableLookup(t *testing.T) {
	keys := DefaultKeyTable()

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), ActionUp},
		{"A", tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModShift), ActionLeft},
		{"arrow right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), ActionRight},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), ActionFire},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Lookup(tt.ev); got != tt.want {
				t.Errorf("Lookup = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHoldTrackerWindows(t *testing.T) {
	h := NewHoldTracker()
	h.Press(ActionLeft, t0)

	if !h.Held(ActionLeft, t0.Add(constants.KeyHoldInitial-time.Millisecond)) {
		t.Error("Expected key held within the initial window")
	}

	// Auto-repeat shortens the window
	h.Press(ActionLeft, t0.Add(300*time.Millisecond))
	if !h.Held(ActionLeft, t0.Add(300*time.Millisecond+constants.KeyHoldRepeat-time.Millisecond)) {
		t.Error("Expected key held within the repeat window")
	}
	if h.Held(ActionLeft, t0.Add(300*time.Millisecond+constants.KeyHoldRepeat)) {
		t.Error("Expected key released after the repeat window")
	}
}

func TestHoldTrackerExpiresWithoutRepeat(t *testing.T) {
	h := NewHoldTracker()
	h.Press(ActionUp, t0)
	if h.Held(ActionUp, t0.Add(constants.KeyHoldInitial)) {
		t.Error("Expected single press to expire after the initial window")
	}
}

func TestHoldTrackerOppositeReleases(t *testing.T) {
	h := NewHoldTracker()
	h.Press(ActionLeft, t0)
	h.Press(ActionRight, t0.Add(10*time.Millisecond))

	now := t0.Add(20 * time.Millisecond)
	if h.Held(ActionLeft, now) {
		t.Error("Pressing right should release left")
	}
	if !h.Held(ActionRight, now) {
		t.Error("Expected right to be held")
	}
}

func TestTerminalSnapshot(t *testing.T) {
	term := NewTerminal(nil)

	if a := term.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), t0); a != ActionNone {
		t.Errorf("Movement keys should not return a discrete action, got %v", a)
	}
	term.HandleEvent(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone), t0)

	toWorld := func(col, row int) (float64, float64) {
		return float64(col) * 8, float64(row) * 16
	}
	s := term.Snapshot(t0.Add(16*time.Millisecond), toWorld)

	if !s.Right || s.Left || s.Up || s.Down {
		t.Errorf("Expected only right held, got %+v", s)
	}
	if !s.Fire {
		t.Error("Expected fire while button held")
	}
	if s.PointerX != 80 || s.PointerY != 80 {
		t.Errorf("Expected pointer (80, 80), got (%v, %v)", s.PointerX, s.PointerY)
	}

	term.HandleEvent(tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone), t0)
	if term.Snapshot(t0, nil).Fire {
		t.Error("Expected fire released with the button")
	}
}

func TestTerminalDiscreteActions(t *testing.T) {
	term := NewTerminal(nil)

	if a := term.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), t0); a != ActionPause {
		t.Errorf("Expected ActionPause, got %v", a)
	}
	if a := term.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), t0); a != ActionQuit {
		t.Errorf("Expected ActionQuit, got %v", a)
	}
}
