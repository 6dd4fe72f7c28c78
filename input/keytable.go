package input

import "github.com/gdamore/tcell/v2"

// Action is a bound input meaning
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionFire
	ActionPause
	ActionQuit
)

// KeyTable maps terminal keys to actions
type KeyTable struct {
	// Runes for printable keys (WASD, space, p, q)
	Runes map[rune]Action
	// SpecialKeys for arrows, Esc, Ctrl-C
	SpecialKeys map[tcell.Key]Action
}

// DefaultKeyTable returns the default bindings: WASD or arrows move, space fires
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]Action{
			'w': ActionUp, 'W': ActionUp,
			's': ActionDown, 'S': ActionDown,
			'a': ActionLeft, 'A': ActionLeft,
			'd': ActionRight, 'D': ActionRight,
			' ': ActionFire,
			'p': ActionPause, 'P': ActionPause,
			'q': ActionQuit, 'Q': ActionQuit,
		},
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyUp:     ActionUp,
			tcell.KeyDown:   ActionDown,
			tcell.KeyLeft:   ActionLeft,
			tcell.KeyRight:  ActionRight,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
		},
	}
}

// Lookup resolves a key event to an action
func (t *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return t.Runes[ev.Rune()]
	}
	return t.SpecialKeys[ev.Key()]
}

// opposite returns the action on the same axis in the other direction
func opposite(a Action) Action {
	switch a {
	case ActionUp:
		return ActionDown
	case ActionDown:
		return ActionUp
	case ActionLeft:
		return ActionRight
	case ActionRight:
		return ActionLeft
	}
	return ActionNone
}
