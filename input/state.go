// Package input holds the per-frame input snapshot and the terminal adapter that builds it
package input

// State is the input polled once per frame
// Pointer coordinates are in world units
type State struct {
	Up, Down, Left, Right bool

	// Fire is level-triggered: true on every frame the pointer or fire key is held
	Fire bool

	PointerX, PointerY float64
}
