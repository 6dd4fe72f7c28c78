package constants

import "time"

// Terminal cell size in world units
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

// HUD placement in screen cells, fixed to the camera
const (
	HUDCol = 2
	HUDRow = 1

	// StatusBarRows is reserved at the bottom of the terminal
	StatusBarRows = 1
)

// Windowed frontend
const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "overworld"

	// HUDPixelX and HUDPixelY anchor the score text in the window
	HUDPixelX = 16
	HUDPixelY = 16
)

// Terminal key hold emulation. Terminals report presses and repeats but no
// releases, so a key counts as held for a window after its last event.
const (
	// KeyHoldInitial covers the gap before the terminal starts auto-repeat
	KeyHoldInitial = 500 * time.Millisecond

	// KeyHoldRepeat applies once repeats are arriving
	KeyHoldRepeat = 120 * time.Millisecond
)
