package components

import "fmt"

// HUDComponent is a text element fixed to the camera
type HUDComponent struct {
	Text string
	Col  int
	Row  int
	// ScrollFactor 0 keeps the text still while the camera moves
	ScrollFactor float64
}

// SetScore refreshes the text from a score using format
func (h *HUDComponent) SetScore(format string, score int) {
	h.Text = fmt.Sprintf(format, score)
}
