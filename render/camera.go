package render

import (
	"math"

	"github.com/lixenwraith/overworld/constants"
	"github.com/lixenwraith/overworld/physics"
)

// Camera maps world units to terminal cells
// X, Y is the world position of the viewport's top-left corner
type Camera struct {
	X, Y float64
	Cols int
	Rows int
}

// NewCamera creates a camera with a viewport of cols x rows cells
func NewCamera(cols, rows int) *Camera {
	c := &Camera{}
	c.Resize(cols, rows)
	return c
}

// Resize changes the viewport size
func (c *Camera) Resize(cols, rows int) {
	c.Cols = max(cols, 0)
	c.Rows = max(rows, 0)
}

// ViewSize returns the viewport size in world units
func (c *Camera) ViewSize() (w, h float64) {
	return float64(c.Cols) * constants.CellWidth, float64(c.Rows) * constants.CellHeight
}

// Follow centres the viewport on (x, y), kept inside bounds
// A viewport larger than the map is centred on the map instead
func (c *Camera) Follow(x, y float64, bounds physics.Bounds) {
	vw, vh := c.ViewSize()
	c.X = clampView(x-vw/2, vw, bounds.Width)
	c.Y = clampView(y-vh/2, vh, bounds.Height)
}

func clampView(v, view, limit float64) float64 {
	if view >= limit {
		return (limit - view) / 2
	}
	if v < 0 {
		return 0
	}
	if v > limit-view {
		return limit - view
	}
	return v
}

// WorldToScreen returns the cell containing world point (x, y)
func (c *Camera) WorldToScreen(x, y float64) (col, row int) {
	col = int(math.Floor((x - c.X) / constants.CellWidth))
	row = int(math.Floor((y - c.Y) / constants.CellHeight))
	return col, row
}

// ScreenToWorld returns the world point at the centre of a cell
func (c *Camera) ScreenToWorld(col, row int) (x, y float64) {
	x = c.X + (float64(col)+0.5)*constants.CellWidth
	y = c.Y + (float64(row)+0.5)*constants.CellHeight
	return x, y
}

// InView reports whether a cell lies in the viewport
func (c *Camera) InView(col, row int) bool {
	return col >= 0 && col < c.Cols && row >= 0 && row < c.Rows
}

// Viewport is a camera measured in pixels at one pixel per world unit,
// used by the windowed frontend
type Viewport struct {
	X, Y          float64
	Width, Height float64
}

// Follow centres the viewport on (x, y), kept inside bounds
func (v *Viewport) Follow(x, y float64, bounds physics.Bounds) {
	v.X = clampView(x-v.Width/2, v.Width, bounds.Width)
	v.Y = clampView(y-v.Height/2, v.Height, bounds.Height)
}

// ToScreen converts a world point to window pixels
func (v *Viewport) ToScreen(x, y float64) (sx, sy float64) {
	return x - v.X, y - v.Y
}

// ToWorld converts window pixels to a world point
func (v *Viewport) ToWorld(sx, sy int) (x, y float64) {
	return float64(sx) + v.X, float64(sy) + v.Y
}
