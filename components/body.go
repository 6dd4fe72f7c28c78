// @focus: #physics { body }
package components

// BodyComponent is the physical state shared by every actor
// Position is the body centre in world units
type BodyComponent struct {
	X, Y   float64
	VX, VY float64

	Width, Height float64

	// CollideWorldBounds keeps the body inside the map
	CollideWorldBounds bool
	// Bounce is the velocity restitution on a world-bound hit, 0 stops the axis
	Bounce float64
}

// HalfWidth returns half the body width
func (b *BodyComponent) HalfWidth() float64 { return b.Width / 2 }

// HalfHeight returns half the body height
func (b *BodyComponent) HalfHeight() float64 { return b.Height / 2 }

// SetVelocity sets both velocity axes
func (b *BodyComponent) SetVelocity(vx, vy float64) {
	b.VX = vx
	b.VY = vy
}

// Stop zeroes velocity
func (b *BodyComponent) Stop() {
	b.VX = 0
	b.VY = 0
}

// Overlaps reports whether two bodies' rectangles intersect
func (b *BodyComponent) Overlaps(o *BodyComponent) bool {
	return b.X-b.HalfWidth() < o.X+o.HalfWidth() &&
		o.X-o.HalfWidth() < b.X+b.HalfWidth() &&
		b.Y-b.HalfHeight() < o.Y+o.HalfHeight() &&
		o.Y-o.HalfHeight() < b.Y+b.HalfHeight()
}
