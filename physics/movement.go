// @focus: #physics { movement }
package physics

import (
	"time"

	"github.com/lixenwraith/overworld/components"
)

// Integrate advances a body by its velocity over dt
// Bodies with CollideWorldBounds are kept inside bounds; on contact the velocity
// component pointing out of the world is reflected scaled by Bounce (0 stops it)
// Returns true if the body touched a world edge this step
func Integrate(b *components.BodyComponent, dt time.Duration, bounds Bounds) bool {
	secs := dt.Seconds()
	b.X += b.VX * secs
	b.Y += b.VY * secs

	if !b.CollideWorldBounds {
		return false
	}

	hit := false
	hw, hh := b.HalfWidth(), b.HalfHeight()

	if x := ClampAxis(b.X, hw, bounds.Width); x != b.X {
		hit = true
		if (x > b.X && b.VX < 0) || (x < b.X && b.VX > 0) {
			b.VX = -b.VX * b.Bounce
		}
		b.X = x
	}
	if y := ClampAxis(b.Y, hh, bounds.Height); y != b.Y {
		hit = true
		if (y > b.Y && b.VY < 0) || (y < b.Y && b.VY > 0) {
			b.VY = -b.VY * b.Bounce
		}
		b.Y = y
	}
	return hit
}
