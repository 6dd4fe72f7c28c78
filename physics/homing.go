// @focus: #physics { homing }
package physics

import (
	"math"

	"github.com/lixenwraith/overworld/components"
)

// VelocityToward returns a velocity of magnitude speed along the angle from (x, y) to (tx, ty)
// The angle is atan2 of the delta, so coincident points yield a velocity along +X
func VelocityToward(x, y, tx, ty, speed float64) (vx, vy float64) {
	angle := math.Atan2(ty-y, tx-x)
	return math.Cos(angle) * speed, math.Sin(angle) * speed
}

// Seek points a body directly at a target at a fixed speed
// Pure seek: recomputed every frame, no path planning, no acceleration
func Seek(b *components.BodyComponent, tx, ty, speed float64) {
	b.VX, b.VY = VelocityToward(b.X, b.Y, tx, ty, speed)
}
