package systems

import (
	"time"

	"github.com/lixenwraith/overworld/constants"
	"github.com/lixenwraith/overworld/engine"
	"github.com/lixenwraith/overworld/events"
	"github.com/lixenwraith/overworld/physics"
)

// ShootSystem fires pooled projectiles toward the pointer while fire is held
// Level-triggered: every held frame attempts one acquisition
type ShootSystem struct{}

// NewShootSystem creates a new shoot system
func NewShootSystem() *ShootSystem {
	return &ShootSystem{}
}

// Priority returns the system's priority
func (s *ShootSystem) Priority() int {
	return constants.PriorityShoot
}

// Update acquires a free projectile; a full pool drops the shot silently
func (s *ShootSystem) Update(world *engine.World, dt time.Duration) {
	if !world.Input.Fire {
		return
	}

	slot, proj, ok := world.Projectiles.Acquire()
	if !ok {
		return
	}

	p := world.Player
	vx, vy := physics.VelocityToward(p.X, p.Y, world.Input.PointerX, world.Input.PointerY, constants.ProjectileSpeed)

	proj.X, proj.Y = p.X, p.Y
	proj.SetVelocity(vx, vy)
	proj.CollideWorldBounds = true
	proj.Bounce = constants.ProjectileBounce
	proj.Visible = true

	expiry := world.Scheduler.After(constants.ProjectileLifetime, func() {
		world.DeactivateProjectile(slot)
		world.Emit(events.EventProjectileExpired, &events.ShotPayload{Slot: slot, X: proj.X, Y: proj.Y})
	})
	world.Projectiles.SetExpiry(slot, expiry)

	world.Emit(events.EventShotFired, &events.ShotPayload{
		Slot: slot,
		X:    proj.X,
		Y:    proj.Y,
		VX:   vx,
		VY:   vy,
	})
}
