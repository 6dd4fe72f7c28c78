package systems

import (
	"time"

	"github.com/lixenwraith/overworld/components"
	"github.com/lixenwraith/overworld/constants"
	"github.com/lixenwraith/overworld/engine"
	"github.com/lixenwraith/overworld/physics"
)

// MovementSystem integrates velocities for every actor and applies world bounds
type MovementSystem struct{}

// NewMovementSystem creates a new movement system
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

// Priority returns the system's priority
func (s *MovementSystem) Priority() int {
	return constants.PriorityMovement
}

// Update moves the player, enemies and projectiles in flight
func (s *MovementSystem) Update(world *engine.World, dt time.Duration) {
	physics.Integrate(&world.Player.BodyComponent, dt, world.Bounds)

	for _, e := range world.Enemies {
		physics.Integrate(&e.BodyComponent, dt, world.Bounds)
	}

	world.Projectiles.Each(func(_ int, p *components.ProjectileComponent) {
		physics.Integrate(&p.BodyComponent, dt, world.Bounds)
	})
}
