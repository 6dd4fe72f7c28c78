package systems

import (
	"time"

	"github.com/lixenwraith/overworld/constants"
	"github.com/lixenwraith/overworld/engine"
	"github.com/lixenwraith/overworld/physics"
)

// EnemySystem steers every enemy straight at the player's current position
type EnemySystem struct{}

// NewEnemySystem creates a new enemy system
func NewEnemySystem() *EnemySystem {
	return &EnemySystem{}
}

// Priority returns the system's priority
func (s *EnemySystem) Priority() int {
	return constants.PriorityEnemy
}

// Update recomputes each enemy velocity at its own fixed speed
func (s *EnemySystem) Update(world *engine.World, dt time.Duration) {
	target := world.Player
	for _, e := range world.Enemies {
		physics.Seek(&e.BodyComponent, target.X, target.Y, e.Speed)
	}
}
