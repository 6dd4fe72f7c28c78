package systems

import (
	"time"

	"github.com/lixenwraith/overworld/constants"
	"github.com/lixenwraith/overworld/engine"
)

// AnimationSystem advances sprite animations
type AnimationSystem struct{}

// NewAnimationSystem creates a new animation system
func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

// Priority returns the system's priority
func (s *AnimationSystem) Priority() int {
	return constants.PriorityAnimation
}

// Update advances the player and enemy animators by dt
func (s *AnimationSystem) Update(world *engine.World, dt time.Duration) {
	world.Player.Advance(dt)
	for _, e := range world.Enemies {
		e.Advance(dt)
	}
}
