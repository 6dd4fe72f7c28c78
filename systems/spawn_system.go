package systems

import (
	"time"

	"github.com/lixenwraith/overworld/constants"
	"github.com/lixenwraith/overworld/engine"
	"github.com/lixenwraith/overworld/events"
)

// SpawnSystem creates one enemy per spawn interval at a random map position
// Spawning is driven by a repeating scheduler timer registered on every session start
type SpawnSystem struct{}

// NewSpawnSystem creates a new spawn system
func NewSpawnSystem() *SpawnSystem {
	return &SpawnSystem{}
}

// Priority returns the system's priority
func (s *SpawnSystem) Priority() int {
	return constants.PrioritySpawn
}

// Update is a no-op, the spawn timer does the work
func (s *SpawnSystem) Update(world *engine.World, dt time.Duration) {}

// Reset registers the repeating spawn timer for a new session
// The scheduler was cleared by the world, so the previous timer is already gone
func (s *SpawnSystem) Reset(world *engine.World) {
	world.Scheduler.Every(constants.EnemySpawnInterval, func() {
		s.Spawn(world)
	})
}

// Spawn places one enemy with a random position and speed
func (s *SpawnSystem) Spawn(world *engine.World) {
	x := float64(world.Between(0, int(world.Bounds.Width)))
	y := float64(world.Between(0, int(world.Bounds.Height)))
	speed := float64(world.Between(constants.EnemyMinSpeed, constants.EnemyMaxSpeed))

	world.SpawnEnemy(x, y, speed)

	world.Emit(events.EventEnemySpawned, &events.SpawnPayload{
		X:     x,
		Y:     y,
		Speed: speed,
		Count: len(world.Enemies),
	})
}
