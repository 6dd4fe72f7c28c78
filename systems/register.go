package systems

import (
	"log"

	"github.com/lixenwraith/overworld/engine"
)

// RegisterAll adds the gameplay systems to the world and the session logger to the game
func RegisterAll(game *engine.Game, logger *log.Logger) {
	w := game.World
	w.AddSystem(NewPlayerSystem())
	w.AddSystem(NewEnemySystem())
	w.AddSystem(NewShootSystem())
	w.AddSystem(NewSpawnSystem())
	w.AddSystem(NewMovementSystem())
	w.AddSystem(NewCollisionSystem())
	w.AddSystem(NewAnimationSystem())

	game.Register(NewSessionLog(logger))
}
