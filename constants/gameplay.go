package constants

import "time"

// Map dimensions in world units, larger than any viewport
const (
	MapWidth  = 2000.0
	MapHeight = 2000.0
)

// Player
const (
	// PlayerSpeed is the per-axis speed while a direction is held (units/sec)
	PlayerSpeed = 100.0

	PlayerWidth  = 16.0
	PlayerHeight = 16.0

	// Spawn point is the centre of the top-left map quarter
	PlayerSpawnX = MapWidth / 4
	PlayerSpawnY = MapHeight / 4

	// BackgroundScrollStep is the tile offset applied per frame while the player moves
	BackgroundScrollStep = 4.0
)

// Enemy
const (
	EnemySpawnInterval = 1500 * time.Millisecond

	// EnemyMinSpeed and EnemyMaxSpeed bound the per-instance seek speed (inclusive)
	EnemyMinSpeed = 50
	EnemyMaxSpeed = 200

	EnemyWidth  = 16.0
	EnemyHeight = 16.0
	EnemyBounce = 1.0
)

// Projectile
const (
	// ProjectilePoolSize caps projectiles in flight
	ProjectilePoolSize = 3

	ProjectileSpeed    = 400.0
	ProjectileLifetime = 1000 * time.Millisecond
	ProjectileScale    = 0.5
	ProjectileBounce   = 1.0

	// Unscaled shell size
	ProjectileWidth  = 16.0
	ProjectileHeight = 16.0
)

// Score
const (
	ScorePerKill = 1
	ScoreFormat  = "Score: %d"
)
