package events

import "time"

// EventType represents the type of game event
type EventType int

const (
	// EventSessionStart marks a fresh session after construction or restart
	// Trigger: World.Reset | Payload: *SessionPayload
	EventSessionStart EventType = iota

	// EventSessionRestart marks a player-enemy contact
	// Trigger: CollisionSystem | Payload: *SessionPayload (score of the ending session)
	EventSessionRestart

	// EventEnemySpawned signals a new enemy from the spawn timer
	// Trigger: SpawnSystem | Payload: *SpawnPayload
	EventEnemySpawned

	// EventShotFired signals a projectile acquired from the pool
	// Trigger: ShootSystem | Payload: *ShotPayload
	EventShotFired

	// EventEnemyKilled signals a projectile-enemy contact
	// Trigger: CollisionSystem | Payload: *KillPayload
	EventEnemyKilled

	// EventProjectileExpired signals a projectile lifetime timeout
	// Trigger: ShootSystem timer | Payload: *ShotPayload (position at expiry)
	EventProjectileExpired
)

var eventNames = map[EventType]string{
	EventSessionStart:      "SessionStart",
	EventSessionRestart:    "SessionRestart",
	EventEnemySpawned:      "EnemySpawned",
	EventShotFired:         "ShotFired",
	EventEnemyKilled:       "EnemyKilled",
	EventProjectileExpired: "ProjectileExpired",
}

// String returns the event name for logs
func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64         // Frame the event was raised in
	At      time.Duration // Session time
}
