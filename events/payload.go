package events

// SessionPayload identifies a session and its final or starting score
type SessionPayload struct {
	SessionID string
	Session   int // 1-based session counter within the run
	Score     int
	BestScore int
}

// SpawnPayload describes a spawned enemy
type SpawnPayload struct {
	X, Y  float64
	Speed float64
	Count int // Enemies alive after the spawn
}

// ShotPayload describes an acquired projectile
type ShotPayload struct {
	Slot   int
	X, Y   float64
	VX, VY float64
}

// KillPayload describes a projectile-enemy contact
type KillPayload struct {
	Slot  int
	X, Y  float64
	Score int // Score after the kill
}
