package audio

import "github.com/lixenwraith/overworld/events"

// Player plays sound effects
type Player interface {
	Play(st SoundType) bool
}

// Cues maps gameplay events to sound effects
// T is the router context, unused here
type Cues[T any] struct {
	player Player
}

// NewCues creates a cue handler playing through p
func NewCues[T any](p Player) *Cues[T] {
	return &Cues[T]{player: p}
}

// EventTypes returns the event types this handler processes
func (c *Cues[T]) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventShotFired,
		events.EventEnemyKilled,
		events.EventEnemySpawned,
		events.EventSessionRestart,
	}
}

// HandleEvent plays the cue for an event
func (c *Cues[T]) HandleEvent(_ T, event events.GameEvent) {
	if st, ok := CueFor(event.Type); ok {
		c.player.Play(st)
	}
}

// CueFor returns the sound played for an event type
func CueFor(t events.EventType) (SoundType, bool) {
	switch t {
	case events.EventShotFired:
		return SoundShot, true
	case events.EventEnemyKilled:
		return SoundKill, true
	case events.EventEnemySpawned:
		return SoundSpawn, true
	case events.EventSessionRestart:
		return SoundRestart, true
	}
	return 0, false
}
