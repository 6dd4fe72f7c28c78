package systems

import (
	"log"

	"github.com/lixenwraith/overworld/engine"
	"github.com/lixenwraith/overworld/events"
)

// SessionLog writes session lifecycle events to the debug log
type SessionLog struct {
	logger *log.Logger
}

// NewSessionLog creates a session logger; nil uses the standard logger
func NewSessionLog(logger *log.Logger) *SessionLog {
	if logger == nil {
		logger = log.Default()
	}
	return &SessionLog{logger: logger}
}

// EventTypes returns the event types this handler processes
func (h *SessionLog) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventSessionStart,
		events.EventSessionRestart,
	}
}

// HandleEvent logs session start and end
func (h *SessionLog) HandleEvent(world *engine.World, event events.GameEvent) {
	p, ok := event.Payload.(*events.SessionPayload)
	if !ok {
		return
	}

	switch event.Type {
	case events.EventSessionStart:
		h.logger.Printf("session %d started id=%s best=%d", p.Session, p.SessionID, p.BestScore)
	case events.EventSessionRestart:
		h.logger.Printf("session %d ended id=%s score=%d elapsed=%v frame=%d",
			p.Session, p.SessionID, p.Score, event.At, event.Frame)
	}
}
