package constants

import "time"

// Frame driver timing
const (
	// FrameInterval is the fixed logic and render tick (~60 FPS)
	FrameInterval = 16 * time.Millisecond

	// MaxFPS bounds the -fps flag so the frame interval stays above zero
	MaxFPS = 1000

	// MaxFrameDelta caps a single tick after a stall so timers do not burst
	MaxFrameDelta = 100 * time.Millisecond
)

// Collision space
const (
	// CollisionCellSize is the resolv spatial grid cell edge in world units
	CollisionCellSize = 32
)

// Event queue
const (
	// EventQueueSize must be a power of two
	EventQueueSize  = 256
	EventBufferMask = EventQueueSize - 1
)
