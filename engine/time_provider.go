package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/overworld/constants"
)

// TimeProvider supplies wall-clock readings to the frame driver
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// FrameClock turns wall-clock readings into per-tick deltas
// A stall (debugger, suspended terminal) is capped at constants.MaxFrameDelta
type FrameClock struct {
	mu       sync.Mutex
	provider TimeProvider
	last     time.Time
}

// NewFrameClock creates a frame clock starting at the provider's current time
func NewFrameClock(provider TimeProvider) *FrameClock {
	return &FrameClock{
		provider: provider,
		last:     provider.Now(),
	}
}

// Delta returns the time since the previous call, capped
func (c *FrameClock) Delta() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.provider.Now()
	dt := now.Sub(c.last)
	c.last = now

	if dt < 0 {
		return 0
	}
	if dt > constants.MaxFrameDelta {
		return constants.MaxFrameDelta
	}
	return dt
}

// Sync discards time accumulated since the previous call, used after a pause
func (c *FrameClock) Sync() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.last = c.provider.Now()
}
