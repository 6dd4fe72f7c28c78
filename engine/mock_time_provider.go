package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/overworld/constants"
)

// MockTimeProvider is a hand-driven clock for frame clock and frontend tests
type MockTimeProvider struct {
	mu  sync.Mutex
	now time.Time
}

// NewMockTimeProvider starts the clock at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// SetTime jumps to t, which may be earlier than the current time
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

// AdvanceFrames moves the clock forward by n ticks of constants.FrameInterval
func (m *MockTimeProvider) AdvanceFrames(n int) {
	m.Advance(time.Duration(n) * constants.FrameInterval)
}
