package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/overworld/constants"
)

// SoundManager manages all game audio
// Every operation is safe before Initialize and after Cleanup; it just plays nothing
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       bool

	lastPlayed [soundTypeCount]time.Time
	now        func() time.Time
}

// NewSoundManager creates a new sound manager; nil cfg uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Initialize sets up the speaker; a disabled config skips the device entirely
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// Initialized reports whether the speaker is running
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// SetMuted silences playback without releasing the device
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// ToggleMute flips the mute state and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Play queues a sound effect, returns false if it was not played
// Repeats of one sound closer than MinSoundGap are dropped
func (sm *SoundManager) Play(st SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return false
	}
	if !sm.admit(st, sm.now()) {
		return false
	}

	streamer := GetSoundEffect(st, sm.cfg)
	if streamer == nil {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

// admit applies the per-sound rate limit, caller holds mu
func (sm *SoundManager) admit(st SoundType, now time.Time) bool {
	if st < 0 || st >= soundTypeCount {
		return false
	}
	last := sm.lastPlayed[st]
	if !last.IsZero() && now.Sub(last) < constants.MinSoundGap {
		return false
	}
	sm.lastPlayed[st] = now
	return true
}
