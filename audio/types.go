package audio

import (
	"encoding/json"
	"fmt"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundShot    SoundType = iota // Projectile fired
	SoundKill                     // Enemy destroyed by a projectile
	SoundSpawn                    // Enemy appeared
	SoundRestart                  // Player caught, session restarts
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundShot:    "shot",
	SoundKill:    "kill",
	SoundSpawn:   "spawn",
	SoundRestart: "restart",
}

// String returns the sound name used in configuration
func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return fmt.Sprintf("sound(%d)", int(s))
	}
	return soundNames[s]
}

// ParseSoundType resolves a configuration name to a sound type
func ParseSoundType(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	EffectVolumes map[SoundType]float64
	SampleRate    int
}

// DefaultAudioConfig returns audio enabled at moderate volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: map[SoundType]float64{
			SoundShot:    0.4,
			SoundKill:    0.7,
			SoundSpawn:   0.3,
			SoundRestart: 0.8,
		},
		SampleRate: 44100,
	}
}

// ParseEffectVolumes applies a JSON object of name to volume onto cfg
// Unknown names are an error, so typos in configuration surface early
func (cfg *AudioConfig) ParseEffectVolumes(data []byte) error {
	var volumes map[string]float64
	if err := json.Unmarshal(data, &volumes); err != nil {
		return fmt.Errorf("effect volumes: %w", err)
	}
	for name, v := range volumes {
		st, ok := ParseSoundType(name)
		if !ok {
			return fmt.Errorf("effect volumes: unknown sound %q", name)
		}
		cfg.EffectVolumes[st] = clampVolume(v)
	}
	return nil
}

// SetMasterVolume sets the master volume from a 0-100 percentage
func (cfg *AudioConfig) SetMasterVolume(percent int) {
	cfg.MasterVolume = clampVolume(float64(percent) / 100.0)
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
