package constants

import "time"

// Audio engine
const (
	// AudioSampleRate is the default speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration sizes the speaker buffer
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap is the minimum gap between two plays of the same cue
	MinSoundGap = 50 * time.Millisecond
)

// Shot sound timing
const (
	ShotSoundDuration = 60 * time.Millisecond
	ShotSoundAttack   = 2 * time.Millisecond
	ShotSoundRelease  = 40 * time.Millisecond
)

// Kill sound timing
const (
	KillSoundNote1Duration = 60 * time.Millisecond
	KillSoundNote2Duration = 180 * time.Millisecond
	KillSoundAttack        = 5 * time.Millisecond
	KillSoundNote1Release  = 30 * time.Millisecond
	KillSoundNote2Release  = 140 * time.Millisecond
)

// Spawn sound timing
const (
	SpawnSoundDuration = 90 * time.Millisecond
	SpawnSoundAttack   = 10 * time.Millisecond
	SpawnSoundRelease  = 60 * time.Millisecond
)

// Restart sound timing
const (
	RestartSoundDuration = 400 * time.Millisecond
	RestartSoundAttack   = 20 * time.Millisecond
	RestartSoundRelease  = 300 * time.Millisecond
)
