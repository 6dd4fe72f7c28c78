package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/overworld/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, optionally sweeping frequency
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding linearly from freq to endFreq
func NewSweep(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq
		if o.endFreq != o.freq && o.duration > 0 {
			freq += (o.endFreq - o.freq) * float64(o.position) / float64(o.duration)
		}
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0

		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a volume effect
// math.Log2(0) is -Inf, so 0 volume is made silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func effectVolume(cfg *AudioConfig, st SoundType) float64 {
	return cfg.EffectVolumes[st] * cfg.MasterVolume
}

// CreateShotSound generates a short descending blip
func CreateShotSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweep(1200.0, 600.0, constants.ShotSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constants.ShotSoundDuration, constants.ShotSoundAttack, constants.ShotSoundRelease, rate)

	return newVolume(shaped, effectVolume(cfg, SoundShot))
}

// CreateKillSound generates a two-note chime
func CreateKillSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// First note (B5)
	n1 := NewOscillator(987.77, constants.KillSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.KillSoundNote1Duration, constants.KillSoundAttack, constants.KillSoundNote1Release, rate)

	// Second note (E6)
	n2 := NewOscillator(1318.51, constants.KillSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constants.KillSoundNote2Duration, constants.KillSoundAttack, constants.KillSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), effectVolume(cfg, SoundKill))
}

// CreateSpawnSound generates a low pop
func CreateSpawnSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	body := NewSweep(90.0, 220.0, constants.SpawnSoundDuration, WaveSine, rate)
	bodyShaped := NewEnvelope(body, constants.SpawnSoundDuration, constants.SpawnSoundAttack, constants.SpawnSoundRelease, rate)

	click := NewOscillator(0, constants.SpawnSoundDuration, WaveNoise, rate)
	clickShaped := NewEnvelope(click, constants.SpawnSoundDuration, constants.SpawnSoundAttack, constants.SpawnSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(bodyShaped, 0.8),
		newVolume(clickShaped, 0.1),
	)
	return newVolume(mixed, effectVolume(cfg, SoundSpawn))
}

// CreateRestartSound generates a falling buzz
func CreateRestartSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweep(440.0, 80.0, constants.RestartSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, constants.RestartSoundDuration, constants.RestartSoundAttack, constants.RestartSoundRelease, rate)

	return newVolume(shaped, effectVolume(cfg, SoundRestart))
}

// GetSoundEffect returns the appropriate sound effect streamer for the given type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundShot:
		return CreateShotSound(cfg)
	case SoundKill:
		return CreateKillSound(cfg)
	case SoundSpawn:
		return CreateSpawnSound(cfg)
	case SoundRestart:
		return CreateRestartSound(cfg)
	default:
		return nil
	}
}
