// Package config resolves runtime settings from defaults, environment and flags
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/lixenwraith/overworld/audio"
	"github.com/lixenwraith/overworld/constants"
)

// Environment variables read by Load
const (
	EnvAudioEnabled = "OVERWORLD_AUDIO_ENABLED"
	EnvMasterVolume = "OVERWORLD_MASTER_VOLUME" // 0-100
	EnvSFXVolumes   = "OVERWORLD_SFX_VOLUMES"   // JSON object, sound name to 0.0-1.0
	EnvSeed         = "OVERWORLD_SEED"
	EnvSampleRate   = "OVERWORLD_SAMPLE_RATE"
)

// ErrHelp is returned when -h or -help was requested
var ErrHelp = flag.ErrHelp

// Config holds runtime settings; gameplay tuning lives in constants
type Config struct {
	Debug         bool
	Seed          int64 // 0 seeds from the clock
	FrameInterval time.Duration
	Mute          bool
	Audio         *audio.AudioConfig
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		FrameInterval: constants.FrameInterval,
		Audio:         audio.DefaultAudioConfig(),
	}
}

// Load builds a config from defaults, then getenv, then command-line args
// args excludes the program name; output receives usage text
func Load(name string, args []string, getenv func(string) string, output io.Writer) (*Config, error) {
	cfg := Default()

	if err := cfg.applyEnv(getenv); err != nil {
		return nil, err
	}
	if err := cfg.applyFlags(name, args, output); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) applyEnv(getenv func(string) string) error {
	if getenv == nil {
		return nil
	}

	if v := getenv(EnvAudioEnabled); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAudioEnabled, err)
		}
		cfg.Audio.Enabled = b
	}

	if v := getenv(EnvMasterVolume); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMasterVolume, err)
		}
		cfg.Audio.SetMasterVolume(n)
	}

	if v := getenv(EnvSFXVolumes); v != "" {
		if err := cfg.Audio.ParseEffectVolumes([]byte(v)); err != nil {
			return fmt.Errorf("%s: %w", EnvSFXVolumes, err)
		}
	}

	if v := getenv(EnvSeed); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = n
	}

	if v := getenv(EnvSampleRate); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSampleRate, err)
		}
		if n <= 0 {
			return fmt.Errorf("%s: sample rate must be positive, got %d", EnvSampleRate, n)
		}
		cfg.Audio.SampleRate = n
	}

	return nil
}

func (cfg *Config) applyFlags(name string, args []string, output io.Writer) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}

	volume := fs.Int("volume", -1, "Master volume 0-100 (overrides "+EnvMasterVolume+")")
	noAudio := fs.Bool("no-audio", false, "Disable audio output")
	fps := fs.Int("fps", 0, "Target frames per second (default 60)")

	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Write debug log to logs/")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed, 0 for time-based")
	fs.BoolVar(&cfg.Mute, "mute", cfg.Mute, "Start with sound muted")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ErrHelp
		}
		return fmt.Errorf("parse flags: %w", err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if *volume >= 0 {
		cfg.Audio.SetMasterVolume(*volume)
	}
	if *noAudio {
		cfg.Audio.Enabled = false
	}
	if *fps < 0 || *fps > constants.MaxFPS {
		return fmt.Errorf("fps must be between 1 and %d, got %d", constants.MaxFPS, *fps)
	}
	if *fps > 0 {
		cfg.FrameInterval = time.Second / time.Duration(*fps)
	}

	return nil
}
