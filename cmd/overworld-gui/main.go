package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/overworld/audio"
	"github.com/lixenwraith/overworld/config"
	"github.com/lixenwraith/overworld/constants"
	"github.com/lixenwraith/overworld/engine"
	"github.com/lixenwraith/overworld/game"
)

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:], os.Getenv, os.Stderr)
	if errors.Is(err, config.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	sound := audio.NewSoundManager(cfg.Audio)
	if err := sound.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
	}
	sound.SetMuted(cfg.Mute)
	defer sound.Cleanup()

	g := game.New(game.Options{
		Seed:   cfg.Seed,
		Logger: log.Default(),
		Sound:  sound,
	})
	g.Start()

	window := newWindow(g, engine.NewFrameClock(engine.NewMonotonicTimeProvider()))

	ebiten.SetWindowSize(constants.WindowWidth, constants.WindowHeight)
	ebiten.SetWindowTitle(constants.WindowTitle)
	if err := ebiten.RunGame(window); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Printf("window: %v", err)
		os.Exit(1)
	}
}
