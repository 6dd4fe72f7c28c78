package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/overworld/audio"
	"github.com/lixenwraith/overworld/config"
	"github.com/lixenwraith/overworld/engine"
	"github.com/lixenwraith/overworld/game"
	"github.com/lixenwraith/overworld/input"
	"github.com/lixenwraith/overworld/render"
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

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "overworld needs an interactive terminal, try overworld-gui")
		os.Exit(1)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	summary, err := run(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "overworld: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(summary.render())
}

// run owns the screen until the player quits
func run(cfg *config.Config) (runSummary, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return runSummary{}, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return runSummary{}, fmt.Errorf("init screen: %w", err)
	}

	// Panic Recovery: restore the terminal before the trace is printed
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mOVERWORLD CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

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

	renderer := render.NewTerminalRenderer(screen, g.World.Assets)
	terminalInput := input.NewTerminal(input.DefaultKeyTable())
	clock := engine.NewFrameClock(engine.NewMonotonicTimeProvider())

	// PollEvent returns nil once the screen is finalized, ending the goroutine
	eventChan := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	started := time.Now()
	frameTicker := time.NewTicker(cfg.FrameInterval)
	defer frameTicker.Stop()

	renderer.RenderFrame(g.World, g.IsPaused())

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return summarize(g.World, time.Since(started)), nil
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				renderer.Resize()
				screen.Sync()
				continue
			}
			switch terminalInput.HandleEvent(ev, time.Now()) {
			case input.ActionQuit:
				return summarize(g.World, time.Since(started)), nil
			case input.ActionPause:
				if !g.TogglePause() {
					clock.Sync()
				}
				renderer.RenderFrame(g.World, g.IsPaused())
			}

		case <-frameTicker.C:
			dt := clock.Delta()
			if g.IsPaused() {
				continue
			}
			in := terminalInput.Snapshot(time.Now(), renderer.ScreenToWorld)
			g.Tick(in, dt)
			renderer.RenderFrame(g.World, false)
		}
	}
}
