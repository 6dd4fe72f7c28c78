// Package game assembles a playable session from the world, systems and event handlers
package game

import (
	"log"

	"github.com/lixenwraith/overworld/asset"
	"github.com/lixenwraith/overworld/audio"
	"github.com/lixenwraith/overworld/engine"
	"github.com/lixenwraith/overworld/systems"
)

// Options configures a new game
type Options struct {
	Seed   int64
	Logger *log.Logger
	// Sound receives audio cues, nil plays nothing
	Sound audio.Player
}

// New builds a world with the built-in assets and every gameplay system registered
// The first session starts on the first Tick, or earlier via Start
func New(opts Options) *engine.Game {
	assets := asset.NewRegistry()
	asset.LoadDefaults(assets)

	w := engine.NewWorld(engine.Options{
		Seed:       opts.Seed,
		Assets:     assets,
		Animations: asset.DefaultAnimations(),
	})

	g := engine.NewGame(w)
	systems.RegisterAll(g, opts.Logger)
	if opts.Sound != nil {
		g.Register(audio.NewCues[*engine.World](opts.Sound))
	}
	return g
}
