package systems

import (
	"time"

	"github.com/lixenwraith/overworld/asset"
	"github.com/lixenwraith/overworld/constants"
	"github.com/lixenwraith/overworld/engine"
)

// PlayerSystem turns the frame's direction input into player velocity,
// facing, background scroll and animation state
type PlayerSystem struct{}

// NewPlayerSystem creates a new player system
func NewPlayerSystem() *PlayerSystem {
	return &PlayerSystem{}
}

// Priority returns the system's priority
func (s *PlayerSystem) Priority() int {
	return constants.PriorityPlayer
}

// Update sets velocity per axis; left beats right and up beats down when both are held
// A direction pointing past the map edge leaves that axis at rest
func (s *PlayerSystem) Update(world *engine.World, dt time.Duration) {
	p := world.Player
	in := world.Input
	hw, hh := p.HalfWidth(), p.HalfHeight()

	moving := false
	var dirX, dirY float64

	switch {
	case in.Left && p.X > hw:
		p.VX = -constants.PlayerSpeed
		p.FlipX = true
		dirX = -1
		moving = true
	case in.Right && p.X < world.Bounds.Width-hw:
		p.VX = constants.PlayerSpeed
		p.FlipX = false
		dirX = 1
		moving = true
	default:
		p.VX = 0
	}

	switch {
	case in.Up && p.Y > hh:
		p.VY = -constants.PlayerSpeed
		dirY = -1
		moving = true
	case in.Down && p.Y < world.Bounds.Height-hh:
		p.VY = constants.PlayerSpeed
		dirY = 1
		moving = true
	default:
		p.VY = 0
	}

	p.Moving = moving
	if !moving {
		p.Play(world.Animations.MustLookup(asset.KindPlayer, asset.StateIdle))
		return
	}

	// Cosmetic parallax, only while moving
	world.ScrollX += dirX * constants.BackgroundScrollStep
	world.ScrollY += dirY * constants.BackgroundScrollStep
	p.Play(world.Animations.MustLookup(asset.KindPlayer, asset.StateWalk))
}
