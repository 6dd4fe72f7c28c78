// @focus: #engine { loop }
package engine

import (
	"time"

	"github.com/lixenwraith/overworld/events"
	"github.com/lixenwraith/overworld/input"
)

// Game is the frame driver: one Tick per rendered frame, single goroutine
type Game struct {
	World  *World
	Router *events.Router[*World]

	paused  bool
	started bool
}

// NewGame wraps a world with an event router on its queue
func NewGame(w *World) *Game {
	return &Game{
		World:  w,
		Router: events.NewRouter[*World](w.Events),
	}
}

// Register adds an event handler, called after systems each tick
func (g *Game) Register(h events.Handler[*World]) {
	g.Router.Register(h)
}

// Start begins the first session
func (g *Game) Start() {
	g.World.Reset()
	g.started = true
	g.Router.DispatchAll(g.World)
}

// Tick runs one frame: timers fire, then systems update, then events dispatch
// A restart requested during the frame is applied before Tick returns
// Returns true if the session restarted
func (g *Game) Tick(in input.State, dt time.Duration) bool {
	if !g.started {
		g.Start()
	}
	if g.paused || dt <= 0 {
		return false
	}

	w := g.World
	w.Input = in
	w.Frame++
	w.Elapsed += dt

	w.Scheduler.Drain(w.Elapsed)
	w.Update(dt)
	g.Router.DispatchAll(w)

	if !w.RestartPending() {
		return false
	}
	w.Reset()
	g.Router.DispatchAll(w)
	return true
}

// Pause freezes session time; timers and systems stop until Resume
func (g *Game) Pause() { g.paused = true }

// Resume continues a paused session
func (g *Game) Resume() { g.paused = false }

// TogglePause flips the pause state and returns the new state
func (g *Game) TogglePause() bool {
	g.paused = !g.paused
	return g.paused
}

// IsPaused returns current pause state
func (g *Game) IsPaused() bool {
	return g.paused
}
