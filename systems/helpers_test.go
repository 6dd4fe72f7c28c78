package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/overworld/engine"
	"github.com/lixenwraith/overworld/events"
	"github.com/lixenwraith/overworld/input"
)

const frame = 10 * time.Millisecond

// newTestGame builds a started game running only the given systems
func newTestGame(t *testing.T, systems ...engine.System) *engine.Game {
	t.Helper()
	w := engine.NewWorld(engine.Options{Seed: 42})
	for _, s := range systems {
		w.AddSystem(s)
	}
	g := engine.NewGame(w)
	g.Start()
	return g
}

// collect records routed events of the given types
func collect(g *engine.Game, types ...events.EventType) *[]events.GameEvent {
	var got []events.GameEvent
	g.Register(events.HandlerFunc[*engine.World]{
		Types: types,
		Fn: func(_ *engine.World, ev events.GameEvent) {
			got = append(got, ev)
		},
	})
	return &got
}

func tickN(g *engine.Game, in input.State, n int) {
	for i := 0; i < n; i++ {
		g.Tick(in, frame)
	}
}
