package systems

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/lixenwraith/overworld/input"
)

func TestSessionLogWritesLifecycle(t *testing.T) {
	var buf bytes.Buffer
	g := newTestGame(t, NewCollisionSystem())
	g.Register(NewSessionLog(log.New(&buf, "", 0)))
	w := g.World

	w.SpawnEnemy(w.Player.X, w.Player.Y, 60)
	g.Tick(input.State{}, frame)

	out := buf.String()
	if !strings.Contains(out, "session 1 ended") {
		t.Errorf("Expected end of session 1 logged, got %q", out)
	}
	if !strings.Contains(out, "session 2 started") {
		t.Errorf("Expected start of session 2 logged, got %q", out)
	}
}

func TestRegisterAllOrdersSystems(t *testing.T) {
	g := newTestGame(t)
	RegisterAll(g, log.New(&bytes.Buffer{}, "", 0))

	systems := g.World.Systems()
	if len(systems) != 7 {
		t.Fatalf("Expected 7 systems, got %d", len(systems))
	}
	for i := 1; i < len(systems); i++ {
		if systems[i-1].Priority() > systems[i].Priority() {
			t.Errorf("Systems out of order at %d", i)
		}
	}
}
