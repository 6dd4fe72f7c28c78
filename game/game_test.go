package game

import (
	"bytes"
	"log"
	"testing"
	"time"

	"github.com/lixenwraith/overworld/audio"
	"github.com/lixenwraith/overworld/components"
	"github.com/lixenwraith/overworld/constants"
	"github.com/lixenwraith/overworld/engine"
	"github.com/lixenwraith/overworld/input"
)

const frame = 16 * time.Millisecond

type countingPlayer struct {
	counts map[audio.SoundType]int
}

func (p *countingPlayer) Play(st audio.SoundType) bool {
	p.counts[st]++
	return true
}

func newGame(t *testing.T) (*engine.Game, *countingPlayer, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	p := &countingPlayer{counts: make(map[audio.SoundType]int)}
	g := New(Options{Seed: 5, Logger: log.New(&buf, "", 0), Sound: p})
	g.Start()
	return g, p, &buf
}

func TestNewGameInitialState(t *testing.T) {
	g, _, buf := newGame(t)
	w := g.World

	if len(w.Systems()) != 7 {
		t.Errorf("Expected 7 systems, got %d", len(w.Systems()))
	}
	if w.Player.X != constants.PlayerSpawnX || w.Player.Y != constants.PlayerSpawnY {
		t.Errorf("Player at (%v, %v)", w.Player.X, w.Player.Y)
	}
	if w.HUD.Text != "Score: 0" {
		t.Errorf("Expected initial HUD, got %q", w.HUD.Text)
	}
	if buf.Len() == 0 {
		t.Error("Expected session start logged")
	}
}

func TestHoldingFireNeverExceedsPool(t *testing.T) {
	g, p, _ := newGame(t)
	w := g.World

	// Pointer far to the right, away from any enemy path for a few seconds
	in := input.State{Fire: true, PointerX: constants.MapWidth, PointerY: w.Player.Y}
	for i := 0; i < 300; i++ {
		g.Tick(in, frame)
		if n := w.Projectiles.ActiveCount(); n > constants.ProjectilePoolSize {
			t.Fatalf("Frame %d: %d projectiles active", i, n)
		}
		if w.RestartPending() {
			t.Fatal("Unexpected pending restart after tick")
		}
	}

	if p.counts[audio.SoundShot] == 0 {
		t.Error("Expected shot cues")
	}
}

func TestProjectilesExpireWithoutContacts(t *testing.T) {
	g, _, _ := newGame(t)
	w := g.World

	g.Tick(input.State{Fire: true, PointerX: w.Player.X, PointerY: 0}, frame)
	fired := w.Elapsed

	for w.Elapsed-fired < constants.ProjectileLifetime {
		g.Tick(input.State{}, frame)
	}

	w.Projectiles.Each(func(i int, _ *components.ProjectileComponent) {
		t.Errorf("Slot %d still active %v after firing", i, w.Elapsed-fired)
	})
}

func TestEnemiesEventuallyCatchIdlePlayer(t *testing.T) {
	g, p, buf := newGame(t)
	w := g.World

	restarted := false
	// Enemies spawn every 1.5s at up to 200 u/s on a 2000 unit map
	for i := 0; i < 60*60 && !restarted; i++ {
		restarted = g.Tick(input.State{}, frame)
	}

	if !restarted {
		t.Fatal("Expected an enemy to reach the idle player within a minute")
	}
	if w.Session != 2 || w.Score != 0 || len(w.Enemies) != 0 {
		t.Errorf("Expected fresh session 2, got session=%d score=%d enemies=%d", w.Session, w.Score, len(w.Enemies))
	}
	if p.counts[audio.SoundRestart] != 1 || p.counts[audio.SoundSpawn] == 0 {
		t.Errorf("Unexpected cues %v", p.counts)
	}
	if !bytes.Contains(buf.Bytes(), []byte("session 1 ended")) {
		t.Errorf("Expected session end logged, got %q", buf.String())
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	run := func() []float64 {
		g := New(Options{Seed: 77})
		for i := 0; i < 200; i++ {
			g.Tick(input.State{}, frame)
		}
		var xs []float64
		for _, e := range g.World.Enemies {
			xs = append(xs, e.X, e.Y, e.Speed)
		}
		return xs
	}

	a, b := run(), run()
	if len(a) == 0 || len(a) != len(b) {
		t.Fatalf("Expected equal non-empty runs, got %d and %d values", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Runs diverged at %d: %v vs %v", i, a[i], b[i])
		}
	}
}
