package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/overworld/asset"
	"github.com/lixenwraith/overworld/constants"
	"github.com/lixenwraith/overworld/events"
)

type recordingSystem struct {
	name     string
	priority int
	log      *[]string
	resets   int
}

func (s *recordingSystem) Update(_ *World, _ time.Duration) { *s.log = append(*s.log, s.name) }
func (s *recordingSystem) Priority() int                  { return s.priority }
func (s *recordingSystem) Reset(_ *World)                 { s.resets++ }

func newTestWorld() *World {
	return NewWorld(Options{Seed: 1})
}

func TestWorldSystemsRunInPriorityOrder(t *testing.T) {
	w := newTestWorld()
	var log []string
	w.AddSystem(&recordingSystem{name: "c", priority: 30, log: &log})
	w.AddSystem(&recordingSystem{name: "a", priority: 10, log: &log})
	w.AddSystem(&recordingSystem{name: "b1", priority: 20, log: &log})
	w.AddSystem(&recordingSystem{name: "b2", priority: 20, log: &log})

	w.Update(16 * time.Millisecond)

	want := []string{"a", "b1", "b2", "c"}
	if len(log) != len(want) {
		t.Fatalf("Expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, log)
		}
	}
}

func TestWorldResetInitialState(t *testing.T) {
	w := newTestWorld()
	sys := &recordingSystem{name: "s", log: new([]string)}
	w.AddSystem(sys)
	w.Reset()

	if w.Player == nil {
		t.Fatal("Expected player after Reset")
	}
	if w.Player.X != constants.PlayerSpawnX || w.Player.Y != constants.PlayerSpawnY {
		t.Errorf("Player at (%v, %v), want spawn point", w.Player.X, w.Player.Y)
	}
	if w.Player.Key() != asset.AnimationKey(asset.KindPlayer, asset.StateIdle) {
		t.Errorf("Expected idle animation, got %q", w.Player.Key())
	}
	if w.HUD.Text != "Score: 0" {
		t.Errorf("Expected HUD %q, got %q", "Score: 0", w.HUD.Text)
	}
	if sys.resets != 1 {
		t.Errorf("Expected system Reset once, got %d", sys.resets)
	}
	if w.Session != 1 || w.SessionID == "" {
		t.Errorf("Expected session 1 with an id, got %d %q", w.Session, w.SessionID)
	}

	evs := w.Events.Consume()
	if len(evs) != 1 || evs[0].Type != events.EventSessionStart {
		t.Errorf("Expected a single SessionStart event, got %v", evs)
	}
}

func TestWorldResetClearsSessionKeepsBest(t *testing.T) {
	w := newTestWorld()
	w.Reset()
	firstID := w.SessionID

	w.SpawnEnemy(10, 10, 60)
	i, proj, _ := w.Projectiles.Acquire()
	proj.Visible = true
	w.Projectiles.SetExpiry(i, w.Scheduler.After(time.Second, func() {}))
	w.AddScore(3)
	w.ScrollX, w.ScrollY = 12, -8
	w.Player.X = 900

	w.Reset()

	if len(w.Enemies) != 0 {
		t.Errorf("Expected no enemies, got %d", len(w.Enemies))
	}
	if w.Projectiles.ActiveCount() != 0 {
		t.Errorf("Expected no active projectiles, got %d", w.Projectiles.ActiveCount())
	}
	if w.Scheduler.Len() != 0 {
		t.Errorf("Expected timers cleared, got %d", w.Scheduler.Len())
	}
	if w.Score != 0 || w.HUD.Text != "Score: 0" {
		t.Errorf("Expected score reset, got %d %q", w.Score, w.HUD.Text)
	}
	if w.BestScore != 3 {
		t.Errorf("Expected best score kept at 3, got %d", w.BestScore)
	}
	if w.ScrollX != 0 || w.ScrollY != 0 {
		t.Errorf("Expected scroll reset, got (%v, %v)", w.ScrollX, w.ScrollY)
	}
	if w.Player.X != constants.PlayerSpawnX {
		t.Errorf("Expected player back at spawn, got x=%v", w.Player.X)
	}
	if w.Session != 2 || w.SessionID == firstID {
		t.Errorf("Expected a new session id for session 2, got %d %q", w.Session, w.SessionID)
	}
}

func TestWorldAddScore(t *testing.T) {
	w := newTestWorld()
	w.Reset()

	w.AddScore(1)
	w.AddScore(1)
	w.AddScore(0)
	w.AddScore(-5)

	if w.Score != 2 {
		t.Errorf("Expected score 2, got %d", w.Score)
	}
	if w.HUD.Text != "Score: 2" {
		t.Errorf("Expected HUD %q, got %q", "Score: 2", w.HUD.Text)
	}
}

func TestWorldRemoveEnemyPreservesOrder(t *testing.T) {
	w := newTestWorld()
	w.Reset()
	a := w.SpawnEnemy(1, 1, 50)
	b := w.SpawnEnemy(2, 2, 50)
	c := w.SpawnEnemy(3, 3, 50)

	if !w.RemoveEnemy(b) {
		t.Fatal("Expected RemoveEnemy to find b")
	}
	if w.RemoveEnemy(b) {
		t.Error("Second RemoveEnemy should report false")
	}
	if len(w.Enemies) != 2 || w.Enemies[0] != a || w.Enemies[1] != c {
		t.Errorf("Unexpected enemies after removal: %v", w.Enemies)
	}
}

func TestWorldDeactivateProjectileCancelsTimer(t *testing.T) {
	w := newTestWorld()
	w.Reset()

	i, _, _ := w.Projectiles.Acquire()
	fired := false
	id := w.Scheduler.After(time.Second, func() { fired = true })
	w.Projectiles.SetExpiry(i, id)

	w.DeactivateProjectile(i)

	if w.Scheduler.Pending(id) {
		t.Error("Expected lifetime timer cancelled")
	}
	w.Scheduler.Drain(2 * time.Second)
	if fired {
		t.Error("Cancelled lifetime timer fired")
	}
}

func TestWorldBetweenInclusive(t *testing.T) {
	w := newTestWorld()
	seenMin, seenMax := false, false
	for i := 0; i < 10000; i++ {
		v := w.Between(constants.EnemyMinSpeed, constants.EnemyMaxSpeed)
		if v < constants.EnemyMinSpeed || v > constants.EnemyMaxSpeed {
			t.Fatalf("Between returned %d outside range", v)
		}
		seenMin = seenMin || v == constants.EnemyMinSpeed
		seenMax = seenMax || v == constants.EnemyMaxSpeed
	}
	if !seenMin || !seenMax {
		t.Errorf("Expected both range ends to appear, min=%v max=%v", seenMin, seenMax)
	}
	if w.Between(5, 5) != 5 {
		t.Error("Degenerate range should return min")
	}
}
