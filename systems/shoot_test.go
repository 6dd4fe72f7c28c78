package systems

import (
	"math"
	"testing"

	"github.com/lixenwraith/overworld/components"
	"github.com/lixenwraith/overworld/constants"
	"github.com/lixenwraith/overworld/events"
	"github.com/lixenwraith/overworld/input"
)

func TestShootVelocityTowardPointer(t *testing.T) {
	g := newTestGame(t, NewShootSystem())
	w := g.World
	p := w.Player

	g.Tick(input.State{Fire: true, PointerX: p.X, PointerY: p.Y - 300}, frame)

	proj := w.Projectiles.Slot(0)
	if !proj.Active || !proj.Visible {
		t.Fatal("Expected slot 0 in flight")
	}
	if proj.X != p.X || proj.Y != p.Y {
		t.Errorf("Expected projectile at player (%v, %v), got (%v, %v)", p.X, p.Y, proj.X, proj.Y)
	}
	if math.Abs(proj.VX) > 1e-9 || math.Abs(proj.VY+constants.ProjectileSpeed) > 1e-9 {
		t.Errorf("Expected (0, -400), got (%v, %v)", proj.VX, proj.VY)
	}
	if !proj.CollideWorldBounds || proj.Bounce != constants.ProjectileBounce {
		t.Error("Expected world-bound bounce enabled")
	}
}

func TestShootPoolCapacity(t *testing.T) {
	g := newTestGame(t, NewShootSystem())
	w := g.World
	shots := collect(g, events.EventShotFired)

	// Pointer on the player: atan2(0, 0) aims along +X
	in := input.State{Fire: true, PointerX: w.Player.X, PointerY: w.Player.Y}
	tickN(g, in, 20)

	if n := w.Projectiles.ActiveCount(); n != constants.ProjectilePoolSize {
		t.Errorf("Expected %d active, got %d", constants.ProjectilePoolSize, n)
	}
	if len(*shots) != constants.ProjectilePoolSize {
		t.Errorf("Expected %d shot events, got %d", constants.ProjectilePoolSize, len(*shots))
	}
	w.Projectiles.Each(func(i int, proj *components.ProjectileComponent) {
		if proj.VX != constants.ProjectileSpeed || proj.VY != 0 {
			t.Errorf("Slot %d velocity (%v, %v), want (400, 0)", i, proj.VX, proj.VY)
		}
	})
}

func TestShootNotFiredWithoutInput(t *testing.T) {
	g := newTestGame(t, NewShootSystem())
	tickN(g, input.State{PointerX: 10, PointerY: 10}, 10)
	if n := g.World.Projectiles.ActiveCount(); n != 0 {
		t.Errorf("Expected no projectiles, got %d", n)
	}
}

func TestProjectileLifetime(t *testing.T) {
	g := newTestGame(t, NewShootSystem(), NewMovementSystem())
	w := g.World
	expired := collect(g, events.EventProjectileExpired)

	g.Tick(input.State{Fire: true, PointerX: 0, PointerY: w.Player.Y}, frame)
	if w.Projectiles.ActiveCount() != 1 {
		t.Fatal("Expected one projectile")
	}

	ticks := int(constants.ProjectileLifetime / frame)
	tickN(g, input.State{}, ticks-1)
	if w.Projectiles.ActiveCount() != 1 {
		t.Fatal("Projectile expired early")
	}

	g.Tick(input.State{}, frame)
	if w.Projectiles.ActiveCount() != 0 {
		t.Errorf("Expected projectile expired after %v", constants.ProjectileLifetime)
	}
	if len(*expired) != 1 {
		t.Errorf("Expected one expiry event, got %d", len(*expired))
	}
	if w.Projectiles.Slot(0).Visible {
		t.Error("Expired projectile should be hidden")
	}
}

func TestProjectileBouncesOffWall(t *testing.T) {
	g := newTestGame(t, NewShootSystem(), NewMovementSystem())
	w := g.World
	w.Player.X = 50

	// Toward the left wall, 50 units away at 400 u/s
	g.Tick(input.State{Fire: true, PointerX: 0, PointerY: w.Player.Y}, frame)
	tickN(g, input.State{}, 30)

	proj := w.Projectiles.Slot(0)
	if proj.VX <= 0 {
		t.Errorf("Expected projectile reflected to +X, got vx=%v", proj.VX)
	}
}
