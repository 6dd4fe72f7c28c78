package systems

import (
	"time"

	"github.com/solarlune/resolv"

	"github.com/lixenwraith/overworld/components"
	"github.com/lixenwraith/overworld/constants"
	"github.com/lixenwraith/overworld/engine"
	"github.com/lixenwraith/overworld/events"
)

var (
	tagPlayer     = resolv.NewTag("player")
	tagEnemy      = resolv.NewTag("enemy")
	tagProjectile = resolv.NewTag("projectile")
)

// CollisionSystem resolves player-enemy and projectile-enemy contacts
// Shapes mirror the actor bodies in a resolv space covering the map
type CollisionSystem struct {
	space       *resolv.Space
	player      resolv.IShape
	projectiles [constants.ProjectilePoolSize]resolv.IShape

	enemies map[*components.EnemyComponent]resolv.IShape
	owners  map[resolv.IShape]*components.EnemyComponent
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

// Priority returns the system's priority
func (s *CollisionSystem) Priority() int {
	return constants.PriorityCollision
}

// Reset rebuilds the collision space for a new session
func (s *CollisionSystem) Reset(world *engine.World) {
	cell := constants.CollisionCellSize
	s.space = resolv.NewSpace(int(world.Bounds.Width), int(world.Bounds.Height), cell, cell)

	p := world.Player
	s.player = resolv.NewRectangle(p.X, p.Y, p.Width, p.Height)
	s.player.Tags().Set(tagPlayer)
	s.space.Add(s.player)

	for i := range s.projectiles {
		proj := world.Projectiles.Slot(i)
		sh := resolv.NewRectangle(proj.X, proj.Y, proj.Width, proj.Height)
		sh.Tags().Set(tagProjectile)
		s.space.Add(sh)
		s.projectiles[i] = sh
	}

	s.enemies = make(map[*components.EnemyComponent]resolv.IShape)
	s.owners = make(map[resolv.IShape]*components.EnemyComponent)
}

// ShapeCount returns the number of tracked enemy shapes
func (s *CollisionSystem) ShapeCount() int {
	return len(s.enemies)
}

// Update syncs shapes to bodies, then applies contacts
// Player contact requests a restart and ends collision handling for the frame
func (s *CollisionSystem) Update(world *engine.World, dt time.Duration) {
	if s.space == nil {
		s.Reset(world)
	}
	s.sync(world)

	if s.playerHit(world) {
		world.Emit(events.EventSessionRestart, &events.SessionPayload{
			SessionID: world.SessionID,
			Session:   world.Session,
			Score:     world.Score,
			BestScore: world.BestScore,
		})
		world.RequestRestart()
		return
	}

	for i, sh := range s.projectiles {
		proj := world.Projectiles.Slot(i)
		if !proj.Active {
			continue
		}

		victim := s.firstEnemy(sh, &proj.BodyComponent)
		if victim == nil {
			continue
		}

		world.DeactivateProjectile(i)
		world.RemoveEnemy(victim)
		s.forget(victim)
		world.AddScore(constants.ScorePerKill)

		world.Emit(events.EventEnemyKilled, &events.KillPayload{
			Slot:  i,
			X:     victim.X,
			Y:     victim.Y,
			Score: world.Score,
		})
	}
}

// sync moves shapes to body positions and picks up newly spawned enemies
func (s *CollisionSystem) sync(world *engine.World) {
	s.player.SetPosition(world.Player.X, world.Player.Y)

	for i, sh := range s.projectiles {
		proj := world.Projectiles.Slot(i)
		if proj.Active {
			sh.SetPosition(proj.X, proj.Y)
		}
	}

	for _, e := range world.Enemies {
		sh, ok := s.enemies[e]
		if !ok {
			sh = resolv.NewRectangle(e.X, e.Y, e.Width, e.Height)
			sh.Tags().Set(tagEnemy)
			s.space.Add(sh)
			s.enemies[e] = sh
			s.owners[sh] = e
			continue
		}
		sh.SetPosition(e.X, e.Y)
	}

	// Enemies removed outside this system
	if len(s.enemies) > len(world.Enemies) {
		alive := make(map[*components.EnemyComponent]struct{}, len(world.Enemies))
		for _, e := range world.Enemies {
			alive[e] = struct{}{}
		}
		for e := range s.enemies {
			if _, ok := alive[e]; !ok {
				s.forget(e)
			}
		}
	}
}

// playerHit reports whether any enemy overlaps the player
func (s *CollisionSystem) playerHit(world *engine.World) bool {
	return s.firstEnemy(s.player, &world.Player.BodyComponent) != nil
}

// firstEnemy returns one enemy whose body overlaps body, nil if none
// The space narrows the search to shapes sharing a cell with sh; overlap is decided
// on the bodies so a shape resting wholly inside another still counts
func (s *CollisionSystem) firstEnemy(sh resolv.IShape, body *components.BodyComponent) *components.EnemyComponent {
	var victim *components.EnemyComponent
	sh.SelectTouchingCells(0).FilterShapes().ByTags(tagEnemy).ForEach(func(other resolv.IShape) bool {
		if victim != nil {
			return false
		}
		if e := s.owners[other]; e != nil && body.Overlaps(&e.BodyComponent) {
			victim = e
			return false
		}
		return true
	})
	return victim
}

func (s *CollisionSystem) forget(e *components.EnemyComponent) {
	sh, ok := s.enemies[e]
	if !ok {
		return
	}
	s.space.Remove(sh)
	delete(s.enemies, e)
	delete(s.owners, sh)
}
