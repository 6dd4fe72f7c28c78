// @focus: #actor { player enemy projectile }
package components

import "github.com/lixenwraith/overworld/asset"

// PlayerComponent is the player-controlled actor
// Created once per session, never destroyed while the session runs
type PlayerComponent struct {
	BodyComponent
	AnimatorComponent

	// FlipX mirrors the sprite, true while facing left
	FlipX bool
	// Moving is true when any direction input moved the player this frame
	Moving bool
}

// NewPlayer creates a player at (x, y) playing its idle animation
func NewPlayer(x, y, w, h float64, idle *asset.Animation) *PlayerComponent {
	p := &PlayerComponent{
		BodyComponent: BodyComponent{
			X: x, Y: y,
			Width: w, Height: h,
			CollideWorldBounds: true,
		},
	}
	p.Play(idle)
	return p
}

// EnemyComponent is a chasing actor
type EnemyComponent struct {
	BodyComponent
	AnimatorComponent

	// Speed is assigned at spawn and fixed for the enemy's life
	Speed float64
}

// NewEnemy creates an enemy that bounces off world bounds
func NewEnemy(x, y, w, h, speed, bounce float64, walk *asset.Animation) *EnemyComponent {
	e := &EnemyComponent{
		BodyComponent: BodyComponent{
			X: x, Y: y,
			Width: w, Height: h,
			CollideWorldBounds: true,
			Bounce:             bounce,
		},
		Speed: speed,
	}
	e.Play(walk)
	return e
}

// ProjectileComponent is one slot of the projectile pool
type ProjectileComponent struct {
	BodyComponent

	Active  bool
	Visible bool
	Scale   float64
}

// Deactivate hides the projectile and stops it
func (p *ProjectileComponent) Deactivate() {
	p.Active = false
	p.Visible = false
	p.Stop()
}
