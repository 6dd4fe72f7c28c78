// @focus: #engine { world }
package engine

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/overworld/asset"
	"github.com/lixenwraith/overworld/components"
	"github.com/lixenwraith/overworld/constants"
	"github.com/lixenwraith/overworld/events"
	"github.com/lixenwraith/overworld/input"
	"github.com/lixenwraith/overworld/physics"
)

// System is an interface that all systems must implement
type System interface {
	Update(world *World, dt time.Duration)
	Priority() int // Lower values run first
}

// Resetter is implemented by systems holding per-session state or timers
// Reset runs after the world itself is reinitialised
type Resetter interface {
	Reset(world *World)
}

// Options configures a new world
type Options struct {
	// Seed for the world random source, zero seeds from the clock
	Seed int64

	Assets     *asset.Registry
	Animations *asset.AnimationTable
}

// World is the per-session game state passed explicitly to every system
type World struct {
	Bounds physics.Bounds

	Player      *components.PlayerComponent
	Enemies     []*components.EnemyComponent
	Projectiles *ProjectilePool

	Score int
	HUD   components.HUDComponent

	// Background tile offset, cosmetic
	ScrollX, ScrollY float64

	// Input for the current frame, set by the frame driver
	Input input.State

	Scheduler *Scheduler
	Events    *events.EventQueue
	Rand      *rand.Rand

	Assets     *asset.Registry
	Animations *asset.AnimationTable

	// Session bookkeeping, SessionID changes on every restart
	SessionID string
	Session   int
	BestScore int
	Frame     int64
	Elapsed   time.Duration

	systems        []System
	restartPending bool
}

// NewWorld creates a world; call Reset (or Game.Start) before the first tick
func NewWorld(opts Options) *World {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	assets := opts.Assets
	if assets == nil {
		assets = asset.NewRegistry()
		asset.LoadDefaults(assets)
	}
	anims := opts.Animations
	if anims == nil {
		anims = asset.DefaultAnimations()
	}

	return &World{
		Bounds:      physics.Bounds{Width: constants.MapWidth, Height: constants.MapHeight},
		Projectiles: NewProjectilePool(),
		Scheduler:   NewScheduler(),
		Events:      events.NewEventQueue(),
		Rand:        rand.New(rand.NewSource(seed)),
		Assets:      assets,
		Animations:  anims,
		HUD: components.HUDComponent{
			Col: constants.HUDCol,
			Row: constants.HUDRow,
		},
	}
}

// AddSystem adds a system and keeps systems sorted by priority
// Systems with equal priority run in insertion order
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	for i := len(w.systems) - 1; i > 0; i-- {
		if w.systems[i-1].Priority() <= w.systems[i].Priority() {
			break
		}
		w.systems[i-1], w.systems[i] = w.systems[i], w.systems[i-1]
	}
}

// Systems returns the registered systems in run order
func (w *World) Systems() []System {
	return w.systems
}

// Update runs all systems once; stops early if a system requested a restart
func (w *World) Update(dt time.Duration) {
	for _, system := range w.systems {
		if w.restartPending {
			return
		}
		system.Update(w, dt)
	}
}

// Reset reinitialises actors, score, timers and scroll to a fresh session
// BestScore and the session counter carry over
func (w *World) Reset() {
	w.Scheduler.Clear()
	w.Events.Clear()

	w.Player = components.NewPlayer(
		constants.PlayerSpawnX, constants.PlayerSpawnY,
		constants.PlayerWidth, constants.PlayerHeight,
		w.Animations.MustLookup(asset.KindPlayer, asset.StateIdle),
	)
	w.Enemies = nil
	w.Projectiles.Reset()

	w.Score = 0
	w.HUD.SetScore(constants.ScoreFormat, 0)
	w.ScrollX, w.ScrollY = 0, 0
	w.Input = input.State{}
	w.Elapsed = 0
	w.restartPending = false

	w.Session++
	w.SessionID = uuid.NewString()

	for _, system := range w.systems {
		if r, ok := system.(Resetter); ok {
			r.Reset(w)
		}
	}

	w.Emit(events.EventSessionStart, &events.SessionPayload{
		SessionID: w.SessionID,
		Session:   w.Session,
		BestScore: w.BestScore,
	})
}

// RequestRestart marks the session for restart at the end of the tick
func (w *World) RequestRestart() {
	w.restartPending = true
}

// RestartPending reports whether a restart was requested this tick
func (w *World) RestartPending() bool {
	return w.restartPending
}

// AddScore adds points and refreshes the HUD text
func (w *World) AddScore(points int) {
	if points <= 0 {
		return
	}
	w.Score += points
	if w.Score > w.BestScore {
		w.BestScore = w.Score
	}
	w.HUD.SetScore(constants.ScoreFormat, w.Score)
}

// SpawnEnemy appends an enemy playing its walk animation
func (w *World) SpawnEnemy(x, y, speed float64) *components.EnemyComponent {
	e := components.NewEnemy(
		x, y,
		constants.EnemyWidth, constants.EnemyHeight,
		speed, constants.EnemyBounce,
		w.Animations.MustLookup(asset.KindEnemy, asset.StateWalk),
	)
	w.Enemies = append(w.Enemies, e)
	return e
}

// RemoveEnemy drops e from the enemy collection, preserving order
func (w *World) RemoveEnemy(e *components.EnemyComponent) bool {
	for i, other := range w.Enemies {
		if other == e {
			copy(w.Enemies[i:], w.Enemies[i+1:])
			w.Enemies[len(w.Enemies)-1] = nil
			w.Enemies = w.Enemies[:len(w.Enemies)-1]
			return true
		}
	}
	return false
}

// DeactivateProjectile returns slot i to the pool and cancels its lifetime timer
func (w *World) DeactivateProjectile(i int) {
	if id := w.Projectiles.Release(i); id != 0 {
		w.Scheduler.Cancel(id)
	}
}

// Between returns a uniformly random integer in [min, max]
func (w *World) Between(min, max int) int {
	if max <= min {
		return min
	}
	return min + w.Rand.Intn(max-min+1)
}

// Emit queues an event stamped with the current frame and session time
func (w *World) Emit(t events.EventType, payload any) {
	w.Events.Push(events.GameEvent{
		Type:    t,
		Payload: payload,
		Frame:   w.Frame,
		At:      w.Elapsed,
	})
}
