// @focus: #asset { animation }
package asset

import "time"

// Actor kinds, matching the spritesheet names they animate
const (
	KindPlayer = "mario"
	KindEnemy  = "goomba"
)

// Animation states
const (
	StateWalk = "walk"
	StateIdle = "idle"
)

// Animation is a frame sequence over a spritesheet
type Animation struct {
	Key       string
	Sprite    string
	Frames    []int
	FrameRate int // Frames per second
	Repeat    bool
}

// FrameDuration returns how long each frame is shown
func (a *Animation) FrameDuration() time.Duration {
	if a.FrameRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(a.FrameRate)
}

// AnimationKey joins an actor kind and state into a table key
func AnimationKey(kind, state string) string {
	return kind + "-" + state
}

// AnimationTable maps kind+state keys to animations
type AnimationTable struct {
	anims map[string]*Animation
}

// NewAnimationTable creates an empty table
func NewAnimationTable() *AnimationTable {
	return &AnimationTable{anims: make(map[string]*Animation)}
}

// Add registers an animation under its key
func (t *AnimationTable) Add(a *Animation) {
	t.anims[a.Key] = a
}

// Get returns the animation stored under key
func (t *AnimationTable) Get(key string) (*Animation, bool) {
	a, ok := t.anims[key]
	return a, ok
}

// Lookup returns the animation for an actor kind in a given state
func (t *AnimationTable) Lookup(kind, state string) (*Animation, bool) {
	return t.Get(AnimationKey(kind, state))
}

// MustLookup is Lookup that panics on a missing entry
func (t *AnimationTable) MustLookup(kind, state string) *Animation {
	a, ok := t.Lookup(kind, state)
	if !ok {
		panic("asset: animation " + AnimationKey(kind, state) + " not defined")
	}
	return a
}
