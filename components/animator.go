// @focus: #render { animation }
package components

import (
	"time"

	"github.com/lixenwraith/overworld/asset"
)

// AnimatorComponent plays an animation from the animation table
type AnimatorComponent struct {
	Current    *asset.Animation
	FrameIndex int // Index into Current.Frames
	Playing    bool
	elapsed    time.Duration
}

// Play starts anim, a no-op when the same animation is already playing
func (a *AnimatorComponent) Play(anim *asset.Animation) {
	if anim == nil {
		return
	}
	if a.Playing && a.Current != nil && a.Current.Key == anim.Key {
		return
	}
	a.Current = anim
	a.FrameIndex = 0
	a.elapsed = 0
	a.Playing = true
}

// Key returns the playing animation key, empty when stopped
func (a *AnimatorComponent) Key() string {
	if a.Current == nil || !a.Playing {
		return ""
	}
	return a.Current.Key
}

// Advance moves playback forward by dt
func (a *AnimatorComponent) Advance(dt time.Duration) {
	if !a.Playing || a.Current == nil || len(a.Current.Frames) == 0 {
		return
	}
	step := a.Current.FrameDuration()
	if step <= 0 {
		return
	}

	a.elapsed += dt
	for a.elapsed >= step {
		a.elapsed -= step
		next := a.FrameIndex + 1
		if next >= len(a.Current.Frames) {
			if !a.Current.Repeat {
				a.Playing = false
				return
			}
			next = 0
		}
		a.FrameIndex = next
	}
}

// SheetFrame returns the spritesheet frame currently shown
func (a *AnimatorComponent) SheetFrame() int {
	if a.Current == nil || len(a.Current.Frames) == 0 {
		return 0
	}
	return a.Current.Frames[a.FrameIndex]
}
