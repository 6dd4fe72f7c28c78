// @focus: #engine { pool }
package engine

import (
	"github.com/lixenwraith/overworld/components"
	"github.com/lixenwraith/overworld/constants"
)

// ProjectilePool is a fixed-capacity slot array of projectiles
// Acquisition scans for the first inactive slot; a full pool yields nothing
type ProjectilePool struct {
	slots  [constants.ProjectilePoolSize]components.ProjectileComponent
	expiry [constants.ProjectilePoolSize]TimerID
}

// NewProjectilePool creates a pool of inactive projectiles
func NewProjectilePool() *ProjectilePool {
	p := &ProjectilePool{}
	p.Reset()
	return p
}

// Reset deactivates every slot and forgets expiry timers
func (p *ProjectilePool) Reset() {
	for i := range p.slots {
		p.slots[i] = components.ProjectileComponent{
			BodyComponent: components.BodyComponent{
				Width:  constants.ProjectileWidth * constants.ProjectileScale,
				Height: constants.ProjectileHeight * constants.ProjectileScale,
			},
			Scale: constants.ProjectileScale,
		}
		p.expiry[i] = 0
	}
}

// Cap returns the pool capacity
func (p *ProjectilePool) Cap() int {
	return len(p.slots)
}

// Slot returns the projectile in slot i
func (p *ProjectilePool) Slot(i int) *components.ProjectileComponent {
	return &p.slots[i]
}

// Acquire claims the first inactive slot and marks it active
func (p *ProjectilePool) Acquire() (int, *components.ProjectileComponent, bool) {
	for i := range p.slots {
		if !p.slots[i].Active {
			p.slots[i].Active = true
			return i, &p.slots[i], true
		}
	}
	return -1, nil, false
}

// Release deactivates slot i and returns its pending expiry timer, zero if none
func (p *ProjectilePool) Release(i int) TimerID {
	p.slots[i].Deactivate()
	id := p.expiry[i]
	p.expiry[i] = 0
	return id
}

// SetExpiry records the lifetime timer for slot i
func (p *ProjectilePool) SetExpiry(i int, id TimerID) {
	p.expiry[i] = id
}

// Expiry returns the lifetime timer for slot i
func (p *ProjectilePool) Expiry(i int) TimerID {
	return p.expiry[i]
}

// ActiveCount returns the number of projectiles in flight
func (p *ProjectilePool) ActiveCount() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].Active {
			n++
		}
	}
	return n
}

// Each calls fn for every active projectile
func (p *ProjectilePool) Each(fn func(i int, proj *components.ProjectileComponent)) {
	for i := range p.slots {
		if p.slots[i].Active {
			fn(i, &p.slots[i])
		}
	}
}
