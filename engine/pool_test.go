package engine

import (
	"testing"

	"github.com/lixenwraith/overworld/components"
	"github.com/lixenwraith/overworld/constants"
)

func TestProjectilePoolAcquireUntilFull(t *testing.T) {
	p := NewProjectilePool()

	for want := 0; want < constants.ProjectilePoolSize; want++ {
		i, proj, ok := p.Acquire()
		if !ok || i != want || proj == nil {
			t.Fatalf("Acquire %d: got slot %d ok=%v", want, i, ok)
		}
		if !proj.Active {
			t.Errorf("Slot %d should be active after Acquire", i)
		}
	}

	if i, proj, ok := p.Acquire(); ok || i != -1 || proj != nil {
		t.Errorf("Expected full pool to refuse, got slot %d ok=%v", i, ok)
	}
	if p.ActiveCount() != constants.ProjectilePoolSize {
		t.Errorf("Expected %d active, got %d", constants.ProjectilePoolSize, p.ActiveCount())
	}
}

func TestProjectilePoolReleaseReusesFirstFree(t *testing.T) {
	p := NewProjectilePool()
	p.Acquire()
	p.Acquire()
	p.Acquire()

	p.SetExpiry(1, 42)
	if id := p.Release(1); id != 42 {
		t.Errorf("Expected Release to return expiry 42, got %d", id)
	}
	if p.Expiry(1) != 0 {
		t.Errorf("Expected expiry cleared, got %d", p.Expiry(1))
	}

	i, _, ok := p.Acquire()
	if !ok || i != 1 {
		t.Errorf("Expected to reacquire slot 1, got %d ok=%v", i, ok)
	}
}

func TestProjectilePoolScaledBody(t *testing.T) {
	p := NewProjectilePool()
	proj := p.Slot(0)

	wantW := constants.ProjectileWidth * constants.ProjectileScale
	if proj.Width != wantW || proj.Scale != constants.ProjectileScale {
		t.Errorf("Expected scaled width %v, got %v (scale %v)", wantW, proj.Width, proj.Scale)
	}
}

func TestProjectilePoolEach(t *testing.T) {
	p := NewProjectilePool()
	p.Acquire()
	p.Acquire()
	p.Release(0)

	var seen []int
	p.Each(func(i int, _ *components.ProjectileComponent) { seen = append(seen, i) })
	if len(seen) != 1 || seen[0] != 1 {
		t.Errorf("Expected only slot 1 visited, got %v", seen)
	}
}
