// @focus: #asset { registry }
package asset

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Sprite is a named image resource. A spritesheet carries more than one frame.
// Each frame is a single row of glyphs, one glyph per terminal cell.
type Sprite struct {
	Name   string
	Frames []string
	Width  float64 // World units
	Height float64
	Color  tcell.Color
}

// FrameCount returns the number of frames in the sheet
func (s *Sprite) FrameCount() int {
	return len(s.Frames)
}

// Frame returns frame i, wrapping around the sheet
func (s *Sprite) Frame(i int) string {
	if len(s.Frames) == 0 {
		return ""
	}
	i %= len(s.Frames)
	if i < 0 {
		i += len(s.Frames)
	}
	return s.Frames[i]
}

// Decoration stamps a sprite into a tileset at a tile-local cell
type Decoration struct {
	Sprite string
	Col    int
	Row    int
}

// Tileset is a repeating background pattern, one string per row
type Tileset struct {
	Name        string
	Rows        []string
	Color       tcell.Color
	Background  tcell.Color
	Decorations []Decoration
}

// Size returns the tile dimensions in cells
func (t *Tileset) Size() (cols, rows int) {
	rows = len(t.Rows)
	for _, r := range t.Rows {
		if n := len([]rune(r)); n > cols {
			cols = n
		}
	}
	return cols, rows
}

// Registry maps symbolic names to loaded resources
// Loaded once before play, read-only afterwards
type Registry struct {
	mu       sync.RWMutex
	sprites  map[string]*Sprite
	tilesets map[string]*Tileset
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		sprites:  make(map[string]*Sprite),
		tilesets: make(map[string]*Tileset),
	}
}

// Load registers a sprite under its name, replacing any previous one
func (r *Registry) Load(s *Sprite) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sprites[s.Name] = s
}

// LoadTileset registers a tileset under its name
func (r *Registry) LoadTileset(t *Tileset) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tilesets[t.Name] = t
}

// Get returns the sprite registered under name
func (r *Registry) Get(name string) (*Sprite, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sprites[name]
	return s, ok
}

// MustGet returns the sprite registered under name and panics if absent
func (r *Registry) MustGet(name string) *Sprite {
	s, ok := r.Get(name)
	if !ok {
		panic(fmt.Sprintf("asset: sprite %q not loaded", name))
	}
	return s
}

// Tileset returns the tileset registered under name
func (r *Registry) Tileset(name string) (*Tileset, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tilesets[name]
	return t, ok
}

// Len returns the number of registered sprites and tilesets
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sprites) + len(r.tilesets)
}
