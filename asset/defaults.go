package asset

import "github.com/gdamore/tcell/v2"

// Built-in asset names
const (
	NameBackground = "background"
	NameBush       = "bush1"
	NamePlayer     = KindPlayer
	NameEnemy      = KindEnemy
	NameShell      = "shell"
)

// LoadDefaults registers every built-in asset
func LoadDefaults(r *Registry) {
	r.Load(&Sprite{
		Name: NamePlayer,
		// Frame 0 idle, 1-3 walk cycle; facing right
		Frames: []string{"@>", "@}", "@)", "@]"},
		Width:  16,
		Height: 16,
		Color:  tcell.NewRGBColor(230, 57, 45),
	})
	r.Load(&Sprite{
		Name:   NameEnemy,
		Frames: []string{"mn", "nm"},
		Width:  18,
		Height: 16,
		Color:  tcell.NewRGBColor(160, 82, 45),
	})
	r.Load(&Sprite{
		Name:   NameShell,
		Frames: []string{"*"},
		Width:  16,
		Height: 16,
		Color:  tcell.NewRGBColor(255, 165, 0),
	})
	r.Load(&Sprite{
		Name:   NameBush,
		Frames: []string{"&&"},
		Width:  16,
		Height: 16,
		Color:  tcell.NewRGBColor(34, 139, 34),
	})
	r.LoadTileset(&Tileset{
		Name: NameBackground,
		Rows: []string{
			"  .       ,       ",
			"       '      .   ",
			"   ,              ",
			"         .    '   ",
			" '    ,         . ",
			"             ,    ",
		},
		Color:      tcell.NewRGBColor(120, 170, 90),
		Background: tcell.NewRGBColor(40, 70, 40),
		Decorations: []Decoration{
			{Sprite: NameBush, Col: 12, Row: 2},
		},
	})
}

// DefaultAnimations builds the built-in animation table
func DefaultAnimations() *AnimationTable {
	t := NewAnimationTable()
	t.Add(&Animation{
		Key:       AnimationKey(KindPlayer, StateWalk),
		Sprite:    NamePlayer,
		Frames:    []int{3, 2, 1},
		FrameRate: 12,
		Repeat:    true,
	})
	t.Add(&Animation{
		Key:       AnimationKey(KindPlayer, StateIdle),
		Sprite:    NamePlayer,
		Frames:    []int{0},
		FrameRate: 1,
		Repeat:    true,
	})
	t.Add(&Animation{
		Key:       AnimationKey(KindEnemy, StateWalk),
		Sprite:    NameEnemy,
		Frames:    []int{0, 1},
		FrameRate: 6,
		Repeat:    true,
	})
	return t
}
