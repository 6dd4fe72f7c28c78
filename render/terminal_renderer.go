package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/overworld/asset"
	"github.com/lixenwraith/overworld/components"
	"github.com/lixenwraith/overworld/constants"
	"github.com/lixenwraith/overworld/engine"
)

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen tcell.Screen
	assets *asset.Registry
	camera *Camera

	width  int
	height int

	// Background color of the map tiles, sprites draw over it
	groundBg tcell.Color
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen, assets *asset.Registry) *TerminalRenderer {
	r := &TerminalRenderer{
		screen:   screen,
		assets:   assets,
		camera:   NewCamera(0, 0),
		groundBg: RgbBackground,
	}
	r.Resize()
	return r
}

// Resize re-reads the screen size; the bottom rows are kept for the status bar
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
	r.camera.Resize(r.width, r.height-constants.StatusBarRows)
}

// Camera returns the renderer camera
func (r *TerminalRenderer) Camera() *Camera {
	return r.camera
}

// ScreenToWorld converts a screen cell to world coordinates through the camera
func (r *TerminalRenderer) ScreenToWorld(col, row int) (x, y float64) {
	return r.camera.ScreenToWorld(col, row)
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(world *engine.World, paused bool) {
	r.camera.Follow(world.Player.X, world.Player.Y, world.Bounds)

	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', defaultStyle)

	r.drawBackground(world)

	world.Projectiles.Each(func(_ int, p *components.ProjectileComponent) {
		if p.Visible {
			r.drawSprite(asset.NameShell, 0, p.X, p.Y, false)
		}
	})
	for _, e := range world.Enemies {
		r.drawSprite(asset.NameEnemy, e.SheetFrame(), e.X, e.Y, false)
	}
	p := world.Player
	r.drawSprite(asset.NamePlayer, p.SheetFrame(), p.X, p.Y, p.FlipX)

	r.drawHUD(world)
	r.drawStatusBar(world, paused)

	r.screen.Show()
}

// drawBackground tiles the background pattern across the viewport
// The pattern is sampled at camera position plus scroll offset, giving the parallax drift
func (r *TerminalRenderer) drawBackground(world *engine.World) {
	ts, ok := r.assets.Tileset(asset.NameBackground)
	if !ok {
		return
	}
	tileCols, tileRows := ts.Size()
	if tileCols == 0 || tileRows == 0 {
		return
	}

	r.groundBg = ts.Background
	style := tcell.StyleDefault.Foreground(ts.Color).Background(ts.Background)

	decor := make(map[[2]int]rune)
	decorStyle := make(map[[2]int]tcell.Style)
	for _, d := range ts.Decorations {
		s, ok := r.assets.Get(d.Sprite)
		if !ok {
			continue
		}
		for i, g := range []rune(s.Frame(0)) {
			key := [2]int{(d.Col + i) % tileCols, d.Row % tileRows}
			decor[key] = g
			decorStyle[key] = tcell.StyleDefault.Foreground(s.Color).Background(ts.Background)
		}
	}

	rows := make([][]rune, tileRows)
	for i, line := range ts.Rows {
		rows[i] = []rune(line)
	}

	originCol := int(math.Floor((r.camera.X + world.ScrollX) / constants.CellWidth))
	originRow := int(math.Floor((r.camera.Y + world.ScrollY) / constants.CellHeight))

	// Cells outside the map stay at the default background
	mapCols := int(math.Ceil((world.Bounds.Width - r.camera.X) / constants.CellWidth))
	mapRows := int(math.Ceil((world.Bounds.Height - r.camera.Y) / constants.CellHeight))
	firstCol := int(math.Max(0, math.Ceil(-r.camera.X/constants.CellWidth)))
	firstRow := int(math.Max(0, math.Ceil(-r.camera.Y/constants.CellHeight)))

	for row := firstRow; row < r.camera.Rows && row < mapRows; row++ {
		tr := wrap(originRow+row, tileRows)
		line := rows[tr]
		for col := firstCol; col < r.camera.Cols && col < mapCols; col++ {
			tc := wrap(originCol+col, tileCols)
			key := [2]int{tc, tr}
			if g, ok := decor[key]; ok {
				r.screen.SetContent(col, row, g, nil, decorStyle[key])
				continue
			}
			ch := ' '
			if tc < len(line) {
				ch = line[tc]
			}
			r.screen.SetContent(col, row, ch, nil, style)
		}
	}
}

// drawSprite draws one frame of a sprite centred on world point (x, y)
func (r *TerminalRenderer) drawSprite(name string, frame int, x, y float64, flip bool) {
	s, ok := r.assets.Get(name)
	if !ok {
		return
	}
	glyphs := []rune(s.Frame(frame))
	if flip {
		glyphs = mirror(glyphs)
	}

	fg := s.Color
	if fg == tcell.ColorDefault {
		fg = RgbSpriteMiss
	}
	style := tcell.StyleDefault.Foreground(fg).Background(r.groundBg).Bold(true)

	col, row := r.camera.WorldToScreen(x, y)
	start := col - len(glyphs)/2
	for i, g := range glyphs {
		if c := start + i; r.camera.InView(c, row) {
			r.screen.SetContent(c, row, g, nil, style)
		}
	}
}

// drawHUD draws the score text fixed to the screen
func (r *TerminalRenderer) drawHUD(world *engine.World) {
	style := tcell.StyleDefault.Foreground(RgbHUDText).Background(r.groundBg).Bold(true)
	r.drawText(world.HUD.Col, world.HUD.Row, world.HUD.Text, style)
}

// drawStatusBar draws run statistics on the bottom row
func (r *TerminalRenderer) drawStatusBar(world *engine.World, paused bool) {
	row := r.height - 1
	if row < 0 {
		return
	}

	barStyle := tcell.StyleDefault.Foreground(RgbStatusText).Background(RgbStatusBar)
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, row, ' ', nil, barStyle)
	}

	status := fmt.Sprintf(" enemies %d  shots %d/%d  best %d  session %d",
		len(world.Enemies),
		world.Projectiles.ActiveCount(), world.Projectiles.Cap(),
		world.BestScore,
		world.Session,
	)
	r.drawText(0, row, status, barStyle)

	if paused {
		label := " PAUSED "
		x := r.width - len(label)
		if x < 0 {
			x = 0
		}
		r.drawText(x, row, label, tcell.StyleDefault.Foreground(RgbPausedText).Background(RgbPausedBg).Bold(true))
	}
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		if x+i >= r.width {
			return
		}
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
