package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/overworld/asset"
	"github.com/lixenwraith/overworld/components"
	"github.com/lixenwraith/overworld/constants"
	"github.com/lixenwraith/overworld/engine"
	"github.com/lixenwraith/overworld/input"
	"github.com/lixenwraith/overworld/render"
)

// groundTile is the checker edge of the window background in world units
const groundTile = 64

// window adapts the frame driver to ebiten's Update/Draw/Layout loop
type window struct {
	game  *engine.Game
	clock *engine.FrameClock
	view  render.Viewport

	ground, groundAlt color.RGBA
}

func newWindow(g *engine.Game, clock *engine.FrameClock) *window {
	w := &window{
		game:  g,
		clock: clock,
		view:  render.Viewport{Width: constants.WindowWidth, Height: constants.WindowHeight},
	}
	w.ground = toRGBA(render.RgbBackground)
	if ts, ok := g.World.Assets.Tileset(asset.NameBackground); ok {
		w.ground = toRGBA(ts.Background)
	}
	w.groundAlt = shade(w.ground, 0.85)
	return w
}

func (w *window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if !w.game.TogglePause() {
			w.clock.Sync()
		}
	}

	dt := w.clock.Delta()
	if w.game.IsPaused() {
		return nil
	}
	w.game.Tick(w.snapshot(), dt)
	return nil
}

// snapshot polls keyboard and mouse; ebiten reports key releases so no hold emulation is needed
func (w *window) snapshot() input.State {
	cx, cy := ebiten.CursorPosition()
	px, py := w.view.ToWorld(cx, cy)
	return input.State{
		Up:       ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:     ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:     ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:    ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Fire:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || ebiten.IsKeyPressed(ebiten.KeySpace),
		PointerX: px,
		PointerY: py,
	}
}

func (w *window) Draw(screen *ebiten.Image) {
	world := w.game.World
	w.view.Follow(world.Player.X, world.Player.Y, world.Bounds)

	w.drawGround(screen, world)

	world.Projectiles.Each(func(_ int, p *components.ProjectileComponent) {
		if p.Visible {
			w.drawBody(screen, &p.BodyComponent, asset.NameShell)
		}
	})
	for _, e := range world.Enemies {
		w.drawBody(screen, &e.BodyComponent, asset.NameEnemy)
	}
	w.drawBody(screen, &world.Player.BodyComponent, asset.NamePlayer)

	ebitenutil.DebugPrintAt(screen, world.HUD.Text, constants.HUDPixelX, constants.HUDPixelY)
	status := fmt.Sprintf("enemies %d  shots %d/%d  best %d  session %d",
		len(world.Enemies), world.Projectiles.ActiveCount(), world.Projectiles.Cap(),
		world.BestScore, world.Session)
	if w.game.IsPaused() {
		status += "  PAUSED"
	}
	ebitenutil.DebugPrintAt(screen, status, constants.HUDPixelX, constants.WindowHeight-constants.HUDPixelY-8)
}

// drawGround tiles a checker offset by the background scroll, limited to the map
func (w *window) drawGround(screen *ebiten.Image, world *engine.World) {
	screen.Fill(toRGBA(render.RgbBackground))

	x0, y0 := w.view.ToScreen(0, 0)
	x1, y1 := w.view.ToScreen(world.Bounds.Width, world.Bounds.Height)
	vector.DrawFilledRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), w.ground, false)

	startX := math.Floor((w.view.X+world.ScrollX)/groundTile) * groundTile
	startY := math.Floor((w.view.Y+world.ScrollY)/groundTile) * groundTile
	for ty := startY; ty < w.view.Y+world.ScrollY+w.view.Height; ty += groundTile {
		for tx := startX; tx < w.view.X+world.ScrollX+w.view.Width; tx += groundTile {
			if int(math.Floor(tx/groundTile)+math.Floor(ty/groundTile))%2 == 0 {
				continue
			}
			sx, sy := w.view.ToScreen(tx-world.ScrollX, ty-world.ScrollY)
			left, top := math.Max(sx, x0), math.Max(sy, y0)
			right, bottom := math.Min(sx+groundTile, x1), math.Min(sy+groundTile, y1)
			if right <= left || bottom <= top {
				continue
			}
			vector.DrawFilledRect(screen, float32(left), float32(top), float32(right-left), float32(bottom-top), w.groundAlt, false)
		}
	}
}

// drawBody fills the body rectangle in the sprite's colour
func (w *window) drawBody(screen *ebiten.Image, b *components.BodyComponent, sprite string) {
	c := toRGBA(render.RgbSpriteMiss)
	if s, ok := w.game.World.Assets.Get(sprite); ok {
		c = toRGBA(s.Color)
	}
	sx, sy := w.view.ToScreen(b.X-b.HalfWidth(), b.Y-b.HalfHeight())
	vector.DrawFilledRect(screen, float32(sx), float32(sy), float32(b.Width), float32(b.Height), c, true)
}

func (w *window) Layout(_, _ int) (int, int) {
	return constants.WindowWidth, constants.WindowHeight
}

func toRGBA(c tcell.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}

func shade(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{R: uint8(float64(c.R) * f), G: uint8(float64(c.G) * f), B: uint8(float64(c.B) * f), A: c.A}
}
