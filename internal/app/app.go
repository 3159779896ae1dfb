//go:build ebiten

package app

import (
	"image/color"
	"time"

	"lifeview/internal/core"
	"lifeview/internal/render"
	"lifeview/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type patterned interface {
	Stripes()
}

type paletteProvider interface {
	Palette() []color.RGBA
}

// Game adapts the scheduler-driven automaton to the ebiten.Game interface.
// Update delivers one timestamp per rendered frame to the scheduler; Draw
// blits whatever snapshot the render gate last painted.
type Game struct {
	auto    core.Automaton
	sched   *core.Scheduler
	painter *render.GridPainter
	hud     *ui.HUD

	scale    int
	hudWidth int
	seed     int64
}

// New constructs a Game for the provided automaton.
func New(auto core.Automaton, cfg *Config) *Game {
	size := auto.Size()
	g := &Game{
		auto:     auto,
		scale:    cfg.Scale,
		hudWidth: cfg.HUDWidth,
		seed:     cfg.Seed,
	}
	g.painter = render.NewGridPainter(size.W, size.H, color.White, color.Black)
	if p, ok := auto.(paletteProvider); ok {
		g.painter.SetPalette(p.Palette())
	}
	g.sched = core.NewScheduler(auto, g.repaint)
	g.sched.SetPaused(cfg.Paused)
	g.hud = ui.NewHUD(g.sched, auto.Name(), cfg.HUDWidth, cfg.Speed)
	g.repaint()
	return g
}

func (g *Game) repaint() {
	g.painter.Repaint(g.auto.Cells())
}

// Update handles input and forwards the frame timestamp to the scheduler.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sched.Stop()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sched.SetPaused(!g.sched.Paused())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && g.sched.Paused() {
		g.auto.Step()
		g.sched.RequestImmediateRedraw()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.auto.Reset(g.seed)
		g.sched.RequestImmediateRedraw()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.seed = time.Now().UnixNano()
		g.auto.Reset(g.seed)
		g.sched.RequestImmediateRedraw()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.auto.Clear()
		g.sched.RequestImmediateRedraw()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if p, ok := g.auto.(patterned); ok {
			p.Stripes()
			g.sched.RequestImmediateRedraw()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.hud.Adjust(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) || inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.hud.Adjust(-1)
	}
	g.handleCellToggle()

	size := g.auto.Size()
	g.hud.Update(size.W * g.scale)

	g.sched.OnFrame(time.Now())
	return nil
}

func (g *Game) handleCellToggle() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	size := g.auto.Size()
	if mx < 0 || my < 0 || mx >= size.W*g.scale || my >= size.H*g.scale {
		return
	}
	g.auto.Toggle(mx/g.scale, my/g.scale)
	g.sched.RequestImmediateRedraw()
}

// Draw renders the last painted snapshot and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.scale)
	size := g.auto.Size()
	g.hud.Draw(screen, size.W*g.scale, size.H*g.scale)
}

// Layout returns the logical screen size: grid plus HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.auto.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
