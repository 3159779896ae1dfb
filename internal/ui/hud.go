//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"lifeview/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the control panel to the right of the automaton view: pause
// state, the speed control, and rolling frame/step statistics.
type HUD struct {
	sched *core.Scheduler
	title string
	width int

	raw float64 // speed control position in [0, 100]

	panel        *ebiten.Image
	lastHeight   int
	pixel        *ebiten.Image
	panelOffsetX int

	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a HUD bound to the scheduler. initialRaw is the starting
// speed control position.
func NewHUD(sched *core.Scheduler, title string, width int, initialRaw float64) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sched: sched, title: title, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.layoutControls()
	h.setRaw(initialRaw)
	return h
}

// Raw returns the current speed control position.
func (h *HUD) Raw() float64 { return h.raw }

// Adjust moves the speed control by delta positions and retargets the
// scheduler through the rate curve.
func (h *HUD) Adjust(delta float64) {
	h.setRaw(h.raw + delta)
}

func (h *HUD) setRaw(raw float64) {
	if raw < core.RawMin {
		raw = core.RawMin
	}
	if raw > core.RawMax {
		raw = core.RawMax
	}
	h.raw = raw
	h.sched.SetRate(core.MapRate(raw))
}

// Update handles HUD interactions.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.handleInput()
}

func (h *HUD) handleInput() {
	if h.width <= 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	if pointInRect(px, my, h.minusRect) {
		h.Adjust(-controlStep)
		return
	}
	if pointInRect(px, my, h.plusRect) {
		h.Adjust(controlStep)
	}
}

// Draw paints the HUD panel anchored to the right edge of the view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawContents()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawContents() {
	face := basicfont.Face7x13
	headerColor := color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor := color.RGBA{R: 160, G: 160, B: 170, A: 255}

	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, headerColor)

	state := "running"
	if h.sched.Paused() {
		state = "paused"
	}
	y += lineSpacing
	text.Draw(h.panel, "state  "+state, face, panelPadding, y, textColor)

	y += lineSpacing
	text.Draw(h.panel, fmt.Sprintf("speed  %3.0f/100", h.raw), face, panelPadding, y, textColor)
	h.drawButton(h.minusRect, "-", h.raw > core.RawMin)
	h.drawButton(h.plusRect, "+", h.raw < core.RawMax)

	y += lineSpacing
	text.Draw(h.panel, "target "+formatRate(h.sched.Rate())+" steps/s", face, panelPadding, y, textColor)

	y += sectionSpacing
	y = h.drawStats(face, y, "frames/s", h.sched.FrameStats(), textColor, dimColor)
	y += sectionSpacing
	h.drawStats(face, y, "steps/s", h.sched.StepStats(), textColor, dimColor)
}

func (h *HUD) drawStats(face font.Face, y int, label string, s core.Summary, textColor, dimColor color.RGBA) int {
	text.Draw(h.panel, label, face, panelPadding, y, dimColor)
	y += lineSpacing
	if s.Latest == 0 && s.Mean == 0 {
		text.Draw(h.panel, "  --", face, panelPadding, y, dimColor)
		return y
	}
	text.Draw(h.panel, "  now "+formatRate(s.Latest)+"  avg "+formatRate(s.Mean), face, panelPadding, y, textColor)
	y += lineSpacing
	text.Draw(h.panel, "  min "+formatRate(s.Min)+"  max "+formatRate(s.Max), face, panelPadding, y, textColor)
	return y
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(float64(bg.R)/255.0, float64(bg.G)/255.0, float64(bg.B)/255.0, float64(bg.A)/255.0)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if h.width <= 0 {
		return
	}
	rowTop := panelPadding + headerBaseline + 2*lineSpacing - buttonSize + 4
	h.plusRect = image.Rect(h.width-panelPadding-buttonSize, rowTop, h.width-panelPadding, rowTop+buttonSize)
	h.minusRect = image.Rect(h.plusRect.Min.X-buttonGap-buttonSize, rowTop, h.plusRect.Min.X-buttonGap, rowTop+buttonSize)
}

func formatRate(v float64) string {
	switch {
	case v >= 100:
		return strconv.FormatFloat(v, 'f', 0, 64)
	case v >= 10:
		return strconv.FormatFloat(v, 'f', 1, 64)
	default:
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding   = 12
	headerBaseline = 18
	lineSpacing    = 18
	sectionSpacing = 26
	buttonSize     = 16
	buttonGap      = 6
	controlStep    = 2.0
)
