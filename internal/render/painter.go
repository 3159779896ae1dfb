//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter maintains a single RGBA image mirroring the automaton's cell
// snapshot. Repaint uploads a snapshot; Draw blits the image scaled, so a
// frame without a repaint is an idempotent redraw of the previous snapshot.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte

	onColor  color.Color
	offColor color.Color
	palette  []color.RGBA
}

// NewGridPainter allocates a painter for a grid of size w*h drawing binary
// cells with the given on/off colors.
func NewGridPainter(w, h int, on, off color.Color) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), onColor: on, offColor: off}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// SetPalette switches the painter to palette mode for multi-state automata.
func (gp *GridPainter) SetPalette(palette []color.RGBA) {
	gp.palette = palette
}

// Repaint uploads the provided cells into the painter image.
func (gp *GridPainter) Repaint(cells []uint8) {
	if len(cells) != gp.w*gp.h {
		return
	}
	if gp.palette != nil {
		fillPaletteRGBA(gp.buf, cells, gp.palette)
	} else {
		fillBinaryRGBA(gp.buf, cells, gp.onColor, gp.offColor)
	}
	gp.img.ReplacePixels(gp.buf)
}

// Draw blits the painter image onto dst at the given integer scale.
func (gp *GridPainter) Draw(dst *ebiten.Image, scale int) {
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
