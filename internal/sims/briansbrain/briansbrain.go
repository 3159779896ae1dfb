package briansbrain

import (
	"image/color"

	"lifeview/internal/core"
)

const (
	stateDead  = 0
	stateOn    = 1
	stateDying = 2
)

// Brain implements Brian's Brain cellular automaton.
type Brain struct {
	cur *core.ByteGrid
	nxt *core.ByteGrid
}

// New creates a Brain automaton with the provided dimensions.
func New(w, h int) *Brain {
	return &Brain{cur: core.NewByteGrid(w, h), nxt: core.NewByteGrid(w, h)}
}

// Name identifies the automaton.
func (b *Brain) Name() string { return "briansbrain" }

// Size returns the grid dimensions.
func (b *Brain) Size() core.Size { return core.Size{W: b.cur.W, H: b.cur.H} }

// Cells exposes the current state buffer.
func (b *Brain) Cells() []uint8 { return b.cur.Cells() }

// Reset randomizes cells into dead or firing states.
func (b *Brain) Reset(seed int64) {
	rng := core.NewRNG(seed).Source()
	cells := b.cur.Cells()
	for i := range cells {
		if rng.IntN(8) == 0 {
			cells[i] = stateOn
			continue
		}
		cells[i] = stateDead
	}
}

// Clear kills every cell.
func (b *Brain) Clear() {
	b.cur.Clear()
	b.nxt.Clear()
}

// Toggle flips the cell at (x, y) between dead and firing. A dying cell
// toggles back to dead.
func (b *Brain) Toggle(x, y int) {
	x, y = b.cur.Wrap(x, y)
	idx := b.cur.Index(x, y)
	cells := b.cur.Cells()
	if cells[idx] == stateDead {
		cells[idx] = stateOn
	} else {
		cells[idx] = stateDead
	}
}

// Palette returns the display colors for dead, firing and dying cells.
func (b *Brain) Palette() []color.RGBA {
	return []color.RGBA{
		{R: 0, G: 0, B: 0, A: 255},
		{R: 255, G: 255, B: 255, A: 255},
		{R: 70, G: 130, B: 220, A: 255},
	}
}

// Step advances the automaton by one tick.
func (b *Brain) Step() {
	w, h := b.cur.W, b.cur.H
	cur, nxt := b.cur.Cells(), b.nxt.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			switch cur[idx] {
			case stateOn:
				nxt[idx] = stateDying
			case stateDying:
				nxt[idx] = stateDead
			default:
				neighbors := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						nx, ny := b.cur.Wrap(x+dx, y+dy)
						if cur[ny*w+nx] == stateOn {
							neighbors++
						}
					}
				}
				if neighbors == 2 {
					nxt[idx] = stateOn
				} else {
					nxt[idx] = stateDead
				}
			}
		}
	}
	b.cur, b.nxt = b.nxt, b.cur
}

func init() {
	core.Register("briansbrain", func(cfg map[string]string) core.Automaton {
		return New(128, 128)
	})
}
