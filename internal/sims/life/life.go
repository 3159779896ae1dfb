package life

import (
	"lifeview/internal/core"
)

// Life implements Conway's Game of Life with toroidal wrapping.
type Life struct {
	cur *core.ByteGrid
	nxt *core.ByteGrid
}

// New returns a Life automaton with the provided dimensions.
func New(w, h int) *Life {
	return &Life{cur: core.NewByteGrid(w, h), nxt: core.NewByteGrid(w, h)}
}

// Name returns the automaton identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cur.W, H: l.cur.H} }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	rng := core.NewRNG(seed).Source()
	core.FillBinary(rng, l.cur.Cells())
}

// Clear kills every cell.
func (l *Life) Clear() {
	l.cur.Clear()
	l.nxt.Clear()
}

// Toggle flips the cell at (x, y) between dead and alive.
func (l *Life) Toggle(x, y int) {
	x, y = l.cur.Wrap(x, y)
	idx := l.cur.Index(x, y)
	l.cur.Cells()[idx] ^= 1
}

// Stripes fills the board with the classic interference pattern: a cell is
// alive when its index is divisible by 2 or by 7.
func (l *Life) Stripes() {
	cells := l.cur.Cells()
	for i := range cells {
		if i%2 == 0 || i%7 == 0 {
			cells[i] = 1
		} else {
			cells[i] = 0
		}
	}
}

// Step advances the automaton by one generation.
func (l *Life) Step() {
	w, h := l.cur.W, l.cur.H
	cur, nxt := l.cur.Cells(), l.nxt.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := l.cur.Wrap(x+dx, y+dy)
					neighbors += int(cur[ny*w+nx])
				}
			}
			idx := y*w + x
			alive := cur[idx] == 1
			nxt[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				nxt[idx] = 1
			}
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Automaton {
		c := FromMap(cfg)
		return New(c.Width, c.Height)
	})
}
