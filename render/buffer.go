package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tds/core"
)

// Cell is one composited terminal cell
type Cell struct {
	Rune rune
	Fg   core.RGB
	Bg   core.RGB
}

var emptyCell = Cell{Rune: ' ', Fg: core.RGBWhite, Bg: RgbBackground}

// RenderBuffer is a frame compositor flushed to a tcell screen in one pass
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Size returns the buffer dimensions
func (b *RenderBuffer) Size() (int, int) {
	return b.width, b.height
}

// Clear resets all cells to empty using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = emptyCell
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set replaces a cell; out of range writes are ignored
func (b *RenderBuffer) Set(x, y int, c Cell) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = c
}

// Get returns a cell, emptyCell when out of range
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return emptyCell
	}
	return b.cells[y*b.width+x]
}

// SetRune writes a glyph over the existing background
func (b *RenderBuffer) SetRune(x, y int, r rune, fg core.RGB) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Rune = r
	c.Fg = fg
}

// BlendBg composites src over the background of a cell by alpha
func (b *RenderBuffer) BlendBg(x, y int, src core.RGB, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Bg = c.Bg.Blend(src, alpha)
}

// Text writes a string left to right starting at (x, y), clipped to the row
func (b *RenderBuffer) Text(x, y int, s string, fg, bg core.RGB) {
	for _, r := range s {
		b.Set(x, y, Cell{Rune: r, Fg: fg, Bg: bg})
		x++
	}
}

// Flush copies the buffer to the screen; the caller shows it
func (b *RenderBuffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			screen.SetContent(x, y, r, nil, cellStyle(c))
		}
	}
}

func toTcell(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func cellStyle(c Cell) tcell.Style {
	return tcell.StyleDefault.Foreground(toTcell(c.Fg)).Background(toTcell(c.Bg))
}
