package world

import (
	"math"

	"github.com/lixenwraith/tds/vmath"
)

// CellSize is the side length of one grid cell in world units
const CellSize = 32.0

// Grid is a row-major 2D array of materials
// Read-only during simulation; only the editor mutates it between ticks
type Grid struct {
	width, height int
	cells         []Material
}

// NewGrid creates a grid filled with Grass, dimensions are clamped to at least 1
func NewGrid(width, height int) *Grid {
	width = max(width, 1)
	height = max(height, 1)
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Material, width*height),
	}
}

// Width returns the number of columns
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) addresses a stored cell
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// Get returns the material at (x, y), Boundary when out of range
func (g *Grid) Get(x, y int) Material {
	if !g.InBounds(x, y) {
		return Boundary
	}
	return g.cells[y*g.width+x]
}

// IsSolid reports whether the cell at (x, y) blocks
func (g *Grid) IsSolid(x, y int) bool {
	return g.Get(x, y).Solid()
}

// Insert places a material at (x, y); out of range writes are ignored
// Returns true if the cell changed
func (g *Grid) Insert(x, y int, m Material) bool {
	if !g.InBounds(x, y) {
		return false
	}
	i := y*g.width + x
	if g.cells[i] == m {
		return false
	}
	g.cells[i] = m
	return true
}

// Fill sets every cell in the rectangle [x0, x1] x [y0, y1] clipped to the grid
func (g *Grid) Fill(x0, y0, x1, y1 int, m Material) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := max(y0, 0); y <= min(y1, g.height-1); y++ {
		for x := max(x0, 0); x <= min(x1, g.width-1); x++ {
			g.cells[y*g.width+x] = m
		}
	}
}

// Widen appends a column of Grass on the right edge
func (g *Grid) Widen() {
	cells := make([]Material, (g.width+1)*g.height)
	for y := 0; y < g.height; y++ {
		copy(cells[y*(g.width+1):], g.cells[y*g.width:(y+1)*g.width])
	}
	g.width++
	g.cells = cells
}

// Thin removes the right-most column, never below one column
func (g *Grid) Thin() {
	if g.width <= 1 {
		return
	}
	cells := make([]Material, (g.width-1)*g.height)
	for y := 0; y < g.height; y++ {
		copy(cells[y*(g.width-1):(y+1)*(g.width-1)], g.cells[y*g.width:])
	}
	g.width--
	g.cells = cells
}

// Heighten appends a row of Grass on the bottom edge
func (g *Grid) Heighten() {
	g.cells = append(g.cells, make([]Material, g.width)...)
	g.height++
}

// Shorten removes the bottom row, never below one row
func (g *Grid) Shorten() {
	if g.height <= 1 {
		return
	}
	g.height--
	g.cells = g.cells[:g.width*g.height]
}

// Snap maps a world position to the indices of its containing cell
// Floored division keeps negative positions out of range instead of folding onto row/column 0
func Snap(pos vmath.Vec2) (x, y int) {
	return int(math.Floor(pos[0] / CellSize)), int(math.Floor(pos[1] / CellSize))
}

// CellOrigin returns the world position of the top-left corner of a cell
func CellOrigin(x, y int) vmath.Vec2 {
	return vmath.Vec(float64(x)*CellSize, float64(y)*CellSize)
}

// CellCenter returns the world position of the centre of a cell
func CellCenter(x, y int) vmath.Vec2 {
	return vmath.Vec((float64(x)+0.5)*CellSize, (float64(y)+0.5)*CellSize)
}

// SolidAt reports whether the cell containing pos blocks
func (g *Grid) SolidAt(pos vmath.Vec2) bool {
	x, y := Snap(pos)
	return g.IsSolid(x, y)
}

// Bounds returns the world-space size of the grid
func (g *Grid) Bounds() vmath.Vec2 {
	return vmath.Vec(float64(g.width)*CellSize, float64(g.height)*CellSize)
}
