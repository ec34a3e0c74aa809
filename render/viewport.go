package render

import (
	"math"

	"github.com/lixenwraith/tds/vmath"
	"github.com/lixenwraith/tds/world"
)

// Terminal cells are roughly twice as tall as wide, so one grid cell spans
// two columns and one row
const (
	ColumnWidth = world.CellSize / 2
	RowHeight   = world.CellSize
)

// Viewport maps world space onto a Cols x Rows window centred on Center
type Viewport struct {
	Cols, Rows int
	Center     vmath.Vec2
}

// Origin returns the world position of the top-left corner of the window
func (v Viewport) Origin() vmath.Vec2 {
	return v.Center.Sub(vmath.Vec(float64(v.Cols)*ColumnWidth/2, float64(v.Rows)*RowHeight/2))
}

// ToScreen returns the terminal cell containing a world position
// The result may lie outside the window
func (v Viewport) ToScreen(pos vmath.Vec2) (x, y int) {
	rel := pos.Sub(v.Origin())
	return int(math.Floor(rel[0] / ColumnWidth)), int(math.Floor(rel[1] / RowHeight))
}

// ToWorld returns the world position at the centre of a terminal cell
func (v Viewport) ToWorld(x, y int) vmath.Vec2 {
	return v.Origin().Add(vmath.Vec((float64(x)+0.5)*ColumnWidth, (float64(y)+0.5)*RowHeight))
}

// Contains reports whether a terminal cell lies inside the window
func (v Viewport) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < v.Cols && y < v.Rows
}
