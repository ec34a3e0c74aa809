package vmath

import (
	"math"
)

// Axis identifies which cell boundary a traverser step crossed
type Axis uint8

const (
	AxisNone Axis = iota
	AxisX
	AxisY
)

// CellTraverser implements a zero-allocation iterator for DDA grid traversal
// in float world space. The ray is parameterised as origin + t*dir, t in [0, 1]
type CellTraverser struct {
	currX, currY int
	stepX, stepY int

	tMaxX, tMaxY     float64
	tDeltaX, tDeltaY float64

	t    float64
	axis Axis
}

// NewCellTraverser creates a traverser starting in the cell containing origin
// cellSize must be positive; a zero component of dir never crosses that axis
func NewCellTraverser(origin, dir Vec2, cellSize float64) CellTraverser {
	ox, oy := origin[0], origin[1]
	dx, dy := dir[0], dir[1]

	t := CellTraverser{
		currX: int(math.Floor(ox / cellSize)),
		currY: int(math.Floor(oy / cellSize)),
		stepX: 1,
		stepY: 1,
	}

	if dx < 0 {
		t.stepX = -1
	}
	if dy < 0 {
		t.stepY = -1
	}

	if dx == 0 {
		t.tMaxX = math.Inf(1)
		t.tDeltaX = math.Inf(1)
	} else {
		t.tDeltaX = cellSize / math.Abs(dx)
		if t.stepX > 0 {
			t.tMaxX = (float64(t.currX+1)*cellSize - ox) / dx
		} else {
			t.tMaxX = (float64(t.currX)*cellSize - ox) / dx
		}
	}

	if dy == 0 {
		t.tMaxY = math.Inf(1)
		t.tDeltaY = math.Inf(1)
	} else {
		t.tDeltaY = cellSize / math.Abs(dy)
		if t.stepY > 0 {
			t.tMaxY = (float64(t.currY+1)*cellSize - oy) / dy
		} else {
			t.tMaxY = (float64(t.currY)*cellSize - oy) / dy
		}
	}

	return t
}

// Next advances to the next cell along the ray and returns the parameter at
// which the ray enters it. Ties (exact corner crossings) step X first, so the
// cell sharing the corner is visited before the diagonal one
func (t *CellTraverser) Next() float64 {
	if t.tMaxX <= t.tMaxY {
		t.t = t.tMaxX
		t.currX += t.stepX
		t.tMaxX += t.tDeltaX
		t.axis = AxisX
	} else {
		t.t = t.tMaxY
		t.currY += t.stepY
		t.tMaxY += t.tDeltaY
		t.axis = AxisY
	}
	return t.t
}

// Pos returns the current cell coordinates
func (t *CellTraverser) Pos() (int, int) {
	return t.currX, t.currY
}

// T returns the entry parameter of the current cell, 0 for the starting cell
func (t *CellTraverser) T() float64 {
	return t.t
}

// FaceNormal returns the outward normal of the boundary crossed to enter the
// current cell, pointing back toward the ray origin. Zero for the starting cell
func (t *CellTraverser) FaceNormal() Vec2 {
	switch t.axis {
	case AxisX:
		return Vec2{float64(-t.stepX), 0}
	case AxisY:
		return Vec2{0, float64(-t.stepY)}
	}
	return Vec2{}
}

// Axis returns which boundary was crossed to enter the current cell
func (t *CellTraverser) Axis() Axis {
	return t.axis
}

// Traverse visits every cell intersected by the segment origin -> origin+dir
// Callback receives cell coordinates and entry parameter; returning false stops the walk
func Traverse(origin, dir Vec2, cellSize float64, callback func(x, y int, t float64) bool) {
	tr := NewCellTraverser(origin, dir, cellSize)
	x, y := tr.Pos()
	if !callback(x, y, 0) {
		return
	}
	if dir[0] == 0 && dir[1] == 0 {
		return
	}
	for {
		entry := tr.Next()
		if entry > 1 || math.IsInf(entry, 1) || math.IsNaN(entry) {
			return
		}
		x, y = tr.Pos()
		if !callback(x, y, entry) {
			return
		}
	}
}
