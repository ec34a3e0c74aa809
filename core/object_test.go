package core

import (
	"math"
	"testing"

	"github.com/lixenwraith/tds/vmath"
	"github.com/lixenwraith/tds/world"
)

func floorGrid(w, h int) *world.Grid {
	g := world.NewGrid(w, h)
	g.Fill(0, 0, w-1, h-1, world.Floor)
	return g
}

func TestMoveOnGridFreeMovement(t *testing.T) {
	g := floorGrid(8, 8)
	o := NewObject(world.CellCenter(2, 2))
	o.MoveOnGrid(vmath.Vec(3, 4), 50, 0.5, g)

	want := world.CellCenter(2, 2).Add(vmath.Vec(15, 20))
	if !o.Pos.ApproxEqualThreshold(want, 1e-9) {
		t.Errorf("Pos = %v, want %v", o.Pos, want)
	}
}

func TestMoveOnGridProbeDropsBlockedAxis(t *testing.T) {
	g := floorGrid(8, 8)
	g.Insert(3, 2, world.Wall)

	tests := []struct {
		name string
		dir  vmath.Vec2
		want vmath.Vec2
	}{
		{"straight into wall", vmath.Vec(1, 0), world.CellCenter(2, 2)},
		{"diagonal keeps free axis", vmath.Vec(1, 1), world.CellCenter(2, 2).Add(vmath.Vec(0, 10))},
		{"away from wall", vmath.Vec(-1, 0), world.CellCenter(2, 2).Add(vmath.Vec(-10, 0))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewObject(world.CellCenter(2, 2))
			o.MoveOnGrid(tt.dir, 10, 1, g)
			if !o.Pos.ApproxEqualThreshold(tt.want, 1e-9) {
				t.Errorf("Pos = %v, want %v", o.Pos, tt.want)
			}
		})
	}
}

func TestMoveOnGridNoTunneling(t *testing.T) {
	g := floorGrid(8, 4)
	g.Fill(4, 0, 4, 3, world.Wall)
	o := NewObject(world.CellCenter(1, 1))

	// One step long enough to cross the wall column entirely
	o.MoveOnGrid(vmath.Vec(1, 0), 400, 1, g)
	if o.Pos[0] >= 128 || o.Pos[0] < 127.9 {
		t.Errorf("x = %f, want stopped against wall face at 128", o.Pos[0])
	}
	if o.IsOnSolid(g) {
		t.Error("object ended inside a wall")
	}
}

func TestMoveOnGridZeroDirection(t *testing.T) {
	g := floorGrid(4, 4)
	start := world.CellCenter(1, 1)
	o := NewObject(start)
	o.MoveOnGrid(vmath.Vec2{}, 100, 1, g)
	if o.Pos != start {
		t.Errorf("Pos = %v, want unchanged", o.Pos)
	}
}

func TestHeadingAndDrawable(t *testing.T) {
	o := Object{Pos: vmath.Vec(10, 20), Rot: math.Pi / 2}
	if h := o.Heading(); math.Abs(h[0]) > 1e-12 || math.Abs(h[1]-1) > 1e-12 {
		t.Errorf("Heading = %v, want (0, 1)", h)
	}
	d := o.Drawable(SpritePlayer)
	if d.Sprite != SpritePlayer || d.Pos != o.Pos || d.Rot != o.Rot || d.Mesh != nil {
		t.Errorf("Drawable = %+v", d)
	}
	if d.Scale != 1 || d.Tint != White {
		t.Errorf("Drawable scale/tint = %v/%v, want identity", d.Scale, d.Tint)
	}
}
