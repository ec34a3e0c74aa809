package core

import (
	"github.com/lixenwraith/tds/vmath"
	"github.com/lixenwraith/tds/world"
)

// probeDistance is how far ahead of the centre MoveOnGrid looks on each axis
const probeDistance = 16.0

// Object is the pose shared by every movable entity
type Object struct {
	// Pos is the centre in world units
	Pos vmath.Vec2
	// Rot is the heading in radians, 0 along +X
	Rot float64
}

// NewObject creates an object at pos facing +X
func NewObject(pos vmath.Vec2) Object {
	return Object{Pos: pos}
}

// Heading returns the unit vector the object faces
func (o *Object) Heading() vmath.Vec2 {
	return vmath.AngleToVec(o.Rot)
}

// IsOnSolid reports whether the object's centre is inside a solid cell
func (o *Object) IsOnSolid(g *world.Grid) bool {
	return g.SolidAt(o.Pos)
}

// MoveOnGrid walks the object along dir at speed for dt seconds
// Each axis whose probe point lands in a solid cell is dropped, the remaining
// direction is normalised and the step goes through a sliding cast
func (o *Object) MoveOnGrid(dir vmath.Vec2, speed, dt float64, g *world.Grid) {
	if dir[0] != 0 && g.SolidAt(o.Pos.Add(vmath.Vec(probeDistance*sign(dir[0]), 0))) {
		dir[0] = 0
	}
	if dir[1] != 0 && g.SolidAt(o.Pos.Add(vmath.Vec(0, probeDistance*sign(dir[1])))) {
		dir[1] = 0
	}
	if vmath.Zero(dir) {
		return
	}
	step := vmath.Normalize(dir).Mul(speed * dt)
	o.Pos = g.RayCast(o.Pos, step, false).Point
}

// Drawable describes the object as a sprite at its pose
func (o *Object) Drawable(sprite string) Drawable {
	return Drawable{
		Sprite: sprite,
		Pos:    o.Pos,
		Rot:    o.Rot,
		Scale:  1,
		Tint:   White,
	}
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
