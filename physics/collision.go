package physics

import (
	"github.com/lixenwraith/tds/vmath"
	"github.com/lixenwraith/tds/world"
)

// Bounce is the outcome of a moving point striking a surface
type Bounce struct {
	// Contact is where the travel segment met the surface
	Contact vmath.Vec2
	// Normal is the reflection normal, not unit length
	Normal vmath.Vec2
	// Overshoot is the reflected remainder of the travel after Contact
	Overshoot vmath.Vec2
	// Vel is the reflected velocity
	Vel vmath.Vec2
}

// End returns the position after the reflected overshoot is applied
func (b Bounce) End() vmath.Vec2 {
	return b.Contact.Add(b.Overshoot)
}

// CircleBounce tests the segment [start, start+dpos] against a circle and reflects
// about the vector from the closest-approach point to the centre
// Only approaching travel bounces, so a point leaving the circle is not caught again
func CircleBounce(start, dpos, vel, center vmath.Vec2, radius float64) (Bounce, bool) {
	if vmath.Zero(dpos) {
		return Bounce{}, false
	}
	closest, n, hit := vmath.SegmentTouchesCircle(start, dpos, center, radius)
	if !hit {
		return Bounce{}, false
	}
	// Segment runs through the centre
	if vmath.LenSq(n) < vmath.Epsilon {
		n = dpos
	}
	if dpos.Dot(n) <= 0 {
		return Bounce{}, false
	}

	clip := start.Add(dpos).Sub(closest)
	return Bounce{
		Contact:   closest,
		Normal:    n,
		Overshoot: vmath.Reflect(clip, n),
		Vel:       vmath.Reflect(vel, n),
	}, true
}

// WallBounce moves start by dpos through the grid, mirroring the travel and the
// velocity off every struck face. The reflected overshoot is cast again so the
// result stays in open space; a second strike (corner) also reflects and stops there
func WallBounce(g *world.Grid, start, dpos, vel vmath.Vec2) (pos, newVel vmath.Vec2, hit bool) {
	cast := g.RayCast(start, dpos, true)
	n, ok := cast.Normal()
	if !ok {
		return cast.Point, vel, false
	}

	vel = vmath.Reflect(vel, n)
	over := g.RayCast(cast.Point, vmath.Reflect(cast.Clip, n), true)
	if n2, ok := over.Normal(); ok {
		vel = vmath.Reflect(vel, n2)
	}
	return over.Point, vel, true
}
