package physics

import (
	"github.com/lixenwraith/tds/vmath"
)

// Drag performs one step of linear drag: dv = -k*v*dt
// The displacement uses the midpoint of the old and new velocity: dpos = v*dt + dv*dt/2
func Drag(vel vmath.Vec2, k, dt float64) (dv, dpos vmath.Vec2) {
	dv = vel.Mul(-k * dt)
	dpos = vel.Mul(dt).Add(dv.Mul(0.5 * dt))
	return dv, dpos
}

// Integrate applies Drag in place and returns the planned displacement
// Position is left to the caller, which resolves collisions first
func Integrate(vel *vmath.Vec2, k, dt float64) vmath.Vec2 {
	dv, dpos := Drag(*vel, k, dt)
	*vel = vel.Add(dv)
	return dpos
}
