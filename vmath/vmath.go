package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is the world-space vector used across the engine, in world units
type Vec2 = mgl64.Vec2

// Epsilon is the tolerance used when comparing world-space quantities
const Epsilon = 1e-9

// Vec builds a Vec2 from components
func Vec(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Zero reports whether both components are exactly zero
func Zero(v Vec2) bool {
	return v[0] == 0 && v[1] == 0
}

// IsFinite reports whether neither component is NaN or infinite
func IsFinite(v Vec2) bool {
	return !math.IsNaN(v[0]) && !math.IsNaN(v[1]) && !math.IsInf(v[0], 0) && !math.IsInf(v[1], 0)
}

// LenSq returns the squared length without sqrt
func LenSq(v Vec2) float64 {
	return v.Dot(v)
}

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
