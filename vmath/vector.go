package vmath

import "math"

// AngleToVec returns the unit vector for a heading in radians, 0 is along +X
func AngleToVec(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{cos, sin}
}

// AngleFromVec returns the heading of v in radians, 0 is along +X
func AngleFromVec(v Vec2) float64 {
	return math.Atan2(v[1], v[0])
}

// Normalize returns unit vector, zero-safe
func Normalize(v Vec2) Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return v.Mul(1 / l)
}

// Reflect mirrors v about the surface with normal n
// v' = v - 2 * (v.n / n.n) * n, n need not be unit length
// A degenerate normal (n.n == 0) leaves v unchanged
func Reflect(v, n Vec2) Vec2 {
	nn := n.Dot(n)
	if nn == 0 || math.IsNaN(nn) || math.IsInf(nn, 0) {
		return v
	}
	return v.Sub(n.Mul(2 * v.Dot(n) / nn))
}

// Project returns the component of v along n, zero for a degenerate normal
func Project(v, n Vec2) Vec2 {
	nn := n.Dot(n)
	if nn == 0 {
		return Vec2{}
	}
	return n.Mul(v.Dot(n) / nn)
}

// Reject returns v with its component along n removed
func Reject(v, n Vec2) Vec2 {
	return v.Sub(Project(v, n))
}

// Perpendicular returns vector rotated 90° counter-clockwise
func Perpendicular(v Vec2) Vec2 {
	return Vec2{-v[1], v[0]}
}
