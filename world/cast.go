package world

import (
	"math"

	"github.com/lixenwraith/tds/vmath"
)

// CastSkin is how far, in world units, a blocked cast's end point is pulled
// back from the struck face so the point snaps into the open cell
const CastSkin = 1e-4

// maxSlides bounds the number of faces a sliding cast may follow
const maxSlides = 4

// Cast is the result of a ray cast through the grid
// Invariant: Point == origin + (vector - Clip)
type Cast struct {
	Point vmath.Vec2
	// Clip is the part of the requested vector that was not travelled
	Clip vmath.Vec2

	normal    vmath.Vec2
	hasNormal bool
}

// Normal returns the contact normal of the last struck face, if any
// Only the direction is meaningful
func (c Cast) Normal() (vmath.Vec2, bool) {
	return c.normal, c.hasNormal
}

// Full reports whether the cast covered the whole vector unobstructed
func (c Cast) Full() bool {
	return !c.hasNormal
}

// Traveled returns the displacement actually covered (vector - clip)
func (c Cast) Traveled(vector vmath.Vec2) vmath.Vec2 {
	return vector.Sub(c.Clip)
}

// RayCast steps from origin along vector through cell boundaries and reports
// the first solid obstruction. With stopEarly the walk halts at the first solid
// face; otherwise the remaining travel slides along struck faces and the final
// clipped position is reported
func (g *Grid) RayCast(origin, vector vmath.Vec2, stopEarly bool) Cast {
	if vmath.Zero(vector) || !vmath.IsFinite(vector) || !vmath.IsFinite(origin) {
		return Cast{Point: origin}
	}

	if stopEarly {
		t, normal, hit := g.castSegment(origin, vector)
		if !hit {
			return Cast{Point: origin.Add(vector)}
		}
		return Cast{
			Point:     origin.Add(vector.Mul(t)),
			Clip:      vector.Mul(1 - t),
			normal:    normal,
			hasNormal: true,
		}
	}

	return g.slide(origin, vector)
}

// LineOfSight reports whether the straight segment from a to b is unobstructed
func (g *Grid) LineOfSight(a, b vmath.Vec2) bool {
	return g.RayCast(a, b.Sub(a), true).Full()
}

// slide follows struck faces by dropping the travel component along each contact normal
func (g *Grid) slide(origin, vector vmath.Vec2) Cast {
	pos := origin
	remaining := vector
	var normal vmath.Vec2
	hit := false

	for i := 0; i < maxSlides && !vmath.Zero(remaining); i++ {
		t, n, blocked := g.castSegment(pos, remaining)
		if !blocked {
			pos = pos.Add(remaining)
			break
		}
		hit = true
		normal = n
		pos = pos.Add(remaining.Mul(t))
		remaining = vmath.Reject(remaining.Mul(1-t), n)
		if vmath.LenSq(remaining) < CastSkin*CastSkin {
			break
		}
	}

	if !hit {
		return Cast{Point: pos}
	}
	return Cast{
		Point:     pos,
		Clip:      vector.Sub(pos.Sub(origin)),
		normal:    normal,
		hasNormal: hit,
	}
}

// castSegment walks the DDA along origin + t*vector, t in [0, 1]
// Returns the skin-adjusted parameter and face normal of the first solid cell
func (g *Grid) castSegment(origin, vector vmath.Vec2) (float64, vmath.Vec2, bool) {
	tr := vmath.NewCellTraverser(origin, vector, CellSize)
	if x, y := tr.Pos(); g.IsSolid(x, y) {
		return 0, vector.Mul(-1), true
	}

	for {
		entry := tr.Next()
		if entry > 1 || math.IsInf(entry, 1) || math.IsNaN(entry) {
			return 1, vmath.Vec2{}, false
		}
		x, y := tr.Pos()
		if !g.IsSolid(x, y) {
			continue
		}
		// Skin is measured along the crossed axis so the point clears the face
		// by CastSkin world units regardless of the ray's slope
		across := vector[0]
		if tr.Axis() == vmath.AxisY {
			across = vector[1]
		}
		return max(entry-CastSkin/math.Abs(across), 0), tr.FaceNormal(), true
	}
}
