package vmath

// ClosestPointOfLineToCircle returns the point on segment [start, start+delta]
// nearest to center; the result is clamped to the segment, not the infinite line
// A zero-length segment returns start
func ClosestPointOfLineToCircle(start, delta, center Vec2) Vec2 {
	lenSq := delta.Dot(delta)
	if lenSq == 0 {
		return start
	}
	t := center.Sub(start).Dot(delta) / lenSq
	return start.Add(delta.Mul(Clamp(t, 0, 1)))
}

// SegmentTouchesCircle reports whether the segment passes within radius of center
// Returns the closest point and the vector from it to center
func SegmentTouchesCircle(start, delta, center Vec2, radius float64) (closest, toCenter Vec2, hit bool) {
	closest = ClosestPointOfLineToCircle(start, delta, center)
	toCenter = center.Sub(closest)
	return closest, toCenter, toCenter.Dot(toCenter) <= radius*radius
}
