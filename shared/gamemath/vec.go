// Package gamemath holds small planar helpers shared by the simulation and the
// client. It has no dependencies on ebitengine or the ECS.
package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Lerp interpolates linearly between a and b. t is not clamped.
func Lerp(a, b dmath.Vec2, t float64) dmath.Vec2 {
	return dmath.Vec2{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// Distance returns the straight-line distance between a and b.
func Distance(a, b dmath.Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Yaw returns the heading from a towards b in radians, measured from +X.
// ok is false when a and b coincide, in which case the caller keeps its
// current heading.
func Yaw(a, b dmath.Vec2) (yaw float64, ok bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	if dx == 0 && dy == 0 {
		return 0, false
	}
	return math.Atan2(dy, dx), true
}

// OnSegment reports whether p lies on the segment from a to b, allowing p to
// stray tolerance world units from it.
func OnSegment(p, a, b dmath.Vec2, tolerance float64) bool {
	abx, aby := b.X-a.X, b.Y-a.Y
	apx, apy := p.X-a.X, p.Y-a.Y
	length := math.Hypot(abx, aby)
	if length == 0 {
		return Distance(p, a) <= tolerance
	}
	if math.Abs(abx*apy-aby*apx)/length > tolerance {
		return false
	}
	along := (abx*apx + aby*apy) / length
	return along >= -tolerance && along <= length+tolerance
}

// ClampInt clamps v to [minVal, maxVal].
func ClampInt(v, minVal, maxVal int) int {
	return max(minVal, min(maxVal, v))
}

// AbsInt returns |x|.
func AbsInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
