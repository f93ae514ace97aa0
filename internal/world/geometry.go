package world

import (
	"math"

	"github.com/Bamcane/teeworlds-teewar/internal/world/state"
)

// Vec2 aliases the shared state vector type for world helpers.
type Vec2 = state.Vec2

// Rect is an axis-aligned rectangle.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Contains reports whether p lies inside the rectangle, edges included.
func (r Rect) Contains(p Vec2) bool {
	return p.X() >= r.X && p.X() <= r.X+r.Width && p.Y() >= r.Y && p.Y() <= r.Y+r.Height
}

// Clamp limits value to the range [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ClosestPointOnSegment projects p onto the segment a-b.
func ClosestPointOnSegment(a, b, p Vec2) Vec2 {
	ab := b.Sub(a)
	lengthSq := ab.Dot(ab)
	if lengthSq == 0 {
		return a
	}
	t := Clamp(p.Sub(a).Dot(ab)/lengthSq, 0, 1)
	return a.Add(ab.Mul(t))
}

// SegmentHitsCircle reports whether the segment a-b passes within radius of
// center and returns the closest point on the segment.
func SegmentHitsCircle(a, b, center Vec2, radius float64) (Vec2, bool) {
	closest := ClosestPointOnSegment(a, b, center)
	return closest, state.Distance(closest, center) < radius
}

// RoundToInt rounds half away from zero, matching the replicated integer
// coordinates.
func RoundToInt(v float64) int {
	return int(math.Round(v))
}
