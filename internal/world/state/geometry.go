package state

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 represents a 2D point or velocity used across projectile and tower state.
type Vec2 = mgl64.Vec2

// V builds a Vec2 from components.
func V(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Direction returns the unit vector pointing at angle radians.
func Direction(angle float64) Vec2 {
	return Vec2{math.Cos(angle), math.Sin(angle)}
}

// Mix linearly interpolates between a and b.
func Mix(a, b Vec2, t float64) Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}

// Distance returns the euclidean distance between two points.
func Distance(a, b Vec2) float64 {
	return b.Sub(a).Len()
}
