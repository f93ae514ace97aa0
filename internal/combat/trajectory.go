package combat

import "github.com/Bamcane/teeworlds-teewar/internal/world/state"

// CalcPos evaluates the ballistic arc launched from origin along velocity
// after t seconds. Time is scaled by the weapon speed, so velocity is a
// direction in speed units and curvature bends the path along +y.
func CalcPos(origin, velocity state.Vec2, curvature, speed, t float64) state.Vec2 {
	scaled := t * speed
	bend := curvature / 10000 * scaled * scaled
	return origin.Add(velocity.Mul(scaled)).Add(state.Vec2{0, bend})
}

// VelocityAt is the derivative of CalcPos with respect to scaled time, in the
// same units as the launch velocity.
func VelocityAt(velocity state.Vec2, curvature, speed, t float64) state.Vec2 {
	return velocity.Add(state.Vec2{0, 2 * curvature / 10000 * speed * t})
}
