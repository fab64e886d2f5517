package physics

import "github.com/go-gl/mathgl/mgl64"

// Kick applies acceleration to velocity for one tick: v += a
func Kick(vel, accel mgl64.Vec2) mgl64.Vec2 {
	return vel.Add(accel)
}

// Drift applies velocity to position for one tick: p += v
// Velocity is in position units per tick; there is no wall-clock dt
func Drift(pos, vel mgl64.Vec2) mgl64.Vec2 {
	return pos.Add(vel)
}

// Step performs one semi-implicit Euler step: kick with a, then drift with the new v
func Step(pos, vel, accel mgl64.Vec2) (newPos, newVel mgl64.Vec2) {
	newVel = Kick(vel, accel)
	return Drift(pos, newVel), newVel
}
