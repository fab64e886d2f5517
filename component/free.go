package component

import "github.com/go-gl/mathgl/mgl64"

// FreeComponent is the kinematic state of a gravity-driven body
type FreeComponent struct {
	Pos   mgl64.Vec2
	Vel   mgl64.Vec2 // Position units per tick
	Accel mgl64.Vec2 // Overwritten every tick

	// Forces holds one contribution per attractor for the last tick
	// Cleared and refilled in place; diagnostic only
	Forces []mgl64.Vec2
}
