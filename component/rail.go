package component

import "github.com/go-gl/mathgl/mgl64"

// OrbitalPath is one circular rail
type OrbitalPath struct {
	Centre mgl64.Vec2
	Radius float64
	// Angle in radians, kept in [0, 2π)
	Angle float64
	// RotationSpeed is a signed fraction of a full turn per tick
	RotationSpeed float64
}

// RailComponent owns the ordered, non-empty path stack of a rail-bound body
// World position is the flat sum of every path offset
type RailComponent struct {
	Paths []OrbitalPath
}
