package component

import "github.com/go-gl/mathgl/mgl64"

// FixedComponent pins a body at an immutable world position
type FixedComponent struct {
	Pos mgl64.Vec2
}
