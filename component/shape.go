package component

import "github.com/go-gl/mathgl/mgl64"

// ShapeComponent is a polygon outline relative to the body position
// The last vertex connects back to the first
type ShapeComponent struct {
	Vertices []mgl64.Vec2
}
