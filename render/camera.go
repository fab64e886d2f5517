// Package render holds projection and colour helpers shared by the frontends
package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Zoom returns the magnification for a scale level: 2^level
func Zoom(level int) float64 {
	return math.Ldexp(1, level)
}

// Camera maps world coordinates to screen coordinates
// World origin sits at the screen centre; y grows downward as in the world frame
type Camera struct {
	Width, Height float64

	// Level is the scale level; each step doubles or halves the view
	Level int

	// Base is screen units per world unit at level 0
	Base float64

	// Aspect stretches x; 2 for terminal cells that are twice as tall as wide
	Aspect float64
}

// NewCamera creates a camera with unit base scale and square pixels
func NewCamera(width, height float64) Camera {
	return Camera{Width: width, Height: height, Base: 1, Aspect: 1}
}

// Scale returns screen units per world unit along y
func (c Camera) Scale() float64 {
	return c.Base * Zoom(c.Level)
}

// WorldToScreen converts a world position to screen coordinates
func (c Camera) WorldToScreen(p mgl64.Vec2) (float64, float64) {
	s := c.Scale()
	return p.X()*s*c.Aspect + c.Width/2, p.Y()*s + c.Height/2
}

// ScreenToWorld is the inverse of WorldToScreen
func (c Camera) ScreenToWorld(sx, sy float64) mgl64.Vec2 {
	s := c.Scale()
	return mgl64.Vec2{(sx - c.Width/2) / (s * c.Aspect), (sy - c.Height/2) / s}
}

// Visible reports whether a world circle overlaps the screen
func (c Camera) Visible(p mgl64.Vec2, radius float64) bool {
	sx, sy := c.WorldToScreen(p)
	r := radius * c.Scale()
	rx := r * c.Aspect
	return sx+rx >= 0 && sx-rx < c.Width && sy+r >= 0 && sy-r < c.Height
}

// FitBase returns the level-0 scale that fits a world extent (half-size) into the screen
func FitBase(width, height, aspect, extent float64) float64 {
	if extent <= 0 {
		return 1
	}
	return math.Min(width/(2*extent*aspect), height/(2*extent))
}
