package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// TwoPi is one full turn in radians
const TwoPi = 2 * math.Pi

// BelowTwoPi is the largest float64 strictly less than TwoPi
// Upper boundary of the half-open angle range [0, 2π)
var BelowTwoPi = math.Nextafter(TwoPi, 0)

// Polar returns the offset radius*(cos(angle), sin(angle))
func Polar(radius, angle float64) mgl64.Vec2 {
	sin, cos := math.Sincos(angle)
	return mgl64.Vec2{radius * cos, radius * sin}
}

// IsFinite reports whether both components are neither NaN nor ±Inf
func IsFinite(v mgl64.Vec2) bool {
	return isFinite(v[0]) && isFinite(v[1])
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ScaleDiv divides both components by s, zero-safe (returns zero vector for s == 0)
func ScaleDiv(v mgl64.Vec2, s float64) mgl64.Vec2 {
	if s == 0 {
		return mgl64.Vec2{}
	}
	return mgl64.Vec2{v[0] / s, v[1] / s}
}

// Sum adds a list of vectors in order
func Sum(vs []mgl64.Vec2) mgl64.Vec2 {
	var total mgl64.Vec2
	for _, v := range vs {
		total = total.Add(v)
	}
	return total
}
