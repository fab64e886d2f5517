package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/orrery/component"
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/vmath"
)

// AdvanceAngle steps angle by speed turns (2π*speed radians) and wraps per policy
// speed is a signed fraction of a full turn per tick
func AdvanceAngle(angle, speed float64, policy parameter.WrapPolicy) float64 {
	return WrapAngle(angle+vmath.TwoPi*speed, policy)
}

// WrapAngle folds angle into [0, 2π)
// WrapClamp resets at the boundary instead of folding: an angle more than one turn
// past the boundary lands on the boundary value, not on its true residue
func WrapAngle(angle float64, policy parameter.WrapPolicy) float64 {
	if policy == parameter.WrapModulo {
		a := math.Mod(angle, vmath.TwoPi)
		if a < 0 {
			a += vmath.TwoPi
		}
		// Mod of a tiny negative value plus 2π can round up to 2π
		if a >= vmath.TwoPi {
			a = 0
		}
		return a
	}

	if angle >= vmath.TwoPi {
		return 0
	}
	if angle < 0 {
		return vmath.BelowTwoPi
	}
	return angle
}

// PathOffset returns one path's contribution: centre + radius*(cos, sin)
func PathOffset(p component.OrbitalPath) mgl64.Vec2 {
	return p.Centre.Add(vmath.Polar(p.Radius, p.Angle))
}

// RailPosition sums every path offset into a world position
// Paths are flat offsets from a shared centre space, not chained frames
func RailPosition(paths []component.OrbitalPath) mgl64.Vec2 {
	var pos mgl64.Vec2
	for _, p := range paths {
		pos = pos.Add(PathOffset(p))
	}
	return pos
}
