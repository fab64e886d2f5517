package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/vmath"
)

// Attraction returns the gravitational force exerted on a body of mass m at p by an
// attractor of mass mq at q: magnitude G*m*mq/h², direction from p toward q
// Separations below minSep are clamped to minSep; coincident positions have no
// direction and yield the zero vector. clamped reports either degenerate case
func Attraction(p mgl64.Vec2, m float64, q mgl64.Vec2, mq float64, minSep float64) (force mgl64.Vec2, clamped bool) {
	d := q.Sub(p)
	if d[0] == 0 && d[1] == 0 {
		return mgl64.Vec2{}, true
	}

	// Hypot does not underflow for tiny separations
	dist := math.Hypot(d[0], d[1])
	if dist < minSep {
		dist = minSep
		clamped = true
	}

	magnitude := parameter.GravitationalConstant * m * mq / (dist * dist)
	// Unit direction uses the true separation, magnitude the clamped one
	return direction(d).Mul(magnitude), clamped
}

// direction returns the unit vector of a non-zero d
// d is rescaled by its largest component first so 1/|d| cannot overflow
func direction(d mgl64.Vec2) mgl64.Vec2 {
	s := math.Max(math.Abs(d[0]), math.Abs(d[1]))
	u := mgl64.Vec2{d[0] / s, d[1] / s}
	return u.Mul(1 / math.Hypot(u[0], u[1]))
}

// Acceleration converts a summed force into acceleration for mass m
// m must be positive; spawn rejects non-positive masses
func Acceleration(force mgl64.Vec2, m float64) mgl64.Vec2 {
	return vmath.ScaleDiv(force, m)
}
