package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/orrery/vmath"
)

// CircleSegments is the outline resolution for circles
const CircleSegments = 100

// CirclePoints returns n evenly spaced points on a circle, starting at angle 0
func CirclePoints(centre mgl64.Vec2, radius float64, n int) []mgl64.Vec2 {
	pts := make([]mgl64.Vec2, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = centre.Add(mgl64.Vec2{radius * math.Cos(a), radius * math.Sin(a)})
	}
	return pts
}

// Line visits every cell of a Bresenham line, both endpoints included
func Line(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy

	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// ClipSegment clips segment a-b to the rectangle [lo, hi] (Liang-Barsky)
// ok is false when no part of the segment lies inside or an endpoint is not finite
// A clipped endpoint lands exactly on the edge that cut it, whatever the segment length
func ClipSegment(a, b, lo, hi mgl64.Vec2) (mgl64.Vec2, mgl64.Vec2, bool) {
	if !vmath.IsFinite(a) || !vmath.IsFinite(b) {
		return a, b, false
	}

	d := b.Sub(a)
	p := [4]float64{-d[0], d[0], -d[1], d[1]}
	q := [4]float64{a[0] - lo[0], hi[0] - a[0], a[1] - lo[1], hi[1] - a[1]}
	edge := [4]float64{lo[0], hi[0], lo[1], hi[1]}

	t0, t1 := 0.0, 1.0
	cut0, cut1 := -1, -1
	for i := range p {
		if p[i] == 0 {
			// Parallel to this edge
			if q[i] < 0 {
				return a, b, false
			}
			continue
		}
		r := q[i] / p[i]
		if p[i] < 0 {
			if r > t1 {
				return a, b, false
			}
			if r > t0 {
				t0, cut0 = r, i
			}
		} else {
			if r < t0 {
				return a, b, false
			}
			if r < t1 {
				t1, cut1 = r, i
			}
		}
	}

	ca, cb := a.Add(d.Mul(t0)), a.Add(d.Mul(t1))
	if cut0 >= 0 {
		ca[cut0/2] = edge[cut0]
	}
	if cut1 >= 0 {
		cb[cut1/2] = edge[cut1]
	}
	return clampRect(ca, lo, hi), clampRect(cb, lo, hi), true
}

// clampRect absorbs rounding overshoot of the interpolated coordinate
func clampRect(v, lo, hi mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{
		math.Min(math.Max(v[0], lo[0]), hi[0]),
		math.Min(math.Max(v[1], lo[1]), hi[1]),
	}
}

// ClosedPolygon returns the vertex offsets translated to pos, with the first vertex repeated at the end
func ClosedPolygon(pos mgl64.Vec2, vertices []mgl64.Vec2) []mgl64.Vec2 {
	if len(vertices) == 0 {
		return nil
	}
	out := make([]mgl64.Vec2, 0, len(vertices)+1)
	for _, v := range vertices {
		out = append(out, pos.Add(v))
	}
	return append(out, out[0])
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
