package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/orrery/component"
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/vmath"
)

func TestAdvanceAngle_StaysInRange(t *testing.T) {
	starts := []float64{0, 0.5, math.Pi, vmath.BelowTwoPi, 6.2, -0.1, 7.0, -7.0, 1e6, -1e6}
	speeds := []float64{0, 0.002, -0.002, 0.5, -0.5, 0.999, -0.999, 1, -1}

	for _, policy := range []parameter.WrapPolicy{parameter.WrapClamp, parameter.WrapModulo} {
		for _, start := range starts {
			for _, speed := range speeds {
				got := AdvanceAngle(start, speed, policy)
				if got < 0 || got >= vmath.TwoPi {
					t.Errorf("%s: start=%v speed=%v: expected angle in [0, 2π), got %v", policy, start, speed, got)
				}
			}
		}
	}
}

func TestAdvanceAngle_Increment(t *testing.T) {
	got := AdvanceAngle(1.0, 0.01, parameter.WrapClamp)
	want := 1.0 + vmath.TwoPi*0.01
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Expected %v, got %v", want, got)
	}

	got = AdvanceAngle(1.0, -0.01, parameter.WrapClamp)
	want = 1.0 - vmath.TwoPi*0.01
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Expected %v for negative speed, got %v", want, got)
	}
}

func TestWrapAngle_ClampBoundary(t *testing.T) {
	// Crossing 2π resets to exactly 0, not to the residue
	over := vmath.TwoPi + 0.3
	if got := WrapAngle(over, parameter.WrapClamp); got != 0 {
		t.Errorf("Expected clamp to 0, got %v", got)
	}
	if got := WrapAngle(vmath.TwoPi, parameter.WrapClamp); got != 0 {
		t.Errorf("Expected exactly 2π to clamp to 0, got %v", got)
	}

	// Crossing 0 from above resets to the top of the range
	if got := WrapAngle(-0.3, parameter.WrapClamp); got != vmath.BelowTwoPi {
		t.Errorf("Expected clamp to just below 2π, got %v", got)
	}
}

func TestWrapAngle_Modulo(t *testing.T) {
	over := vmath.TwoPi + 0.3
	if got := WrapAngle(over, parameter.WrapModulo); math.Abs(got-0.3) > 1e-12 {
		t.Errorf("Expected residue 0.3, got %v", got)
	}
	if got := WrapAngle(-0.3, parameter.WrapModulo); math.Abs(got-(vmath.TwoPi-0.3)) > 1e-12 {
		t.Errorf("Expected 2π-0.3, got %v", got)
	}
	if got := WrapAngle(-1e-18, parameter.WrapModulo); got < 0 || got >= vmath.TwoPi {
		t.Errorf("Expected tiny negative to fold into range, got %v", got)
	}
}

func TestRailPosition_SinglePath(t *testing.T) {
	paths := []component.OrbitalPath{
		{Centre: mgl64.Vec2{10, -5}, Radius: 200, Angle: math.Pi / 2},
	}
	got := RailPosition(paths)
	if math.Abs(got.X()-10) > 1e-9 || math.Abs(got.Y()-195) > 1e-9 {
		t.Errorf("Expected (10, 195), got %v", got)
	}
}

func TestRailPosition_StackedPathsSumFlat(t *testing.T) {
	outer := component.OrbitalPath{Centre: mgl64.Vec2{0, 0}, Radius: 1000, RotationSpeed: 0.002}
	inner := component.OrbitalPath{Centre: mgl64.Vec2{0, 0}, Radius: 50, RotationSpeed: 0.01}
	paths := []component.OrbitalPath{outer, inner}

	const ticks = 37
	for i := 0; i < ticks; i++ {
		for j := range paths {
			paths[j].Angle = AdvanceAngle(paths[j].Angle, paths[j].RotationSpeed, parameter.WrapClamp)
		}
	}

	// Independent recomputation of each contribution at tick N
	a1 := float64(ticks) * vmath.TwoPi * 0.002
	a2 := float64(ticks) * vmath.TwoPi * 0.01
	wantX := 1000*math.Cos(a1) + 50*math.Cos(a2)
	wantY := 1000*math.Sin(a1) + 50*math.Sin(a2)

	got := RailPosition(paths)
	if math.Abs(got.X()-wantX) > 1e-6 || math.Abs(got.Y()-wantY) > 1e-6 {
		t.Errorf("Expected (%v, %v), got %v", wantX, wantY, got)
	}
}

func TestRailPosition_CentresAddUp(t *testing.T) {
	// Flat sum: both centres contribute, the inner path is not re-centred on the outer body
	paths := []component.OrbitalPath{
		{Centre: mgl64.Vec2{100, 0}, Radius: 10, Angle: 0},
		{Centre: mgl64.Vec2{0, 100}, Radius: 5, Angle: 0},
	}
	got := RailPosition(paths)
	if got != (mgl64.Vec2{115, 100}) {
		t.Errorf("Expected (115, 100), got %v", got)
	}
}
