package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/orrery/component"
	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/physics"
	"github.com/lixenwraith/orrery/vmath"
)

func TestRailSystem_StackedPathsMatchIndependentSum(t *testing.T) {
	w := newTestWorld(t)
	outer := component.OrbitalPath{Radius: 1000, RotationSpeed: 0.002}
	inner := component.OrbitalPath{Radius: 50, RotationSpeed: 0.01}
	e := mustRail(t, w, 6e10, outer, inner)

	const ticks = 37
	frame := w.Snapshot()
	for i := 0; i < ticks; i++ {
		frame = w.Update(engine.TickInput{})
	}

	// Angles stay below 2π for these speeds, so each advances linearly
	a1 := ticks * vmath.TwoPi * 0.002
	a2 := ticks * vmath.TwoPi * 0.01
	want := vmath.Polar(1000, a1).Add(vmath.Polar(50, a2))

	got := bodyView(t, frame, e).Pos
	if !got.ApproxEqualThreshold(want, 1e-6) {
		t.Errorf("Expected stacked position %v, got %v", want, got)
	}
}

func TestRailSystem_AnglesStayInRange(t *testing.T) {
	w := newTestWorld(t)
	e := mustRail(t, w, 1,
		component.OrbitalPath{Radius: 10, Angle: 6.2, RotationSpeed: 0.3},
		component.OrbitalPath{Radius: 10, Angle: 0.1, RotationSpeed: -0.7},
		component.OrbitalPath{Radius: 10, Angle: 0, RotationSpeed: 0.999},
	)

	for i := 0; i < 200; i++ {
		w.Update(engine.TickInput{})
		rail, _ := w.Components.Rail.GetComponent(e)
		for j, p := range rail.Paths {
			if p.Angle < 0 || p.Angle >= vmath.TwoPi || math.IsNaN(p.Angle) {
				t.Fatalf("Tick %d path %d: expected angle in [0, 2π), got %v", i+1, j, p.Angle)
			}
		}
	}
}

func TestRailSystem_ModuloPolicyFromResource(t *testing.T) {
	w := newTestWorld(t)
	w.Resources.Physics.Wrap = parameter.WrapModulo
	e := mustRail(t, w, 1, component.OrbitalPath{Radius: 10, Angle: 6, RotationSpeed: 0.25})

	w.Update(engine.TickInput{})

	rail, _ := w.Components.Rail.GetComponent(e)
	want := physics.WrapAngle(6+vmath.TwoPi*0.25, parameter.WrapModulo)
	if math.Abs(rail.Paths[0].Angle-want) > 1e-12 {
		t.Errorf("Expected folded angle %v, got %v", want, rail.Paths[0].Angle)
	}
	if rail.Paths[0].Angle == 0 {
		t.Error("Expected modulo policy to keep the residue, got clamp reset to 0")
	}
}

func TestRailSystem_PathStat(t *testing.T) {
	w := newTestWorld(t)
	mustRail(t, w, 1, component.OrbitalPath{Radius: 1}, component.OrbitalPath{Radius: 2})
	mustRail(t, w, 1, component.OrbitalPath{Centre: mgl64.Vec2{5, 5}, Radius: 1})

	w.Update(engine.TickInput{})

	if got := w.Resources.Status.Ints.Get("rail.paths").Load(); got != 3 {
		t.Errorf("Expected 3 paths, got %d", got)
	}
}
