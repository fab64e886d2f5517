package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/orrery/component"
	"github.com/lixenwraith/orrery/core"
	"github.com/lixenwraith/orrery/engine"
)

func newTestWorld(t *testing.T) *engine.World {
	t.Helper()
	w := engine.NewWorld()
	RegisterAll(w)
	return w
}

func mustFixed(t *testing.T, w *engine.World, mass float64, pos mgl64.Vec2) core.Entity {
	t.Helper()
	e, err := w.SpawnFixed(mass, 10, pos)
	if err != nil {
		t.Fatalf("SpawnFixed failed: %v", err)
	}
	return e
}

func mustRail(t *testing.T, w *engine.World, mass float64, paths ...component.OrbitalPath) core.Entity {
	t.Helper()
	e, err := w.SpawnRail(mass, 10, paths)
	if err != nil {
		t.Fatalf("SpawnRail failed: %v", err)
	}
	return e
}

func mustFree(t *testing.T, w *engine.World, mass float64, pos, vel mgl64.Vec2) core.Entity {
	t.Helper()
	square := []mgl64.Vec2{{-10, -10}, {10, -10}, {10, 10}, {-10, 10}}
	e, err := w.SpawnFree(mass, pos, vel, square)
	if err != nil {
		t.Fatalf("SpawnFree failed: %v", err)
	}
	return e
}

func freeState(t *testing.T, w *engine.World, e core.Entity) component.FreeComponent {
	t.Helper()
	f, ok := w.Components.Free.GetComponent(e)
	if !ok {
		t.Fatalf("Entity %d has no free component", e)
	}
	return f
}

func bodyView(t *testing.T, f engine.Frame, e core.Entity) engine.BodyView {
	t.Helper()
	for _, b := range f.Bodies {
		if b.Entity == e {
			return b
		}
	}
	t.Fatalf("Entity %d missing from frame %d", e, f.Tick)
	return engine.BodyView{}
}
