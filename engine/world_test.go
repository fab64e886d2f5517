package engine

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/orrery/component"
)

// recordingSystem appends its name and the tick it saw to a shared log
type recordingSystem struct {
	name     string
	priority int
	log      *[]string
	ticks    []Tick
}

func (s *recordingSystem) Name() string  { return s.name }
func (s *recordingSystem) Priority() int { return s.priority }
func (s *recordingSystem) Update(t Tick) {
	*s.log = append(*s.log, s.name)
	s.ticks = append(s.ticks, t)
}

func TestWorld_UpdateRunsSystemsInPriorityOrder(t *testing.T) {
	w := NewWorld()
	var order []string

	late := &recordingSystem{name: "late", priority: 40, log: &order}
	early := &recordingSystem{name: "early", priority: 10, log: &order}
	mid := &recordingSystem{name: "mid", priority: 20, log: &order}
	midTwin := &recordingSystem{name: "mid-twin", priority: 20, log: &order}

	w.AddSystem(late)
	w.AddSystem(early)
	w.AddSystem(mid)
	w.AddSystem(midTwin)

	w.Update(TickInput{})

	want := []string{"early", "mid", "mid-twin", "late"}
	if len(order) != len(want) {
		t.Fatalf("Expected %d updates, got %d", len(want), len(order))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Position %d: expected %s, got %s", i, want[i], order[i])
		}
	}
}

func TestWorld_TickInputReachesSystems(t *testing.T) {
	w := NewWorld()
	var order []string
	s := &recordingSystem{name: "s", log: &order}
	w.AddSystem(s)

	w.Update(TickInput{Scale: ScaleIncrease})
	frame := w.Update(TickInput{})

	if len(s.ticks) != 2 {
		t.Fatalf("Expected 2 ticks, got %d", len(s.ticks))
	}
	if s.ticks[0].Number != 1 || s.ticks[1].Number != 2 {
		t.Errorf("Expected tick numbers 1,2, got %d,%d", s.ticks[0].Number, s.ticks[1].Number)
	}
	if s.ticks[0].Input.Scale != ScaleIncrease || s.ticks[1].Input.Scale != ScaleNone {
		t.Errorf("Expected increase then none, got %s then %s", s.ticks[0].Input.Scale, s.ticks[1].Input.Scale)
	}
	if frame.Tick != 2 || w.TickNumber() != 2 {
		t.Errorf("Expected frame and world at tick 2, got %d and %d", frame.Tick, w.TickNumber())
	}
	if got := w.Resources.Status.Ints.Get("engine.ticks").Load(); got != 2 {
		t.Errorf("Expected engine.ticks 2, got %d", got)
	}
}

func TestWorld_SnapshotResolvesPositions(t *testing.T) {
	w := NewWorld()
	w.SpawnFixed(6e12, 50, mgl64.Vec2{0, 0})
	w.SpawnRail(6e10, 20, []component.OrbitalPath{
		{Centre: mgl64.Vec2{100, 0}, Radius: 10},
		{Centre: mgl64.Vec2{15, 100}, Radius: 0},
	})
	w.SpawnFree(1e5, mgl64.Vec2{175, 0}, mgl64.Vec2{0, 1}, []mgl64.Vec2{{-10, -10}, {10, -10}, {10, 10}})

	f := w.Snapshot()
	if f.Tick != 0 {
		t.Errorf("Expected snapshot at tick 0, got %d", f.Tick)
	}
	if len(f.Bodies) != 3 {
		t.Fatalf("Expected 3 bodies, got %d", len(f.Bodies))
	}

	if f.Bodies[0].Kind != component.KindFixed || f.Bodies[0].Pos != (mgl64.Vec2{0, 0}) {
		t.Errorf("Expected fixed body at origin, got %s at %v", f.Bodies[0].Kind, f.Bodies[0].Pos)
	}
	// Flat sum: (100+10, 0) + (15, 100)
	if f.Bodies[1].Pos != (mgl64.Vec2{125, 100}) {
		t.Errorf("Expected rail body at (125,100), got %v", f.Bodies[1].Pos)
	}
	if f.Bodies[2].Kind != component.KindFree || len(f.Bodies[2].Shape) != 3 {
		t.Errorf("Expected free body with 3 vertices, got %s with %d", f.Bodies[2].Kind, len(f.Bodies[2].Shape))
	}
}

func TestWorld_SnapshotDoesNotAliasWorld(t *testing.T) {
	w := NewWorld()
	ship, err := w.SpawnFree(1e5, mgl64.Vec2{}, mgl64.Vec2{}, []mgl64.Vec2{{-10, -10}, {10, -10}, {10, 10}})
	if err != nil {
		t.Fatalf("SpawnFree failed: %v", err)
	}
	free, _ := w.Components.Free.GetComponent(ship)
	free.Forces = append(free.Forces, mgl64.Vec2{1, 2})
	w.Components.Free.SetComponent(ship, free)

	f := w.Snapshot()
	f.Bodies[0].Shape[0] = mgl64.Vec2{99, 99}
	f.Bodies[0].Forces[0] = mgl64.Vec2{99, 99}

	shape, _ := w.Components.Shape.GetComponent(ship)
	if shape.Vertices[0] != (mgl64.Vec2{-10, -10}) {
		t.Errorf("Expected world shape untouched, got %v", shape.Vertices[0])
	}
	free, _ = w.Components.Free.GetComponent(ship)
	if free.Forces[0] != (mgl64.Vec2{1, 2}) {
		t.Errorf("Expected world forces untouched, got %v", free.Forces[0])
	}
}

func TestWorld_Clear(t *testing.T) {
	w := NewWorld()
	w.SpawnFixed(1, 1, mgl64.Vec2{})
	w.Update(TickInput{})

	w.Clear()

	if w.EntityCount() != 0 || w.TickNumber() != 0 {
		t.Errorf("Expected empty world at tick 0, got %d bodies at tick %d", w.EntityCount(), w.TickNumber())
	}
	if e := w.CreateEntity(); e != 1 {
		t.Errorf("Expected IDs to restart at 1, got %d", e)
	}
}
