package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/orrery/component"
	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/status"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func cellAt(s tcell.SimulationScreen, x, y int) rune {
	cells, w, _ := s.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

func rowText(s tcell.SimulationScreen, y int) string {
	cells, w, _ := s.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(c.Runes[0])
	}
	return b.String()
}

func TestRenderer_FixedBodyAtCentre(t *testing.T) {
	s := newSimScreen(t, 80, 25)
	reg := status.NewRegistry()
	r := NewRenderer(s, reg, false)

	r.Draw(engine.Frame{
		Tick:   7,
		Scale:  1,
		Bodies: []engine.BodyView{{Entity: 1, Kind: component.KindFixed, Pos: mgl64.Vec2{0, 0}, Radius: 0.5}},
	})

	if got := cellAt(s, 40, 12); got != '@' {
		t.Errorf("Expected '@' at screen centre, got %q", got)
	}

	line := rowText(s, 24)
	if !strings.Contains(line, "tick 7") || !strings.Contains(line, "scale +1 (x2)") {
		t.Errorf("Expected tick and scale in status line, got %q", line)
	}
	if strings.Contains(line, "PAUSED") {
		t.Errorf("Expected no pause flag, got %q", line)
	}
}

func TestRenderer_PauseFlagAndPolygon(t *testing.T) {
	s := newSimScreen(t, 80, 25)
	reg := status.NewRegistry()
	reg.Bools.Get("engine.paused").Store(true)
	r := NewRenderer(s, reg, true)

	ship := engine.BodyView{
		Entity: 2,
		Kind:   component.KindFree,
		Pos:    mgl64.Vec2{0, 0},
		Radius: 10,
		Shape:  []mgl64.Vec2{{-10, -10}, {10, -10}, {10, 10}, {-10, 10}},
		Forces: []mgl64.Vec2{{1, 0}},
	}
	r.Draw(engine.Frame{Tick: 1, Bodies: []engine.BodyView{ship}})

	if !strings.Contains(rowText(s, 24), "PAUSED") {
		t.Error("Expected PAUSED in status line")
	}

	var outline int
	cells, _, _ := s.GetContents()
	for _, c := range cells {
		if len(c.Runes) > 0 && c.Runes[0] == '#' {
			outline++
		}
	}
	if outline == 0 {
		t.Error("Expected polygon outline cells")
	}
}

func TestRenderer_ToggleForces(t *testing.T) {
	s := newSimScreen(t, 20, 10)
	r := NewRenderer(s, status.NewRegistry(), false)
	if !r.ToggleForces() {
		t.Error("Expected forces enabled after toggle")
	}
	if r.ToggleForces() {
		t.Error("Expected forces disabled after second toggle")
	}
}

// TestRenderer_DeepZoomPolygon draws a free body whose edges are far larger than the screen
// Only the visible span is rasterized, so the draw stays bounded at any scale level
func TestRenderer_DeepZoomPolygon(t *testing.T) {
	// Left edge lies on world x = 0, the screen's centre column
	ship := engine.BodyView{
		Entity: 3,
		Kind:   component.KindFree,
		Pos:    mgl64.Vec2{10, 0},
		Radius: 15,
		Shape:  []mgl64.Vec2{{-10, -10}, {10, -10}, {10, 10}, {-10, 10}},
	}

	for _, level := range []int{24, 40, 60} {
		s := newSimScreen(t, 80, 25)
		r := NewRenderer(s, status.NewRegistry(), false)

		start := time.Now()
		r.Draw(engine.Frame{Tick: 1, Scale: level, Bodies: []engine.BodyView{ship}})
		if elapsed := time.Since(start); elapsed > 2*time.Second {
			t.Errorf("level %d: expected a bounded draw, took %v", level, elapsed)
		}

		for y := 0; y < 24; y++ {
			if got := cellAt(s, 40, y); got != '#' {
				t.Errorf("level %d: expected edge '#' at (40, %d), got %q", level, y, got)
				break
			}
		}
	}
}
