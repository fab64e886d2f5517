package engine

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/orrery/component"
	"github.com/lixenwraith/orrery/core"
	"github.com/lixenwraith/orrery/physics"
)

// BodyView is the read-only per-body output of a tick
type BodyView struct {
	Entity core.Entity
	Kind   component.Kind
	Pos    mgl64.Vec2 // Resolved world position
	Radius float64
	Shape  []mgl64.Vec2 // Offsets from Pos, free bodies only
	Forces []mgl64.Vec2 // Copy of last tick's contributions, free bodies only
	Vel    mgl64.Vec2   // Free bodies only
}

// Frame is everything a renderer needs after a tick
type Frame struct {
	Tick   uint64
	Scale  int
	Bodies []BodyView // Spawn order
}

// snapshot assumes updateMutex is held
func (w *World) snapshot(tick uint64) Frame {
	c := w.Components
	f := Frame{
		Tick:   tick,
		Scale:  w.Resources.Scale.Level,
		Bodies: make([]BodyView, 0, c.Body.CountEntity()),
	}

	c.Body.Each(func(e core.Entity, body component.BodyComponent) {
		view := BodyView{Entity: e, Kind: body.Kind, Radius: body.Radius}

		switch body.Kind {
		case component.KindFixed:
			fixed, _ := c.Fixed.GetComponent(e)
			view.Pos = fixed.Pos
		case component.KindRail:
			rail, _ := c.Rail.GetComponent(e)
			view.Pos = physics.RailPosition(rail.Paths)
		case component.KindFree:
			free, _ := c.Free.GetComponent(e)
			view.Pos = free.Pos
			view.Vel = free.Vel
			view.Forces = append([]mgl64.Vec2(nil), free.Forces...)
			if shape, ok := c.Shape.GetComponent(e); ok {
				view.Shape = append([]mgl64.Vec2(nil), shape.Vertices...)
			}
		}

		f.Bodies = append(f.Bodies, view)
	})

	return f
}
