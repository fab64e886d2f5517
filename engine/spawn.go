package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/orrery/component"
	"github.com/lixenwraith/orrery/core"
)

// Spawn errors; the core never sees a body that failed these checks
var (
	ErrInvalidMass   = errors.New("mass must be positive and finite")
	ErrInvalidRadius = errors.New("radius must be non-negative and finite")
	ErrNoPaths       = errors.New("rail body needs at least one orbital path")
)

func checkBody(mass, radius float64) error {
	if !(mass > 0) || math.IsInf(mass, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidMass, mass)
	}
	if !(radius >= 0) || math.IsInf(radius, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidRadius, radius)
	}
	return nil
}

// SpawnFixed creates a body pinned at pos
func (w *World) SpawnFixed(mass, radius float64, pos mgl64.Vec2) (core.Entity, error) {
	if err := checkBody(mass, radius); err != nil {
		return core.NoEntity, fmt.Errorf("spawn fixed: %w", err)
	}

	eb := w.NewEntity()
	With(eb, w.Components.Body, component.BodyComponent{Kind: component.KindFixed, Mass: mass, Radius: radius})
	With(eb, w.Components.Fixed, component.FixedComponent{Pos: pos})
	return eb.Build(), nil
}

// SpawnRail creates a body driven by the ordered path stack
// The paths slice is copied
func (w *World) SpawnRail(mass, radius float64, paths []component.OrbitalPath) (core.Entity, error) {
	if err := checkBody(mass, radius); err != nil {
		return core.NoEntity, fmt.Errorf("spawn rail: %w", err)
	}
	if len(paths) == 0 {
		return core.NoEntity, fmt.Errorf("spawn rail: %w", ErrNoPaths)
	}

	owned := make([]component.OrbitalPath, len(paths))
	copy(owned, paths)

	eb := w.NewEntity()
	With(eb, w.Components.Body, component.BodyComponent{Kind: component.KindRail, Mass: mass, Radius: radius})
	With(eb, w.Components.Rail, component.RailComponent{Paths: owned})
	return eb.Build(), nil
}

// SpawnFree creates a gravity-driven body with zero acceleration and an empty force list
// Its radius is the farthest shape vertex, used only for presentation
func (w *World) SpawnFree(mass float64, pos, vel mgl64.Vec2, shape []mgl64.Vec2) (core.Entity, error) {
	radius := 0.0
	for _, v := range shape {
		radius = math.Max(radius, v.Len())
	}
	if err := checkBody(mass, radius); err != nil {
		return core.NoEntity, fmt.Errorf("spawn free: %w", err)
	}

	vertices := make([]mgl64.Vec2, len(shape))
	copy(vertices, shape)

	eb := w.NewEntity()
	With(eb, w.Components.Body, component.BodyComponent{Kind: component.KindFree, Mass: mass, Radius: radius})
	With(eb, w.Components.Free, component.FreeComponent{
		Pos:    pos,
		Vel:    vel,
		Forces: make([]mgl64.Vec2, 0, w.Components.Fixed.CountEntity()+w.Components.Rail.CountEntity()),
	})
	With(eb, w.Components.Shape, component.ShapeComponent{Vertices: vertices})
	return eb.Build(), nil
}
