package system

import (
	"log"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/orrery/component"
	"github.com/lixenwraith/orrery/core"
	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/physics"
	"github.com/lixenwraith/orrery/vmath"
)

// attractor is a start-of-tick snapshot of a fixed or rail body
type attractor struct {
	entity core.Entity
	pos    mgl64.Vec2
	mass   float64
}

// GravitySystem accumulates inverse-square attraction from fixed and rail bodies
// onto every free body, then applies the resulting acceleration to its velocity
// Fixed and rail bodies are never perturbed; free bodies do not attract each other
type GravitySystem struct {
	world *engine.World

	// Per-tick attractor cache, fixed bodies first then rail bodies
	fixed []attractor
	rails []attractor

	statClamped   *atomic.Int64
	statNonFinite *atomic.Int64
	statFree      *atomic.Int64
}

func NewGravitySystem(world *engine.World) engine.System {
	reg := world.Resources.Status
	return &GravitySystem{
		world:         world,
		fixed:         make([]attractor, 0, 8),
		rails:         make([]attractor, 0, 8),
		statClamped:   reg.Ints.Get("gravity.clamped_pairs"),
		statNonFinite: reg.Ints.Get("gravity.nonfinite"),
		statFree:      reg.Ints.Get("gravity.free_bodies"),
	}
}

func (s *GravitySystem) Name() string {
	return "gravity"
}

func (s *GravitySystem) Priority() int {
	return parameter.PriorityGravity
}

func (s *GravitySystem) Update(t engine.Tick) {
	s.cacheAttractors()

	c := s.world.Components
	minSep := s.world.Resources.Physics.MinSeparation

	free := s.world.Query().With(c.Body).With(c.Free).Execute()
	for _, e := range free {
		body, ok := c.Body.GetComponent(e)
		if !ok {
			continue
		}
		state, ok := c.Free.GetComponent(e)
		if !ok {
			continue
		}

		state.Forces = state.Forces[:0]
		for _, group := range [2][]attractor{s.fixed, s.rails} {
			for _, a := range group {
				if a.entity == e {
					continue
				}
				force, clamped := physics.Attraction(state.Pos, body.Mass, a.pos, a.mass, minSep)
				if clamped {
					if s.statClamped.Add(1) == 1 {
						log.Printf("gravity: tick %d: body %d within minimum separation of %d, clamped", t.Number, e, a.entity)
					}
				}
				if !vmath.IsFinite(force) {
					// Overflowing masses; the slot stays so Forces lines up with attractors
					s.statNonFinite.Add(1)
					force = mgl64.Vec2{}
				}
				state.Forces = append(state.Forces, force)
			}
		}

		accel := physics.Acceleration(vmath.Sum(state.Forces), body.Mass)
		if !vmath.IsFinite(accel) {
			// Finite contributions can still overflow once summed
			s.statNonFinite.Add(1)
			accel = mgl64.Vec2{}
		}
		state.Accel = accel
		state.Vel = physics.Kick(state.Vel, accel)
		c.Free.SetComponent(e, state)
	}

	s.statFree.Store(int64(len(free)))
}

// cacheAttractors resolves every attractor position once, before any free body changes
func (s *GravitySystem) cacheAttractors() {
	c := s.world.Components
	s.fixed = s.fixed[:0]
	s.rails = s.rails[:0]

	c.Body.Each(func(e core.Entity, body component.BodyComponent) {
		switch body.Kind {
		case component.KindFixed:
			if fixed, ok := c.Fixed.GetComponent(e); ok {
				s.fixed = append(s.fixed, attractor{entity: e, pos: fixed.Pos, mass: body.Mass})
			}
		case component.KindRail:
			if rail, ok := c.Rail.GetComponent(e); ok {
				s.rails = append(s.rails, attractor{entity: e, pos: physics.RailPosition(rail.Paths), mass: body.Mass})
			}
		case component.KindFree:
			// Free bodies are not attractors
		}
	})
}
