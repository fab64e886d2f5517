package system

import (
	"sync/atomic"

	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/physics"
)

// RailSystem advances every orbital path angle by its per-tick rotation
// Touches rail angles only; runs before any rail-derived position is read
type RailSystem struct {
	world *engine.World

	statPaths *atomic.Int64
}

func NewRailSystem(world *engine.World) engine.System {
	return &RailSystem{
		world:     world,
		statPaths: world.Resources.Status.Ints.Get("rail.paths"),
	}
}

func (s *RailSystem) Name() string {
	return "rail"
}

func (s *RailSystem) Priority() int {
	return parameter.PriorityRail
}

func (s *RailSystem) Update(t engine.Tick) {
	rails := s.world.Components.Rail
	policy := s.world.Resources.Physics.Wrap

	var paths int64
	for _, e := range rails.AllEntity() {
		rail, ok := rails.GetComponent(e)
		if !ok {
			continue
		}
		for i := range rail.Paths {
			p := &rail.Paths[i]
			p.Angle = physics.AdvanceAngle(p.Angle, p.RotationSpeed, policy)
		}
		paths += int64(len(rail.Paths))
		rails.SetComponent(e, rail)
	}

	s.statPaths.Store(paths)
}
