package system

import (
	"sync/atomic"

	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/physics"
	"github.com/lixenwraith/orrery/vmath"
)

// IntegratorSystem moves free bodies by their velocity: p += v
// Runs after gravity so the freshly kicked velocity is used (semi-implicit Euler)
type IntegratorSystem struct {
	world *engine.World

	statNonFinite *atomic.Int64
}

func NewIntegratorSystem(world *engine.World) engine.System {
	return &IntegratorSystem{
		world:         world,
		statNonFinite: world.Resources.Status.Ints.Get("integrator.nonfinite"),
	}
}

func (s *IntegratorSystem) Name() string {
	return "integrator"
}

func (s *IntegratorSystem) Priority() int {
	return parameter.PriorityIntegrator
}

func (s *IntegratorSystem) Update(t engine.Tick) {
	free := s.world.Components.Free
	for _, e := range free.AllEntity() {
		state, ok := free.GetComponent(e)
		if !ok {
			continue
		}

		next := physics.Drift(state.Pos, state.Vel)
		if !vmath.IsFinite(next) {
			s.statNonFinite.Add(1)
			continue
		}
		state.Pos = next
		free.SetComponent(e, state)
	}
}
