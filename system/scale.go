package system

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/parameter"
)

// ScaleSystem applies the tick's scale command to the global zoom level
// The level is unbounded and has no effect on physics
type ScaleSystem struct {
	world *engine.World

	statLevel *atomic.Int64
}

func NewScaleSystem(world *engine.World) engine.System {
	s := &ScaleSystem{
		world:     world,
		statLevel: world.Resources.Status.Ints.Get("scale.level"),
	}
	s.statLevel.Store(int64(world.Resources.Scale.Level))
	return s
}

func (s *ScaleSystem) Name() string {
	return "scale"
}

func (s *ScaleSystem) Priority() int {
	return parameter.PriorityScale
}

func (s *ScaleSystem) Update(t engine.Tick) {
	scale := s.world.Resources.Scale

	switch t.Input.Scale {
	case engine.ScaleIncrease:
		scale.Level += parameter.ScaleStep
	case engine.ScaleDecrease:
		scale.Level -= parameter.ScaleStep
	default:
		return
	}

	s.statLevel.Store(int64(scale.Level))
	log.Printf("scale: tick %d: %s -> level %d", t.Number, t.Input.Scale, scale.Level)
}
