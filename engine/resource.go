package engine

import (
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/status"
)

// Resource holds world singletons, accessed via World.Resources
type Resource struct {
	Scale   *ScaleResource
	Physics *PhysicsResource

	// Telemetry
	Status *status.Registry
}

// ScaleResource is the global presentation zoom exponent
// Mutated only by the scale system; renderers read it from Frame
type ScaleResource struct {
	Level int
}

// PhysicsResource carries scenario-level physics tunables
type PhysicsResource struct {
	MinSeparation float64
	Wrap          parameter.WrapPolicy
}

// newResource creates resources with defaults from parameter
func newResource() Resource {
	return Resource{
		Scale: &ScaleResource{},
		Physics: &PhysicsResource{
			MinSeparation: parameter.MinSeparation,
			Wrap:          parameter.WrapClamp,
		},
		Status: status.NewRegistry(),
	}
}
