package system

import "github.com/lixenwraith/orrery/engine"

// RegisterAll adds the full tick pipeline to world
// Run order comes from priorities, not from call order
func RegisterAll(world *engine.World) {
	world.AddSystem(NewRailSystem(world))
	world.AddSystem(NewGravitySystem(world))
	world.AddSystem(NewIntegratorSystem(world))
	world.AddSystem(NewScaleSystem(world))
	world.AddSystem(NewDiagnosticsSystem(world))
}
