package scenario

import (
	"fmt"
	"log"

	"github.com/lixenwraith/orrery/engine"
)

// Spawn applies physics settings and creates every body, fixed then rail then free
// Body order in the world follows the file
func Spawn(world *engine.World, sc *Scenario) error {
	world.Resources.Physics.MinSeparation = sc.MinSeparation()
	world.Resources.Physics.Wrap = sc.Wrap()

	for _, b := range sc.Fixed {
		if _, err := world.SpawnFixed(b.Mass, b.Radius, b.Position.vec()); err != nil {
			return fmt.Errorf("fixed %q: %w", b.Name, err)
		}
	}
	for _, b := range sc.Rail {
		if _, err := world.SpawnRail(b.Mass, b.Radius, b.orbitalPaths()); err != nil {
			return fmt.Errorf("rail %q: %w", b.Name, err)
		}
	}
	for _, b := range sc.Free {
		if _, err := world.SpawnFree(b.Mass, b.Position.vec(), b.Velocity.vec(), b.vertices()); err != nil {
			return fmt.Errorf("free %q: %w", b.Name, err)
		}
	}

	log.Printf("scenario %q: %d fixed, %d rail, %d free, wrap=%s min_separation=%v",
		sc.Name, len(sc.Fixed), len(sc.Rail), len(sc.Free), sc.Wrap(), sc.MinSeparation())
	return nil
}
