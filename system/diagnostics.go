package system

import (
	"sync/atomic"

	"github.com/lixenwraith/orrery/component"
	"github.com/lixenwraith/orrery/core"
	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/status"
)

const diagnosticsSampleInterval = 60

// DiagnosticsSystem samples store counts, kind-record consistency and peak speed
type DiagnosticsSystem struct {
	world *engine.World

	tickCounter int64

	statBodyCount  *atomic.Int64
	statFixedCount *atomic.Int64
	statRailCount  *atomic.Int64
	statFreeCount  *atomic.Int64

	// Bodies whose Kind has no matching record or extra records
	statKindMismatch *atomic.Int64

	statMaxSpeed *status.AtomicFloat
}

// NewDiagnosticsSystem creates a new diagnostics system
func NewDiagnosticsSystem(world *engine.World) engine.System {
	reg := world.Resources.Status
	return &DiagnosticsSystem{
		world:            world,
		statBodyCount:    reg.Ints.Get("store.body.count"),
		statFixedCount:   reg.Ints.Get("store.fixed.count"),
		statRailCount:    reg.Ints.Get("store.rail.count"),
		statFreeCount:    reg.Ints.Get("store.free.count"),
		statKindMismatch: reg.Ints.Get("consistency.kind_mismatch"),
		statMaxSpeed:     reg.Floats.Get("diag.max_speed"),
	}
}

func (s *DiagnosticsSystem) Name() string {
	return "diagnostics"
}

func (s *DiagnosticsSystem) Priority() int {
	return parameter.PriorityDiagnostics
}

func (s *DiagnosticsSystem) Update(t engine.Tick) {
	s.tickCounter++

	s.collectMaxSpeed()

	// First tick and then sampled
	if s.tickCounter != 1 && s.tickCounter%diagnosticsSampleInterval != 0 {
		return
	}

	c := s.world.Components
	s.statBodyCount.Store(int64(c.Body.CountEntity()))
	s.statFixedCount.Store(int64(c.Fixed.CountEntity()))
	s.statRailCount.Store(int64(c.Rail.CountEntity()))
	s.statFreeCount.Store(int64(c.Free.CountEntity()))
	s.collectConsistencyChecks()
}

func (s *DiagnosticsSystem) collectMaxSpeed() {
	var peak float64
	s.world.Components.Free.Each(func(_ core.Entity, f component.FreeComponent) {
		if v := f.Vel.Len(); v > peak {
			peak = v
		}
	})
	s.statMaxSpeed.Set(peak)
}

func (s *DiagnosticsSystem) collectConsistencyChecks() {
	c := s.world.Components
	var mismatch int64

	c.Body.Each(func(e core.Entity, body component.BodyComponent) {
		records := 0
		matched := false
		if c.Fixed.HasComponent(e) {
			records++
			matched = matched || body.Kind == component.KindFixed
		}
		if c.Rail.HasComponent(e) {
			records++
			matched = matched || body.Kind == component.KindRail
		}
		if c.Free.HasComponent(e) {
			records++
			matched = matched || body.Kind == component.KindFree
		}
		if records != 1 || !matched {
			mismatch++
		}
	})

	s.statKindMismatch.Store(mismatch)
}
