package engine

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/orrery/core"
)

// World contains all bodies, their components and the ordered system list
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Resources  Resource
	Components ComponentStore
	allStores  []AnyStore

	systems     []System
	updateMutex sync.Mutex

	tick      uint64
	statTicks *atomic.Int64
}

// NewWorld creates an empty world with all component stores initialized
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Resources:    newResource(),
		systems:      make([]System, 0),
	}

	initComponentStores(w)
	w.statTicks = w.Resources.Status.Ints.Get("engine.ticks")

	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// Clear removes all entities and components and resets the tick counter
func (w *World) Clear() {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	w.mu.Lock()
	defer w.mu.Unlock()

	w.nextEntityID = 1
	w.tick = 0
	w.statTicks.Store(0)
	for _, s := range w.allStores {
		s.ClearAllComponent()
	}
}

// EntityCount returns the number of spawned bodies
func (w *World) EntityCount() int {
	return w.Components.Body.CountEntity()
}

// AddSystem registers a system, keeping the list sorted by priority
// Systems with equal priority keep registration order
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// TickNumber returns the number of completed ticks
func (w *World) TickNumber() uint64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.tick
}

// Update runs one full tick: every system in priority order, then a snapshot
// Each system completes for the whole population before the next starts
func (w *World) Update(in TickInput) Frame {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()

	w.mu.Lock()
	w.tick++
	t := Tick{Number: w.tick, Input: in}
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	w.mu.Unlock()

	for _, system := range systems {
		system.Update(t)
	}
	w.statTicks.Store(int64(t.Number))

	return w.snapshot(t.Number)
}

// Snapshot returns the current frame without advancing the simulation
func (w *World) Snapshot() Frame {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	return w.snapshot(w.TickNumber())
}
