package engine

import (
	"context"
	"log"
	"sync/atomic"
	"time"
)

// ClockScheduler drives World.Update on a fixed tick
// Ticks run on the caller's goroutine; intents arriving between ticks are coalesced
type ClockScheduler struct {
	world    *World
	interval time.Duration

	paused    atomic.Bool
	tickCount atomic.Uint64

	statPaused *atomic.Bool
}

// NewClockScheduler creates a scheduler ticking every interval
func NewClockScheduler(world *World, interval time.Duration) *ClockScheduler {
	return &ClockScheduler{
		world:      world,
		interval:   interval,
		statPaused: world.Resources.Status.Bools.Get("engine.paused"),
	}
}

// IsPaused reports whether ticks are currently suspended
func (cs *ClockScheduler) IsPaused() bool {
	return cs.paused.Load()
}

// SetPaused suspends or resumes ticking
func (cs *ClockScheduler) SetPaused(paused bool) {
	cs.paused.Store(paused)
	cs.statPaused.Store(paused)
}

// TickCount returns ticks executed by this scheduler
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// Run ticks until ctx is done or an IntentQuit arrives
// present is called with the initial frame, after every tick, and on pause toggles
// The latest zoom intent received between two ticks becomes that tick's scale command;
// zoom intents received while paused are dropped
func (cs *ClockScheduler) Run(ctx context.Context, intents <-chan Intent, present func(Frame)) error {
	ticker := time.NewTicker(cs.interval)
	defer ticker.Stop()

	pending := ScaleNone
	last := cs.world.Snapshot()
	present(last)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case in, ok := <-intents:
			if !ok {
				// Input source gone; keep ticking until ctx ends
				intents = nil
				continue
			}
			switch in {
			case IntentQuit:
				return nil
			case IntentPause:
				cs.SetPaused(!cs.IsPaused())
				log.Printf("scheduler: paused=%v at tick %d", cs.IsPaused(), last.Tick)
				present(last)
			case IntentZoomIn, IntentZoomOut:
				if !cs.IsPaused() {
					pending = in.ScaleCommand()
				}
			}

		case <-ticker.C:
			if cs.IsPaused() {
				pending = ScaleNone
				continue
			}
			last = cs.world.Update(TickInput{Scale: pending})
			pending = ScaleNone
			cs.tickCount.Add(1)
			present(last)
		}
	}
}
