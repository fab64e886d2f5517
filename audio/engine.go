// Package audio plays short cues through the beep speaker
package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/parameter"
)

// speakerOnce guards speaker.Init, which may only run once per process
var speakerOnce sync.Once

// AudioEngine plays cues; without a device it stays in silent mode
type AudioEngine struct {
	config *AudioConfig

	running    atomic.Bool
	muted      atomic.Bool
	silentMode atomic.Bool

	played atomic.Uint64
}

// NewAudioEngine creates an audio engine
func NewAudioEngine(cfg ...*AudioConfig) *AudioEngine {
	config := DefaultAudioConfig()
	if len(cfg) > 0 && cfg[0] != nil {
		config = cfg[0]
	}

	ae := &AudioEngine{config: config}
	ae.muted.Store(!config.Enabled)
	return ae
}

// Start opens the speaker
// A missing device switches to silent mode and returns the cause
func (ae *AudioEngine) Start() error {
	if ae.running.Load() {
		return fmt.Errorf("audio engine already running")
	}
	ae.running.Store(true)

	if !ae.config.Enabled {
		ae.silentMode.Store(true)
		return nil
	}

	var initErr error
	speakerOnce.Do(func() {
		rate := beep.SampleRate(ae.config.SampleRate)
		initErr = speaker.Init(rate, rate.N(parameter.AudioBufferDuration))
	})
	if initErr != nil {
		ae.silentMode.Store(true)
		return fmt.Errorf("speaker init: %w", initErr)
	}
	return nil
}

// Stop silences playback
func (ae *AudioEngine) Stop() {
	if !ae.running.CompareAndSwap(true, false) {
		return
	}
	if !ae.silentMode.Load() {
		speaker.Clear()
	}
}

// Click plays the cue for a scale command; returns false when nothing was queued
func (ae *AudioEngine) Click(cmd engine.ScaleCommand) bool {
	if !ae.IsEnabled() {
		return false
	}
	st := CreateClickSound(ae.config, cmd)
	if st == nil {
		return false
	}
	speaker.Play(st)
	ae.played.Add(1)
	return true
}

// ToggleMute toggles mute state, returns true if now enabled
func (ae *AudioEngine) ToggleMute() bool {
	newMute := !ae.muted.Load()
	ae.muted.Store(newMute)
	return !newMute
}

// IsMuted returns current mute state
func (ae *AudioEngine) IsMuted() bool {
	return ae.muted.Load()
}

// IsEnabled returns true if running, unmuted and backed by a device
func (ae *AudioEngine) IsEnabled() bool {
	return ae.running.Load() && !ae.muted.Load() && !ae.silentMode.Load()
}

// Played returns the number of cues queued
func (ae *AudioEngine) Played() uint64 {
	return ae.played.Load()
}
