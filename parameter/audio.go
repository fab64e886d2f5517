package parameter

import "time"

// Audio cue timing
const (
	AudioSampleRate = 44100

	// AudioBufferDuration sizes the speaker buffer
	AudioBufferDuration = 100 * time.Millisecond

	ClickDuration = 40 * time.Millisecond
	ClickAttack   = 2 * time.Millisecond
	ClickRelease  = 30 * time.Millisecond

	// Zoom in rises, zoom out falls
	ClickFreqIncrease = 1320.0
	ClickFreqDecrease = 660.0

	DefaultMasterVolume = 0.5
)
