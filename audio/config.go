package audio

import (
	"os"
	"strconv"

	"github.com/lixenwraith/orrery/parameter"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled      bool
	SampleRate   int
	MasterVolume float64
}

// DefaultAudioConfig returns enabled playback at the default rate and volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		SampleRate:   parameter.AudioSampleRate,
		MasterVolume: parameter.DefaultMasterVolume,
	}
}

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv("ORRERY_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// 0-100 converted to 0.0-1.0
	if volume := os.Getenv("ORRERY_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	return cfg
}
