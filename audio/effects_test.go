package audio

import (
	"testing"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/parameter"
)

// constant emits 1.0 forever
type constant struct{}

func (constant) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i] = [2]float64{1, 1}
	}
	return len(samples), true
}

func (constant) Err() error { return nil }

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n == 0 {
			return out
		}
	}
}

func TestEnvelope_ShapeAndLength(t *testing.T) {
	rate := beep.SampleRate(1000)
	env := NewEnvelope(constant{}, parameter.ClickDuration, parameter.ClickAttack, parameter.ClickRelease, rate)

	out := drain(env)
	want := rate.N(parameter.ClickDuration)
	if len(out) != want {
		t.Fatalf("Expected %d samples, got %d", want, len(out))
	}
	if out[0][0] != 0 {
		t.Errorf("Expected silent first sample during attack, got %v", out[0][0])
	}
	for i, s := range out {
		if s[0] < 0 || s[0] > 1 {
			t.Fatalf("Sample %d: expected volume in [0,1], got %v", i, s[0])
		}
	}
	if last := out[len(out)-1][0]; last >= 1 {
		t.Errorf("Expected release to attenuate the tail, got %v", last)
	}
}

func TestCreateClickSound(t *testing.T) {
	cfg := DefaultAudioConfig()
	want := beep.SampleRate(cfg.SampleRate).N(parameter.ClickDuration)

	if CreateClickSound(cfg, engine.ScaleNone) != nil {
		t.Error("Expected no sound for ScaleNone")
	}
	for _, cmd := range []engine.ScaleCommand{engine.ScaleIncrease, engine.ScaleDecrease} {
		s := CreateClickSound(cfg, cmd)
		if s == nil {
			t.Fatalf("Expected sound for %s", cmd)
		}
		if got := len(drain(s)); got != want {
			t.Errorf("%s: expected click length %d, got %d", cmd, want, got)
		}
	}
}

func TestAudioEngine_DisabledIsSilent(t *testing.T) {
	ae := NewAudioEngine(&AudioConfig{Enabled: false, SampleRate: 44100, MasterVolume: 1})
	if err := ae.Start(); err != nil {
		t.Fatalf("Expected nil start error when disabled, got %v", err)
	}
	defer ae.Stop()

	if ae.IsEnabled() {
		t.Error("Expected disabled engine")
	}
	if ae.Click(engine.ScaleIncrease) {
		t.Error("Expected click to be dropped")
	}
	if ae.Played() != 0 {
		t.Errorf("Expected 0 played, got %d", ae.Played())
	}
	if err := ae.Start(); err == nil {
		t.Error("Expected error on second Start")
	}
}

func TestLoadAudioConfig_Env(t *testing.T) {
	t.Setenv("ORRERY_AUDIO_ENABLED", "false")
	t.Setenv("ORRERY_MASTER_VOLUME", "250")

	cfg := LoadAudioConfig()
	if cfg.Enabled {
		t.Error("Expected audio disabled from env")
	}
	if cfg.MasterVolume != 1 {
		t.Errorf("Expected volume clamped to 1, got %v", cfg.MasterVolume)
	}
}
