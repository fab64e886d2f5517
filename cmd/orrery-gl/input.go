package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/input"
)

// Window keys that have no printable rune
var specialKeys = map[ebiten.Key]engine.Intent{
	ebiten.KeyArrowUp:   engine.IntentZoomIn,
	ebiten.KeyArrowDown: engine.IntentZoomOut,
	ebiten.KeyEscape:    engine.IntentQuit,
}

// pollIntents collects the intents for keys pressed since the last update
// Printable keys go through the shared key table so TOML overrides apply
func pollIntents(keys *input.KeyTable, runes []rune) ([]engine.Intent, []rune) {
	var out []engine.Intent

	runes = ebiten.AppendInputChars(runes[:0])
	for _, r := range runes {
		if i := keys.Rune(r); i != engine.IntentNone {
			out = append(out, i)
		}
	}
	for k, i := range specialKeys {
		if inpututil.IsKeyJustPressed(k) {
			out = append(out, i)
		}
	}
	return out, runes
}

// tickControl is the outcome of one update's intents
type tickControl struct {
	scale        engine.ScaleCommand
	togglePause  bool
	toggleForces bool
	toggleMute   bool
	quit         bool
}

// coalesce folds intents in arrival order: the latest zoom wins,
// pause and view toggles flip per intent, zoom while paused is dropped
func coalesce(intents []engine.Intent, paused bool) tickControl {
	var c tickControl
	for _, in := range intents {
		switch in {
		case engine.IntentQuit:
			c.quit = true
		case engine.IntentPause:
			c.togglePause = !c.togglePause
			paused = !paused
			if paused {
				c.scale = engine.ScaleNone
			}
		case engine.IntentZoomIn, engine.IntentZoomOut:
			if !paused {
				c.scale = in.ScaleCommand()
			}
		case engine.IntentToggleForces:
			c.toggleForces = !c.toggleForces
		case engine.IntentToggleMute:
			c.toggleMute = !c.toggleMute
		}
	}
	return c
}
