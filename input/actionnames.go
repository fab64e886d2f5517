package input

import "github.com/lixenwraith/orrery/engine"

// actionRegistry maps canonical action names to intents
// Used by the keymap loader to resolve TOML action strings
var actionRegistry = map[string]engine.Intent{
	// Unbind sentinel
	"none": engine.IntentNone,

	"zoom_in":  engine.IntentZoomIn,
	"zoom_out": engine.IntentZoomOut,
	"pause":    engine.IntentPause,
	"quit":     engine.IntentQuit,

	"toggle_forces": engine.IntentToggleForces,
	"toggle_mute":   engine.IntentToggleMute,
}

// ActionIntent resolves an action name
func ActionIntent(name string) (engine.Intent, bool) {
	i, ok := actionRegistry[name]
	return i, ok
}
