// Package input translates key events into engine intents
package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orrery/engine"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]engine.Intent

	// Printable runes
	Runes map[rune]engine.Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]engine.Intent{
			tcell.KeyUp:     engine.IntentZoomIn,
			tcell.KeyDown:   engine.IntentZoomOut,
			tcell.KeyEscape: engine.IntentQuit,
			tcell.KeyCtrlC:  engine.IntentQuit,
		},
		Runes: map[rune]engine.Intent{
			'+': engine.IntentZoomIn,
			'=': engine.IntentZoomIn,
			'-': engine.IntentZoomOut,
			'_': engine.IntentZoomOut,
			'p': engine.IntentPause,
			' ': engine.IntentPause,
			'q': engine.IntentQuit,
			'f': engine.IntentToggleForces,
			'm': engine.IntentToggleMute,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}

// Translate resolves a tcell key event; unbound keys yield IntentNone
func (kt *KeyTable) Translate(ev *tcell.EventKey) engine.Intent {
	if ev.Key() == tcell.KeyRune {
		return kt.Rune(ev.Rune())
	}
	return kt.SpecialKeys[ev.Key()]
}

// Rune resolves a printable rune binding
func (kt *KeyTable) Rune(r rune) engine.Intent {
	return kt.Runes[r]
}
