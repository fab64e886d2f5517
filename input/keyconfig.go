package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orrery/engine"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space": ' ',
	"plus":  '+',
	"minus": '-',
	"equal": '=',
}

// Lowercased tcell key names ("up", "esc", "ctrl-c") to keys
var nameToKey = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		if k == tcell.KeyRune {
			continue
		}
		m[strings.ToLower(name)] = k
	}
	return m
}()

// LoadKeyConfig parses a key → action table into a sparse override KeyTable
// Keys are single characters, rune aliases, or tcell key names
// Returns error on unknown action names or key names
func LoadKeyConfig(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]engine.Intent),
		Runes:       make(map[rune]engine.Intent),
	}

	for keyStr, actionName := range bindings {
		intent, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
		}

		if r, ok := resolveRune(keyStr); ok {
			kt.Runes[r] = intent
			continue
		}
		if k, ok := nameToKey[strings.ToLower(keyStr)]; ok {
			kt.SpecialKeys[k] = intent
			continue
		}
		return nil, fmt.Errorf("[keys] unknown key name: %q", keyStr)
	}

	return kt, nil
}

// resolveRune converts a TOML key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], true
	}
	return 0, false
}

func resolveAction(name string) (engine.Intent, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	intent, ok := ActionIntent(name)
	if !ok {
		return engine.IntentNone, fmt.Errorf("unknown action: %q", name)
	}
	return intent, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden
// Override entries bound to "none" delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	mergeMap(result.Runes, override.Runes)
	mergeMap(result.SpecialKeys, override.SpecialKeys)
	return result
}

func mergeMap[K comparable](base, override map[K]engine.Intent) {
	for k, v := range override {
		if v == engine.IntentNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}

// NewKeyTable builds the default table with optional overrides applied
func NewKeyTable(bindings map[string]string) (*KeyTable, error) {
	base := DefaultKeyTable()
	if len(bindings) == 0 {
		return base, nil
	}
	override, err := LoadKeyConfig(bindings)
	if err != nil {
		return nil, err
	}
	return MergeKeyTable(base, override), nil
}
