package scenario

import (
	_ "embed"
	"fmt"
)

//go:embed default.toml
var defaultTOML []byte

// Default returns the built-in scene
func Default() *Scenario {
	sc, err := Parse(defaultTOML)
	if err != nil {
		panic(fmt.Sprintf("embedded default scenario: %v", err))
	}
	return sc
}
