package parameter

import "fmt"

// GravitationalConstant in simulation units (position units, mass units, ticks)
const GravitationalConstant = 6.67e-11

// MinSeparation is the distance floor used in inverse-square attraction
// Separations below it are clamped; a zero separation contributes no force
const MinSeparation = 1.0

// ScaleStep is the scale level change per increase/decrease command
const ScaleStep = 1

// WrapPolicy selects how rail angles are folded back into [0, 2π)
type WrapPolicy uint8

const (
	// WrapClamp resets at the boundary: >= 2π becomes 0, < 0 becomes just below 2π
	// Overshoot beyond one full turn per tick is not folded
	WrapClamp WrapPolicy = iota
	// WrapModulo folds any finite angle into [0, 2π) with true modulo
	WrapModulo
)

func (p WrapPolicy) String() string {
	switch p {
	case WrapClamp:
		return "clamp"
	case WrapModulo:
		return "modulo"
	default:
		return fmt.Sprintf("WrapPolicy(%d)", uint8(p))
	}
}

// ParseWrapPolicy maps a config/flag name to a WrapPolicy; empty selects WrapClamp
func ParseWrapPolicy(name string) (WrapPolicy, error) {
	switch name {
	case "", "clamp":
		return WrapClamp, nil
	case "modulo":
		return WrapModulo, nil
	default:
		return WrapClamp, fmt.Errorf("unknown wrap policy %q (want clamp or modulo)", name)
	}
}
