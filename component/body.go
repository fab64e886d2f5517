package component

// Kind is the closed set of body motion variants
// Exactly one kind record (Fixed, Rail or Free) exists per body and matches Kind
type Kind uint8

const (
	KindFixed Kind = iota // Never moves
	KindRail              // Position prescribed by stacked orbital paths
	KindFree              // Accelerates under gravity, integrates its own motion
)

func (k Kind) String() string {
	switch k {
	case KindFixed:
		return "fixed"
	case KindRail:
		return "rail"
	case KindFree:
		return "free"
	default:
		return "unknown"
	}
}

// BodyComponent holds attributes shared by every body
type BodyComponent struct {
	Kind   Kind
	Mass   float64 // > 0, validated at spawn
	Radius float64 // Presentation only
}
