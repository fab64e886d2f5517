package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/orrery/component"
)

// Palette returns n colours with evenly spaced HCL hues at fixed chroma and luminance
func Palette(n int) []colorful.Color {
	out := make([]colorful.Color, n)
	for i := range out {
		h := 360 * float64(i) / float64(max(n, 1))
		out[i] = colorful.Hcl(h, 0.6, 0.75).Clamped()
	}
	return out
}

// Per-kind base colours
var (
	ColorFixed  = colorful.Color{R: 1, G: 0.85, B: 0.3}
	ColorRail   = colorful.Color{R: 0.4, G: 0.7, B: 1}
	ColorFree   = colorful.Color{R: 0.9, G: 0.9, B: 0.9}
	ColorForce  = colorful.Color{R: 1, G: 0.3, B: 0.3}
	ColorStatus = colorful.Color{R: 0.6, G: 0.6, B: 0.6}
)

// KindColor returns the base colour for a body kind
func KindColor(k component.Kind) colorful.Color {
	switch k {
	case component.KindFixed:
		return ColorFixed
	case component.KindRail:
		return ColorRail
	default:
		return ColorFree
	}
}

// BodyColor blends the kind colour with a palette hue so bodies of one kind stay distinguishable
func BodyColor(k component.Kind, hue colorful.Color) colorful.Color {
	return KindColor(k).BlendHcl(hue, 0.35).Clamped()
}
