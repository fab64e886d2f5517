// Package tui draws frames onto a tcell screen
package tui

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/orrery/component"
	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/render"
	"github.com/lixenwraith/orrery/status"
)

const (
	// Terminal cells are roughly twice as tall as wide
	cellAspect = 2.0

	// forceArrowCells is the screen length of the strongest force on a body
	forceArrowCells = 6.0

	// Margin around the initial scene extent when fitting the base scale
	fitMargin = 1.1
)

// Renderer draws bodies, force vectors and a status line
// It reads frames only and never touches the world
type Renderer struct {
	screen     tcell.Screen
	showForces atomic.Bool

	// Level-0 world extent, fixed at the first frame
	extent float64

	statPaused   *atomic.Bool
	statClamped  *atomic.Int64
	statMaxSpeed *status.AtomicFloat
	statMuted    *atomic.Bool
}

// NewRenderer creates a renderer reading HUD values from reg
func NewRenderer(screen tcell.Screen, reg *status.Registry, showForces bool) *Renderer {
	r := &Renderer{
		screen:       screen,
		statPaused:   reg.Bools.Get("engine.paused"),
		statClamped:  reg.Ints.Get("gravity.clamped_pairs"),
		statMaxSpeed: reg.Floats.Get("diag.max_speed"),
		statMuted:    reg.Bools.Get("audio.muted"),
	}
	r.showForces.Store(showForces)
	return r
}

// ToggleForces switches force vector drawing, returns the new state
// Safe to call from the input goroutine
func (r *Renderer) ToggleForces() bool {
	for {
		old := r.showForces.Load()
		if r.showForces.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Draw renders one frame and shows it
func (r *Renderer) Draw(f engine.Frame) {
	w, h := r.screen.Size()
	r.screen.Clear()

	if r.extent == 0 {
		r.extent = sceneExtent(f) * fitMargin
	}
	// Last row is the status line
	cam := render.Camera{
		Width:  float64(w),
		Height: float64(h - 1),
		Level:  f.Scale,
		Aspect: cellAspect,
	}
	cam.Base = render.FitBase(cam.Width, cam.Height, cellAspect, r.extent)

	showForces := r.showForces.Load()
	hues := render.Palette(len(f.Bodies))
	for i, b := range f.Bodies {
		style := styleOf(render.BodyColor(b.Kind, hues[i]))

		if len(b.Shape) > 0 {
			r.drawPolygon(cam, b, style)
		} else {
			r.drawCircle(cam, b, style)
		}

		if showForces && len(b.Forces) > 0 {
			r.drawForces(cam, b)
		}
	}

	r.drawStatus(f, w, h)
	r.screen.Show()
}

func (r *Renderer) drawCircle(cam render.Camera, b engine.BodyView, style tcell.Style) {
	if !cam.Visible(b.Pos, b.Radius) {
		return
	}

	cx, cy := cam.WorldToScreen(b.Pos)
	if b.Radius*cam.Scale() < 1 {
		r.set(cx, cy, glyphOf(b.Kind), style)
		return
	}

	for _, p := range render.CirclePoints(b.Pos, b.Radius, render.CircleSegments) {
		x, y := cam.WorldToScreen(p)
		r.set(x, y, '·', style)
	}
	r.set(cx, cy, glyphOf(b.Kind), style)
}

func (r *Renderer) drawPolygon(cam render.Camera, b engine.BodyView, style tcell.Style) {
	if !cam.Visible(b.Pos, b.Radius) {
		return
	}

	outline := render.ClosedPolygon(b.Pos, b.Shape)
	for i := 0; i+1 < len(outline); i++ {
		x0, y0 := cam.WorldToScreen(outline[i])
		x1, y1 := cam.WorldToScreen(outline[i+1])
		r.line(cam, mgl64.Vec2{x0, y0}, mgl64.Vec2{x1, y1}, '#', style)
	}
}

// line draws the on-screen part of a segment in screen coordinates
// Edges grow with zoom, so only the clipped span is rasterized
func (r *Renderer) line(cam render.Camera, a, b mgl64.Vec2, ch rune, style tcell.Style) {
	// Half-open [0, w) x [0, h): any point inside floors to a screen cell
	hi := mgl64.Vec2{math.Nextafter(cam.Width, 0), math.Nextafter(cam.Height, 0)}
	a, b, ok := render.ClipSegment(a, b, mgl64.Vec2{}, hi)
	if !ok {
		return
	}
	render.Line(cell(a.X()), cell(a.Y()), cell(b.X()), cell(b.Y()), func(x, y int) {
		r.screen.SetContent(x, y, ch, nil, style)
	})
}

// drawForces draws each contribution as a ray scaled against the strongest one
func (r *Renderer) drawForces(cam render.Camera, b engine.BodyView) {
	var peak float64
	for _, f := range b.Forces {
		peak = math.Max(peak, f.Len())
	}
	if peak == 0 {
		return
	}

	style := styleOf(render.ColorForce)
	x0, y0 := cam.WorldToScreen(b.Pos)
	for _, f := range b.Forces {
		n := f.Len()
		if n == 0 {
			continue
		}
		dir := f.Mul(1 / n)
		length := forceArrowCells * math.Max(n/peak, 0.2)
		end := mgl64.Vec2{x0 + dir.X()*length*cellAspect, y0 + dir.Y()*length}
		r.line(cam, mgl64.Vec2{x0, y0}, end, '.', style)
	}
}

func (r *Renderer) drawStatus(f engine.Frame, w, h int) {
	line := fmt.Sprintf(" tick %d | scale %+d (x%g) | bodies %d | clamped %d | vmax %.3f",
		f.Tick, f.Scale, render.Zoom(f.Scale), len(f.Bodies), r.statClamped.Load(), r.statMaxSpeed.Get())
	if r.statPaused.Load() {
		line += " | PAUSED"
	}
	if r.statMuted.Load() {
		line += " | muted"
	}

	style := styleOf(render.ColorStatus)
	x := 0
	for _, ch := range line {
		if x >= w {
			break
		}
		r.screen.SetContent(x, h-1, ch, nil, style)
		x++
	}
}

func (r *Renderer) set(x, y float64, ch rune, style tcell.Style) {
	r.screen.SetContent(cell(x), cell(y), ch, nil, style)
}

// sceneExtent is the farthest body edge from the origin
func sceneExtent(f engine.Frame) float64 {
	var ext float64
	for _, b := range f.Bodies {
		ext = math.Max(ext, b.Pos.Len()+b.Radius)
	}
	return math.Max(ext, 1)
}

func glyphOf(k component.Kind) rune {
	switch k {
	case component.KindFixed:
		return '@'
	case component.KindRail:
		return 'o'
	default:
		return '^'
	}
}

func styleOf(c colorful.Color) tcell.Style {
	r, g, b := c.Clamped().RGB255()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
}

func cell(v float64) int {
	return int(math.Floor(v))
}
