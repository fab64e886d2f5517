package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/orrery/audio"
	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/input"
	"github.com/lixenwraith/orrery/render"
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

var background = color.RGBA{8, 8, 16, 255}

// Game adapts the world to ebiten's Update/Draw/Layout loop
// ebiten calls Update at the configured TPS; each call is one world tick
type Game struct {
	world *engine.World
	keys  *input.KeyTable
	audio *audio.AudioEngine

	frame      engine.Frame
	paused     bool
	showForces bool

	camera render.Camera
	runes  []rune
}

func NewGame(world *engine.World, keys *input.KeyTable, ae *audio.AudioEngine, showForces bool) *Game {
	return &Game{
		world:      world,
		keys:       keys,
		audio:      ae,
		frame:      world.Snapshot(),
		showForces: showForces,
		camera:     render.NewCamera(windowWidth, windowHeight),
		runes:      make([]rune, 0, 8),
	}
}

func (g *Game) Update() error {
	var intents []engine.Intent
	intents, g.runes = pollIntents(g.keys, g.runes)
	ctl := coalesce(intents, g.paused)
	if ctl.quit {
		return ebiten.Termination
	}
	if ctl.toggleForces {
		g.showForces = !g.showForces
	}
	if ctl.toggleMute {
		g.audio.ToggleMute()
	}
	if ctl.togglePause {
		g.paused = !g.paused
		g.world.Resources.Status.Bools.Get("engine.paused").Store(g.paused)
	}
	if g.paused {
		return nil
	}

	prev := g.frame.Scale
	g.frame = g.world.Update(engine.TickInput{Scale: ctl.scale})
	if g.frame.Scale != prev {
		g.audio.Click(ctl.scale)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	cam := g.camera
	cam.Level = g.frame.Scale

	hues := render.Palette(len(g.frame.Bodies))
	for i, b := range g.frame.Bodies {
		if !cam.Visible(b.Pos, b.Radius) {
			continue
		}
		clr := rgba(render.BodyColor(b.Kind, hues[i]))

		if len(b.Shape) > 0 {
			outline := render.ClosedPolygon(b.Pos, b.Shape)
			for j := 0; j+1 < len(outline); j++ {
				x0, y0 := cam.WorldToScreen(outline[j])
				x1, y1 := cam.WorldToScreen(outline[j+1])
				vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, clr, true)
			}
		} else {
			x, y := cam.WorldToScreen(b.Pos)
			r := max(b.Radius*cam.Scale(), 1)
			vector.StrokeCircle(screen, float32(x), float32(y), float32(r), 1, clr, true)
		}

		if g.showForces {
			drawForces(screen, cam, b)
		}
	}

	hud := fmt.Sprintf("tick %d  scale %+d (x%g)  bodies %d  clamped %d",
		g.frame.Tick, g.frame.Scale, render.Zoom(g.frame.Scale), len(g.frame.Bodies),
		g.world.Resources.Status.Ints.Get("gravity.clamped_pairs").Load())
	if g.paused {
		hud += "  PAUSED"
	}
	if g.audio.IsMuted() {
		hud += "  muted"
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(8, 8)
	op.ColorScale.ScaleWithColor(rgba(render.ColorStatus))
	text.Draw(screen, hud, hudFace, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.camera.Width = float64(outsideWidth)
	g.camera.Height = float64(outsideHeight)
	return outsideWidth, outsideHeight
}

// drawForces draws each contribution as a ray scaled against the strongest one
func drawForces(screen *ebiten.Image, cam render.Camera, b engine.BodyView) {
	var peak float64
	for _, f := range b.Forces {
		peak = max(peak, f.Len())
	}
	if peak == 0 {
		return
	}

	clr := rgba(render.ColorForce)
	x0, y0 := cam.WorldToScreen(b.Pos)
	for _, f := range b.Forces {
		n := f.Len()
		if n == 0 {
			continue
		}
		end := f.Mul(forceArrowPixels * max(n/peak, 0.2) / n)
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x0+end.X()), float32(y0+end.Y()), 1, clr, true)
	}
}

func rgba(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{r, g, b, 255}
}
