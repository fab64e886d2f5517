package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/orrery/audio"
	"github.com/lixenwraith/orrery/core"
	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/input"
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/render/tui"
	"github.com/lixenwraith/orrery/scenario"
	"github.com/lixenwraith/orrery/system"
)

type options struct {
	scenario string
	tickRate int
	wrap     string
	forces   bool
	mute     bool
	debug    bool
	scale    int
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := pflag.NewFlagSet("orrery", pflag.ContinueOnError)
	fs.StringVarP(&o.scenario, "scenario", "s", "", "scenario TOML file (default: built-in scene)")
	fs.IntVar(&o.tickRate, "tick-rate", 0, "ticks per second (default: scenario value or 60)")
	fs.StringVar(&o.wrap, "wrap", "", "rail angle wrap policy: clamp or modulo (default: scenario value)")
	fs.BoolVarP(&o.forces, "forces", "f", false, "draw per-attractor force vectors on free bodies")
	fs.BoolVarP(&o.mute, "mute", "m", false, "disable audio cues")
	fs.BoolVarP(&o.debug, "debug", "d", false, "write logs to "+logDir+"/"+logFileName)
	fs.IntVar(&o.scale, "scale", 0, "initial scale level")

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.tickRate < 0 || o.tickRate > parameter.MaxTickRate {
		return o, fmt.Errorf("--tick-rate must be within [0, %d], got %d", parameter.MaxTickRate, o.tickRate)
	}
	if _, err := parameter.ParseWrapPolicy(o.wrap); err != nil {
		return o, fmt.Errorf("--wrap: %w", err)
	}
	return o, nil
}

// buildWorld loads the scenario and returns a world with every system registered
func buildWorld(o options) (*engine.World, *scenario.Scenario, error) {
	sc := scenario.Default()
	if o.scenario != "" {
		loaded, err := scenario.Load(o.scenario)
		if err != nil {
			return nil, nil, err
		}
		sc = loaded
	}

	world := engine.NewWorld()
	world.Resources.Scale.Level = o.scale
	if err := scenario.Spawn(world, sc); err != nil {
		return nil, nil, err
	}
	if o.wrap != "" {
		world.Resources.Physics.Wrap, _ = parameter.ParseWrapPolicy(o.wrap)
	}
	system.RegisterAll(world)

	return world, sc, nil
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	o, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "orrery: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(o.debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(o); err != nil {
		fmt.Fprintf(os.Stderr, "orrery: %v\n", err)
		os.Exit(1)
	}
}

func run(o options) error {
	world, sc, err := buildWorld(o)
	if err != nil {
		return err
	}

	keys, err := input.NewKeyTable(sc.Keys)
	if err != nil {
		return fmt.Errorf("scenario %q: %w", sc.Name, err)
	}

	rate := sc.Rate()
	if o.tickRate > 0 {
		rate = o.tickRate
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	core.SetCrashTerminal(screen)
	defer screen.Fini()
	screen.HideCursor()

	reg := world.Resources.Status

	audioCfg := audio.LoadAudioConfig()
	if o.mute {
		audioCfg.Enabled = false
	}
	audioEngine := audio.NewAudioEngine(audioCfg)
	if err := audioEngine.Start(); err != nil {
		log.Printf("audio: %v (continuing without audio)", err)
	}
	defer audioEngine.Stop()
	reg.Bools.Get("audio.muted").Store(!audioEngine.IsEnabled())

	renderer := tui.NewRenderer(screen, reg, o.forces)

	intents := make(chan engine.Intent, parameter.IntentQueueSize)
	// View intents act on the frontend only and never reach the world
	views := map[engine.Intent]func(){
		engine.IntentToggleForces: func() { renderer.ToggleForces() },
		engine.IntentToggleMute: func() {
			audioEngine.ToggleMute()
			reg.Bools.Get("audio.muted").Store(!audioEngine.IsEnabled())
		},
	}
	core.Go(func() {
		pollInput(screen, keys, views, intents)
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	lastScale := world.Resources.Scale.Level
	present := func(f engine.Frame) {
		if f.Scale != lastScale {
			cmd := engine.ScaleIncrease
			if f.Scale < lastScale {
				cmd = engine.ScaleDecrease
			}
			audioEngine.Click(cmd)
			lastScale = f.Scale
		}
		renderer.Draw(f)
	}

	log.Printf("orrery: scenario %q, %d bodies, %d ticks/s", sc.Name, world.EntityCount(), rate)
	scheduler := engine.NewClockScheduler(world, time.Second/time.Duration(rate))
	err = scheduler.Run(ctx, intents, present)
	log.Printf("orrery: stopped after %d ticks: %s", scheduler.TickCount(), reg.Summary())

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// pollInput translates terminal events into intents until the screen is finalized
// A full queue drops the intent rather than blocking the event loop
func pollInput(screen tcell.Screen, keys *input.KeyTable, views map[engine.Intent]func(), intents chan<- engine.Intent) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			intent := keys.Translate(ev)
			if intent == engine.IntentNone {
				continue
			}
			if intent.IsView() {
				if apply, ok := views[intent]; ok {
					apply()
				}
				continue
			}
			select {
			case intents <- intent:
			default:
				log.Printf("input: queue full, dropped %s", intent)
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
