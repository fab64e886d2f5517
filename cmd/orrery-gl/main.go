package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/orrery/audio"
	"github.com/lixenwraith/orrery/core"
	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/input"
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/scenario"
	"github.com/lixenwraith/orrery/system"
)

const (
	windowWidth      = 1280
	windowHeight     = 800
	forceArrowPixels = 40.0
)

func main() {
	var (
		scenarioPath string
		tickRate     int
		wrap         string
		forces       bool
		mute         bool
		debug        bool
		scale        int
	)
	pflag.StringVarP(&scenarioPath, "scenario", "s", "", "scenario TOML file (default: built-in scene)")
	pflag.IntVar(&tickRate, "tick-rate", 0, "ticks per second (default: scenario value or 60)")
	pflag.StringVar(&wrap, "wrap", "", "rail angle wrap policy: clamp or modulo")
	pflag.BoolVarP(&forces, "forces", "f", false, "draw force vectors (toggle with f)")
	pflag.BoolVarP(&mute, "mute", "m", false, "disable audio cues")
	pflag.BoolVarP(&debug, "debug", "d", false, "log to stderr")
	pflag.IntVar(&scale, "scale", 0, "initial scale level")
	pflag.Parse()

	// The window leaves stderr free
	if !debug {
		log.SetOutput(io.Discard)
	}

	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := run(scenarioPath, tickRate, wrap, forces, mute, scale); err != nil {
		fmt.Fprintf(os.Stderr, "orrery-gl: %v\n", err)
		os.Exit(1)
	}
}

func run(scenarioPath string, tickRate int, wrap string, forces, mute bool, scale int) error {
	sc := scenario.Default()
	if scenarioPath != "" {
		loaded, err := scenario.Load(scenarioPath)
		if err != nil {
			return err
		}
		sc = loaded
	}

	world := engine.NewWorld()
	world.Resources.Scale.Level = scale
	if err := scenario.Spawn(world, sc); err != nil {
		return err
	}
	if wrap != "" {
		policy, err := parameter.ParseWrapPolicy(wrap)
		if err != nil {
			return fmt.Errorf("--wrap: %w", err)
		}
		world.Resources.Physics.Wrap = policy
	}
	system.RegisterAll(world)

	keys, err := input.NewKeyTable(sc.Keys)
	if err != nil {
		return fmt.Errorf("scenario %q: %w", sc.Name, err)
	}

	rate := sc.Rate()
	if tickRate > 0 {
		rate = min(tickRate, parameter.MaxTickRate)
	}

	cfg := audio.LoadAudioConfig()
	if mute {
		cfg.Enabled = false
	}
	ae := audio.NewAudioEngine(cfg)
	if err := ae.Start(); err != nil {
		log.Printf("audio: %v (continuing without audio)", err)
	}
	defer ae.Stop()

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("orrery - " + sc.Name)
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(rate)

	err = ebiten.RunGame(NewGame(world, keys, ae, forces))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
