// Package scenario loads body layouts from TOML and spawns them into a world
package scenario

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/orrery/component"
	"github.com/lixenwraith/orrery/parameter"
)

// ErrInvalidScenario wraps every decode and validation failure
var ErrInvalidScenario = errors.New("invalid scenario")

// Vec2 is a TOML [x, y] pair
type Vec2 [2]float64

func (v Vec2) vec() mgl64.Vec2 {
	return mgl64.Vec2{v[0], v[1]}
}

// Scenario is a complete initial layout plus run settings
type Scenario struct {
	Name     string  `toml:"name"`
	TickRate int     `toml:"tick_rate"`
	Physics  Physics `toml:"physics"`

	Fixed []FixedBody `toml:"fixed"`
	Rail  []RailBody  `toml:"rail"`
	Free  []FreeBody  `toml:"free"`

	// Keys maps a key (rune, alias or special key name) to an action name
	Keys map[string]string `toml:"keys"`
}

// Physics carries world tunables; zero values select defaults
type Physics struct {
	MinSeparation float64 `toml:"min_separation"`
	Wrap          string  `toml:"wrap"`
}

type FixedBody struct {
	Name     string  `toml:"name"`
	Mass     float64 `toml:"mass"`
	Radius   float64 `toml:"radius"`
	Position Vec2    `toml:"position"`
}

type RailBody struct {
	Name   string  `toml:"name"`
	Mass   float64 `toml:"mass"`
	Radius float64 `toml:"radius"`
	Paths  []Path  `toml:"path"`
}

// Path is one stacked orbit; Speed is turns per tick
type Path struct {
	Centre Vec2    `toml:"centre"`
	Radius float64 `toml:"radius"`
	Angle  float64 `toml:"angle"`
	Speed  float64 `toml:"speed"`
}

type FreeBody struct {
	Name     string  `toml:"name"`
	Mass     float64 `toml:"mass"`
	Position Vec2    `toml:"position"`
	Velocity Vec2    `toml:"velocity"`
	Shape    []Vec2  `toml:"shape"`
}

// Load reads and validates a scenario file
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes and validates scenario TOML
// Unknown keys are rejected
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	md, err := toml.Decode(string(data), &sc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalidScenario, strings.Join(keys, ", "))
	}

	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks every body against the spawn contract and the run settings
func (sc *Scenario) Validate() error {
	if sc.TickRate < 0 || sc.TickRate > parameter.MaxTickRate {
		return invalid("tick_rate", "must be within [0, %d], got %d", parameter.MaxTickRate, sc.TickRate)
	}
	if sc.Physics.MinSeparation < 0 || !finite(sc.Physics.MinSeparation) {
		return invalid("physics.min_separation", "must be positive, got %v", sc.Physics.MinSeparation)
	}
	if _, err := parameter.ParseWrapPolicy(sc.Physics.Wrap); err != nil {
		return invalid("physics.wrap", "%v", err)
	}

	if len(sc.Fixed)+len(sc.Rail)+len(sc.Free) == 0 {
		return invalid("bodies", "scenario has no bodies")
	}

	for i, b := range sc.Fixed {
		where := fmt.Sprintf("fixed[%d] %q", i, b.Name)
		if err := checkMassRadius(where, b.Mass, b.Radius); err != nil {
			return err
		}
		if !finiteVec(b.Position) {
			return invalid(where, "position must be finite")
		}
	}

	for i, b := range sc.Rail {
		where := fmt.Sprintf("rail[%d] %q", i, b.Name)
		if err := checkMassRadius(where, b.Mass, b.Radius); err != nil {
			return err
		}
		if len(b.Paths) == 0 {
			return invalid(where, "needs at least one [[rail.path]]")
		}
		for j, p := range b.Paths {
			if !finiteVec(p.Centre) || !finite(p.Radius) || !finite(p.Angle) || !finite(p.Speed) {
				return invalid(fmt.Sprintf("%s path[%d]", where, j), "values must be finite")
			}
			if p.Radius < 0 {
				return invalid(fmt.Sprintf("%s path[%d]", where, j), "radius must be non-negative, got %v", p.Radius)
			}
		}
	}

	for i, b := range sc.Free {
		where := fmt.Sprintf("free[%d] %q", i, b.Name)
		if err := checkMassRadius(where, b.Mass, 0); err != nil {
			return err
		}
		if !finiteVec(b.Position) || !finiteVec(b.Velocity) {
			return invalid(where, "position and velocity must be finite")
		}
		if len(b.Shape) < 3 {
			return invalid(where, "shape needs at least 3 vertices, got %d", len(b.Shape))
		}
		for _, v := range b.Shape {
			if !finiteVec(v) {
				return invalid(where, "shape vertices must be finite")
			}
		}
	}

	return nil
}

// Wrap returns the decoded wrap policy; valid after Validate
func (sc *Scenario) Wrap() parameter.WrapPolicy {
	p, _ := parameter.ParseWrapPolicy(sc.Physics.Wrap)
	return p
}

// MinSeparation returns the configured clamp distance or the default
func (sc *Scenario) MinSeparation() float64 {
	if sc.Physics.MinSeparation == 0 {
		return parameter.MinSeparation
	}
	return sc.Physics.MinSeparation
}

// Rate returns the configured tick rate or the default
func (sc *Scenario) Rate() int {
	if sc.TickRate == 0 {
		return parameter.TickRate
	}
	return sc.TickRate
}

// orbitalPaths converts decoded paths into component records
func (b RailBody) orbitalPaths() []component.OrbitalPath {
	paths := make([]component.OrbitalPath, len(b.Paths))
	for i, p := range b.Paths {
		paths[i] = component.OrbitalPath{
			Centre:        p.Centre.vec(),
			Radius:        p.Radius,
			Angle:         p.Angle,
			RotationSpeed: p.Speed,
		}
	}
	return paths
}

func (b FreeBody) vertices() []mgl64.Vec2 {
	verts := make([]mgl64.Vec2, len(b.Shape))
	for i, v := range b.Shape {
		verts[i] = v.vec()
	}
	return verts
}

func checkMassRadius(where string, mass, radius float64) error {
	if !(mass > 0) || !finite(mass) {
		return invalid(where, "mass must be positive and finite, got %v", mass)
	}
	if !(radius >= 0) || !finite(radius) {
		return invalid(where, "radius must be non-negative, got %v", radius)
	}
	return nil
}

func invalid(where, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidScenario, where, fmt.Sprintf(format, args...))
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func finiteVec(v Vec2) bool {
	return finite(v[0]) && finite(v[1])
}
