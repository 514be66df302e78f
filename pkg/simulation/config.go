package simulation

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoBodies      = errors.New("scenario has no bodies")
	ErrUnknownFormat = errors.New("unknown scenario format")
)

// --- Scenario file layout ---

// Scenario is the initial configuration of a run. The body list is fixed
// for the lifetime of the Simulator built from it.
type Scenario struct {
	Name      string       `json:"name" toml:"name" yaml:"name"`
	Seed      uint64       `json:"seed,omitempty" toml:"seed,omitempty" yaml:"seed,omitempty"`
	AutoOrbit bool         `json:"auto_orbit,omitempty" toml:"auto_orbit,omitempty" yaml:"auto_orbit,omitempty"`
	Bodies    []BodyConfig `json:"bodies" toml:"bodies" yaml:"bodies"`
}

type BodyConfig struct {
	Pos  [2]float64 `json:"pos" toml:"pos" yaml:"pos"`
	Vel  [2]float64 `json:"vel" toml:"vel" yaml:"vel"`
	Mass float64    `json:"mass" toml:"mass" yaml:"mass"`
	// Color is "#rrggbb"; empty picks a random color.
	Color string `json:"color,omitempty" toml:"color,omitempty" yaml:"color,omitempty"`
}

// DefaultScenario is the three body system the visualizer starts with when
// no scenario file is given.
func DefaultScenario() Scenario {
	return Scenario{
		Name: "planets",
		Bodies: []BodyConfig{
			{Pos: [2]float64{150, 15}, Mass: 15, Vel: [2]float64{-0.07, 0}},
			{Pos: [2]float64{225, 233}, Mass: 15, Vel: [2]float64{0.07, 0.07}},
			{Pos: [2]float64{300, 50}, Mass: 2, Vel: [2]float64{0.15, 0.15}},
		},
	}
}

// SetOrbitalVelocities gives every body at rest except the first a
// velocity perpendicular to the first body, sized for a circular orbit
// under the influence law: M / r² / m = v² / r.
func SetOrbitalVelocities(bodies []BodyConfig) {
	if len(bodies) == 0 {
		return
	}
	central := bodies[0]
	for i := 1; i < len(bodies); i++ {
		if bodies[i].Vel != ([2]float64{}) || bodies[i].Mass <= 0 {
			continue
		}
		dx := bodies[i].Pos[0] - central.Pos[0]
		dy := bodies[i].Pos[1] - central.Pos[1]
		r := math.Hypot(dx, dy)
		if r == 0 {
			continue
		}
		v := math.Sqrt(central.Mass / (r * bodies[i].Mass))
		bodies[i].Vel[0] = -dy / r * v
		bodies[i].Vel[1] = dx / r * v
	}
}

// --- Loading ---

// LoadScenario reads a scenario file. The decoder is picked by extension:
// .json, .toml, .yaml or .yml.
func LoadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("reading scenario: %w", err)
	}

	var sc Scenario
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &sc)
	case ".toml":
		err = toml.Unmarshal(data, &sc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &sc)
	default:
		return Scenario{}, fmt.Errorf("%s: %w %q", path, ErrUnknownFormat, ext)
	}
	if err != nil {
		return Scenario{}, fmt.Errorf("parsing scenario %s: %w", path, err)
	}

	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if sc.AutoOrbit {
		SetOrbitalVelocities(sc.Bodies)
	}
	return sc, nil
}

// FindScenario resolves a scenario name inside dir, trying each supported
// extension in turn.
func FindScenario(dir, name string) (string, error) {
	for _, ext := range []string{".json", ".toml", ".yaml", ".yml"} {
		p := filepath.Join(dir, name+ext)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("scenario %q not found in %s: %w", name, dir, os.ErrNotExist)
}
