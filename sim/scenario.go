package sim

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/RianAsmara/lost-beacons/model"
	"github.com/RianAsmara/lost-beacons/rules"
)

var ErrInvalidScenario = errors.New("invalid scenario")

// Scenario is the YAML description of a skirmish between exactly two teams.
type Scenario struct {
	Name          string             `yaml:"name"`
	Step          float64            `yaml:"step"`     // simulated seconds per tick
	Duration      float64            `yaml:"duration"` // run ends in a timeout after this
	Teams         []string           `yaml:"teams"`
	Units         []UnitSpec         `yaml:"units"`
	Beacons       []BeaconSpec       `yaml:"beacons"`
	Terrain       *model.TerrainGrid `yaml:"terrain"`
	EndConditions []*rules.Condition `yaml:"end_conditions"`
}

type UnitSpec struct {
	Team       string  `yaml:"team"`
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	Health     float64 `yaml:"health"`
	Speed      float64 `yaml:"speed"`
	Autonomous bool    `yaml:"autonomous"`
}

type BeaconSpec struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Team string  `yaml:"team"` // empty = neutral
}

func LoadScenario(path string) (*Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load scenario %s: %w", path, err)
	}
	sc, err := ParseScenario(b)
	if err != nil {
		return nil, fmt.Errorf("load scenario %s: %w", path, err)
	}
	return sc, nil
}

// ParseScenario decodes and validates a scenario. Validation failures wrap
// ErrInvalidScenario.
func ParseScenario(b []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(b, &sc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (sc *Scenario) Validate() error {
	if len(sc.Teams) != 2 || sc.Teams[0] == "" || sc.Teams[1] == "" || sc.Teams[0] == sc.Teams[1] {
		return fmt.Errorf("%w: need two distinct team names, got %q", ErrInvalidScenario, sc.Teams)
	}
	if !(sc.Step > 0) {
		return fmt.Errorf("%w: step must be positive, got %v", ErrInvalidScenario, sc.Step)
	}
	if !(sc.Duration > 0) {
		return fmt.Errorf("%w: duration must be positive, got %v", ErrInvalidScenario, sc.Duration)
	}
	if len(sc.Units) == 0 {
		return fmt.Errorf("%w: no units", ErrInvalidScenario)
	}
	for i, u := range sc.Units {
		if !sc.hasTeam(u.Team) {
			return fmt.Errorf("%w: unit %d has unknown team %q", ErrInvalidScenario, i, u.Team)
		}
		if !(u.Health > 0) {
			return fmt.Errorf("%w: unit %d has no health", ErrInvalidScenario, i)
		}
		if !(u.Speed >= 0) {
			return fmt.Errorf("%w: unit %d has negative speed", ErrInvalidScenario, i)
		}
	}
	for i, b := range sc.Beacons {
		if b.Team != "" && !sc.hasTeam(b.Team) {
			return fmt.Errorf("%w: beacon %d has unknown team %q", ErrInvalidScenario, i, b.Team)
		}
	}
	if t := sc.Terrain; t != nil && len(t.Grid) != t.Cols*t.Rows {
		return fmt.Errorf("%w: terrain grid has %d cells, want %dx%d", ErrInvalidScenario, len(t.Grid), t.Cols, t.Rows)
	}
	return nil
}

func (sc *Scenario) hasTeam(name string) bool {
	return name == sc.Teams[0] || name == sc.Teams[1]
}

// conditions returns the scenario's end conditions, or the stock set when
// none are given.
func (sc *Scenario) conditions() []*rules.Condition {
	if len(sc.EndConditions) > 0 {
		return sc.EndConditions
	}
	return rules.DefaultConditions(sc.Teams[0], sc.Teams[1])
}
