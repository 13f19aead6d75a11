package formats

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario format errors.
var (
	ErrUnknownMarkerType = errors.New("unknown marker type")
	ErrInvalidScenario   = errors.New("invalid scenario")
	ErrScenarioNoTerrain = errors.New("scenario names no terrain file")
)

// Marker type names used in scenario files.
const (
	MarkerTypeMass        = "mass"
	MarkerTypeHydrocarbon = "hydrocarbon"
)

// ScenarioMarker is a resource spot declared by a scenario.
type ScenarioMarker struct {
	Name string  `yaml:"name"`
	Type string  `yaml:"type"`
	X    float32 `yaml:"x"`
	Y    float32 `yaml:"y"`
	Z    float32 `yaml:"z"`
}

// Scenario describes one playable map: its terrain file and resource
// markers.
type Scenario struct {
	Name    string           `yaml:"name"`
	Size    int              `yaml:"size"`
	Terrain string           `yaml:"terrain"`
	Markers []ScenarioMarker `yaml:"markers"`
}

// ParseScenario parses and validates a scenario from YAML bytes.
func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if s.Terrain == "" {
		return nil, ErrScenarioNoTerrain
	}
	if s.Size <= 0 {
		return nil, fmt.Errorf("%w: size %d", ErrInvalidScenario, s.Size)
	}
	for i, m := range s.Markers {
		if m.Type != MarkerTypeMass && m.Type != MarkerTypeHydrocarbon {
			return nil, fmt.Errorf("%w: marker %d (%q) has type %q", ErrUnknownMarkerType, i, m.Name, m.Type)
		}
	}
	return &s, nil
}

// ParseScenarioFile parses a scenario file from disk.
func ParseScenarioFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	return ParseScenario(data)
}

// Save writes the scenario to disk as YAML.
func (s *Scenario) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing scenario file: %w", err)
	}
	return nil
}
