package formats

import (
	"errors"
	"path/filepath"
	"testing"
)

const testScenario = `
name: twin-rivers
size: 256
terrain: twin-rivers.tmap
markers:
  - name: mass-01
    type: mass
    x: 32.5
    y: 10
    z: 40.5
  - name: hydro-01
    type: hydrocarbon
    x: 100
    y: 10
    z: 100
`

func TestParseScenario(t *testing.T) {
	s, err := ParseScenario([]byte(testScenario))
	if err != nil {
		t.Fatalf("ParseScenario failed: %v", err)
	}

	if s.Name != "twin-rivers" {
		t.Errorf("expected name twin-rivers, got %q", s.Name)
	}
	if s.Size != 256 {
		t.Errorf("expected size 256, got %d", s.Size)
	}
	if len(s.Markers) != 2 {
		t.Fatalf("expected 2 markers, got %d", len(s.Markers))
	}
	if s.Markers[0].Type != MarkerTypeMass || s.Markers[0].X != 32.5 {
		t.Errorf("unexpected first marker: %+v", s.Markers[0])
	}
	if s.Markers[1].Type != MarkerTypeHydrocarbon {
		t.Errorf("unexpected second marker: %+v", s.Markers[1])
	}
}

func TestParseScenario_UnknownMarkerType(t *testing.T) {
	data := []byte(`
name: broken
size: 64
terrain: broken.tmap
markers:
  - name: m1
    type: treasure
    x: 1
    z: 1
`)
	if _, err := ParseScenario(data); !errors.Is(err, ErrUnknownMarkerType) {
		t.Errorf("expected ErrUnknownMarkerType, got %v", err)
	}
}

func TestParseScenario_MissingTerrain(t *testing.T) {
	data := []byte("name: broken\nsize: 64\n")
	if _, err := ParseScenario(data); !errors.Is(err, ErrScenarioNoTerrain) {
		t.Errorf("expected ErrScenarioNoTerrain, got %v", err)
	}
}

func TestScenarioSaveRoundTrip(t *testing.T) {
	s, err := ParseScenario([]byte(testScenario))
	if err != nil {
		t.Fatalf("ParseScenario failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := s.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := ParseScenarioFile(path)
	if err != nil {
		t.Fatalf("ParseScenarioFile failed: %v", err)
	}
	if loaded.Name != s.Name || len(loaded.Markers) != len(s.Markers) {
		t.Errorf("round trip mismatch: %+v vs %+v", loaded, s)
	}
}
