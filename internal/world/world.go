// Package world loads scenario and terrain files and binds them to the
// navigation mesh builder.
package world

import (
	"fmt"
	"path/filepath"

	"github.com/Faultbox/navmesh/internal/nav"
	"github.com/Faultbox/navmesh/pkg/formats"
	"github.com/Faultbox/navmesh/pkg/math"
)

// Map is a loaded game map: terrain heights plus resource markers. It
// satisfies the mesh builder's TerrainSource and MarkerSource.
type Map struct {
	Name    string
	Terrain *formats.TMap

	markers []*nav.Marker
}

// NewMap creates a map from in-memory terrain and markers.
func NewMap(name string, terrain *formats.TMap, markers []*nav.Marker) *Map {
	return &Map{
		Name:    name,
		Terrain: terrain,
		markers: markers,
	}
}

// LoadMap loads a map from a scenario file. The scenario's terrain path is
// resolved relative to the scenario file.
func LoadMap(scenarioPath string) (*Map, error) {
	scenario, err := formats.ParseScenarioFile(scenarioPath)
	if err != nil {
		return nil, fmt.Errorf("loading scenario: %w", err)
	}

	terrainPath := scenario.Terrain
	if !filepath.IsAbs(terrainPath) {
		terrainPath = filepath.Join(filepath.Dir(scenarioPath), terrainPath)
	}
	terrain, err := formats.ParseTMapFile(terrainPath)
	if err != nil {
		return nil, fmt.Errorf("loading terrain for %s: %w", scenario.Name, err)
	}
	if terrain.Size() != scenario.Size {
		return nil, fmt.Errorf("scenario %s declares size %d but terrain is %d",
			scenario.Name, scenario.Size, terrain.Size())
	}

	m := &Map{
		Name:    scenario.Name,
		Terrain: terrain,
	}
	for _, sm := range scenario.Markers {
		m.markers = append(m.markers, markerFromScenario(sm))
	}
	return m, nil
}

// markerFromScenario converts a scenario marker declaration. Types were
// validated by the scenario parser.
func markerFromScenario(sm formats.ScenarioMarker) *nav.Marker {
	t := nav.MarkerMass
	if sm.Type == formats.MarkerTypeHydrocarbon {
		t = nav.MarkerHydrocarbon
	}
	return &nav.Marker{
		Name:     sm.Name,
		Type:     t,
		Position: math.Vec3{X: sm.X, Y: sm.Y, Z: sm.Z},
	}
}

// Size returns the map side length in cells.
func (m *Map) Size() int {
	return m.Terrain.Size()
}

// TerrainHeight returns the ground height at corner (x, z).
func (m *Map) TerrainHeight(x, z int) float32 {
	return m.Terrain.TerrainHeight(x, z)
}

// SurfaceHeight returns the water surface height at corner (x, z).
func (m *Map) SurfaceHeight(x, z int) float32 {
	return m.Terrain.SurfaceHeight(x, z)
}

// TerrainBlocking reports whether the terrain type at cell (x, z) blocks
// movement. Cell coordinates run 1..size, anchored to the cell's
// bottom-right corner.
func (m *Map) TerrainBlocking(x, z int) bool {
	return m.Terrain.TerrainBlocking(x, z)
}

// Markers returns all resource markers.
func (m *Map) Markers() []*nav.Marker {
	return m.markers
}

// MarkersOfType returns the resource markers of one type.
func (m *Map) MarkersOfType(t nav.MarkerType) []*nav.Marker {
	var out []*nav.Marker
	for _, marker := range m.markers {
		if marker.Type == t {
			out = append(out, marker)
		}
	}
	return out
}
