// Package mapgen synthesises heightmap terrains with Perlin noise, for
// demos and for exercising the mesh builder on realistic inputs.
package mapgen

import (
	"fmt"
	gomath "math"
	"math/rand"

	"github.com/aquilax/go-perlin"

	"github.com/Faultbox/navmesh/internal/nav"
	"github.com/Faultbox/navmesh/pkg/formats"
	"github.com/Faultbox/navmesh/pkg/math"
)

// Noise shaping constants.
const (
	noiseAlpha   = 2.0 // smoothing between octaves
	noiseBeta    = 2.0 // frequency multiplier between octaves
	noiseOctaves = 3
)

// Params control terrain synthesis. The same params always produce the same
// map.
type Params struct {
	Seed int64
	Size int

	// NoiseScale sets the horizontal feature size; smaller values give
	// broader hills.
	NoiseScale float64
	// HeightScale sets the vertical relief of the raw noise.
	HeightScale float64
	// PlateauStep quantises heights into stepped terraces, carving cliffs
	// between them. Zero leaves the terrain rolling.
	PlateauStep float64
	// SeaLevel is the water surface height. Terrain below it is flooded.
	SeaLevel float64

	MassSpots    int
	Hydrocarbons int
}

// DefaultParams returns synthesis parameters tuned for interesting meshes:
// terraced hills, lakes, and a handful of resource spots.
func DefaultParams(size int) Params {
	return Params{
		Seed:         1,
		Size:         size,
		NoiseScale:   0.02,
		HeightScale:  12,
		PlateauStep:  4,
		SeaLevel:     3,
		MassSpots:    16,
		Hydrocarbons: 4,
	}
}

// Generator synthesises terrain maps and marker sets.
type Generator struct {
	params Params
	noise  *perlin.Perlin
}

// New creates a generator for the given parameters.
func New(params Params) *Generator {
	return &Generator{
		params: params,
		noise:  perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, params.Seed),
	}
}

// Terrain synthesises the heightmap.
func (g *Generator) Terrain() *formats.TMap {
	p := g.params
	m := formats.NewTMap(p.Size)

	for z := 0; z <= p.Size; z++ {
		for x := 0; x <= p.Size; x++ {
			// Noise2D returns -1..1; lift it to 0..1 before scaling.
			n := (g.noise.Noise2D(float64(x)*p.NoiseScale, float64(z)*p.NoiseScale) + 1) / 2
			h := n * p.HeightScale
			if p.PlateauStep > 0 {
				h = gomath.Floor(h/p.PlateauStep) * p.PlateauStep
			}
			surface := gomath.Max(h, p.SeaLevel)
			m.SetCorner(x, z, float32(h), float32(surface))
		}
	}
	return m
}

// Markers places resource markers on open, dry, level ground. Placement is
// deterministic for a given seed.
func (g *Generator) Markers(m *formats.TMap) []*nav.Marker {
	p := g.params
	rng := rand.New(rand.NewSource(p.Seed))

	var markers []*nav.Marker
	place := func(count int, t nav.MarkerType, name func(i int) string) {
		for i := 0; i < count; i++ {
			// Rejection-sample a usable cell; give up quietly on maps with
			// no dry ground left.
			for attempt := 0; attempt < 200; attempt++ {
				x := 1 + rng.Intn(p.Size-2)
				z := 1 + rng.Intn(p.Size-2)
				if !cellUsable(m, x, z) {
					continue
				}
				y := m.TerrainHeight(x, z)
				markers = append(markers, &nav.Marker{
					Name:     name(i),
					Type:     t,
					Position: math.Vec3{X: float32(x) + 0.5, Y: y, Z: float32(z) + 0.5},
				})
				break
			}
		}
	}

	place(p.MassSpots, nav.MarkerMass, func(i int) string { return markerName("mass", i) })
	place(p.Hydrocarbons, nav.MarkerHydrocarbon, func(i int) string { return markerName("hydro", i) })
	return markers
}

// Scenario bundles the generated markers into a scenario referencing the
// given terrain file.
func (g *Generator) Scenario(name, terrainFile string, markers []*nav.Marker) *formats.Scenario {
	s := &formats.Scenario{
		Name:    name,
		Size:    g.params.Size,
		Terrain: terrainFile,
	}
	for _, marker := range markers {
		t := formats.MarkerTypeMass
		if marker.Type == nav.MarkerHydrocarbon {
			t = formats.MarkerTypeHydrocarbon
		}
		s.Markers = append(s.Markers, formats.ScenarioMarker{
			Name: marker.Name,
			Type: t,
			X:    marker.Position.X,
			Y:    marker.Position.Y,
			Z:    marker.Position.Z,
		})
	}
	return s
}

// cellUsable reports whether the cell spanning corners (x, z) to
// (x+1, z+1) is dry, level enough to walk, and clear of blocking terrain.
func cellUsable(m *formats.TMap, x, z int) bool {
	// Cell indices are anchored to the bottom-right corner.
	if m.TerrainBlocking(x+1, z+1) {
		return false
	}
	corners := [4][2]int{{x, z}, {x + 1, z}, {x, z + 1}, {x + 1, z + 1}}
	min := m.TerrainHeight(x, z)
	max := min
	for _, c := range corners {
		h := m.TerrainHeight(c[0], c[1])
		if m.SurfaceHeight(c[0], c[1]) > h {
			return false // flooded corner
		}
		if h < min {
			min = h
		}
		if h > max {
			max = h
		}
	}
	return float64(max-min) < nav.MaxHeightDiff
}

func markerName(prefix string, i int) string {
	return fmt.Sprintf("%s-%02d", prefix, i+1)
}
