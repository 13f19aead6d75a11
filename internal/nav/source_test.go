package nav

import (
	"testing"
)

// testSource is an in-memory terrain oracle for tests. Heights live at grid
// corners (0..size); terrain flags at cells. Cells outside the map block,
// matching the contract real terrain sources honour.
type testSource struct {
	size    int
	terrain [][]float32 // [z][x], (size+1)^2
	surface [][]float32
	blocked map[[2]int]bool
}

// flatSource creates an all-land map: every corner at height 0, no water,
// nothing blocked.
func flatSource(size int) *testSource {
	s := &testSource{
		size:    size,
		terrain: make([][]float32, size+1),
		surface: make([][]float32, size+1),
		blocked: make(map[[2]int]bool),
	}
	for z := range s.terrain {
		s.terrain[z] = make([]float32, size+1)
		s.surface[z] = make([]float32, size+1)
	}
	return s
}

func (s *testSource) Size() int { return s.size }

func (s *testSource) TerrainHeight(x, z int) float32 {
	if x < 0 || z < 0 || x > s.size || z > s.size {
		return 0
	}
	return s.terrain[z][x]
}

func (s *testSource) SurfaceHeight(x, z int) float32 {
	if x < 0 || z < 0 || x > s.size || z > s.size {
		return 0
	}
	return s.surface[z][x]
}

func (s *testSource) TerrainBlocking(x, z int) bool {
	if x < 1 || z < 1 || x > s.size || z > s.size {
		return true
	}
	return s.blocked[[2]int{x, z}]
}

// block marks the cell rectangle [x1,x2] x [z1,z2] as blocking terrain.
func (s *testSource) block(x1, z1, x2, z2 int) {
	for z := z1; z <= z2; z++ {
		for x := x1; x <= x2; x++ {
			s.blocked[[2]int{x, z}] = true
		}
	}
}

// flood raises the water surface over the corner rectangle [x1,x2] x
// [z1,z2].
func (s *testSource) flood(x1, z1, x2, z2 int, surface float32) {
	for z := z1; z <= z2; z++ {
		for x := x1; x <= x2; x++ {
			s.surface[z][x] = surface
		}
	}
}

// raise sets the terrain height over the corner rectangle [x1,x2] x
// [z1,z2].
func (s *testSource) raise(x1, z1, x2, z2 int, height float32) {
	for z := z1; z <= z2; z++ {
		for x := x1; x <= x2; x++ {
			s.terrain[z][x] = height
		}
	}
}

// testMarkers is a fixed marker catalogue.
type testMarkers struct {
	markers []*Marker
}

func (t *testMarkers) MarkersOfType(mt MarkerType) []*Marker {
	var out []*Marker
	for _, m := range t.markers {
		if m.Type == mt {
			out = append(out, m)
		}
	}
	return out
}

// mustGenerate builds a mesh or fails the test.
func mustGenerate(t *testing.T, src TerrainSource, opts ...Option) *Mesh {
	t.Helper()
	mesh, err := NewBuilder(src, opts...).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return mesh
}
