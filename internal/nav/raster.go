package nav

// TerrainSource supplies the heightmap data the mesh is built from. Heights
// are sampled at integer grid corners; terrain types at integer cells.
// Implementations must treat out-of-map queries as blocking terrain.
type TerrainSource interface {
	// Size returns the map side length in cells.
	Size() int
	// TerrainHeight returns the ground height at corner (x, z).
	TerrainHeight(x, z int) float32
	// SurfaceHeight returns the water surface height at corner (x, z).
	// Surface >= terrain; the difference is the water depth.
	SurfaceHeight(x, z int) float32
	// TerrainBlocking reports whether the terrain type at cell (x, z)
	// forbids movement outright. Cells run 1..size, each anchored to its
	// bottom-right corner: cell (x, z) spans corners (x-1, z-1) to (x, z).
	TerrainBlocking(x, z int) bool
}

// blockScratch holds the per-block caches used to derive the pathability
// rasters. One instance is reused across all blocks processed by a worker
// and must not be retained after generation.
//
// All arrays are 1-based to match the sampling scheme: corner caches are
// valid for indices 1..size+1, cell caches for 1..size.
type blockScratch struct {
	size int

	terrain [][]float32 // terrain height at corner (bx+x-1, bz+z-1)
	depth   [][]float32 // surface minus terrain at the same corner

	pxWalk    [][]bool    // step along +x from corner (z, x) is climbable
	pzWalk    [][]bool    // step along +z from corner (z, x) is climbable
	cellWalk  [][]bool    // all four edges around cell (z, x) are climbable
	avgDepth  [][]float32 // mean water depth over the cell's four corners
	terrainOK [][]bool    // terrain type at the cell does not block

	rasters [NumLayers][][]int8
}

func newBlockScratch(size int) *blockScratch {
	s := &blockScratch{size: size}
	s.terrain = newFloatGrid(size + 2)
	s.depth = newFloatGrid(size + 2)
	s.pxWalk = newBoolGrid(size + 2)
	s.pzWalk = newBoolGrid(size + 2)
	s.cellWalk = newBoolGrid(size + 1)
	s.avgDepth = newFloatGrid(size + 1)
	s.terrainOK = newBoolGrid(size + 1)
	for l := range s.rasters {
		s.rasters[l] = make([][]int8, size+1)
		for z := range s.rasters[l] {
			s.rasters[l][z] = make([]int8, size+1)
		}
	}
	return s
}

func newFloatGrid(n int) [][]float32 {
	g := make([][]float32, n)
	for i := range g {
		g[i] = make([]float32, n)
	}
	return g
}

func newBoolGrid(n int) [][]bool {
	g := make([][]bool, n)
	for i := range g {
		g[i] = make([]bool, n)
	}
	return g
}

// fill populates every cache and all five layer rasters for the block whose
// top-left corner is (bx, bz) in world units.
func (s *blockScratch) fill(src TerrainSource, bx, bz int) {
	size := s.size

	for z := 1; z <= size+1; z++ {
		for x := 1; x <= size+1; x++ {
			t := src.TerrainHeight(bx+x-1, bz+z-1)
			s.terrain[z][x] = t
			s.depth[z][x] = src.SurfaceHeight(bx+x-1, bz+z-1) - t
		}
	}

	for z := 1; z <= size+1; z++ {
		for x := 1; x <= size; x++ {
			s.pxWalk[z][x] = absf(s.terrain[z][x]-s.terrain[z][x+1]) < MaxHeightDiff
		}
	}
	for z := 1; z <= size; z++ {
		for x := 1; x <= size+1; x++ {
			s.pzWalk[z][x] = absf(s.terrain[z][x]-s.terrain[z+1][x]) < MaxHeightDiff
		}
	}

	for z := 1; z <= size; z++ {
		for x := 1; x <= size; x++ {
			s.cellWalk[z][x] = s.pxWalk[z][x] && s.pzWalk[z][x] &&
				s.pxWalk[z+1][x] && s.pzWalk[z][x+1]
			s.avgDepth[z][x] = (s.depth[z][x] + s.depth[z][x+1] +
				s.depth[z+1][x] + s.depth[z+1][x+1]) / 4
			s.terrainOK[z][x] = !src.TerrainBlocking(bx+x, bz+z)
		}
	}

	// NaN heights from a faulty oracle fail every comparison below, so the
	// affected cells come out impassable on all ground layers.
	for z := 1; z <= size; z++ {
		for x := 1; x <= size; x++ {
			walk := s.cellWalk[z][x]
			depth := s.avgDepth[z][x]
			ok := s.terrainOK[z][x]

			s.rasters[LayerLand][z][x] = pathable(depth <= 0 && ok && walk)
			s.rasters[LayerHover][z][x] = pathable(ok && (depth >= 1 || walk))
			s.rasters[LayerWater][z][x] = pathable(depth >= MinWaterDepthNaval && ok)
			s.rasters[LayerAmphibious][z][x] = pathable(depth <= MaxWaterDepthAmphibious && ok && walk)
			s.rasters[LayerAir][z][x] = 0
		}
	}
}

// pathable converts a predicate to the raster encoding: 0 pathable,
// -1 impassable.
func pathable(ok bool) int8 {
	if ok {
		return 0
	}
	return -1
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
