// Package nav builds multi-layer navigation meshes for square heightmap
// terrains. For every movement layer it compresses per-cell pathability into
// a forest of quadtrees, connects the leaves into a neighbour graph, and
// labels mutually reachable regions with connected-component ids.
package nav

import "fmt"

// Layer identifies a movement class with its own pathability predicate.
type Layer uint8

// Movement layers.
const (
	LayerLand Layer = iota
	LayerHover
	LayerWater
	LayerAmphibious
	LayerAir

	// NumLayers is the number of movement layers.
	NumLayers
)

// Layers lists all movement layers in build order.
var Layers = [NumLayers]Layer{LayerLand, LayerHover, LayerWater, LayerAmphibious, LayerAir}

// String returns a human-readable layer name.
func (l Layer) String() string {
	switch l {
	case LayerLand:
		return "Land"
	case LayerHover:
		return "Hover"
	case LayerWater:
		return "Water"
	case LayerAmphibious:
		return "Amphibious"
	case LayerAir:
		return "Air"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(l))
	}
}

// Terrain tuning constants. These are part of the mesh contract: changing
// them changes every generated mesh.
const (
	// BlocksPerAxis is the number of quadtree roots along each map axis.
	BlocksPerAxis = 16

	// MaxHeightDiff bounds the corner-to-corner terrain height step a
	// ground unit can climb; only steps strictly below it are walkable.
	MaxHeightDiff = 0.75

	// MinWaterDepthNaval is the minimum water depth naval units need.
	MinWaterDepthNaval = 1.5

	// MaxWaterDepthAmphibious is the deepest water amphibious units cross.
	MaxWaterDepthAmphibious = 25

	// CullAreaThreshold is the component area below which a region with no
	// resource markers is removed from the mesh.
	CullAreaThreshold = 0.2

	// AreaScale converts a leaf side length in cells to the world-scale
	// unit used by component areas.
	AreaScale = 0.01
)

// CompressionThreshold returns the minimum leaf side for a map of the given
// size. Larger maps trade resolution for leaf count.
func CompressionThreshold(mapSize int) int {
	if mapSize > 1024 {
		return 4
	}
	return 2
}

// layerThreshold returns the compression threshold for one layer. Water
// regions are coarse, so the water mesh uses double the base minimum leaf
// side (half the base resolution).
func layerThreshold(layer Layer, base int) int {
	if layer == LayerWater {
		return 2 * base
	}
	return base
}
