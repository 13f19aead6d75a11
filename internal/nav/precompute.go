package nav

import (
	gomath "math"

	"github.com/Faultbox/navmesh/pkg/math"
)

// precompute fills leaf centres, then per-edge displacement vectors and
// Euclidean distances, for every pathable leaf of the grid. Directions are
// raw displacements, not unit vectors; consumers use them as offsets.
func precompute(g *Grid) {
	g.WalkLeaves(func(leaf *Tree) {
		if !leaf.Pathable() {
			return
		}
		leaf.PX = float32(leaf.BX+leaf.OX) + 0.5*float32(leaf.Size)
		leaf.PZ = float32(leaf.BZ+leaf.OZ) + 0.5*float32(leaf.Size)
	})

	// Second sweep: centres of both endpoints are needed, so edges can only
	// be measured once every centre is in place.
	g.WalkLeaves(func(leaf *Tree) {
		if len(leaf.Neighbors) == 0 {
			return
		}
		leaf.NeighborDistances = make(map[uint32]float32, len(leaf.Neighbors))
		leaf.NeighborDirections = make(map[uint32]math.Vec2, len(leaf.Neighbors))
		for id, nb := range leaf.Neighbors {
			dx := nb.PX - leaf.PX
			dz := nb.PZ - leaf.PZ
			leaf.NeighborDirections[id] = math.Vec2{X: dx, Y: dz}
			leaf.NeighborDistances[id] = float32(gomath.Sqrt(float64(dx*dx + dz*dz)))
		}
	})
}
