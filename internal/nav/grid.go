package nav

import (
	"github.com/Faultbox/navmesh/pkg/math"
)

// Grid is the top-level spatial index for one movement layer: a fixed 16x16
// array of quadtree roots, one per map block. Every slot is populated after
// generation.
type Grid struct {
	Layer Layer

	// TreeSize is the side length of each block in cells.
	TreeSize int

	// Trees holds the quadtree roots, indexed [z][x].
	Trees [BlocksPerAxis][BlocksPerAxis]*Tree
}

// FindLeafXZ returns the leaf containing the world point (x, z), or nil when
// the point lies outside the map.
func (g *Grid) FindLeafXZ(x, z float32) *Tree {
	if x <= 0 || z <= 0 {
		return nil
	}
	bx := int(x) / g.TreeSize
	bz := int(z) / g.TreeSize
	if bx >= BlocksPerAxis || bz >= BlocksPerAxis {
		return nil
	}
	root := g.Trees[bz][bx]
	if root == nil {
		return nil
	}
	return root.findLeaf(x, z)
}

// FindLeaf returns the leaf containing the world position, or nil when the
// position lies outside the map.
func (g *Grid) FindLeaf(pos math.Vec3) *Tree {
	return g.FindLeafXZ(pos.X, pos.Z)
}

// WalkLeaves calls fn for every leaf of the grid, blocks in row-major order,
// children in descend order. The traversal is deterministic.
func (g *Grid) WalkLeaves(fn func(*Tree)) {
	for bz := 0; bz < BlocksPerAxis; bz++ {
		for bx := 0; bx < BlocksPerAxis; bx++ {
			if root := g.Trees[bz][bx]; root != nil {
				root.walkLeaves(fn)
			}
		}
	}
}
