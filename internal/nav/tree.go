package nav

import (
	"github.com/Faultbox/navmesh/pkg/math"
)

// Quadtree child slots, in descend order.
const (
	childTopLeft = iota
	childTopRight
	childBottomLeft
	childBottomRight
)

// Tree is a node of a compressed label quadtree. Internal nodes carry four
// children covering their area without gap or overlap; leaves carry a label
// and, when pathable, the neighbour graph edges.
type Tree struct {
	// ID is unique across all trees of all layers for one generated mesh.
	ID    uint32
	Layer Layer

	// BX, BZ is the top-left corner of the enclosing block in world units.
	BX, BZ int
	// OX, OZ is the offset of this node's top-left within the block.
	OX, OZ int
	// Size is the side length in cells (equal to world units).
	Size int

	// Children is nil for leaves. Order: top-left, top-right, bottom-left,
	// bottom-right, each with side Size/2.
	Children *[4]*Tree

	// Label is -1 for impassable leaves, 0 for pathable but unassigned, and
	// a positive component id once labelling has run.
	Label int32

	// PX, PZ is the leaf centre in world units. Only set on pathable leaves.
	PX, PZ float32

	// Neighbors maps neighbour identifiers to leaves reachable in one step.
	// Leaves impassable after compression have no neighbours; leaves set
	// to -1 by culling keep theirs.
	Neighbors          map[uint32]*Tree
	NeighborDistances  map[uint32]float32
	NeighborDirections map[uint32]math.Vec2
}

// IsLeaf reports whether the node has no children.
func (t *Tree) IsLeaf() bool {
	return t.Children == nil
}

// Pathable reports whether a leaf can be traversed by its layer.
func (t *Tree) Pathable() bool {
	return t.Label >= 0
}

// Rect returns the node's world-space rectangle [x1, x2) x [z1, z2).
func (t *Tree) Rect() (x1, z1, x2, z2 float32) {
	x1 = float32(t.BX + t.OX)
	z1 = float32(t.BZ + t.OZ)
	return x1, z1, x1 + float32(t.Size), z1 + float32(t.Size)
}

// Center returns the leaf centre as a 2D point.
func (t *Tree) Center() math.Vec2 {
	return math.Vec2{X: t.PX, Y: t.PZ}
}

// findLeaf descends to the leaf containing the world point (x, z). The point
// must lie within the node's rectangle.
func (t *Tree) findLeaf(x, z float32) *Tree {
	node := t
	for node.Children != nil {
		h := node.Size / 2
		idx := childTopLeft
		if x-float32(node.BX) >= float32(node.OX+h) {
			idx |= 1
		}
		if z-float32(node.BZ) >= float32(node.OZ+h) {
			idx |= 2
		}
		node = node.Children[idx]
	}
	return node
}

// walkLeaves calls fn for every leaf under the node, children in descend
// order. Traversal order is deterministic.
func (t *Tree) walkLeaves(fn func(*Tree)) {
	if t.Children == nil {
		fn(t)
		return
	}
	for _, child := range t.Children {
		child.walkLeaves(fn)
	}
}

// addNeighbor inserts the edge self -> other, allocating the map on first
// use. Returns true if the edge was new.
func (t *Tree) addNeighbor(other *Tree) bool {
	if t.Neighbors == nil {
		t.Neighbors = make(map[uint32]*Tree)
	}
	if _, ok := t.Neighbors[other.ID]; ok {
		return false
	}
	t.Neighbors[other.ID] = other
	return true
}
