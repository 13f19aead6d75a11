package nav

// Neighbour discovery runs in two passes over a whole layer. The first pass
// probes just outside each leaf edge and links orthogonal neighbours; the
// second links corner-diagonal neighbours, refusing any diagonal whose two
// orthogonally adjacent cells are not both pathable (the corner-cut rule).
// The corner pass must not start before the orthogonal pass has finished
// the layer.

// buildOrthogonalNeighbors links every pathable leaf of the grid to the
// pathable leaves adjacent across its four edges.
func buildOrthogonalNeighbors(g *Grid) {
	g.WalkLeaves(func(leaf *Tree) {
		if !leaf.Pathable() {
			return
		}
		x1, z1, x2, z2 := leaf.Rect()

		// Each probe lands on a leaf of some side length; advancing by that
		// length visits every distinct neighbour along the edge once.
		scanEdge(g, leaf, x1+0.5, z1-0.5, x2, true)  // top
		scanEdge(g, leaf, x1+0.5, z2+0.5, x2, true)  // bottom
		scanEdge(g, leaf, x1-0.5, z1+0.5, z2, false) // left
		scanEdge(g, leaf, x2+0.5, z1+0.5, z2, false) // right
	})
}

// scanEdge walks probes along one edge of a leaf. For horizontal edges the
// x coordinate advances up to limit; for vertical edges the z coordinate.
// An off-map probe ends the scan.
func scanEdge(g *Grid, leaf *Tree, x, z, limit float32, horizontal bool) {
	for {
		if horizontal && x >= limit {
			return
		}
		if !horizontal && z >= limit {
			return
		}
		probe := g.FindLeafXZ(x, z)
		if probe == nil {
			return
		}
		if probe.Pathable() {
			leaf.addNeighbor(probe)
		}
		if horizontal {
			x += float32(probe.Size)
		} else {
			z += float32(probe.Size)
		}
	}
}

// buildCornerNeighbors links diagonal neighbours across leaf corners. A
// diagonal is accepted only when the two orthogonal cells sharing the corner
// both exist and carry the same label as the leaf, which before labelling
// means both are pathable. This refuses diagonals that would cut through an
// impassable wedge, and is symmetric: both endpoints test the same pair of
// cells.
func buildCornerNeighbors(g *Grid) {
	g.WalkLeaves(func(leaf *Tree) {
		if !leaf.Pathable() {
			return
		}
		x1, z1, x2, z2 := leaf.Rect()

		corners := [4]struct {
			dx, dz         float32 // diagonal probe
			ax, az, bx, bz float32 // the two orthogonal cells at the corner
		}{
			{x1 - 0.5, z1 - 0.5, x1 + 0.5, z1 - 0.5, x1 - 0.5, z1 + 0.5}, // top-left
			{x2 + 0.5, z1 - 0.5, x2 - 0.5, z1 - 0.5, x2 + 0.5, z1 + 0.5}, // top-right
			{x1 - 0.5, z2 + 0.5, x1 + 0.5, z2 + 0.5, x1 - 0.5, z2 - 0.5}, // bottom-left
			{x2 + 0.5, z2 + 0.5, x2 - 0.5, z2 + 0.5, x2 + 0.5, z2 - 0.5}, // bottom-right
		}

		for _, c := range corners {
			diag := g.FindLeafXZ(c.dx, c.dz)
			if diag == nil || !diag.Pathable() {
				continue
			}
			orthA := g.FindLeafXZ(c.ax, c.az)
			orthB := g.FindLeafXZ(c.bx, c.bz)
			if orthA == nil || orthA.Label != leaf.Label {
				continue
			}
			if orthB == nil || orthB.Label != leaf.Label {
				continue
			}
			leaf.addNeighbor(diag)
		}
	})
}

// countNeighbors sums the edge count over all leaves of the grid.
func countNeighbors(g *Grid) int {
	total := 0
	g.WalkLeaves(func(leaf *Tree) {
		total += len(leaf.Neighbors)
	})
	return total
}
