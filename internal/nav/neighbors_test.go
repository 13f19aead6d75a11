package nav

import (
	gomath "math"
	"testing"
)

func TestNeighborSymmetry(t *testing.T) {
	mesh := mustGenerate(t, randomSource(64, 13))

	for _, layer := range Layers {
		mesh.Grid(layer).WalkLeaves(func(leaf *Tree) {
			for id, nb := range leaf.Neighbors {
				if nb.ID != id {
					t.Fatalf("%s: neighbour keyed %d has id %d", layer, id, nb.ID)
				}
				if _, ok := nb.Neighbors[leaf.ID]; !ok {
					t.Errorf("%s: edge %d->%d has no reverse edge", layer, leaf.ID, nb.ID)
				}
			}
		})
	}
}

func TestNeighborDistanceAndDirectionSymmetry(t *testing.T) {
	mesh := mustGenerate(t, randomSource(64, 17))

	for _, layer := range Layers {
		mesh.Grid(layer).WalkLeaves(func(leaf *Tree) {
			for id, nb := range leaf.Neighbors {
				d := leaf.NeighborDistances[id]
				if back := nb.NeighborDistances[leaf.ID]; back != d {
					t.Errorf("%s: distance %v vs reverse %v", layer, d, back)
				}
				dir := leaf.NeighborDirections[id]
				if back := nb.NeighborDirections[leaf.ID]; back != dir.Neg() {
					t.Errorf("%s: direction %v vs reverse %v", layer, dir, back)
				}

				// Distance matches the displacement magnitude; directions
				// are not normalised.
				want := float32(gomath.Sqrt(float64(dir.X*dir.X + dir.Y*dir.Y)))
				if d != want {
					t.Errorf("%s: distance %v does not match direction %v", layer, d, dir)
				}
			}
		})
	}
}

func TestOrthogonalNeighborsAcrossLeafSizes(t *testing.T) {
	// One blocked cell forces its block down to 2-cell leaves while the
	// neighbouring block stays a single 4-cell leaf; the probe scan must
	// link both sizes.
	src := flatSource(64)
	src.block(9, 9, 9, 9)
	mesh := mustGenerate(t, src)

	big := mesh.Grid(LayerLand).FindLeafXZ(14.5, 10.5) // collapsed block
	small := mesh.Grid(LayerLand).FindLeafXZ(11.5, 10.5)
	if big == nil || small == nil {
		t.Fatal("missing leaves")
	}
	if big.Size != 4 || small.Size != 2 {
		t.Fatalf("expected sides 4 and 2, got %d and %d", big.Size, small.Size)
	}
	if _, ok := big.Neighbors[small.ID]; !ok {
		t.Error("large leaf missing small neighbour")
	}
	if _, ok := small.Neighbors[big.ID]; !ok {
		t.Error("small leaf missing large neighbour")
	}
}

func TestCornerCutRefusesDiagonalCrossing(t *testing.T) {
	// A staircase of blocked 2x2 squares touching corner to corner. The
	// free regions on either side meet only diagonally at those corners,
	// and both orthogonal cells at each corner are blocked, so the corner
	// rule must keep the regions apart.
	src := flatSource(128)
	for i := 0; i < 64; i++ {
		src.block(2*i+1, 2*i+1, 2*i+2, 2*i+2)
	}
	mesh := mustGenerate(t, src)

	if got := mesh.LayerData[LayerLand].Labels; got != 2 {
		t.Fatalf("expected 2 land components, got %d", got)
	}

	above := mesh.Grid(LayerLand).FindLeafXZ(80.5, 10.5)
	below := mesh.Grid(LayerLand).FindLeafXZ(10.5, 80.5)
	if above == nil || below == nil || above.Label <= 0 || below.Label <= 0 {
		t.Fatalf("expected labelled leaves on both sides, got %+v and %+v", above, below)
	}
	if above.Label == below.Label {
		t.Error("corner rule failed: regions separated by the staircase share a label")
	}
}

func TestCornerNeighborsOnOpenGround(t *testing.T) {
	src := flatSource(64)
	mesh := mustGenerate(t, src)

	leaf := mesh.Grid(LayerLand).FindLeafXZ(30.5, 30.5)
	if leaf == nil {
		t.Fatal("missing leaf")
	}
	diag := mesh.Grid(LayerLand).FindLeafXZ(leaf.PX+float32(leaf.Size), leaf.PZ+float32(leaf.Size))
	if diag == nil {
		t.Fatal("missing diagonal leaf")
	}
	if _, ok := leaf.Neighbors[diag.ID]; !ok {
		t.Error("expected diagonal neighbour on open ground")
	}
}
