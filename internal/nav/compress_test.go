package nav

import (
	gomath "math"
	"testing"
)

func TestCompress_UniformBlockCollapses(t *testing.T) {
	scratch := newBlockScratch(4)
	scratch.fill(flatSource(64), 0, 0)

	var stats LayerStats
	ids := &idRange{next: 1}
	root := &Tree{ID: ids.take(), Layer: LayerLand, Size: 4}
	compress(root, scratch.rasters[LayerLand], 2, ids, &stats)

	if !root.IsLeaf() {
		t.Fatal("uniform block should collapse to a single leaf")
	}
	if root.Label != 0 {
		t.Errorf("expected pathable leaf, got label %d", root.Label)
	}
	if stats.PathableLeafs != 1 || stats.UnpathableLeafs != 0 || stats.Subdivisions != 0 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestCompress_MixedBlockSubdivides(t *testing.T) {
	src := flatSource(64)
	src.block(1, 1, 1, 1) // corner cell of block (0,0)

	scratch := newBlockScratch(4)
	scratch.fill(src, 0, 0)

	var stats LayerStats
	ids := &idRange{next: 1}
	root := &Tree{ID: ids.take(), Layer: LayerLand, Size: 4}
	compress(root, scratch.rasters[LayerLand], 2, ids, &stats)

	if root.IsLeaf() {
		t.Fatal("mixed block should subdivide")
	}
	if stats.Subdivisions != 1 {
		t.Errorf("expected 1 subdivision, got %d", stats.Subdivisions)
	}
	// The top-left quadrant holds the blocked cell and is pessimistically
	// impassable at the threshold; the rest stay pathable.
	if got := root.Children[childTopLeft].Label; got != -1 {
		t.Errorf("expected impassable top-left child, got label %d", got)
	}
	for _, idx := range []int{childTopRight, childBottomLeft, childBottomRight} {
		if got := root.Children[idx].Label; got != 0 {
			t.Errorf("expected pathable child %d, got label %d", idx, got)
		}
	}
	if stats.PathableLeafs != 3 || stats.UnpathableLeafs != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestGenerate_CentralImpassablePatch(t *testing.T) {
	// A 2x2 blocked patch inside one block of a 64-cell map. Only that
	// block subdivides; one land component surrounds the patch.
	src := flatSource(64)
	src.block(33, 33, 34, 34)
	mesh := mustGenerate(t, src)

	land := mesh.LayerData[LayerLand]
	if land.Labels != 1 {
		t.Errorf("expected 1 land component, got %d", land.Labels)
	}
	if land.Subdivisions == 0 {
		t.Error("expected the containing block to subdivide")
	}

	// The patch resolves to an impassable leaf; its surroundings stay
	// labelled.
	patch := mesh.Grid(LayerLand).FindLeafXZ(33.5, 33.5)
	if patch == nil || patch.Label != -1 {
		t.Fatalf("expected impassable leaf on the patch, got %+v", patch)
	}
	if len(patch.Neighbors) != 0 {
		t.Error("impassable leaf must have no neighbours")
	}

	around := mesh.Grid(LayerLand).FindLeafXZ(30.5, 33.5)
	if around == nil || around.Label <= 0 {
		t.Fatalf("expected labelled leaf beside the patch, got %+v", around)
	}

	// Component area is the map minus the patch.
	meta := mesh.Label(around.Label)
	want := (64*64 - 2*2) * AreaScale * AreaScale
	if gomath.Abs(meta.Area-want) > 1e-9 {
		t.Errorf("expected area %v, got %v", want, meta.Area)
	}
}

func TestCompressionThresholdByMapSize(t *testing.T) {
	cases := []struct {
		size int
		want int
	}{
		{256, 2},
		{1024, 2},
		{2048, 4},
	}
	for _, c := range cases {
		if got := CompressionThreshold(c.size); got != c.want {
			t.Errorf("CompressionThreshold(%d) = %d, want %d", c.size, got, c.want)
		}
	}
	if got := layerThreshold(LayerWater, 2); got != 4 {
		t.Errorf("water threshold = %d, want 4", got)
	}
	if got := layerThreshold(LayerLand, 2); got != 2 {
		t.Errorf("land threshold = %d, want 2", got)
	}
}
