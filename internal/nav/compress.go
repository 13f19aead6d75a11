package nav

// idRange hands out node identifiers from a pre-sized span. Each
// (block, layer) pair owns a disjoint span, which keeps identifiers
// deterministic when blocks are compressed in parallel.
type idRange struct {
	next uint32
}

func (r *idRange) take() uint32 {
	id := r.next
	r.next++
	return id
}

// maxNodesPerTree bounds the node count of one fully subdivided quadtree
// with the given root side and minimum leaf side: 1 + 4 + ... + leafCount.
func maxNodesPerTree(rootSize, threshold int) int {
	leaves := (rootSize / threshold) * (rootSize / threshold)
	return (4*leaves - 1) / 3
}

// compress recursively subdivides the node until it covers a uniform region
// of the raster or reaches the minimum leaf size. The raster is 1-based; the
// node covers cells [oz+1, oz+c] x [ox+1, ox+c].
func compress(node *Tree, raster [][]int8, threshold int, ids *idRange, stats *LayerStats) {
	c := node.Size
	v := raster[node.OZ+1][node.OX+1]
	uniform := true
scan:
	for z := node.OZ + 1; z <= node.OZ+c; z++ {
		for x := node.OX + 1; x <= node.OX+c; x++ {
			if raster[z][x] != v {
				uniform = false
				break scan
			}
		}
	}

	if c <= threshold {
		// Smallest allowed leaf. A mixed region at this size is counted
		// impassable rather than subdivided further.
		if uniform {
			node.Label = int32(v)
		} else {
			node.Label = -1
		}
		countLeaf(node, stats)
		return
	}

	if uniform {
		node.Label = int32(v)
		countLeaf(node, stats)
		return
	}

	h := c / 2
	children := &[4]*Tree{}
	for i := range children {
		child := &Tree{
			ID:    ids.take(),
			Layer: node.Layer,
			BX:    node.BX,
			BZ:    node.BZ,
			OX:    node.OX + (i&1)*h,
			OZ:    node.OZ + (i>>1)*h,
			Size:  h,
		}
		children[i] = child
	}
	node.Children = children
	stats.Subdivisions++
	for _, child := range children {
		compress(child, raster, threshold, ids, stats)
	}
}

func countLeaf(node *Tree, stats *LayerStats) {
	if node.Label >= 0 {
		stats.PathableLeafs++
	} else {
		stats.UnpathableLeafs++
	}
}
