package nav

import "go.uber.org/zap"

// LabelMeta describes one connected component of pathable leaves.
type LabelMeta struct {
	Label int32
	Layer Layer

	// Node is one representative leaf of the component.
	Node *Tree

	// Area is the component's world-scale area, the sum of (0.01*c)^2 over
	// its leaves.
	Area float64

	// Resource markers resolved onto the component. Hydrocarbons are
	// counted separately from extractors; callers that want the combined
	// count add the two.
	NumExtractors      int
	NumHydrocarbons    int
	ExtractorMarkers   []*Marker
	HydrocarbonMarkers []*Marker

	// Culled is set when the component was removed for being too small.
	Culled bool
}

// labelComponents assigns connected-component labels to every pathable leaf
// of the grid. Labels are allocated from the mesh-wide counter, so ids are
// monotonic across layers. Returns the number of components created.
//
// The flood runs on an explicit stack: recursive labelling overflows the
// call stack on large maps.
func labelComponents(g *Grid, m *Mesh, log *zap.Logger) int {
	created := 0
	var stack []*Tree

	g.WalkLeaves(func(leaf *Tree) {
		if leaf.Label != 0 {
			return
		}
		label := m.nextLabel()
		meta := &LabelMeta{
			Label: label,
			Layer: g.Layer,
			Node:  leaf,
		}
		m.Labels[label] = meta
		created++

		stack = append(stack[:0], leaf)
		for len(stack) > 0 {
			node := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if node.Label == label {
				continue
			}
			if node.Label > 0 {
				// The neighbour relation should be symmetric; reaching a
				// leaf someone else already owns means it was not.
				log.Warn("leaf already labelled during flood",
					zap.Uint32("leaf", node.ID),
					zap.Int32("have", node.Label),
					zap.Int32("want", label),
					zap.String("layer", g.Layer.String()))
				continue
			}
			node.Label = label
			side := float64(node.Size) * AreaScale
			meta.Area += side * side

			for _, nb := range node.Neighbors {
				if nb.Label == 0 {
					stack = append(stack, nb)
				}
			}
		}
	})
	return created
}
