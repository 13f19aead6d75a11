package nav

import "sort"

// cullLabels removes components too small to matter: any component whose
// area is under the threshold and which holds no resource markers has every
// leaf flooded back to impassable. Neighbour lists are left untouched;
// consumers filter on label >= 0. Returns the number of culled components.
func cullLabels(m *Mesh) int {
	// Map iteration order is random; cull in label order so repeated runs
	// log and count identically.
	labels := make([]int32, 0, len(m.Labels))
	for label := range m.Labels {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })

	culled := 0
	var stack []*Tree
	for _, label := range labels {
		meta := m.Labels[label]
		if meta.Area >= CullAreaThreshold {
			continue
		}
		if meta.NumExtractors > 0 || meta.NumHydrocarbons > 0 {
			continue
		}

		stack = append(stack[:0], meta.Node)
		for len(stack) > 0 {
			node := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if node.Label < 0 {
				continue
			}
			node.Label = -1
			for _, nb := range node.Neighbors {
				if nb.Label > 0 {
					stack = append(stack, nb)
				}
			}
		}
		meta.Culled = true
		culled++
	}
	return culled
}
