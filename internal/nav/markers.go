package nav

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/navmesh/pkg/math"
)

// MarkerType classifies a resource marker.
type MarkerType uint8

// Marker types.
const (
	MarkerMass MarkerType = iota
	MarkerHydrocarbon
)

// String returns a human-readable marker type name.
func (t MarkerType) String() string {
	switch t {
	case MarkerMass:
		return "Mass"
	case MarkerHydrocarbon:
		return "Hydrocarbon"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(t))
	}
}

// Marker is a resource spot on the map. NavLabel and NavLayer are filled in
// by the binder; NavLabel stays 0 when the marker sits on impassable ground
// on every bound layer.
type Marker struct {
	Name     string
	Type     MarkerType
	Position math.Vec3

	NavLabel int32
	NavLayer Layer
}

// MarkerSource supplies the map's resource markers.
type MarkerSource interface {
	MarkersOfType(t MarkerType) []*Marker
}

// markerLayers are the layers resource markers are resolved on. Extraction
// structures are built by land and amphibious engineers.
var markerLayers = [2]Layer{LayerLand, LayerAmphibious}

// bindMarkers resolves every resource marker to its leaf on the land and
// amphibious grids and attaches the component label. Runs before culling so
// the culler can keep components that hold resources. A marker outside the
// map or on an impassable leaf is left unbound.
func bindMarkers(m *Mesh, src MarkerSource, log *zap.Logger) {
	for _, mt := range [2]MarkerType{MarkerMass, MarkerHydrocarbon} {
		for _, marker := range src.MarkersOfType(mt) {
			for _, layer := range markerLayers {
				leaf := m.Grids[layer].FindLeaf(marker.Position)
				if leaf == nil || leaf.Label <= 0 {
					log.Debug("marker not bound on layer",
						zap.String("marker", marker.Name),
						zap.String("layer", layer.String()))
					continue
				}
				meta := m.Labels[leaf.Label]
				switch mt {
				case MarkerMass:
					meta.NumExtractors++
					meta.ExtractorMarkers = append(meta.ExtractorMarkers, marker)
				case MarkerHydrocarbon:
					meta.NumHydrocarbons++
					meta.HydrocarbonMarkers = append(meta.HydrocarbonMarkers, marker)
				}
				if marker.NavLabel == 0 {
					marker.NavLabel = leaf.Label
					marker.NavLayer = layer
				}
			}
		}
	}
}
