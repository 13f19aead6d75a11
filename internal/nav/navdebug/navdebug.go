// Package navdebug renders generated navigation meshes to PNG overlays for
// visual inspection.
package navdebug

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/Faultbox/navmesh/internal/nav"
)

// Overlay colours.
var (
	impassableColor = color.RGBA{48, 24, 24, 255}
	unassignedColor = color.RGBA{96, 96, 96, 255}
	borderColor     = color.RGBA{16, 16, 16, 255}
	massColor       = color.RGBA{64, 255, 64, 255}
	hydroColor      = color.RGBA{255, 224, 48, 255}
)

// layerPalette tints pathable ground per movement layer.
var layerPalette = [nav.NumLayers]color.RGBA{
	nav.LayerLand:       {64, 160, 64, 255},
	nav.LayerHover:      {160, 96, 160, 255},
	nav.LayerWater:      {48, 96, 192, 255},
	nav.LayerAmphibious: {64, 160, 160, 255},
	nav.LayerAir:        {192, 192, 192, 255},
}

// LayerColor returns the palette colour for a movement layer.
func LayerColor(layer nav.Layer) color.RGBA {
	return layerPalette[layer]
}

// LabelColor returns a stable, reasonably bright colour for a component
// label. Nearby labels hash to unrelated hues so adjacent components stay
// distinguishable.
func LabelColor(label int32) color.RGBA {
	h := uint32(label) * 2654435761
	h ^= h >> 15
	h *= 2246822519
	h ^= h >> 13
	// Keep each channel at 64 or more so labels never blend into the
	// impassable background.
	return color.RGBA{
		R: 64 + uint8(h&0xff)/2,
		G: 64 + uint8((h>>8)&0xff)/2,
		B: 64 + uint8((h>>16)&0xff)/2,
		A: 255,
	}
}

// Renderer draws per-layer mesh overlays.
type Renderer struct {
	mesh  *nav.Mesh
	scale int // image pixels per world cell
}

// NewRenderer creates a renderer for the mesh. Scale is clamped to at
// least 1.
func NewRenderer(mesh *nav.Mesh, scale int) *Renderer {
	if scale < 1 {
		scale = 1
	}
	return &Renderer{mesh: mesh, scale: scale}
}

// LayerImage renders one layer: leaf rectangles tinted by component label,
// impassable leaves dark, with a border around every leaf.
func (r *Renderer) LayerImage(layer nav.Layer) *image.RGBA {
	side := r.mesh.MapSize * r.scale
	img := image.NewRGBA(image.Rect(0, 0, side, side))

	r.mesh.Grid(layer).WalkLeaves(func(leaf *nav.Tree) {
		var fill color.RGBA
		switch {
		case leaf.Label > 0:
			fill = LabelColor(leaf.Label)
		case leaf.Label == 0:
			fill = unassignedColor
		default:
			fill = impassableColor
		}

		x1, z1, x2, z2 := leaf.Rect()
		px1 := int(x1) * r.scale
		pz1 := int(z1) * r.scale
		px2 := int(x2) * r.scale
		pz2 := int(z2) * r.scale

		for pz := pz1; pz < pz2; pz++ {
			for px := px1; px < px2; px++ {
				onBorder := px == px1 || pz == pz1 || px == px2-1 || pz == pz2-1
				if onBorder {
					img.SetRGBA(px, pz, borderColor)
				} else {
					img.SetRGBA(px, pz, fill)
				}
			}
		}
	})
	return img
}

// PathabilityImage renders one layer with the layer palette: pathable
// leaves in the layer's colour, impassable leaves dark. Components are not
// distinguished; use LayerImage for that.
func (r *Renderer) PathabilityImage(layer nav.Layer) *image.RGBA {
	side := r.mesh.MapSize * r.scale
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	tint := LayerColor(layer)

	r.mesh.Grid(layer).WalkLeaves(func(leaf *nav.Tree) {
		fill := impassableColor
		if leaf.Pathable() {
			fill = tint
		}
		x1, z1, x2, z2 := leaf.Rect()
		for pz := int(z1) * r.scale; pz < int(z2)*r.scale; pz++ {
			for px := int(x1) * r.scale; px < int(x2)*r.scale; px++ {
				img.SetRGBA(px, pz, fill)
			}
		}
	})
	return img
}

// DrawMarkers stamps resource markers onto a rendered overlay as small
// filled squares, mass in green and hydrocarbon in yellow.
func (r *Renderer) DrawMarkers(img *image.RGBA, markers []*nav.Marker) {
	half := r.scale
	if half < 2 {
		half = 2
	}
	for _, marker := range markers {
		c := massColor
		if marker.Type == nav.MarkerHydrocarbon {
			c = hydroColor
		}
		cx := int(marker.Position.X) * r.scale
		cz := int(marker.Position.Z) * r.scale
		for dz := -half; dz <= half; dz++ {
			for dx := -half; dx <= half; dx++ {
				p := image.Pt(cx+dx, cz+dz)
				if p.In(img.Bounds()) {
					img.SetRGBA(p.X, p.Y, c)
				}
			}
		}
	}
}

// WriteLayerPNG renders one layer and writes it to dir as <layer>.png,
// returning the file path.
func (r *Renderer) WriteLayerPNG(dir string, layer nav.Layer, markers []*nav.Marker) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating overlay directory: %w", err)
	}

	img := r.LayerImage(layer)
	if markers != nil {
		r.DrawMarkers(img, markers)
	}

	path := filepath.Join(dir, strings.ToLower(layer.String())+".png")
	if err := writePNG(path, img); err != nil {
		return "", err
	}
	return path, nil
}

// WriteAll renders every layer to dir, a label overlay plus a pathability
// overlay each, and returns the written paths.
func (r *Renderer) WriteAll(dir string, markers []*nav.Marker) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating overlay directory: %w", err)
	}

	var paths []string
	for _, layer := range nav.Layers {
		path, err := r.WriteLayerPNG(dir, layer, markers)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)

		path = filepath.Join(dir, strings.ToLower(layer.String())+"_path.png")
		if err := writePNG(path, r.PathabilityImage(layer)); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writePNG(path string, img *image.RGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating overlay file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding overlay: %w", err)
	}
	return nil
}
