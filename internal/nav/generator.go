package nav

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Generation errors.
var (
	ErrInvalidMapSize   = errors.New("map size must be a positive multiple of 16")
	ErrInvalidThreshold = errors.New("compression threshold must divide the block size")
)

// LayerStats summarises the mesh of one layer for UI and diagnostics.
type LayerStats struct {
	Layer           Layer
	PathableLeafs   int
	UnpathableLeafs int
	Subdivisions    int
	Neighbors       int
	Labels          int
}

// Mesh is the generated navigation index: one grid per movement layer, plus
// component metadata keyed by label. A mesh is immutable after generation
// except for marker counts and labels flipped to -1 by culling.
type Mesh struct {
	MapSize   int
	BlockSize int

	Grids     [NumLayers]*Grid
	Labels    map[int32]*LabelMeta
	LayerData [NumLayers]LayerStats

	// CulledLabels is the number of components removed for being too small.
	CulledLabels int

	labelCounter int32
}

// Grid returns the spatial index for one layer.
func (m *Mesh) Grid(layer Layer) *Grid {
	return m.Grids[layer]
}

// Label returns the metadata for a component id, or nil.
func (m *Mesh) Label(id int32) *LabelMeta {
	return m.Labels[id]
}

// nextLabel allocates a component id. Ids are monotonic across layers.
func (m *Mesh) nextLabel() int32 {
	m.labelCounter++
	return m.labelCounter
}

// Builder runs the mesh construction pipeline over a terrain source.
type Builder struct {
	src     TerrainSource
	markers MarkerSource
	workers int
	log     *zap.Logger

	mesh *Mesh
}

// Option configures a Builder.
type Option func(*Builder)

// WithMarkers supplies the resource marker catalogue bound during
// generation.
func WithMarkers(src MarkerSource) Option {
	return func(b *Builder) { b.markers = src }
}

// WithWorkers caps the number of goroutines compressing blocks. Values
// below 1 select one worker per CPU.
func WithWorkers(n int) Option {
	return func(b *Builder) { b.workers = n }
}

// WithLogger routes build diagnostics to the given logger.
func WithLogger(log *zap.Logger) Option {
	return func(b *Builder) { b.log = log }
}

// NewBuilder creates a builder over the given terrain source.
func NewBuilder(src TerrainSource, opts ...Option) *Builder {
	b := &Builder{
		src: src,
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Mesh returns the last generated mesh, or nil.
func (b *Builder) Mesh() *Mesh {
	return b.mesh
}

// IsGenerated reports whether a mesh has been generated.
func (b *Builder) IsGenerated() bool {
	return b.mesh != nil
}

// Generate runs the full pipeline: compress each block's pathability
// rasters into quadtrees, link orthogonal then corner neighbours, label
// connected components, precompute centres and edge geometry, bind resource
// markers, and cull undersized components.
//
// On success the new mesh replaces any previous one; on error the previous
// mesh is left untouched. Phases after compression are single-goroutine and
// run in strict order.
func (b *Builder) Generate() (*Mesh, error) {
	start := time.Now()

	size := b.src.Size()
	if size <= 0 || size%BlocksPerAxis != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMapSize, size)
	}
	blockSize := size / BlocksPerAxis
	base := CompressionThreshold(size)
	for _, layer := range Layers {
		if t := layerThreshold(layer, base); blockSize%t != 0 {
			return nil, fmt.Errorf("%w: threshold %d, block size %d", ErrInvalidThreshold, t, blockSize)
		}
	}

	mesh := &Mesh{
		MapSize:   size,
		BlockSize: blockSize,
		Labels:    make(map[int32]*LabelMeta),
	}
	for _, layer := range Layers {
		mesh.Grids[layer] = &Grid{Layer: layer, TreeSize: blockSize}
		mesh.LayerData[layer].Layer = layer
	}

	phase := time.Now()
	b.compressBlocks(mesh, blockSize, base)
	b.log.Info("compressed pathability rasters", zap.Duration("took", time.Since(phase)))

	phase = time.Now()
	for _, layer := range Layers {
		buildOrthogonalNeighbors(mesh.Grids[layer])
	}
	for _, layer := range Layers {
		buildCornerNeighbors(mesh.Grids[layer])
		mesh.LayerData[layer].Neighbors = countNeighbors(mesh.Grids[layer])
	}
	b.log.Info("linked leaf neighbours", zap.Duration("took", time.Since(phase)))

	phase = time.Now()
	for _, layer := range Layers {
		mesh.LayerData[layer].Labels = labelComponents(mesh.Grids[layer], mesh, b.log)
	}
	b.log.Info("labelled components", zap.Duration("took", time.Since(phase)))

	phase = time.Now()
	for _, layer := range Layers {
		precompute(mesh.Grids[layer])
	}
	b.log.Info("precomputed leaf geometry", zap.Duration("took", time.Since(phase)))

	if b.markers != nil {
		bindMarkers(mesh, b.markers, b.log)
	}
	mesh.CulledLabels = cullLabels(mesh)

	b.mesh = mesh
	b.log.Info("navigation mesh generated",
		zap.Int("mapSize", size),
		zap.Int("labels", len(mesh.Labels)),
		zap.Int("culled", mesh.CulledLabels),
		zap.Duration("took", time.Since(start)))
	return mesh, nil
}

// compressBlocks fans the map's blocks out over a worker group. Each worker
// owns one scratch buffer set, reused across its blocks. Node identifiers
// come from disjoint per-(block, layer) ranges, so the resulting forest is
// identical no matter how the blocks are scheduled.
func (b *Builder) compressBlocks(mesh *Mesh, blockSize, baseThreshold int) {
	stride := uint32(maxNodesPerTree(blockSize, baseThreshold))
	totalBlocks := BlocksPerAxis * BlocksPerAxis

	workers := b.workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > totalBlocks {
		workers = totalBlocks
	}

	partial := make([][NumLayers]LayerStats, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			scratch := newBlockScratch(blockSize)
			stats := &partial[w]
			for idx := w; idx < totalBlocks; idx += workers {
				bzi := idx / BlocksPerAxis
				bxi := idx % BlocksPerAxis
				bx := bxi * blockSize
				bz := bzi * blockSize

				scratch.fill(b.src, bx, bz)
				for _, layer := range Layers {
					ids := &idRange{next: 1 + stride*uint32(idx*int(NumLayers)+int(layer))}
					root := &Tree{
						ID:    ids.take(),
						Layer: layer,
						BX:    bx,
						BZ:    bz,
						Size:  blockSize,
					}
					compress(root, scratch.rasters[layer], layerThreshold(layer, baseThreshold), ids, &stats[layer])
					mesh.Grids[layer].Trees[bzi][bxi] = root
				}
			}
			return nil
		})
	}
	// Workers only compute; there is nothing to fail.
	_ = g.Wait()

	for w := range partial {
		for _, layer := range Layers {
			mesh.LayerData[layer].PathableLeafs += partial[w][layer].PathableLeafs
			mesh.LayerData[layer].UnpathableLeafs += partial[w][layer].UnpathableLeafs
			mesh.LayerData[layer].Subdivisions += partial[w][layer].Subdivisions
		}
	}
}
