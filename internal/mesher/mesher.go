// Package mesher turns a padded voxel chunk into packed quads.
//
// Meshing runs in three steps: occlusion masks (one uint64 column per padded
// (y, x) pair), face culling (six visibility masks with the halo stripped) and
// a quad sweep that either emits one quad per visible face or greedily merges
// faces into rectangles.
package mesher

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/voxmesh/pkg/quad"
	"github.com/Faultbox/voxmesh/pkg/voxel"
)

// Mesher errors.
var (
	ErrNilVolume   = errors.New("mesher: nil volume")
	ErrNilRegistry = errors.New("mesher: nil registry")
)

// Options controls quad generation.
type Options struct {
	// EnableGreedyMeshing merges adjacent faces into larger quads.
	EnableGreedyMeshing bool
	// IgnoreBlockType merges any occupied faces regardless of material.
	// Only meaningful for single-material output such as collision meshes.
	IgnoreBlockType bool
	// Logger receives anomaly reports. Nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns greedy meshing with block types respected.
func DefaultOptions() Options {
	return Options{EnableGreedyMeshing: true}
}

// Mesher meshes chunk volumes. It is safe for concurrent use; every call
// rents its own scratch buffers.
type Mesher struct {
	reg  voxel.Registry
	opts Options
	log  *zap.Logger
	pool *scratchPool
}

// New creates a mesher resolving blocks through reg.
func New(reg voxel.Registry, opts Options) (*Mesher, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Mesher{
		reg:  reg,
		opts: opts,
		log:  log,
		pool: newScratchPool(),
	}, nil
}

// Options returns the mesher's configuration.
func (m *Mesher) Options() Options {
	return m.opts
}

// Cull returns the face visibility masks of vol.
func (m *Mesher) Cull(vol *voxel.Volume) (*FaceMasks, error) {
	if vol == nil {
		return nil, ErrNilVolume
	}
	s := m.pool.acquire()
	defer m.pool.release(s)

	buildOcclusion(vol, m.reg, s)
	cullFaces(s)
	masks := s.faces
	return &masks, nil
}

// Mesh extracts the visible surface of vol. The volume, halo included, must
// not be modified until Mesh returns.
func (m *Mesher) Mesh(vol *voxel.Volume) (*MeshResult, error) {
	if vol == nil {
		return nil, ErrNilVolume
	}
	start := time.Now()

	s := m.pool.acquire()
	defer m.pool.release(s)

	buildOcclusion(vol, m.reg, s)
	cullFaces(s)

	res := &MeshResult{Merged: m.opts.EnableGreedyMeshing}
	b := &builder{
		vol:    vol,
		s:      s,
		ignore: m.opts.IgnoreBlockType,
	}
	b.emit = func(d voxel.Direction, x, y, z, w, h int, id voxel.MaterialID) error {
		return m.emit(res, d, x, y, z, w, h, id)
	}

	for _, d := range voxel.Directions {
		begin := len(res.Quads)
		if err := m.sweep(b, d); err != nil {
			return nil, fmt.Errorf("meshing %s faces: %w", d, err)
		}
		res.Ranges[d] = Range{Begin: begin, Len: len(res.Quads) - begin}
		res.Stats.Faces += s.faces.Count(d)
	}
	res.Stats.Quads = len(res.Quads)

	if ce := m.log.Check(zap.DebugLevel, "chunk meshed"); ce != nil {
		ce.Write(
			zap.Int("faces", res.Stats.Faces),
			zap.Int("quads", res.Stats.Quads),
			zap.Int("anomalies", res.Stats.Anomalies),
			zap.Bool("greedy", res.Merged),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
	return res, nil
}

func (m *Mesher) sweep(b *builder, d voxel.Direction) error {
	if !m.opts.EnableGreedyMeshing {
		return b.single(d)
	}
	if d == voxel.South || d == voxel.North {
		return b.sweepForward(d)
	}
	return b.sweepLayers(d)
}

// emit resolves the block of a finished rectangle and appends its packed quad.
// A set face bit without a registered block means the occlusion data and the
// registry disagree; the rectangle is skipped and counted.
func (m *Mesher) emit(res *MeshResult, d voxel.Direction, x, y, z, w, h int, id voxel.MaterialID) error {
	blk, ok := m.reg.Block(id)
	if !ok {
		res.Stats.Anomalies += w * h
		m.log.Warn("face without block",
			zap.Stringer("dir", d),
			zap.Int("x", x),
			zap.Int("y", y),
			zap.Int("z", z),
			zap.Uint16("material", uint16(id)),
			zap.Int("cells", w*h),
		)
		return nil
	}

	p, err := quad.Encode(quad.Quad{
		X:        uint8(x),
		Y:        uint8(y),
		Z:        uint8(z),
		W:        uint8(w),
		H:        uint8(h),
		Dir:      d,
		Material: id,
		Texture:  blk.Texture(d),
	})
	if err != nil {
		return fmt.Errorf("block %d: %w", id, err)
	}
	res.Quads = append(res.Quads, p)
	return nil
}
