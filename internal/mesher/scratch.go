package mesher

import (
	"sync"

	"github.com/Faultbox/voxmesh/pkg/voxel"
)

const (
	n  = voxel.Size
	np = voxel.PaddedSize

	// faceWords is the number of words in one direction's face mask.
	faceWords = n * n
)

// voxelClass caches a material's occlusion behaviour for one meshing call.
type voxelClass uint8

const (
	classUnknown voxelClass = iota // not looked up yet
	classOpaque
	classTransparent
	classNone    // registered but not meshed
	classMissing // not in the registry; occupies space, reported on emission
)

// scratch holds every buffer one meshing call needs. A scratch is owned by
// exactly one call between acquire and release.
type scratch struct {
	opaque      [np * np]uint64
	transparent [np * np]uint64
	faces       FaceMasks
	merge       mergeState
	classes     [1 << 16]voxelClass
}

// scratchPool rents zeroed scratch buffers.
type scratchPool struct {
	pool sync.Pool
}

func newScratchPool() *scratchPool {
	return &scratchPool{pool: sync.Pool{
		New: func() any { return new(scratch) },
	}}
}

// acquire returns a zeroed scratch buffer.
func (p *scratchPool) acquire() *scratch {
	s := p.pool.Get().(*scratch)
	*s = scratch{}
	return s
}

func (p *scratchPool) release(s *scratch) {
	p.pool.Put(s)
}
