package mesher

import (
	"github.com/Faultbox/voxmesh/pkg/voxel"
)

// classify returns the cached occlusion class of id.
func (s *scratch) classify(reg voxel.Registry, id voxel.MaterialID) voxelClass {
	if c := s.classes[id]; c != classUnknown {
		return c
	}
	c := classMissing
	if b, ok := reg.Block(id); ok {
		switch {
		case b.Opaque:
			c = classOpaque
		case b.Transparent:
			c = classTransparent
		default:
			c = classNone
		}
	}
	s.classes[id] = c
	return c
}

// buildOcclusion fills the opaque and transparent masks: bit z of
// opaque[y*np+x] is set when padded voxel (x, y, z) is opaque.
//
// Materials missing from the registry are treated as opaque so they keep
// occluding their neighbours; the quad builder reports them when it tries to
// emit their faces.
func buildOcclusion(vol *voxel.Volume, reg voxel.Registry, s *scratch) {
	for y := range np {
		for x := range np {
			var opaque, transparent uint64
			for z, id := range vol.Column(x, y) {
				if id == voxel.Air {
					continue
				}
				switch s.classify(reg, id) {
				case classOpaque, classMissing:
					opaque |= 1 << z
				case classTransparent:
					transparent |= 1 << z
				}
			}
			s.opaque[y*np+x] = opaque
			s.transparent[y*np+x] = transparent
		}
	}
}
