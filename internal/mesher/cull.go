package mesher

import (
	"math/bits"

	"github.com/Faultbox/voxmesh/pkg/voxel"
)

// FaceMasks holds one visibility word per (outer, inner) pair for each
// direction. Bit k of a word is the chunk-local z coordinate k.
//
// Up, Down, South and North are indexed y*Size+x; East and West are indexed
// x*Size+y so that their sweep layer is the outer index.
type FaceMasks [voxel.DirectionCount][faceWords]uint64

// interiorBits selects padded depth bits 1..Size, dropping both halo bits.
const interiorBits = (1<<n - 1) << 1

func strip(col uint64) uint64 {
	return (col & interiorBits) >> 1
}

// cullFaces derives the six face masks from the occlusion masks.
func cullFaces(s *scratch) {
	for y := 1; y <= n; y++ {
		for x := 1; x <= n; x++ {
			i := y*np + x
			col := s.opaque[i]
			filled := col | s.transparent[i]
			above := s.opaque[i+np] | s.transparent[i+np]

			yx := (y-1)*n + (x - 1)
			xy := (x-1)*n + (y - 1)

			// Liquid tops render under air but not under liquid or solid.
			s.faces[voxel.Up][yx] = strip(col&^s.opaque[i+np]|filled&^above)
			s.faces[voxel.Down][yx] = strip(col&^s.opaque[i-np])
			s.faces[voxel.East][xy] = strip(col&^s.opaque[i+1])
			s.faces[voxel.West][xy] = strip(col&^s.opaque[i-1])
			s.faces[voxel.South][yx] = strip(col&^(col>>1))
			s.faces[voxel.North][yx] = strip(col&^(col<<1))
		}
	}
}

// wordIndex maps a chunk-local voxel to its word in direction d.
func wordIndex(d voxel.Direction, x, y int) int {
	if d == voxel.East || d == voxel.West {
		return x*n + y
	}
	return y*n + x
}

// cellCoord maps (outer, inner, bit) of a direction's mask to chunk-local
// voxel coordinates.
func cellCoord(d voxel.Direction, outer, inner, bit int) (x, y, z int) {
	if d == voxel.East || d == voxel.West {
		return outer, inner, bit
	}
	return inner, outer, bit
}

// Visible reports whether the face of chunk-local voxel (x, y, z) in
// direction d is visible.
func (f *FaceMasks) Visible(d voxel.Direction, x, y, z int) bool {
	if !d.Valid() || x < 0 || y < 0 || z < 0 || x >= n || y >= n || z >= n {
		return false
	}
	return f[d][wordIndex(d, x, y)]>>z&1 != 0
}

// Count returns the number of visible faces in direction d.
func (f *FaceMasks) Count(d voxel.Direction) int {
	total := 0
	for _, w := range f[d] {
		total += bits.OnesCount64(w)
	}
	return total
}

// Total returns the number of visible faces in all directions.
func (f *FaceMasks) Total() int {
	total := 0
	for _, d := range voxel.Directions {
		total += f.Count(d)
	}
	return total
}
