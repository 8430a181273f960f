package voxel

import "fmt"

// Chunk dimensions. Size is the unpadded per-axis voxel count; PaddedSize adds
// a one-voxel halo on every side so boundary faces can be culled against
// neighbouring chunks.
const (
	Size       = 62
	PaddedSize = Size + 2
)

// A padded depth column must fit one uint64. This constant overflows (and the
// package fails to compile) if PaddedSize is raised above 64.
const _ uint64 = 64 - PaddedSize

// VolumeLen is the number of voxels in a padded volume.
const VolumeLen = PaddedSize * PaddedSize * PaddedSize

// Volume is the padded dense voxel grid of one chunk. Index 0 and
// PaddedSize-1 on each axis hold halo data copied from neighbouring chunks.
//
// Voxels are stored Z-fastest so a (y, x) column is contiguous.
type Volume struct {
	data []MaterialID
}

// NewVolume returns an empty (all air) volume.
func NewVolume() *Volume {
	return &Volume{data: make([]MaterialID, VolumeLen)}
}

// Index returns the flat index of padded coordinate (x, y, z).
func Index(x, y, z int) int {
	return (y*PaddedSize+x)*PaddedSize + z
}

// InBounds reports whether (x, y, z) is a valid padded coordinate.
func InBounds(x, y, z int) bool {
	return x >= 0 && y >= 0 && z >= 0 && x < PaddedSize && y < PaddedSize && z < PaddedSize
}

// Get returns the material at padded coordinate (x, y, z).
// Out-of-bounds coordinates read as air.
func (v *Volume) Get(x, y, z int) MaterialID {
	if !InBounds(x, y, z) {
		return Air
	}
	return v.data[Index(x, y, z)]
}

// Set stores a material at padded coordinate (x, y, z).
func (v *Volume) Set(x, y, z int, id MaterialID) {
	if !InBounds(x, y, z) {
		panic(fmt.Sprintf("voxel: padded coordinate (%d,%d,%d) out of range", x, y, z))
	}
	v.data[Index(x, y, z)] = id
}

// GetLocal returns the material at unpadded chunk coordinate (x, y, z).
func (v *Volume) GetLocal(x, y, z int) MaterialID {
	return v.Get(x+1, y+1, z+1)
}

// SetLocal stores a material at unpadded chunk coordinate (x, y, z).
func (v *Volume) SetLocal(x, y, z int, id MaterialID) {
	if x < 0 || y < 0 || z < 0 || x >= Size || y >= Size || z >= Size {
		panic(fmt.Sprintf("voxel: local coordinate (%d,%d,%d) out of range", x, y, z))
	}
	v.data[Index(x+1, y+1, z+1)] = id
}

// Fill sets every interior voxel in the local box [min, max] to id.
func (v *Volume) Fill(minX, minY, minZ, maxX, maxY, maxZ int, id MaterialID) {
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			for z := minZ; z <= maxZ; z++ {
				v.SetLocal(x, y, z, id)
			}
		}
	}
}

// Clear resets every voxel, halo included, to air.
func (v *Volume) Clear() {
	clear(v.data)
}

// Column returns the contiguous Z column at padded (x, y).
// The returned slice aliases the volume.
func (v *Volume) Column(x, y int) []MaterialID {
	start := Index(x, y, 0)
	return v.data[start : start+PaddedSize]
}

// Raw returns the backing voxel slice in Index order.
func (v *Volume) Raw() []MaterialID {
	return v.data
}

// CopyHalo snapshots the boundary layer of neighbor, which lies in direction d
// from this chunk, into this volume's halo on that side.
func (v *Volume) CopyHalo(neighbor *Volume, d Direction) {
	const last = PaddedSize - 1
	for a := 1; a < last; a++ {
		for b := 1; b < last; b++ {
			switch d {
			case Up:
				v.data[Index(a, last, b)] = neighbor.data[Index(a, 1, b)]
			case Down:
				v.data[Index(a, 0, b)] = neighbor.data[Index(a, last-1, b)]
			case East:
				v.data[Index(last, a, b)] = neighbor.data[Index(1, a, b)]
			case West:
				v.data[Index(0, a, b)] = neighbor.data[Index(last-1, a, b)]
			case South:
				v.data[Index(a, b, last)] = neighbor.data[Index(a, b, 1)]
			case North:
				v.data[Index(a, b, 0)] = neighbor.data[Index(a, b, last-1)]
			}
		}
	}
}

// Count returns the number of non-air interior voxels.
func (v *Volume) Count() int {
	n := 0
	for y := 1; y <= Size; y++ {
		for x := 1; x <= Size; x++ {
			for _, id := range v.Column(x, y)[1 : Size+1] {
				if id != Air {
					n++
				}
			}
		}
	}
	return n
}
