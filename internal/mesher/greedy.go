package mesher

import (
	"math/bits"

	"github.com/Faultbox/voxmesh/pkg/voxel"
)

// builder runs the quad sweeps of one meshing call.
type builder struct {
	vol    *voxel.Volume
	s      *scratch
	emit   func(d voxel.Direction, x, y, z, w, h int, id voxel.MaterialID) error
	ignore bool
}

// material returns the material behind bit of mask word (outer, inner).
func (b *builder) material(d voxel.Direction, outer, inner, bit int) voxel.MaterialID {
	x, y, z := cellCoord(d, outer, inner, bit)
	return b.vol.GetLocal(x, y, z)
}

// same reports whether two occupied cells may share a quad.
func (b *builder) same(a, c voxel.MaterialID) bool {
	return b.ignore || a == c
}

// single emits one unit quad per visible face of direction d.
func (b *builder) single(d voxel.Direction) error {
	faces := &b.s.faces[d]
	for outer := range n {
		for inner := range n {
			word := faces[outer*n+inner]
			for word != 0 {
				bit := bits.TrailingZeros64(word)
				word &= word - 1

				x, y, z := cellCoord(d, outer, inner, bit)
				if err := b.emit(d, x, y, z, 1, 1, b.vol.GetLocal(x, y, z)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// sweepLayers greedily merges Up, Down, East and West faces. Each outer index
// is a layer along the face normal; rows advance along the inner index and
// rectangles grow forward across rows and rightward across bits.
func (b *builder) sweepLayers(d voxel.Direction) error {
	faces := &b.s.faces[d]
	m := &b.s.merge

	for layer := range n {
		base := layer * n
		for fwd := range n {
			here := faces[base+fwd]
			if here == 0 {
				continue
			}
			var next uint64
			if fwd+1 < n {
				next = faces[base+fwd+1]
			}

			for here != 0 {
				bit := bits.TrailingZeros64(here)
				id := b.material(d, layer, fwd, bit)

				if next>>bit&1 != 0 && b.same(id, b.material(d, layer, fwd+1, bit)) {
					m.extendForward(bit)
					here &^= 1 << bit
					continue
				}

				height := m.forward[bit]
				width := 1
				for right := bit + 1; right < n; right++ {
					if here>>right&1 == 0 || m.forward[right] != height || !b.same(id, b.material(d, layer, fwd, right)) {
						break
					}
					m.absorb(right)
					width++
				}
				m.absorb(bit)
				here &^= 1<<(bit+width) - 1

				x, y, z := cellCoord(d, layer, fwd-int(height), bit)
				if err := b.emit(d, x, y, z, width, int(height)+1, id); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// sweepForward greedily merges South and North faces. Here the bit axis is
// the face normal, so rectangles grow forward across the outer index and
// rightward across the inner index.
func (b *builder) sweepForward(d voxel.Direction) error {
	faces := &b.s.faces[d]
	m := &b.s.merge

	for fwd := range n {
		for right := range n {
			i := fwd*n + right
			here := faces[i]
			if here == 0 {
				continue
			}
			var next, side uint64
			if fwd+1 < n {
				next = faces[i+n]
			}
			if right+1 < n {
				side = faces[i+1]
			}

			for here != 0 {
				bit := bits.TrailingZeros64(here)
				here &= here - 1
				id := b.material(d, fwd, right, bit)
				fi := right*n + bit

				// A cell already carrying a row-wise run cannot start a
				// forward merge: the next row would lose its width.
				if m.phase(fi, bit) != phaseRight && next>>bit&1 != 0 && b.same(id, b.material(d, fwd+1, right, bit)) {
					m.extendForward(fi)
					continue
				}
				if side>>bit&1 != 0 && m.forward[fi] == m.forward[fi+n] && b.same(id, b.material(d, fwd, right+1, bit)) {
					m.extendRight(fi, bit)
					continue
				}

				height, width := m.take(fi, bit)
				x, y, z := cellCoord(d, fwd-height, right-width, bit)
				if err := b.emit(d, x, y, z, width+1, height+1, id); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
