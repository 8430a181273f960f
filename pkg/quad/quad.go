// Package quad packs meshed faces into 64-bit words.
//
// A packed quad is the unit exchanged between the mesher and its consumers:
// CPU-side geometry expansion decodes it, while a GPU vertex-pulling shader can
// read the same word directly. Layout (least significant bit first):
//
//	[0:6)   x        origin, chunk-local
//	[6:12)  y
//	[12:18) z
//	[18:24) width    extent along the face's width axis
//	[24:30) height   extent along the face's height axis
//	[30:33) direction
//	[33:49) material id
//	[49:64) texture reference
package quad

import (
	"errors"
	"fmt"

	"github.com/Faultbox/voxmesh/pkg/voxel"
)

// Field widths in bits.
const (
	PositionBits  = 6
	ExtentBits    = 6
	DirectionBits = 3
	MaterialBits  = 16
	TextureBits   = 15
)

// Field offsets.
const (
	xShift        = 0
	yShift        = xShift + PositionBits
	zShift        = yShift + PositionBits
	widthShift    = zShift + PositionBits
	heightShift   = widthShift + ExtentBits
	dirShift      = heightShift + ExtentBits
	materialShift = dirShift + DirectionBits
	textureShift  = materialShift + MaterialBits
)

// Maximum field values.
const (
	MaxPosition = 1<<PositionBits - 1
	MaxExtent   = 1<<ExtentBits - 1
	MaxTexture  = 1<<TextureBits - 1
)

// Every field must fit the word; this fails to compile otherwise.
const _ uint64 = 64 - (textureShift + TextureBits)

// PackedSize is the size of a Packed quad in bytes.
const PackedSize = 8

// ErrInvalidDirection is returned for a direction outside the six faces.
var ErrInvalidDirection = errors.New("quad: invalid direction")

// FieldError reports a quad field that does not fit its encoded width.
type FieldError struct {
	Field string
	Value int
	Max   int
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("quad: %s=%d exceeds encodable range [0,%d]", e.Field, e.Value, e.Max)
}

// Quad is one axis-aligned rectangle on a face plane.
//
// X, Y and Z give the chunk-local voxel of the rectangle's minimum corner.
// W and H are the extents along the direction's width and height axes:
// Z and X for Up/Down, Z and Y for East/West, X and Y for South/North.
type Quad struct {
	X, Y, Z  uint8
	W, H     uint8
	Dir      voxel.Direction
	Material voxel.MaterialID
	Texture  voxel.TextureRef
}

// Packed is the 64-bit encoding of a Quad.
type Packed uint64

// Validate checks that every field fits the packed layout.
func (q Quad) Validate() error {
	if !q.Dir.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidDirection, q.Dir)
	}
	for _, f := range []struct {
		name     string
		val, max int
	}{
		{"x", int(q.X), MaxPosition},
		{"y", int(q.Y), MaxPosition},
		{"z", int(q.Z), MaxPosition},
		{"width", int(q.W), MaxExtent},
		{"height", int(q.H), MaxExtent},
		{"texture", int(q.Texture), MaxTexture},
	} {
		if f.val > f.max {
			return &FieldError{Field: f.name, Value: f.val, Max: f.max}
		}
	}
	if q.W == 0 {
		return &FieldError{Field: "width", Value: 0, Max: MaxExtent}
	}
	if q.H == 0 {
		return &FieldError{Field: "height", Value: 0, Max: MaxExtent}
	}
	return nil
}

// Encode packs q. Fields outside their bit width are rejected, never truncated.
func Encode(q Quad) (Packed, error) {
	if err := q.Validate(); err != nil {
		return 0, err
	}
	return Packed(uint64(q.X)<<xShift |
		uint64(q.Y)<<yShift |
		uint64(q.Z)<<zShift |
		uint64(q.W)<<widthShift |
		uint64(q.H)<<heightShift |
		uint64(q.Dir)<<dirShift |
		uint64(q.Material)<<materialShift |
		uint64(q.Texture)<<textureShift), nil
}

// MustEncode is like Encode but panics on an invalid quad.
func MustEncode(q Quad) Packed {
	p, err := Encode(q)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Packed) field(shift, bits uint) uint64 {
	return uint64(p) >> shift & (1<<bits - 1)
}

// X returns the origin x coordinate.
func (p Packed) X() uint8 { return uint8(p.field(xShift, PositionBits)) }

// Y returns the origin y coordinate.
func (p Packed) Y() uint8 { return uint8(p.field(yShift, PositionBits)) }

// Z returns the origin z coordinate.
func (p Packed) Z() uint8 { return uint8(p.field(zShift, PositionBits)) }

// W returns the width extent.
func (p Packed) W() uint8 { return uint8(p.field(widthShift, ExtentBits)) }

// H returns the height extent.
func (p Packed) H() uint8 { return uint8(p.field(heightShift, ExtentBits)) }

// Dir returns the face direction.
func (p Packed) Dir() voxel.Direction {
	return voxel.Direction(p.field(dirShift, DirectionBits))
}

// Material returns the source block's material id.
func (p Packed) Material() voxel.MaterialID {
	return voxel.MaterialID(p.field(materialShift, MaterialBits))
}

// Texture returns the face's texture reference.
func (p Packed) Texture() voxel.TextureRef {
	return voxel.TextureRef(p.field(textureShift, TextureBits))
}

// Decode unpacks p.
func (p Packed) Decode() Quad {
	return Quad{
		X:        p.X(),
		Y:        p.Y(),
		Z:        p.Z(),
		W:        p.W(),
		H:        p.H(),
		Dir:      p.Dir(),
		Material: p.Material(),
		Texture:  p.Texture(),
	}
}

// String formats the decoded quad for debugging.
func (p Packed) String() string {
	return p.Decode().String()
}

// String formats the quad for debugging.
func (q Quad) String() string {
	return fmt.Sprintf("%s@(%d,%d,%d) %dx%d mat=%d tex=%d", q.Dir, q.X, q.Y, q.Z, q.W, q.H, q.Material, q.Texture)
}

// Cells calls fn for every chunk-local voxel covered by the quad.
func (q Quad) Cells(fn func(x, y, z int)) {
	x, y, z := int(q.X), int(q.Y), int(q.Z)
	for h := range int(q.H) {
		for w := range int(q.W) {
			switch q.Dir {
			case voxel.Up, voxel.Down:
				fn(x+h, y, z+w)
			case voxel.East, voxel.West:
				fn(x, y+h, z+w)
			default:
				fn(x+w, y+h, z)
			}
		}
	}
}

// Area returns the number of voxel faces the quad covers.
func (q Quad) Area() int {
	return int(q.W) * int(q.H)
}
