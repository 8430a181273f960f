// Package voxel provides the chunk volume, block and registry types shared by
// the mesher and its callers.
package voxel

// MaterialID identifies a block material. Zero is air.
type MaterialID uint16

// Air is the empty material.
const Air MaterialID = 0

// TextureRef is an index into the host's texture array.
type TextureRef uint16

// Block describes a material's meshing capabilities.
type Block struct {
	ID   MaterialID `yaml:"id"`
	Name string     `yaml:"name"`

	// Opaque blocks hide every neighbouring face.
	Opaque bool `yaml:"opaque"`
	// Transparent blocks (liquids) only occlude other transparent or opaque
	// blocks and only render their top face.
	Transparent bool `yaml:"transparent"`
	// Directional blocks use a different texture per face direction.
	Directional bool `yaml:"directional"`

	Textures [DirectionCount]TextureRef `yaml:"-"`
}

// Texture returns the texture used for the face in direction d.
// Non-directional blocks always use their Up texture.
func (b Block) Texture(d Direction) TextureRef {
	if !b.Directional || !d.Valid() {
		return b.Textures[Up]
	}
	return b.Textures[d]
}

// SurfaceDirection returns the direction used to group this block's faces:
// the face direction itself for directional blocks, Up otherwise.
func (b Block) SurfaceDirection(d Direction) Direction {
	if b.Directional {
		return d
	}
	return Up
}

// Registry maps material identifiers to block definitions.
// Implementations must be safe for concurrent reads.
type Registry interface {
	Block(id MaterialID) (Block, bool)
	IsOpaque(id MaterialID) bool
	IsTransparent(id MaterialID) bool
	IsDirectional(id MaterialID) bool
	Texture(id MaterialID, d Direction) TextureRef
}
