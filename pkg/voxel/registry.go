package voxel

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Registry errors.
var (
	ErrAirBlock       = errors.New("block id 0 is reserved for air")
	ErrDuplicateBlock = errors.New("duplicate block id")
	ErrBlockFlags     = errors.New("block cannot be both opaque and transparent")
)

// MapRegistry is an in-memory Registry. It is not safe to Register while
// meshing is in progress; reads are safe from any number of goroutines.
type MapRegistry struct {
	blocks map[MaterialID]Block
}

// NewMapRegistry creates a registry holding the given blocks.
func NewMapRegistry(blocks ...Block) (*MapRegistry, error) {
	r := &MapRegistry{blocks: make(map[MaterialID]Block, len(blocks))}
	for _, b := range blocks {
		if err := r.Register(b); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a block definition.
func (r *MapRegistry) Register(b Block) error {
	if b.ID == Air {
		return ErrAirBlock
	}
	if b.Opaque && b.Transparent {
		return fmt.Errorf("%w: %d (%s)", ErrBlockFlags, b.ID, b.Name)
	}
	if _, ok := r.blocks[b.ID]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateBlock, b.ID)
	}
	r.blocks[b.ID] = b
	return nil
}

// Block returns the definition for id.
func (r *MapRegistry) Block(id MaterialID) (Block, bool) {
	b, ok := r.blocks[id]
	return b, ok
}

// IsOpaque reports whether id is a registered opaque block.
func (r *MapRegistry) IsOpaque(id MaterialID) bool {
	return r.blocks[id].Opaque
}

// IsTransparent reports whether id is a registered transparent occluder.
func (r *MapRegistry) IsTransparent(id MaterialID) bool {
	return r.blocks[id].Transparent
}

// IsDirectional reports whether id uses per-direction textures.
func (r *MapRegistry) IsDirectional(id MaterialID) bool {
	return r.blocks[id].Directional
}

// Texture returns the texture for the given face of id.
func (r *MapRegistry) Texture(id MaterialID, d Direction) TextureRef {
	return r.blocks[id].Texture(d)
}

// Len returns the number of registered blocks.
func (r *MapRegistry) Len() int {
	return len(r.blocks)
}

// All returns the registered blocks ordered by ID.
func (r *MapRegistry) All() []Block {
	out := make([]Block, 0, len(r.blocks))
	for _, b := range r.blocks {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// registryFile is the YAML layout of a block registry file.
type registryFile struct {
	Blocks []blockEntry `yaml:"blocks"`
}

type blockEntry struct {
	Block    `yaml:",inline"`
	Texture  TextureRef    `yaml:"texture"`
	Textures *faceTextures `yaml:"textures"`
}

type faceTextures struct {
	Up    TextureRef `yaml:"up"`
	Down  TextureRef `yaml:"down"`
	East  TextureRef `yaml:"east"`
	West  TextureRef `yaml:"west"`
	South TextureRef `yaml:"south"`
	North TextureRef `yaml:"north"`
}

// ParseRegistry builds a registry from YAML data of the form:
//
//	blocks:
//	  - id: 1
//	    name: stone
//	    opaque: true
//	    texture: 3
//	  - id: 2
//	    name: grass
//	    opaque: true
//	    directional: true
//	    textures: {up: 0, down: 2, east: 1, west: 1, south: 1, north: 1}
func ParseRegistry(data []byte) (*MapRegistry, error) {
	var f registryFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing registry: %w", err)
	}

	r := &MapRegistry{blocks: make(map[MaterialID]Block, len(f.Blocks))}
	for _, e := range f.Blocks {
		b := e.Block
		for i := range b.Textures {
			b.Textures[i] = e.Texture
		}
		if t := e.Textures; t != nil {
			b.Textures = [DirectionCount]TextureRef{t.Up, t.Down, t.East, t.West, t.South, t.North}
		}
		if err := r.Register(b); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// LoadRegistry reads a YAML registry file.
func LoadRegistry(path string) (*MapRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	r, err := ParseRegistry(data)
	if err != nil {
		return nil, fmt.Errorf("loading registry from %s: %w", path, err)
	}
	return r, nil
}
