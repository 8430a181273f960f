package geometry

import (
	"errors"
	"fmt"

	"github.com/Faultbox/voxmesh/internal/mesher"
	"github.com/Faultbox/voxmesh/pkg/math"
	"github.com/Faultbox/voxmesh/pkg/quad"
	"github.com/Faultbox/voxmesh/pkg/voxel"
)

// Emitter errors.
var (
	ErrNilRegistry = errors.New("geometry: nil registry")
	ErrNilResult   = errors.New("geometry: nil mesh result")
)

// Emitter converts mesh results into vertex buffers.
type Emitter struct {
	// Origin is added to every position, typically the chunk's world offset.
	Origin math.Vec3
	// Scale is the edge length of one voxel. Zero means 1.
	Scale float32

	reg voxel.Registry
}

// NewEmitter creates an emitter that groups faces using reg.
func NewEmitter(reg voxel.Registry) (*Emitter, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}
	return &Emitter{Scale: 1, reg: reg}, nil
}

type surfaceKey struct {
	material voxel.MaterialID
	dir      voxel.Direction
}

// BuildSurfaces expands every quad of res into surfaces keyed by material and
// direction. Directional blocks get one surface per face direction, all other
// blocks a single surface filed under voxel.Up. Surfaces are returned in order
// of first appearance. An empty result yields no surfaces.
func (e *Emitter) BuildSurfaces(res *mesher.MeshResult) ([]Surface, error) {
	if res == nil {
		return nil, ErrNilResult
	}

	var surfaces []Surface
	index := make(map[surfaceKey]int)
	for i, p := range res.Quads {
		q := p.Decode()
		if !q.Dir.Valid() {
			return nil, fmt.Errorf("quad %d: %w", i, quad.ErrInvalidDirection)
		}

		key := surfaceKey{material: q.Material, dir: voxel.Up}
		if e.reg.IsDirectional(q.Material) {
			key.dir = q.Dir
		}
		si, ok := index[key]
		if !ok {
			si = len(surfaces)
			index[key] = si
			surfaces = append(surfaces, Surface{
				Material:  key.material,
				Direction: key.dir,
				Texture:   q.Texture,
			})
		}
		e.AppendQuad(&surfaces[si], q)
	}
	return surfaces, nil
}

// AppendQuad adds the four vertices and two triangles of q to s.
func (e *Emitter) AppendQuad(s *Surface, q quad.Quad) {
	pos, steps := corners(q)
	normal := layouts[q.Dir].normal

	base := uint32(len(s.Positions))
	for i := range pos {
		s.Positions = append(s.Positions, e.world(pos[i]))
		s.Normals = append(s.Normals, normal)
		s.UVs = append(s.UVs, cornerUV(q, steps[i]))
	}
	for _, idx := range quadIndices {
		s.Indices = append(s.Indices, base+idx)
	}
}

// BuildCollision expands res into a single position-only mesh.
func (e *Emitter) BuildCollision(res *mesher.MeshResult) (*CollisionMesh, error) {
	if res == nil {
		return nil, ErrNilResult
	}

	c := &CollisionMesh{}
	if res.Empty() {
		return c, nil
	}
	c.Positions = make([]math.Vec3, 0, 4*res.Len())
	c.Indices = make([]uint32, 0, 6*res.Len())

	for i, p := range res.Quads {
		q := p.Decode()
		if !q.Dir.Valid() {
			return nil, fmt.Errorf("quad %d: %w", i, quad.ErrInvalidDirection)
		}
		pos, _ := corners(q)
		base := uint32(len(c.Positions))
		for _, v := range pos {
			w := e.world(v)
			c.Positions = append(c.Positions, w)
			c.Bounds.Extend(w)
		}
		for _, idx := range quadIndices {
			c.Indices = append(c.Indices, base+idx)
		}
	}
	return c, nil
}

func (e *Emitter) world(p math.Vec3) math.Vec3 {
	scale := e.Scale
	if scale == 0 {
		scale = 1
	}
	return e.Origin.Add(p.Scale(scale))
}
