// Package geometry expands packed quads into renderable vertex buffers.
package geometry

import (
	"github.com/Faultbox/voxmesh/pkg/math"
	"github.com/Faultbox/voxmesh/pkg/voxel"
)

// UVEpsilon insets texture coordinates at quad edges so atlas neighbours
// do not bleed in.
const UVEpsilon = 0.0014

// Surface holds all faces of one (material, direction) group. Every surface
// maps to a single material on the render host.
type Surface struct {
	Material  voxel.MaterialID
	Direction voxel.Direction
	Texture   voxel.TextureRef

	Positions []math.Vec3
	Normals   []math.Vec3
	UVs       []math.Vec2
	Indices   []uint32
}

// VertexCount returns the number of vertices.
func (s *Surface) VertexCount() int {
	return len(s.Positions)
}

// TriangleCount returns the number of triangles.
func (s *Surface) TriangleCount() int {
	return len(s.Indices) / 3
}

// ByteSize returns the size of the surface's buffers in bytes.
func (s *Surface) ByteSize() int {
	return len(s.Positions)*12 + len(s.Normals)*12 + len(s.UVs)*8 + len(s.Indices)*4
}

// Bounds returns the bounding box of the surface.
func (s *Surface) Bounds() math.Bounds {
	var b math.Bounds
	for _, p := range s.Positions {
		b.Extend(p)
	}
	return b
}

// CollisionMesh is a position-only triangle mesh for physics.
type CollisionMesh struct {
	Positions []math.Vec3
	Indices   []uint32
	Bounds    math.Bounds
}

// TriangleCount returns the number of triangles.
func (c *CollisionMesh) TriangleCount() int {
	return len(c.Indices) / 3
}

// ByteSize returns the size of the mesh buffers in bytes.
func (c *CollisionMesh) ByteSize() int {
	return len(c.Positions)*12 + len(c.Indices)*4
}
