package mesher

import (
	"github.com/Faultbox/voxmesh/pkg/quad"
	"github.com/Faultbox/voxmesh/pkg/voxel"
)

// Range is a slice of MeshResult.Quads belonging to one direction.
type Range struct {
	Begin int
	Len   int
}

// End returns the exclusive end index.
func (r Range) End() int {
	return r.Begin + r.Len
}

// Stats summarises one meshing call.
type Stats struct {
	Faces     int // visible face cells
	Quads     int // emitted quads
	Anomalies int // face cells skipped because their block was missing
}

// MeshResult is the output of one meshing call. Quads are grouped by
// direction in voxel.Directions order.
type MeshResult struct {
	Quads  []quad.Packed
	Ranges [voxel.DirectionCount]Range
	Stats  Stats
	Merged bool
}

// Len returns the number of quads.
func (r *MeshResult) Len() int {
	return len(r.Quads)
}

// Empty reports whether no face is visible.
func (r *MeshResult) Empty() bool {
	return len(r.Quads) == 0
}

// Direction returns the quads facing d.
func (r *MeshResult) Direction(d voxel.Direction) []quad.Packed {
	if !d.Valid() {
		return nil
	}
	rg := r.Ranges[d]
	return r.Quads[rg.Begin:rg.End()]
}

// Blocks returns the material of every quad, parallel to Quads.
func (r *MeshResult) Blocks() []voxel.MaterialID {
	out := make([]voxel.MaterialID, len(r.Quads))
	for i, p := range r.Quads {
		out[i] = p.Material()
	}
	return out
}

// Area returns the number of face cells covered by all quads.
func (r *MeshResult) Area() int {
	total := 0
	for _, p := range r.Quads {
		total += int(p.W()) * int(p.H())
	}
	return total
}
