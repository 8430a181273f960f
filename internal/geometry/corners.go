package geometry

import (
	"github.com/Faultbox/voxmesh/pkg/math"
	"github.com/Faultbox/voxmesh/pkg/quad"
	"github.com/Faultbox/voxmesh/pkg/voxel"
)

// faceLayout describes how a quad of one direction is laid out in space.
type faceLayout struct {
	normal     math.Vec3
	widthAxis  int
	heightAxis int
	// heightFirst places corner 1 along the height axis instead of the width
	// axis. It is chosen per direction so that corners 0..3 run clockwise
	// when the face is viewed from outside.
	heightFirst bool
	// mirrorU flips the texture horizontally so it reads left to right when
	// viewed from outside.
	mirrorU bool
}

var layouts = [voxel.DirectionCount]faceLayout{
	voxel.Up:    {normal: math.Vec3{Y: 1}, widthAxis: voxel.AxisZ, heightAxis: voxel.AxisX, heightFirst: true},
	voxel.Down:  {normal: math.Vec3{Y: -1}, widthAxis: voxel.AxisZ, heightAxis: voxel.AxisX},
	voxel.East:  {normal: math.Vec3{X: 1}, widthAxis: voxel.AxisZ, heightAxis: voxel.AxisY, mirrorU: true},
	voxel.West:  {normal: math.Vec3{X: -1}, widthAxis: voxel.AxisZ, heightAxis: voxel.AxisY, heightFirst: true},
	voxel.South: {normal: math.Vec3{Z: 1}, widthAxis: voxel.AxisX, heightAxis: voxel.AxisY, heightFirst: true},
	voxel.North: {normal: math.Vec3{Z: -1}, widthAxis: voxel.AxisX, heightAxis: voxel.AxisY, mirrorU: true},
}

// cornerSteps gives, per corner, how many width and height extents it lies
// from the origin.
var cornerSteps = [2][4][2]float32{
	{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, // width first
	{{0, 0}, {0, 1}, {1, 1}, {1, 0}}, // height first
}

// quadIndices triangulates corners 0..3.
var quadIndices = [6]uint32{0, 1, 2, 0, 2, 3}

// corners returns the four chunk-local corner positions of q and the
// (width, height) step of each.
func corners(q quad.Quad) (pos [4]math.Vec3, steps [4][2]float32) {
	l := layouts[q.Dir]
	origin := math.Vec3{X: float32(q.X), Y: float32(q.Y), Z: float32(q.Z)}
	if q.Dir.Positive() {
		axis := q.Dir.Axis()
		origin = origin.WithAxis(axis, origin.Axis(axis)+1)
	}

	w, h := float32(q.W), float32(q.H)
	steps = cornerSteps[0]
	if l.heightFirst {
		steps = cornerSteps[1]
	}
	for i, s := range steps {
		p := origin
		p = p.WithAxis(l.widthAxis, p.Axis(l.widthAxis)+s[0]*w)
		p = p.WithAxis(l.heightAxis, p.Axis(l.heightAxis)+s[1]*h)
		pos[i] = p
	}
	return pos, steps
}

// cornerUV returns the texture coordinate of a corner. Textures tile once per
// voxel; the top of the texture sits at the top of the face.
func cornerUV(q quad.Quad, step [2]float32) math.Vec2 {
	w, h := float32(q.W), float32(q.H)
	u := step[0]
	if layouts[q.Dir].mirrorU {
		u = 1 - u
	}
	return math.Vec2{X: inset(u * w), Y: inset((1 - step[1]) * h)}
}

func inset(v float32) float32 {
	if v == 0 {
		return UVEpsilon
	}
	return v - UVEpsilon
}
