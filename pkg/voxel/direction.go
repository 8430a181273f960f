package voxel

import "fmt"

// Direction identifies one of the six axis-aligned face directions.
type Direction uint8

// Face directions. The order is part of the packed quad format.
const (
	Up    Direction = 0 // +Y
	Down  Direction = 1 // -Y
	East  Direction = 2 // +X
	West  Direction = 3 // -X
	South Direction = 4 // +Z
	North Direction = 5 // -Z
)

// DirectionCount is the number of face directions.
const DirectionCount = 6

// Directions lists all face directions in encoding order.
var Directions = [DirectionCount]Direction{Up, Down, East, West, South, North}

// Axis indices returned by Direction.Axis.
const (
	AxisX = 0
	AxisY = 1
	AxisZ = 2
)

// Valid reports whether d is one of the six face directions.
func (d Direction) Valid() bool {
	return d < DirectionCount
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "+Y"
	case Down:
		return "-Y"
	case East:
		return "+X"
	case West:
		return "-X"
	case South:
		return "+Z"
	case North:
		return "-Z"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Axis returns the axis the face normal lies on.
func (d Direction) Axis() int {
	switch d {
	case Up, Down:
		return AxisY
	case East, West:
		return AxisX
	default:
		return AxisZ
	}
}

// Positive reports whether the face normal points along the positive axis.
func (d Direction) Positive() bool {
	return d%2 == 0
}

// Opposite returns the direction facing the other way.
func (d Direction) Opposite() Direction {
	return d ^ 1
}

// Normal returns the integer outward normal of the face.
func (d Direction) Normal() [3]int {
	var n [3]int
	if !d.Valid() {
		return n
	}
	if d.Positive() {
		n[d.Axis()] = 1
	} else {
		n[d.Axis()] = -1
	}
	return n
}
