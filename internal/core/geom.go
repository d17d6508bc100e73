// Package core provides fundamental types and utilities for the aquarium.
// It contains no external dependencies on the terminal layer (especially no
// Bubble Tea) to keep the simulation pure and testable.
package core

// Offset is an integer cell position or displacement in tank coordinates.
// X grows to the right, Y grows downward.
type Offset struct {
	X, Y int
}

// Pt creates an Offset.
func Pt(x, y int) Offset {
	return Offset{X: x, Y: y}
}

// Add returns the component-wise sum of two offsets.
func (o Offset) Add(d Offset) Offset {
	return Offset{X: o.X + d.X, Y: o.Y + d.Y}
}

// Sub returns the component-wise difference o - d.
func (o Offset) Sub(d Offset) Offset {
	return Offset{X: o.X - d.X, Y: o.Y - d.Y}
}

// DistSq returns the squared euclidean distance between two offsets.
func (o Offset) DistSq(d Offset) int {
	dx, dy := o.X-d.X, o.Y-d.Y
	return dx*dx + dy*dy
}

// The four orthogonal neighbour displacements, in down, up, right, left order.
var (
	Down  = Offset{0, 1}
	Up    = Offset{0, -1}
	Right = Offset{1, 0}
	Left  = Offset{-1, 0}
)

// Orthogonal lists the four orthogonal neighbour displacements.
func Orthogonal() [4]Offset {
	return [4]Offset{Down, Up, Right, Left}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or 1 according to the sign of x.
func Sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
