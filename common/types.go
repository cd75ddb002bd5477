// package common contains common types that are used throughout the plotting engine. They are not interface-wrapped structs, just plain structs
// that express commonly used data-types.
package common

import "math"

// Vec3 is a point or direction in data space.
type Vec3 = [3]float64

// RGBA is a color with float channels in [0, 1].
type RGBA = [4]float32

// Box is an axis-aligned bounding box stored as [min, max].
// Being a fixed-size array it copies by value, so assigning a Box never aliases another.
type Box [2][3]float64

// Black is opaque black, the fallback for unparseable colors.
var Black = RGBA{0, 0, 0, 1}

// EmptyBox returns the inverted infinite box used as the identity for bound folding.
//
// Returns:
//   - Box: min components +Inf, max components -Inf
func EmptyBox() Box {
	inf := math.Inf(1)
	return Box{{inf, inf, inf}, {-inf, -inf, -inf}}
}

// Center returns the midpoint of the box.
//
// Returns:
//   - Vec3: 0.5 * (min + max) per axis
func (b Box) Center() Vec3 {
	return Vec3{
		0.5 * (b[0][0] + b[1][0]),
		0.5 * (b[0][1] + b[1][1]),
		0.5 * (b[0][2] + b[1][2]),
	}
}

// Extent returns max - min along axis i.
func (b Box) Extent(i int) float64 {
	return b[1][i] - b[0][i]
}

// Contains reports whether p lies inside the box, boundaries included.
func (b Box) Contains(p Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b[0][i] || p[i] > b[1][i] {
			return false
		}
	}
	return true
}

// IsFinite reports whether every component of the box is a finite number.
func (b Box) IsFinite() bool {
	for _, corner := range b {
		for _, v := range corner {
			if math.IsInf(v, 0) || math.IsNaN(v) {
				return false
			}
		}
	}
	return true
}
