package utils

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Polar returns the polar coordinates (radius, angle) of a 2-D vector. The
// angle is in (-π, π] measured from the positive x axis.
func Polar(v r2.Vec) (rad, theta float64) {
	return r2.Norm(v), math.Atan2(v.Y, v.X)
}
