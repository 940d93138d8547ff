// Package source builds the canonical incident excitations: point pressure
// and point shear sources in the plane, and the transversely polarised plane
// shear wave in three dimensions. Each source is a pair of pure functions
// sharing a captured amplitude and medium: an analytic field evaluator and a
// regular-wave coefficient generator about an arbitrary expansion centre.
package source

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Amplitude is the excitation strength as a function of angular frequency.
// Frequency-independent sources wrap their constant with Constant, so the
// evaluation path never type-switches on the amplitude form.
type Amplitude func(omega float64) complex128

// Constant wraps a fixed amplitude into an Amplitude.
func Constant(a complex128) Amplitude {
	return func(float64) complex128 { return a }
}

// Regular is a source whose field representation is finite at its own
// expansion centre. Field evaluates the analytic incident field at a point;
// Coefficients produces the regular-wave expansion coefficients for modes
// -order..order about the given centre, in ascending mode order.
type Regular struct {
	Field        func(x r2.Vec, omega float64) complex128
	Coefficients func(order int, centre r2.Vec, omega float64) []complex128
}

// Superpose combines sources into a single source whose field and
// coefficients are the sums of the parts, which is exact because the
// governing equations are linear.
func Superpose(sources ...Regular) Regular {
	return Regular{
		Field: func(x r2.Vec, omega float64) complex128 {
			var sum complex128
			for _, s := range sources {
				sum += s.Field(x, omega)
			}
			return sum
		},
		Coefficients: func(order int, centre r2.Vec, omega float64) []complex128 {
			sum := make([]complex128, 2*order+1)
			for _, s := range sources {
				for i, c := range s.Coefficients(order, centre, omega) {
					sum[i] += c
				}
			}
			return sum
		},
	}
}
