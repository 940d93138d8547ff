// Package modal implements the duality transform between sampled boundary
// fields and truncated Fourier-mode coefficients, together with the boundary
// records the rest of the module exchanges and their energy normalization.
package modal

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ModeCountError reports a fit requested with more retained modes than
// angular samples. Such a system is under-determined and is rejected rather
// than silently truncated.
type ModeCountError struct {
	Modes   int
	Samples int
}

func (e ModeCountError) Error() string {
	return fmt.Sprintf("mode count %d exceeds sample count %d", e.Modes, e.Samples)
}

// ShapeMismatchError reports field or coefficient array dimensions that are
// inconsistent with the declared angle or mode counts.
type ShapeMismatchError struct {
	What string
	Got  int
	Want int
}

func (e ShapeMismatchError) Error() string {
	return fmt.Sprintf("%s has %d rows, expected %d", e.What, e.Got, e.Want)
}

// BoundaryData pairs field values sampled at discrete boundary angles with
// their truncated Fourier-mode representation. Fields is N×C (angle by field
// component) and Coefficients is M×C (mode by component); either may be nil
// when only one representation is known. The record is treated as an
// immutable value: the With* constructors and the transform entry points
// return new records, and only Normalize mutates in place.
type BoundaryData struct {
	Angles       []float64
	Fields       *mat.CDense
	Modes        []int
	Coefficients *mat.CDense
}

// NewBoundaryData builds a record from sampled values. fields must have one
// row per angle.
func NewBoundaryData(angles []float64, fields *mat.CDense) (*BoundaryData, error) {
	if fields != nil {
		if r, _ := fields.Dims(); r != len(angles) {
			return nil, ShapeMismatchError{What: "fields", Got: r, Want: len(angles)}
		}
	}
	return &BoundaryData{Angles: angles, Fields: fields}, nil
}

// WithCoefficients returns a copy of the record with the modal side replaced.
// The angle and field arrays are shared with the receiver.
func (b *BoundaryData) WithCoefficients(modes []int, coeffs *mat.CDense) *BoundaryData {
	return &BoundaryData{
		Angles:       b.Angles,
		Fields:       b.Fields,
		Modes:        modes,
		Coefficients: coeffs,
	}
}

// WithFields returns a copy of the record with the sampled side replaced.
// The mode and coefficient arrays are shared with the receiver.
func (b *BoundaryData) WithFields(angles []float64, fields *mat.CDense) *BoundaryData {
	return &BoundaryData{
		Angles:       angles,
		Fields:       fields,
		Modes:        b.Modes,
		Coefficients: b.Coefficients,
	}
}

// Components returns the number of field components carried by the record,
// from whichever representation is populated.
func (b *BoundaryData) Components() int {
	if b.Fields != nil {
		_, c := b.Fields.Dims()
		return c
	}
	if b.Coefficients != nil {
		_, c := b.Coefficients.Dims()
		return c
	}
	return 0
}

// BoundaryBasis is an ordered collection of boundary records sharing a common
// boundary, one record per excitation or basis vector.
type BoundaryBasis []*BoundaryData

// validModes checks that a mode index set is sorted and free of duplicates.
func validModes(modes []int) error {
	for i := 1; i < len(modes); i++ {
		if modes[i] <= modes[i-1] {
			return fmt.Errorf("mode set must be sorted and unique, got %d after %d", modes[i], modes[i-1])
		}
	}
	return nil
}
