package modal

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// scaleInPlace multiplies every entry of m by f. A nil matrix is a no-op.
func scaleInPlace(m *mat.CDense, f complex128) {
	if m == nil {
		return
	}
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.Set(i, j, m.At(i, j)*f)
		}
	}
}

// energy returns the boundary energy of the record: the cyclic trapezoid
// approximation of the contour integral of |field|² when samples are
// present, else the exact Parseval energy 2π·‖coefficients‖² of the modal
// side, else zero.
func (b *BoundaryData) energy() float64 {
	if b.Fields != nil && len(b.Angles) > 1 {
		return b.sampledEnergy()
	}
	if b.Coefficients != nil {
		return b.parsevalEnergy()
	}
	return 0
}

// sampledEnergy averages adjacent samples and weights each averaged value by
// the forward angular gap. The wrap-closing segment (last sample back to the
// first) is excluded from the sum.
func (b *BoundaryData) sampledEnergy() float64 {
	n, c := b.Fields.Dims()
	var sum float64
	for i := 0; i < n-1; i++ {
		gap := b.Angles[i+1] - b.Angles[i]
		for j := 0; j < c; j++ {
			avg := (b.Fields.At(i, j) + b.Fields.At(i+1, j)) / 2
			sum += (real(avg)*real(avg) + imag(avg)*imag(avg)) * gap
		}
	}
	return sum
}

func (b *BoundaryData) parsevalEnergy() float64 {
	m, c := b.Coefficients.Dims()
	var sum float64
	for i := 0; i < m; i++ {
		for j := 0; j < c; j++ {
			sum += math.Pow(cmplx.Abs(b.Coefficients.At(i, j)), 2)
		}
	}
	return 2 * math.Pi * sum
}

// Normalize rescales the record to unit boundary energy, dividing both the
// sampled and modal arrays in place by the square root of the energy. A
// record with neither representation populated, or with zero energy, is left
// unchanged. This is the only mutating operation on boundary records.
func (b *BoundaryData) Normalize() {
	e := b.energy()
	if e <= 0 {
		return
	}
	scale := complex(1/math.Sqrt(e), 0)
	scaleInPlace(b.Fields, scale)
	scaleInPlace(b.Coefficients, scale)
}

// NormalizeBasis normalizes every record of the basis in place and returns
// the basis for chaining. Callers needing the pre-normalized values must
// copy beforehand.
func NormalizeBasis(basis BoundaryBasis) BoundaryBasis {
	for _, b := range basis {
		b.Normalize()
	}
	return basis
}
