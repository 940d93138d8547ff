// Package scatter assembles and solves the per-angular-mode boundary systems
// that turn an incident source into reflected-wave expansion coefficients
// for an annular structure. Angular modes decouple by orthogonality of the
// exponential basis, so each mode is an independent small linear solve; the
// translation and boundary-condition matrices are produced by external
// evaluators and consumed through the contracts in package elastic.
package scatter

import (
	"gonum.org/v1/gonum/mat"

	"github.com/wavemech/bearing/elastic"
)

// HelmholtzPotential is a reflected wave field of one wave family,
// represented by its modal coefficients at a single working frequency.
// Coefficients is 2×len(Modes): row is the expansion degree, column follows
// the declared mode ordering. Immutable once built.
type HelmholtzPotential struct {
	Wave         elastic.WaveType
	Speed        float64
	Wavenumber   float64
	Modes        []int
	Coefficients *mat.CDense
}

func newPotential(w elastic.WaveType, m elastic.Medium, omega float64, modes []int, coeffs *mat.CDense) *HelmholtzPotential {
	return &HelmholtzPotential{
		Wave:         w,
		Speed:        m.Speed(w),
		Wavenumber:   m.Wavenumber(w, omega),
		Modes:        modes,
		Coefficients: coeffs,
	}
}
