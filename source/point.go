package source

import (
	"math/cmplx"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/wavemech/bearing/elastic"
	"github.com/wavemech/bearing/utils"
)

// NewPoint builds a point source of the given wave family at pos. The field
// at x is amp(ω)·(i/4)·H₀(k·|x-pos|) with k the family's wavenumber, and the
// regular coefficients about a centre follow from Graf's addition theorem:
// mode n carries amp(ω)·(i/4)·H₋ₙ(k·r)·exp(-i·n·θ) with (r, θ) the polar
// coordinates of centre-pos. The Hankel evaluator is supplied by the caller.
func NewPoint(m elastic.Medium, w elastic.WaveType, pos r2.Vec, amp Amplitude, hankel elastic.HankelFunc) Regular {
	return Regular{
		Field: func(x r2.Vec, omega float64) complex128 {
			k := m.Wavenumber(w, omega)
			d := r2.Norm(x.Sub(pos))
			return amp(omega) * complex(0, 0.25) * hankel(0, complex(k*d, 0))
		},
		Coefficients: func(order int, centre r2.Vec, omega float64) []complex128 {
			k := m.Wavenumber(w, omega)
			rad, theta := utils.Polar(centre.Sub(pos))
			scale := amp(omega) * complex(0, 0.25)
			coeffs := make([]complex128, 0, 2*order+1)
			for n := -order; n <= order; n++ {
				h := hankel(-n, complex(k*rad, 0))
				phase := cmplx.Exp(complex(0, -float64(n)*theta))
				coeffs = append(coeffs, scale*h*phase)
			}
			return coeffs
		},
	}
}
