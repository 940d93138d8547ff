package source

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/wavemech/bearing/elastic"
)

// orthoTol bounds |direction·polarisation| for a valid transverse wave.
const orthoTol = 1e-10

// PlaneShear is a three-dimensional plane shear wave propagating along
// Direction and polarised along the perpendicular Polarisation, both unit
// vectors.
type PlaneShear struct {
	Medium       elastic.Medium
	Position     r3.Vec
	Direction    r3.Vec
	Polarisation r3.Vec
	Amp          Amplitude
}

// NewPlaneShear validates and normalizes the geometry of a plane shear
// source. The direction and polarisation must be non-zero and perpendicular.
func NewPlaneShear(m elastic.Medium, pos, dir, pol r3.Vec, amp Amplitude) (*PlaneShear, error) {
	if r3.Norm(dir) == 0 || r3.Norm(pol) == 0 {
		return nil, fmt.Errorf("direction and polarisation must be non-zero")
	}
	dir = r3.Unit(dir)
	pol = r3.Unit(pol)
	if math.Abs(r3.Dot(dir, pol)) > orthoTol {
		return nil, fmt.Errorf("polarisation must be perpendicular to direction, dot product %g", r3.Dot(dir, pol))
	}
	return &PlaneShear{Medium: m, Position: pos, Direction: dir, Polarisation: pol, Amp: amp}, nil
}

// phase is the complex amplitude of the wave at x: amp(ω)·exp(i·ks·(x-pos)·d).
func (p *PlaneShear) phase(x r3.Vec, omega float64) complex128 {
	ks := p.Medium.Wavenumber(elastic.Shear, omega)
	return p.Amp(omega) * cmplx.Exp(complex(0, ks*r3.Dot(x.Sub(p.Position), p.Direction)))
}

// Field evaluates the vector displacement field at x.
func (p *PlaneShear) Field(x r3.Vec, omega float64) [3]complex128 {
	ph := p.phase(x, omega)
	return [3]complex128{
		ph * complex(p.Polarisation.X, 0),
		ph * complex(p.Polarisation.Y, 0),
		ph * complex(p.Polarisation.Z, 0),
	}
}

// SphericalIndex maps a (degree, order) pair to its position in the flat
// coefficient layout l²+l+m used by SphericalCoefficients.
func SphericalIndex(l, m int) int {
	return l*l + l + m
}

// SphericalCoefficients expands the wave in regular vector spherical
// harmonics about centre up to the given degree, returning the pressure, Φ
// and χ potential coefficient streams, each of length (order+1)² indexed by
// l²+l+m. A transversely polarised plane wave excites no pressure potential,
// and its shear streams vanish except at |m| = 1; the Φ stream carries a
// leading factor m that the χ stream omits, and both are divided by -i·ks.
func (p *PlaneShear) SphericalCoefficients(order int, centre r3.Vec, omega float64) (pressure, phi, chi []complex128) {
	size := (order + 1) * (order + 1)
	pressure = make([]complex128, size)
	phi = make([]complex128, size)
	chi = make([]complex128, size)

	ks := p.Medium.Wavenumber(elastic.Shear, omega)
	// Field at the expansion centre projected on the polarisation.
	a0 := p.phase(centre, omega)
	div := complex(0, -ks)

	il := complex(1, 0) // i^l, advanced once per degree
	for l := 0; l <= order; l++ {
		if l > 0 {
			root := complex(math.Sqrt(math.Pi*float64(2*l+1)/float64(l*(l+1))), 0)
			base := a0 * il * root / div
			for _, m := range [2]int{-1, 1} {
				phi[SphericalIndex(l, m)] = complex(float64(m), 0) * base
				chi[SphericalIndex(l, m)] = base
			}
		}
		il *= complex(0, 1)
	}
	return pressure, phi, chi
}
