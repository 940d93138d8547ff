package scatter

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/wavemech/bearing/elastic"
	"github.com/wavemech/bearing/source"
)

// BearingPointSource is a point source together with the wave field it
// reflects off a bearing: the original position and amplitude pair, plus the
// pressure and shear reflected potentials produced by the boundary solver at
// one working frequency.
type BearingPointSource struct {
	Position    r2.Vec
	PressureAmp source.Amplitude
	ShearAmp    source.Amplitude
	Pressure    *HelmholtzPotential
	Shear       *HelmholtzPotential
}

// NewBearingPointSource runs the boundary solver for a point source against
// the bearing and captures the resulting reflected potentials alongside the
// source parameters.
func NewBearingPointSource(s *Solver, b elastic.Bearing, pos r2.Vec, pAmp, sAmp source.Amplitude, omega float64, modes []int) (*BearingPointSource, error) {
	pressure, shear, err := s.Solve(b, pos, pAmp, sAmp, omega, modes)
	if err != nil {
		return nil, err
	}
	return &BearingPointSource{
		Position:    pos,
		PressureAmp: pAmp,
		ShearAmp:    sAmp,
		Pressure:    pressure,
		Shear:       shear,
	}, nil
}
