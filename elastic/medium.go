// Package elastic holds the medium and structure descriptors shared by the
// modal transforms, the incident sources, and the boundary solver, plus the
// contracts of the external special-function evaluators. The package
// intentionally does not implement any special functions itself; it operates
// on matrices produced by external evaluator backends.
package elastic

import "fmt"

// WaveType tags the two bulk wave families of an isotropic elastic medium.
type WaveType int

const (
	Pressure WaveType = iota
	Shear
)

func (w WaveType) String() string {
	switch w {
	case Pressure:
		return "pressure"
	case Shear:
		return "shear"
	default:
		return fmt.Sprintf("WaveType(%d)", int(w))
	}
}

// Medium describes an isotropic elastic medium by its density and the two
// bulk wave speeds.
type Medium struct {
	Density       float64
	PressureSpeed float64
	ShearSpeed    float64
}

// Speed returns the wave speed of the given wave family.
func (m Medium) Speed(w WaveType) float64 {
	if w == Pressure {
		return m.PressureSpeed
	}
	return m.ShearSpeed
}

// Wavenumber returns ω/c for the given wave family at angular frequency ω.
func (m Medium) Wavenumber(w WaveType, omega float64) float64 {
	return omega / m.Speed(w)
}

// Boundary identifies one of the two concentric boundaries of a bearing.
type Boundary int

const (
	InnerBoundary Boundary = iota
	OuterBoundary
)

func (b Boundary) String() string {
	if b == InnerBoundary {
		return "inner"
	}
	return "outer"
}

// BoundaryKind is the physical condition imposed at a boundary. The tag is
// opaque to the solver; it is passed through to the boundary-condition
// generators, which decide what traction/displacement rows it produces.
type BoundaryKind int

const (
	TractionFree BoundaryKind = iota
	DisplacementMatched
)

// Bearing is the annular structure: two concentric circular boundaries
// enclosing an elastic medium.
type Bearing struct {
	Medium      Medium
	InnerRadius float64
	OuterRadius float64
	InnerKind   BoundaryKind
	OuterKind   BoundaryKind
}

// Radius returns the radius of the named boundary.
func (b Bearing) Radius(bd Boundary) float64 {
	if bd == InnerBoundary {
		return b.InnerRadius
	}
	return b.OuterRadius
}
