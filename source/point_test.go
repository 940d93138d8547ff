package source

import (
	"math"
	"math/cmplx"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/wavemech/bearing/elastic"
)

var testMedium = elastic.Medium{Density: 7800, PressureSpeed: 5900, ShearSpeed: 3200}

// stubHankel is a deterministic stand-in for the external Hankel evaluator;
// the tests here check consistency between a source's two generator
// functions, which holds for any evaluator.
func stubHankel(order int, z complex128) complex128 {
	return cmplx.Exp(1i*z) / complex(float64(order*order)+1, 0)
}

func TestPointSourceOrderZeroConsistency(t *testing.T) {
	// A unit point source expanded to order 0 about a centre at distance d
	// must reproduce hankel(0, k·d)·i/4, the field value at that centre.
	pos := r2.Vec{X: 1, Y: 2}
	centre := r2.Vec{X: 4, Y: 6} // distance 5 from pos
	omega := 2 * math.Pi * 1e4

	for _, w := range []elastic.WaveType{elastic.Pressure, elastic.Shear} {
		t.Run(w.String(), func(t *testing.T) {
			src := NewPoint(testMedium, w, pos, Constant(1), stubHankel)

			coeffs := src.Coefficients(0, centre, omega)
			if len(coeffs) != 1 {
				t.Fatalf("order-0 expansion has %d coefficients", len(coeffs))
			}

			k := testMedium.Wavenumber(w, omega)
			want := complex(0, 0.25) * stubHankel(0, complex(k*5, 0))
			if d := cmplx.Abs(coeffs[0] - want); d > 1e-12*cmplx.Abs(want) {
				t.Errorf("coefficient %v, want %v", coeffs[0], want)
			}
			if d := cmplx.Abs(src.Field(centre, omega) - want); d > 1e-12*cmplx.Abs(want) {
				t.Errorf("field %v, want %v", src.Field(centre, omega), want)
			}
		})
	}
}

func TestPointSourceGrafPhases(t *testing.T) {
	// Mode n of the Graf expansion carries H_{-n}(k·r)·exp(-i·n·θ).
	pos := r2.Vec{}
	centre := r2.Vec{X: 0, Y: 3} // r = 3, θ = π/2
	omega := 1000.0
	order := 3

	src := NewPoint(testMedium, elastic.Pressure, pos, Constant(1), stubHankel)
	coeffs := src.Coefficients(order, centre, omega)
	if len(coeffs) != 2*order+1 {
		t.Fatalf("expansion has %d coefficients, want %d", len(coeffs), 2*order+1)
	}

	k := testMedium.Wavenumber(elastic.Pressure, omega)
	for i, n := 0, -order; n <= order; i, n = i+1, n+1 {
		want := complex(0, 0.25) * stubHankel(-n, complex(k*3, 0)) *
			cmplx.Exp(complex(0, -float64(n)*math.Pi/2))
		if d := cmplx.Abs(coeffs[i] - want); d > 1e-12 {
			t.Errorf("mode %d: coefficient %v, want %v", n, coeffs[i], want)
		}
	}
}

func TestPointSourceWaveFamilySpeed(t *testing.T) {
	// The shear variant must use the shear wavenumber, not the pressure one.
	pos := r2.Vec{}
	x := r2.Vec{X: 2, Y: 0}
	omega := 500.0

	p := NewPoint(testMedium, elastic.Pressure, pos, Constant(1), stubHankel)
	s := NewPoint(testMedium, elastic.Shear, pos, Constant(1), stubHankel)

	kp := omega / testMedium.PressureSpeed
	ks := omega / testMedium.ShearSpeed
	wantP := complex(0, 0.25) * stubHankel(0, complex(kp*2, 0))
	wantS := complex(0, 0.25) * stubHankel(0, complex(ks*2, 0))

	if d := cmplx.Abs(p.Field(x, omega) - wantP); d > 1e-14 {
		t.Errorf("pressure field off by %e", d)
	}
	if d := cmplx.Abs(s.Field(x, omega) - wantS); d > 1e-14 {
		t.Errorf("shear field off by %e", d)
	}
}

func TestSuperpositionLinearity(t *testing.T) {
	pos := r2.Vec{X: -1, Y: 0.5}
	x := r2.Vec{X: 3, Y: 1}
	centre := r2.Vec{X: 0.5, Y: -2}
	omega := 750.0
	a1, a2 := complex(2, 1), complex(-0.5, 3)

	s1 := NewPoint(testMedium, elastic.Pressure, pos, Constant(a1), stubHankel)
	s2 := NewPoint(testMedium, elastic.Pressure, pos, Constant(a2), stubHankel)
	sum := NewPoint(testMedium, elastic.Pressure, pos, Constant(a1+a2), stubHankel)
	super := Superpose(s1, s2)

	if d := cmplx.Abs(super.Field(x, omega) - sum.Field(x, omega)); d > 1e-13 {
		t.Errorf("superposed field off by %e", d)
	}

	cSuper := super.Coefficients(4, centre, omega)
	cSum := sum.Coefficients(4, centre, omega)
	for i := range cSum {
		if d := cmplx.Abs(cSuper[i] - cSum[i]); d > 1e-13 {
			t.Errorf("coefficient %d off by %e", i, d)
		}
	}
}

func TestFrequencyDependentAmplitude(t *testing.T) {
	pos := r2.Vec{}
	x := r2.Vec{X: 1, Y: 1}
	amp := func(omega float64) complex128 { return complex(omega/100, 0) }

	src := NewPoint(testMedium, elastic.Shear, pos, amp, stubHankel)
	unit := NewPoint(testMedium, elastic.Shear, pos, Constant(1), stubHankel)

	omega := 400.0
	want := complex(4, 0) * unit.Field(x, omega)
	if d := cmplx.Abs(src.Field(x, omega) - want); d > 1e-13 {
		t.Errorf("frequency-dependent amplitude off by %e", d)
	}
}
