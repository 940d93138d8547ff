package utils

import (
	"math"
	"math/cmplx"
	"testing"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
)

func cdense(r, c int, data ...complex128) *mat.CDense {
	return mat.NewCDense(r, c, data)
}

func maxAbsDiff(a, b *mat.CDense) float64 {
	r, c := a.Dims()
	maxDiff := 0.0
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if d := cmplx.Abs(a.At(i, j) - b.At(i, j)); d > maxDiff {
				maxDiff = d
			}
		}
	}
	return maxDiff
}

func TestCSolveSquare(t *testing.T) {
	// A diagonal system with complex entries has an obvious solution.
	a := cdense(2, 2,
		2+0i, 0,
		0, 0+1i,
	)
	b := cdense(2, 1,
		4+2i,
		3,
	)

	x, err := CSolve(a, b)
	if err != nil {
		t.Fatalf("CSolve failed: %v", err)
	}

	want := cdense(2, 1, 2+1i, -3i)
	if d := maxAbsDiff(x, want); d > 1e-12 {
		t.Errorf("solution error %e", d)
	}
}

func TestCSolveLeastSquares(t *testing.T) {
	// Overdetermined but consistent: b lies in the column space, so the
	// least-squares solution reproduces b exactly.
	a := cdense(3, 2,
		1, 1i,
		1, -1i,
		2, 1,
	)
	xTrue := cdense(2, 1, 1+1i, 2)

	var b mat.CDense
	b.Mul(a, xTrue)

	x, err := CSolve(a, &b)
	if err != nil {
		t.Fatalf("CSolve failed: %v", err)
	}
	if d := maxAbsDiff(x, xTrue); d > 1e-10 {
		t.Errorf("recovered solution error %e", d)
	}

	var recon mat.CDense
	recon.Mul(a, x)
	if d := maxAbsDiff(&recon, &b); d > 1e-10 {
		t.Errorf("residual %e on a consistent system", d)
	}
}

func TestCSolveSingular(t *testing.T) {
	a := cdense(2, 2,
		0, 0,
		0, 0,
	)
	b := cdense(2, 1, 1, 1)
	if _, err := CSolve(a, b); err == nil {
		t.Fatal("expected error for singular system")
	}
}

func TestCSolveRowMismatch(t *testing.T) {
	a := cdense(2, 2, 1, 0, 0, 1)
	b := cdense(3, 1, 1, 1, 1)
	if _, err := CSolve(a, b); err == nil {
		t.Fatal("expected error for mismatched rows")
	}
}

func TestPolar(t *testing.T) {
	cases := []struct {
		v     r2.Vec
		rad   float64
		theta float64
	}{
		{r2.Vec{X: 1, Y: 0}, 1, 0},
		{r2.Vec{X: 0, Y: 2}, 2, math.Pi / 2},
		{r2.Vec{X: -3, Y: 0}, 3, math.Pi},
		{r2.Vec{X: 1, Y: -1}, math.Sqrt2, -math.Pi / 4},
	}
	for _, c := range cases {
		rad, theta := Polar(c.v)
		if math.Abs(rad-c.rad) > 1e-14 || math.Abs(theta-c.theta) > 1e-14 {
			t.Errorf("Polar(%v) = (%g, %g), want (%g, %g)", c.v, rad, theta, c.rad, c.theta)
		}
	}
}
