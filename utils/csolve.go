// Package utils provides the shared numeric plumbing of the module: complex
// linear solves bridged onto gonum's real factorizations, polar-coordinate
// conversion, and a deterministic parallel map.
package utils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// realEmbed builds the real 2n×2m block matrix [[Re A, -Im A], [Im A, Re A]]
// of a complex n×m matrix. The embedding is norm-preserving, so a real
// least-squares solution of the embedded system is the complex least-squares
// solution of the original.
func realEmbed(a *mat.CDense) *mat.Dense {
	n, m := a.Dims()
	r := mat.NewDense(2*n, 2*m, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			v := a.At(i, j)
			r.Set(i, j, real(v))
			r.Set(i, m+j, -imag(v))
			r.Set(n+i, j, imag(v))
			r.Set(n+i, m+j, real(v))
		}
	}
	return r
}

// realStack builds the real 2n×c matrix [Re B; Im B] of a complex n×c matrix.
func realStack(b *mat.CDense) *mat.Dense {
	n, c := b.Dims()
	r := mat.NewDense(2*n, c, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < c; j++ {
			v := b.At(i, j)
			r.Set(i, j, real(v))
			r.Set(n+i, j, imag(v))
		}
	}
	return r
}

// CSolve solves the complex linear system A·X = B in the least-squares sense
// (exactly when A is square and non-singular). A is n×m, B is n×c, and the
// returned X is m×c. gonum carries no complex solver, so the system is
// embedded into the equivalent real 2n×2m one and handed to Dense.Solve.
func CSolve(a, b *mat.CDense) (*mat.CDense, error) {
	an, am := a.Dims()
	bn, bc := b.Dims()
	if an != bn {
		return nil, fmt.Errorf("row mismatch: A is %d×%d, B is %d×%d", an, am, bn, bc)
	}

	var xr mat.Dense
	if err := xr.Solve(realEmbed(a), realStack(b)); err != nil {
		return nil, err
	}

	x := mat.NewCDense(am, bc, nil)
	for i := 0; i < am; i++ {
		for j := 0; j < bc; j++ {
			x.Set(i, j, complex(xr.At(i, j), xr.At(am+i, j)))
		}
	}
	return x, nil
}
