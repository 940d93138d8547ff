package modal

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/mat"

	"github.com/wavemech/bearing/utils"
)

// uniformTol is the angular tolerance under which a grid counts as an exact
// uniform full-circle grid for the FFT fast path.
const uniformTol = 1e-12

// DefaultModes returns the symmetric mode range -⌊(N-1)/2⌋..⌊(N-1)/2⌋ for N
// samples, the Nyquist-limited truncation of a trigonometric interpolation.
func DefaultModes(samples int) []int {
	order := (samples - 1) / 2
	modes := make([]int, 0, 2*order+1)
	for n := -order; n <= order; n++ {
		modes = append(modes, n)
	}
	return modes
}

// expMatrix builds E[i,j] = exp(i·θs[i]·modes[j]), the generalized complex
// Vandermonde matrix of the exponential basis on the circle.
func expMatrix(thetas []float64, modes []int) *mat.CDense {
	e := mat.NewCDense(len(thetas), len(modes), nil)
	for i, th := range thetas {
		for j, n := range modes {
			e.Set(i, j, cmplx.Exp(complex(0, th*float64(n))))
		}
	}
	return e
}

// ToModes fits truncated Fourier-mode coefficients to field values sampled
// at the given angles, one coefficient column per field component. The fit
// is the least-squares solution of E·x = fields and is exact when
// len(modes) == len(thetas) and E is non-singular. Uniform full-circle grids
// carrying a full contiguous mode range are dispatched to an FFT instead of
// a dense solve; the two paths agree to floating-point tolerance.
func ToModes(thetas []float64, fields *mat.CDense, modes []int) (*mat.CDense, error) {
	if len(modes) > len(thetas) {
		return nil, ModeCountError{Modes: len(modes), Samples: len(thetas)}
	}
	if fields == nil {
		return nil, ShapeMismatchError{What: "fields", Got: 0, Want: len(thetas)}
	}
	if r, _ := fields.Dims(); r != len(thetas) {
		return nil, ShapeMismatchError{What: "fields", Got: r, Want: len(thetas)}
	}
	if err := validModes(modes); err != nil {
		return nil, err
	}
	if fftApplicable(thetas, modes) {
		return fftModes(thetas, fields, modes), nil
	}
	return lstsqModes(thetas, fields, modes)
}

// ToFields evaluates the truncated trigonometric polynomial with the given
// coefficients at arbitrary angles, which need not be the angles the
// coefficients were fitted on.
func ToFields(thetas []float64, coeffs *mat.CDense, modes []int) (*mat.CDense, error) {
	if coeffs == nil {
		return nil, ShapeMismatchError{What: "coefficients", Got: 0, Want: len(modes)}
	}
	if r, _ := coeffs.Dims(); r != len(modes) {
		return nil, ShapeMismatchError{What: "coefficients", Got: r, Want: len(modes)}
	}
	if err := validModes(modes); err != nil {
		return nil, err
	}
	var out mat.CDense
	out.Mul(expMatrix(thetas, modes), coeffs)
	return &out, nil
}

// ToModes fits coefficients to the record's sampled fields and returns a new
// record with the modal side populated. A nil mode set selects DefaultModes
// for the record's sample count. The receiver is not modified.
func (b *BoundaryData) ToModes(modes []int) (*BoundaryData, error) {
	if modes == nil {
		modes = DefaultModes(len(b.Angles))
	}
	coeffs, err := ToModes(b.Angles, b.Fields, modes)
	if err != nil {
		return nil, err
	}
	return b.WithCoefficients(modes, coeffs), nil
}

// ToFields reconstructs sampled values from the record's coefficients and
// returns a new record with the sampled side populated. A nil angle slice
// reconstructs at the record's own angles. The receiver is not modified.
func (b *BoundaryData) ToFields(thetas []float64) (*BoundaryData, error) {
	if thetas == nil {
		thetas = b.Angles
	}
	fields, err := ToFields(thetas, b.Coefficients, b.Modes)
	if err != nil {
		return nil, err
	}
	return b.WithFields(thetas, fields), nil
}

// lstsqModes solves the dense least-squares system for arbitrary angle grids
// and mode sets.
func lstsqModes(thetas []float64, fields *mat.CDense, modes []int) (*mat.CDense, error) {
	return utils.CSolve(expMatrix(thetas, modes), fields)
}

// fftApplicable reports whether the fit reduces to a plain DFT: as many
// contiguous modes as samples, on a uniform grid spanning the full circle.
func fftApplicable(thetas []float64, modes []int) bool {
	n := len(thetas)
	if n < 2 || len(modes) != n {
		return false
	}
	for j := 1; j < n; j++ {
		if modes[j] != modes[j-1]+1 {
			return false
		}
	}
	gap := 2 * math.Pi / float64(n)
	for j := 1; j < n; j++ {
		if math.Abs(thetas[j]-thetas[0]-float64(j)*gap) > uniformTol {
			return false
		}
	}
	return true
}

// fftModes computes the exact square-system solution by DFT. For a uniform
// grid θ_j = θ₀ + 2πj/N and any N consecutive modes, the coefficient of mode
// m is X_{m mod N}/N · exp(-i·m·θ₀) where X is the forward DFT of the
// samples.
func fftModes(thetas []float64, fields *mat.CDense, modes []int) *mat.CDense {
	n, c := fields.Dims()
	coeffs := mat.NewCDense(len(modes), c, nil)
	col := make([]complex128, n)
	for j := 0; j < c; j++ {
		for i := 0; i < n; i++ {
			col[i] = fields.At(i, j)
		}
		spec := fft.FFT(col)
		for mi, m := range modes {
			bin := ((m % n) + n) % n
			twist := cmplx.Exp(complex(0, -float64(m)*thetas[0]))
			coeffs.Set(mi, j, spec[bin]/complex(float64(n), 0)*twist)
		}
	}
	return coeffs
}
