package elastic

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
)

// HankelFunc evaluates the Hankel function of the first kind H_n(z). The
// order may be negative; the argument may be complex.
type HankelFunc func(order int, z complex128) complex128

// TranslationFunc produces the re-expansion coefficients translating a
// multipole field of the given wave family by shift, at angular frequency
// omega. The returned matrix is 2×(2·maxOrder+1): row is the expansion
// degree, column is the angular mode offset by +maxOrder, so the column for
// mode n sits at index n+maxOrder. Two implementations are consumed: one for
// outgoing (radiating) wave families and one for regular (finite-at-origin)
// families.
type TranslationFunc func(m Medium, w WaveType, originOrder, maxOrder int, omega float64, shift r2.Vec) *mat.CDense

// BoundaryConditionModeFunc produces the 2×4 traction-matching operator
// block at one boundary for a single angular mode.
type BoundaryConditionModeFunc func(omega float64, bd Boundary, b Bearing, mode int) *mat.CDense

// BoundaryConditionSystemFunc produces the combined 4×4 per-mode system
// matrix coupling the reflected coefficients at both boundaries.
type BoundaryConditionSystemFunc func(omega float64, b Bearing, mode int) *mat.CDense
