package scatter

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/wavemech/bearing/elastic"
	"github.com/wavemech/bearing/source"
	"github.com/wavemech/bearing/utils"
)

// SingularModeSystemError reports a boundary system that is numerically
// singular or too ill-conditioned to solve at one (frequency, mode) pair.
// Resonant frequencies produce these; callers running frequency sweeps
// should report the failing frequency rather than discard it.
type SingularModeSystemError struct {
	Omega float64
	Mode  int
	Err   error
}

func (e SingularModeSystemError) Error() string {
	return fmt.Sprintf("boundary system singular at omega=%g mode=%d: %v", e.Omega, e.Mode, e.Err)
}

func (e SingularModeSystemError) Unwrap() error { return e.Err }

// Solver computes reflected-wave potentials satisfying the traction boundary
// conditions at both boundaries of a bearing. It is configured once with the
// external matrix generators and is safe for concurrent use; Solve itself is
// a pure per-(frequency, mode) computation with no cross-call state.
type Solver struct {
	outgoing       elastic.TranslationFunc
	regular        elastic.TranslationFunc
	boundaryMode   elastic.BoundaryConditionModeFunc
	boundarySystem elastic.BoundaryConditionSystemFunc

	log         *zap.Logger
	parallelism int
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger attaches a logger for per-solve debug records. The default is a
// nop logger, keeping the core free of I/O unless a caller opts in.
func WithLogger(l *zap.Logger) Option {
	return func(s *Solver) { s.log = l }
}

// WithParallelism bounds the number of concurrently solved modes. Values
// ≤ 0 select one worker per available CPU; 1 forces sequential solves.
func WithParallelism(n int) Option {
	return func(s *Solver) { s.parallelism = n }
}

// NewSolver builds a solver around the four external matrix generators:
// outgoing and regular translation, per-boundary condition blocks, and the
// combined per-mode system matrix.
func NewSolver(outgoing, regular elastic.TranslationFunc, mode elastic.BoundaryConditionModeFunc, system elastic.BoundaryConditionSystemFunc, opts ...Option) *Solver {
	s := &Solver{
		outgoing:       outgoing,
		regular:        regular,
		boundaryMode:   mode,
		boundarySystem: system,
		log:            zap.NewNop(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// incident holds the per-frequency translation matrices of the incident
// point source, re-expanded about the bearing centre: outgoing-family
// matrices for the inner boundary (the source is external to it) and
// regular-family matrices for the outer boundary, one per wave type, each
// already scaled by the source amplitude and the point-source factor i/4.
type incident struct {
	inner    [2]*mat.CDense
	outer    [2]*mat.CDense
	maxOrder int
}

// column extracts the 4-row incident coefficient column of one boundary at
// one mode: two expansion degrees of the pressure family stacked over two of
// the shear family.
func (in *incident) column(bd elastic.Boundary, mode int) *mat.CDense {
	src := in.inner
	if bd == elastic.OuterBoundary {
		src = in.outer
	}
	j := mode + in.maxOrder
	v := mat.NewCDense(4, 1, nil)
	v.Set(0, 0, src[elastic.Pressure].At(0, j))
	v.Set(1, 0, src[elastic.Pressure].At(1, j))
	v.Set(2, 0, src[elastic.Shear].At(0, j))
	v.Set(3, 0, src[elastic.Shear].At(1, j))
	return v
}

// buildIncident evaluates the translation generators once per (boundary,
// wave type) for the whole mode range and applies the amplitude scaling.
func (s *Solver) buildIncident(b elastic.Bearing, pos r2.Vec, pAmp, sAmp source.Amplitude, omega float64, maxOrder int) *incident {
	shift := r2.Vec{}.Sub(pos)
	scale := [2]complex128{
		elastic.Pressure: complex(0, 0.25) * pAmp(omega),
		elastic.Shear:    complex(0, 0.25) * sAmp(omega),
	}
	in := &incident{maxOrder: maxOrder}
	for _, w := range [2]elastic.WaveType{elastic.Pressure, elastic.Shear} {
		inner := s.outgoing(b.Medium, w, 1, maxOrder, omega, shift)
		outer := s.regular(b.Medium, w, 1, maxOrder, omega, shift)
		scaleCDense(inner, scale[w])
		scaleCDense(outer, scale[w])
		in.inner[w] = inner
		in.outer[w] = outer
	}
	return in
}

func scaleCDense(m *mat.CDense, f complex128) {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.Set(i, j, m.At(i, j)*f)
		}
	}
}

// solveMode assembles and solves the 4-unknown traction system of a single
// angular mode, returning the four reflected coefficients: pressure degrees
// 0..1 followed by shear degrees 0..1.
func (s *Solver) solveMode(b elastic.Bearing, in *incident, omega float64, mode int) ([4]complex128, error) {
	vIn := in.column(elastic.InnerBoundary, mode)
	vOut := in.column(elastic.OuterBoundary, mode)

	bIn := s.boundaryMode(omega, elastic.InnerBoundary, b, mode)
	bOut := s.boundaryMode(omega, elastic.OuterBoundary, b, mode)

	// The reflected field must cancel the traction the incident field
	// induces at both boundaries.
	var tIn, tOut mat.CDense
	tIn.Mul(bIn, vIn)
	tOut.Mul(bOut, vOut)
	rhs := mat.NewCDense(4, 1, nil)
	rhs.Set(0, 0, -tIn.At(0, 0))
	rhs.Set(1, 0, -tIn.At(1, 0))
	rhs.Set(2, 0, -tOut.At(0, 0))
	rhs.Set(3, 0, -tOut.At(1, 0))

	sys := s.boundarySystem(omega, b, mode)
	x, err := utils.CSolve(sys, rhs)
	if err != nil {
		return [4]complex128{}, SingularModeSystemError{Omega: omega, Mode: mode, Err: err}
	}
	return [4]complex128{x.At(0, 0), x.At(1, 0), x.At(2, 0), x.At(3, 0)}, nil
}

// Solve computes the reflected pressure and shear potentials of a point
// source with the given pressure/shear amplitude pair, located at pos
// relative to the bearing centre, for every retained mode. The returned
// coefficient matrices follow the declared mode sequence regardless of how
// the independent per-mode solves are scheduled.
func (s *Solver) Solve(b elastic.Bearing, pos r2.Vec, pAmp, sAmp source.Amplitude, omega float64, modes []int) (pressure, shear *HelmholtzPotential, err error) {
	if len(modes) == 0 {
		return nil, nil, fmt.Errorf("empty mode set")
	}
	start := time.Now()
	maxOrder := 0
	for _, n := range modes {
		if n > maxOrder {
			maxOrder = n
		}
		if -n > maxOrder {
			maxOrder = -n
		}
	}

	in := s.buildIncident(b, pos, pAmp, sAmp, omega, maxOrder)

	results := make([][4]complex128, len(modes))
	err = utils.ParallelMap(len(modes), s.parallelism, func(i int) error {
		x, err := s.solveMode(b, in, omega, modes[i])
		if err != nil {
			return err
		}
		results[i] = x
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	pCoeffs := mat.NewCDense(2, len(modes), nil)
	sCoeffs := mat.NewCDense(2, len(modes), nil)
	for i, x := range results {
		pCoeffs.Set(0, i, x[0])
		pCoeffs.Set(1, i, x[1])
		sCoeffs.Set(0, i, x[2])
		sCoeffs.Set(1, i, x[3])
	}

	s.log.Debug("solved reflection systems",
		zap.Float64("omega", omega),
		zap.Int("modes", len(modes)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return newPotential(elastic.Pressure, b.Medium, omega, modes, pCoeffs),
		newPotential(elastic.Shear, b.Medium, omega, modes, sCoeffs),
		nil
}
