package fit

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/qcdlab/twopoint/fold"
)

// Fit minimizes the weighted residuals of model against the correlator c
// over the timeslice window, starting from the given parameter vector.
// With nil opts.Sigma every timeslice carries unit weight; otherwise
// opts.Sigma must have one entry per timeslice of c.
//
// A fit that exhausts opts.MaxIter is reported with Converged=false and a
// warning on the logger rather than an error: the parameters are still
// the best found and often remain usable.
//
// Errors: ErrBadWindow, ErrBadParams, ErrBadSigma, ErrSingular.
func Fit(c []float64, model ResidualFunc, window Window, initial []float64, opts Options) (Result, error) {
	if err := window.validate(len(c)); err != nil {
		return Result{}, err
	}
	indices := make([]int, window.End-window.Begin)
	for i := range indices {
		indices[i] = window.Begin + i
	}

	return fitIndices(c, model, indices, initial, opts)
}

// FitAt is Fit over an explicit set of timeslice indices instead of a
// contiguous window, for plateaus with noisy timeslices excised. Each
// index must lie in [0, len(c)); order is up to the caller and does not
// affect the minimum.
//
// Errors: ErrBadWindow on an empty set or an out-of-range index, plus
// everything Fit returns.
func FitAt(c []float64, model ResidualFunc, indices []int, initial []float64, opts Options) (Result, error) {
	if len(indices) == 0 {
		return Result{}, fmt.Errorf("empty timeslice set: %w", ErrBadWindow)
	}
	for _, t := range indices {
		if t < 0 || t >= len(c) {
			return Result{}, fmt.Errorf("timeslice %d in extent %d: %w", t, len(c), ErrBadWindow)
		}
	}

	return fitIndices(c, model, indices, initial, opts)
}

func fitIndices(c []float64, model ResidualFunc, indices []int, initial []float64, opts Options) (Result, error) {
	if len(initial) == 0 {
		return Result{}, ErrBadParams
	}
	sigma := opts.Sigma
	if sigma == nil {
		sigma = make([]float64, len(c))
		for i := range sigma {
			sigma[i] = 1
		}
	} else if len(sigma) != len(c) {
		return Result{}, fmt.Errorf("len(sigma)=%d, len(c)=%d: %w", len(sigma), len(c), ErrBadSigma)
	}
	maxIter := opts.MaxIter
	if maxIter <= 0 {
		maxIter = DefaultOptions().MaxIter
	}
	tol := opts.Tol
	if tol <= 0 {
		tol = DefaultOptions().Tol
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	nRes := len(indices)
	eval := func(params []float64, out []float64) {
		for i, t := range indices {
			out[i] = model(params, float64(t), c[t], sigma[t])
		}
	}

	params, chiSq, iters, converged, err := levenbergMarquardt(eval, nRes, initial, maxIter, tol)
	if err != nil {
		return Result{}, err
	}
	if !converged {
		logger.Warn("fit did not converge",
			zap.Int("iterations", iters),
			zap.Float64("chi_squared", chiSq))
	}

	return Result{Params: params, ChiSquared: chiSq, Iterations: iters, Converged: converged}, nil
}

// CoshResidual returns the residual of the forward/backward-symmetric
// two-exponential model
//
//	C(t) = b₀·(e^(-b₁t) + e^(-b₁(T-t)))
//
// for a lattice of time extent tExtent. params[0] is the amplitude b₀ and
// params[1] the energy b₁.
func CoshResidual(tExtent int) ResidualFunc {
	bigT := float64(tExtent)

	return func(params []float64, t, c, sigma float64) float64 {
		model := params[0] * (math.Exp(-params[1]*t) + math.Exp(-params[1]*(bigT-t)))

		return (c - model) / sigma
	}
}

// SinhResidual is the antisymmetric counterpart of CoshResidual,
//
//	C(t) = b₀·(e^(-b₁t) - e^(-b₁(T-t))).
func SinhResidual(tExtent int) ResidualFunc {
	bigT := float64(tExtent)

	return func(params []float64, t, c, sigma float64) float64 {
		model := params[0] * (math.Exp(-params[1]*t) - math.Exp(-params[1]*(bigT-t)))

		return (c - model) / sigma
	}
}

// Energy fits the symmetric or antisymmetric two-exponential model to c —
// chosen by the correlator's boundary signs, the same test folding uses —
// and returns the ground-state energy b₁ together with the full result.
//
// initial seeds (b₀, b₁); a reasonable guess is (1, 1).
func Energy(c []float64, window Window, initial []float64, opts Options) (float64, Result, error) {
	p, err := fold.Detect(c)
	if err != nil {
		return 0, Result{}, fmt.Errorf("%d timeslices: %w", len(c), ErrTooShort)
	}
	model := CoshResidual(len(c))
	if p == fold.SinhLike {
		model = SinhResidual(len(c))
	}
	if len(initial) != 2 {
		return 0, Result{}, fmt.Errorf("need (amplitude, energy) seed, got %d values: %w",
			len(initial), ErrBadParams)
	}

	res, err := Fit(c, model, window, initial, opts)
	if err != nil {
		return 0, Result{}, err
	}

	return res.Params[1], res, nil
}

// EnergySquared is Energy with the ground-state energy squared, the form
// entering lattice dispersion relations.
func EnergySquared(c []float64, window Window, initial []float64, opts Options) (float64, Result, error) {
	e, res, err := Energy(c, window, initial, opts)
	if err != nil {
		return 0, Result{}, err
	}

	return e * e, res, nil
}

// SpeedOfLightSquared computes c² = (E² - E₀²)/|p_lat|² from the squared
// energies at momentum p and at rest, with |p_lat|² = Σᵢ(2πpᵢ/L)². On a
// continuum-like lattice the free dispersion gives exactly 1.
//
// Errors: ErrZeroMomentum when p vanishes.
func SpeedOfLightSquared(eSq, e0Sq float64, p [3]int, l int) (float64, error) {
	var pSq float64
	for _, pi := range p {
		comp := 2 * math.Pi * float64(pi) / float64(l)
		pSq += comp * comp
	}
	if pSq == 0 {
		return 0, ErrZeroMomentum
	}

	return (eSq - e0Sq) / pSq, nil
}

// SpeedOfLightSquaredAll computes c² for every momentum in the list,
// index-aligned with eSq. len(eSq) must equal len(momenta).
//
// Errors: ErrBadParams on mismatched lengths, ErrZeroMomentum when any
// listed momentum vanishes.
func SpeedOfLightSquaredAll(eSq []float64, e0Sq float64, momenta [][3]int, l int) ([]float64, error) {
	if len(eSq) != len(momenta) {
		return nil, fmt.Errorf("%d energies for %d momenta: %w", len(eSq), len(momenta), ErrBadParams)
	}
	out := make([]float64, len(momenta))
	for i, p := range momenta {
		cSq, err := SpeedOfLightSquared(eSq[i], e0Sq, p, l)
		if err != nil {
			return nil, fmt.Errorf("momentum %v: %w", p, err)
		}
		out[i] = cSq
	}

	return out, nil
}
