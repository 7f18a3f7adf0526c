package fit

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var (
	// ErrBadWindow is returned when a fit window does not lie inside the
	// correlator's time extent.
	ErrBadWindow = errors.New("fit: window outside correlator extent")

	// ErrBadParams is returned when the initial parameter vector is empty.
	ErrBadParams = errors.New("fit: empty initial parameter vector")

	// ErrBadSigma is returned when the per-timeslice error vector does not
	// match the correlator length.
	ErrBadSigma = errors.New("fit: sigma length does not match correlator")

	// ErrTooShort is returned when a correlator has fewer than two
	// timeslices.
	ErrTooShort = errors.New("fit: correlator has fewer than two timeslices")

	// ErrSingular is returned when the normal equations of a
	// least-squares step cannot be solved.
	ErrSingular = errors.New("fit: singular normal equations")

	// ErrZeroMomentum is returned when a dispersion check is requested at
	// vanishing lattice momentum.
	ErrZeroMomentum = errors.New("fit: dispersion momentum is zero")
)

// ResidualFunc evaluates one weighted residual. It receives the current
// parameter vector, the timeslice t, the measured correlator value c at
// that timeslice and the error sigma, and returns (c - model(t))/sigma.
type ResidualFunc func(params []float64, t, c, sigma float64) float64

// Window is a half-open timeslice interval [Begin, End).
type Window struct {
	Begin int
	End   int
}

func (w Window) validate(tExtent int) error {
	if w.Begin < 0 || w.End > tExtent || w.End-w.Begin < 1 {
		return fmt.Errorf("[%d,%d) in extent %d: %w", w.Begin, w.End, tExtent, ErrBadWindow)
	}

	return nil
}

// Method identifies how an effective-mass value was obtained.
type Method int

const (
	// MethodNewton solves the periodic ratio equation per timeslice.
	MethodNewton Method = iota

	// MethodLogRatio is the naive log|C(t)/C(t+1)| estimate, used when
	// the ratio equation fails to converge somewhere.
	MethodLogRatio
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case MethodNewton:
		return "newton"
	case MethodLogRatio:
		return "log-ratio"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Options tunes a least-squares fit.
//
// Fields:
//   - Sigma   — per-timeslice errors; nil means unit weights.
//   - MaxIter — iteration cap for the minimizer.
//   - Tol     — relative chi-squared change below which the fit stops.
//   - Logger  — optional structured logger; nil disables logging.
type Options struct {
	Sigma   []float64
	MaxIter int
	Tol     float64
	Logger  *zap.Logger
}

// DefaultOptions returns unit weights, 200 iterations and a 1e-10 tolerance.
func DefaultOptions() Options {
	return Options{MaxIter: 200, Tol: 1e-10}
}

// Result reports the outcome of a least-squares fit.
type Result struct {
	Params     []float64
	ChiSquared float64
	Iterations int
	Converged  bool
}
