package fit

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/qcdlab/twopoint/fold"
)

// effMassMaxIter caps the per-timeslice root search.
const effMassMaxIter = 1000

// EffMass holds a per-timeslice effective-mass curve and the method that
// produced it.
type EffMass struct {
	Values []float64
	Method Method
}

// EffectiveMass extracts the effective mass m(t) from the correlator's
// neighbouring-timeslice ratios R(t) = C(t)/C((t+1) mod T). For a
// symmetric (cosh-like) correlator it solves, per timeslice,
//
//	cosh(m·(t - ⌊T/2⌋)) / cosh(m·(t+1 - ⌊T/2⌋)) = R(t)
//
// and the sinh analogue for antisymmetric data. The roots follow from a
// secant iteration seeded at guess; 1 is the customary choice, and the
// seed decides which of the equation's roots the iteration lands on. When
// the iteration fails to converge on any timeslice the whole curve falls
// back to the naive log|R(t)| estimate, logged as a warning and reported
// via Method.
//
// Errors: ErrTooShort when len(c) < 2.
func EffectiveMass(c []float64, guess float64, logger *zap.Logger) (EffMass, error) {
	class, err := fold.Detect(c)
	if err != nil {
		return EffMass{}, fmt.Errorf("%d timeslices: %w", len(c), ErrTooShort)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	t := len(c)
	ratio := make([]float64, t)
	for i := range c {
		ratio[i] = c[i] / c[(i+1)%t]
	}

	half := float64(t / 2)
	values := make([]float64, t)
	for i := range ratio {
		lhs := func(m float64) float64 {
			if class == fold.SinhLike {
				return math.Sinh(m*(float64(i)-half)) / math.Sinh(m*(float64(i)+1-half))
			}

			return math.Cosh(m*(float64(i)-half)) / math.Cosh(m*(float64(i)+1-half))
		}
		root, ok := secant(func(m float64) float64 { return lhs(m) - ratio[i] }, guess)
		if !ok {
			logger.Warn("effective-mass ratio solve failed, falling back to log-ratio",
				zap.Int("timeslice", i))

			return logRatioMass(ratio), nil
		}
		values[i] = root
	}

	return EffMass{Values: values, Method: MethodNewton}, nil
}

// logRatioMass is the naive estimate m(t) = log|R(t)|.
func logRatioMass(ratio []float64) EffMass {
	values := make([]float64, len(ratio))
	for i, r := range ratio {
		values[i] = math.Log(math.Abs(r))
	}

	return EffMass{Values: values, Method: MethodLogRatio}
}

// secant finds a root of f near x0. The second iterate follows the usual
// small relative perturbation of the seed.
func secant(f func(float64) float64, x0 float64) (float64, bool) {
	x1 := x0 * (1 + 1e-4)
	if x1 == x0 {
		x1 = x0 + 1e-4
	}
	f0, f1 := f(x0), f(x1)
	if f0 == 0 {
		return x0, true
	}
	for i := 0; i < effMassMaxIter; i++ {
		if f1 == 0 {
			return x1, true
		}
		if math.Abs(x1-x0) < 1.48e-8 {
			return x1, !math.IsNaN(x1) && !math.IsInf(x1, 0)
		}
		denom := f1 - f0
		if denom == 0 || math.IsNaN(denom) {
			return 0, false
		}
		x2 := x1 - f1*(x1-x0)/denom
		x0, f0 = x1, f1
		x1 = x2
		f1 = f(x1)
	}

	return 0, false
}
