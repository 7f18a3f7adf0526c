package fit_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qcdlab/twopoint/fit"
)

// TestEffectiveMass_CoshExact solves the ratio equation on noiseless
// symmetric data; every timeslice, the wrap-around one included, must
// return the generating mass.
func TestEffectiveMass_CoshExact(t *testing.T) {
	const tExtent, m = 8, 0.6
	c := make([]float64, tExtent)
	for tt := range c {
		c[tt] = math.Cosh(m * (float64(tt) - float64(tExtent)/2))
	}

	curve, err := fit.EffectiveMass(c, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, fit.MethodNewton, curve.Method)
	require.Len(t, curve.Values, tExtent)
	for tt, v := range curve.Values {
		assert.InDelta(t, m, math.Abs(v), 1e-6, "timeslice %d", tt)
	}
}

// TestEffectiveMass_GuessSeedsSolve solves the same data from different
// seeds. A nearby non-default guess reaches the same mass; mirroring the
// seed lands on the mirrored root of the even ratio equation, so the
// choice of guess is observable in the result.
func TestEffectiveMass_GuessSeedsSolve(t *testing.T) {
	const tExtent, m = 8, 0.6
	c := make([]float64, tExtent)
	for tt := range c {
		c[tt] = math.Cosh(m * (float64(tt) - float64(tExtent)/2))
	}

	curve, err := fit.EffectiveMass(c, 0.25, nil)
	require.NoError(t, err)
	assert.Equal(t, fit.MethodNewton, curve.Method)
	for tt, v := range curve.Values {
		assert.InDelta(t, m, math.Abs(v), 1e-6, "timeslice %d", tt)
	}

	plus, err := fit.EffectiveMass(c, 1, nil)
	require.NoError(t, err)
	minus, err := fit.EffectiveMass(c, -1, nil)
	require.NoError(t, err)
	for tt := range plus.Values {
		assert.InDelta(t, -plus.Values[tt], minus.Values[tt], 1e-9, "timeslice %d", tt)
	}
}

// TestEffectiveMass_LogRatioFallback feeds a monotonically increasing
// correlator: the periodic ratio equation has no solution at t=0, so the
// whole curve must come from the naive log-ratio estimate.
func TestEffectiveMass_LogRatioFallback(t *testing.T) {
	c := []float64{1, 2, 4, 8}

	curve, err := fit.EffectiveMass(c, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, fit.MethodLogRatio, curve.Method)
	require.Len(t, curve.Values, len(c))

	// R(t) = 1/2 for t < 3, R(3) = c[3]/c[0] = 8.
	want := math.Log(0.5)
	for tt := 0; tt < 3; tt++ {
		assert.InDelta(t, want, curve.Values[tt], 1e-12, "timeslice %d", tt)
	}
	assert.InDelta(t, math.Log(8), curve.Values[3], 1e-12)
}

// TestEffectiveMass_OddExtent runs an odd-length correlator through the
// floored-midpoint ratio equation. The increasing signal has no periodic
// solution, so the curve is the exact log-ratio estimate.
func TestEffectiveMass_OddExtent(t *testing.T) {
	c := []float64{1, 2, 4, 8, 16}

	curve, err := fit.EffectiveMass(c, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, fit.MethodLogRatio, curve.Method)
	require.Len(t, curve.Values, len(c))

	want := math.Log(0.5)
	for tt := 0; tt < 4; tt++ {
		assert.InDelta(t, want, curve.Values[tt], 1e-12, "timeslice %d", tt)
	}
	assert.InDelta(t, math.Log(16), curve.Values[4], 1e-12)
}

// TestEffectiveMass_TooShort rejects correlators without a usable ratio.
func TestEffectiveMass_TooShort(t *testing.T) {
	_, err := fit.EffectiveMass([]float64{1}, 1, nil)
	assert.ErrorIs(t, err, fit.ErrTooShort)
}
