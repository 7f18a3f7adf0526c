package fold_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qcdlab/twopoint/fold"
)

// coshCorrelator builds A·(e^{−m·t} + e^{−m·(T−t)}), a periodic signal.
func coshCorrelator(amp, mass float64, tExtent int) []float64 {
	out := make([]float64, tExtent)
	for t := range out {
		ft := float64(t)
		out[t] = amp * (math.Exp(-mass*ft) + math.Exp(-mass*(float64(tExtent)-ft)))
	}

	return out
}

// sinhCorrelator builds A·(e^{−m·t} − e^{−m·(T−t)}), an antiperiodic signal.
func sinhCorrelator(amp, mass float64, tExtent int) []float64 {
	out := make([]float64, tExtent)
	for t := range out {
		ft := float64(t)
		out[t] = amp * (math.Exp(-mass*ft) - math.Exp(-mass*(float64(tExtent)-ft)))
	}

	return out
}

// TestDetect_TooShort verifies that correlators with fewer than two
// timeslices are rejected with ErrTooShort.
func TestDetect_TooShort(t *testing.T) {
	_, err := fold.Detect(nil)
	assert.ErrorIs(t, err, fold.ErrTooShort, "nil correlator must error")

	_, err = fold.Detect([]float64{1.0})
	assert.ErrorIs(t, err, fold.ErrTooShort, "single timeslice must error")

	_, err = fold.Fold([]float64{1.0})
	assert.ErrorIs(t, err, fold.ErrTooShort, "Fold must propagate the detection error")
}

// TestDetect_Classes checks the sign rule on symmetric and antisymmetric
// synthetic correlators.
func TestDetect_Classes(t *testing.T) {
	cosh := coshCorrelator(1.0, 0.5, 16)
	class, err := fold.Detect(cosh)
	require.NoError(t, err)
	assert.Equal(t, fold.CoshLike, class, "symmetric correlator must be cosh-like")

	sinh := sinhCorrelator(1.0, 0.5, 16)
	class, err = fold.Detect(sinh)
	require.NoError(t, err)
	assert.Equal(t, fold.SinhLike, class, "antisymmetric correlator must be sinh-like")
}

// TestFold_PreservesLengthAndFirstElement verifies the two structural
// invariants of folding: out[0] == in[0] and len(out) == len(in).
func TestFold_PreservesLengthAndFirstElement(t *testing.T) {
	for _, c := range [][]float64{
		coshCorrelator(2.5, 0.3, 12),
		sinhCorrelator(2.5, 0.3, 12),
		{4.0, -1.0, 0.5, 1.0},
	} {
		out, err := fold.Fold(c)
		require.NoError(t, err)
		assert.Len(t, out, len(c), "folding must preserve the length convention")
		assert.Equal(t, c[0], out[0], "folding must keep the t=0 value")
	}
}

// TestFold_CoshFixedPoint verifies that an exactly symmetric correlator is
// unchanged by folding: averaging C(k) with C(T−k) is the identity there.
func TestFold_CoshFixedPoint(t *testing.T) {
	c := coshCorrelator(1.0, 0.4, 16)
	out, err := fold.Fold(c)
	require.NoError(t, err)
	for k := 1; k < len(c); k++ {
		assert.InDelta(t, c[k], out[k], 1e-15, "timeslice %d", k)
	}
}

// TestFold_SinhMidpointVanishes verifies that for even T the midpoint of a
// sinh-folded correlator is exactly zero (antisymmetry about T/2).
func TestFold_SinhMidpointVanishes(t *testing.T) {
	const tExtent = 16
	c := sinhCorrelator(1.0, 0.4, tExtent)
	out, err := fold.Fold(c)
	require.NoError(t, err)
	assert.Zero(t, out[tExtent/2], "antisymmetric midpoint must fold to zero")
}

// TestFold_AveragesHalves checks the fold arithmetic on a small hand-built
// correlator with noise, slice by slice.
func TestFold_AveragesHalves(t *testing.T) {
	c := []float64{10, 5, 2, 1, 2.2, 5.4}
	out, err := fold.Fold(c)
	require.NoError(t, err)

	want := []float64{10, (5 + 5.4) / 2, (2 + 2.2) / 2, 1, (2.2 + 2) / 2, (5.4 + 5) / 2}
	assert.Equal(t, want, out)
}
