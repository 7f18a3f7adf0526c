package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// diagonalPropagator builds P(t,x)[i,j,a,b] = f(t)·δ_ij·δ_ab — a
// spin-color identity at every site with a time-dependent amplitude.
// For such a propagator the contraction collapses analytically to
// 3·|f(t)|²·Re tr(Γ_src·Γ_snk) per site.
func diagonalPropagator(t *testing.T, tExtent, l int, f func(t int) complex128) *Propagator {
	t.Helper()
	data := make([]complex128, PropagatorLen(tExtent, l))
	p := &Propagator{t: tExtent, l: l, data: data}
	for tt := 0; tt < tExtent; tt++ {
		for x := 0; x < l; x++ {
			for y := 0; y < l; y++ {
				for z := 0; z < l; z++ {
					for i := 0; i < spinDim; i++ {
						for a := 0; a < colorDim; a++ {
							data[p.index(tt, x, y, z, i, i, a, a)] = f(tt)
						}
					}
				}
			}
		}
	}

	return p
}

// TestNewPropagator_Validation covers extent and shape checks.
func TestNewPropagator_Validation(t *testing.T) {
	_, err := NewPropagator(0, 2, nil)
	assert.ErrorIs(t, err, ErrBadExtent)

	_, err = NewPropagator(2, 2, make([]complex128, 7))
	assert.ErrorIs(t, err, ErrBadShape)

	p, err := NewPropagator(2, 2, make([]complex128, PropagatorLen(2, 2)))
	require.NoError(t, err)
	assert.Equal(t, 2, p.T())
	assert.Equal(t, 2, p.L())
}

// TestSpatial_DiagonalPropagator checks the contraction against the
// closed form for a spin-color-diagonal propagator:
// C(t,x) = 3·|f(t)|²·tr(Γ_src·Γ_snk).
func TestSpatial_DiagonalPropagator(t *testing.T) {
	const tExtent, l = 4, 2
	f := func(tt int) complex128 { return complex(float64(tt+1), float64(tt)) }
	p := diagonalPropagator(t, tExtent, l, f)

	// tr(γ5·γ5) = 4, so the pseudoscalar channel gives 12·|f(t)|².
	spatial, err := Spatial(p, p, Named("g5"), Named("g5"))
	require.NoError(t, err)
	require.Len(t, spatial, tExtent*l*l*l)
	idx := 0
	for tt := 0; tt < tExtent; tt++ {
		mag2 := real(f(tt))*real(f(tt)) + imag(f(tt))*imag(f(tt))
		for s := 0; s < l*l*l; s++ {
			assert.InDelta(t, 12*mag2, spatial[idx], 1e-9, "t=%d site=%d", tt, s)
			idx++
		}
	}

	// tr(γ5·γ4) = 0: the mixed channel vanishes identically.
	spatial, err = Spatial(p, p, Named("g5"), Named("g4"))
	require.NoError(t, err)
	for i, v := range spatial {
		assert.InDelta(t, 0, v, 1e-9, "element %d", i)
	}
}

// TestSpatial_Validation covers nil and mismatched propagators and
// unknown operators.
func TestSpatial_Validation(t *testing.T) {
	p := diagonalPropagator(t, 2, 2, func(int) complex128 { return 1 })

	_, err := Spatial(nil, p, Named("g5"), Named("g5"))
	assert.ErrorIs(t, err, ErrNilPropagator)

	other := diagonalPropagator(t, 4, 2, func(int) complex128 { return 1 })
	_, err = Spatial(p, other, Named("g5"), Named("g5"))
	assert.ErrorIs(t, err, ErrExtentMismatch)

	_, err = Spatial(p, p, Named("nope"), Named("g5"))
	assert.ErrorIs(t, err, ErrUnknownOperator)
}

// TestCompute_ZeroMomentumProjection verifies the end-to-end pipeline for
// the diagonal propagator: the zero mode is L³ times the per-site value.
func TestCompute_ZeroMomentumProjection(t *testing.T) {
	const tExtent, l = 4, 2
	f := func(tt int) complex128 { return complex(float64(tExtent-tt), 0) }
	p := diagonalPropagator(t, tExtent, l, f)

	out, err := Compute(p, p, Named("pion"), Named("pion"), DefaultOptions())
	require.NoError(t, err)
	series := out[[3]int{0, 0, 0}]
	require.Len(t, series, tExtent)
	for tt, v := range series {
		want := float64(l*l*l) * 12 * real(f(tt)) * real(f(tt))
		assert.InDelta(t, want, v, 1e-9, "timeslice %d", tt)
	}
}

// TestCompute_FoldOption verifies folding is applied per projected series.
func TestCompute_FoldOption(t *testing.T) {
	const tExtent, l = 4, 2
	f := func(tt int) complex128 { return complex(float64(tt+1), 0) }
	p := diagonalPropagator(t, tExtent, l, f)

	opts := DefaultOptions()
	plain, err := Compute(p, p, Named("g5"), Named("g5"), opts)
	require.NoError(t, err)

	opts.Fold = true
	folded, err := Compute(p, p, Named("g5"), Named("g5"), opts)
	require.NoError(t, err)

	raw := plain[[3]int{0, 0, 0}]
	got := folded[[3]int{0, 0, 0}]
	assert.Equal(t, raw[0], got[0])
	assert.InDelta(t, (raw[1]+raw[3])/2, got[1], 1e-12)
}
