package correlator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qcdlab/twopoint/correlator"
)

// newTestStore builds a small 4³×8 store for tests.
func newTestStore(t *testing.T) *correlator.Store {
	t.Helper()
	store, err := correlator.NewStore(4, 8)
	require.NoError(t, err)

	return store
}

// ramp returns [0, 1, ..., n-1] as float64.
func ramp(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}

	return out
}

// pionKey is a convenience constructor for the key used across these tests.
func pionKey() correlator.Key {
	return correlator.NewKey("pion", []float64{0.4, 0.4}, [3]int{0, 0, 0},
		correlator.Point, correlator.Point)
}

// TestNewStore_BadExtents rejects non-positive lattice extents.
func TestNewStore_BadExtents(t *testing.T) {
	for _, dims := range [][2]int{{0, 8}, {4, 0}, {-1, 8}, {4, -2}} {
		_, err := correlator.NewStore(dims[0], dims[1])
		assert.ErrorIs(t, err, correlator.ErrBadExtent, "extents %v", dims)
	}
}

// TestAddCorrelator_ShapeChecks verifies projected data must have length T
// and spatial data must have length T·L³.
func TestAddCorrelator_ShapeChecks(t *testing.T) {
	store := newTestStore(t)

	err := store.AddCorrelator(ramp(7), pionKey(), correlator.DefaultAddOptions())
	assert.ErrorIs(t, err, correlator.ErrBadShape, "length 7 != T=8 must be rejected")

	err = store.AddCorrelator(ramp(8*4*4*4-1), pionKey(), correlator.AddOptions{Projected: false})
	assert.ErrorIs(t, err, correlator.ErrBadShape, "spatial length must equal T·L³")
}

// TestAddCorrelator_StoresUnchanged verifies that projected data with
// fold=false is stored verbatim.
func TestAddCorrelator_StoresUnchanged(t *testing.T) {
	store := newTestStore(t)
	data := []float64{9, 4, 2, 1, 0.5, 1.2, 2.3, 4.1}

	require.NoError(t, store.AddCorrelator(data, pionKey(), correlator.DefaultAddOptions()))
	assert.Equal(t, 1, store.Len())

	got, err := store.Get(correlator.Query{Label: "pion"})
	require.NoError(t, err)
	assert.Equal(t, data, got.Data, "stored values must be bit-identical to the input")
	assert.False(t, got.Folded)
}

// TestAddCorrelator_CopiesInput verifies the store owns its data: mutating
// the caller's slice after ingest must not change the stored series.
func TestAddCorrelator_CopiesInput(t *testing.T) {
	store := newTestStore(t)
	data := ramp(8)
	require.NoError(t, store.AddCorrelator(data, pionKey(), correlator.DefaultAddOptions()))

	data[0] = -999
	got, err := store.Get(correlator.Query{Label: "pion"})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.Data[0], "store must not alias caller memory")
}

// TestAddCorrelator_MassRounding verifies that masses differing only by
// representation noise land on the same key (8-digit rounding).
func TestAddCorrelator_MassRounding(t *testing.T) {
	store := newTestStore(t)
	noisy := correlator.NewKey("pion", []float64{0.4 + 1e-12, 0.4}, [3]int{0, 0, 0},
		correlator.Point, correlator.Point)

	require.NoError(t, store.AddCorrelator(ramp(8), pionKey(), correlator.DefaultAddOptions()))
	require.NoError(t, store.AddCorrelator(ramp(8), noisy, correlator.DefaultAddOptions()))
	assert.Equal(t, 1, store.Len(), "representation noise must not split one correlator into two")

	// Querying with the noisy masses finds the entry too.
	_, err := store.Get(correlator.Query{Masses: []float64{0.4 + 1e-12, 0.4}})
	assert.NoError(t, err)
}

// TestAddCorrelator_Unprojected ingests a constant (T,L,L,L) spatial
// correlator: the zero-momentum projection is the sum over L³ sites.
func TestAddCorrelator_Unprojected(t *testing.T) {
	store := newTestStore(t)
	l3 := 4 * 4 * 4
	spatial := make([]float64, 8*l3)
	for i := range spatial {
		spatial[i] = 2.0
	}

	require.NoError(t, store.AddCorrelator(spatial, pionKey(),
		correlator.AddOptions{Projected: false}))

	got, err := store.Get(correlator.Query{Label: "pion"})
	require.NoError(t, err)
	require.Len(t, got.Data, 8)
	for tt, v := range got.Data {
		assert.InDelta(t, 2.0*float64(l3), v, 1e-9, "timeslice %d", tt)
	}
}

// TestAddCorrelator_FoldOnIngest verifies the Fold option folds before
// storage and records provenance.
func TestAddCorrelator_FoldOnIngest(t *testing.T) {
	store := newTestStore(t)
	data := []float64{8, 4, 2, 1, 0.5, 1.5, 2.5, 4.5}

	require.NoError(t, store.AddCorrelator(data, pionKey(),
		correlator.AddOptions{Projected: true, Fold: true}))

	got, err := store.Get(correlator.Query{Label: "pion"})
	require.NoError(t, err)
	assert.True(t, got.Folded, "fold provenance must be recorded")
	assert.Equal(t, data[0], got.Data[0], "folding keeps the t=0 value")
	assert.InDelta(t, (data[1]+data[7])/2, got.Data[1], 1e-15)

	// Refolding the retrieved series must be refused.
	_, err = got.Fold()
	assert.ErrorIs(t, err, correlator.ErrAlreadyFolded)
}

// TestFilter_Wildcards exercises partial queries over a small population.
func TestFilter_Wildcards(t *testing.T) {
	store := newTestStore(t)
	keys := []correlator.Key{
		correlator.NewKey("pion", []float64{0.4, 0.4}, [3]int{0, 0, 0}, correlator.Point, correlator.Point),
		correlator.NewKey("pion", []float64{0.4, 0.4}, [3]int{1, 0, 0}, correlator.Point, correlator.Point),
		correlator.NewKey("rho_x", []float64{0.4, 0.4}, [3]int{0, 0, 0}, correlator.Shell, correlator.Point),
	}
	for _, k := range keys {
		require.NoError(t, store.AddCorrelator(ramp(8), k, correlator.DefaultAddOptions()))
	}

	all, err := store.Filter(correlator.Query{})
	require.NoError(t, err)
	assert.Len(t, all, 3, "empty query matches everything")

	pions, err := store.Filter(correlator.Query{Label: "pion"})
	require.NoError(t, err)
	assert.Len(t, pions, 2)

	rest, err := store.Filter(correlator.Query{Momentum: []int{0, 0, 0}})
	require.NoError(t, err)
	assert.Len(t, rest, 2)

	shells, err := store.Filter(correlator.Query{Source: correlator.Shell})
	require.NoError(t, err)
	require.Len(t, shells, 1)
	assert.Equal(t, "rho_x", shells[0].Key.Label)

	_, err = store.Filter(correlator.Query{Momentum: []int{1, 0}})
	assert.ErrorIs(t, err, correlator.ErrBadQuery, "momentum must be a triple")
}

// TestGet_UniqueSemantics verifies the exactly-one accessor.
func TestGet_UniqueSemantics(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.AddCorrelator(ramp(8), pionKey(), correlator.DefaultAddOptions()))
	require.NoError(t, store.AddCorrelator(ramp(8),
		correlator.NewKey("pion", []float64{0.4, 0.4}, [3]int{1, 0, 0}, correlator.Point, correlator.Point),
		correlator.DefaultAddOptions()))

	_, err := store.Get(correlator.Query{Label: "kaon"})
	assert.ErrorIs(t, err, correlator.ErrNotFound)

	_, err = store.Get(correlator.Query{Label: "pion"})
	assert.ErrorIs(t, err, correlator.ErrAmbiguous)

	got, err := store.Get(correlator.Query{Label: "pion", Momentum: []int{1, 0, 0}})
	require.NoError(t, err)
	assert.Len(t, got.Data, 8)
}

// TestStore_String renders extents and the key listing.
func TestStore_String(t *testing.T) {
	store := newTestStore(t)
	assert.Contains(t, store.String(), "none")

	require.NoError(t, store.AddCorrelator(ramp(8), pionKey(), correlator.DefaultAddOptions()))
	rendered := store.String()
	assert.Contains(t, rendered, "pion")
	assert.Contains(t, rendered, "Spatial extent:  4")
}
