// Package correlator provides the keyed data model for two-point
// correlation functions: a Store of time series indexed by particle
// label, valence-quark masses, lattice momentum and source/sink smearing.
//
// 🚀 The data model
//
//	Key    — (label, masses, momentum, source, sink). Masses are rounded
//	         to 8 decimal digits at construction so floating-point
//	         representation differences can never split one physical
//	         correlator into two entries; momentum components are plain
//	         integers compared exactly.
//	Series — a real length-T signal plus a Folded provenance flag that
//	         guards against accidental double-folding.
//	Store  — owns a Key→Series mapping together with the lattice extents
//	         (L, T), fixed at construction. Entries are inserted only via
//	         AddCorrelator and are copied on the way in and out.
//
// ⚙️ Usage:
//
//	import "github.com/qcdlab/twopoint/correlator"
//
//	store, _ := correlator.NewStore(16, 32)
//	key := correlator.NewKey("pion", []float64{0.4, 0.4}, [3]int{0, 0, 0},
//		correlator.Point, correlator.Point)
//	err := store.AddCorrelator(data, key, correlator.DefaultAddOptions())
//
//	series, err := store.Get(correlator.Query{Label: "pion"})
//	matches := store.Filter(correlator.Query{Momentum: []int{0, 0, 0}})
//
// Unprojected data of shape (T,L,L,L) is accepted too: AddCorrelator
// routes it through the momentum package before storage, and folding on
// ingest is available via AddOptions.Fold.
//
// Arithmetic (Add, Sub, Negate, Pow, Scale) produces new stores and is
// strict about key sets: combining stores whose key sets differ fails
// with ErrKeyMismatch rather than silently dropping entries.
//
// Persistence is a single-file archive — a zip with a yaml header entry
// carrying the lattice extents and a gob entry carrying the mapping —
// read and written as one atomic unit. Floats round-trip bit-identically.
package correlator
