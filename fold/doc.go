// Package fold detects the periodicity class of a lattice correlator and
// folds it about the temporal midpoint to reduce statistical noise.
//
// 🚀 Why fold?
//
//	A meson correlator on a lattice with periodic (antiperiodic) temporal
//	boundary conditions satisfies C(t) = ±C(T−t). The two halves of the
//	signal therefore carry the same physics, and averaging them is
//	equivalent to doubling the number of statistically independent
//	measurements.
//
// The periodicity class is read off the data itself: if C(1) and C(T−1)
// share a sign the signal is cosh-like (periodic), otherwise sinh-like
// (antiperiodic).
//
// ⚙️ Usage:
//
//	import "github.com/qcdlab/twopoint/fold"
//
//	folded, err := fold.Fold(correlator)
//	class, err := fold.Detect(correlator)
//
// The folded slice keeps the original length T; out[0] == in[0] and only
// the first half of the result is independent information. Folding is a
// one-way transform — refolding an already-folded correlator is not
// meaningful, and callers tracking provenance should refuse it (the
// correlator package does so via the Series.Folded flag).
//
// Complexity: O(T) time, O(T) memory.
package fold
