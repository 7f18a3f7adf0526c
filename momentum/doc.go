// Package momentum projects spatial lattice correlators onto discrete
// lattice momenta, with optional averaging over momentum shells.
//
// 🚀 What does projection do?
//
//	A correlator computed at every spatial site, C(t, x), contains all
//	momentum channels at once. Projection extracts one channel by a
//	discrete Fourier transform over the three spatial axes:
//
//	  C(t; p) = Σ_x C(t, x) · exp(−2πi p·x / L)
//
//	The forward-transform sign convention (−2πi) matches the standard
//	DFT, so projecting at p with no averaging returns exactly the raw
//	spectrum component at the wrapped index (p mod L per component).
//
// ✨ Momentum shells:
//
//	The lattice point group relates momenta with equal |p|² — e.g.
//	(1,0,0), (0,1,0), (0,0,1) and their negatives. Rotational symmetry
//	makes their correlators statistically equivalent, so averaging over
//	the shell is a free variance-reduction step. Shell components are
//	enumerated over the half-open window [−⌊L/2⌋, L−⌊L/2⌋) — one
//	representative per residue class, symmetric for odd L — and wrapped
//	into [0, L) before indexing the spectrum. A requested momentum is
//	reduced to its window representative before the shell is built, so an
//	aliased momentum such as (L,0,0) averages over the zero-mode shell
//	rather than an empty one. The shell of (0,0,0) is itself, so the
//	averaged zero mode always equals the raw zero mode.
//
// ⚙️ Usage:
//
//	import "github.com/qcdlab/twopoint/momentum"
//
//	opts := momentum.DefaultOptions() // AverageEquivalent: true
//	out, err := momentum.Project(spatial, tExtent, l, [][3]int{{1, 0, 0}}, opts)
//	series := out[[3]int{1, 0, 0}]   // length tExtent, real part
//
// Only the requested modes are evaluated (a direct O(T·L³) sum per mode),
// not the full L³ spectrum.
package momentum
