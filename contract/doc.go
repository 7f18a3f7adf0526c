// Package contract computes meson two-point correlators from quark
// propagators: the spin-color trace of two propagator tensors sandwiched
// between a pair of Dirac interpolating operators.
//
// 🚀 The contraction
//
//	For every space-time point the correlator is the real part of
//
//	  Σ_{i,j,a,b} (Γ_src · γ5 · P1† · γ5)[i,j,a,b] · (Γ_snk · P2)[j,i,b,a]
//
//	over spin indices i,j and color indices a,b. The γ5 sandwich
//	reconstructs the backward propagator from the forward one, so no
//	separately inverted propagator is needed.
//
// ✨ Operators:
//
//	Interpolating operators are 4×4 Dirac spin structures, passed either
//	by name (resolved against the fixed 16-element interpolator table,
//	or a meson alias such as "pion") or as an explicit matrix:
//
//	  contract.Named("g5")        // pseudoscalar channel
//	  contract.Named("pion")      // alias for g5
//	  contract.Explicit(myMatrix) // anything else
//
//	The table is process-wide immutable configuration, safe to share
//	across worker-pool tasks without synchronization.
//
// ⚙️ Usage:
//
//	import "github.com/qcdlab/twopoint/contract"
//
//	out, err := contract.Compute(p1, p2,
//		contract.Named("g5"), contract.Named("g5"), contract.DefaultOptions())
//	pion := out[[3]int{0, 0, 0}] // length-T correlator
//
//	// All 256 ordered operator pairs, across a worker pool:
//	store, err := contract.ComputeAll(p1, p2, contract.DefaultBatchOptions())
//
// The batch sweep is embarrassingly parallel: every pair is an
// independent task writing to a distinct key, so the merged store is
// identical for any worker count.
//
// Complexity: one pair costs O(T·L³) site contractions of 144 complex
// terms each; the batch mode is 256 of those.
package contract
