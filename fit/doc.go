// Package fit extracts physical quantities from lattice correlators by
// weighted least squares and per-timeslice ratio solves.
//
// 🚀 What can be fitted?
//
//	A ground-state meson on a lattice of time extent T shows up as the
//	symmetric (or antisymmetric) two-exponential signal
//
//	  C(t) = b₀·(e^(-b₁t) ± e^(-b₁(T-t)))
//
//	over a plateau window away from the boundaries. Fitting it yields
//	the amplitude b₀ and the energy b₁; squared energies at several
//	momenta feed the dispersion check c² = (E² − E₀²)/|p_lat|².
//
// The symmetry class is read off the data the same way folding does, so
// Energy works unchanged on pseudoscalar and axial channels.
//
// ✨ Effective mass:
//
//	EffectiveMass inverts the neighbouring-timeslice ratio
//	cosh(m·(t−⌊T/2⌋))/cosh(m·(t+1−⌊T/2⌋)) = C(t)/C(t+1) per timeslice
//	via a secant iteration seeded at a caller-chosen guess. On data
//	without the periodic symmetry the solve can fail; the curve then
//	falls back to log|C(t)/C(t+1)| for every timeslice, and the Method
//	field says which estimate was used.
//
// ⚙️ Usage:
//
//	import "github.com/qcdlab/twopoint/fit"
//
//	opts := fit.DefaultOptions()
//	e, res, err := fit.Energy(c, fit.Window{Begin: 4, End: 12}, []float64{1, 1}, opts)
//	curve, err := fit.EffectiveMass(c, 1, nil)
//
// The minimizer is a Levenberg–Marquardt loop with a forward-difference
// Jacobian; a fit that exhausts its iteration budget is reported with
// Converged=false and a warning, not an error.
package fit
