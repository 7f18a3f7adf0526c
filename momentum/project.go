package momentum

import (
	"math"
	"math/cmplx"
)

// Wrap maps each momentum component into the canonical index range [0, L)
// using a floored modulus, so negative momenta address the upper half of
// the spectrum exactly as in a standard DFT layout.
func Wrap(p [3]int, l int) [3]int {
	var out [3]int
	for i, c := range p {
		out[i] = ((c % l) + l) % l
	}

	return out
}

// windowRep maps each component of p to its representative inside the
// shell-enumeration window [−⌊L/2⌋, L−⌊L/2⌋).
func windowRep(p [3]int, l int) [3]int {
	w := Wrap(p, l)
	hi := l - l/2
	for i, c := range w {
		if c >= hi {
			w[i] = c - l
		}
	}

	return w
}

// Shell enumerates the momentum shell of p: every integer triple q with
// |q|² == |r|², where r is p's representative in the half-open window
// [−⌊L/2⌋, L−⌊L/2⌋). Each shell member is drawn from the same window and
// returned wrapped into [0, L).
//
// Reducing p to its window representative first means aliased momenta
// share a shell — (L,0,0) is the zero mode, so its shell is {(0,0,0)} —
// and the shell always contains r itself, so it is never empty.
//
// The window contains exactly one representative per residue class, so the
// returned triples are distinct. Enumeration order is deterministic
// (qx → qy → qz ascending).
func Shell(p [3]int, l int) [][3]int {
	r := windowRep(p, l)
	p2 := r[0]*r[0] + r[1]*r[1] + r[2]*r[2]
	lo := -(l / 2)
	hi := lo + l

	var shell [][3]int
	for qx := lo; qx < hi; qx++ {
		for qy := lo; qy < hi; qy++ {
			for qz := lo; qz < hi; qz++ {
				if qx*qx+qy*qy+qz*qz == p2 {
					shell = append(shell, Wrap([3]int{qx, qy, qz}, l))
				}
			}
		}
	}

	return shell
}

// Project Fourier-projects a real spatial correlator of shape (T, L, L, L),
// flattened row-major as spatial[((t·L+x)·L+y)·L+z], onto each requested
// lattice momentum. The result maps each requested momentum (as given, not
// wrapped) to a length-T series holding the real part of the projected
// correlator.
//
// Errors:
//   - ErrBadExtent — tExtent or l is not positive.
//   - ErrBadShape  — len(spatial) ≠ tExtent·l³.
//   - ErrNoMomenta — momenta is empty.
//
// Complexity: O(len(momenta) · |shell| · T · L³) time.
func Project(spatial []float64, tExtent, l int, momenta [][3]int, opts Options) (map[[3]int][]float64, error) {
	cdata := make([]complex128, len(spatial))
	for i, v := range spatial {
		cdata[i] = complex(v, 0)
	}

	return ProjectComplex(cdata, tExtent, l, momenta, opts)
}

// ProjectComplex is Project for a complex-valued spatial correlator.
// The real part of each projected mode is returned; for Hermitian-positive
// source data the imaginary part is pure rounding noise.
func ProjectComplex(spatial []complex128, tExtent, l int, momenta [][3]int, opts Options) (map[[3]int][]float64, error) {
	if tExtent < 1 || l < 1 {
		return nil, ErrBadExtent
	}
	if len(spatial) != tExtent*l*l*l {
		return nil, ErrBadShape
	}
	if len(momenta) == 0 {
		return nil, ErrNoMomenta
	}

	out := make(map[[3]int][]float64, len(momenta))
	for _, p := range momenta {
		modes := [][3]int{Wrap(p, l)}
		if opts.AverageEquivalent {
			modes = Shell(p, l)
		}

		series := make([]float64, tExtent)
		for _, mode := range modes {
			modeSeries := projectMode(spatial, tExtent, l, mode)
			for t := range series {
				series[t] += real(modeSeries[t])
			}
		}
		for t := range series {
			series[t] /= float64(len(modes))
		}

		out[p] = series
	}

	return out, nil
}

// projectMode evaluates the DFT component at one wrapped mode,
// C(t; w) = Σ_x C(t, x)·e^{−2πi w·x / L}, via a direct sum with a
// precomputed root-of-unity table.
func projectMode(spatial []complex128, tExtent, l int, mode [3]int) []complex128 {
	// L-th roots of unity with the forward (−2πi) sign convention.
	roots := make([]complex128, l)
	for m := range roots {
		roots[m] = cmplx.Exp(complex(0, -2*math.Pi*float64(m)/float64(l)))
	}

	out := make([]complex128, tExtent)
	for t := 0; t < tExtent; t++ {
		base := t * l * l * l
		var sum complex128
		idx := base
		for x := 0; x < l; x++ {
			for y := 0; y < l; y++ {
				for z := 0; z < l; z++ {
					m := (mode[0]*x + mode[1]*y + mode[2]*z) % l
					sum += spatial[idx] * roots[m]
					idx++
				}
			}
		}
		out[t] = sum
	}

	return out
}
