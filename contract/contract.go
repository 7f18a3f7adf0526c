package contract

import (
	"fmt"
	"math/cmplx"

	"github.com/qcdlab/twopoint/fold"
	"github.com/qcdlab/twopoint/momentum"
)

// Options configures a single-pair correlator computation.
//
// Fields:
//   - Momenta           — lattice momenta to project onto; defaults to the
//     zero momentum when empty.
//   - AverageEquivalent — average each momentum over its shell.
//   - Fold              — fold each projected correlator about the
//     temporal midpoint.
type Options struct {
	Momenta           [][3]int
	AverageEquivalent bool
	Fold              bool
}

// DefaultOptions projects onto zero momentum with shell averaging on.
func DefaultOptions() Options {
	return Options{
		Momenta:           [][3]int{{0, 0, 0}},
		AverageEquivalent: true,
	}
}

// Spatial contracts two propagators with a source and sink operator into
// the raw spatial correlator: a real scalar field over (t, x, y, z),
// flattened row-major with length T·L³.
//
// Errors: ErrNilPropagator, ErrExtentMismatch, ErrUnknownOperator.
func Spatial(p1, p2 *Propagator, source, sink Operator) ([]float64, error) {
	if p1 == nil || p2 == nil {
		return nil, ErrNilPropagator
	}
	if p1.t != p2.t || p1.l != p2.l {
		return nil, fmt.Errorf("(T,L)=(%d,%d) vs (%d,%d): %w",
			p1.t, p1.l, p2.t, p2.l, ErrExtentMismatch)
	}
	srcMat, err := source.Resolve()
	if err != nil {
		return nil, fmt.Errorf("source operator: %w", err)
	}
	snkMat, err := sink.Resolve()
	if err != nil {
		return nil, fmt.Errorf("sink operator: %w", err)
	}

	out := make([]float64, p1.t*p1.l*p1.l*p1.l)
	idx := 0
	for t := 0; t < p1.t; t++ {
		for x := 0; x < p1.l; x++ {
			for y := 0; y < p1.l; y++ {
				for z := 0; z < p1.l; z++ {
					left := spinMul(srcMat, adjointBlock(p1.site(t, x, y, z)))
					right := spinMul(snkMat, p2.site(t, x, y, z))
					out[idx] = traceContract(left, right)
					idx++
				}
			}
		}
	}

	return out, nil
}

// Compute contracts one operator pair and projects the result onto each
// requested momentum. The returned map is keyed by the momenta as
// requested; each series has length T (real part of the projection),
// folded when opts.Fold is set.
func Compute(p1, p2 *Propagator, source, sink Operator, opts Options) (map[[3]int][]float64, error) {
	spatial, err := Spatial(p1, p2, source, sink)
	if err != nil {
		return nil, err
	}

	momenta := opts.Momenta
	if len(momenta) == 0 {
		momenta = [][3]int{{0, 0, 0}}
	}
	projected, err := momentum.Project(spatial, p1.t, p1.l, momenta,
		momentum.Options{AverageEquivalent: opts.AverageEquivalent})
	if err != nil {
		return nil, err
	}

	if opts.Fold {
		for p, series := range projected {
			folded, err := fold.Fold(series)
			if err != nil {
				return nil, fmt.Errorf("folding momentum %v: %w", p, err)
			}
			projected[p] = folded
		}
	}

	return projected, nil
}

// adjointBlock applies the γ5-sandwich Hermitian conjugation to one
// spin-color block: γ5 · B† · γ5, where B†[i,j,a,b] = conj(B[j,i,b,a]).
// For a propagator this reconstructs the backward-propagating value from
// the forward one.
func adjointBlock(blk siteBlock) siteBlock {
	var dag siteBlock
	for i := 0; i < spinDim; i++ {
		for j := 0; j < spinDim; j++ {
			for a := 0; a < colorDim; a++ {
				for b := 0; b < colorDim; b++ {
					dag[i][j][a][b] = cmplx.Conj(blk[j][i][b][a])
				}
			}
		}
	}

	return spinMul(gamma5, blockSpinMul(dag, gamma5))
}

// spinMul left-multiplies a spin-color block by a spin matrix:
// (m·B)[i,j,a,b] = Σ_k m[i,k]·B[k,j,a,b].
func spinMul(m SpinMatrix, blk siteBlock) siteBlock {
	var out siteBlock
	for i := 0; i < spinDim; i++ {
		for k := 0; k < spinDim; k++ {
			c := m[i][k]
			if c == 0 {
				continue
			}
			for j := 0; j < spinDim; j++ {
				for a := 0; a < colorDim; a++ {
					for b := 0; b < colorDim; b++ {
						out[i][j][a][b] += c * blk[k][j][a][b]
					}
				}
			}
		}
	}

	return out
}

// blockSpinMul right-multiplies a spin-color block by a spin matrix:
// (B·m)[i,j,a,b] = Σ_k B[i,k,a,b]·m[k,j].
func blockSpinMul(blk siteBlock, m SpinMatrix) siteBlock {
	var out siteBlock
	for k := 0; k < spinDim; k++ {
		for j := 0; j < spinDim; j++ {
			c := m[k][j]
			if c == 0 {
				continue
			}
			for i := 0; i < spinDim; i++ {
				for a := 0; a < colorDim; a++ {
					for b := 0; b < colorDim; b++ {
						out[i][j][a][b] += blk[i][k][a][b] * c
					}
				}
			}
		}
	}

	return out
}

// traceContract evaluates the spin-color trace
// Σ_{i,j,a,b} left[i,j,a,b]·right[j,i,b,a] and returns its real part.
func traceContract(left, right siteBlock) float64 {
	var sum complex128
	for i := 0; i < spinDim; i++ {
		for j := 0; j < spinDim; j++ {
			for a := 0; a < colorDim; a++ {
				for b := 0; b < colorDim; b++ {
					sum += left[i][j][a][b] * right[j][i][b][a]
				}
			}
		}
	}

	return real(sum)
}
