package contract

import "fmt"

// Spin and color dimensions of a Wilson-type quark propagator.
const (
	spinDim  = 4
	colorDim = 3
)

// Propagator is an 8-index complex tensor of shape
// (T, L, L, L, 4, 4, 3, 3) — time, three spatial coordinates, two spin
// indices, two color indices — flattened row-major in that order. It is
// produced by an external inverter and consumed read-only here.
type Propagator struct {
	t, l int
	data []complex128
}

// PropagatorLen returns the flat element count of a propagator for the
// given lattice extents.
func PropagatorLen(tExtent, l int) int {
	return tExtent * l * l * l * spinDim * spinDim * colorDim * colorDim
}

// NewPropagator wraps an already-computed propagator tensor. The slice is
// retained (not copied — these tensors are large) and must not be
// mutated afterwards.
//
// Errors:
//   - ErrBadExtent — non-positive extent.
//   - ErrBadShape  — len(data) ≠ T·L³·4·4·3·3.
func NewPropagator(tExtent, l int, data []complex128) (*Propagator, error) {
	if tExtent < 1 || l < 1 {
		return nil, fmt.Errorf("T=%d L=%d: %w", tExtent, l, ErrBadExtent)
	}
	if len(data) != PropagatorLen(tExtent, l) {
		return nil, fmt.Errorf("length %d, want %d: %w",
			len(data), PropagatorLen(tExtent, l), ErrBadShape)
	}

	return &Propagator{t: tExtent, l: l, data: data}, nil
}

// T returns the temporal extent.
func (p *Propagator) T() int { return p.t }

// L returns the spatial extent.
func (p *Propagator) L() int { return p.l }

// index flattens (t, x, y, z, i, j, a, b) row-major.
func (p *Propagator) index(t, x, y, z, i, j, a, b int) int {
	site := ((t*p.l+x)*p.l+y)*p.l + z

	return (((site*spinDim+i)*spinDim+j)*colorDim+a)*colorDim + b
}

// At returns the propagator element at the given indices.
func (p *Propagator) At(t, x, y, z, i, j, a, b int) complex128 {
	return p.data[p.index(t, x, y, z, i, j, a, b)]
}

// siteBlock is the 4×4×3×3 spin-color block at one space-time point.
type siteBlock [spinDim][spinDim][colorDim][colorDim]complex128

// site extracts the spin-color block at (t, x, y, z).
func (p *Propagator) site(t, x, y, z int) siteBlock {
	var blk siteBlock
	base := p.index(t, x, y, z, 0, 0, 0, 0)
	idx := base
	for i := 0; i < spinDim; i++ {
		for j := 0; j < spinDim; j++ {
			for a := 0; a < colorDim; a++ {
				for b := 0; b < colorDim; b++ {
					blk[i][j][a][b] = p.data[idx]
					idx++
				}
			}
		}
	}

	return blk
}
