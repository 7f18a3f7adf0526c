package contract

import (
	"fmt"
	"math/cmplx"
)

// SpinMatrix is a 4×4 complex Dirac spin structure.
type SpinMatrix [4][4]complex128

// Mul returns the matrix product m·o.
func (m SpinMatrix) Mul(o SpinMatrix) SpinMatrix {
	var out SpinMatrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum complex128
			for k := 0; k < 4; k++ {
				sum += m[i][k] * o[k][j]
			}
			out[i][j] = sum
		}
	}

	return out
}

// Euclidean Dirac matrices in the Dirac-Pauli representation:
// γ_k = [[0, −iσ_k], [iσ_k, 0]] for k = 1..3, γ_4 = diag(1, 1, −1, −1).
// All four are Hermitian and square to the identity. γ5 = γ1·γ2·γ3·γ4 is
// derived in init rather than written out, so the algebra cannot drift
// from the basis.
var (
	spinIdentity = SpinMatrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
	gamma1 = SpinMatrix{
		{0, 0, 0, complex(0, -1)},
		{0, 0, complex(0, -1), 0},
		{0, complex(0, 1), 0, 0},
		{complex(0, 1), 0, 0, 0},
	}
	gamma2 = SpinMatrix{
		{0, 0, 0, -1},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{-1, 0, 0, 0},
	}
	gamma3 = SpinMatrix{
		{0, 0, complex(0, -1), 0},
		{0, 0, 0, complex(0, 1)},
		{complex(0, 1), 0, 0, 0},
		{0, complex(0, -1), 0, 0},
	}
	gamma4 = SpinMatrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, -1, 0},
		{0, 0, 0, -1},
	}
	gamma5 SpinMatrix
)

// interpolatorNames is the canonical ordering of the 16-element Dirac
// bilinear basis: identity, the four γ_μ, γ5, the four γ_μγ5, and the six
// antisymmetric products γ_μγ_ν (μ < ν).
var interpolatorNames = [16]string{
	"1",
	"g1", "g2", "g3", "g4",
	"g5",
	"g1g5", "g2g5", "g3g5", "g4g5",
	"g1g2", "g1g3", "g1g4", "g2g3", "g2g4", "g3g4",
}

// interpolators maps each canonical name to its matrix. Populated once in
// init; immutable afterwards and safe to share across goroutines.
var interpolators map[string]SpinMatrix

// mesonAliases maps common meson channel names onto canonical
// interpolator names.
var mesonAliases = map[string]string{
	"a0":    "1",
	"rho_x": "g1",
	"rho_y": "g2",
	"rho_z": "g3",
	"pion":  "g5",
	"a1_x":  "g1g5",
	"a1_y":  "g2g5",
	"a1_z":  "g3g5",
}

func init() {
	gamma5 = gamma1.Mul(gamma2).Mul(gamma3).Mul(gamma4)

	g := [5]SpinMatrix{spinIdentity, gamma1, gamma2, gamma3, gamma4}
	interpolators = map[string]SpinMatrix{
		"1":  spinIdentity,
		"g1": gamma1, "g2": gamma2, "g3": gamma3, "g4": gamma4,
		"g5": gamma5,
	}
	for mu := 1; mu <= 4; mu++ {
		interpolators[fmt.Sprintf("g%dg5", mu)] = g[mu].Mul(gamma5)
		for nu := mu + 1; nu <= 4; nu++ {
			interpolators[fmt.Sprintf("g%dg%d", mu, nu)] = g[mu].Mul(g[nu])
		}
	}
}

// Interpolators returns the 16 canonical interpolator names in their
// fixed order. The batch sweep enumerates ordered pairs of exactly this
// list.
func Interpolators() []string {
	out := make([]string, len(interpolatorNames))
	copy(out[:], interpolatorNames[:])

	return out
}

// Operator is an interpolating operator given either by name (resolved
// against the interpolator table and meson aliases) or as an explicit
// spin matrix.
type Operator struct {
	name     string
	matrix   SpinMatrix
	explicit bool
}

// Named builds an operator resolved by table lookup, e.g. "g5" or the
// meson alias "pion".
func Named(name string) Operator {
	return Operator{name: name}
}

// Explicit builds an operator from a raw spin matrix.
func Explicit(m SpinMatrix) Operator {
	return Operator{matrix: m, explicit: true}
}

// Label returns the operator's display name ("custom" for explicit
// matrices).
func (o Operator) Label() string {
	if o.explicit {
		return "custom"
	}

	return o.name
}

// Resolve returns the concrete spin matrix for the operator.
// Returns ErrUnknownOperator for a name missing from both the canonical
// table and the meson aliases.
func (o Operator) Resolve() (SpinMatrix, error) {
	if o.explicit {
		return o.matrix, nil
	}
	name := o.name
	if canonical, ok := mesonAliases[name]; ok {
		name = canonical
	}
	m, ok := interpolators[name]
	if !ok {
		return SpinMatrix{}, fmt.Errorf("%q: %w", o.name, ErrUnknownOperator)
	}

	return m, nil
}

// isHermitian reports whether m equals its conjugate transpose within eps.
// Used by tests to sanity-check the generated table.
func (m SpinMatrix) isHermitian(eps float64) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if cmplx.Abs(m[i][j]-cmplx.Conj(m[j][i])) > eps {
				return false
			}
		}
	}

	return true
}
