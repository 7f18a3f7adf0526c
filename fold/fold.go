package fold

import (
	"errors"
	"math"
)

// Sentinel errors for fold operations.
var (
	// ErrTooShort indicates the correlator has fewer than two timeslices,
	// so no periodicity class can be read off the data.
	ErrTooShort = errors.New("fold: correlator must have at least two timeslices")
)

// Periodicity labels the time-reversal symmetry class of a correlator.
type Periodicity int

const (
	// CoshLike marks a periodic signal: C(t) = +C(T−t), folded by averaging.
	CoshLike Periodicity = iota
	// SinhLike marks an antiperiodic signal: C(t) = −C(T−t), folded by
	// half-differencing.
	SinhLike
)

// String returns a human-readable name for the periodicity class.
func (p Periodicity) String() string {
	switch p {
	case CoshLike:
		return "cosh"
	case SinhLike:
		return "sinh"
	default:
		return "unknown"
	}
}

// Detect classifies the correlator by comparing the sign of its second
// element against its last. Matching signs mean the signal is symmetric
// about the midpoint (cosh-like); differing signs mean antisymmetric
// (sinh-like). A zero element counts as positive sign here, which keeps
// the decision deterministic for degenerate inputs.
//
// Returns ErrTooShort when len(c) < 2.
func Detect(c []float64) (Periodicity, error) {
	if len(c) < 2 {
		return CoshLike, ErrTooShort
	}
	if math.Signbit(c[1]) == math.Signbit(c[len(c)-1]) {
		return CoshLike, nil
	}

	return SinhLike, nil
}

// Fold folds the correlator about its temporal midpoint according to the
// detected periodicity class:
//
//	cosh-like: out[0] = c[0], out[k] = (c[k] + c[T−k]) / 2, k = 1..T−1
//	sinh-like: out[0] = c[0], out[k] = (c[k] − c[T−k]) / 2, k = 1..T−1
//
// The result keeps the original length T; only the first half is
// independent information. The input is never mutated.
//
// Returns ErrTooShort when len(c) < 2.
func Fold(c []float64) ([]float64, error) {
	class, err := Detect(c)
	if err != nil {
		return nil, err
	}

	t := len(c)
	out := make([]float64, t)
	out[0] = c[0]

	sign := 1.0
	if class == SinhLike {
		sign = -1.0
	}
	for k := 1; k < t; k++ {
		out[k] = (c[k] + sign*c[t-k]) / 2
	}

	return out, nil
}
