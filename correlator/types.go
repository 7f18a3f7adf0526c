// Package correlator: key, series and option types for the correlator store.
package correlator

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/qcdlab/twopoint/fold"
)

// MassDigits is the fixed decimal precision to which valence-quark masses
// are rounded before entering a Key. Rounding at the boundary guarantees
// that representation noise (0.4 vs 0.40000000000000002) never splits one
// physical correlator into two map entries.
const MassDigits = 8

// Smearing identifies the source/sink smearing used when the propagators
// behind a correlator were inverted.
type Smearing int

const (
	// Unset marks an unknown or unspecified smearing. It is the zero value
	// and doubles as the wildcard in queries.
	Unset Smearing = iota
	// Point smearing: delta-function source.
	Point
	// Shell smearing: smeared (extended) source.
	Shell
	// Wall smearing: source spread over a full timeslice.
	Wall
)

// String returns the lower-case name of the smearing type.
func (sm Smearing) String() string {
	switch sm {
	case Point:
		return "point"
	case Shell:
		return "shell"
	case Wall:
		return "wall"
	default:
		return "unset"
	}
}

// ParseSmearing converts a lower-case smearing name to its enum value.
// Unknown names map to Unset, mirroring how descriptor fields absent from
// simulation output are recorded.
func ParseSmearing(s string) Smearing {
	switch s {
	case "point":
		return Point
	case "shell":
		return Shell
	case "wall":
		return Wall
	default:
		return Unset
	}
}

// RoundMass rounds a bare quark mass to MassDigits decimal digits.
func RoundMass(m float64) float64 {
	const shift = 1e8
	return math.Round(m*shift) / shift
}

// Key is the composite identity of one correlator: particle label, ordered
// valence-quark masses (rounded), lattice momentum (exact integers) and
// source/sink smearing. Build keys with NewKey; the store canonicalizes
// keys on every ingest anyway, so a hand-built Key with unrounded masses
// cannot corrupt the map.
type Key struct {
	Label    string
	Masses   []float64
	Momentum [3]int
	Source   Smearing
	Sink     Smearing
}

// NewKey builds a canonical Key: the mass slice is copied and each mass
// rounded to MassDigits decimal digits.
func NewKey(label string, masses []float64, momentum [3]int, source, sink Smearing) Key {
	rounded := make([]float64, len(masses))
	for i, m := range masses {
		rounded[i] = RoundMass(m)
	}

	return Key{
		Label:    label,
		Masses:   rounded,
		Momentum: momentum,
		Source:   source,
		Sink:     sink,
	}
}

// canonical returns the canonical Key for k (label preserved, masses
// rounded and copied).
func (k Key) canonical() Key {
	return NewKey(k.Label, k.Masses, k.Momentum, k.Source, k.Sink)
}

// id renders the canonical map identity of the key. Masses are formatted
// after rounding with the shortest exact representation, so two keys agree
// on id exactly when they agree on every field.
func (k Key) id() string {
	var b strings.Builder
	b.WriteString(k.Label)
	b.WriteByte('|')
	for i, m := range k.Masses {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(RoundMass(m), 'g', -1, 64))
	}
	fmt.Fprintf(&b, "|%d,%d,%d|%s|%s",
		k.Momentum[0], k.Momentum[1], k.Momentum[2], k.Source, k.Sink)

	return b.String()
}

// String renders the key the way archive listings print it.
func (k Key) String() string {
	masses := make([]string, len(k.Masses))
	for i, m := range k.Masses {
		masses[i] = strconv.FormatFloat(m, 'g', -1, 64)
	}

	return fmt.Sprintf("%s m=(%s) p=(%d,%d,%d) %s→%s",
		k.Label, strings.Join(masses, ","),
		k.Momentum[0], k.Momentum[1], k.Momentum[2], k.Source, k.Sink)
}

// Series is one stored correlator: a real length-T signal and a
// provenance flag recording whether it has been folded.
type Series struct {
	Data   []float64
	Folded bool
}

// Clone returns a deep copy of the series.
func (s Series) Clone() Series {
	data := make([]float64, len(s.Data))
	copy(data, s.Data)

	return Series{Data: data, Folded: s.Folded}
}

// Fold returns the series folded about its temporal midpoint, with the
// provenance flag set. Folding is one-way: a series that is already
// folded is refused with ErrAlreadyFolded.
func (s Series) Fold() (Series, error) {
	if s.Folded {
		return Series{}, ErrAlreadyFolded
	}
	data, err := fold.Fold(s.Data)
	if err != nil {
		return Series{}, fmt.Errorf("correlator: %w", err)
	}

	return Series{Data: data, Folded: true}, nil
}

// AddOptions configures AddCorrelator.
//
// Fields:
//   - Projected         — true when data is already a length-T series;
//     false when it is a (T,L,L,L) spatial correlator to be projected onto
//     the key's momentum first.
//   - Fold              — fold the series about the temporal midpoint
//     before storage.
//   - AverageEquivalent — when projecting (Projected=false), average over
//     the momentum shell instead of selecting the single wrapped mode.
type AddOptions struct {
	Projected         bool
	Fold              bool
	AverageEquivalent bool
}

// DefaultAddOptions returns the canonical ingest settings: data already
// projected, no folding.
func DefaultAddOptions() AddOptions {
	return AddOptions{Projected: true}
}

// Query selects stored correlators by any subset of key fields. Zero
// values are wildcards: empty Label, nil Masses, nil Momentum and Unset
// smearings match everything. A non-nil Momentum must have exactly three
// components. Query masses are rounded before comparison, exactly like
// key masses.
type Query struct {
	Label    string
	Masses   []float64
	Momentum []int
	Source   Smearing
	Sink     Smearing
}

// matches reports whether the (canonical) key satisfies the query.
// The caller validates q.Momentum beforehand.
func (q Query) matches(k Key) bool {
	if q.Label != "" && q.Label != k.Label {
		return false
	}
	if q.Masses != nil {
		if len(q.Masses) != len(k.Masses) {
			return false
		}
		for i, m := range q.Masses {
			if RoundMass(m) != k.Masses[i] {
				return false
			}
		}
	}
	if q.Momentum != nil {
		for i, p := range q.Momentum {
			if p != k.Momentum[i] {
				return false
			}
		}
	}
	if q.Source != Unset && q.Source != k.Source {
		return false
	}
	if q.Sink != Unset && q.Sink != k.Sink {
		return false
	}

	return true
}
