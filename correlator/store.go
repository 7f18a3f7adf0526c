package correlator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/qcdlab/twopoint/fold"
	"github.com/qcdlab/twopoint/momentum"
)

// Store owns a mapping from Key to Series together with the lattice
// extents L (spatial) and T (temporal), fixed for the store's lifetime.
// A Store is created empty (NewStore) or by deserialization (Load) and is
// mutated only through AddCorrelator.
type Store struct {
	l, t    int
	entries map[string]entry
}

// entry pairs a canonical key with its owned series.
type entry struct {
	key    Key
	series Series
}

// NewStore creates an empty store for an L³×T lattice.
// Returns ErrBadExtent when either extent is not positive.
func NewStore(l, t int) (*Store, error) {
	if l < 1 || t < 1 {
		return nil, fmt.Errorf("L=%d T=%d: %w", l, t, ErrBadExtent)
	}

	return &Store{l: l, t: t, entries: make(map[string]entry)}, nil
}

// L returns the spatial extent of the lattice.
func (s *Store) L() int { return s.l }

// T returns the temporal extent of the lattice.
func (s *Store) T() int { return s.t }

// Len returns the number of stored correlators.
func (s *Store) Len() int { return len(s.entries) }

// AddCorrelator inserts (or overwrites) the correlator at the key derived
// from key's canonical form.
//
// With opts.Projected, data must be a length-T series. Otherwise data must
// be a (T,L,L,L) spatial correlator flattened row-major; it is projected
// onto the key's momentum first (shell-averaged when
// opts.AverageEquivalent is set). With opts.Fold the series is folded
// about the temporal midpoint before storage.
//
// The data slice is copied; the caller keeps ownership of its argument.
//
// Errors:
//   - ErrBadShape — data length matches neither accepted shape.
func (s *Store) AddCorrelator(data []float64, key Key, opts AddOptions) error {
	key = key.canonical()

	var series []float64
	switch {
	case opts.Projected:
		if len(data) != s.t {
			return fmt.Errorf("projected data has length %d, want T=%d: %w",
				len(data), s.t, ErrBadShape)
		}
		series = make([]float64, s.t)
		copy(series, data)

	default:
		if len(data) != s.t*s.l*s.l*s.l {
			return fmt.Errorf("spatial data has length %d, want T·L³=%d: %w",
				len(data), s.t*s.l*s.l*s.l, ErrBadShape)
		}
		projected, err := momentum.Project(data, s.t, s.l,
			[][3]int{key.Momentum},
			momentum.Options{AverageEquivalent: opts.AverageEquivalent})
		if err != nil {
			return fmt.Errorf("projecting onto %v: %w", key.Momentum, err)
		}
		series = projected[key.Momentum]
	}

	folded := false
	if opts.Fold {
		var err error
		if series, err = fold.Fold(series); err != nil {
			return fmt.Errorf("folding %s: %w", key, err)
		}
		folded = true
	}

	s.entries[key.id()] = entry{key: key, series: Series{Data: series, Folded: folded}}

	return nil
}

// Entry is one (Key, Series) match returned by Filter.
type Entry struct {
	Key    Key
	Series Series
}

// Filter returns every stored correlator matching the query, sorted by
// canonical key identity for determinism. Series are deep copies — the
// store's entries stay immutable.
//
// Returns ErrBadQuery when q.Momentum is non-nil but not a triple.
func (s *Store) Filter(q Query) ([]Entry, error) {
	if q.Momentum != nil && len(q.Momentum) != 3 {
		return nil, fmt.Errorf("momentum %v: %w", q.Momentum, ErrBadQuery)
	}

	ids := make([]string, 0, len(s.entries))
	for id, e := range s.entries {
		if q.matches(e.key) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	out := make([]Entry, len(ids))
	for i, id := range ids {
		e := s.entries[id]
		out[i] = Entry{Key: e.key, Series: e.series.Clone()}
	}

	return out, nil
}

// Get returns the single correlator matching the query.
//
// Errors:
//   - ErrBadQuery  — malformed query momentum.
//   - ErrNotFound  — nothing matches.
//   - ErrAmbiguous — more than one entry matches; tighten the query.
func (s *Store) Get(q Query) (Series, error) {
	matches, err := s.Filter(q)
	if err != nil {
		return Series{}, err
	}
	switch len(matches) {
	case 0:
		return Series{}, ErrNotFound
	case 1:
		return matches[0].Series, nil
	default:
		return Series{}, fmt.Errorf("%d matches: %w", len(matches), ErrAmbiguous)
	}
}

// Keys returns every stored key, sorted by canonical identity.
func (s *Store) Keys() []Key {
	ids := make([]string, 0, len(s.entries))
	for id := range s.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]Key, len(ids))
	for i, id := range ids {
		out[i] = s.entries[id].key
	}

	return out
}

// String renders the store's extents and key listing.
func (s *Store) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Two-point correlator store\n")
	fmt.Fprintf(&b, "Spatial extent:  %d\n", s.l)
	fmt.Fprintf(&b, "Temporal extent: %d\n", s.t)
	fmt.Fprintf(&b, "Correlators:\n")
	if s.Len() == 0 {
		b.WriteString("- none\n")

		return b.String()
	}
	for _, k := range s.Keys() {
		fmt.Fprintf(&b, "- %s\n", k)
	}

	return b.String()
}
