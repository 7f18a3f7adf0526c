package correlator

import (
	"fmt"
	"math"
)

// Arithmetic on stores. Every operation returns a new store with the same
// (L, T); operands are never mutated. Binary operations are strict about
// key sets: the stores must hold exactly the same keys, otherwise the
// operation fails with ErrKeyMismatch naming the first offending key.
// (Silently dropping or inventing entries would corrupt downstream
// ensemble averages without a trace.)

// sameKeySet verifies both stores hold identical key sets and returns the
// first offending key id otherwise.
func sameKeySet(a, b *Store) error {
	if len(a.entries) != len(b.entries) {
		return fmt.Errorf("%d vs %d entries: %w", len(a.entries), len(b.entries), ErrKeyMismatch)
	}
	for id := range a.entries {
		if _, ok := b.entries[id]; !ok {
			return fmt.Errorf("key %q missing from operand: %w", id, ErrKeyMismatch)
		}
	}

	return nil
}

// combine element-wise merges two stores with op, after extent and key-set
// checks. The Folded flag of the receiver's entry is kept.
func (s *Store) combine(o *Store, op func(a, b float64) float64) (*Store, error) {
	if s == nil || o == nil {
		return nil, ErrNilStore
	}
	if s.l != o.l || s.t != o.t {
		return nil, fmt.Errorf("(L,T)=(%d,%d) vs (%d,%d): %w",
			s.l, s.t, o.l, o.t, ErrExtentMismatch)
	}
	if err := sameKeySet(s, o); err != nil {
		return nil, err
	}

	out := &Store{l: s.l, t: s.t, entries: make(map[string]entry, len(s.entries))}
	for id, e := range s.entries {
		other := o.entries[id]
		data := make([]float64, len(e.series.Data))
		for i := range data {
			data[i] = op(e.series.Data[i], other.series.Data[i])
		}
		out.entries[id] = entry{key: e.key, series: Series{Data: data, Folded: e.series.Folded}}
	}

	return out, nil
}

// apply element-wise maps every series of the store through fn.
func (s *Store) apply(fn func(v float64) float64) *Store {
	out := &Store{l: s.l, t: s.t, entries: make(map[string]entry, len(s.entries))}
	for id, e := range s.entries {
		data := make([]float64, len(e.series.Data))
		for i, v := range e.series.Data {
			data[i] = fn(v)
		}
		out.entries[id] = entry{key: e.key, series: Series{Data: data, Folded: e.series.Folded}}
	}

	return out
}

// Add returns a new store holding the element-wise sum of correlators
// sharing identical keys.
//
// Errors: ErrNilStore, ErrExtentMismatch, ErrKeyMismatch.
func (s *Store) Add(o *Store) (*Store, error) {
	return s.combine(o, func(a, b float64) float64 { return a + b })
}

// Sub returns a new store holding the element-wise difference of
// correlators sharing identical keys.
//
// Errors: ErrNilStore, ErrExtentMismatch, ErrKeyMismatch.
func (s *Store) Sub(o *Store) (*Store, error) {
	return s.combine(o, func(a, b float64) float64 { return a - b })
}

// Negate returns a new store with every correlator negated element-wise.
func (s *Store) Negate() *Store {
	return s.apply(func(v float64) float64 { return -v })
}

// Pow returns a new store with every correlator raised element-wise to
// the given exponent.
func (s *Store) Pow(exponent float64) *Store {
	return s.apply(func(v float64) float64 { return math.Pow(v, exponent) })
}

// Scale returns a new store with every correlator multiplied element-wise
// by factor. Division by a scalar x is Scale(1/x).
func (s *Store) Scale(factor float64) *Store {
	return s.apply(func(v float64) float64 { return v * factor })
}
