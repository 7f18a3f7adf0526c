// Package momentum: options and sentinel errors for momentum projection.
package momentum

import "errors"

// Sentinel errors for momentum operations.
var (
	// ErrBadExtent indicates a non-positive spatial or temporal extent.
	ErrBadExtent = errors.New("momentum: lattice extents must be positive")
	// ErrBadShape indicates the spatial correlator length does not equal T·L³.
	ErrBadShape = errors.New("momentum: spatial correlator does not match lattice extents")
	// ErrNoMomenta indicates an empty target momentum list.
	ErrNoMomenta = errors.New("momentum: at least one target momentum is required")
)

// Options configures momentum projection.
//
// Fields:
//   - AverageEquivalent — when true, each requested momentum is replaced by
//     the average of the spectrum over its momentum shell (all lattice
//     momenta of equal |p|²). When false, only the single wrapped component
//     is selected.
type Options struct {
	AverageEquivalent bool
}

// DefaultOptions returns the canonical projection settings:
// shell averaging enabled.
func DefaultOptions() Options {
	return Options{AverageEquivalent: true}
}
