package contract

import "errors"

// Sentinel errors for contraction operations.
var (
	// ErrNilPropagator indicates a nil *Propagator argument.
	ErrNilPropagator = errors.New("contract: nil propagator")
	// ErrBadExtent indicates a non-positive spatial or temporal extent.
	ErrBadExtent = errors.New("contract: lattice extents must be positive")
	// ErrBadShape indicates propagator data whose length does not equal
	// T·L³·4·4·3·3.
	ErrBadShape = errors.New("contract: propagator data does not match lattice extents")
	// ErrExtentMismatch indicates two propagators from different lattices.
	ErrExtentMismatch = errors.New("contract: propagators have different lattice extents")
	// ErrUnknownOperator indicates a named operator absent from the
	// interpolator table and its aliases.
	ErrUnknownOperator = errors.New("contract: unknown interpolating operator")
	// ErrBadWorkers indicates a negative worker-pool size.
	ErrBadWorkers = errors.New("contract: worker count must not be negative")
)
