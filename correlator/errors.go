package correlator

import "errors"

// Sentinel errors for the correlator package. All public operations return
// these sentinels (possibly wrapped with context via %w); callers match
// them with errors.Is.
var (
	// ErrBadExtent indicates a non-positive spatial or temporal extent.
	ErrBadExtent = errors.New("correlator: lattice extents must be positive")
	// ErrBadShape indicates correlator data whose length does not match the
	// store's extents (T for projected data, T·L³ for unprojected data).
	ErrBadShape = errors.New("correlator: data shape does not match lattice extents")
	// ErrAlreadyFolded indicates an attempt to fold a series that is
	// already folded; folding is a one-way, non-idempotent transform.
	ErrAlreadyFolded = errors.New("correlator: series is already folded")
	// ErrNilStore indicates a nil *Store receiver or operand.
	ErrNilStore = errors.New("correlator: nil store")
	// ErrExtentMismatch indicates arithmetic across stores with different
	// lattice extents.
	ErrExtentMismatch = errors.New("correlator: stores have different lattice extents")
	// ErrKeyMismatch indicates arithmetic across stores whose key sets are
	// not identical.
	ErrKeyMismatch = errors.New("correlator: stores have mismatched key sets")
	// ErrBadQuery indicates a malformed filter query (e.g. a momentum that
	// is not a triple).
	ErrBadQuery = errors.New("correlator: query momentum must have exactly three components")
	// ErrNotFound indicates no stored correlator matches the query.
	ErrNotFound = errors.New("correlator: no correlator matches the query")
	// ErrAmbiguous indicates more than one stored correlator matches a
	// query that requires a unique match.
	ErrAmbiguous = errors.New("correlator: query matches more than one correlator")
	// ErrBadFormat indicates a malformed persisted archive (missing or
	// invalid header, missing mapping, or data inconsistent with the header).
	ErrBadFormat = errors.New("correlator: malformed correlator archive")
)
