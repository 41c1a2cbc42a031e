package gmap

import "errors"

// Dart is an opaque identifier into a GMap's dense dart array. Darts are
// the universal combinatorial atoms: every k-cell is an orbit of darts
// under some subset of the involutions alpha_0 .. alpha_n.
type Dart int32

// Sentinel errors for gmap operations. Per the package's error policy,
// these are never wrapped with formatted text at definition site; callers
// attach context with fmt.Errorf("...: %w", ErrX) instead.
var (
	// ErrInvalidAlpha indicates a raw alpha table failed the involution,
	// commutation, or shape checks performed by FromAlpha.
	ErrInvalidAlpha = errors.New("gmap: invalid alpha table")

	// ErrCannotDecreaseDimension indicates IncreaseDimension was called
	// with a dimension smaller than the GMap's current dimension.
	ErrCannotDecreaseDimension = errors.New("gmap: cannot decrease dimension")

	// ErrDimensionTooLarge indicates a requested dimension exceeds the
	// hard cap of 31 (Alphas is a uint32 bitset).
	ErrDimensionTooLarge = errors.New("gmap: dimension too large")

	// ErrUnsewable indicates Sew found no consistent dart-for-dart pairing
	// between the two orbits being joined.
	ErrUnsewable = errors.New("gmap: darts cannot be sewn")

	// ErrUnunsewable indicates Unsew's precondition failed: the i-orbit of
	// the dart is not disjoint from its own alpha_i image.
	ErrUnunsewable = errors.New("gmap: darts cannot be unsewn")

	// ErrNotFree indicates Link was given a dart that is already linked
	// along the requested involution.
	ErrNotFree = errors.New("gmap: dart is not free")

	// ErrAlreadyFree indicates Unlink was given a dart that is already
	// free (alpha_i(d) == d) along the requested involution.
	ErrAlreadyFree = errors.New("gmap: dart is already free")

	// ErrDeleted indicates an operation referenced a tombstoned dart.
	ErrDeleted = errors.New("gmap: dart is deleted")
)
