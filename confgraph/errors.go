package confgraph

import "errors"

// Sentinel errors for the constraint-graph builder. Per the package's
// error policy, these are never wrapped with formatted text at
// definition site; call sites attach context with fmt.Errorf("...: %w",
// ErrX) instead.
var (
	// ErrBadAngleConstraints indicates a vertex's or a face's angle
	// constraints are structurally inconsistent: too many mountains,
	// a bad flat count at a vertex, or an odd or zero count of nonflat
	// corners around a face. The shrink loop does not inspect explicit
	// Mountain/Valley constraints on the corners it collapses, so such
	// constraints never produce this error.
	ErrBadAngleConstraints = errors.New("confgraph: inconsistent angle constraints")

	// ErrKawasakiViolation indicates a face's alternating signed sum of
	// effective edge lengths is nonzero: the face cannot flat-fold at
	// the given lengths regardless of mountain/valley assignment.
	ErrKawasakiViolation = errors.New("confgraph: Kawasaki-Justin condition violated")

	// ErrNonplanar indicates the input G-map is not 2-dimensional.
	ErrNonplanar = errors.New("confgraph: input is not a 2-D G-map")
)
