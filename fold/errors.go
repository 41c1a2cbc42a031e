package fold

import "errors"

var (
	// ErrFoldMissingField is returned when a mandatory FOLD frame field
	// (faces_vertices, faces_edges, vertices_coords, or one of
	// edges_assignment/edges_foldAngle) is absent.
	ErrFoldMissingField = errors.New("fold: missing mandatory field")
	// ErrFoldNonManifold is returned when an edge is referenced by more
	// than two faces, or a face/edge/vertex index is structurally
	// inconsistent with a manifold surface.
	ErrFoldNonManifold = errors.New("fold: input is not a manifold")
	// ErrFoldBadCoordinates is returned for a vertex coordinate with fewer
	// than two components or a nonzero z, and, when WithLengthCheck is
	// enabled, for an edges_length entry that disagrees with the coordinates.
	ErrFoldBadCoordinates = errors.New("fold: vertex coordinates must be 2-D (or 3-D with z=0)")
	// ErrFoldBadAngle is returned when a fold angle falls outside [-180, 180].
	ErrFoldBadAngle = errors.New("fold: fold angle out of range [-180, 180]")
	// ErrFoldBadFace is returned when a face's faces_vertices and
	// faces_edges entries disagree in length, per-face or overall.
	ErrFoldBadFace = errors.New("fold: faces_vertices and faces_edges disagree in length")
	// ErrFoldInvalidReference is returned when a face/edge/vertex index
	// referenced by the frame does not exist.
	ErrFoldInvalidReference = errors.New("fold: reference to nonexistent index")
	// ErrDistinctIsometries is returned when propagating face isometries
	// reaches a face from two different directions with inconsistent
	// results (the crease pattern is not flat-foldable at these angles).
	ErrDistinctIsometries = errors.New("fold: inconsistent isometries at shared face")
	// ErrFaceIntersection is returned by the self-overlap pass when two
	// non-crease-sharing faces meet in 3-D.
	ErrFaceIntersection = errors.New("fold: faces intersect")
)
