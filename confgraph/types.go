package confgraph

import "github.com/flatfold/flatfold/gmap"

// AngleState is the admissible crease state at one corner of a Problem.
type AngleState int

const (
	Valley AngleState = iota
	Flat
	Mountain
)

// String renders a for diagnostics.
func (a AngleState) String() string {
	switch a {
	case Valley:
		return "valley"
	case Flat:
		return "flat"
	case Mountain:
		return "mountain"
	default:
		return "unknown"
	}
}

// Color partitions clauses of the constraint graph.
type Color int

const (
	Red Color = iota
	Blue
)

func (c Color) String() string {
	if c == Blue {
		return "blue"
	}

	return "red"
}

// Problem is the constraint-graph builder's input: an oriented 2-D G-map
// with integer edge lengths, a partial angle-constraint assignment, and a
// designated exterior face. Orientation convention: in every ANGLE-orbit
// {d, alpha_1(d)}, the lower-numbered dart points counter-clockwise in
// its face.
type Problem struct {
	G *gmap.GMap
	// Length gives the integer length of each edge, keyed on gmap.Edge.
	Length *gmap.OrbitMap[int]
	// AngleConstraint is a partial assignment keyed on gmap.Angle: a
	// missing entry means the corner's mountain/valley/flat state is
	// not yet known and is exactly what the constraint graph solves
	// for.
	AngleConstraint *gmap.OrbitMap[AngleState]
	// Exterior is a dart of the G-map's exterior face (the unbounded
	// region, represented explicitly as a face like any other, per
	// the grid builders' WrapExterior).
	Exterior gmap.Dart
}

// Constraints is the constraint-graph builder's output.
type Constraints struct {
	// CG is the output planar 2-D G-map: clauses are built as rings
	// under {alpha_1, alpha_2} (the same shape as a VERTEX orbit in a
	// crease-pattern G-map), and every variable is a single alpha_0
	// link joining one Blue clause's ring to one Red clause's ring.
	CG *gmap.GMap
	// ClauseSizes gives, per clause (keyed on gmap.Vertex of CG, since
	// a clause is a {alpha_1,alpha_2}-ring), the number of "true"
	// (mountain) variables required for that clause to be satisfied.
	ClauseSizes *gmap.OrbitMap[int]
	// ClauseColors partitions clauses into Red (face-derived) and Blue
	// (vertex-derived), keyed on gmap.Vertex of CG.
	ClauseColors *gmap.OrbitMap[Color]
	// AngleToCG maps each ANGLE-orbit of the input Problem's G-map to
	// the CG dart realizing its variable's Blue-clause anchor.
	AngleToCG *gmap.OrbitMap[gmap.Dart]
}
