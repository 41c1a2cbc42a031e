package confgraph

import (
	"fmt"

	"github.com/flatfold/flatfold/gmap"
)

// Build runs the full constraint-graph construction on p: it propagates
// the single-vertex necessary conditions, adds one Blue clause per
// vertex with at least one nonflat angle, then adds one or more Red
// clauses per face matching up its equal-length creases, finishing with
// a termination clause over whatever corners a face's shrink loop could
// not pair off. p is never mutated beyond having inferred Flat angles
// recorded into p.AngleConstraint.
func Build(p *Problem) (*Constraints, error) {
	if p.G.Dimension() != 2 {
		return nil, fmt.Errorf("confgraph: dimension %d: %w", p.G.Dimension(), ErrNonplanar)
	}

	if err := propagateVertexConstraints(p); err != nil {
		return nil, err
	}

	cg, err := gmap.NewEmpty(2)
	if err != nil {
		return nil, fmt.Errorf("confgraph: building output graph: %w", err)
	}

	out := &Constraints{
		CG:           cg,
		ClauseSizes:  gmap.NewOrbitMap[int](gmap.Vertex),
		ClauseColors: gmap.NewOrbitMap[Color](gmap.Vertex),
		AngleToCG:    gmap.NewOrbitMap[gmap.Dart](gmap.Angle),
	}

	runVertexPass(p, out)

	exterior := make(map[gmap.Dart]bool)
	for _, d := range p.G.Orbit(p.Exterior, gmap.Face) {
		exterior[d] = true
	}

	for _, seed := range p.G.OneDartPerOrbit(gmap.Face) {
		if err := runFacePass(p, out, seed, exterior[seed]); err != nil {
			return nil, err
		}
	}

	return out, nil
}
