package confgraph

import (
	"fmt"

	"github.com/flatfold/flatfold/gmap"
)

// propagateVertexConstraints enforces, for every vertex of p.G, that its
// incident ANGLE-orbit representatives carry a consistent mountain/flat
// count, then forces every other (still-unconstrained) angle at that
// vertex to Flat whenever exactly two flats or one mountain already pin
// the vertex down. This is the single-vertex flat-foldability necessary
// condition: a corner with two flat creases or a lone mountain cannot
// admit a second nonflat direction without contradicting Maekawa's
// theorem locally.
func propagateVertexConstraints(p *Problem) error {
	if p.G.Dimension() != 2 {
		return fmt.Errorf("confgraph: dimension %d: %w", p.G.Dimension(), ErrNonplanar)
	}

	for _, seed := range p.G.OneDartPerOrbit(gmap.Vertex) {
		angles := p.G.OneDartPerIncidentOrbit(seed, gmap.Angle, gmap.Vertex)

		flats, mountains := 0, 0
		for _, a := range angles {
			switch state, ok := p.AngleConstraint.Get(a); {
			case !ok:
			case state == Flat:
				flats++
			case state == Mountain:
				mountains++
			}
		}

		if (flats != 0 && flats != 2) || mountains > 1 || (flats == 2 && mountains == 1) {
			return fmt.Errorf("confgraph: vertex at dart %d: flats=%d mountains=%d: %w",
				seed, flats, mountains, ErrBadAngleConstraints)
		}

		if flats == 2 || mountains == 1 {
			for _, a := range angles {
				state, ok := p.AngleConstraint.Get(a)
				if ok && (state == Flat || state == Mountain) {
					continue // one of the two flats (or an already-forced one), or the lone mountain
				}
				if ok && state == Valley {
					return fmt.Errorf("confgraph: vertex at dart %d: angle %d fixed to valley but vertex forces flat: %w",
						seed, a, ErrBadAngleConstraints)
				}
				p.AngleConstraint.Insert(p.G, a, Flat)
			}
		}
	}

	return nil
}
