package confgraph

import "github.com/flatfold/flatfold/gmap"

// isNonFlat reports whether the angle at dart a is still a free variable
// after preprocessing: anything other than an explicit Flat, including an
// unconstrained corner (the builder's whole purpose is to pin those down).
func isNonFlat(p *Problem, a gmap.Dart) bool {
	state, ok := p.AngleConstraint.Get(a)

	return !ok || state != Flat
}

// vertexNonFlatAngles returns the nonflat ANGLE-orbit representatives
// around the vertex reached from seed, in counter-clockwise order: one
// representative per angle, stepping alpha_2∘alpha_1 (Al(d, 1, 2)) to
// advance from one corner to the next around the vertex.
func vertexNonFlatAngles(p *Problem, seed gmap.Dart) []gmap.Dart {
	var out []gmap.Dart
	for _, d := range p.G.Cycle(seed, []int{1, 2}) {
		if isNonFlat(p, d) {
			out = append(out, d)
		}
	}

	return out
}

// runVertexPass adds one Blue clause per vertex that has at least one
// nonflat incident angle: a k-sided ring (AddCycle(1, 2, k)) requiring
// exactly one true (mountain) variable among its k angles, per Maekawa's
// theorem restricted to the nonflat creases at that vertex.
func runVertexPass(p *Problem, out *Constraints) {
	cg := out.CG

	for _, seed := range p.G.OneDartPerOrbit(gmap.Vertex) {
		nonflat := vertexNonFlatAngles(p, seed)
		if len(nonflat) == 0 {
			continue
		}

		clause := cg.AddCycle(1, 2, len(nonflat))
		out.ClauseSizes.Insert(cg, clause, 1)
		out.ClauseColors.Insert(cg, clause, Blue)

		cgDart := clause
		for _, a := range nonflat {
			out.AngleToCG.Insert(p.G, a, cgDart)
			cgDart = cg.Al(cgDart, 1, 2)
		}
	}
}
