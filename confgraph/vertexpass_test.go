package confgraph

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flatfold/flatfold/gmap"
)

func newOutput(t *testing.T) *Constraints {
	t.Helper()
	cg, err := gmap.NewEmpty(2)
	require.NoError(t, err)

	return &Constraints{
		CG:           cg,
		ClauseSizes:  gmap.NewOrbitMap[int](gmap.Vertex),
		ClauseColors: gmap.NewOrbitMap[Color](gmap.Vertex),
		AngleToCG:    gmap.NewOrbitMap[gmap.Dart](gmap.Angle),
	}
}

func TestVertexNonFlatAngles_SkipsFlats(t *testing.T) {
	g, angles := buildVertexRing(t, 4)
	p := newProblem(g)
	p.AngleConstraint.Insert(g, angles[1], Flat)

	nonflat := vertexNonFlatAngles(p, angles[0])
	require.Len(t, nonflat, 3)
	require.NotContains(t, nonflat, angles[1])
	require.ElementsMatch(t, nonflat, []gmap.Dart{angles[0], angles[2], angles[3]})
}

func TestRunVertexPass_SkipsAllFlatVertex(t *testing.T) {
	g, angles := buildVertexRing(t, 4)
	p := newProblem(g)
	for _, a := range angles {
		p.AngleConstraint.Insert(g, a, Flat)
	}
	out := newOutput(t)

	runVertexPass(p, out)

	require.Empty(t, out.CG.LiveDarts())
}

func TestRunVertexPass_EmitsOneClausePerNonflatVertex(t *testing.T) {
	g, angles := buildVertexRing(t, 4)
	p := newProblem(g)
	p.AngleConstraint.Insert(g, angles[0], Flat)
	out := newOutput(t)

	runVertexPass(p, out)

	clauseDarts := out.CG.OneDartPerOrbit(gmap.Vertex)
	require.Len(t, clauseDarts, 1)

	size, ok := out.ClauseSizes.Get(clauseDarts[0])
	require.True(t, ok)
	require.Equal(t, 1, size)

	color, ok := out.ClauseColors.Get(clauseDarts[0])
	require.True(t, ok)
	require.Equal(t, Blue, color)

	require.Len(t, out.CG.Orbit(clauseDarts[0], gmap.Vertex), 2*3)

	for i, a := range angles {
		if i == 0 {
			continue
		}
		cgDart, ok := out.AngleToCG.Get(a)
		require.True(t, ok)
		require.Contains(t, out.CG.Orbit(clauseDarts[0], gmap.Vertex), cgDart)
	}
}
