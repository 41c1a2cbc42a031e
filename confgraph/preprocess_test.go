package confgraph

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flatfold/flatfold/gmap"
)

// buildVertexRing constructs a single synthetic vertex with n angles: a
// ring built the same way a Blue clause is (AddCycle(1, 2, n)), which is
// exactly a VERTEX orbit under {alpha_1, alpha_2} with n ANGLE-orbit
// pairs hanging off it. It returns the angle representatives in CCW
// order (stepping alpha_1 then alpha_2, Al(d, 1, 2), as
// vertexNonFlatAngles does).
func buildVertexRing(t *testing.T, n int) (*gmap.GMap, []gmap.Dart) {
	t.Helper()
	g, err := gmap.NewEmpty(2)
	require.NoError(t, err)

	start := g.AddCycle(1, 2, n)
	angles := make([]gmap.Dart, n)
	d := start
	for i := 0; i < n; i++ {
		angles[i] = d
		d = g.Al(d, 1, 2)
	}

	return g, angles
}

func newProblem(g *gmap.GMap) *Problem {
	return &Problem{
		G:               g,
		Length:          gmap.NewOrbitMap[int](gmap.Edge),
		AngleConstraint: gmap.NewOrbitMap[AngleState](gmap.Angle),
	}
}

func TestPropagateVertexConstraints_TwoFlatsForceRestFlat(t *testing.T) {
	g, angles := buildVertexRing(t, 4)
	p := newProblem(g)
	p.AngleConstraint.Insert(g, angles[0], Flat)
	p.AngleConstraint.Insert(g, angles[2], Flat)

	require.NoError(t, propagateVertexConstraints(p))

	for _, a := range angles {
		state, ok := p.AngleConstraint.Get(a)
		require.True(t, ok)
		require.Equal(t, Flat, state)
	}
}

func TestPropagateVertexConstraints_LoneMountainForcesRestFlat(t *testing.T) {
	g, angles := buildVertexRing(t, 3)
	p := newProblem(g)
	p.AngleConstraint.Insert(g, angles[1], Mountain)

	require.NoError(t, propagateVertexConstraints(p))

	for i, a := range angles {
		state, ok := p.AngleConstraint.Get(a)
		require.True(t, ok)
		if i == 1 {
			require.Equal(t, Mountain, state)
		} else {
			require.Equal(t, Flat, state)
		}
	}
}

func TestPropagateVertexConstraints_RejectsTwoMountains(t *testing.T) {
	g, angles := buildVertexRing(t, 4)
	p := newProblem(g)
	p.AngleConstraint.Insert(g, angles[0], Mountain)
	p.AngleConstraint.Insert(g, angles[2], Mountain)

	err := propagateVertexConstraints(p)
	require.ErrorIs(t, err, ErrBadAngleConstraints)
}

func TestPropagateVertexConstraints_RejectsFlatVsValleyContradiction(t *testing.T) {
	g, angles := buildVertexRing(t, 4)
	p := newProblem(g)
	p.AngleConstraint.Insert(g, angles[0], Flat)
	p.AngleConstraint.Insert(g, angles[1], Flat)
	p.AngleConstraint.Insert(g, angles[2], Valley)

	err := propagateVertexConstraints(p)
	require.ErrorIs(t, err, ErrBadAngleConstraints)
}

func TestPropagateVertexConstraints_LeavesUnconstrainedVertexAlone(t *testing.T) {
	g, angles := buildVertexRing(t, 5)
	p := newProblem(g)

	require.NoError(t, propagateVertexConstraints(p))

	for _, a := range angles {
		_, ok := p.AngleConstraint.Get(a)
		require.False(t, ok)
	}
}

func TestPropagateVertexConstraints_RejectsNonPlanarInput(t *testing.T) {
	g, err := gmap.NewEmpty(3)
	require.NoError(t, err)
	p := newProblem(g)

	err = propagateVertexConstraints(p)
	require.ErrorIs(t, err, ErrNonplanar)
}
