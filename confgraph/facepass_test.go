package confgraph

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flatfold/flatfold/gmap"
)

// buildFaceRing constructs a single standalone n-gon face (AddPolygon)
// with the given per-edge lengths and per-corner angle states (indexed
// the same way as the face walk Cycle(seed, []int{0,1}) visits them),
// wiring every nonflat corner to a fresh single dart in a side output
// G-map so facepass code under test can Link(0, ...) against it exactly
// as it would against a Blue clause's anchor dart.
func buildFaceRing(t *testing.T, lengths []int, states []AngleState) (*Problem, *Constraints, gmap.Dart) {
	t.Helper()
	require.Equal(t, len(lengths), len(states))

	g, err := gmap.NewEmpty(2)
	require.NoError(t, err)
	cg, err := gmap.NewEmpty(2)
	require.NoError(t, err)

	seed := g.AddPolygon(len(lengths))
	p := newProblem(g)
	out := &Constraints{
		CG:           cg,
		ClauseSizes:  gmap.NewOrbitMap[int](gmap.Vertex),
		ClauseColors: gmap.NewOrbitMap[Color](gmap.Vertex),
		AngleToCG:    gmap.NewOrbitMap[gmap.Dart](gmap.Angle),
	}

	walk := g.Cycle(seed, []int{0, 1})
	require.Len(t, walk, len(lengths))
	for i, d := range walk {
		p.Length.Insert(g, d, lengths[i])
		p.AngleConstraint.Insert(g, d, states[i])
		if states[i] != Flat {
			anchor := cg.AddDart()
			out.AngleToCG.Insert(g, d, anchor)
		}
	}

	return p, out, seed
}

func TestCollectFaceCorners_RejectsEntirelyFlatFace(t *testing.T) {
	p, out, seed := buildFaceRing(t, []int{1, 1, 1}, []AngleState{Flat, Flat, Flat})
	corners, err := collectFaceCorners(p, out, seed)
	require.ErrorIs(t, err, ErrBadAngleConstraints)
	require.Empty(t, corners)
}

func TestCollectFaceCorners_RejectsOddNonflatCount(t *testing.T) {
	p, out, seed := buildFaceRing(t, []int{1, 1, 1}, []AngleState{Mountain, Flat, Flat})
	_, err := collectFaceCorners(p, out, seed)
	require.ErrorIs(t, err, ErrBadAngleConstraints)
}

func TestCollectFaceCorners_KiteLengths(t *testing.T) {
	// Four nonflat corners, each corner's effective length equal to its
	// own edge (no corner is flat, so no edge is absorbed into a
	// neighbor's run), in the classic [1, 1, 2, 2] kite pattern.
	lengths := []int{1, 1, 2, 2}
	states := []AngleState{Mountain, Valley, Mountain, Valley}
	p, out, seed := buildFaceRing(t, lengths, states)

	corners, err := collectFaceCorners(p, out, seed)
	require.NoError(t, err)
	require.Len(t, corners, 4)
	for i, c := range corners {
		require.Equal(t, lengths[i], c.Len)
	}
	require.NoError(t, checkKawasaki(corners))
}

func TestCollectFaceCorners_MergesFlatRunsIntoEffectiveLength(t *testing.T) {
	// edges: 1(M) 1(flat) 1(flat) 2(V) -> corner 0 has effective length
	// 1+1+1=3 (it absorbs the two flat edges that follow it up to the
	// next nonflat corner), corner 1 has effective length 2.
	lengths := []int{1, 1, 1, 2}
	states := []AngleState{Mountain, Flat, Flat, Valley}
	p, out, seed := buildFaceRing(t, lengths, states)

	corners, err := collectFaceCorners(p, out, seed)
	require.NoError(t, err)
	require.Len(t, corners, 2)
	require.Equal(t, 3, corners[0].Len)
	require.Equal(t, 2, corners[1].Len)
}

func TestCheckKawasaki_RejectsNonzeroAlternatingSum(t *testing.T) {
	corners := []faceCorner{{Len: 1}, {Len: 2}, {Len: 1}, {Len: 1}}
	err := checkKawasaki(corners)
	require.ErrorIs(t, err, ErrKawasakiViolation)
}

func TestFindRun_FindsSingleCornerShorterThanBothNeighbors(t *testing.T) {
	// Trapezoid lengths: the length-1 corner at index 0 sits strictly
	// between two length-2 neighbors (index 3 and index 1), so it is a
	// valid run by itself even though no two adjacent corners share a
	// length.
	corners := []faceCorner{{Len: 1}, {Len: 2}, {Len: 3}, {Len: 2}}
	cl, start := loadRing(corners)
	ring := cl.Iter(start)

	run, before, after, v, ok := findRun(cl, ring)
	require.True(t, ok)
	require.Equal(t, 1, v)
	require.Len(t, run, 1)
	require.Equal(t, 2, cl.Data(before).Len)
	require.Equal(t, 2, cl.Data(after).Len)
}

func TestFindRun_NoneForKiteEqualPairs(t *testing.T) {
	// Every corner in the kite pattern [1,1,2,2] has an equal-length
	// neighbor on one side, so none is strictly shorter than both
	// neighbors: no run exists, and the face resolves with a single
	// terminal clause instead of a shrink.
	corners := []faceCorner{{Len: 1}, {Len: 1}, {Len: 2}, {Len: 2}}
	cl, start := loadRing(corners)
	ring := cl.Iter(start)

	_, _, _, _, ok := findRun(cl, ring)
	require.False(t, ok)
}

// clauseReprs filters OneDartPerOrbit(Vertex) down to the rings that are
// actual clauses, excluding the trivial singleton orbits formed by the
// test's pre-created variable anchor darts.
func clauseReprs(cg *gmap.GMap) []gmap.Dart {
	var out []gmap.Dart
	for _, d := range cg.OneDartPerOrbit(gmap.Vertex) {
		if len(cg.Orbit(d, gmap.Vertex)) > 1 {
			out = append(out, d)
		}
	}

	return out
}

func TestRunFacePass_KiteEmitsSingleTerminationClause(t *testing.T) {
	// Kite lengths [1,1,2,2]: no corner is strictly shorter than both its
	// neighbors (findRun finds nothing, see TestFindRun_NoneForKiteEqualPairs),
	// so the interior resolves directly to one red terminal clause of
	// size 4 with mountain-count 4/2-1=1.
	lengths := []int{1, 1, 2, 2}
	states := []AngleState{Mountain, Valley, Mountain, Valley}
	p, out, seed := buildFaceRing(t, lengths, states)

	require.NoError(t, runFacePass(p, out, seed, false))

	clauses := clauseReprs(out.CG)
	require.Len(t, clauses, 1)

	size, ok := out.ClauseSizes.Get(clauses[0])
	require.True(t, ok)
	require.Equal(t, 1, size)

	color, ok := out.ClauseColors.Get(clauses[0])
	require.True(t, ok)
	require.Equal(t, Red, color)

	require.Len(t, out.CG.Orbit(clauses[0], gmap.Vertex), 2*4)
}

func TestRunFacePass_TrapezoidEmitsShrinkAndAuxBlueClause(t *testing.T) {
	// Trapezoid lengths [1,2,3,2]: the length-1 corner fires a shrink,
	// producing a size-2 red clause (mountains=1) plus a size-2 Blue
	// auxiliary clause (mountains=1), then a termination clause over
	// whatever survives.
	lengths := []int{1, 2, 3, 2}
	states := []AngleState{Mountain, Valley, Mountain, Valley}
	p, out, seed := buildFaceRing(t, lengths, states)

	require.NoError(t, runFacePass(p, out, seed, false))

	clauses := clauseReprs(out.CG)
	require.Len(t, clauses, 3)

	var reds, blues int
	var redSizes, blueSizes []int
	for _, c := range clauses {
		size, ok := out.ClauseSizes.Get(c)
		require.True(t, ok)
		color, ok := out.ClauseColors.Get(c)
		require.True(t, ok)
		if color == Red {
			reds++
			redSizes = append(redSizes, size)
		} else {
			blues++
			blueSizes = append(blueSizes, size)
		}
	}
	require.Equal(t, 2, reds)   // the shrink's red clause + the termination clause
	require.Equal(t, 1, blues)  // the shrink's auxiliary Blue clause
	require.ElementsMatch(t, []int{1}, blueSizes)
	require.Contains(t, redSizes, 1) // shrink red clause: mountains=(1+1)/2=1
}

func TestRunFacePass_ExteriorUsesHigherMountainCount(t *testing.T) {
	lengths := []int{1, 1, 2, 2}
	states := []AngleState{Mountain, Valley, Mountain, Valley}
	p, out, seed := buildFaceRing(t, lengths, states)

	require.NoError(t, runFacePass(p, out, seed, true))

	clauses := clauseReprs(out.CG)
	require.Len(t, clauses, 1)

	size, ok := out.ClauseSizes.Get(clauses[0])
	require.True(t, ok)
	require.Equal(t, 3, size) // exterior termination clause n/2+1=3
}

func TestRunFacePass_RejectsKawasakiViolation(t *testing.T) {
	p, out, seed := buildFaceRing(t, []int{1, 2, 1, 1}, []AngleState{Mountain, Valley, Mountain, Valley})
	err := runFacePass(p, out, seed, false)
	require.ErrorIs(t, err, ErrKawasakiViolation)
}

// findRun never locates a run longer than one corner (it is keyed purely
// on "shorter than both neighbors"), so the even branch of shrinkRun is
// exercised directly here rather than through runFacePass.
func TestShrinkRun_EvenRunEmitsSingleMatchClause(t *testing.T) {
	cg, err := gmap.NewEmpty(2)
	require.NoError(t, err)
	out := &Constraints{
		CG:           cg,
		ClauseSizes:  gmap.NewOrbitMap[int](gmap.Vertex),
		ClauseColors: gmap.NewOrbitMap[Color](gmap.Vertex),
		AngleToCG:    gmap.NewOrbitMap[gmap.Dart](gmap.Angle),
	}

	corners := []faceCorner{
		{CG: cg.AddDart(), Len: 5},
		{CG: cg.AddDart(), Len: 1},
		{CG: cg.AddDart(), Len: 1},
		{CG: cg.AddDart(), Len: 5},
	}
	cl, start := loadRing(corners)
	ring := cl.Iter(start)

	require.NoError(t, shrinkRun(cl, cg, out, ring[1:3], ring[0], ring[3]))

	clauses := clauseReprs(cg)
	require.Len(t, clauses, 1)

	size, ok := out.ClauseSizes.Get(clauses[0])
	require.True(t, ok)
	require.Equal(t, 1, size) // len(run)/2 = 2/2 = 1

	color, ok := out.ClauseColors.Get(clauses[0])
	require.True(t, ok)
	require.Equal(t, Red, color)
}
