package confgraph

import (
	"fmt"

	"github.com/flatfold/flatfold/circular"
	"github.com/flatfold/flatfold/gmap"
)

// faceCorner is one nonflat corner surviving around a face's boundary,
// together with the effective length of the crease run starting at it:
// its own edge plus every flat edge's length up to (not including) the
// next nonflat corner, since a flat corner just lets the boundary
// continue straight through it.
type faceCorner struct {
	CG  gmap.Dart
	Len int
}

// collectFaceCorners walks the face reached from seed and returns its
// nonflat corners in CCW order with their effective lengths. A face with
// no nonflat corner, or an odd number of them, is rejected with
// ErrBadAngleConstraints.
func collectFaceCorners(p *Problem, out *Constraints, seed gmap.Dart) ([]faceCorner, error) {
	walk := p.G.Cycle(seed, []int{0, 1})

	type rawCorner struct {
		dart gmap.Dart
		idx  int
	}
	var nonflat []rawCorner
	for i, d := range walk {
		if isNonFlat(p, d) {
			nonflat = append(nonflat, rawCorner{dart: d, idx: i})
		}
	}

	if len(nonflat) == 0 {
		return nil, fmt.Errorf("confgraph: face at dart %d: no nonflat corners: %w",
			seed, ErrBadAngleConstraints)
	}
	if len(nonflat)%2 != 0 {
		return nil, fmt.Errorf("confgraph: face at dart %d: %d nonflat corners: %w",
			seed, len(nonflat), ErrBadAngleConstraints)
	}

	n := len(walk)
	corners := make([]faceCorner, len(nonflat))
	for k, rc := range nonflat {
		nextIdx := nonflat[(k+1)%len(nonflat)].idx

		length := 0
		for i := rc.idx; i != nextIdx; i = (i + 1) % n {
			edgeLen, ok := p.Length.Get(walk[i])
			if !ok {
				return nil, fmt.Errorf("confgraph: face at dart %d: edge %d has no length: %w",
					seed, walk[i], ErrBadAngleConstraints)
			}
			length += edgeLen
		}

		cgDart, ok := out.AngleToCG.Get(rc.dart)
		if !ok {
			return nil, fmt.Errorf("confgraph: face at dart %d: corner %d has no variable: %w",
				seed, rc.dart, ErrBadAngleConstraints)
		}

		corners[k] = faceCorner{CG: cgDart, Len: length}
	}

	return corners, nil
}

// checkKawasaki enforces the Kawasaki-Justin necessary condition: the
// alternating signed sum of a face's effective crease lengths, taken in
// boundary order, must vanish.
func checkKawasaki(corners []faceCorner) error {
	sum := 0
	for i, c := range corners {
		if i%2 == 0 {
			sum += c.Len
		} else {
			sum -= c.Len
		}
	}
	if sum != 0 {
		return fmt.Errorf("confgraph: alternating sum %d: %w", sum, ErrKawasakiViolation)
	}

	return nil
}

// loadRing builds a circular list out of corners, in order. Splicing
// each consecutive pair closes the ring without a separate wraparound
// step: by the time the second-to-last pair is spliced, every node's
// stale self-loop pointers have already been overwritten by its
// neighbors' splices.
func loadRing(corners []faceCorner) (*circular.Circular[faceCorner], circular.Node) {
	cl := circular.New[faceCorner]()
	nodes := make([]circular.Node, len(corners))
	for i, c := range corners {
		nodes[i] = cl.AddNode(c)
	}
	for i := 0; i < len(nodes)-1; i++ {
		cl.Splice(nodes[i], nodes[i+1])
	}

	return cl, nodes[0]
}

// findRun scans the live ring (given as the nodes returned by a fresh
// Iter) for a corner whose effective length is strictly shorter than
// both of its immediate neighbors. The run is keyed on that strict
// inequality alone, not on adjacent corners sharing a length: a single
// short corner flanked by two longer ones is already a valid run.
// Returns ok=false if no corner in the ring qualifies (every corner has
// a neighbor at least as short as itself on one side or the other).
func findRun(cl *circular.Circular[faceCorner], ring []circular.Node) (run []circular.Node, before, after circular.Node, v int, ok bool) {
	n := len(ring)
	if n < 3 {
		return nil, 0, 0, 0, false
	}

	for i := 0; i < n; i++ {
		b := ring[(i-1+n)%n]
		a := ring[(i+1)%n]
		length := cl.Data(ring[i]).Len
		if cl.Data(b).Len > length && cl.Data(a).Len > length {
			return []circular.Node{ring[i]}, b, a, length, true
		}
	}

	return nil, 0, 0, 0, false
}

// emitMatchClause adds a clause of the given color pairing up the
// dart-carrying corners in vars, requiring exactly mountains of them to
// be true.
func emitMatchClause(cg *gmap.GMap, out *Constraints, vars []gmap.Dart, mountains int, color Color) error {
	clause := cg.AddCycle(1, 2, len(vars))
	out.ClauseSizes.Insert(cg, clause, mountains)
	out.ClauseColors.Insert(cg, clause, color)

	d := clause
	for _, v := range vars {
		if err := cg.Link(0, d, v); err != nil {
			return fmt.Errorf("confgraph: linking variable %d into clause: %w", v, err)
		}
		d = cg.Al(d, 1, 2)
	}

	return nil
}

// shrinkRun collapses a located run in place: an even-length run folds
// entirely against itself (its matching clause requires exactly half its
// corners to be mountains) and simply vanishes, reconnecting its two
// flanking corners directly. An odd-length run cannot fully pair off: its
// red clause gets one extra slot (size |S|+1) filled by one dart of a
// fresh size-2 Blue auxiliary clause; the auxiliary's other dart carries
// the still-unresolved tail forward as a new corner spliced in where the
// run and the corner that used to follow it both used to be.
func shrinkRun(cl *circular.Circular[faceCorner], cg *gmap.GMap, out *Constraints, run []circular.Node, before, after circular.Node) error {
	vars := make([]gmap.Dart, len(run))
	for i, n := range run {
		vars[i] = cl.Data(n).CG
	}

	if len(run)%2 == 0 {
		if err := emitMatchClause(cg, out, vars, len(run)/2, Red); err != nil {
			return err
		}
		cl.Split(after, before)

		return nil
	}

	redSize := len(run) + 1
	clause := cg.AddCycle(1, 2, redSize)
	out.ClauseSizes.Insert(cg, clause, redSize/2)
	out.ClauseColors.Insert(cg, clause, Red)

	d := clause
	for _, v := range vars {
		if err := cg.Link(0, d, v); err != nil {
			return fmt.Errorf("confgraph: linking variable %d into clause: %w", v, err)
		}
		d = cg.Al(d, 1, 2)
	}
	lastSlot := d

	aux := cg.AddCycle(1, 2, 2)
	out.ClauseSizes.Insert(cg, aux, 1)
	out.ClauseColors.Insert(cg, aux, Blue)
	tail := cg.Al(aux, 1, 2)

	if err := cg.Link(0, lastSlot, aux); err != nil {
		return fmt.Errorf("confgraph: linking auxiliary clause into red clause: %w", err)
	}

	afterNext := cl.Next(after)
	afterData := cl.Data(after)
	cl.Split(afterNext, before)
	merged := cl.AddNode(faceCorner{CG: tail, Len: afterData.Len})
	cl.Splice(before, merged)

	return nil
}

// runFacePass builds every clause contributed by the face reached from
// seed: it shrinks runs (single corners strictly shorter than both
// neighbors, see findRun) until none remain, then closes the face with a single clause over whatever
// corners survive, forcing the total mountain count that flatness
// requires: n/2-1 for an interior face, n/2+1 for the exterior.
func runFacePass(p *Problem, out *Constraints, seed gmap.Dart, exterior bool) error {
	corners, err := collectFaceCorners(p, out, seed)
	if err != nil {
		return err
	}
	if len(corners) == 0 {
		return nil
	}
	if err := checkKawasaki(corners); err != nil {
		return err
	}

	n := len(corners)
	cg := out.CG
	cl, rep := loadRing(corners)

	for {
		ring := cl.Iter(rep)
		run, before, after, _, ok := findRun(cl, ring)
		if !ok {
			break
		}
		rep = before
		if err := shrinkRun(cl, cg, out, run, before, after); err != nil {
			return err
		}
	}

	final := cl.Iter(rep)
	vars := make([]gmap.Dart, len(final))
	for i, node := range final {
		vars[i] = cl.Data(node).CG
	}

	mountains := n/2 - 1
	if exterior {
		mountains = n/2 + 1
	}

	return emitMatchClause(cg, out, vars, mountains, Red)
}
