// Package gmap — mutate.go: dart allocation, linking, sewing, deletion.
package gmap

import "fmt"

func (g *GMap) checkIndex(i int) error {
	if i < 0 || i > g.dimension {
		return fmt.Errorf("gmap: involution index %d out of range [0,%d]: %w", i, g.dimension, ErrInvalidAlpha)
	}

	return nil
}

// AddDart allocates a new dart, free in every involution (alpha_i(d) == d
// for all i). Complexity: O(dimension).
func (g *GMap) AddDart() Dart {
	d := Dart(g.numRows())
	for i := 0; i <= g.dimension; i++ {
		g.alpha = append(g.alpha, d)
	}
	g.deleted = append(g.deleted, false)

	return d
}

// addPairLinked allocates two darts and links them along involution i.
// It is the generalization of add_edge() (i == 0) used by AddCycle.
func (g *GMap) addPairLinked(i int) Dart {
	d0 := g.AddDart()
	d1 := g.AddDart()
	if err := g.Link(i, d0, d1); err != nil {
		panic(fmt.Sprintf("gmap: impossible Link failure on fresh darts: %v", err))
	}

	return d0
}

// AddEdge creates two darts linked along alpha_0 and returns the first.
func (g *GMap) AddEdge() Dart {
	return g.addPairLinked(0)
}

// AddCycle creates a cycle of 2n darts alternately linked along
// involutions i and j: a generalization of AddPolygon that lets callers
// choose which pair of involutions forms the alternating ring (the
// constraint-graph builder uses AddCycle(1, 2, n) to build clause faces).
// The returned dart is the first allocated, hence the lowest-numbered
// dart in the cycle.
// Complexity: O(n * dimension).
func (g *GMap) AddCycle(i, j, n int) Dart {
	if n < 1 {
		panic("gmap: AddCycle requires n >= 1")
	}
	start := g.addPairLinked(i)
	prev := g.Al(start, i)
	for k := 1; k < n; k++ {
		c := g.addPairLinked(i)
		if err := g.Link(j, prev, c); err != nil {
			panic(fmt.Sprintf("gmap: impossible Link failure building cycle: %v", err))
		}
		prev = g.Al(c, i)
	}
	if err := g.Link(j, start, prev); err != nil {
		panic(fmt.Sprintf("gmap: impossible Link failure closing cycle: %v", err))
	}

	return start
}

// AddPolygon creates an n-gon face: a 2n-dart cycle alternately linked
// along alpha_1 and alpha_0. Equivalent to AddCycle(0, 1, n).
func (g *GMap) AddPolygon(n int) Dart {
	return g.AddCycle(0, 1, n)
}

// Link sets alpha_i(d0) = d1 and alpha_i(d1) = d0. Both darts must be
// live and i-free (alpha_i(d) == d); otherwise Link returns ErrDeleted or
// ErrNotFree without mutating either dart.
func (g *GMap) Link(i int, d0, d1 Dart) error {
	if err := g.checkIndex(i); err != nil {
		return err
	}
	if g.IsDeleted(d0) || g.IsDeleted(d1) {
		return fmt.Errorf("gmap.Link(%d, %d, %d): %w", i, d0, d1, ErrDeleted)
	}
	if g.alpha[g.idx(d0, i)] != d0 {
		return fmt.Errorf("gmap.Link(%d, %d, %d): dart %d: %w", i, d0, d1, d0, ErrNotFree)
	}
	if g.alpha[g.idx(d1, i)] != d1 {
		return fmt.Errorf("gmap.Link(%d, %d, %d): dart %d: %w", i, d0, d1, d1, ErrNotFree)
	}
	g.alpha[g.idx(d0, i)] = d1
	g.alpha[g.idx(d1, i)] = d0

	return nil
}

// Unlink frees d along involution i, returning its former partner.
// d must be live and i-linked (alpha_i(d) != d); otherwise Unlink
// returns ErrDeleted or ErrAlreadyFree.
func (g *GMap) Unlink(i int, d Dart) (Dart, error) {
	if err := g.checkIndex(i); err != nil {
		return 0, err
	}
	if g.IsDeleted(d) {
		return 0, fmt.Errorf("gmap.Unlink(%d, %d): %w", i, d, ErrDeleted)
	}
	partner := g.alpha[g.idx(d, i)]
	if partner == d {
		return 0, fmt.Errorf("gmap.Unlink(%d, %d): %w", i, d, ErrAlreadyFree)
	}
	g.alpha[g.idx(d, i)] = d
	g.alpha[g.idx(partner, i)] = partner

	return partner, nil
}

// sewMask returns the involutions that must walk in lockstep during
// Sew/Unsew along i: every index except i-1, i, i+1 (clamped naturally
// since indices outside [0, dim] don't exist).
func sewMask(dim, i int) Alphas {
	var a Alphas
	for x := 0; x <= dim; x++ {
		delta := x - i
		if delta < 0 {
			delta = -delta
		}
		if delta > 1 {
			a = a.With(x)
		}
	}

	return a
}

// pathKey turns a path of involution indices into a comparable map key.
func pathKey(path []int) string {
	buf := make([]byte, 0, len(path)*2)
	for _, i := range path {
		buf = append(buf, byte('a'+i), ',')
	}

	return string(buf)
}

// Sew simultaneously links every dart pair discovered by walking the
// (all-but-{i-1,i,i+1})-orbits of d0 and d1 in lockstep: darts are paired
// by the identical path of involution indices taken from each seed.
// Mismatched path structure, revisits, or any dart that isn't i-free
// makes the whole operation fail with ErrUnsewable and mutates nothing.
// Returns the pairs that were linked, (d0's dart, d1's dart) per pair.
// Complexity: O(|orbit| * dimension).
func (g *GMap) Sew(i int, d0, d1 Dart) ([][2]Dart, error) {
	if err := g.checkIndex(i); err != nil {
		return nil, err
	}
	mask := sewMask(g.dimension, i)
	p0 := g.OrbitPaths(d0, mask)
	p1 := g.OrbitPaths(d1, mask)
	if len(p0) != len(p1) {
		return nil, fmt.Errorf("gmap.Sew(%d, %d, %d): mismatched orbit sizes %d != %d: %w",
			i, d0, d1, len(p0), len(p1), ErrUnsewable)
	}

	byPath := make(map[string]Dart, len(p1))
	for _, s := range p1 {
		byPath[pathKey(s.Path)] = s.Dart
	}

	pairs := make([][2]Dart, 0, len(p0))
	for _, s := range p0 {
		partner, ok := byPath[pathKey(s.Path)]
		if !ok {
			return nil, fmt.Errorf("gmap.Sew(%d, %d, %d): %w", i, d0, d1, ErrUnsewable)
		}
		pairs = append(pairs, [2]Dart{s.Dart, partner})
	}

	// Validate every pairing before mutating anything, so a structural
	// mismatch never leaves the GMap partially sewn.
	for _, pr := range pairs {
		if g.IsDeleted(pr[0]) || g.IsDeleted(pr[1]) {
			return nil, fmt.Errorf("gmap.Sew(%d, %d, %d): %w", i, d0, d1, ErrDeleted)
		}
		if g.alpha[g.idx(pr[0], i)] != pr[0] || g.alpha[g.idx(pr[1], i)] != pr[1] {
			return nil, fmt.Errorf("gmap.Sew(%d, %d, %d): %w", i, d0, d1, ErrUnsewable)
		}
	}
	for _, pr := range pairs {
		if err := g.Link(i, pr[0], pr[1]); err != nil {
			return nil, fmt.Errorf("gmap.Sew(%d, %d, %d): %w", i, d0, d1, err)
		}
	}

	return pairs, nil
}

// Unsew is the inverse of Sew: it walks the (all-but-{i-1,i,i+1})-orbit
// of d and unlinks every dart along i. The orbit must be disjoint from
// its own alpha_i-image (no dart in the orbit may be the alpha_i-partner
// of another dart in the same orbit); otherwise the second Unlink of an
// already-freed dart fails and Unsew returns ErrUnunsewable.
// Complexity: O(|orbit| * dimension).
func (g *GMap) Unsew(i int, d Dart) ([][2]Dart, error) {
	if err := g.checkIndex(i); err != nil {
		return nil, err
	}
	mask := sewMask(g.dimension, i)
	orbit := g.Orbit(d, mask)
	pairs := make([][2]Dart, 0, len(orbit))
	for _, x := range orbit {
		partner, err := g.Unlink(i, x)
		if err != nil {
			return nil, fmt.Errorf("gmap.Unsew(%d, %d): %w", i, d, ErrUnunsewable)
		}
		pairs = append(pairs, [2]Dart{x, partner})
	}

	return pairs, nil
}

// Delete tombstones d's entire all-involutions orbit (its connected
// component): since that orbit is, by definition, closed under every
// involution, no live dart outside it can reference a dart inside it, so
// deleting it cannot strand a dangling reference.
// Complexity: O(|component| * dimension).
func (g *GMap) Delete(d Dart) error {
	if g.IsDeleted(d) {
		return fmt.Errorf("gmap.Delete(%d): %w", d, ErrDeleted)
	}
	for _, x := range g.Orbit(d, AllBut(g.dimension)) {
		g.deleted[x] = true
	}

	return nil
}
