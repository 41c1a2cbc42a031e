package gmap

import "math/bits"

// Alphas is a bitset over involution indices {0, ..., 31}, selecting a
// subset of a GMap's alpha_0 .. alpha_n involutions. Bit i set means
// alpha_i participates in the orbit/operation the Alphas value describes.
//
// maxDimension is the hard cap on a GMap's dimension: Alphas has room for
// indices 0..31, so dimension must stay within [0, maxDimension].
const maxDimension = 31

type Alphas uint32

// NewAlphas returns the bitset containing exactly the given indices.
// Complexity: O(len(indices)).
func NewAlphas(indices ...int) Alphas {
	var a Alphas
	for _, i := range indices {
		a |= 1 << uint(i)
	}

	return a
}

// Has reports whether index i is a member of a.
func (a Alphas) Has(i int) bool {
	return a&(1<<uint(i)) != 0
}

// With returns a copy of a with index i added.
func (a Alphas) With(i int) Alphas {
	return a | (1 << uint(i))
}

// Without returns a copy of a with index i removed.
func (a Alphas) Without(i int) Alphas {
	return a &^ (1 << uint(i))
}

// Indices returns the sorted indices of a that lie within [0, dim],
// i.e. the indices that are meaningful for a GMap of dimension dim.
// Complexity: O(dim).
func (a Alphas) Indices(dim int) []int {
	out := make([]int, 0, bits.OnesCount32(uint32(a)))
	for i := 0; i <= dim; i++ {
		if a.Has(i) {
			out = append(out, i)
		}
	}

	return out
}

// AllBut returns the full mask over [0, dim] with the given indices
// removed. This is how every named cell mask below is derived: e.g.
// VERTEX = AllBut(dim, 0) excludes only alpha_0.
func AllBut(dim int, excluded ...int) Alphas {
	var a Alphas
	for i := 0; i <= dim; i++ {
		a = a.With(i)
	}
	for _, i := range excluded {
		a = a.Without(i)
	}

	return a
}

// Named cell masks for 2-D G-maps (dimension 2), per spec: orbiting under
// one of these masks from a dart yields the indicated cell.
var (
	// Vertex is the VERTEX mask: all involutions but alpha_0.
	Vertex = AllBut(2, 0)
	// Edge is the EDGE mask: all involutions but alpha_1.
	Edge = AllBut(2, 1)
	// HalfEdge is the HALF_EDGE mask: all but alpha_0, alpha_1.
	HalfEdge = AllBut(2, 0, 1)
	// Face is the FACE mask: all involutions but alpha_2.
	Face = AllBut(2, 2)
	// Angle is the ANGLE mask: all but alpha_0, alpha_2.
	Angle = AllBut(2, 0, 2)
	// Side is the SIDE mask: all but alpha_1, alpha_2.
	Side = AllBut(2, 1, 2)
	// DartOnly is the empty mask: the orbit of a dart under DartOnly is
	// the dart itself.
	DartOnly = Alphas(0)
	// All is every involution of a 2-D G-map.
	All = AllBut(2)
)
