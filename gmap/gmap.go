// Package gmap — gmap.go: storage, construction, and validation.
//
// A GMap stores its alpha table as one flat []Dart of length
// N*(dimension+1), indexed alpha[d*(dimension+1)+i]. This mirrors
// lvlath/core's preference for flat, directly-indexed storage over a
// pointer graph (see core/types.go's adjacencyList), and avoids the
// ownership/borrowing puzzle a graph-of-pointers would pose: alpha
// application is a single array read, O(1), with no allocation.
package gmap

import "fmt"

// GMap is a dart-based combinatorial map of the given dimension.
//
// Invariants (checked by FromAlpha, maintained by every mutator):
//   - alpha_i(alpha_i(d)) == d for every dart d and every i in [0, dimension].
//   - alpha_i(alpha_j(alpha_i(alpha_j(d)))) == d whenever |i-j| >= 2.
//   - no live dart's alpha table references a deleted dart.
type GMap struct {
	dimension int
	alpha     []Dart
	deleted   []bool
}

// NewEmpty returns a GMap of the given dimension with zero darts.
// Complexity: O(1).
func NewEmpty(dimension int) (*GMap, error) {
	if dimension < 0 || dimension > maxDimension {
		return nil, fmt.Errorf("gmap.NewEmpty(%d): %w", dimension, ErrDimensionTooLarge)
	}

	return &GMap{dimension: dimension}, nil
}

// FromAlpha builds a GMap from a raw, fully-specified alpha table (one
// []Dart of length dimension+1 per dart) and validates it against the
// involution and commutation invariants. Every dart of the raw table
// starts live; FromAlpha cannot mark darts deleted (Delete can tombstone
// a whole component afterwards).
// Complexity: O(N * dimension^2) for the commutation check.
func FromAlpha(dimension int, alpha [][]Dart) (*GMap, error) {
	if dimension < 0 || dimension > maxDimension {
		return nil, fmt.Errorf("gmap.FromAlpha(dim=%d): %w", dimension, ErrDimensionTooLarge)
	}

	g := &GMap{
		dimension: dimension,
		alpha:     make([]Dart, 0, len(alpha)*(dimension+1)),
		deleted:   make([]bool, len(alpha)),
	}
	for d, row := range alpha {
		if len(row) != dimension+1 {
			return nil, fmt.Errorf("gmap.FromAlpha: dart %d has %d entries, expected %d: %w",
				d, len(row), dimension+1, ErrInvalidAlpha)
		}
		g.alpha = append(g.alpha, row...)
	}

	if err := g.checkValid(); err != nil {
		return nil, err
	}

	return g, nil
}

// checkValid verifies every invariant in the GMap doc comment.
func (g *GMap) checkValid() error {
	n := g.numRows()
	// Bounds check: every alpha entry must reference a dart in range.
	for d := 0; d < n; d++ {
		for i := 0; i <= g.dimension; i++ {
			x := g.alpha[g.idx(Dart(d), i)]
			if int(x) < 0 || int(x) >= n {
				return fmt.Errorf("gmap: dart %d alpha_%d = %d out of range: %w", d, i, x, ErrInvalidAlpha)
			}
		}
	}
	// Involution: alpha_i(alpha_i(d)) == d.
	for i := 0; i <= g.dimension; i++ {
		for d := 0; d < n; d++ {
			x := g.alpha[g.idx(Dart(d), i)]
			if g.alpha[g.idx(x, i)] != Dart(d) {
				return fmt.Errorf("gmap: alpha_%d is not an involution at dart %d: %w", i, d, ErrInvalidAlpha)
			}
		}
	}
	// Commutation: alpha_i . alpha_j is an involution whenever |i-j| >= 2.
	for i := 0; i <= g.dimension; i++ {
		for j := i + 2; j <= g.dimension; j++ {
			for d := 0; d < n; d++ {
				lhs := g.alpha[g.idx(g.alpha[g.idx(Dart(d), i)], j)]
				rhs := g.alpha[g.idx(g.alpha[g.idx(Dart(d), j)], i)]
				if lhs != rhs {
					return fmt.Errorf("gmap: alpha_%d alpha_%d do not commute at dart %d: %w", i, j, d, ErrInvalidAlpha)
				}
			}
		}
	}

	return nil
}

// Dimension returns the GMap's dimension n (it has n+1 involutions).
func (g *GMap) Dimension() int {
	return g.dimension
}

// NumDarts returns the number of dart slots, including tombstoned darts.
// Use LiveDarts to iterate only live darts.
func (g *GMap) NumDarts() int {
	return g.numRows()
}

func (g *GMap) numRows() int {
	if g.dimension < 0 {
		return 0
	}

	return len(g.alpha) / (g.dimension + 1)
}

// IsDeleted reports whether d has been tombstoned.
func (g *GMap) IsDeleted(d Dart) bool {
	return int(d) < len(g.deleted) && g.deleted[d]
}

func (g *GMap) idx(d Dart, i int) int {
	return int(d)*(g.dimension+1) + i
}

// Al applies the involutions named in indices to d in order, returning
// the resulting dart: Al(d, 1, 0) == alpha_0(alpha_1(d)).
// Complexity: O(len(indices)).
func (g *GMap) Al(d Dart, indices ...int) Dart {
	for _, i := range indices {
		d = g.alpha[g.idx(d, i)]
	}

	return d
}

// LiveDarts returns every non-deleted dart in ascending order.
// Complexity: O(N).
func (g *GMap) LiveDarts() []Dart {
	out := make([]Dart, 0, g.numRows())
	for d := 0; d < g.numRows(); d++ {
		if !g.IsDeleted(Dart(d)) {
			out = append(out, Dart(d))
		}
	}

	return out
}

// IncreaseDimension grows the GMap to the given dimension, extending
// every dart's alpha table with identity entries (alpha_i(d) == d) for
// the new indices. Dimension can only grow.
// Complexity: O(N * (dim - dimension)).
func (g *GMap) IncreaseDimension(dim int) error {
	if dim < g.dimension {
		return fmt.Errorf("gmap.IncreaseDimension(%d < %d): %w", dim, g.dimension, ErrCannotDecreaseDimension)
	}
	if dim > maxDimension {
		return fmt.Errorf("gmap.IncreaseDimension(%d): %w", dim, ErrDimensionTooLarge)
	}
	if dim == g.dimension {
		return nil
	}

	n := g.numRows()
	newAlpha := make([]Dart, n*(dim+1))
	for d := 0; d < n; d++ {
		for i := 0; i <= g.dimension; i++ {
			newAlpha[d*(dim+1)+i] = g.alpha[g.idx(Dart(d), i)]
		}
		for i := g.dimension + 1; i <= dim; i++ {
			newAlpha[d*(dim+1)+i] = Dart(d)
		}
	}
	g.alpha = newAlpha
	g.dimension = dim

	return nil
}
