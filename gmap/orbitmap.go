package gmap

// OrbitMap is a dart-keyed attribute table that is semantically keyed by
// A-orbit: Insert writes the same value to every dart in an orbit, so a
// well-behaved OrbitMap never disagrees with itself within one orbit as
// long as all writes go through Insert/Remove rather than the underlying
// map directly.
//
// OrbitMap is a generic type (Go 1.23 type parameters), parameterized by
// the attribute's value type V — e.g. OrbitMap[float64] for fold angles,
// OrbitMap[mgl64.Vec2] for vertex coordinates.
type OrbitMap[V any] struct {
	mask Alphas
	m    map[Dart]V
}

// NewOrbitMap creates an empty OrbitMap keyed on the given orbit mask.
func NewOrbitMap[V any](mask Alphas) *OrbitMap[V] {
	return &OrbitMap[V]{mask: mask, m: make(map[Dart]V)}
}

// Mask returns the orbit mask this map is keyed on.
func (om *OrbitMap[V]) Mask() Alphas {
	return om.mask
}

// Insert writes v to every dart in the A-orbit of d.
// Complexity: O(|orbit|).
func (om *OrbitMap[V]) Insert(g *GMap, d Dart, v V) {
	for _, x := range g.Orbit(d, om.mask) {
		om.m[x] = v
	}
}

// Remove clears every dart in the A-orbit of d, returning one former
// value (if any existed) and whether the orbit had a value at all.
// Complexity: O(|orbit|).
func (om *OrbitMap[V]) Remove(g *GMap, d Dart) (V, bool) {
	var out V
	found := false
	for _, x := range g.Orbit(d, om.mask) {
		if v, ok := om.m[x]; ok && !found {
			out = v
			found = true
		}
		delete(om.m, x)
	}

	return out, found
}

// Get returns the value stored for d directly (no orbit traversal).
func (om *OrbitMap[V]) Get(d Dart) (V, bool) {
	v, ok := om.m[d]

	return v, ok
}

// Map exposes the underlying dart -> V table.
func (om *OrbitMap[V]) Map() map[Dart]V {
	return om.m
}
