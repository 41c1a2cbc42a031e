// Package gmap implements generalized maps (G-maps): a dart-based
// combinatorial representation of cellular subdivisions of surfaces.
//
// A G-map of dimension n is a set of darts together with n+1 involutions
// alpha_0 .. alpha_n. Every k-cell (vertex, edge, face, ...) of the
// subdivision is an orbit of darts under a chosen subset of the
// involutions; sewing and unsewing two darts along a chosen involution is
// how cells are glued together or split apart.
//
// This package is organized the way lvlath/core organizes its Graph type:
//
//	dart.go    — Dart identifier and sentinel errors
//	alphas.go  — Alphas bitset and the named 2-D cell masks
//	gmap.go    — GMap storage, construction, and validation
//	mutate.go  — AddDart/AddEdge/AddPolygon/AddCycle/Link/Unlink/Sew/Unsew/Delete
//	orbit.go   — orbit enumeration (fast paths + general BFS)
//	orbitmap.go   — OrbitMap[V], an orbit-keyed attribute map
//	orbitreprs.go — OrbitReprs, a cached per-dart minimal-representative table
//	grid.go    — square/hex grid builders and exterior-face wrapping
//
// The whole package is single-threaded and synchronous by design: no
// operation here blocks or spawns goroutines, and GMap carries no mutex
// (unlike lvlath/core.Graph, which is built for concurrent access). A
// GMap is owned by exactly one caller at a time; OrbitReprs and OrbitMap
// values must be rebuilt after any topological mutation of the GMap they
// were derived from.
package gmap
