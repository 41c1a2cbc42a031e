// Package circular implements a small arena-backed doubly-linked circular
// list, used by the constraint-graph builder's per-face shrink loop to
// hold a mutable ring of (angle dart, effective edge length) pairs.
//
// Nodes are indices into a growable slice rather than pointers, so the
// list never needs interior pointers or a garbage collector's help to
// stay valid across splice/split. Removed nodes are simply abandoned in
// the backing slice: a list is always scoped to one face's shrink pass
// and dropped as a whole afterward, so the leak is bounded and cheap.
package circular
