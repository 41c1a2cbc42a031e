// Package confgraph builds the planar constraint graph that encodes every
// valid mountain/valley assignment of a crease pattern as a face-coloring
// problem: vertices of the input contribute "exactly one mountain among
// these creases" clauses, and faces contribute clauses forced by matching
// up creases of equal effective length around their boundary.
//
// The builder never mutates its input G-map; it reads edge lengths and
// angle constraints from it and produces an entirely separate output
// G-map (cg) whose own darts, sewn together by the builder, carry the
// clause/variable structure.
package confgraph
