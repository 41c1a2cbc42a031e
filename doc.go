// Package flatfold is a computational-origami toolkit for deciding whether
// a planar crease pattern, with prescribed edge lengths and optional
// per-corner angle constraints, can be flat-folded.
//
// It is organized as a small pipeline of subpackages, leaves first:
//
//	gmap/      — dart-based generalized-map (G-map) library: involutions,
//	             sewing, orbit enumeration, orbit-indexed attribute maps,
//	             and grid/polygon builders
//	circular/  — arena-backed doubly-linked circular list with splice/split
//	fold/      — crease-pattern ingest (FOLD mesh records -> G-map),
//	             fold-angle assignment, and BFS-propagated folded-state
//	             construction with intersection geometry
//	confgraph/ — the constraint-graph builder: turns a G-map with edge
//	             lengths and angle constraints into a second G-map whose
//	             clauses encode every valid mountain/valley assignment
//
// Data flows left to right: fold consumes a deserialized FOLD frame and
// emits a CreasePattern built on gmap; confgraph consumes a 2-D G-map
// (such as a CreasePattern's) plus lengths and constraints and emits a
// Constraints graph, also built
// on gmap. The downstream SAT/coloring solver that would consume a
// Constraints graph, and any rendering or file I/O beyond the FOLD field
// contract, are out of scope.
package flatfold
