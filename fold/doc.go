// Package fold converts a FOLD mesh record into a planar G-map crease
// pattern, folds it into 3-D by propagating per-face rigid motions, and
// exposes the geometric predicates needed to detect self-intersection of
// the folded result.
package fold
