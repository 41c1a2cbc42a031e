package fold

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/flatfold/flatfold/gmap"
)

// FoldedState is a CreasePattern folded into 3-D: a consistent rigid
// motion for every face reachable from the fixed face, and the resulting
// 3-D vertex coordinates.
type FoldedState struct {
	FoldedCoords *gmap.OrbitMap[mgl64.Vec3]
	Isometries   *gmap.OrbitMap[Isometry3]
}

// ccwDart returns d if it points CCW within its face, else its
// alpha_1-image (which always points the opposite way around the face).
func ccwDart(cp *CreasePattern, d gmap.Dart) gmap.Dart {
	if cp.Orientation[d] {
		return d
	}

	return cp.G.Al(d, 1)
}

// Fold propagates per-face rigid isometries outward from fixed, a face
// dart of cp, via breadth-first search across live (non-boundary) creases,
// per the fold-angle assigned to each edge. It fails with
// ErrDistinctIsometries if the same face is reached through two
// inconsistent chains of folds.
func Fold(cp *CreasePattern, fixed gmap.Dart, opts ...Option) (*FoldedState, error) {
	o := buildOptions(opts)
	g := cp.G

	foldedCoords := gmap.NewOrbitMap[mgl64.Vec3](gmap.Vertex)
	seenEdges := gmap.NewOrbitMap[bool](gmap.Edge)
	isometries := gmap.NewOrbitMap[Isometry3](gmap.Face)

	start := ccwDart(cp, fixed)
	isometries.Insert(g, start, IdentityIsometry())
	assignFaceVertices(g, cp, foldedCoords, start, IdentityIsometry())

	frontier := []gmap.Dart{start}
	for len(frontier) > 0 {
		f := frontier[0]
		frontier = frontier[1:]

		mIface, _ := isometries.Get(f)
		M := mIface

		for _, e := range g.Cycle(f, []int{0, 1}) {
			if _, ok := seenEdges.Get(e); ok {
				continue
			}
			if g.Al(e, 2) == e {
				continue // boundary edge: no neighboring face to propagate to
			}

			fPrime := ccwDart(cp, g.Al(e, 0, 2))

			p, okP := cp.VerticesCoords.Get(e)
			q, okQ := cp.VerticesCoords.Get(g.Al(e, 0))
			if !okP || !okQ {
				seenEdges.Insert(g, e, true)
				continue
			}
			angleDeg, _ := cp.FoldAngle.Get(e)
			axis := mgl64.Vec3{q[0] - p[0], q[1] - p[1], 0}
			rot := AxisAngleQuat(axis, angleDeg*math.Pi/180)
			p3 := mgl64.Vec3{p[0], p[1], 0}
			rotateStep := RotateAboutPoint(rot, p3)
			MPrime := rotateStep.Compose(M)

			if existing, ok := isometries.Get(fPrime); ok {
				delta := MPrime.Inverse().Compose(existing)
				if delta.RotationAngle() > o.isoAngleEpsilon || delta.Trans.Dot(delta.Trans) > o.isoLengthEpsSq {
					return nil, fmt.Errorf("fold: face %d: %w", f, ErrDistinctIsometries)
				}
			} else {
				isometries.Insert(g, fPrime, MPrime)
				assignFaceVertices(g, cp, foldedCoords, fPrime, MPrime)
				frontier = append(frontier, fPrime)
			}

			seenEdges.Insert(g, e, true)
		}
	}

	return &FoldedState{FoldedCoords: foldedCoords, Isometries: isometries}, nil
}

func assignFaceVertices(g *gmap.GMap, cp *CreasePattern, out *gmap.OrbitMap[mgl64.Vec3], face gmap.Dart, m Isometry3) {
	for _, v := range g.Cycle(face, []int{0, 1}) {
		if _, ok := out.Get(v); ok {
			continue
		}
		p2, ok := cp.VerticesCoords.Get(v)
		if !ok {
			continue
		}
		p3 := mgl64.Vec3{p2[0], p2[1], 0}
		out.Insert(g, v, m.Apply(p3))
	}
}
