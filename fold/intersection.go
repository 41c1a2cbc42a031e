package fold

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/flatfold/flatfold/gmap"
)

// ShrunkFacesCoords returns, for every dart, a point nudged
// FaceShrinkEpsilon towards its face's centroid, keyed on the ANGLE
// orbit. Shrinking avoids false-positive self-intersections at a shared
// edge between two adjacent, genuinely non-overlapping faces.
func ShrunkFacesCoords(g *gmap.GMap, coords *gmap.OrbitMap[mgl64.Vec3], opts ...Option) *gmap.OrbitMap[mgl64.Vec3] {
	o := buildOptions(opts)
	shrunk := gmap.NewOrbitMap[mgl64.Vec3](gmap.Angle)

	for _, face := range g.OneDartPerOrbit(gmap.Face) {
		incident := g.OneDartPerIncidentOrbit(face, gmap.Vertex, gmap.Face)
		var sum mgl64.Vec3
		n := 0.0
		for _, d := range incident {
			p, ok := coords.Get(d)
			if !ok {
				continue
			}
			sum = sum.Add(p)
			n++
		}
		if n == 0 {
			continue
		}
		center := sum.Mul(1 / n)
		for _, d := range incident {
			p, ok := coords.Get(d)
			if !ok {
				continue
			}
			dir := center.Sub(p)
			if l := dir.Len(); l > 0 {
				dir = dir.Mul(1 / l)
			}
			shrunk.Insert(g, d, p.Add(dir.Mul(o.faceShrinkEpsilon)))
		}
	}

	return shrunk
}

// IsFaceInPlane reports whether some vertex of face lies within the
// plane-membership epsilon of the plane through planePoint with the
// given normal.
func IsFaceInPlane(g *gmap.GMap, coords *gmap.OrbitMap[mgl64.Vec3], face gmap.Dart, normal, planePoint mgl64.Vec3, opts ...Option) bool {
	o := buildOptions(opts)
	v := face
	for {
		p, ok := coords.Get(v)
		if ok && math.Abs(normal.Dot(p.Sub(planePoint))) < o.planeEpsilon {
			return true
		}
		v = g.Al(v, 0, 1)
		if v == face {
			return false
		}
	}
}

// facePlaneCrossing finds the two edge darts where face crosses the
// plane through planePoint with the given normal: pos is the dart whose
// signed distance goes negative-to-nonnegative walking CCW, neg the
// reverse. Returns ok=false if the face never crosses the plane.
func facePlaneCrossing(g *gmap.GMap, coords *gmap.OrbitMap[mgl64.Vec3], face gmap.Dart, normal, planePoint mgl64.Vec3) (pos, neg gmap.Dart, ok bool) {
	var foundPos, foundNeg bool
	v := face
	p, hasP := coords.Get(v)
	d := 0.0
	if hasP {
		d = normal.Dot(p.Sub(planePoint))
	}
	for {
		v1 := g.Al(v, 0, 1)
		p1, hasP1 := coords.Get(v1)
		d1 := 0.0
		if hasP1 {
			d1 = normal.Dot(p1.Sub(planePoint))
		}
		if d < 0 && d1 >= 0 {
			pos, foundPos = v, true
		}
		if d >= 0 && d1 < 0 {
			neg, foundNeg = v, true
		}
		v = v1
		d = d1
		if v == face {
			break
		}
	}

	return pos, neg, foundPos && foundNeg
}

var errEdgeDoesNotCrossPlane = errors.New("fold: edge does not cross plane")

// edgeCrossingPoint finds where edge crosses the plane through planePoint
// with the given normal.
func edgeCrossingPoint(g *gmap.GMap, coords *gmap.OrbitMap[mgl64.Vec3], edge gmap.Dart, normal, planePoint mgl64.Vec3) (mgl64.Vec3, error) {
	p0, _ := coords.Get(edge)
	p1, _ := coords.Get(g.Al(edge, 0))
	d0 := normal.Dot(p0.Sub(planePoint))
	d1 := normal.Dot(p1.Sub(planePoint))
	denom := d1 - d0
	if denom == 0 {
		return mgl64.Vec3{}, errEdgeDoesNotCrossPlane
	}
	x := d1 / denom
	if math.IsNaN(x) || x < 0 || x > 1 {
		return mgl64.Vec3{}, errEdgeDoesNotCrossPlane
	}

	return lerp(p1, p0, x), nil
}

func lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// interval1D is a closed interval [Lo, Hi] on the 1-D line where two
// non-parallel face planes intersect.
type interval1D struct {
	Lo, Hi float64
}

func (iv interval1D) overlaps(other interval1D) bool {
	return iv.Lo <= other.Hi && other.Lo <= iv.Hi
}

func faceInterval1D(g *gmap.GMap, coords *gmap.OrbitMap[mgl64.Vec3], face gmap.Dart, otherNormal, otherPoint, lineOrigin, lineDir mgl64.Vec3) (interval1D, bool) {
	pos, neg, ok := facePlaneCrossing(g, coords, face, otherNormal, otherPoint)
	if !ok {
		return interval1D{}, false
	}
	c1, err1 := edgeCrossingPoint(g, coords, pos, otherNormal, otherPoint)
	c2, err2 := edgeCrossingPoint(g, coords, neg, otherNormal, otherPoint)
	if err1 != nil || err2 != nil {
		return interval1D{}, false
	}
	t1 := c1.Sub(lineOrigin).Dot(lineDir)
	t2 := c2.Sub(lineOrigin).Dot(lineDir)
	if t1 > t2 {
		t1, t2 = t2, t1
	}

	return interval1D{Lo: t1, Hi: t2}, true
}

// faceNormal computes the (unnormalized) normal of a planar face via the
// first three distinct vertices encountered walking its CCW darts.
func faceNormal(g *gmap.GMap, coords *gmap.OrbitMap[mgl64.Vec3], face gmap.Dart) (normal, point mgl64.Vec3, ok bool) {
	pts := make([]mgl64.Vec3, 0, 3)
	v := face
	for {
		if p, found := coords.Get(v); found {
			pts = append(pts, p)
		}
		v = g.Al(v, 0, 1)
		if v == face || len(pts) >= 3 {
			break
		}
	}
	if len(pts) < 3 {
		return mgl64.Vec3{}, mgl64.Vec3{}, false
	}
	e1 := pts[1].Sub(pts[0])
	e2 := pts[2].Sub(pts[0])
	n := e1.Cross(e2)
	if n.Len() == 0 {
		return mgl64.Vec3{}, mgl64.Vec3{}, false
	}

	return n, pts[0], true
}

// DoFacesIntersect tests two non-parallel faces for 3-D intersection by
// computing each face's crossing edges with the other's plane, projecting
// onto the line of plane intersection, and testing the resulting 1-D
// intervals for overlap.
func DoFacesIntersect(g *gmap.GMap, coords *gmap.OrbitMap[mgl64.Vec3], f1, f2 gmap.Dart) (bool, error) {
	n1, p1, ok1 := faceNormal(g, coords, f1)
	n2, p2, ok2 := faceNormal(g, coords, f2)
	if !ok1 || !ok2 {
		return false, nil
	}
	lineDir := n1.Cross(n2)
	if lineDir.Len() == 0 {
		return false, errors.New("fold: faces are parallel; use FaceOverlap instead")
	}
	lineDir = lineDir.Mul(1 / lineDir.Len())

	iv1, ok := faceInterval1D(g, coords, f1, n2, p2, p1, lineDir)
	if !ok {
		return false, nil
	}
	iv2, ok := faceInterval1D(g, coords, f2, n1, p1, p1, lineDir)
	if !ok {
		return false, nil
	}

	return iv1.overlaps(iv2), nil
}

// point2 is a 2-D point used for coplanar polygon clipping.
type point2 struct{ X, Y float64 }

// projectToPlane builds an orthonormal 2-D basis (u, v) in the plane with
// the given normal, then projects each 3-D point onto it.
func projectToPlane(pts []mgl64.Vec3, normal mgl64.Vec3) []point2 {
	n := normal.Normalize()
	ref := mgl64.Vec3{1, 0, 0}
	if math.Abs(n.Dot(ref)) > 0.9 {
		ref = mgl64.Vec3{0, 1, 0}
	}
	u := ref.Sub(n.Mul(ref.Dot(n)))
	u = u.Mul(1 / u.Len())
	v := n.Cross(u)

	out := make([]point2, len(pts))
	for i, p := range pts {
		out[i] = point2{X: p.Dot(u), Y: p.Dot(v)}
	}

	return out
}

func facePolygon(g *gmap.GMap, coords *gmap.OrbitMap[mgl64.Vec3], face gmap.Dart) []mgl64.Vec3 {
	var pts []mgl64.Vec3
	v := face
	for {
		if p, ok := coords.Get(v); ok {
			pts = append(pts, p)
		}
		v = g.Al(v, 0, 1)
		if v == face {
			break
		}
	}

	return pts
}

// clipPolygon runs the Sutherland-Hodgman clip of subject against the
// single half-plane left of the directed edge (edgeA -> edgeB).
func clipPolygon(subject []point2, edgeA, edgeB point2) []point2 {
	if len(subject) == 0 {
		return nil
	}
	cross := func(p point2) float64 {
		return (edgeB.X-edgeA.X)*(p.Y-edgeA.Y) - (edgeB.Y-edgeA.Y)*(p.X-edgeA.X)
	}
	intersect := func(p, q point2) point2 {
		c1, c2 := cross(p), cross(q)
		t := c1 / (c1 - c2)

		return point2{X: p.X + t*(q.X-p.X), Y: p.Y + t*(q.Y-p.Y)}
	}

	var out []point2
	prev := subject[len(subject)-1]
	prevIn := cross(prev) >= 0
	for _, cur := range subject {
		curIn := cross(cur) >= 0
		if curIn {
			if !prevIn {
				out = append(out, intersect(prev, cur))
			}
			out = append(out, cur)
		} else if prevIn {
			out = append(out, intersect(prev, cur))
		}
		prev, prevIn = cur, curIn
	}

	return out
}

func polygonArea(pts []point2) float64 {
	if len(pts) < 3 {
		return 0
	}
	area := 0.0
	for i := range pts {
		j := (i + 1) % len(pts)
		area += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}

	return math.Abs(area) / 2
}

// FaceOverlap tests two coplanar (parallel, after rotation into a shared
// plane) faces for 2-D overlap: it projects both into a common 2-D basis
// and computes the convex-polygon intersection via Sutherland-Hodgman
// clipping. Non-empty intersection area means the faces overlap.
func FaceOverlap(g *gmap.GMap, coords *gmap.OrbitMap[mgl64.Vec3], f1, f2 gmap.Dart) bool {
	n1, _, ok1 := faceNormal(g, coords, f1)
	if !ok1 {
		return false
	}

	p1 := projectToPlane(facePolygon(g, coords, f1), n1)
	p2 := projectToPlane(facePolygon(g, coords, f2), n1)
	if len(p1) < 3 || len(p2) < 3 {
		return false
	}

	clipped := p2
	for i := range p1 {
		j := (i + 1) % len(p1)
		clipped = clipPolygon(clipped, p1[i], p1[j])
		if len(clipped) == 0 {
			return false
		}
	}

	return polygonArea(clipped) > 0
}
