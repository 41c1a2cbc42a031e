package fold

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/flatfold/flatfold/gmap"
)

// CreasePattern is a 2-D planar crease pattern: a G-map together with the
// per-dart bookkeeping needed to fold it.
type CreasePattern struct {
	G *gmap.GMap
	// Orientation reports, for a dart d, whether d points
	// counterclockwise within its face (true) or clockwise (false).
	Orientation map[gmap.Dart]bool
	// VerticesCoords gives the 2-D location of each vertex in the
	// unfolded pattern, keyed on the VERTEX orbit.
	VerticesCoords *gmap.OrbitMap[mgl64.Vec2]
	// FoldAngle gives the signed fold angle (degrees, in [-180, 180])
	// of each edge, keyed on the EDGE orbit. Positive angles turn the
	// two face normals towards each other; 0 is a flat (unfolded)
	// crease.
	FoldAngle *gmap.OrbitMap[float64]
}

// FoldTracking maps a FOLD frame's original face/edge/vertex indices to
// a representative CCW dart, so callers can recover the CreasePattern
// position of a specific FOLD-file entity.
type FoldTracking struct {
	FaceToDart   map[int]gmap.Dart
	EdgeToDart   map[int]gmap.Dart
	VertexToDart map[int]gmap.Dart
}

func assignmentAngle(a string) (float64, bool) {
	switch a {
	case "M":
		return -180, true
	case "V":
		return 180, true
	case "F":
		return 0, true
	case "B":
		return 0, false
	default:
		return 0, false
	}
}

// NewCreasePattern ingests a FOLD frame into a CreasePattern, per the
// FOLD subset this package supports: faces_vertices/faces_edges describe
// each face as a CCW polygon; vertices_coords gives 2-D (or z=0 3-D)
// vertex positions; edges_foldAngle (preferred) or edges_assignment
// gives each edge's fold angle.
func NewCreasePattern(f FoldFrame, opts ...Option) (*CreasePattern, *FoldTracking, error) {
	o := buildOptions(opts)

	if len(f.FacesVertices) == 0 {
		return nil, nil, fmt.Errorf("fold: faces_vertices: %w", ErrFoldMissingField)
	}
	if len(f.FacesEdges) == 0 {
		return nil, nil, fmt.Errorf("fold: faces_edges: %w", ErrFoldMissingField)
	}
	if len(f.VerticesCoords) == 0 {
		return nil, nil, fmt.Errorf("fold: vertices_coords: %w", ErrFoldMissingField)
	}
	if len(f.EdgesAssignment) == 0 && len(f.EdgesFoldAngle) == 0 {
		return nil, nil, fmt.Errorf("fold: edges_assignment or edges_foldAngle: %w", ErrFoldMissingField)
	}
	if len(f.FacesEdges) != len(f.FacesVertices) {
		return nil, nil, fmt.Errorf("fold: faces_edges length %d != faces_vertices length %d: %w",
			len(f.FacesEdges), len(f.FacesVertices), ErrFoldBadFace)
	}

	g, err := gmap.NewEmpty(2)
	if err != nil {
		return nil, nil, err
	}

	faceToDart := make(map[int]gmap.Dart, len(f.FacesVertices))
	vertexToDart := make(map[int]gmap.Dart)
	edgeToDart := make(map[int]gmap.Dart)
	edgeFaceCount := make(map[int]int)
	orientation := make(map[gmap.Dart]bool)

	for face, verts := range f.FacesVertices {
		edges := f.FacesEdges[face]
		if len(edges) != len(verts) {
			return nil, nil, fmt.Errorf("fold: face %d: faces_edges/faces_vertices length mismatch: %w",
				face, ErrFoldBadFace)
		}
		if len(verts) < 3 {
			return nil, nil, fmt.Errorf("fold: face %d has fewer than 3 vertices: %w", face, ErrFoldNonManifold)
		}

		d := g.AddPolygon(len(verts))
		faceToDart[face] = d
		for k, vertex := range verts {
			if _, ok := vertexToDart[vertex]; !ok {
				vertexToDart[vertex] = d
			}
			orientation[d] = true
			orientation[g.Al(d, 1)] = false

			edge := edges[k]
			edgeFaceCount[edge]++
			if edgeFaceCount[edge] > 2 {
				return nil, nil, fmt.Errorf("fold: edge %d referenced by more than two faces: %w",
					edge, ErrFoldNonManifold)
			}
			if prev, seen := edgeToDart[edge]; seen {
				if _, err := g.Sew(2, d, g.Al(prev, 0)); err != nil {
					return nil, nil, fmt.Errorf("fold: sewing edge %d: %w", edge, err)
				}
			} else {
				edgeToDart[edge] = d
			}

			d = g.Al(d, 0, 1)
		}
	}

	coords := gmap.NewOrbitMap[mgl64.Vec2](gmap.Vertex)
	for vertex, xyz := range f.VerticesCoords {
		if len(xyz) < 2 {
			return nil, nil, fmt.Errorf("fold: vertex %d: %w", vertex, ErrFoldBadCoordinates)
		}
		if len(xyz) >= 3 && xyz[2] != 0 {
			return nil, nil, fmt.Errorf("fold: vertex %d has nonzero z=%g: %w", vertex, xyz[2], ErrFoldBadCoordinates)
		}
		d, ok := vertexToDart[vertex]
		if !ok {
			continue // vertex unreferenced by any face; nothing to anchor coords to
		}
		coords.Insert(g, d, mgl64.Vec2{xyz[0], xyz[1]})
	}

	foldAngle := gmap.NewOrbitMap[float64](gmap.Edge)
	for edge, d := range edgeToDart {
		var angle float64
		var ok bool
		if len(f.EdgesFoldAngle) > edge {
			angle, ok = f.EdgesFoldAngle[edge], true
		} else if len(f.EdgesAssignment) > edge {
			angle, ok = assignmentAngle(f.EdgesAssignment[edge])
		}
		if !ok {
			continue // undefined (border) assignment: leave unassigned
		}
		if angle < -180 || angle > 180 {
			return nil, nil, fmt.Errorf("fold: edge %d angle %g: %w", edge, angle, ErrFoldBadAngle)
		}
		foldAngle.Insert(g, d, angle)
	}

	if o.checkEdgeLengths && len(f.EdgesLength) > 0 {
		for edge, d := range edgeToDart {
			if edge >= len(f.EdgesLength) {
				continue
			}
			p0, ok0 := coords.Get(d)
			p1, ok1 := coords.Get(g.Al(d, 0))
			if !ok0 || !ok1 {
				continue
			}
			got := p0.Sub(p1).Len()
			if diff := got - f.EdgesLength[edge]; diff > 1e-6 || diff < -1e-6 {
				return nil, nil, fmt.Errorf("fold: edge %d: edges_length %g disagrees with coords (%g): %w",
					edge, f.EdgesLength[edge], got, ErrFoldBadCoordinates)
			}
		}
	}

	for _, order := range f.FaceOrders {
		a, b := order[0], order[1]
		if _, ok := faceToDart[a]; !ok {
			return nil, nil, fmt.Errorf("fold: faceOrders references face %d: %w", a, ErrFoldInvalidReference)
		}
		if _, ok := faceToDart[b]; !ok {
			return nil, nil, fmt.Errorf("fold: faceOrders references face %d: %w", b, ErrFoldInvalidReference)
		}
	}
	for _, order := range f.EdgeOrders {
		a, b := order[0], order[1]
		if _, ok := edgeToDart[a]; !ok {
			return nil, nil, fmt.Errorf("fold: edgeOrders references edge %d: %w", a, ErrFoldInvalidReference)
		}
		if _, ok := edgeToDart[b]; !ok {
			return nil, nil, fmt.Errorf("fold: edgeOrders references edge %d: %w", b, ErrFoldInvalidReference)
		}
	}

	cp := &CreasePattern{
		G:              g,
		Orientation:    orientation,
		VerticesCoords: coords,
		FoldAngle:      foldAngle,
	}
	ft := &FoldTracking{
		FaceToDart:   faceToDart,
		EdgeToDart:   edgeToDart,
		VertexToDart: vertexToDart,
	}

	return cp, ft, nil
}
