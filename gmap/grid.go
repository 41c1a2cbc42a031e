// Package gmap — grid.go: square and hex grid builders, exterior wrapping.
package gmap

// SquareGrid builds an n-row, m-column grid of quadrilateral faces,
// 2-sewn horizontally along shared column edges and vertically along
// shared row edges. It returns the GMap along with, per row, the canonical
// dart of each face: the north-edge, north-west-vertex dart.
// Complexity: O(n*m).
func SquareGrid(n, m int) (*GMap, [][]Dart, error) {
	g, err := NewEmpty(2)
	if err != nil {
		return nil, nil, err
	}
	rows := make([][]Dart, n)
	for r := 0; r < n; r++ {
		rows[r] = make([]Dart, m)
		for c := 0; c < m; c++ {
			rows[r][c] = g.AddPolygon(4)
		}
	}
	for _, row := range rows {
		for c := 0; c+1 < len(row); c++ {
			s0, s1 := row[c], row[c+1]
			if _, err := g.Sew(2, g.Al(s0, 0, 1), g.Al(s1, 1)); err != nil {
				return nil, nil, err
			}
		}
	}
	for r := 0; r+1 < n; r++ {
		r0, r1 := rows[r], rows[r+1]
		for c := 0; c < m; c++ {
			s0, s1 := r0[c], r1[c]
			if _, err := g.Sew(2, g.Al(s0, 1, 0, 1), s1); err != nil {
				return nil, nil, err
			}
		}
	}

	return g, rows, nil
}

// VertexGrid derives the (n+1)x(m+1) grid of vertex-incident darts from the
// face darts returned by SquareGrid, one dart per grid vertex.
func VertexGrid(g *GMap, squares [][]Dart) [][]Dart {
	out := make([][]Dart, 0, len(squares)+1)
	for _, row := range squares {
		vr := make([]Dart, 0, len(row)+1)
		vr = append(vr, row...)
		if len(row) > 0 {
			vr = append(vr, g.Al(row[len(row)-1], 0))
		}
		out = append(out, vr)
	}
	if len(squares) > 0 {
		last := squares[len(squares)-1]
		vr := make([]Dart, 0, len(last)+1)
		for _, d := range last {
			vr = append(vr, g.Al(d, 1, 0, 1))
		}
		if len(last) > 0 {
			vr = append(vr, g.Al(last[len(last)-1], 1, 0, 1, 0))
		}
		out = append(out, vr)
	}

	return out
}

// HexGrid builds an n-row, m-column grid of hexagonal faces using axial
// (r, q) coordinates (see redblobgames.com/grids/hexagons), 2-sewn along
// shared edges within a row and between adjacent rows. It returns the
// GMap along with, per row, the canonical dart of each hex: the
// northeast-edge, north-vertex dart.
// Complexity: O(n*m).
func HexGrid(n, m int) (*GMap, [][]Dart, error) {
	g, err := NewEmpty(2)
	if err != nil {
		return nil, nil, err
	}
	rows := make([][]Dart, n)
	for r := 0; r < n; r++ {
		rows[r] = make([]Dart, m)
		for q := 0; q < m; q++ {
			rows[r][q] = g.AddPolygon(6)
		}
	}
	for _, row := range rows {
		for q := 0; q+1 < len(row); q++ {
			s0, s1 := row[q], row[q+1]
			if _, err := g.Sew(2, g.Al(s0, 0, 1), g.Al(s1, 1, 0, 1)); err != nil {
				return nil, nil, err
			}
		}
	}
	for r := 0; r+1 < n; r++ {
		r0, r1 := rows[r], rows[r+1]
		for q := 0; q < m; q++ {
			s0, s1 := r0[q], r1[q]
			if _, err := g.Sew(2, g.Al(s0, 0, 1, 0, 1), g.Al(s1, 1)); err != nil {
				return nil, nil, err
			}
		}
		for q := 1; q < m; q++ {
			s0, s1 := r0[q], r1[q-1]
			if _, err := g.Sew(2, g.Al(s0, 1, 0, 1, 0, 1), s1); err != nil {
				return nil, nil, err
			}
		}
	}

	return g, rows, nil
}

// WrapExterior adds an exterior face bounding the free (α₂-unsewn) darts
// reachable from d: starting at the clockwise dart at d, it walks the
// boundary selecting at each step the next unsewn-in-α₂ boundary dart,
// builds an n-gon matching the ring length, and 2-sews each interior
// boundary dart to its counter-rotated exterior counterpart. It returns
// the exterior face's canonical dart.
// Complexity: O(boundary length).
func (g *GMap) WrapExterior(d Dart) (Dart, error) {
	start := g.Al(d, 1)
	if g.Al(start, 2) != start {
		return 0, nil // not a boundary dart; nothing to wrap at this seed
	}

	boundary := []Dart{start}
	cur := start
	for {
		next := g.Al(cur, 0, 1)
		for g.Al(next, 2) != next {
			next = g.Al(next, 2, 0, 1)
		}
		if next == start {
			break
		}
		boundary = append(boundary, next)
		cur = next
	}

	n := len(boundary)
	ext := g.AddPolygon(n)
	extDart := ext
	for k := 0; k < n; k++ {
		interior := boundary[k]
		if _, err := g.Sew(2, interior, extDart); err != nil {
			return 0, err
		}
		extDart = g.Al(extDart, 0, 1)
	}

	return ext, nil
}
