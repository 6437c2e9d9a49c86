package allline

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/axialmap/explore"
	"github.com/katalvlaran/axialmap/geom"
	"github.com/katalvlaran/axialmap/progress"
)

// makeDivisions finds the lines cutting every radial and the segments each
// line covers. at maps connector i to its stored radial.
func (m *Map) makeDivisions(conns []explore.PolyConnector, at []int, poll *progress.Poller) error {
	g := m.Graph
	m.Divisors = make([][]int, len(m.Radials))
	poll.Steps(len(conns))
	for i, c := range conns {
		if err := poll.Poll(i); err != nil {
			return err
		}
		r := at[i]
		ids, err := m.shapesUnder(c.Line)
		if err != nil {
			return fmt.Errorf("allline: connector %d: %w", i, err)
		}
		tol := math.Sqrt(geom.ToleranceA) * c.Line.Length()
		for _, id := range ids {
			l := g.Line(id)
			if geom.IntersectDistinguish(l, c.Line, tol) == geom.NoIntersection {
				continue
			}
			if m.Radials[r].Cuts(l, tol) {
				m.Divisors[r] = append(m.Divisors[r], id)
			}
		}
	}
	for r := range m.Divisors {
		slices.Sort(m.Divisors[r])
		m.Divisors[r] = slices.Compact(m.Divisors[r])
	}

	m.Divisions = make([][]int, g.Len())
	for s, seg := range m.Segments {
		for _, id := range intersect(m.Divisors[seg.A], m.Divisors[seg.B]) {
			m.Divisions[id] = append(m.Divisions[id], s)
		}
	}
	return nil
}

// shapesUnder rasterises l across the shape index and returns the distinct
// line ids filed under its cells, ascending.
func (m *Map) shapesUnder(l geom.Line) ([]int, error) {
	cells, err := m.Graph.Rasterise(l)
	if err != nil {
		return nil, err
	}
	var ids []int
	for _, c := range cells {
		in, err := m.Graph.PixelShapes(c)
		if err != nil {
			return nil, err
		}
		ids = append(ids, in...)
	}
	slices.Sort(ids)
	return slices.Compact(ids), nil
}

// intersect returns the common elements of two ascending lists.
func intersect(a, b []int) []int {
	var out []int
	for i, j := 0, 0; i < len(a) && j < len(b); {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

// Covers reports whether line l divides both halves of segment s.
func (m *Map) Covers(l, s int) bool {
	_, ok := slices.BinarySearch(m.Divisions[l], s)
	return ok
}
