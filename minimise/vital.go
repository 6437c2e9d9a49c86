package minimise

import (
	"slices"

	"github.com/katalvlaran/axialmap/allline"
	"github.com/katalvlaran/axialmap/explore"
	"github.com/katalvlaran/axialmap/geom"
)

// checkVital decides whether i must stay because of its segments.
// Every segment i alone still covers is examined; i is vital when there is
// at least one such segment and none of them has an alternative.
func (r *reduction) checkVital(i int) bool {
	counted, closed := 0, 0
	for _, s := range r.divisions(i) {
		if r.segCount[s] > 1 {
			continue
		}
		counted++
		if r.alternative(i, r.m.Segments[s]) {
			closed++
		}
	}
	return counted > 0 && closed == 0
}

// alternative reports whether two other live lines, one cutting each radial
// of seg, are connected at a point inside the segment.
func (r *reduction) alternative(i int, seg allline.Segment) bool {
	a, b := r.m.Radials[seg.A], r.m.Radials[seg.B]
	for _, x := range r.divisors(seg.A) {
		if x == i || r.state[x] == Removed {
			continue
		}
		for _, y := range r.divisors(seg.B) {
			if y == i || y == x || r.state[y] == Removed || !r.connected(x, y) {
				continue
			}
			p, ok := geom.IntersectionPoint(r.m.Graph.Line(x), r.m.Graph.Line(y))
			if ok && explore.InSegment(p, a, b, r.tol) {
				return true
			}
		}
	}
	return false
}

func (r *reduction) connected(x, y int) bool {
	_, ok := slices.BinarySearch(r.conns[x], y)
	return ok
}

func (r *reduction) divisors(radial int) []int {
	if radial < len(r.m.Divisors) {
		return r.m.Divisors[radial]
	}
	return nil
}
