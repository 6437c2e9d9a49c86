package polygon

import (
	"cmp"
	"math"
	"slices"

	"github.com/katalvlaran/axialmap/geom"
)

// Blocked reports whether l properly crosses a wall of the graph. Touching a
// wall at an endpoint and running along one do not block; passing exactly
// through a vertex does when that vertex has walls on both sides of l.
func (g *Graph) Blocked(l geom.Line) bool {
	for _, id := range g.wallIdx.AlongLine(l) {
		if geom.IntersectDistinguish(g.walls[id], l, g.tol) == geom.Crossing {
			return true
		}
	}
	for _, i := range g.verts.AlongLine(l) {
		p := g.points[i]
		if geom.ApproxEq(p, l.Start, g.tol) || geom.ApproxEq(p, l.End, g.tol) {
			continue
		}
		if geom.DistanceToPoint(l, p) <= g.tol && g.splits(i, l) {
			return true
		}
	}
	return false
}

// splits reports whether vertex i has neighbours strictly on both sides of l.
func (g *Graph) splits(i int, l geom.Line) bool {
	left, right := false, false
	for _, n := range g.edges[i] {
		s := geom.Side(l, g.points[n])
		left = left || s > g.tol
		right = right || s < -g.tol
	}
	return left && right
}

// Extend casts a ray from p along dir and returns where it first meets a
// wall beyond p, or the region boundary if it meets none. Walls parallel to
// the ray are ignored.
func (g *Graph) Extend(p, dir geom.Point) geom.Point {
	dir, ok := unit(dir)
	if !ok {
		return p
	}
	far := geom.RayToRegion(p, dir, g.region)
	best := far.Sub(p).Norm()
	hit := far
	for _, id := range g.wallIdx.AlongLine(geom.NewLine(p, far)) {
		if t, ok := g.rayHit(p, dir, g.walls[id]); ok && t < best {
			best, hit = t, p.Add(dir.Mul(t))
		}
	}
	return hit
}

// rayHit solves p + t·dir = w.Start + u·(w.End − w.Start) for t > tol, u in [0,1].
func (g *Graph) rayHit(p, dir geom.Point, w geom.Line) (float64, bool) {
	wv := w.Vector()
	wl := wv.Norm()
	den := geom.Det(dir, wv)
	if wl == 0 || math.Abs(den) <= angularTolerance*wl {
		return 0, false
	}
	rel := w.Start.Sub(p)
	t := geom.Det(rel, wv) / den
	u := geom.Det(rel, dir) / den
	slack := g.tol / wl
	if t <= g.tol || u < -slack || u > 1+slack {
		return 0, false
	}
	return t, true
}

// seedable reports whether vertex i can start an exploration from p.
func (g *Graph) seedable(i int, p geom.Point) bool {
	return g.Classify(i, p).Initialised && !g.Blocked(geom.NewLine(p, g.points[i]))
}

// byDistance orders vertex ids by distance from p, then by id.
func (g *Graph) byDistance(ids []int, p geom.Point) {
	slices.SortFunc(ids, func(a, b int) int {
		da, db := g.points[a].Sub(p).Norm(), g.points[b].Sub(p).Norm()
		if c := cmp.Compare(da, db); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
}

// SeedVertex spirals outward through the vertex index from p, ring by ring,
// and returns the nearest vertex of the first ring that is both visible from
// p and classifiable as seen from it.
// Returns ErrNoSeedVertex once the whole grid has been searched.
//
// Complexity: O(V·k) worst case, with k the cost of one Blocked test.
func (g *Graph) SeedVertex(p geom.Point) (int, error) {
	grid := g.verts.Grid()
	centre := grid.CellOf(p)
	for r := 0; r <= grid.MaxRing(centre); r++ {
		ids := g.verts.Gather(grid.Ring(centre, r))
		g.byDistance(ids, p)
		for _, i := range ids {
			if g.seedable(i, p) {
				return i, nil
			}
		}
	}
	return -1, ErrNoSeedVertex
}

// VisibleFrom returns every vertex that could seed an exploration from p,
// nearest first.
//
// Complexity: O(V·k).
func (g *Graph) VisibleFrom(p geom.Point) []int {
	var out []int
	for i := range g.points {
		if g.seedable(i, p) {
			out = append(out, i)
		}
	}
	g.byDistance(out, p)
	return out
}
