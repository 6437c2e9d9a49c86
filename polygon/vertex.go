package polygon

import (
	"math"

	"github.com/katalvlaran/axialmap/geom"
)

// angularTolerance bounds the sine of the angle below which two unit
// directions are treated as parallel by the wedge tests.
const angularTolerance = geom.ToleranceC

// Classify examines vertex i as seen from openspace.
//
// The neighbour edges are ordered by the counter-clockwise angle they make
// with the viewing direction o (vertex → openspace); the first becomes A, the
// last B, so the open wedge runs counter-clockwise from B to A through o.
// With oa = det(o,a), ob = det(o,b) and ab = det(a,b):
//
//	oa > 0, ob < 0, ab < 0   convex, axial
//	oa > 0, ob < 0, ab > 0   concave, non-axial (−o points into the wall)
//	oa, ob of equal sign     concave, axial (−o stays in open space)
//
// The vertex stays uninitialised when it has fewer than two neighbours (and
// free ends are off), when o lies within tolerance of either edge, when the
// edges are collinear, or when |a·b| exceeds the parallel threshold.
//
// Complexity: O(d) for d neighbours.
func (g *Graph) Classify(i int, openspace geom.Point) Vertex {
	v := Vertex{Ref: i, RefA: -1, RefB: -1, Point: g.points[i], OpenSpace: openspace}
	nbrs := g.edges[i]
	ov := openspace.Sub(v.Point)
	dist := ov.Norm()
	if !(dist > g.tol) {
		return v
	}
	o := ov.Mul(1 / dist)

	if len(nbrs) == 1 && g.opts.FreeEnds {
		return g.classifyEnd(v, o, dist)
	}
	if len(nbrs) < 2 {
		return v
	}

	ia, ib := -1, -1
	angA, angB := math.Inf(1), math.Inf(-1)
	for _, n := range nbrs {
		ang := geom.SweepAngle(o, g.points[n].Sub(v.Point))
		if ang < angA {
			angA, ia = ang, n
		}
		if ang > angB {
			angB, ib = ang, n
		}
	}
	a := g.points[ia].Sub(v.Point)
	b := g.points[ib].Sub(v.Point)
	la, lb := a.Norm(), b.Norm()
	a, b = a.Mul(1/la), b.Mul(1/lb)

	oa, ob, ab := geom.Det(o, a), geom.Det(o, b), geom.Det(a, b)
	if math.Abs(oa)*dist <= g.tol || math.Abs(ob)*dist <= g.tol || math.Abs(ab)*math.Min(la, lb) <= g.tol {
		return v
	}
	if math.Abs(a.Dot(b)) > g.opts.ParallelThreshold {
		return v
	}

	switch {
	case oa > 0 && ob < 0 && ab < 0:
		v.Convex, v.Axial = true, true
	case oa > 0 && ob < 0:
		v.Axial = false
	case (oa > 0) == (ob > 0):
		v.Axial = true
	default:
		return v
	}
	v.Initialised, v.Clockwise = true, true
	v.RefA, v.RefB = ia, ib
	v.A, v.B = a, b
	return v
}

// classifyEnd treats a wall end as a zero-width concave corner.
func (g *Graph) classifyEnd(v Vertex, o geom.Point, dist float64) Vertex {
	n := g.edges[v.Ref][0]
	u := g.points[n].Sub(v.Point)
	u = u.Mul(1 / u.Norm())
	inLine := math.Abs(geom.Det(o, u))*dist <= g.tol
	if inLine && o.Dot(u) > 0 {
		// viewing point lies on the wall itself
		return v
	}
	v.Initialised, v.Clockwise = true, true
	v.Axial = !inLine
	v.RefA, v.RefB = n, n
	v.A, v.B = u, u
	return v
}

// Visible reports whether the direction towards p leaves v through open space.
// Convex vertices accept only directions strictly inside the open wedge.
// Concave vertices reject only directions strictly inside the wall wedge, so
// a sight line running along either edge (a stub) still counts as visible.
func (v Vertex) Visible(p geom.Point) bool {
	if !v.Initialised {
		return false
	}
	d, ok := unit(p.Sub(v.Point))
	if !ok {
		return false
	}
	if v.Convex {
		return geom.Det(v.B, d) > angularTolerance && geom.Det(d, v.A) > angularTolerance
	}
	return !v.inWall(d)
}

// inWall reports whether d lies strictly inside the wall wedge of a concave vertex.
func (v Vertex) inWall(d geom.Point) bool {
	return geom.Det(v.A, d) > angularTolerance && geom.Det(d, v.B) > angularTolerance
}

// EligibleToward reports whether a line from p through v may continue past v.
// Convex vertices always bound the line; concave ones only let it through when
// the continuation stays out of the wall.
func (v Vertex) EligibleToward(p geom.Point) bool {
	if !v.Initialised {
		return false
	}
	if v.Convex {
		return true
	}
	c, ok := unit(v.Point.Sub(p))
	if !ok {
		return false
	}
	if v.FreeEnd() && math.Abs(geom.Det(v.A, c)) <= angularTolerance && c.Dot(v.A) > 0 {
		return false
	}
	return !v.inWall(c)
}

// Angle returns the counter-clockwise angle from edge B to the direction of p,
// the ordering key of radial lines around v.
func (v Vertex) Angle(p geom.Point) float64 {
	return geom.SweepAngle(v.B, p.Sub(v.Point))
}

func unit(d geom.Point) (geom.Point, bool) {
	n := d.Norm()
	if n == 0 {
		return geom.Point{}, false
	}
	return d.Mul(1 / n), true
}
