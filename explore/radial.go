package explore

import (
	"math"

	"github.com/katalvlaran/axialmap/geom"
)

// angularTolerance separates distinct radial angles.
const angularTolerance = geom.ToleranceC

// AngleOf measures p around the radial's corner the way its key angle was
// measured: counter-clockwise from edge B.
func (r RadialLine) AngleOf(p geom.Point) float64 {
	return geom.SweepAngle(r.B, p.Sub(r.KeyVertex))
}

// Cuts reports whether l divides the open space along this radial line.
// A line through the corner itself never cuts. A line whose ends lie on
// opposite sides of the radial does. A line that merely reaches the radial
// cuts when its far end lies on the counter-clockwise side, the side of the
// next radial segment.
func (r RadialLine) Cuts(l geom.Line, tol float64) bool {
	dir := r.OpenSpace.Sub(r.KeyVertex)
	n := dir.Norm()
	if n == 0 {
		return false
	}
	dir = dir.Mul(1 / n)
	if geom.DistanceToPoint(l, r.KeyVertex) <= tol {
		return false
	}
	s1 := geom.Det(dir, l.Start.Sub(r.KeyVertex))
	s2 := geom.Det(dir, l.End.Sub(r.KeyVertex))
	if (s1 > tol && s2 < -tol) || (s1 < -tol && s2 > tol) {
		return true
	}
	far := s1
	if math.Abs(s2) > math.Abs(s1) {
		far = s2
	}
	return far > tol
}

// InSegment reports whether p lies strictly inside the radial segment
// bounded by a and b (two radials of one corner, a's angle below b's).
func InSegment(p geom.Point, a, b RadialLine, tol float64) bool {
	if p.Sub(a.KeyVertex).Norm() <= tol {
		return false
	}
	ang := a.AngleOf(p)
	return ang > a.Key.Angle+angularTolerance && ang < b.Key.Angle-angularTolerance
}
