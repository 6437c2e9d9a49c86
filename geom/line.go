package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

// Less orders points by x, then by y.
func Less(a, b Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// Compare is the three-way form of Less, suitable for slices.SortFunc.
func Compare(a, b Point) int {
	switch {
	case Less(a, b):
		return -1
	case Less(b, a):
		return 1
	default:
		return 0
	}
}

// NewLine returns the segment a–b with its endpoints in canonical order.
func NewLine(a, b Point) Line {
	if Less(b, a) {
		a, b = b, a
	}
	return Line{Start: a, End: b}
}

// Vector returns End - Start.
func (l Line) Vector() Point { return l.End.Sub(l.Start) }

// Length returns the Euclidean length of the segment.
func (l Line) Length() float64 { return l.Vector().Norm() }

// Midpoint returns the centre of the segment.
func (l Line) Midpoint() Point { return l.Start.Add(l.End).Mul(0.5) }

// Bounds returns the bounding rectangle of the segment.
func (l Line) Bounds() Region { return r2.RectFromPoints(l.Start, l.End) }

// Det returns the 2-D cross product a.X*b.Y - a.Y*b.X.
func Det(a, b Point) float64 { return a.Cross(b) }

// ApproxEq reports whether p and q differ by at most tol on each axis.
func ApproxEq(p, q Point, tol float64) bool {
	return math.Abs(p.X-q.X) <= tol && math.Abs(p.Y-q.Y) <= tol
}

// LinesApproxEq compares canonical segments endpoint by endpoint.
func LinesApproxEq(a, b Line, tol float64) bool {
	return ApproxEq(a.Start, b.Start, tol) && ApproxEq(a.End, b.End, tol)
}

// Side returns the signed distance of p from the supporting line of l:
// positive on the counter-clockwise side of Start→End. A degenerate l yields 0.
func Side(l Line, p Point) float64 {
	n := l.Length()
	if n == 0 {
		return 0
	}
	return Det(l.Vector(), p.Sub(l.Start)) / n
}

// DistanceToPoint returns the distance from p to the closest point of l.
func DistanceToPoint(l Line, p Point) float64 {
	v := l.Vector()
	n2 := v.Dot(v)
	if n2 == 0 {
		return p.Sub(l.Start).Norm()
	}
	t := p.Sub(l.Start).Dot(v) / n2
	t = math.Max(0, math.Min(1, t))
	return p.Sub(l.Start.Add(v.Mul(t))).Norm()
}

// IntersectRegion reports whether the bounding boxes of a and b overlap
// once each is expanded by tol.
func IntersectRegion(a, b Line, tol float64) bool {
	return a.Bounds().ExpandedByMargin(tol).Intersects(b.Bounds())
}

// Intersects reports whether a and b touch or cross within tol.
func Intersects(a, b Line, tol float64) bool {
	return IntersectDistinguish(a, b, tol) != NoIntersection
}

// IntersectDistinguish separates proper crossings from touches.
// A crossing needs both segments to have their endpoints farther than tol on
// opposite sides of the other; anything else that still comes within tol is a touch.
//
// Complexity: O(1).
func IntersectDistinguish(a, b Line, tol float64) Intersection {
	if !IntersectRegion(a, b, tol) {
		return NoIntersection
	}
	if a.Length() > 0 && b.Length() > 0 &&
		straddles(Side(a, b.Start), Side(a, b.End), tol) &&
		straddles(Side(b, a.Start), Side(b, a.End), tol) {
		return Crossing
	}
	if DistanceToPoint(a, b.Start) <= tol || DistanceToPoint(a, b.End) <= tol ||
		DistanceToPoint(b, a.Start) <= tol || DistanceToPoint(b, a.End) <= tol {
		return Touching
	}
	return NoIntersection
}

func straddles(d1, d2, tol float64) bool {
	return (d1 > tol && d2 < -tol) || (d1 < -tol && d2 > tol)
}

// IntersectionPoint returns the intersection of the infinite lines through a
// and b. ok is false when they are parallel.
func IntersectionPoint(a, b Line) (p Point, ok bool) {
	da, db := a.Vector(), b.Vector()
	den := Det(da, db)
	if den == 0 {
		return Point{}, false
	}
	t := Det(b.Start.Sub(a.Start), db) / den
	return a.Start.Add(da.Mul(t)), true
}

// SweepAngle returns the counter-clockwise angle in [0, 2π) that turns from onto to.
func SweepAngle(from, to Point) float64 {
	a := math.Atan2(Det(from, to), from.Dot(to))
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
