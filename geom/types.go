package geom

import (
	"github.com/golang/geo/r2"
)

// Tolerance scales shared by the engine.
const (
	ToleranceA = 1e-9
	ToleranceB = 1e-12
	ToleranceC = 1e-6
)

// Point is a planar point or vector.
type Point = r2.Point

// Region is an axis-aligned bounding rectangle.
type Region = r2.Rect

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return r2.Point{X: x, Y: y} }

// Line is a segment normalised so that Start sorts before End.
// Construct it with NewLine; the zero Line is the degenerate segment at the origin.
type Line struct {
	Start Point
	End   Point
}

// Intersection classifies how two segments meet.
type Intersection int

const (
	// NoIntersection: the segments are apart by more than the tolerance.
	NoIntersection Intersection = iota
	// Touching: an endpoint lies on the other segment, or they overlap collinearly.
	Touching
	// Crossing: each segment has its endpoints strictly on opposite sides of the other.
	Crossing
)

// String implements fmt.Stringer.
func (i Intersection) String() string {
	switch i {
	case Touching:
		return "touching"
	case Crossing:
		return "crossing"
	default:
		return "none"
	}
}
