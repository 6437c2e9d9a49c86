package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

// RegionOf returns the bounding rectangle of all segment endpoints.
// An empty input yields r2.EmptyRect().
func RegionOf(lines []Line) Region {
	r := r2.EmptyRect()
	for _, l := range lines {
		r = r.AddPoint(l.Start).AddPoint(l.End)
	}
	return r
}

// Diagonal returns the length of the region's diagonal.
func Diagonal(r Region) float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.Size().Norm()
}

// MaxDim returns the larger of the region's width and height.
func MaxDim(r Region) float64 {
	if r.IsEmpty() {
		return 0
	}
	return math.Max(r.X.Length(), r.Y.Length())
}

// Grow expands r on every side by factor·MaxDim(r).
func Grow(r Region, factor float64) Region {
	if r.IsEmpty() {
		return r
	}
	return r.ExpandedByMargin(MaxDim(r) * factor)
}

// CropLine clips l to r (Liang–Barsky). ok is false when nothing of l lies
// inside r. A segment already inside r is returned unchanged.
func CropLine(l Line, r Region) (Line, bool) {
	if r.IsEmpty() {
		return Line{}, false
	}
	if r.ContainsPoint(l.Start) && r.ContainsPoint(l.End) {
		return l, true
	}
	d := l.Vector()
	p := [4]float64{-d.X, d.X, -d.Y, d.Y}
	q := [4]float64{l.Start.X - r.X.Lo, r.X.Hi - l.Start.X, l.Start.Y - r.Y.Lo, r.Y.Hi - l.Start.Y}
	t0, t1 := 0.0, 1.0
	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return Line{}, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			t0 = math.Max(t0, t)
		} else {
			t1 = math.Min(t1, t)
		}
		if t0 > t1 {
			return Line{}, false
		}
	}
	return NewLine(l.Start.Add(d.Mul(t0)), l.Start.Add(d.Mul(t1))), true
}

// RayToRegion returns the point where the ray from p along dir leaves r.
// A zero dir, or a p outside r in the direction of travel, returns p.
func RayToRegion(p, dir Point, r Region) Point {
	t := math.Inf(1)
	switch {
	case dir.X > 0:
		t = math.Min(t, (r.X.Hi-p.X)/dir.X)
	case dir.X < 0:
		t = math.Min(t, (r.X.Lo-p.X)/dir.X)
	}
	switch {
	case dir.Y > 0:
		t = math.Min(t, (r.Y.Hi-p.Y)/dir.Y)
	case dir.Y < 0:
		t = math.Min(t, (r.Y.Lo-p.Y)/dir.Y)
	}
	if math.IsInf(t, 1) || t <= 0 {
		return p
	}
	return p.Add(dir.Mul(t))
}
