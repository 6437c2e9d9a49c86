package geom_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/axialmap/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLine_Normalises(t *testing.T) {
	l := geom.NewLine(geom.Pt(3, 1), geom.Pt(1, 5))
	assert.Equal(t, geom.Pt(1, 5), l.Start)
	assert.Equal(t, geom.Pt(3, 1), l.End)

	// equal x falls back to y
	l = geom.NewLine(geom.Pt(2, 9), geom.Pt(2, 4))
	assert.Equal(t, geom.Pt(2, 4), l.Start)
	assert.InDelta(t, 5.0, l.Length(), 1e-12)
}

func TestIntersectDistinguish(t *testing.T) {
	base := geom.NewLine(geom.Pt(0, 0), geom.Pt(10, 0))
	tol := 1e-9

	cases := []struct {
		name string
		l    geom.Line
		want geom.Intersection
	}{
		{"cross", geom.NewLine(geom.Pt(5, -1), geom.Pt(5, 1)), geom.Crossing},
		{"endpoint touch", geom.NewLine(geom.Pt(10, 0), geom.Pt(12, 3)), geom.Touching},
		{"t-junction", geom.NewLine(geom.Pt(4, 0), geom.Pt(4, 3)), geom.Touching},
		{"collinear overlap", geom.NewLine(geom.Pt(8, 0), geom.Pt(14, 0)), geom.Touching},
		{"apart", geom.NewLine(geom.Pt(0, 1), geom.Pt(10, 1)), geom.NoIntersection},
		{"beyond end", geom.NewLine(geom.Pt(11, -1), geom.Pt(11, 1)), geom.NoIntersection},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, geom.IntersectDistinguish(base, tc.l, tol))
			assert.Equal(t, tc.want, geom.IntersectDistinguish(tc.l, base, tol))
			assert.Equal(t, tc.want != geom.NoIntersection, geom.Intersects(base, tc.l, tol))
		})
	}
}

func TestIntersectDistinguish_ToleranceTouch(t *testing.T) {
	base := geom.NewLine(geom.Pt(0, 0), geom.Pt(10, 0))
	near := geom.NewLine(geom.Pt(5, 1e-7), geom.Pt(5, 3))
	assert.Equal(t, geom.NoIntersection, geom.IntersectDistinguish(base, near, 1e-9))
	assert.Equal(t, geom.Touching, geom.IntersectDistinguish(base, near, 1e-6))
}

func TestIntersectionPoint(t *testing.T) {
	p, ok := geom.IntersectionPoint(
		geom.NewLine(geom.Pt(0, 0), geom.Pt(10, 10)),
		geom.NewLine(geom.Pt(0, 10), geom.Pt(10, 0)),
	)
	require.True(t, ok)
	assert.InDelta(t, 5.0, p.X, 1e-12)
	assert.InDelta(t, 5.0, p.Y, 1e-12)

	_, ok = geom.IntersectionPoint(
		geom.NewLine(geom.Pt(0, 0), geom.Pt(10, 0)),
		geom.NewLine(geom.Pt(0, 1), geom.Pt(10, 1)),
	)
	assert.False(t, ok)
}

func TestSide_And_Distance(t *testing.T) {
	l := geom.NewLine(geom.Pt(0, 0), geom.Pt(4, 0))
	assert.InDelta(t, 2.0, geom.Side(l, geom.Pt(1, 2)), 1e-12)
	assert.InDelta(t, -3.0, geom.Side(l, geom.Pt(1, -3)), 1e-12)
	assert.InDelta(t, 5.0, geom.DistanceToPoint(l, geom.Pt(7, 4)), 1e-12)
	assert.InDelta(t, 1.0, geom.DistanceToPoint(l, geom.Pt(2, 1)), 1e-12)
}

func TestSweepAngle(t *testing.T) {
	x, y := geom.Pt(1, 0), geom.Pt(0, 1)
	assert.InDelta(t, math.Pi/2, geom.SweepAngle(x, y), 1e-12)
	assert.InDelta(t, 3*math.Pi/2, geom.SweepAngle(y, x), 1e-12)
	assert.InDelta(t, 0, geom.SweepAngle(x, x), 1e-12)
}

func TestRegionHelpers(t *testing.T) {
	lines := []geom.Line{
		geom.NewLine(geom.Pt(0, 0), geom.Pt(6, 0)),
		geom.NewLine(geom.Pt(6, 0), geom.Pt(6, 8)),
	}
	r := geom.RegionOf(lines)
	assert.Equal(t, geom.Pt(0, 0), r.Lo())
	assert.Equal(t, geom.Pt(6, 8), r.Hi())
	assert.InDelta(t, 10.0, geom.Diagonal(r), 1e-12)
	assert.InDelta(t, 8.0, geom.MaxDim(r), 1e-12)

	g := geom.Grow(r, 0.5)
	assert.InDelta(t, -4.0, g.X.Lo, 1e-12)
	assert.InDelta(t, 12.0, g.Y.Hi, 1e-12)

	assert.True(t, geom.RegionOf(nil).IsEmpty())
	assert.Zero(t, geom.MaxDim(geom.RegionOf(nil)))
}

func TestCropLine(t *testing.T) {
	r := geom.RegionOf([]geom.Line{geom.NewLine(geom.Pt(0, 0), geom.Pt(10, 10))})

	inside := geom.NewLine(geom.Pt(1, 1), geom.Pt(9, 2))
	got, ok := geom.CropLine(inside, r)
	require.True(t, ok)
	assert.Equal(t, inside, got)

	got, ok = geom.CropLine(geom.NewLine(geom.Pt(-5, 5), geom.Pt(15, 5)), r)
	require.True(t, ok)
	assert.True(t, geom.LinesApproxEq(geom.NewLine(geom.Pt(0, 5), geom.Pt(10, 5)), got, 1e-12))

	_, ok = geom.CropLine(geom.NewLine(geom.Pt(11, 0), geom.Pt(15, 5)), r)
	assert.False(t, ok)
}

func TestRayToRegion(t *testing.T) {
	r := geom.RegionOf([]geom.Line{geom.NewLine(geom.Pt(0, 0), geom.Pt(10, 6))})
	p := geom.RayToRegion(geom.Pt(5, 3), geom.Pt(1, 0), r)
	assert.InDelta(t, 10.0, p.X, 1e-12)
	assert.InDelta(t, 3.0, p.Y, 1e-12)

	dir := geom.Pt(-1, -1).Normalize()
	p = geom.RayToRegion(geom.Pt(5, 3), dir, r)
	assert.InDelta(t, 2.0, p.X, 1e-9)
	assert.InDelta(t, 0.0, p.Y, 1e-9)

	assert.Equal(t, geom.Pt(5, 3), geom.RayToRegion(geom.Pt(5, 3), geom.Pt(0, 0), r))
}

func TestApproxEq(t *testing.T) {
	assert.True(t, geom.ApproxEq(geom.Pt(1, 1), geom.Pt(1+1e-10, 1-1e-10), 1e-9))
	assert.False(t, geom.ApproxEq(geom.Pt(1, 1), geom.Pt(1+1e-8, 1), 1e-9))
}
