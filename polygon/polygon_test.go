package polygon_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/axialmap/geom"
	"github.com/katalvlaran/axialmap/polygon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rect(x0, y0, x1, y1 float64) []geom.Line {
	a, b, c, d := geom.Pt(x0, y0), geom.Pt(x1, y0), geom.Pt(x1, y1), geom.Pt(x0, y1)
	return []geom.Line{geom.NewLine(a, b), geom.NewLine(b, c), geom.NewLine(c, d), geom.NewLine(d, a)}
}

func build(t *testing.T, lines []geom.Line, opts ...polygon.Option) *polygon.Graph {
	t.Helper()
	g, err := polygon.Build(lines, geom.RegionOf(lines), opts...)
	require.NoError(t, err)
	return g
}

func index(t *testing.T, g *polygon.Graph, x, y float64) int {
	t.Helper()
	i, ok := g.Lookup(geom.Pt(x, y))
	require.True(t, ok, "no vertex at (%g,%g)", x, y)
	return i
}

func TestBuild_Rectangle(t *testing.T) {
	g := build(t, rect(0, 0, 10, 6))
	require.Equal(t, 4, g.Len())
	assert.Equal(t, geom.Pt(0, 0), g.Point(0))
	assert.Equal(t, geom.Pt(0, 6), g.Point(1))
	assert.Equal(t, geom.Pt(10, 0), g.Point(2))
	assert.Equal(t, geom.Pt(10, 6), g.Point(3))

	assert.Equal(t, []int{1, 2}, g.Neighbours(0))
	assert.Equal(t, []int{1, 2}, g.Neighbours(3))
	assert.Equal(t, 1, g.Components())
	assert.Len(t, g.Walls(), 4)
}

func TestBuild_Errors(t *testing.T) {
	_, err := polygon.Build(nil, geom.RegionOf(nil))
	assert.ErrorIs(t, err, polygon.ErrNoLines)

	bad := append(rect(0, 0, 10, 6), geom.Line{Start: geom.Pt(1, 1), End: geom.Pt(math.NaN(), 2)})
	_, err = polygon.Build(bad, geom.RegionOf(rect(0, 0, 10, 6)))
	assert.ErrorIs(t, err, polygon.ErrUnresolvedVertex)

	_, err = polygon.Build(rect(0, 0, 1, 1), geom.RegionOf(nil), polygon.WithParallelThreshold(2))
	assert.ErrorIs(t, err, polygon.ErrOptionViolation)
}

func TestBuild_Components(t *testing.T) {
	lines := append(rect(0, 0, 10, 6), rect(4, 2, 6, 4)...)
	g := build(t, lines)
	assert.Equal(t, 2, g.Components())
	assert.NotEqual(t, g.Poly(index(t, g, 0, 0)), g.Poly(index(t, g, 4, 2)))
	assert.Equal(t, g.Poly(index(t, g, 4, 2)), g.Poly(index(t, g, 6, 4)))
}

func TestClassify_ConvexRoomCorner(t *testing.T) {
	g := build(t, rect(0, 0, 10, 6))
	v := g.Classify(0, geom.Pt(5, 3))
	require.True(t, v.Initialised)
	assert.True(t, v.Convex)
	assert.True(t, v.Axial)
	assert.True(t, v.Clockwise)
	assert.Equal(t, polygon.Key{Ref: 0, RefA: 1, RefB: 2}, v.Key())

	assert.True(t, v.Visible(geom.Pt(10, 6)))
	assert.False(t, v.Visible(geom.Pt(10, 0)), "along an edge")
	assert.False(t, v.Visible(geom.Pt(0, 6)), "along an edge")
	assert.False(t, v.Visible(geom.Pt(-3, -1)), "behind the corner")
	assert.True(t, v.EligibleToward(geom.Pt(10, 6)))
}

func TestClassify_ConcaveBlockCorner(t *testing.T) {
	lines := append(rect(0, 0, 10, 6), rect(4, 2, 6, 4)...)
	g := build(t, lines)
	corner := index(t, g, 4, 2)

	// looking straight at the corner: the continuation runs into the block
	v := g.Classify(corner, geom.Pt(0, 0))
	require.True(t, v.Initialised)
	assert.False(t, v.Convex)
	assert.False(t, v.Axial)

	// from the side the line can graze the corner
	v = g.Classify(corner, geom.Pt(0, 3))
	require.True(t, v.Initialised)
	assert.False(t, v.Convex)
	assert.True(t, v.Axial)
	assert.Equal(t, index(t, g, 6, 2), v.RefA)
	assert.Equal(t, index(t, g, 4, 4), v.RefB)

	assert.False(t, v.Visible(geom.Pt(6, 4)), "inside the block")
	assert.True(t, v.Visible(geom.Pt(4, 4)), "along an edge")
	assert.True(t, v.Visible(geom.Pt(8, 1)))
	assert.True(t, v.EligibleToward(geom.Pt(0, 3)))
	assert.False(t, v.EligibleToward(geom.Pt(0, 0)))
}

func TestClassify_Rejections(t *testing.T) {
	g := build(t, rect(0, 0, 10, 6))
	// open space on the supporting line of an edge
	assert.False(t, g.Classify(0, geom.Pt(5, 0)).Initialised)
	// open space at the vertex itself
	assert.False(t, g.Classify(0, geom.Pt(0, 0)).Initialised)

	// a straight joint: |a·b| = 1
	straight := []geom.Line{
		geom.NewLine(geom.Pt(0, 0), geom.Pt(5, 0)),
		geom.NewLine(geom.Pt(5, 0), geom.Pt(10, 0)),
	}
	g = build(t, straight)
	assert.False(t, g.Classify(index(t, g, 5, 0), geom.Pt(5, 3)).Initialised)
}

func TestClassify_FreeEnds(t *testing.T) {
	wall := []geom.Line{geom.NewLine(geom.Pt(0, 0), geom.Pt(4, 0))}
	r := geom.RegionOf(rect(-5, -5, 10, 5))

	g, err := polygon.Build(wall, r)
	require.NoError(t, err)
	assert.False(t, g.Classify(1, geom.Pt(6, 2)).Initialised)

	g, err = polygon.Build(wall, r, polygon.WithFreeEnds(true))
	require.NoError(t, err)
	end := g.Classify(1, geom.Pt(6, 2))
	require.True(t, end.Initialised)
	assert.True(t, end.FreeEnd())
	assert.False(t, end.Convex)
	assert.True(t, end.Axial)
	assert.Equal(t, polygon.Key{Ref: 1, RefA: 0, RefB: 0}, end.Key())
	assert.True(t, end.Visible(geom.Pt(0, 3)))
	assert.True(t, end.EligibleToward(geom.Pt(6, 2)))

	inLine := g.Classify(1, geom.Pt(8, 0))
	require.True(t, inLine.Initialised)
	assert.False(t, inLine.Axial)
	assert.False(t, inLine.EligibleToward(geom.Pt(8, 0)), "would run into the wall")

	assert.False(t, g.Classify(1, geom.Pt(2, 0)).Initialised, "viewed from the wall itself")
}

func TestBlocked(t *testing.T) {
	lines := append(rect(0, 0, 10, 6),
		geom.NewLine(geom.Pt(3, 3), geom.Pt(7, 3)),
		geom.NewLine(geom.Pt(8, 0), geom.Pt(8, 2)),
		geom.NewLine(geom.Pt(8, 2), geom.Pt(8, 4)),
	)
	g := build(t, lines)

	assert.True(t, g.Blocked(geom.NewLine(geom.Pt(0, 0), geom.Pt(10, 6))), "crosses the free wall")
	assert.False(t, g.Blocked(geom.NewLine(geom.Pt(0, 0), geom.Pt(7, 3))), "touches its end")
	assert.False(t, g.Blocked(geom.NewLine(geom.Pt(3, 3), geom.Pt(7, 3))), "runs along it")
	assert.False(t, g.Blocked(geom.NewLine(geom.Pt(0, 0), geom.Pt(10, 0))), "runs along the room wall")
	assert.True(t, g.Blocked(geom.NewLine(geom.Pt(7, 2), geom.Pt(9, 2))), "through a straight joint")
	assert.False(t, g.Blocked(geom.NewLine(geom.Pt(7, 5), geom.Pt(9, 5))), "above everything")
}

func TestExtend(t *testing.T) {
	lines := append(rect(0, 0, 10, 6), geom.NewLine(geom.Pt(7, 1), geom.Pt(7, 5)))
	g := build(t, lines)

	p := g.Extend(geom.Pt(5, 3), geom.Pt(1, 0))
	assert.InDelta(t, 7.0, p.X, 1e-9)
	assert.InDelta(t, 3.0, p.Y, 1e-9)

	p = g.Extend(geom.Pt(5, 3), geom.Pt(-2, 0))
	assert.InDelta(t, 0.0, p.X, 1e-9)

	// starting on a wall does not stop the ray at once
	p = g.Extend(geom.Pt(7, 3), geom.Pt(1, 0))
	assert.InDelta(t, 10.0, p.X, 1e-9)
}

func TestSeedVertex(t *testing.T) {
	g := build(t, rect(0, 0, 10, 6))
	seed := geom.Pt(5, 3)
	i, err := g.SeedVertex(seed)
	require.NoError(t, err)
	assert.True(t, g.Classify(i, seed).Initialised)

	assert.Len(t, g.VisibleFrom(seed), 4)

	lone := []geom.Line{geom.NewLine(geom.Pt(0, 0), geom.Pt(4, 0))}
	g = build(t, lone)
	_, err = g.SeedVertex(geom.Pt(2, 1))
	assert.ErrorIs(t, err, polygon.ErrNoSeedVertex)
}

func TestSeedVertex_SkipsHidden(t *testing.T) {
	// the nearest corners lie behind the free wall
	lines := append(rect(0, 0, 10, 6), geom.NewLine(geom.Pt(1, 4), geom.Pt(9, 4)))
	g := build(t, lines)
	seed := geom.Pt(5, 3)
	i, err := g.SeedVertex(seed)
	require.NoError(t, err)
	assert.Less(t, g.Point(i).Y, 1.0, "only the bottom corners are visible")
	for _, v := range g.VisibleFrom(seed) {
		assert.Zero(t, g.Point(v).Y)
	}
}

func TestKeyCompare(t *testing.T) {
	a := polygon.Key{Ref: 1, RefA: 2, RefB: 3}
	assert.Zero(t, a.Compare(a))
	assert.Negative(t, a.Compare(polygon.Key{Ref: 1, RefA: 2, RefB: 4}))
	assert.Positive(t, a.Compare(polygon.Key{Ref: 0, RefA: 9, RefB: 9}))
}
