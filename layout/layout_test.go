package layout_test

import (
	"testing"

	"github.com/katalvlaran/axialmap/geom"
	"github.com/katalvlaran/axialmap/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectangle(t *testing.T) {
	walls, err := layout.Compose(layout.Rectangle(0, 0, 10, 6))
	require.NoError(t, err)
	assert.Equal(t, []geom.Line{
		geom.NewLine(geom.Pt(0, 0), geom.Pt(10, 0)),
		geom.NewLine(geom.Pt(10, 0), geom.Pt(10, 6)),
		geom.NewLine(geom.Pt(10, 6), geom.Pt(0, 6)),
		geom.NewLine(geom.Pt(0, 6), geom.Pt(0, 0)),
	}, walls)
}

func TestCompose_Order(t *testing.T) {
	walls, err := layout.Compose(
		layout.Rectangle(0, 0, 10, 6),
		layout.Wall(geom.Pt(7, 3), geom.Pt(3, 3)),
		layout.Block(geom.Pt(5, 3), 2, 2),
	)
	require.NoError(t, err)
	require.Len(t, walls, 9)
	assert.Equal(t, geom.NewLine(geom.Pt(3, 3), geom.Pt(7, 3)), walls[4], "canonical orientation")
	assert.Equal(t, geom.NewLine(geom.Pt(4, 2), geom.Pt(6, 2)), walls[5])

	again, err := layout.Compose(
		layout.Rectangle(0, 0, 10, 6),
		layout.Wall(geom.Pt(7, 3), geom.Pt(3, 3)),
		layout.Block(geom.Pt(5, 3), 2, 2),
	)
	require.NoError(t, err)
	assert.Equal(t, walls, again)
}

func TestPolygon(t *testing.T) {
	walls, err := layout.Compose(layout.Polygon(
		geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 4), geom.Pt(4, 4), geom.Pt(4, 10), geom.Pt(0, 10),
	))
	require.NoError(t, err)
	assert.Len(t, walls, 6)
	assert.Equal(t, geom.NewLine(geom.Pt(0, 10), geom.Pt(0, 0)), walls[5], "closed")
}

func TestBlockGrid(t *testing.T) {
	walls, err := layout.Compose(layout.BlockGrid(2, 3, 4, 2))
	require.NoError(t, err)
	require.Len(t, walls, 4+2*3*4)

	r := geom.RegionOf(walls)
	assert.Equal(t, 12.0, r.X.Hi)
	assert.Equal(t, 8.0, r.Y.Hi)
	assert.Equal(t, geom.NewLine(geom.Pt(1, 1), geom.Pt(3, 1)), walls[4], "first block in the first cell")
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		con  layout.Constructor
		want error
	}{
		{"flat rectangle", layout.Rectangle(0, 0, 0, 5), layout.ErrDegenerate},
		{"empty block", layout.Block(geom.Pt(1, 1), 0, 1), layout.ErrDegenerate},
		{"point wall", layout.Wall(geom.Pt(1, 1), geom.Pt(1, 1)), layout.ErrDegenerate},
		{"two-point polygon", layout.Polygon(geom.Pt(0, 0), geom.Pt(1, 0)), layout.ErrTooFewCells},
		{"repeated polygon point", layout.Polygon(geom.Pt(0, 0), geom.Pt(0, 0), geom.Pt(1, 1)), layout.ErrDegenerate},
		{"no rows", layout.BlockGrid(0, 2, 4, 2), layout.ErrTooFewCells},
		{"blocks fill the cells", layout.BlockGrid(1, 1, 4, 4), layout.ErrDegenerate},
		{"nil", nil, layout.ErrConstructFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			walls, err := layout.Compose(tt.con)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, walls)
		})
	}
}
