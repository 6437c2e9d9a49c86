package pixel

import (
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	"github.com/katalvlaran/axialmap/geom"
)

// Grid lays Cols×Rows square cells over a region, anchored at its low corner.
type Grid struct {
	Cols, Rows int

	origin geom.Point
	size   float64
}

// NewGrid builds a grid over region. The longer side is split into
// Resolution cells; the shorter one gets however many cells of the same size
// it needs (at least one).
// Returns ErrEmptyRegion for an empty or degenerate region and
// ErrOptionViolation for bad options.
func NewGrid(region geom.Region, opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	m := geom.MaxDim(region)
	if region.IsEmpty() || !(m > 0) || math.IsInf(m, 0) {
		return nil, ErrEmptyRegion
	}
	size := m / float64(o.Resolution)
	cols := int(math.Ceil(region.X.Length() / size))
	rows := int(math.Ceil(region.Y.Length() / size))

	return &Grid{
		Cols:   max(cols, 1),
		Rows:   max(rows, 1),
		origin: region.Lo(),
		size:   size,
	}, nil
}

// CellSize returns the side length of one cell.
func (g *Grid) CellSize() float64 { return g.size }

// Bounds returns the rectangle actually covered by the cells.
func (g *Grid) Bounds() geom.Region {
	return r2.Rect{
		X: r1.Interval{Lo: g.origin.X, Hi: g.origin.X + float64(g.Cols)*g.size},
		Y: r1.Interval{Lo: g.origin.Y, Hi: g.origin.Y + float64(g.Rows)*g.size},
	}
}

// Len returns the number of cells.
func (g *Grid) Len() int { return g.Cols * g.Rows }

// InBounds reports whether c addresses a cell of the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Cols && c.Y >= 0 && c.Y < g.Rows
}

// Index maps (x,y) to the row-major index y*Cols + x.
func (g *Grid) Index(x, y int) int { return y*g.Cols + x }

// Coordinate converts a row-major index back to its cell.
func (g *Grid) Coordinate(idx int) Cell { return Cell{X: idx % g.Cols, Y: idx / g.Cols} }

// CellOf returns the cell containing p. Points outside the grid are clamped
// to the nearest edge cell.
func (g *Grid) CellOf(p geom.Point) Cell {
	return Cell{
		X: clamp(int(math.Floor((p.X-g.origin.X)/g.size)), g.Cols),
		Y: clamp(int(math.Floor((p.Y-g.origin.Y)/g.size)), g.Rows),
	}
}

func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

// near returns the cells of p plus any neighbour cell within a sliver of a
// cell width, so points computed on a cell border land on both sides.
func (g *Grid) near(p geom.Point) []Cell {
	eps := g.size * 1e-6
	out := make([]Cell, 0, 4)
	for _, d := range [4][2]float64{{-eps, -eps}, {eps, -eps}, {-eps, eps}, {eps, eps}} {
		c := g.CellOf(geom.Pt(p.X+d[0], p.Y+d[1]))
		dup := false
		for _, o := range out {
			if o == c {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, c)
		}
	}
	return out
}

// Rasterise returns every cell the segment passes through, walking the
// lattice with a supercover DDA: when the segment crosses a cell corner
// exactly, both side cells are included. Cells near either endpoint are
// added too. The result may contain repeats.
//
// Complexity: O(Cols + Rows).
func (g *Grid) Rasterise(l geom.Line) []Cell {
	cells := append(g.near(l.Start), g.near(l.End)...)
	seg, ok := geom.CropLine(l, g.Bounds())
	if !ok {
		return cells
	}
	a, b := g.CellOf(seg.Start), g.CellOf(seg.End)
	cells = append(cells, a)
	if a == b {
		return cells
	}

	d := seg.Vector().Mul(1 / g.size)
	sx := (seg.Start.X - g.origin.X) / g.size
	sy := (seg.Start.Y - g.origin.Y) / g.size
	stepX, tMaxX, tDeltaX := axisStep(d.X, sx, a.X)
	stepY, tMaxY, tDeltaY := axisStep(d.Y, sy, a.Y)

	x, y := a.X, a.Y
	for guard := 2 * (g.Cols + g.Rows + 2); guard > 0 && (x != b.X || y != b.Y); guard-- {
		switch {
		case tMaxX < tMaxY:
			x += stepX
			tMaxX += tDeltaX
		case tMaxY < tMaxX:
			y += stepY
			tMaxY += tDeltaY
		default:
			for _, c := range [2]Cell{{x + stepX, y}, {x, y + stepY}} {
				if g.InBounds(c) {
					cells = append(cells, c)
				}
			}
			x += stepX
			y += stepY
			tMaxX += tDeltaX
			tMaxY += tDeltaY
		}
		c := Cell{X: x, Y: y}
		if !g.InBounds(c) {
			break
		}
		cells = append(cells, c)
	}
	return append(cells, b)
}

// axisStep sets up one axis of the DDA walk in cell units.
func axisStep(d, s float64, cell int) (step int, tMax, tDelta float64) {
	switch {
	case d > 0:
		return 1, (float64(cell+1) - s) / d, 1 / d
	case d < 0:
		return -1, (s - float64(cell)) / -d, 1 / -d
	default:
		return 0, math.Inf(1), math.Inf(1)
	}
}

// Ring returns the in-bounds cells at Chebyshev distance r from centre,
// top row first, then clockwise. Ring 0 is the centre itself.
func (g *Grid) Ring(centre Cell, r int) []Cell {
	if r == 0 {
		if g.InBounds(centre) {
			return []Cell{centre}
		}
		return nil
	}
	out := make([]Cell, 0, 8*r)
	add := func(x, y int) {
		if c := (Cell{X: x, Y: y}); g.InBounds(c) {
			out = append(out, c)
		}
	}
	x0, x1, y0, y1 := centre.X-r, centre.X+r, centre.Y-r, centre.Y+r
	for x := x0; x <= x1; x++ {
		add(x, y1)
	}
	for y := y1 - 1; y >= y0; y-- {
		add(x1, y)
	}
	for x := x1 - 1; x >= x0; x-- {
		add(x, y0)
	}
	for y := y0 + 1; y < y1; y++ {
		add(x0, y)
	}
	return out
}

// MaxRing returns the last ring around centre that still holds grid cells.
func (g *Grid) MaxRing(centre Cell) int {
	return max(centre.X, g.Cols-1-centre.X, centre.Y, g.Rows-1-centre.Y)
}
