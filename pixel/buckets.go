package pixel

import (
	"slices"

	"github.com/katalvlaran/axialmap/geom"
)

// Buckets stores integer ids per grid cell.
// Ids must be added one owner at a time (all cells of id 3, then id 4...)
// for the per-cell de-duplication to hold.
type Buckets struct {
	grid  *Grid
	cells [][]int
}

// NewBuckets returns empty buckets over g.
func NewBuckets(g *Grid) *Buckets {
	return &Buckets{grid: g, cells: make([][]int, g.Len())}
}

// Grid returns the lattice the buckets are laid over.
func (b *Buckets) Grid() *Grid { return b.grid }

// Add files id under cell c; out-of-bounds cells are ignored.
func (b *Buckets) Add(c Cell, id int) {
	if !b.grid.InBounds(c) {
		return
	}
	i := b.grid.Index(c.X, c.Y)
	s := b.cells[i]
	if n := len(s); n > 0 && s[n-1] == id {
		return
	}
	b.cells[i] = append(s, id)
}

// AddLine files id under every cell the segment passes through.
func (b *Buckets) AddLine(l geom.Line, id int) {
	for _, c := range b.grid.Rasterise(l) {
		b.Add(c, id)
	}
}

// AddPoint files id under the cell of p (and any border neighbour).
func (b *Buckets) AddPoint(p geom.Point, id int) {
	for _, c := range b.grid.near(p) {
		b.Add(c, id)
	}
}

// At returns the ids filed under c. The slice must not be modified.
func (b *Buckets) At(c Cell) []int {
	if !b.grid.InBounds(c) {
		return nil
	}
	return b.cells[b.grid.Index(c.X, c.Y)]
}

// Gather returns the distinct ids filed under any of cells, ascending.
func (b *Buckets) Gather(cells []Cell) []int {
	var out []int
	for _, c := range cells {
		out = append(out, b.At(c)...)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// AlongLine returns the distinct ids filed under the cells of l, ascending.
func (b *Buckets) AlongLine(l geom.Line) []int {
	return b.Gather(b.grid.Rasterise(l))
}
