package polygon

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/axialmap/geom"
	"github.com/katalvlaran/axialmap/pixel"
)

// Graph is the vertex graph of a wall drawing. It is immutable once built
// and safe for concurrent reads.
type Graph struct {
	region geom.Region
	points []geom.Point // sorted by geom.Less
	edges  [][]int      // neighbour indices, ascending (i.e. by point)
	polys  []int        // component id per vertex
	walls  []geom.Line
	ncomp  int

	tol     float64 // length tolerance: ToleranceA·diagonal
	opts    BuildOptions
	verts   *pixel.Buckets
	wallIdx *pixel.Buckets
}

// Build constructs the graph of lines inside region. An empty region is
// replaced by the bounding box of the lines.
// Returns ErrNoLines, ErrUnresolvedVertex, ErrOptionViolation, or a
// pixel error when the region cannot be indexed.
func Build(lines []geom.Line, region geom.Region, opts ...Option) (*Graph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(lines) == 0 {
		return nil, ErrNoLines
	}
	if region.IsEmpty() {
		region = geom.RegionOf(lines)
	}

	g := &Graph{region: region, opts: o, tol: geom.ToleranceA * geom.Diagonal(region)}
	if err := g.register(lines); err != nil {
		return nil, err
	}
	g.labelComponents()
	if err := g.index(); err != nil {
		return nil, fmt.Errorf("polygon: indexing: %w", err)
	}
	return g, nil
}

// register resolves endpoints to sorted vertex indices and links them.
func (g *Graph) register(lines []geom.Line) error {
	lookup := make(map[geom.Point]int, 2*len(lines))
	for _, l := range lines {
		for _, p := range [2]geom.Point{l.Start, l.End} {
			if _, ok := lookup[p]; !ok && finite(p) {
				lookup[p] = len(g.points)
				g.points = append(g.points, p)
			}
		}
	}
	slices.SortFunc(g.points, geom.Compare)
	for i, p := range g.points {
		lookup[p] = i
	}

	g.edges = make([][]int, len(g.points))
	for _, l := range lines {
		i, ok := lookup[l.Start]
		j, ok2 := lookup[l.End]
		if !ok || !ok2 {
			return fmt.Errorf("%w: segment %v–%v", ErrUnresolvedVertex, l.Start, l.End)
		}
		if i == j {
			continue
		}
		g.edges[i] = append(g.edges[i], j)
		g.edges[j] = append(g.edges[j], i)
		g.walls = append(g.walls, geom.NewLine(l.Start, l.End))
	}
	for i := range g.edges {
		slices.Sort(g.edges[i])
		g.edges[i] = slices.Compact(g.edges[i])
	}
	return nil
}

func finite(p geom.Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// labelComponents flood-fills the edge graph; vertices of one polygon share an id.
func (g *Graph) labelComponents() {
	g.polys = make([]int, len(g.points))
	for i := range g.polys {
		g.polys[i] = -1
	}
	for i0 := range g.points {
		if g.polys[i0] >= 0 {
			continue
		}
		id := g.ncomp
		g.ncomp++
		queue := []int{i0}
		g.polys[i0] = id
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range g.edges[queue[qi]] {
				if g.polys[v] < 0 {
					g.polys[v] = id
					queue = append(queue, v)
				}
			}
		}
	}
}

func (g *Graph) index() error {
	res := g.opts.Resolution
	if res == 0 {
		res = pixel.DefaultResolution(len(g.walls))
	}
	grid, err := pixel.NewGrid(geom.Grow(g.region, geom.ToleranceC), pixel.WithResolution(res))
	if err != nil {
		return err
	}
	g.verts = pixel.NewBuckets(grid)
	for i, p := range g.points {
		g.verts.AddPoint(p, i)
	}
	g.wallIdx = pixel.NewBuckets(grid)
	for i, w := range g.walls {
		g.wallIdx.AddLine(w, i)
	}
	return nil
}

// Len returns the number of vertices.
func (g *Graph) Len() int { return len(g.points) }

// Point returns the location of vertex i.
func (g *Graph) Point(i int) geom.Point { return g.points[i] }

// Neighbours returns the sorted neighbour indices of vertex i.
// The slice must not be modified.
func (g *Graph) Neighbours(i int) []int { return g.edges[i] }

// Poly returns the component (polygon) id of vertex i.
func (g *Graph) Poly(i int) int { return g.polys[i] }

// Components returns the number of polygons.
func (g *Graph) Components() int { return g.ncomp }

// Walls returns the registered wall segments. The slice must not be modified.
func (g *Graph) Walls() []geom.Line { return g.walls }

// Region returns the region the graph was built over.
func (g *Graph) Region() geom.Region { return g.region }

// Tolerance returns the length tolerance used by the graph's predicates.
func (g *Graph) Tolerance() float64 { return g.tol }

// Lookup returns the index of the vertex at p, if any. Complexity: O(log V).
func (g *Graph) Lookup(p geom.Point) (int, bool) {
	return slices.BinarySearchFunc(g.points, p, geom.Compare)
}
