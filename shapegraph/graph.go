// File: graph.go
// Role: arena mutation (AddLine, MakeConnections, Subset) and queries.
// Determinism:
//   - ids are insertion order, Connections() ascending.
// Concurrency:
//   - readers take mu.RLock, mutators mu.Lock.

package shapegraph

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/axialmap/geom"
	"github.com/katalvlaran/axialmap/pixel"
)

// AddLine appends l with its key vertices and returns the new id.
// Connections become stale until the next MakeConnections.
// Complexity: O(k) for k key vertices.
func (g *Graph) AddLine(l geom.Line, keyVertices []int) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	keys := slices.Clone(keyVertices)
	slices.Sort(keys)
	g.lines = append(g.lines, l)
	g.keys = append(g.keys, slices.Compact(keys))
	g.conns = append(g.conns, nil)
	g.attrs = append(g.attrs, Attributes{LineLength: l.Length()})
	g.built = false
	return len(g.lines) - 1
}

// MakeConnections rebuilds the shape index and every adjacency list.
//
// Implementation:
//   - Stage 1: size a pixel grid over the (slightly grown) region and file
//     every line under the cells it passes through.
//   - Stage 2: for each line i, test each line j > i sharing a cell with it;
//     connect both ways when they intersect within ToleranceA·max(len).
//   - Stage 3: sort the lists and refresh the attributes.
//
// Errors:
//   - pixel.ErrEmptyRegion (wrapped) when there are lines but the region
//     cannot be indexed.
//
// Complexity: O(L·(Cols+Rows) + P).
func (g *Graph) MakeConnections() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i := range g.conns {
		g.conns[i] = nil
	}
	if len(g.lines) == 0 {
		g.shapes, g.built = nil, true
		return nil
	}

	res := g.resolution
	if res == 0 {
		res = pixel.DefaultResolution(len(g.lines))
	}
	grid, err := pixel.NewGrid(geom.Grow(g.region, geom.ToleranceC), pixel.WithResolution(res))
	if err != nil {
		return fmt.Errorf("shapegraph: MakeConnections: %w", err)
	}
	shapes := pixel.NewBuckets(grid)
	for i, l := range g.lines {
		shapes.AddLine(l, i)
	}

	for i, li := range g.lines {
		for _, j := range shapes.AlongLine(li) {
			if j <= i {
				continue
			}
			lj := g.lines[j]
			tol := geom.ToleranceA * math.Max(li.Length(), lj.Length())
			if geom.Intersects(li, lj, tol) {
				g.conns[i] = append(g.conns[i], j)
				g.conns[j] = append(g.conns[j], i)
			}
		}
	}
	for i := range g.conns {
		slices.Sort(g.conns[i])
		g.attrs[i] = Attributes{Connectivity: len(g.conns[i]), LineLength: g.lines[i].Length()}
	}
	g.shapes, g.built = shapes, true
	return nil
}

// Subset returns a fresh graph over the same region holding the lines ids
// (in the given order, renumbered from 0) with rebuilt connections.
// Returns ErrLineNotFound for an unknown id.
func (g *Graph) Subset(ids []int) (*Graph, error) {
	g.mu.RLock()
	out := New(g.region, WithResolution(g.resolution))
	for _, id := range ids {
		if id < 0 || id >= len(g.lines) {
			g.mu.RUnlock()
			return nil, fmt.Errorf("%w: %d", ErrLineNotFound, id)
		}
		out.AddLine(g.lines[id], g.keys[id])
	}
	g.mu.RUnlock()

	if err := out.MakeConnections(); err != nil {
		return nil, err
	}
	return out, nil
}

// Len returns the number of lines.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.lines)
}

// Region returns the region the graph covers.
func (g *Graph) Region() geom.Region { return g.region }

// Line returns line i. It panics if i is out of range, like a slice index.
func (g *Graph) Line(i int) geom.Line {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.lines[i]
}

// Lines returns a copy of every line in id order.
func (g *Graph) Lines() []geom.Line {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return slices.Clone(g.lines)
}

// KeyVertices returns the sorted key vertices of line i. The slice must not
// be modified.
func (g *Graph) KeyVertices(i int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.keys[i]
}

// Connections returns the ascending ids of the lines meeting line i.
// The slice must not be modified.
func (g *Graph) Connections(i int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.conns[i]
}

// Degree returns len(Connections(i)).
func (g *Graph) Degree(i int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.conns[i])
}

// Connected reports whether lines i and j meet. Complexity: O(log d).
func (g *Graph) Connected(i, j int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := slices.BinarySearch(g.conns[i], j)
	return ok
}

// Attributes returns the attributes of line i.
func (g *Graph) Attributes(i int) Attributes {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.attrs[i]
}

// Built reports whether the connections reflect every added line.
func (g *Graph) Built() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.built
}

// PixelShapes returns the ids filed under cell c of the shape index.
// Returns ErrNotConnected before MakeConnections.
func (g *Graph) PixelShapes(c pixel.Cell) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.built {
		return nil, ErrNotConnected
	}
	if g.shapes == nil {
		return nil, nil
	}
	return g.shapes.At(c), nil
}

// Rasterise returns the cells of the shape index that l passes through.
// Returns ErrNotConnected before MakeConnections.
func (g *Graph) Rasterise(l geom.Line) ([]pixel.Cell, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.built {
		return nil, ErrNotConnected
	}
	if g.shapes == nil {
		return nil, nil
	}
	return g.shapes.Grid().Rasterise(l), nil
}
