package shapegraph

import (
	"errors"
	"sync"

	"github.com/katalvlaran/axialmap/geom"
	"github.com/katalvlaran/axialmap/pixel"
)

var (
	// ErrLineNotFound indicates an id outside the arena.
	ErrLineNotFound = errors.New("shapegraph: line not found")

	// ErrNotConnected indicates a query that needs MakeConnections first.
	ErrNotConnected = errors.New("shapegraph: connections not built")
)

// Attributes are per-line values recomputed by MakeConnections.
type Attributes struct {
	Connectivity int
	LineLength   float64
}

// Option configures a Graph.
type Option func(g *Graph)

// WithResolution fixes the shape index resolution; 0 (the default) derives
// it from the number of lines.
func WithResolution(r int) Option {
	return func(g *Graph) {
		if r > 0 {
			g.resolution = r
		}
	}
}

// Graph is an arena of lines and their connections.
type Graph struct {
	mu sync.RWMutex // guards everything below

	region     geom.Region
	resolution int

	// Storage, indexed by line id
	lines []geom.Line
	keys  [][]int
	conns [][]int
	attrs []Attributes

	// Shape index, valid while built is true
	shapes *pixel.Buckets
	built  bool
}

// New creates an empty graph over region.
// Complexity: O(1).
func New(region geom.Region, opts ...Option) *Graph {
	g := &Graph{region: region}
	for _, opt := range opts {
		opt(g)
	}
	return g
}
