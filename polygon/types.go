package polygon

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/katalvlaran/axialmap/geom"
)

// Sentinel errors for graph construction and seeding.
var (
	// ErrNoLines is returned by Build for an empty drawing.
	ErrNoLines = errors.New("polygon: no wall segments")

	// ErrUnresolvedVertex is returned when a segment endpoint cannot be
	// resolved to a registered vertex (for example a non-finite coordinate).
	ErrUnresolvedVertex = errors.New("polygon: endpoint does not resolve to a vertex")

	// ErrNoSeedVertex is returned when no vertex is visible and classifiable
	// from the seed point.
	ErrNoSeedVertex = errors.New("polygon: no classifiable vertex visible from seed point")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("polygon: invalid option supplied")
)

// DefaultParallelThreshold rejects corners whose two edges are this close to
// parallel (|a·b| above it): straight continuations and spikes.
const DefaultParallelThreshold = 0.999

// Option configures Build.
type Option func(*BuildOptions)

// BuildOptions holds the tunables of the polygon graph.
type BuildOptions struct {
	// Resolution of the pixel indexes; 0 derives one from the segment count.
	Resolution int

	// FreeEnds lets the end of a free-standing wall be classified.
	FreeEnds bool

	// ParallelThreshold is the |a·b| above which a corner is rejected.
	ParallelThreshold float64

	err error
}

// DefaultOptions returns derived resolution, no free ends and the 0.999 threshold.
func DefaultOptions() BuildOptions {
	return BuildOptions{ParallelThreshold: DefaultParallelThreshold}
}

// WithResolution fixes the number of pixel cells along the longer side.
func WithResolution(r int) Option {
	return func(o *BuildOptions) {
		if r < 0 {
			o.err = fmt.Errorf("%w: resolution cannot be negative (%d)", ErrOptionViolation, r)
			return
		}
		o.Resolution = r
	}
}

// WithFreeEnds enables or disables classification of wall ends.
func WithFreeEnds(on bool) Option {
	return func(o *BuildOptions) { o.FreeEnds = on }
}

// WithParallelThreshold overrides the near-parallel rejection threshold,
// which must lie in (0, 1].
func WithParallelThreshold(t float64) Option {
	return func(o *BuildOptions) {
		if !(t > 0 && t <= 1) {
			o.err = fmt.Errorf("%w: parallel threshold must lie in (0,1] (%g)", ErrOptionViolation, t)
			return
		}
		o.ParallelThreshold = t
	}
}

// Key identifies a classified vertex: the vertex and the two neighbours
// bounding its open wedge. The same point seen through another wedge has
// another key.
type Key struct {
	Ref, RefA, RefB int
}

// Compare orders keys by Ref, then RefA, then RefB.
func (k Key) Compare(o Key) int {
	if c := cmp.Compare(k.Ref, o.Ref); c != 0 {
		return c
	}
	if c := cmp.Compare(k.RefA, o.RefA); c != 0 {
		return c
	}
	return cmp.Compare(k.RefB, o.RefB)
}

// Vertex is a graph vertex classified from a point of open space.
// A and B are unit vectors along the edges to RefA (angularly first,
// counter-clockwise from the viewing direction) and RefB (angularly last).
type Vertex struct {
	Ref, RefA, RefB int

	Point     geom.Point
	OpenSpace geom.Point
	A, B      geom.Point

	// Initialised is false when the vertex could not be classified;
	// every other field except Ref and the points is then meaningless.
	Initialised bool
	Convex      bool
	// Clockwise reports that the sweep from A to B through the open space
	// runs clockwise; classification guarantees it for every initialised vertex.
	Clockwise bool
	Axial     bool
}

// Key returns the identity of the classified vertex.
func (v Vertex) Key() Key { return Key{Ref: v.Ref, RefA: v.RefA, RefB: v.RefB} }

// FreeEnd reports whether v is the end of a free-standing wall.
func (v Vertex) FreeEnd() bool { return v.Initialised && v.RefA == v.RefB }
