package explore

import (
	"cmp"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/axialmap/geom"
	"github.com/katalvlaran/axialmap/polygon"
	"github.com/katalvlaran/axialmap/progress"
)

// Sentinel errors for exploration.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("explore: graph is nil")

	// ErrSeedUnclassifiable is returned when the vertex chosen for the seed
	// point cannot be classified from it.
	ErrSeedUnclassifiable = errors.New("explore: seed vertex cannot be classified")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("explore: invalid option supplied")
)

// Option configures Explore.
type Option func(*Options)

// Options holds the explorer's hooks and tunables.
type Options struct {
	// Communicator receives progress and may cancel; joined with the context.
	Communicator progress.Communicator

	// PollInterval rate-limits calls to the communicator; 0 polls every vertex.
	PollInterval time.Duration

	// OnVisit runs for every processed vertex; an error aborts the walk.
	OnVisit func(v polygon.Vertex) error

	// SingleSeed disables re-seeding from the seed point.
	SingleSeed bool

	err error
}

// DefaultOptions returns the 500 ms poll interval, re-seeding on and a no-op hook.
func DefaultOptions() Options {
	return Options{
		PollInterval: progress.DefaultInterval,
		OnVisit:      func(polygon.Vertex) error { return nil },
	}
}

// WithCommunicator sets the progress communicator.
func WithCommunicator(c progress.Communicator) Option {
	return func(o *Options) {
		if c != nil {
			o.Communicator = c
		}
	}
}

// WithPollInterval sets the polling interval; negative values are rejected.
func WithPollInterval(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: poll interval cannot be negative (%v)", ErrOptionViolation, d)
			return
		}
		o.PollInterval = d
	}
}

// WithOnVisit registers a hook run for each processed vertex.
func WithOnVisit(fn func(v polygon.Vertex) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithSingleSeed stops the walk when the open set first runs dry.
func WithSingleSeed() Option {
	return func(o *Options) { o.SingleSeed = true }
}

// Candidate is a prospective axial line with the convex corners it ends at.
type Candidate struct {
	Line        geom.Line
	KeyVertices []int
}

// RadialKey orders radial lines: by vertex key, then by angle from edge B,
// then short stubs before long ones.
type RadialKey struct {
	Vertex polygon.Key
	Angle  float64
	SegEnd bool
}

// Compare implements the radial ordering.
func (k RadialKey) Compare(o RadialKey) int {
	if c := k.Vertex.Compare(o.Vertex); c != 0 {
		return c
	}
	if c := cmp.Compare(k.Angle, o.Angle); c != 0 {
		return c
	}
	switch {
	case k.SegEnd == o.SegEnd:
		return 0
	case !k.SegEnd:
		return -1
	default:
		return 1
	}
}

// RadialLine is a sight line from a corner (KeyVertex) towards OpenSpace.
// A and B are the unit edge vectors of the corner, so angles can be measured
// the same way the key was.
type RadialLine struct {
	Key       RadialKey
	KeyVertex geom.Point
	OpenSpace geom.Point
	A, B      geom.Point
}

// PolyConnector is the segment form of a radial line.
type PolyConnector struct {
	Line geom.Line
	Key  RadialKey
}

// Result is everything an exploration produced. Radials and Connectors are
// parallel slices in discovery order.
type Result struct {
	Candidates []Candidate
	Radials    []RadialLine
	Connectors []PolyConnector
	Processed  int
}
