package allline

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/axialmap/explore"
	"github.com/katalvlaran/axialmap/geom"
	"github.com/katalvlaran/axialmap/progress"
	"github.com/katalvlaran/axialmap/shapegraph"
)

var (
	// ErrNoAxialLines indicates that nothing survived deduplication and cropping.
	ErrNoAxialLines = errors.New("allline: no axial lines found")

	// ErrNilResult indicates a nil exploration result.
	ErrNilResult = errors.New("allline: exploration result is nil")

	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("allline: invalid option supplied")
)

// DefaultCropMargin grows the region by 1% of its larger side before cropping.
const DefaultCropMargin = 0.01

// Segment is a radial segment: the wedge between radial lines A and B of
// one corner, A's angle below B's. A and B index Map.Radials.
type Segment struct {
	A, B int
}

// Map is an all-line map.
type Map struct {
	// Graph holds the axial lines and their connections.
	Graph *shapegraph.Graph
	// Region is the region the map was built for.
	Region geom.Region
	// Radials sorted by key.
	Radials []explore.RadialLine
	// Segments in order of their A radial.
	Segments []Segment
	// Divisors[r] lists the lines cutting radial r, ascending.
	Divisors [][]int
	// Divisions[l] lists the segments line l covers, ascending.
	Divisions [][]int
}

// Option configures Assemble.
type Option func(*Options)

// Options holds the assembler's tunables.
type Options struct {
	Communicator progress.Communicator
	PollInterval time.Duration

	// DedupScale times max(width,height) is the merge tolerance.
	DedupScale float64
	// CropMargin times max(width,height) is added to each side before cropping.
	CropMargin float64
	// Resolution of the shape index; 0 derives it from the line count.
	Resolution int

	err error
}

// DefaultOptions returns ToleranceB merging, a 1% crop margin and a 500 ms poll.
func DefaultOptions() Options {
	return Options{
		PollInterval: progress.DefaultInterval,
		DedupScale:   geom.ToleranceB,
		CropMargin:   DefaultCropMargin,
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

// WithDedupScale overrides the merge tolerance scale; it must be non-negative.
func WithDedupScale(s float64) Option {
	return func(o *Options) {
		if !(s >= 0) {
			o.err = fmt.Errorf("%w: dedup scale must be non-negative (%g)", ErrOptionViolation, s)
			return
		}
		o.DedupScale = s
	}
}

// WithCropMargin overrides the crop margin factor; it must be non-negative.
func WithCropMargin(m float64) Option {
	return func(o *Options) {
		if !(m >= 0) {
			o.err = fmt.Errorf("%w: crop margin must be non-negative (%g)", ErrOptionViolation, m)
			return
		}
		o.CropMargin = m
	}
}

// WithResolution fixes the shape index resolution.
func WithResolution(r int) Option {
	return func(o *Options) {
		if r < 0 {
			o.err = fmt.Errorf("%w: resolution cannot be negative (%d)", ErrOptionViolation, r)
			return
		}
		o.Resolution = r
	}
}
