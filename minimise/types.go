package minimise

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/axialmap/progress"
)

var (
	// ErrNilMap indicates a nil map or a map without a line graph.
	ErrNilMap = errors.New("minimise: map is nil")

	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("minimise: invalid option supplied")
)

// State is the reduction status of one line.
type State int8

const (
	// Live lines may still be removed.
	Live State = iota
	// Vital lines are kept.
	Vital
	// Removed lines are gone.
	Removed
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Live:
		return "live"
	case Vital:
		return "vital"
	case Removed:
		return "removed"
	default:
		return fmt.Sprintf("State(%d)", int8(s))
	}
}

// Result of a reduction. Line ids refer to the input map's graph.
type Result struct {
	// Subsets lists the lines left after Phase A, ascending.
	Subsets []int
	// Minimal lists the lines left after Phase B, ascending.
	Minimal []int
	// States holds every line's final state.
	States []State
}

// Option configures Reduce.
type Option func(*Options)

// Options holds the progress settings of a reduction.
type Options struct {
	Communicator progress.Communicator
	PollInterval time.Duration

	err error
}

// DefaultOptions returns a nop communicator polled every 500 ms.
func DefaultOptions() Options {
	return Options{PollInterval: progress.DefaultInterval}
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
