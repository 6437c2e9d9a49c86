package axialmap

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/axialmap/config"
	"github.com/katalvlaran/axialmap/progress"
)

// ErrOptionViolation indicates an invalid Option.
var ErrOptionViolation = errors.New("axialmap: invalid option supplied")

// Option configures the pipeline entry points.
type Option func(*Options)

// Options holds the resolved pipeline configuration.
type Options struct {
	// Settings are the tunables of every stage.
	Settings config.Settings
	// Communicator receives progress; nil reports nowhere.
	Communicator progress.Communicator

	err error
}

// DefaultOptions returns config.Default settings and no communicator.
func DefaultOptions() Options {
	return Options{Settings: config.Default()}
}

// WithSettings replaces every tunable at once. Invalid settings are rejected.
func WithSettings(s config.Settings) Option {
	return func(o *Options) {
		if err := s.Validate(); err != nil {
			o.err = fmt.Errorf("%w: %w", ErrOptionViolation, err)
			return
		}
		o.Settings = s
	}
}

// WithCommunicator sets the progress communicator.
func WithCommunicator(c progress.Communicator) Option {
	return func(o *Options) { o.Communicator = c }
}

// WithPollInterval sets how often progress is reported; negative values are rejected.
func WithPollInterval(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: poll interval cannot be negative (%v)", ErrOptionViolation, d)
			return
		}
		o.Settings.PollInterval = d
	}
}

// WithResolution fixes the resolution of every pixel index; 0 derives it.
func WithResolution(r int) Option {
	return func(o *Options) {
		if r < 0 {
			o.err = fmt.Errorf("%w: resolution cannot be negative (%d)", ErrOptionViolation, r)
			return
		}
		o.Settings.Resolution = r
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
