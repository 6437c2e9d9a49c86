package pixel

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptyRegion indicates the region cannot be indexed.
	ErrEmptyRegion = errors.New("pixel: region must have a positive extent")
	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("pixel: invalid option supplied")
)

// Cell addresses one grid square by column and row.
type Cell struct {
	X, Y int
}

// Option configures a Grid.
type Option func(*GridOptions)

// GridOptions holds the grid's tunables.
type GridOptions struct {
	// Resolution is the number of cells along the region's longer side.
	Resolution int

	err error
}

// DefaultOptions returns a single-cell grid; callers normally size it with
// WithResolution(DefaultResolution(n)).
func DefaultOptions() GridOptions {
	return GridOptions{Resolution: 1}
}

// WithResolution sets the number of cells along the longer side.
// r <= 0 is recorded as ErrOptionViolation.
func WithResolution(r int) Option {
	return func(o *GridOptions) {
		if r <= 0 {
			o.err = fmt.Errorf("%w: resolution must be positive (%d)", ErrOptionViolation, r)
			return
		}
		o.Resolution = r
	}
}

// maxResolution caps the lattice so that sparse inputs over huge regions
// stay bounded in memory.
const maxResolution = 1024

// DefaultResolution picks a resolution for indexing n items: about two cells
// per √n along the longer side, clamped to [1, 1024].
func DefaultResolution(n int) int {
	r := int(2 * math.Sqrt(float64(n)))
	switch {
	case r < 1:
		return 1
	case r > maxResolution:
		return maxResolution
	}
	return r
}
