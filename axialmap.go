package axialmap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/axialmap/allline"
	"github.com/katalvlaran/axialmap/explore"
	"github.com/katalvlaran/axialmap/geom"
	"github.com/katalvlaran/axialmap/internal/logging"
	"github.com/katalvlaran/axialmap/minimise"
	"github.com/katalvlaran/axialmap/polygon"
	"github.com/katalvlaran/axialmap/progress"
	"github.com/katalvlaran/axialmap/shapegraph"
	"github.com/katalvlaran/axialmap/tidy"
)

// ErrCannotBuild indicates that no axial map can be built from the input.
// The wrapped cause names the reason.
var ErrCannotBuild = errors.New("axialmap: cannot build axial map")

// SetLogger installs l for every package of the module; nil silences them.
func SetLogger(l *slog.Logger) { logging.Set(l) }

// FewestLineMaps holds the two reductions of an all-line map.
type FewestLineMaps struct {
	// Subsets is the map left after subset removal.
	Subsets *shapegraph.Graph
	// Minimal is the fewest-line map.
	Minimal *shapegraph.Graph
	// Reduction carries the surviving ids and per-line states, in terms of
	// the all-line map's line ids.
	Reduction *minimise.Result
}

// MakeAllLineMap builds the all-line map of walls as seen from seed.
//
// Implementation:
//   - Stage 0: reject walls with a NaN or infinite coordinate.
//   - Stage 1: tidy the walls over their bounding region.
//   - Stage 2: build and classify the polygon graph.
//   - Stage 3: explore from the vertex nearest the seed.
//   - Stage 4: assemble lines, radial segments and divisions.
//
// Errors: ErrCannotBuild wrapping the cause, ErrOptionViolation, or
// progress.ErrCancelled.
func MakeAllLineMap(ctx context.Context, walls []geom.Line, seed geom.Point, opts ...Option) (*allline.Map, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	s := o.Settings
	log := logging.For("axialmap")

	for i, w := range walls {
		if !finite(w.Start) || !finite(w.End) {
			return nil, failed(log, fmt.Errorf("%w: wall %d has a non-finite endpoint", polygon.ErrUnresolvedVertex, i))
		}
	}
	region := geom.RegionOf(walls)
	lines := tidy.Lines(walls, region, s.TidyScale)
	log.Debug("walls tidied", "in", len(walls), "out", len(lines))

	pg, err := polygon.Build(lines, region,
		polygon.WithResolution(s.Resolution),
		polygon.WithFreeEnds(s.FreeEnds),
		polygon.WithParallelThreshold(s.ParallelThreshold))
	if err != nil {
		return nil, failed(log, err)
	}

	eopts := []explore.Option{
		explore.WithCommunicator(o.Communicator),
		explore.WithPollInterval(s.PollInterval),
	}
	if s.SingleSeed {
		eopts = append(eopts, explore.WithSingleSeed())
	}
	res, err := explore.Explore(ctx, pg, seed, eopts...)
	if err != nil {
		return nil, failed(log, err)
	}

	m, err := allline.Assemble(ctx, region, res,
		allline.WithCommunicator(o.Communicator),
		allline.WithPollInterval(s.PollInterval),
		allline.WithDedupScale(s.DedupScale),
		allline.WithCropMargin(s.CropMargin),
		allline.WithResolution(s.Resolution))
	if err != nil {
		return nil, failed(log, err)
	}
	log.Info("all-line map built",
		"vertices", pg.Len(),
		"processed", res.Processed,
		"lines", m.Graph.Len(),
		"radials", len(m.Radials))
	return m, nil
}

// MakeFewestLineMap reduces m to its subsets and minimal line maps, each
// returned as a fresh graph with its own connections. m is not modified.
//
// Errors: ErrCannotBuild wrapping the cause, ErrOptionViolation, or
// progress.ErrCancelled.
func MakeFewestLineMap(ctx context.Context, m *allline.Map, opts ...Option) (*FewestLineMaps, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	log := logging.For("axialmap")

	res, err := minimise.Reduce(ctx, m,
		minimise.WithCommunicator(o.Communicator),
		minimise.WithPollInterval(o.Settings.PollInterval))
	if err != nil {
		return nil, failed(log, err)
	}
	subsets, err := m.Graph.Subset(res.Subsets)
	if err != nil {
		return nil, failed(log, err)
	}
	minimal, err := m.Graph.Subset(res.Minimal)
	if err != nil {
		return nil, failed(log, err)
	}
	log.Info("fewest-line map built",
		"lines", m.Graph.Len(),
		"subsets", subsets.Len(),
		"minimal", minimal.Len())
	return &FewestLineMaps{Subsets: subsets, Minimal: minimal, Reduction: res}, nil
}

// failed passes cancellation through and wraps everything else in ErrCannotBuild.
func failed(log *slog.Logger, err error) error {
	if errors.Is(err, progress.ErrCancelled) {
		log.Debug("cancelled")
		return err
	}
	log.Warn("cannot build axial map", "error", err)
	return fmt.Errorf("%w: %w", ErrCannotBuild, err)
}

func finite(p geom.Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
