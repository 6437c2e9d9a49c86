package allline

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/axialmap/explore"
	"github.com/katalvlaran/axialmap/geom"
	"github.com/katalvlaran/axialmap/internal/logging"
	"github.com/katalvlaran/axialmap/progress"
	"github.com/katalvlaran/axialmap/shapegraph"
)

// Assemble turns an exploration result into an all-line map of region.
//
// Errors:
//   - ErrNilResult if res is nil.
//   - ErrNoAxialLines if no candidate survives deduplication and cropping.
//   - progress.ErrCancelled on cancellation, with no map.
func Assemble(ctx context.Context, region geom.Region, res *explore.Result, opts ...Option) (*Map, error) {
	if res == nil {
		return nil, ErrNilResult
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	log := logging.For("allline")

	dim := geom.MaxDim(region)
	cands := Dedup(res.Candidates, dim*o.DedupScale)
	grown := geom.Grow(region, o.CropMargin)
	cands = Crop(cands, grown, dim*geom.ToleranceA)
	if len(cands) == 0 {
		return nil, ErrNoAxialLines
	}

	var gopts []shapegraph.Option
	if o.Resolution > 0 {
		gopts = append(gopts, shapegraph.WithResolution(o.Resolution))
	}
	g := shapegraph.New(grown, gopts...)
	for _, c := range cands {
		g.AddLine(c.Line, c.KeyVertices)
	}
	if err := g.MakeConnections(); err != nil {
		return nil, fmt.Errorf("allline: connecting lines: %w", err)
	}

	m := &Map{Graph: g, Region: region}
	at := m.sortRadials(res.Radials)
	m.makeSegments()

	poll := progress.NewPoller(progress.WithContext(ctx, o.Communicator), o.PollInterval)
	if err := m.makeDivisions(res.Connectors, at, poll); err != nil {
		return nil, err
	}
	log.Debug("all-line map assembled",
		"candidates", len(res.Candidates),
		"lines", g.Len(),
		"radials", len(m.Radials),
		"segments", len(m.Segments))
	return m, nil
}

// sortRadials stores the radials in key order, one per distinct key, and
// returns the stored index of every input radial.
func (m *Map) sortRadials(radials []explore.RadialLine) []int {
	order := make([]int, len(radials))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return radials[a].Key.Compare(radials[b].Key)
	})
	at := make([]int, len(radials))
	m.Radials = make([]explore.RadialLine, 0, len(radials))
	for _, i := range order {
		r := radials[i]
		if n := len(m.Radials); n > 0 && m.Radials[n-1].Key.Compare(r.Key) == 0 {
			at[i] = n - 1
			continue
		}
		at[i] = len(m.Radials)
		m.Radials = append(m.Radials, r)
	}
	return at
}

// makeSegments pairs every radial with the next radial of the same corner
// whose angle is distinct.
func (m *Map) makeSegments() {
	m.Segments = m.Segments[:0]
	for i, a := range m.Radials {
		for j := i + 1; j < len(m.Radials); j++ {
			b := m.Radials[j]
			if b.Key.Vertex != a.Key.Vertex {
				break
			}
			if b.Key.Angle > a.Key.Angle+geom.ToleranceC {
				m.Segments = append(m.Segments, Segment{A: i, B: j})
				break
			}
		}
	}
}
