package minimise

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/katalvlaran/axialmap/allline"
	"github.com/katalvlaran/axialmap/geom"
	"github.com/katalvlaran/axialmap/internal/logging"
	"github.com/katalvlaran/axialmap/progress"
	"github.com/katalvlaran/axialmap/shapegraph"
)

// reduction is the working set of one Reduce call.
type reduction struct {
	m        *allline.Map
	conns    [][]int
	state    []State
	affected []bool
	keyCount map[int]int
	segCount []int
	tol      float64
	poll     *progress.Poller
	log      *slog.Logger
	examined int
}

// Reduce computes the subsets and minimal line sets of m.
//
// Complexity: Phase A is O(P·n·d²) for P passes over n lines of degree d;
// Phase B is one pass. Each vitality check is bounded by the product of the
// divisor lists of the segments involved.
//
// Errors:
//   - ErrNilMap if m or its graph is nil.
//   - shapegraph.ErrNotConnected if the graph's connections are not built.
//   - progress.ErrCancelled on cancellation, with no result.
func Reduce(ctx context.Context, m *allline.Map, opts ...Option) (*Result, error) {
	if m == nil || m.Graph == nil {
		return nil, ErrNilMap
	}
	if !m.Graph.Built() {
		return nil, fmt.Errorf("minimise: %w", shapegraph.ErrNotConnected)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	r := newReduction(m, progress.NewPoller(progress.WithContext(ctx, o.Communicator), o.PollInterval))
	r.poll.Steps(2 * len(r.state))
	if err := r.removeSubsets(); err != nil {
		return nil, err
	}
	res := &Result{Subsets: r.surviving()}
	if err := r.fewestLongest(); err != nil {
		return nil, err
	}
	res.Minimal = r.surviving()
	res.States = r.state
	r.log.Debug("reduction finished",
		"lines", len(r.state),
		"subsets", len(res.Subsets),
		"minimal", len(res.Minimal))
	return res, nil
}

func newReduction(m *allline.Map, poll *progress.Poller) *reduction {
	g := m.Graph
	n := g.Len()
	r := &reduction{
		m:        m,
		conns:    make([][]int, n),
		state:    make([]State, n),
		affected: make([]bool, n),
		keyCount: make(map[int]int),
		segCount: make([]int, len(m.Segments)),
		tol:      geom.ToleranceA * geom.Diagonal(m.Region),
		poll:     poll,
		log:      logging.For("minimise"),
	}
	for i := 0; i < n; i++ {
		r.conns[i] = slices.Clone(g.Connections(i))
		r.affected[i] = true
		for _, k := range g.KeyVertices(i) {
			r.keyCount[k]++
		}
		for _, s := range r.divisions(i) {
			r.segCount[s]++
		}
	}
	return r
}

// removeSubsets is Phase A.
func (r *reduction) removeSubsets() error {
	order := r.sorted(func(int) bool { return true })
	for pass := 1; ; pass++ {
		removed := 0
		for _, i := range order {
			if r.state[i] != Live || !r.affected[i] {
				continue
			}
			if err := r.tick(); err != nil {
				return err
			}
			if r.strands(i) {
				r.state[i] = Vital
				continue
			}
			r.affected[i] = false
			if !r.subset(i) {
				continue
			}
			if r.presumedVital(i) && r.checkVital(i) {
				r.state[i] = Vital
				continue
			}
			r.remove(i)
			removed++
		}
		r.log.Debug("subset pass", "pass", pass, "removed", removed)
		if removed == 0 {
			return nil
		}
	}
}

// fewestLongest is Phase B.
func (r *reduction) fewestLongest() error {
	order := r.sorted(func(i int) bool { return r.state[i] == Live })
	for _, i := range order {
		if err := r.tick(); err != nil {
			return err
		}
		if r.strands(i) {
			r.state[i] = Vital
			continue
		}
		if r.presumedVital(i) && r.checkVital(i) {
			r.state[i] = Vital
			continue
		}
		if r.anchors(i) {
			continue
		}
		r.remove(i)
	}
	return nil
}

// sorted returns the lines accepted by keep, by current degree then length.
func (r *reduction) sorted(keep func(int) bool) []int {
	g := r.m.Graph
	var order []int
	for i := range r.state {
		if keep(i) {
			order = append(order, i)
		}
	}
	slices.SortFunc(order, func(a, b int) int {
		if c := cmp.Compare(len(r.conns[a]), len(r.conns[b])); c != 0 {
			return c
		}
		if c := cmp.Compare(g.Attributes(a).LineLength, g.Attributes(b).LineLength); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return order
}

func (r *reduction) tick() error {
	r.examined++
	return r.poll.Poll(r.examined)
}

// strands reports whether i is the last live line of one of its key vertices.
func (r *reduction) strands(i int) bool {
	for _, k := range r.m.Graph.KeyVertices(i) {
		if r.keyCount[k] <= 1 {
			return true
		}
	}
	return false
}

// subset reports whether every neighbour of i is also reached through one
// neighbour j of i, counting j itself.
func (r *reduction) subset(i int) bool {
	own := r.conns[i]
	for _, j := range own {
		other := r.conns[j]
		if len(own) > len(other) {
			continue
		}
		if 1+common(own, other, j, i) >= len(own) {
			return true
		}
	}
	return false
}

// common counts the elements shared by two ascending lists, ignoring skipA
// in a and skipB in b.
func common(a, b []int, skipA, skipB int) int {
	n := 0
	for x, y := 0, 0; x < len(a) && y < len(b); {
		switch {
		case a[x] == skipA:
			x++
		case b[y] == skipB:
			y++
		case a[x] < b[y]:
			x++
		case a[x] > b[y]:
			y++
		default:
			n++
			x++
			y++
		}
	}
	return n
}

// presumedVital reports whether i is the last live line across one of its
// segments.
func (r *reduction) presumedVital(i int) bool {
	for _, s := range r.divisions(i) {
		if r.segCount[s] <= 1 {
			return true
		}
	}
	return false
}

// anchors reports whether some neighbour of i is down to two connections.
func (r *reduction) anchors(i int) bool {
	for _, j := range r.conns[i] {
		if len(r.conns[j]) <= 2 {
			return true
		}
	}
	return false
}

// remove deletes i and updates the neighbours and counters.
func (r *reduction) remove(i int) {
	r.state[i] = Removed
	for _, j := range r.conns[i] {
		if k, ok := slices.BinarySearch(r.conns[j], i); ok {
			r.conns[j] = slices.Delete(r.conns[j], k, k+1)
		}
		r.affected[j] = true
	}
	r.conns[i] = nil
	for _, s := range r.divisions(i) {
		r.segCount[s]--
	}
	for _, k := range r.m.Graph.KeyVertices(i) {
		r.keyCount[k]--
	}
}

// surviving lists the lines not removed, ascending.
func (r *reduction) surviving() []int {
	var out []int
	for i, s := range r.state {
		if s != Removed {
			out = append(out, i)
		}
	}
	return out
}

func (r *reduction) divisions(i int) []int {
	if i < len(r.m.Divisions) {
		return r.m.Divisions[i]
	}
	return nil
}
