package explore

import (
	"container/heap"
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/axialmap/geom"
	"github.com/katalvlaran/axialmap/internal/logging"
	"github.com/katalvlaran/axialmap/polygon"
	"github.com/katalvlaran/axialmap/progress"
)

// walker encapsulates mutable exploration state.
type walker struct {
	g       *polygon.Graph
	opts    Options
	poll    *progress.Poller
	log     *slog.Logger
	seed    geom.Point
	open    openSet
	queued  map[polygon.Key]bool
	handled map[polygon.Key]bool
	reseeds []int
	next    int
	res     *Result
}

// Explore walks g outward from the seed point.
// The seed vertex is the nearest classifiable vertex visible from seed
// (polygon.SeedVertex). Cancellation, through ctx or the communicator,
// returns progress.ErrCancelled and no result.
func Explore(ctx context.Context, g *polygon.Graph, seed geom.Point, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start, err := g.SeedVertex(seed)
	if err != nil {
		return nil, fmt.Errorf("explore: seeding from %v: %w", seed, err)
	}
	first := g.Classify(start, seed)
	if !first.Initialised {
		return nil, fmt.Errorf("%w: vertex %d at %v", ErrSeedUnclassifiable, start, g.Point(start))
	}

	w := &walker{
		g:       g,
		opts:    o,
		poll:    progress.NewPoller(progress.WithContext(ctx, o.Communicator), o.PollInterval),
		log:     logging.For("explore"),
		seed:    seed,
		queued:  make(map[polygon.Key]bool),
		handled: make(map[polygon.Key]bool),
		res:     &Result{},
	}
	w.poll.Steps(g.Len())
	w.push(first)
	if err := w.loop(); err != nil {
		return nil, err
	}
	w.log.Debug("exploration finished",
		"processed", w.res.Processed,
		"candidates", len(w.res.Candidates),
		"radials", len(w.res.Radials))
	return w.res, nil
}

// push queues v unless its key was already seen.
func (w *walker) push(v polygon.Vertex) {
	k := v.Key()
	if w.handled[k] || w.queued[k] {
		return
	}
	w.queued[k] = true
	heap.Push(&w.open, v)
}

// loop processes the open set until it and every re-seed are exhausted.
func (w *walker) loop() error {
	for {
		if w.open.Len() == 0 && !w.reseed() {
			return nil
		}
		if err := w.poll.Poll(w.res.Processed); err != nil {
			return err
		}

		v := heap.Pop(&w.open).(polygon.Vertex)
		k := v.Key()
		delete(w.queued, k)
		w.handled[k] = true
		w.res.Processed++
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("explore: OnVisit error at vertex %d: %w", v.Ref, err)
		}
		w.connect(v)
	}
}

// reseed queues the next vertex visible from the seed point whose key has
// not been handled. Reports false when none is left.
func (w *walker) reseed() bool {
	if w.opts.SingleSeed {
		return false
	}
	if w.reseeds == nil {
		w.reseeds = append([]int{}, w.g.VisibleFrom(w.seed)...)
	}
	for w.next < len(w.reseeds) {
		v := w.g.Classify(w.reseeds[w.next], w.seed)
		w.next++
		if !w.handled[v.Key()] {
			w.log.Debug("re-seeding", "vertex", v.Ref)
			w.push(v)
			return true
		}
	}
	return false
}

// connect examines every vertex visible from v.
func (w *walker) connect(v polygon.Vertex) {
	for i := 0; i < w.g.Len(); i++ {
		if i == v.Ref {
			continue
		}
		q := w.g.Point(i)
		if !v.Visible(q) || w.g.Blocked(geom.NewLine(v.Point, q)) {
			continue
		}
		next := w.g.Classify(i, v.Point)
		if !next.Initialised {
			continue
		}
		w.push(next)
		w.record(v, next)
	}
}

// record promotes the sight line v→next to a candidate when both ends allow
// it, and files radial lines for pairs of different polygons.
func (w *walker) record(v, next polygon.Vertex) {
	p, q := v.Point, next.Point
	far, extended := q, false
	if !next.Convex && next.Axial {
		far, extended = w.g.Extend(q, q.Sub(p)), true
	}

	if v.EligibleToward(q) && next.Axial {
		near := p
		if !v.Convex {
			near = w.g.Extend(p, p.Sub(q))
		}
		if line := geom.NewLine(near, far); line.Length() > w.g.Tolerance() {
			w.res.Candidates = append(w.res.Candidates, Candidate{
				Line:        line,
				KeyVertices: keyVertices(v, next),
			})
		}
	}

	if w.g.Poly(v.Ref) == w.g.Poly(next.Ref) {
		return
	}
	angle := v.Angle(q)
	w.addRadial(v, q, angle, false)
	if extended {
		w.addRadial(v, far, angle, true)
	}
}

func (w *walker) addRadial(v polygon.Vertex, target geom.Point, angle float64, segEnd bool) {
	key := RadialKey{Vertex: v.Key(), Angle: angle, SegEnd: segEnd}
	w.res.Radials = append(w.res.Radials, RadialLine{
		Key:       key,
		KeyVertex: v.Point,
		OpenSpace: target,
		A:         v.A,
		B:         v.B,
	})
	w.res.Connectors = append(w.res.Connectors, PolyConnector{
		Line: geom.NewLine(v.Point, target),
		Key:  key,
	})
}

// keyVertices lists the convex ends of a line, ascending.
func keyVertices(a, b polygon.Vertex) []int {
	var keys []int
	if a.Convex {
		keys = append(keys, a.Ref)
	}
	if b.Convex {
		keys = append(keys, b.Ref)
	}
	if len(keys) == 2 && keys[0] > keys[1] {
		keys[0], keys[1] = keys[1], keys[0]
	}
	return keys
}

// openSet is a max-heap of vertices ordered by key.
type openSet []polygon.Vertex

func (s openSet) Len() int           { return len(s) }
func (s openSet) Less(i, j int) bool { return s[i].Key().Compare(s[j].Key()) > 0 }
func (s openSet) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

func (s *openSet) Push(x any) { *s = append(*s, x.(polygon.Vertex)) }

func (s *openSet) Pop() any {
	old := *s
	n := len(old)
	v := old[n-1]
	*s = old[:n-1]
	return v
}
