// Package dijkstra implements Dijkstra's shortest-path algorithm over
// core.Graph with an injected pq.MinPriorityQueue.
//
// Unlike a lazy container/heap variant, each vertex occupies at most one queue
// slot: an improved distance is pushed with DecreaseKey, which also performs
// the first insertion of a never-seen vertex.
//
// Complexity:
//
//   - Binary heap:     O((V + E) log V) time.
//   - Unordered array: O(V² + E) time; every extract-min scans all V keys.
//   - Space: O(V) for distances, predecessors and the queue index.
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/pqgraph/core"
	"github.com/katalvlaran/pqgraph/pq"
)

// ShortestPath returns the distance from s to t, choosing the binary heap
// when useHeap is true and the unordered array otherwise.
//
// Unreachable targets and out-of-range s or t yield core.Infinity[W]().
// Edge weights must be non-negative; this is not checked.
func ShortestPath[W core.Weight](g *core.Graph[W], s, t int, useHeap bool) W {
	inf := core.Infinity[W]()
	if g == nil || t < 0 || t >= g.NodeCount() {
		return inf
	}
	res, err := Dijkstra(g, Source(s), WithQueue(pq.KindFor(useHeap)))
	if err != nil {
		return inf
	}

	return res.Dist[t]
}

// Dijkstra computes shortest distances from Options.Source to every vertex.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Source must lie in [0, n) (ErrSourceOutOfRange).
//
// Negative weights are a caller error: they are not detected and produce
// unspecified distances.
func Dijkstra[W core.Weight](g *core.Graph[W], opts ...Option) (*Result[W], error) {
	// 1) Build options.
	cfg := DefaultOptions(0)
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.NodeCount()
	if cfg.Source < 0 || cfg.Source >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, cfg.Source, n)
	}

	// 3) Run.
	r := newRunner(g, cfg)
	r.process()

	return &Result[W]{Source: cfg.Source, Dist: r.dist, Prev: r.prev}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[W core.Weight] struct {
	g     *core.Graph[W]         // read-only within Dijkstra
	queue pq.MinPriorityQueue[W] // one slot per vertex
	dist  []W                    // dist[v] = best known distance
	prev  []int                  // nil unless ReturnPath
}

// newRunner sets dist[v] = +∞ for all v, dist[source] = 0, and enqueues the source.
func newRunner[W core.Weight](g *core.Graph[W], cfg Options) *runner[W] {
	n := g.NodeCount()
	r := &runner[W]{
		g:     g,
		queue: pq.New[W](cfg.Queue, n-1),
		dist:  make([]W, n),
	}
	inf := core.Infinity[W]()
	for v := range r.dist {
		r.dist[v] = inf
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
		for v := range r.prev {
			r.prev[v] = NoParent
		}
	}

	r.dist[cfg.Source] = 0
	r.queue.Insert(cfg.Source, 0)

	return r
}

// process extracts the closest vertex until the queue empties and relaxes
// its outgoing edges.
func (r *runner[W]) process() {
	for r.queue.Size() > 0 {
		top := r.queue.ExtractMin()
		u, du := top.Key, top.Value

		r.g.Relax(u, func(v int, w W) {
			// Strict improvement only; equal distances keep the first predecessor.
			if nd := du + w; nd < r.dist[v] {
				r.dist[v] = nd
				if r.prev != nil {
					r.prev[v] = u
				}
				r.queue.DecreaseKey(v, nd)
			}
		})
	}
}
