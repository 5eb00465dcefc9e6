// Package dijkstra defines configuration options, sentinel errors and the
// result type for Dijkstra's shortest-path algorithm.
//
// Options:
//
//	– Source:         starting vertex id (must lie in [0, n)).
//	– WithQueue:      priority-queue implementation (default pq.KindBinaryHeap).
//	– WithReturnPath: also record predecessors for PathTo.
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the graph pointer is nil.
//	– ErrSourceOutOfRange  if Source is outside [0, n).
//	– ErrTargetOutOfRange  if PathTo is asked for a vertex outside [0, n).
//	– ErrNoPath            if PathTo's target is unreachable.
//	– ErrNoPredecessors    if PathTo is called without WithReturnPath.
package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pqgraph/core"
	"github.com/katalvlaran/pqgraph/pq"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceOutOfRange indicates that Source is not a vertex of the graph.
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")

	// ErrTargetOutOfRange indicates that a PathTo target is not a vertex of the graph.
	ErrTargetOutOfRange = errors.New("dijkstra: target vertex out of range")

	// ErrNoPath indicates that the requested target is unreachable from Source.
	ErrNoPath = errors.New("dijkstra: target unreachable")

	// ErrNoPredecessors indicates that the result was computed without WithReturnPath.
	ErrNoPredecessors = errors.New("dijkstra: predecessors not recorded")
)

// NoParent marks the source and unreachable vertices in Result.Prev.
const NoParent = -1

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Source     int     // the source vertex id
	Queue      pq.Kind // priority-queue implementation
	ReturnPath bool    // whether to record predecessors
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex id.
func Source(id int) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithQueue selects the priority-queue implementation.
// Panics on an unknown kind so misconfiguration surfaces at the call site.
func WithQueue(kind pq.Kind) Option {
	if kind != pq.KindBinaryHeap && kind != pq.KindUnorderedArray {
		panic(fmt.Sprintf("dijkstra: WithQueue(%v): %v", kind, pq.ErrUnknownKind))
	}
	return func(o *Options) {
		o.Queue = kind
	}
}

// WithReturnPath enables predecessor tracking in Result.Prev.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// DefaultOptions returns Options for the given source:
//   - Queue:      pq.KindBinaryHeap.
//   - ReturnPath: false.
func DefaultOptions(source int) Options {
	return Options{
		Source:     source,
		Queue:      pq.KindBinaryHeap,
		ReturnPath: false,
	}
}

// Result holds per-vertex shortest-path data.
//
// Dist[v] is the distance from Source to v, or core.Infinity[W]() when v is
// unreachable. Prev[v] is v's predecessor on one shortest path, NoParent for
// Source and unreachable vertices; Prev is nil unless WithReturnPath was set.
type Result[W core.Weight] struct {
	Source int
	Dist   []W
	Prev   []int
}

// Reachable reports whether v was reached from Source.
func (r *Result[W]) Reachable(v int) bool {
	return v >= 0 && v < len(r.Dist) && r.Dist[v] != core.Infinity[W]()
}

// PathTo reconstructs the vertex sequence Source → … → target.
//
// Errors: ErrNoPredecessors, ErrTargetOutOfRange, ErrNoPath.
// Complexity: O(path length).
func (r *Result[W]) PathTo(target int) ([]int, error) {
	if r.Prev == nil {
		return nil, ErrNoPredecessors
	}
	if target < 0 || target >= len(r.Dist) {
		return nil, fmt.Errorf("%w: %d", ErrTargetOutOfRange, target)
	}
	if !r.Reachable(target) {
		return nil, fmt.Errorf("%w: %d", ErrNoPath, target)
	}

	// Walk predecessors back to the source, then reverse.
	path := []int{}
	for cur := target; cur != NoParent; cur = r.Prev[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
