package bfs

import (
	"errors"
	"fmt"
)

var (
	// ErrStartOutOfRange is returned when the start id is not in [0, n).
	ErrStartOutOfRange = errors.New("bfs: start vertex out of range")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNotReached is returned by PathTo for an undiscovered vertex.
	ErrNotReached = errors.New("bfs: vertex not reached")
)

// Unreached marks vertices with no depth and no parent in a BFSResult.
const Unreached = -1

// Option configures a single BFS call.
type Option func(*options)

type options struct {
	// onVisit runs when a vertex is dequeued; a non-nil error stops the walk.
	onVisit func(id, depth int) error
}

// WithOnVisit registers fn to run on every dequeued vertex, in visit order.
// Returning an error stops the search; BFS then returns the partial result
// together with that error wrapped, so callers can use it for early exit.
// The partial Order ends at the stopping vertex, while Depth and Parent also
// cover vertices already discovered. A nil fn is ignored.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *options) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// BFSResult is the BFS tree rooted at Start.
//
//	Order:  vertices in visit sequence.
//	Depth:  hop count from Start, Unreached if never discovered.
//	Parent: predecessor in the tree, Unreached for Start and undiscovered ids.
type BFSResult struct {
	Start  int
	Order  []int
	Depth  []int
	Parent []int
}

// Reached reports whether v was discovered.
func (r *BFSResult) Reached(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] != Unreached
}

// PathTo walks Parent links back from dest and returns the hop-minimal path
// Start → dest.
func (r *BFSResult) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %d from %d", ErrNotReached, dest, r.Start)
	}
	path := make([]int, r.Depth[dest]+1)
	for i, cur := len(path)-1, dest; i >= 0; i, cur = i-1, r.Parent[cur] {
		path[i] = cur
	}

	return path, nil
}
