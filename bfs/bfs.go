package bfs

import (
	"fmt"

	"github.com/katalvlaran/pqgraph/core"
)

// BFS walks g level by level from start and records visit order, hop depth
// and parent for every discovered vertex. Edge weights are ignored.
//
// Errors: ErrGraphNil, ErrStartOutOfRange, or the wrapped error returned by
// a WithOnVisit hook (the partial result is returned alongside it).
//
// Complexity: O(V + E) time, O(V) memory.
func BFS[W core.Weight](g *core.Graph[W], start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	n := g.NodeCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}

	res := &BFSResult{
		Start:  start,
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for v := 0; v < n; v++ {
		res.Depth[v] = Unreached
		res.Parent[v] = Unreached
	}

	// Order doubles as the FIFO: discovered vertices are appended, head
	// advances as they are visited.
	res.Depth[start] = 0
	res.Order = append(res.Order, start)
	for head := 0; head < len(res.Order); head++ {
		u := res.Order[head]
		if o.onVisit != nil {
			if err := o.onVisit(u, res.Depth[u]); err != nil {
				res.Order = res.Order[:head+1]
				return res, fmt.Errorf("bfs: visit %d: %w", u, err)
			}
		}
		g.Relax(u, func(v int, _ W) {
			if res.Depth[v] == Unreached {
				res.Depth[v] = res.Depth[u] + 1
				res.Parent[v] = u
				res.Order = append(res.Order, v)
			}
		})
	}

	return res, nil
}

// Reachable returns the number of vertices reachable from start, start
// included. It returns 0 for a nil graph or an out-of-range start.
//
// Complexity: O(V + E).
func Reachable[W core.Weight](g *core.Graph[W], start int) int {
	res, err := BFS(g, start)
	if err != nil {
		return 0
	}
	return len(res.Order)
}
