// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It grows the tree from a root vertex, keeping one queue slot per outside
// vertex keyed by the cheapest edge that connects it to the tree.
package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/pqgraph/bfs"
	"github.com/katalvlaran/pqgraph/core"
	"github.com/katalvlaran/pqgraph/pq"
)

// MinimumSpanningTree returns the total weight of the spanning tree Prim
// grows from r, choosing the binary heap when useHeap is true and the
// unordered array otherwise.
//
// On a disconnected graph only r's component is spanned, so the result is
// the weight of that component's MST. A nil graph or an out-of-range r
// yields 0. The graph is expected to be undirected; this is not checked.
func MinimumSpanningTree[W core.Weight](g *core.Graph[W], r int, useHeap bool) W {
	if g == nil || r < 0 || r >= g.NodeCount() {
		return 0
	}
	return grow(g, r, pq.KindFor(useHeap), false).Total
}

// Prim computes the Minimum Spanning Tree (MST) of an undirected graph.
//
// Error Conditions:
//   - ErrNilGraph       : if graph is nil.
//   - ErrDirectedGraph  : if graph.Directed() == true.
//   - ErrRootOutOfRange : if the root is not in [0, n); this includes n == 0.
//   - ErrDisconnected   : if some vertex is unreachable from the root.
//
// Steps:
//  1. Validate graph and root.
//  2. Check connectivity with bfs.Reachable.
//  3. key[v] = +∞ and parent[v] = NoParent for all v; key[root] = 0;
//     insert root.
//  4. While the queue is non-empty:
//     a. Extract u with the smallest key; add key[u] to the total and mark u
//     as in the tree; record edge (parent[u], u) unless u is the root.
//     b. For each neighbor v of u not yet in the tree with w(u,v) < key[v]:
//     key[v] = w, parent[v] = u, DecreaseKey(v, w).
//
// Complexity: O((V + E) log V) with the heap, O(V² + E) with the array.
// Memory: O(V).
func Prim[W core.Weight](graph *core.Graph[W], opts ...Option) (*Tree[W], error) {
	cfg := DefaultOptions()
	cfg.Method = MethodPrim
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1. Validate graph and root.
	if graph == nil {
		return nil, ErrNilGraph
	}
	if graph.Directed() {
		return nil, ErrDirectedGraph
	}
	n := graph.NodeCount()
	if cfg.Root < 0 || cfg.Root >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrRootOutOfRange, cfg.Root, n)
	}

	// 2. A spanning tree exists only if the root reaches every vertex.
	if reached := bfs.Reachable(graph, cfg.Root); reached < n {
		return nil, fmt.Errorf("%w: %d of %d vertices reachable from %d",
			ErrDisconnected, reached, n, cfg.Root)
	}

	// 3-4. Grow the tree.
	return grow(graph, cfg.Root, cfg.Queue, true), nil
}

// grow runs Prim from r with the given queue and returns the tree over r's
// component. Edges and Parent are only filled when withEdges is set.
func grow[W core.Weight](g *core.Graph[W], r int, kind pq.Kind, withEdges bool) *Tree[W] {
	n := g.NodeCount()
	inf := core.Infinity[W]()

	key := make([]W, n)
	in := make([]bool, n)
	parent := make([]int, n)
	for v := 0; v < n; v++ {
		key[v] = inf
		parent[v] = NoParent
	}

	t := &Tree[W]{Root: r}
	if withEdges {
		t.Parent = parent
		t.Edges = make([]core.Edge[W], 0, n-1)
	}

	queue := pq.New[W](kind, n-1)
	key[r] = 0
	queue.Insert(r, 0)

	for queue.Size() > 0 {
		u := queue.ExtractMin().Key
		t.Total += key[u]
		in[u] = true
		if withEdges && parent[u] != NoParent {
			t.Edges = append(t.Edges, core.Edge[W]{U: parent[u], V: u, W: key[u]})
		}

		g.Relax(u, func(v int, w W) {
			if !in[v] && w < key[v] {
				key[v] = w
				parent[v] = u
				queue.DecreaseKey(v, w)
			}
		})
	}

	return t
}
