// File: methods_adjacent.go
// Role: Neighborhood APIs (Degree, Neighbors, EdgeWeights, Relax).
// Determinism:
//   - All neighborhood views follow insertion order of adj[v].
// Concurrency:
//   - Read lock for every call; Relax holds it for the whole callback loop.

package core

// Degree returns the number of adjacency entries of v (out-degree for
// directed graphs, incident entries for undirected ones), or 0 when v is
// outside [0,n).
// Complexity: O(1).
func (g *Graph[W]) Degree(v int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(v) {
		return 0
	}

	return len(g.adj[v])
}

// Neighbors returns a copy of adj[v] in insertion order, or nil when v is
// out of range.
// Complexity: O(Degree(v)).
func (g *Graph[W]) Neighbors(v int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(v) {
		return nil
	}
	out := make([]int, len(g.adj[v]))
	copy(out, g.adj[v])

	return out
}

// EdgeWeights returns a copy of weights[v], index-aligned with Neighbors(v),
// or nil when v is out of range.
// Complexity: O(Degree(v)).
func (g *Graph[W]) EdgeWeights(v int) []W {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(v) {
		return nil
	}
	out := make([]W, len(g.weights[v]))
	copy(out, g.weights[v])

	return out
}

// Relax calls fn(v, w) for each adjacency entry u→v in insertion order
// without copying the lists. It is the hot-loop form of
// Neighbors+EdgeWeights used by the greedy algorithms.
//
// fn must not call AddEdge/AddWeightedEdge on the same graph: the read lock
// is held for the duration of the loop.
// Out-of-range u is a no-op.
// Complexity: O(Degree(u)) plus the cost of fn.
func (g *Graph[W]) Relax(u int, fn func(v int, w W)) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(u) {
		return
	}
	ws := g.weights[u]
	for i, v := range g.adj[u] {
		fn(v, ws[i])
	}
}
