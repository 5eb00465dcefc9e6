// File: methods_edges.go
// Role: Edge insertion and edge queries: AddEdge/AddWeightedEdge/HasEdge/Weight/Edges/EdgeCount.
// Determinism:
//   - Edges() walks u asc, then adj[u] in insertion order.
//   - HasEdge/Weight return the first match in insertion order (or the mirror,
//     which holds the same first match).
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.

package core

// AddEdge inserts an unweighted edge u→v (weight 0).
// For undirected graphs the reverse entry v→u is stored as well.
// Out-of-range ids are silently ignored.
//
// Complexity: O(1) amortized.
func (g *Graph[W]) AddEdge(u, v int) {
	g.AddWeightedEdge(u, v, 0)
}

// AddWeightedEdge inserts u→v with cost w.
//
// Steps:
//  1. Ignore the call if u or v lies outside [0,n).
//  2. Append v to adj[u] and w to weights[u]; update the mirror.
//  3. If undirected, append u to adj[v] and w to weights[v]; update the mirror.
//
// Parallel edges are not detected; a second (u,v) insertion adds another
// list entry. Self-loops on undirected graphs are stored twice on u, which
// keeps the per-insertion mirroring rule uniform.
//
// Complexity: O(1) amortized.
// Concurrency: acquires the write lock.
func (g *Graph[W]) AddWeightedEdge(u, v int, w W) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.inRange(u) || !g.inRange(v) {
		return
	}

	g.adj[u] = append(g.adj[u], v)
	g.weights[u] = append(g.weights[u], w)
	if g.mirror != nil {
		g.mirror.put(u, v, w)
	}

	if !g.directed {
		g.adj[v] = append(g.adj[v], u)
		g.weights[v] = append(g.weights[v], w)
		if g.mirror != nil {
			g.mirror.put(v, u, w)
		}
	}
	g.edgeCount++
}

// HasEdge reports whether at least one edge u→v exists.
// Out-of-range ids yield false.
//
// Complexity: O(1) with the dense mirror, O(Degree(u)) otherwise.
// Concurrency: read lock.
func (g *Graph[W]) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(u) || !g.inRange(v) {
		return false
	}
	if g.mirror != nil {
		return g.mirror.has(u, v)
	}

	return g.indexOf(u, v) >= 0
}

// Weight returns the cost of the first u→v edge in insertion order, or
// NoEdge (-1) when u or v is out of range or no such edge exists.
//
// Complexity: O(1) with the dense mirror, O(Degree(u)) otherwise.
// Concurrency: read lock.
func (g *Graph[W]) Weight(u, v int) W {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(u) || !g.inRange(v) {
		return NoEdge[W]()
	}
	if g.mirror != nil {
		if w, ok := g.mirror.at(u, v); ok {
			return w
		}

		return NoEdge[W]()
	}
	if i := g.indexOf(u, v); i >= 0 {
		return g.weights[u][i]
	}

	return NoEdge[W]()
}

// Edges returns every stored edge.
//
// Undirected graphs store each edge on both endpoints; only the copy with
// U <= V is reported, so each insertion appears once (an undirected self-loop
// is stored twice on u and therefore appears twice). Directed graphs report
// every arc.
//
// Complexity: O(n + E).
// Concurrency: read lock.
func (g *Graph[W]) Edges() []Edge[W] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge[W], 0, g.edgeCount)
	for u, nbrs := range g.adj {
		for i, v := range nbrs {
			if g.directed || u <= v {
				out = append(out, Edge[W]{U: u, V: v, W: g.weights[u][i]})
			}
		}
	}

	return out
}

// EdgeCount returns the number of accepted insertions.
// An undirected edge counts once even though it is stored twice.
// Complexity: O(1).
func (g *Graph[W]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// indexOf returns the position of the first v in adj[u], or -1.
// Caller holds at least the read lock and has range-checked u.
func (g *Graph[W]) indexOf(u, v int) int {
	for i, x := range g.adj[u] {
		if x == v {
			return i
		}
	}

	return -1
}
