// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It assumes an undirected *core.Graph and produces the edges forming the MST.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/pqgraph/bfs"
	"github.com/katalvlaran/pqgraph/core"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected graph.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// Error Conditions:
//   - ErrNilGraph      : if graph is nil.
//   - ErrDirectedGraph : if graph.Directed() == true.
//   - ErrDisconnected  : if |V| == 0 or the graph is not fully connected.
//
// Steps:
//  1. Validate: graph != nil, !graph.Directed().
//  2. If |V| == 0 → ErrDisconnected. If |V| == 1 → trivial MST (no edges, weight 0).
//  3. Collect all edges via graph.Edges(), skip self-loops (e.U == e.V).
//  4. Sort edges by ascending weight (sort.SliceStable keeps Edges() order for ties).
//  5. Initialize DSU slices parent[] and rank[].
//  6. Loop over sorted edges: if find(u) != find(v), union and include the edge.
//  7. Once MST has |V|-1 edges, break. If fewer → ErrDisconnected.
//  8. Root the selected edges at vertex 0 with a BFS to fill Tree.Parent.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal[W core.Weight](graph *core.Graph[W]) (*Tree[W], error) {
	// 1. Validate that graph is non-nil and undirected.
	if graph == nil {
		return nil, ErrNilGraph
	}
	if graph.Directed() {
		return nil, ErrDirectedGraph
	}

	// 2. Handle degenerate sizes.
	numVerts := graph.NodeCount()
	if numVerts == 0 {
		return nil, ErrDisconnected
	}
	if numVerts == 1 {
		return &Tree[W]{Root: 0, Parent: []int{NoParent}, Edges: []core.Edge[W]{}}, nil
	}

	// 3. Collect all edges, skipping self-loops.
	allEdges := graph.Edges()
	edges := make([]core.Edge[W], 0, len(allEdges))
	for _, e := range allEdges {
		if e.U == e.V {
			continue
		}
		edges = append(edges, e)
	}

	// 4. Sort edges by ascending weight.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].W < edges[j].W
	})

	// 5. Initialize disjoint-set (union-find) structures.
	parent := make([]int, numVerts)
	rank := make([]int, numVerts)
	for v := range parent {
		parent[v] = v
	}

	// Iterative find with path compression to avoid deep recursion.
	find := func(u int) int {
		for parent[u] != u {
			// Path compression: make u point to its grandparent.
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// Union by rank merges two disjoint sets.
	union := func(rootU, rootV int) {
		// Attach smaller-rank tree under larger-rank root.
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}
	}

	// 6. Build MST by iterating over sorted edges.
	t := &Tree[W]{Root: 0, Edges: make([]core.Edge[W], 0, numVerts-1)}
	for _, e := range edges {
		ru, rv := find(e.U), find(e.V)
		if ru == rv {
			continue
		}
		union(ru, rv)
		t.Edges = append(t.Edges, e)
		t.Total += e.W
		// 7. Stop once the tree spans every vertex.
		if len(t.Edges) == numVerts-1 {
			break
		}
	}
	if len(t.Edges) < numVerts-1 {
		return nil, ErrDisconnected
	}

	// 8. Root the tree at 0.
	t.Parent = rootTree(numVerts, t.Edges, t.Root)

	return t, nil
}

// rootTree orients an undirected tree edge set toward root.
func rootTree[W core.Weight](n int, edges []core.Edge[W], root int) []int {
	tree := core.NewGraphFromEdges(n, edges, core.WithWeighted())
	res, err := bfs.BFS(tree, root)
	if err != nil {
		return nil
	}

	return res.Parent
}
