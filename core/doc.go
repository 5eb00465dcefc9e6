// Package core provides the dense-integer Graph used by every algorithm in
// pqgraph.
//
// Vertices are the integers 0..n-1, fixed when the graph is built. Each vertex
// owns an ordered adjacency list and a weight list aligned with it index for
// index, so weights[u][i] is the cost of the edge u→adj[u][i]. Insertion order
// is preserved; algorithms iterate it directly.
//
// Configuration Options (GraphOption):
//
//	– WithDirected()
//	    Store only u→v. Without it every AddEdge also appends v→u.
//
//	– WithWeighted()
//	    Informational flag reported by Weighted(); weights are always stored.
//
//	– WithMatrix()
//	    Allocate an n×n dense mirror at construction. HasEdge and Weight become
//	    O(1) at the cost of O(n²) memory; without it they scan adj[u].
//
// Core Methods:
//
//	// Construction
//	NewGraph[W](n, opts...)                 // O(n), O(n²) with WithMatrix
//	NewGraphFromEdges[W](n, edges, opts...) // O(n + E)
//
//	// Mutation
//	AddEdge(u, v)              // weight 0
//	AddWeightedEdge(u, v, w)   // O(1) amortized; silent no-op when u or v ∉ [0,n)
//
//	// Query
//	NodeCount() int
//	Degree(v) int              // 0 when out of range
//	Neighbors(v) []int         // copy, insertion order
//	EdgeWeights(v) []W         // copy, parallel to Neighbors
//	Relax(u, fn)               // no-copy iteration for hot loops
//	Edges() []Edge[W]          // undirected edges reported once (u <= v)
//	HasEdge(u, v) bool         // false when out of range or absent
//	Weight(u, v) W             // -1 when out of range or absent
//	EdgeCount() int
//
// Duplicate edges are not detected: inserting (u,v) twice stores two list
// entries and algorithms traverse both. The dense mirror keeps the first
// weight written for a cell, so HasEdge/Weight answer identically with and
// without it.
//
// Weights are any type satisfying Weight (signed integers or floats). Negative
// weights are storable but the shortest-path algorithms assume they are absent.
//
// Concurrency: a single sync.RWMutex guards adjacency and the mirror. Queries
// take the read lock, AddWeightedEdge the write lock.
package core
