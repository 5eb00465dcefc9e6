// Package core defines the Weight constraint, the Edge value type, the
// graph options and the Graph container itself.
package core

import (
	"sync"

	"golang.org/x/exp/constraints"
)

// Weight is the set of numeric types an edge cost may have.
// It is signed so that the -1 "no edge" sentinel is representable, and every
// member can hold Infinity without overflow.
type Weight interface {
	~int | ~int32 | ~int64 | constraints.Float
}

// infinity is 0x3F3F3F3F: large enough for benchmark graphs (V·maxWeight well
// below it) while still leaving headroom for one more addition in int32.
const infinity = 0x3F3F3F3F

// Infinity returns the "unreachable" sentinel distance for W.
//
// It is a finite value, not math.Inf, so integer and float instantiations
// behave identically. Callers summing weights must keep V × max edge weight
// below it.
func Infinity[W Weight]() W {
	return W(infinity)
}

// NoEdge is the value Weight returns for out-of-range ids or absent edges.
func NoEdge[W Weight]() W {
	return W(-1)
}

// Edge is an immutable (u, v, w) triple as returned by Graph.Edges.
type Edge[W Weight] struct {
	// U is the source vertex (the smaller endpoint for undirected graphs).
	U int

	// V is the destination vertex.
	V int

	// W is the edge cost.
	W W
}

// GraphOption configures a Graph before its storage is allocated.
type GraphOption func(*graphConfig)

type graphConfig struct {
	directed bool
	weighted bool
	matrix   bool
}

// WithDirected makes AddEdge store only u→v.
func WithDirected() GraphOption {
	return func(c *graphConfig) { c.directed = true }
}

// WithWeighted marks the graph as weighted. Weights are stored either way;
// the flag is reported by Weighted() for callers that branch on it.
func WithWeighted() GraphOption {
	return func(c *graphConfig) { c.weighted = true }
}

// WithMatrix allocates the n×n dense mirror for O(1) HasEdge/Weight.
func WithMatrix() GraphOption {
	return func(c *graphConfig) { c.matrix = true }
}

// Graph is an adjacency-list graph over the vertices 0..n-1 with an optional
// dense mirror.
//
// adj[u] and weights[u] always have equal length. For undirected graphs every
// insertion is stored on both endpoints with the same weight.
type Graph[W Weight] struct {
	mu sync.RWMutex // guards adj, weights, mirror, edgeCount

	// Configuration flags, immutable after NewGraph.
	directed bool
	weighted bool

	// Storage
	adj     [][]int   // adj[u] = neighbors of u in insertion order
	weights [][]W     // weights[u][i] = cost of u→adj[u][i]
	mirror  *dense[W] // nil unless WithMatrix

	edgeCount int // accepted insertions; an undirected edge counts once
}

// NewGraph creates a graph with n vertices and no edges.
// A negative n is treated as 0.
// Complexity: O(n) time and memory, O(n²) with WithMatrix.
func NewGraph[W Weight](n int, opts ...GraphOption) *Graph[W] {
	if n < 0 {
		n = 0
	}
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph[W]{
		directed: cfg.directed,
		weighted: cfg.weighted,
		adj:      make([][]int, n),
		weights:  make([][]W, n),
	}
	if cfg.matrix {
		g.mirror = newDense[W](n)
	}

	return g
}

// NewGraphFromEdges creates a graph with n vertices and inserts edges in
// order. Edges with an endpoint outside [0,n) are skipped, exactly as
// AddWeightedEdge would skip them.
// Complexity: O(n + len(edges)), plus O(n²) with WithMatrix.
func NewGraphFromEdges[W Weight](n int, edges []Edge[W], opts ...GraphOption) *Graph[W] {
	g := NewGraph[W](n, opts...)
	for _, e := range edges {
		g.AddWeightedEdge(e.U, e.V, e.W)
	}

	return g
}
