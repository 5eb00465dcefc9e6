// Package prim_kruskal defines configuration options, sentinel errors and the
// result type for MST computation. It supports selecting between Kruskal and
// Prim via MSTOptions, and for Prim, the priority-queue implementation.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pqgraph/core"
	"github.com/katalvlaran/pqgraph/pq"
)

// ErrNilGraph indicates that a nil *core.Graph was passed.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrDirectedGraph indicates that MST algorithms require an undirected graph.
var ErrDirectedGraph = errors.New("prim_kruskal: MST requires an undirected graph")

// ErrRootOutOfRange indicates that the Prim root is not a vertex of the graph.
var ErrRootOutOfRange = errors.New("prim_kruskal: root vertex out of range")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates an MSTOptions.Method other than MethodPrim or MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// NoParent marks the root in Tree.Parent.
const NoParent = -1

// MethodPrim selects Prim's algorithm (grow from a root with a decrease-key queue).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run and, for Prim, where to
// start and which queue to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method string  - one of MethodPrim or MethodKruskal.
//	Root   int     - start vertex for Prim; ignored when Method == MethodKruskal.
//	Queue  pq.Kind - queue implementation for Prim.
//
// Complexity: O(E log V) for Prim with a heap, O(V² + E) with the array,
// O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int

	// Queue selects Prim's priority queue. Unused by Kruskal.
	Queue pq.Kind
}

// Option configures MSTOptions. All Option functions should modify the pointed MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm; ignored by Kruskal.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithQueue returns an Option that selects Prim's queue implementation.
// Panics on an unknown kind.
func WithQueue(kind pq.Kind) Option {
	if kind != pq.KindBinaryHeap && kind != pq.KindUnorderedArray {
		panic(fmt.Sprintf("prim_kruskal: WithQueue(%v): %v", kind, pq.ErrUnknownKind))
	}
	return func(opts *MSTOptions) {
		opts.Queue = kind
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal by default:
//
//	– Method = MethodKruskal
//	– Root   = 0
//	– Queue  = pq.KindBinaryHeap.
//
// Complexity: O(1) to construct.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   0,
		Queue:  pq.KindBinaryHeap,
	}
}

// Tree is a minimum spanning tree.
//
//	Root   - the vertex Parent is rooted at.
//	Parent - Parent[v] is v's neighbor on the path to Root; NoParent for Root.
//	Edges  - the n-1 tree edges, {U: parent, V: child, W: weight} for Prim in
//	         extraction order, in ascending weight order for Kruskal.
//	Total  - sum of Edges[i].W.
type Tree[W core.Weight] struct {
	Root   int
	Parent []int
	Edges  []core.Edge[W]
	Total  W
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– If opts.Method == MethodKruskal: calls Kruskal(graph).
//	– If opts.Method == MethodPrim:    calls Prim(graph, WithRoot(opts.Root), WithQueue(opts.Queue)).
//	– Otherwise:                        returns ErrUnknownMethod.
//
// Note: this is optional scaffolding; Prim and Kruskal can still be called directly.
func Compute[W core.Weight](graph *core.Graph[W], opts MSTOptions) (*Tree[W], error) {
	// Dispatch by method name
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph, WithRoot(opts.Root), WithQueue(opts.Queue))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}
