// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters for construction-time configuration.
// Policy:
//   - No algorithms or hidden state here.
//   - Flags are immutable after NewGraph, so getters take no locks.

package core

// NodeCount returns n, the number of vertices declared at construction.
// Complexity: O(1).
func (g *Graph[W]) NodeCount() int {
	return len(g.adj)
}

// Directed reports whether AddEdge stores only u→v.
func (g *Graph[W]) Directed() bool {
	return g.directed
}

// Weighted reports the WithWeighted construction flag.
func (g *Graph[W]) Weighted() bool {
	return g.weighted
}

// HasMatrix reports whether the dense mirror was allocated.
func (g *Graph[W]) HasMatrix() bool {
	return g.mirror != nil
}

// inRange reports whether v is a valid vertex id.
func (g *Graph[W]) inRange(v int) bool {
	return v >= 0 && v < len(g.adj)
}
