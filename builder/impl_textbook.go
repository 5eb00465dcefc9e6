// SPDX-License-Identifier: MIT
// Package: pqgraph/builder
//
// impl_textbook.go - the two fixed fixtures used by tests, examples and the
// benchmark driver.
//
//   - DijkstraExample: 5 vertices, directed, 9 arcs (s=0, t=1, x=2, z=3, y=4).
//     Distances from 0: [0, 8, 9, 7, 5].
//   - PrimExample: 9 vertices, undirected, 14 edges (a..i = 0..8).
//     Minimum spanning tree weight: 37.
//
// Edge insertion order is fixed, so adjacency order and therefore every
// tie-break downstream are fixed too.

package builder

import (
	"github.com/katalvlaran/pqgraph/core"
)

// Vertex counts of the fixtures.
const (
	DijkstraExampleVertices = 5
	PrimExampleVertices     = 9
)

func dijkstraExampleEdges[W core.Weight]() []core.Edge[W] {
	return []core.Edge[W]{
		{U: 0, V: 1, W: 10}, // s t
		{U: 0, V: 4, W: 5},  // s y
		{U: 1, V: 2, W: 1},  // t x
		{U: 1, V: 4, W: 2},  // t y
		{U: 2, V: 3, W: 4},  // x z
		{U: 3, V: 0, W: 7},  // z s
		{U: 3, V: 2, W: 6},  // z x
		{U: 4, V: 1, W: 3},  // y t
		{U: 4, V: 3, W: 2},  // y z
	}
}

func primExampleEdges[W core.Weight]() []core.Edge[W] {
	return []core.Edge[W]{
		{U: 0, V: 1, W: 4},  // a b
		{U: 0, V: 7, W: 8},  // a h
		{U: 1, V: 2, W: 8},  // b c
		{U: 1, V: 7, W: 11}, // b h
		{U: 2, V: 3, W: 7},  // c d
		{U: 2, V: 5, W: 4},  // c f
		{U: 2, V: 8, W: 2},  // c i
		{U: 3, V: 4, W: 9},  // d e
		{U: 3, V: 5, W: 14}, // d f
		{U: 4, V: 5, W: 10}, // e f
		{U: 5, V: 6, W: 2},  // f g
		{U: 6, V: 7, W: 1},  // g h
		{U: 6, V: 8, W: 6},  // g i
		{U: 7, V: 8, W: 7},  // h i
	}
}
