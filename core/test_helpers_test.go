// Package core_test contains shared fixtures for the core tests.
package core_test

import (
	"github.com/katalvlaran/pqgraph/core"
)

// Common vertex ids used across core tests.
const (
	V0 = 0
	V1 = 1
	V2 = 2
	V3 = 3
	V4 = 4

	OutOfRangeHigh = 99
	OutOfRangeLow  = -1
)

// Common weights (avoid magic numbers in test bodies).
const (
	Weight0 = 0
	Weight2 = 2
	Weight3 = 3
	Weight5 = 5
	Weight7 = 7
)

// graphModes enumerates every storage combination a test should cover.
var graphModes = []struct {
	name string
	opts []core.GraphOption
}{
	{"undirected/list", nil},
	{"undirected/matrix", []core.GraphOption{core.WithMatrix()}},
	{"directed/list", []core.GraphOption{core.WithDirected()}},
	{"directed/matrix", []core.GraphOption{core.WithDirected(), core.WithMatrix()}},
}

// newSquare builds the 4-cycle 0–1–2–3–0 with weights 2,3,5,7.
func newSquare(opts ...core.GraphOption) *core.Graph[int] {
	g := core.NewGraph[int](4, opts...)
	g.AddWeightedEdge(V0, V1, Weight2)
	g.AddWeightedEdge(V1, V2, Weight3)
	g.AddWeightedEdge(V2, V3, Weight5)
	g.AddWeightedEdge(V3, V0, Weight7)

	return g
}
