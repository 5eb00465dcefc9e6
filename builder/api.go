// SPDX-License-Identifier: MIT
// Package: pqgraph/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed ⇒ identical graphs.
//   - Safety: never panic at runtime; return wrapped sentinel errors.

package builder

import (
	"github.com/katalvlaran/pqgraph/core"
)

// RandomGraph returns a simple graph on n vertices with exactly e distinct
// edges drawn uniformly at random (no self-loops, no parallel edges).
//
// Options: WithSeed/WithRand, WithMaxWeight, WithDirected, WithWeighted,
// WithMatrix, WithProgress.
//
// Errors: ErrTooFewVertices, ErrTooManyEdges, ErrBadMaxWeight.
func RandomGraph[W core.Weight](n, e int, opts ...BuilderOption) (*core.Graph[W], error) {
	return randomGraph[W](n, e, newBuilderConfig(opts...))
}

// DijkstraExample returns the 5-vertex directed weighted graph used to
// demonstrate single-source shortest paths. The distance from 0 to 4 is 5.
func DijkstraExample[W core.Weight](opts ...core.GraphOption) *core.Graph[W] {
	opts = append([]core.GraphOption{core.WithDirected(), core.WithWeighted()}, opts...)
	return core.NewGraphFromEdges(DijkstraExampleVertices, dijkstraExampleEdges[W](), opts...)
}

// PrimExample returns the 9-vertex undirected weighted graph used to
// demonstrate minimum spanning trees. Its MST weighs 37.
func PrimExample[W core.Weight](opts ...core.GraphOption) *core.Graph[W] {
	opts = append([]core.GraphOption{core.WithWeighted()}, opts...)
	return core.NewGraphFromEdges(PrimExampleVertices, primExampleEdges[W](), opts...)
}
