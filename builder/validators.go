// Package builder provides validation helpers to enforce parameter contracts
// in the generators.
//
// Each function returns a wrapped sentinel via builderErrorf when its
// precondition is violated.
package builder

import (
	"math"

	"github.com/katalvlaran/pqgraph/core"
)

// validateMin ensures that the vertex count 'got' is ≥ 'min'.
//
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, "n=%d < min=%d: %w", got, min, ErrTooFewVertices)
	}

	return nil
}

// maxSimpleEdges is the number of distinct non-loop edges on n vertices.
func maxSimpleEdges(n int, directed bool) int {
	if directed {
		return n * (n - 1)
	}
	return n * (n - 1) / 2
}

// validateEdgeCount ensures 0 ≤ e ≤ maxSimpleEdges(n, directed). Beyond that
// bound rejection sampling would never terminate.
//
// Complexity: O(1) time and space.
func validateEdgeCount(method string, n, e int, directed bool) error {
	if limit := maxSimpleEdges(n, directed); e < 0 || e > limit {
		return builderErrorf(method, "e=%d not in [0,%d]: %w", e, limit, ErrTooManyEdges)
	}

	return nil
}

// validateMaxWeight ensures 0 ≤ max < core.Infinity[W](). Anything larger
// would wrap narrow integer weights or reach the unreachable sentinel.
//
// Complexity: O(1) time and space.
func validateMaxWeight[W core.Weight](method string, max float64) error {
	limit := float64(core.Infinity[W]())
	if math.IsNaN(max) || max < 0 || max >= limit {
		return builderErrorf(method, "max=%g not in [0,%g): %w", max, limit, ErrBadMaxWeight)
	}

	return nil
}
