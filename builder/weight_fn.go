// Package builder provides the weight draw shared by the random generators.
package builder

import (
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/pqgraph/core"
)

// integral reports whether W truncates fractions.
func integral[W core.Weight]() bool {
	half := 0.5
	return W(half) == 0
}

// drawWeight samples a weight in [0, max]: uniformly over the integers for
// integral W, and uniformly over the reals in [0, max) otherwise.
// Complexity: O(1).
func drawWeight[W core.Weight](rng *rand.Rand, max float64, isInt bool) W {
	if isInt {
		return W(rng.Intn(int(max) + 1))
	}
	return W(rng.Float64() * max)
}
