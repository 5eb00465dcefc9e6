// Package builder defines shared constants used by the generators, ensuring
// consistent defaults and validation across constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodRandomGraph is the canonical name for the RandomGraph generator.
	MethodRandomGraph = "RandomGraph"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinRandomVertices is the smallest vertex count RandomGraph accepts.
// A single vertex admits no simple edges but is still a valid graph.
const MinRandomVertices = 1

//-----------------------------------------------------------------------------
// Default Weights
//-----------------------------------------------------------------------------

// DefaultMaxWeight is the inclusive upper bound of random edge weights.
const DefaultMaxWeight = 1000

// DefaultSeed seeds the generator when neither WithSeed nor WithRand is given.
const DefaultSeed uint64 = 1
