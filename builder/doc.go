// Package builder generates graphs for tests, examples and benchmarks.
//
// The package offers the following components:
//
//   - Generators:
//     – RandomGraph:      n vertices, exactly e distinct random edges.
//   - Fixtures:
//     – DijkstraExample:  5-vertex directed graph; dist(0,4) = 5.
//     – PrimExample:      9-vertex undirected graph; MST weight 37.
//   - Configuration primitives:
//     – BuilderOption:    a function that mutates builderConfig before use.
//     – WithSeed/WithRand, WithMaxWeight, WithDirected, WithWeighted,
//     WithMatrix, WithProgress.
//
// Guarantees:
//
//   - Determinism: a fixed seed reproduces the same graph, including the
//     adjacency insertion order that drives tie-breaking downstream.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Wrapped sentinel errors (ErrTooFewVertices, ErrTooManyEdges,
//     ErrBadMaxWeight) for invalid build parameters.
//   - Weights are integers in [0,max] for integral weight types and reals in
//     [0,max) for floating-point ones.
package builder
