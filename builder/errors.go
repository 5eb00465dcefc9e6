// SPDX-License-Identifier: MIT
// Package: pqgraph/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w via builderErrorf.
//   • Generators never panic at runtime; validation panics are confined to
//     option constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that n is smaller than the generator minimum.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrTooManyEdges indicates that the requested edge count exceeds what a
// simple graph on n vertices can hold (n(n-1) directed, n(n-1)/2 undirected),
// or is negative.
var ErrTooManyEdges = errors.New("builder: edge count out of range")

// ErrBadMaxWeight indicates an upper bound for random weights that is
// negative, NaN, or not below core.Infinity for the weight type.
var ErrBadMaxWeight = errors.New("builder: max weight out of range")

// builderErrorf prefixes a formatted message with the generator name and
// keeps the trailing %w sentinel reachable through errors.Is.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}
