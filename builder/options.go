// SPDX-License-Identifier: MIT
// Package: pqgraph/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves return errors and never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"golang.org/x/exp/rand"
)

// BuilderOption customizes a generator by mutating a builderConfig instance
// before graph construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed uint64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMaxWeight sets the inclusive upper bound for random weights.
// A bound outside [0, core.Infinity[W]()) is reported by the generator as
// ErrBadMaxWeight, so values read from flags surface as errors, not panics.
func WithMaxWeight(max float64) BuilderOption {
	return func(c *builderConfig) {
		c.maxWeight = max
	}
}

// WithDirected builds a directed graph.
func WithDirected() BuilderOption {
	return func(c *builderConfig) {
		c.directed = true
	}
}

// WithWeighted draws a random weight per edge; otherwise every weight is 0.
func WithWeighted() BuilderOption {
	return func(c *builderConfig) {
		c.weighted = true
	}
}

// WithMatrix enables the dense mirror on the generated graph.
func WithMatrix() BuilderOption {
	return func(c *builderConfig) {
		c.matrix = true
	}
}

// WithProgress registers fn to be called after every accepted edge with the
// number of edges placed so far and the target count. Panics on nil.
func WithProgress(fn func(done, total int)) BuilderOption {
	if fn == nil {
		panic("builder: WithProgress(nil)")
	}
	return func(c *builderConfig) {
		c.progress = fn
	}
}
