// SPDX-License-Identifier: MIT
// Package: pqgraph/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng        = rand.New(rand.NewSource(DefaultSeed))
//   • maxWeight  = DefaultMaxWeight (1000)
//   • flags      = undirected, unweighted, list-only
//   • progress   = nil

package builder

import (
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/pqgraph/core"
)

// builderConfig aggregates all knobs used by generators.
// It is passed by VALUE to generators (immutable to callers).
type builderConfig struct {
	// RNG for endpoint and weight draws; never nil after resolution.
	rng *rand.Rand
	// Inclusive upper bound for random weights.
	maxWeight float64
	// Graph flags forwarded to core.NewGraph.
	directed bool
	weighted bool
	matrix   bool
	// Optional callback after each accepted edge.
	progress func(done, total int)
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		maxWeight: DefaultMaxWeight,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	// Unseeded runs stay reproducible.
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return cfg
}

// graphOptions translates the resolved flags into core options.
func (c builderConfig) graphOptions() []core.GraphOption {
	var opts []core.GraphOption
	if c.directed {
		opts = append(opts, core.WithDirected())
	}
	if c.weighted {
		opts = append(opts, core.WithWeighted())
	}
	if c.matrix {
		opts = append(opts, core.WithMatrix())
	}

	return opts
}
