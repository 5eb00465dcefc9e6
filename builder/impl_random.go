// SPDX-License-Identifier: MIT
// Package: pqgraph/builder
//
// impl_random.go - implementation of the RandomGraph(n, e) generator.
//
// Canonical model:
//   - Rejection sampling: draw u and v uniformly in [0,n); discard the pair
//     when u == v or the edge already exists (core.Graph.HasEdge); otherwise
//     insert it and count it. Stop after exactly e accepted edges.
//   - Undirected graphs report HasEdge both ways, so {u,v} and {v,u} are the
//     same candidate.
//
// Contract:
//   - n ≥ MinRandomVertices (else ErrTooFewVertices).
//   - 0 ≤ e ≤ n(n-1) directed, n(n-1)/2 undirected (else ErrTooManyEdges).
//   - 0 ≤ maxWeight < core.Infinity[W]() (else ErrBadMaxWeight).
//   - Weight policy: weighted → drawWeight in [0,maxWeight]; unweighted → 0.
//
// Complexity:
//   - Expected draws: O(e) while e is well below capacity; approaching
//     capacity the coupon-collector tail dominates, O(C log C) for C = capacity.
//   - Each HasEdge check is O(1) with the dense mirror and O(deg) without it.
//
// Determinism:
//   - Fixed seed + options ⇒ identical graph, including adjacency order.

package builder

import (
	"github.com/katalvlaran/pqgraph/core"
)

// randomGraph validates parameters and samples the edge set.
func randomGraph[W core.Weight](n, e int, cfg builderConfig) (*core.Graph[W], error) {
	// 1) Validate parameters early (fail fast, no allocation on invalid input).
	if err := validateMin(MethodRandomGraph, n, MinRandomVertices); err != nil {
		return nil, err
	}
	if err := validateEdgeCount(MethodRandomGraph, n, e, cfg.directed); err != nil {
		return nil, err
	}
	if err := validateMaxWeight[W](MethodRandomGraph, cfg.maxWeight); err != nil {
		return nil, err
	}

	// 2) Allocate the graph with the requested storage mode.
	g := core.NewGraph[W](n, cfg.graphOptions()...)

	// 3) Cache per-call invariants.
	rng := cfg.rng
	isInt := integral[W]()

	// 4) Rejection-sample until e edges are placed.
	for placed := 0; placed < e; {
		u, v := rng.Intn(n), rng.Intn(n)
		if u == v || g.HasEdge(u, v) {
			continue
		}

		var w W
		if cfg.weighted {
			w = drawWeight[W](rng, cfg.maxWeight, isInt)
		}
		g.AddWeightedEdge(u, v, w)
		placed++

		if cfg.progress != nil {
			cfg.progress(placed, e)
		}
	}

	return g, nil
}
