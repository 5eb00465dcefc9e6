// Package pqgraph is an in-memory playground for comparing priority-queue
// implementations inside the two classic greedy graph algorithms.
//
// What is pqgraph?
//
//	A small, thread-safe graph library that brings together:
//		• Core primitives: a generic weighted Graph over ids 0..n-1 with
//		  adjacency lists and an optional dense matrix mirror
//		• Priority queues: an indexed binary min-heap and an unordered array,
//		  both with decrease-key over a fixed key universe
//		• Shortest paths: Dijkstra
//		• Minimum spanning trees: Prim, with Kruskal as a cross-check
//		• Traversal: BFS for reachability
//		• Generators: seeded random graphs and the two textbook fixtures
//
// Which queue when?
//
//	Dijkstra and Prim perform V extract-min and up to E decrease-key calls.
//
//	  binary heap      O(log V) / O(log V)   → O((V + E) log V), sparse graphs
//	  unordered array  O(V)     / O(1)       → O(V² + E),        dense graphs
//
// Under the hood:
//
//	core/         - Graph[W], Edge[W], Weight constraint, Infinity/NoEdge sentinels
//	pq/           - MinPriorityQueue[W], BinaryHeap, UnorderedArray, KeyedValue
//	dijkstra/     - ShortestPath and the options-based Dijkstra
//	prim_kruskal/ - MinimumSpanningTree, Prim, Kruskal, Compute
//	bfs/          - breadth-first search and Reachable
//	builder/      - RandomGraph, DijkstraExample, PrimExample
//	cmd/pqbench/  - timing driver over random sparse and dense graphs
//
// Quick example:
//
//	g := builder.DijkstraExample[int]()
//	d := dijkstra.ShortestPath(g, 0, 4, true) // 5
//
//	go get github.com/katalvlaran/pqgraph
package pqgraph
