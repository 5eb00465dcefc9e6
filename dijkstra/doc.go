// Package dijkstra provides Dijkstra's single-source shortest-path algorithm
// on core.Graph, parameterized over the priority-queue implementation.
//
// Overview:
//
//   - Distances start at core.Infinity except the source (0). The source is
//     inserted into the queue; each extract-min finalizes one vertex u and
//     relaxes u's adjacency in insertion order. An improvement du+w < dist[v]
//     updates dist[v] and calls DecreaseKey(v, dist[v]), which also inserts v
//     the first time it is reached.
//   - The queue is chosen per call: pq.KindBinaryHeap for sparse graphs,
//     pq.KindUnorderedArray for dense ones. Both produce identical results.
//
// API reference:
//
//	func ShortestPath[W](g *core.Graph[W], s, t int, useHeap bool) W
//
//	  - Classic scalar entry point: the distance s → t, or core.Infinity[W]()
//	    when t is unreachable or s/t are out of range.
//
//	func Dijkstra[W](g *core.Graph[W], opts ...Option) (*Result[W], error)
//
//	  - Per-vertex form. Options:
//	      • Source(int):          starting vertex (default 0).
//	      • WithQueue(pq.Kind):   queue implementation (default binary heap).
//	      • WithReturnPath():     record predecessors; enables Result.PathTo.
//	  - Result.Dist[v]: distance to v, core.Infinity when unreachable.
//	  - Result.Prev[v]: predecessor of v, NoParent for the source/unreachable.
//
// Preconditions:
//
//   - Edge weights must be non-negative. This is NOT checked: negative weights
//     silently produce wrong distances.
//   - V × max edge weight must stay below core.Infinity to avoid overflow.
//
// Performance and complexity:
//
//   - Binary heap:     O((V + E) log V).
//   - Unordered array: O(V² + E); preferable when E approaches V².
//   - Space: O(V).
//
// Thread safety:
//
//   - A run only reads the graph and owns its queue and slices, so concurrent
//     runs on one graph are safe as long as nobody adds edges meanwhile.
package dijkstra
