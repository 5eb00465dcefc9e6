// Package bfs provides breadth-first search over a core.Graph, returning hop
// distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: Depth[v] = hops from start, Unreached if never seen
//   - Parent: Parent[v] = predecessor in the BFS tree, Unreached for the root
//   - WithOnVisit observes each dequeued vertex and may stop the walk early.
//   - Ignores edge weights, so it runs on weighted graphs unchanged.
//
// Why
//
//   - Connectivity checks: Prim refuses to build a spanning tree unless every
//     vertex is reachable from the root; Reachable answers that in O(V + E).
//   - Rooting an edge set: Kruskal derives tree parents by a BFS over the
//     selected edges.
//   - Hop profiling: the benchmark driver measures how many hops separate the
//     Dijkstra source from its target, stopping once the target is visited.
//
// Determinism
//
//	Neighbors are enqueued in adjacency insertion order, so the visit
//	sequence is fully reproducible.
//
// Complexity (V = NodeCount, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 0)
//	path, err := res.PathTo(4)
//	n := bfs.Reachable(g, 0)
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrStartOutOfRange  if start is not in [0, n).
//   - ErrNotReached       from PathTo for an undiscovered vertex.
//   - Wrapped OnVisit errors, returned with the partial result.
package bfs
