// Package prim_kruskal provides two algorithms for computing the Minimum Spanning Tree (MST)
// of an undirected *core.Graph: Prim’s algorithm over a pluggable priority queue, and
// Kruskal’s algorithm as an independent cross-check.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//
//   - Why two queues?
//     Prim performs one extract-min per vertex and at most one decrease-key per edge. A binary
//     heap makes both O(log V); an unordered array makes decrease-key O(1) and extract-min O(V).
//     The array wins once E approaches V², the heap wins on sparse graphs.
//
// Algorithms Provided
//
//   - MinimumSpanningTree(g, r, useHeap) W
//
//   - The classic scalar form: the weight of the tree grown from r. On a disconnected graph
//     only r's component is spanned. Out-of-range r yields 0.
//
//   - Prim(g, opts...) (*Tree[W], error)
//
//   - Strategy: key[v] holds the cheapest edge from the tree to v. Extract the vertex with the
//     smallest key, add it to the tree, and lower the keys of its outside neighbors.
//
//   - Options: WithRoot(int), WithQueue(pq.Kind).
//
//   - Complexity: O((V + E) log V) with the heap, O(V² + E) with the array. Space O(V).
//
//   - Kruskal(g) (*Tree[W], error)
//
//   - Strategy: sort all edges by weight, then merge components with a disjoint-set,
//     skipping edges whose endpoints are already connected.
//
//   - Complexity: O(E log E + α(V)·E). Space O(V + E).
//
//   - Determinism: graph.Edges() is ordered, and the stable sort keeps that order for ties.
//
//   - Compute(g, MSTOptions) dispatches by MethodPrim or MethodKruskal.
//
// Error Conditions
//
//	- ErrNilGraph        graph is nil.
//	- ErrDirectedGraph   graph.Directed() == true.
//	- ErrRootOutOfRange  (Prim) root not in [0, n); includes the empty graph.
//	- ErrDisconnected    (Prim) some vertex is unreachable from root, detected with bfs.Reachable;
//	                     (Kruskal) the graph is empty or not connected.
//	- ErrUnknownMethod   (Compute) method is neither MethodPrim nor MethodKruskal.
//
// Negative weights are permitted for MSTs; unlike Dijkstra, Prim stays correct with them.
package prim_kruskal
