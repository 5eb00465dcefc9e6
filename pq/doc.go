// Package pq provides indexed minimum-priority queues over a fixed universe
// of integer keys 0..maxKey, built for greedy graph algorithms that need
// decrease-key.
//
// Overview:
//
//   - MinPriorityQueue is the capability shared by both implementations:
//     Insert, DecreaseKey, ExtractMin, Size.
//   - UnorderedArray: O(1) Insert/DecreaseKey, O(maxKey) ExtractMin.
//     The scan covers the whole universe, not just the active entries, so on
//     dense graphs (E ≈ V²) Dijkstra/Prim run in O(V²) regardless of E.
//   - BinaryHeap: O(log n) Insert/DecreaseKey/ExtractMin with a position
//     index so decrease-key never searches. On sparse graphs Dijkstra/Prim run
//     in O((V+E) log V).
//
// Semantics common to both:
//
//   - A key is either absent or present at exactly one priority.
//   - Insert on a present key is identical to DecreaseKey: the stored value is
//     overwritten even if the new one is larger. Monotonic improvement is the
//     caller's responsibility.
//   - DecreaseKey on an absent key inserts it.
//   - Keys outside [0, maxKey] are silently ignored.
//   - ExtractMin on an empty queue panics with ErrEmptyQueue; gate on Size().
//
// Determinism:
//
//   - Among equal values the smallest key is extracted first. UnorderedArray
//     gets this from its ascending scan, BinaryHeap from ordering entries by
//     (value, key). Any operation sequence therefore yields the same
//     extraction sequence from both implementations.
//
// Choosing an implementation:
//
//	q := pq.New[float64](pq.KindBinaryHeap, n-1)    // sparse graphs
//	q := pq.New[float64](pq.KindUnorderedArray, n-1) // dense graphs
//
// Queues are not safe for concurrent use; each algorithm run owns its queue.
package pq
