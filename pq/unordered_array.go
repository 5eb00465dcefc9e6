package pq

import "github.com/katalvlaran/pqgraph/core"

// UnorderedArray is a MinPriorityQueue backed by an unordered slice of
// active entries plus a key → position index.
//
// Insert and DecreaseKey are O(1). ExtractMin scans the entire universe
// 0..maxKey in ascending key order, so it costs O(maxKey) even when few keys
// are active; among equal values the smallest key wins.
type UnorderedArray[W core.Weight] struct {
	index []int           // index[key] = position in entries, or absent
	items []KeyedValue[W] // active entries, no particular order
}

// NewUnorderedArray returns an empty queue over the keys 0..maxKey.
func NewUnorderedArray[W core.Weight](maxKey int) *UnorderedArray[W] {
	return &UnorderedArray[W]{index: newIndex(maxKey)}
}

// Insert is identical to DecreaseKey.
func (q *UnorderedArray[W]) Insert(key int, value W) {
	q.DecreaseKey(key, value)
}

// DecreaseKey appends key at value if absent, otherwise overwrites its entry.
// Keys outside [0, maxKey] are ignored.
// Complexity: O(1) amortized.
func (q *UnorderedArray[W]) DecreaseKey(key int, value W) {
	if key < 0 || key >= len(q.index) {
		return
	}
	kv := KeyedValue[W]{Key: key, Value: value}
	if pos := q.index[key]; pos != absent {
		q.items[pos] = kv
		return
	}
	q.index[key] = len(q.items)
	q.items = append(q.items, kv)
}

// ExtractMin removes and returns the smallest entry.
//
// The minimum is found by walking keys 0..maxKey and consulting the index,
// then removed by moving the last entry into its slot.
//
// Complexity: O(maxKey).
func (q *UnorderedArray[W]) ExtractMin() KeyedValue[W] {
	if len(q.items) == 0 {
		panic(ErrEmptyQueue)
	}

	best := absent
	for key, pos := range q.index {
		if pos == absent {
			continue
		}
		// Strict comparison keeps the first (smallest) key among equal values.
		if best == absent || q.items[pos].Value < q.items[q.index[best]].Value {
			best = key
		}
	}

	pos := q.index[best]
	top := q.items[pos]
	q.index[best] = absent

	last := len(q.items) - 1
	q.items[pos] = q.items[last]
	q.items = q.items[:last]
	if pos < last {
		q.index[q.items[pos].Key] = pos
	}

	return top
}

// Size reports the number of active keys.
func (q *UnorderedArray[W]) Size() int {
	return len(q.items)
}

// Contains reports whether key is currently active.
func (q *UnorderedArray[W]) Contains(key int) bool {
	return key >= 0 && key < len(q.index) && q.index[key] != absent
}

// MaxKey returns the largest key the queue accepts.
func (q *UnorderedArray[W]) MaxKey() int {
	return len(q.index) - 1
}
