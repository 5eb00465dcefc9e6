package pq

import "github.com/katalvlaran/pqgraph/core"

// BinaryHeap is a MinPriorityQueue backed by an array-embedded binary
// min-heap (parent of i at (i-1)/2, children at 2i+1 and 2i+2) plus a
// key → heap-position index, so DecreaseKey never searches.
//
// Entries are ordered by (value, key): among equal values the smaller key
// sits closer to the root, which makes extraction order match UnorderedArray.
//
// Invariant after every exported call: for every i > 0,
// items[(i-1)/2] is not greater than items[i], and index[items[i].Key] == i.
type BinaryHeap[W core.Weight] struct {
	index []int           // index[key] = position in items, or absent
	items []KeyedValue[W] // heap-ordered active entries
}

// NewBinaryHeap returns an empty heap over the keys 0..maxKey.
func NewBinaryHeap[W core.Weight](maxKey int) *BinaryHeap[W] {
	return &BinaryHeap[W]{index: newIndex(maxKey)}
}

// Insert is identical to DecreaseKey.
func (h *BinaryHeap[W]) Insert(key int, value W) {
	h.DecreaseKey(key, value)
}

// DecreaseKey overwrites key's entry in place (or appends it when absent) and
// sifts it up while its parent is strictly greater.
// Keys outside [0, maxKey] are ignored.
//
// A value larger than the stored one is accepted too; the entry is then
// sifted down instead, so heap order holds for any sequence of calls.
//
// Complexity: O(log n).
func (h *BinaryHeap[W]) DecreaseKey(key int, value W) {
	if key < 0 || key >= len(h.index) {
		return
	}
	kv := KeyedValue[W]{Key: key, Value: value}
	pos := h.index[key]
	if pos == absent {
		pos = len(h.items)
		h.items = append(h.items, kv)
		h.index[key] = pos
		h.siftUp(pos)
		return
	}

	raised := h.items[pos].less(kv)
	h.items[pos] = kv
	if raised {
		h.siftDown(pos)
		return
	}
	h.siftUp(pos)
}

// ExtractMin removes and returns the root.
//
// The last entry replaces the root (unless the heap is now empty) and is
// sifted down.
//
// Complexity: O(log n).
func (h *BinaryHeap[W]) ExtractMin() KeyedValue[W] {
	if len(h.items) == 0 {
		panic(ErrEmptyQueue)
	}

	top := h.items[0]
	h.index[top.Key] = absent

	last := len(h.items) - 1
	tail := h.items[last]
	h.items = h.items[:last]
	if last > 0 {
		h.items[0] = tail
		h.index[tail.Key] = 0
		h.siftDown(0)
	}

	return top
}

// Size reports the number of active keys.
func (h *BinaryHeap[W]) Size() int {
	return len(h.items)
}

// Contains reports whether key is currently active.
func (h *BinaryHeap[W]) Contains(key int) bool {
	return key >= 0 && key < len(h.index) && h.index[key] != absent
}

// MaxKey returns the largest key the heap accepts.
func (h *BinaryHeap[W]) MaxKey() int {
	return len(h.index) - 1
}

// Values returns the stored values in heap-array order.
// It is a snapshot for inspection; mutating it does not affect the heap.
func (h *BinaryHeap[W]) Values() []W {
	out := make([]W, len(h.items))
	for i, kv := range h.items {
		out[i] = kv.Value
	}

	return out
}

// siftUp swaps items[i] with its parent while the parent is strictly greater.
func (h *BinaryHeap[W]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.items[i].less(h.items[parent]) {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

// siftDown swaps items[i] with its smaller child while that child is strictly
// smaller. On equal children the left one is chosen.
func (h *BinaryHeap[W]) siftDown(i int) {
	n := len(h.items)
	for {
		smallest := i
		left, right := 2*i+1, 2*i+2
		if left < n && h.items[left].less(h.items[smallest]) {
			smallest = left
		}
		if right < n && h.items[right].less(h.items[smallest]) {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

// swap exchanges two heap slots and keeps the index map in step.
func (h *BinaryHeap[W]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.index[h.items[i].Key] = i
	h.index[h.items[j].Key] = j
}
