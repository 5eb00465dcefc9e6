package pq

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pqgraph/core"
)

// Sentinel errors. Both are delivered via panic: they signal programming
// errors, not recoverable conditions.
var (
	// ErrEmptyQueue is the panic value of ExtractMin on an empty queue.
	ErrEmptyQueue = errors.New("pq: extract-min on empty queue")

	// ErrUnknownKind is the panic value of New for an unrecognized Kind.
	ErrUnknownKind = errors.New("pq: unknown queue kind")
)

// absent marks a key with no entry in the index map.
const absent = -1

// KeyedValue is a (node, priority) pair, the unit exchanged with a queue.
type KeyedValue[W core.Weight] struct {
	Key   int // node id in [0, maxKey]
	Value W   // current best priority for Key
}

// less orders entries by value, then by key.
func (kv KeyedValue[W]) less(other KeyedValue[W]) bool {
	if kv.Value != other.Value {
		return kv.Value < other.Value
	}

	return kv.Key < other.Key
}

// MinPriorityQueue is an indexed min-queue over the keys 0..maxKey.
type MinPriorityQueue[W core.Weight] interface {
	// Insert activates key at value; on an active key it behaves as DecreaseKey.
	Insert(key int, value W)

	// DecreaseKey overwrites the value of key (activating it if absent) and
	// restores queue order. The direction of change is not validated.
	DecreaseKey(key int, value W)

	// ExtractMin removes and returns the entry with the smallest value,
	// breaking ties by smallest key. Panics with ErrEmptyQueue when empty.
	ExtractMin() KeyedValue[W]

	// Size reports the number of active keys.
	Size() int
}

// Kind selects a MinPriorityQueue implementation.
type Kind int

const (
	// KindBinaryHeap selects BinaryHeap: O(log n) for every operation.
	KindBinaryHeap Kind = iota

	// KindUnorderedArray selects UnorderedArray: O(1) decrease-key, O(maxKey) extract-min.
	KindUnorderedArray
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindBinaryHeap:
		return "binary-heap"
	case KindUnorderedArray:
		return "unordered-array"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// KindFor maps the classic useHeap flag onto a Kind.
func KindFor(useHeap bool) Kind {
	if useHeap {
		return KindBinaryHeap
	}

	return KindUnorderedArray
}

// New returns an empty queue of the given kind over the universe 0..maxKey.
// A negative maxKey yields a queue that accepts no keys.
// Panics with ErrUnknownKind for any other Kind.
func New[W core.Weight](kind Kind, maxKey int) MinPriorityQueue[W] {
	switch kind {
	case KindBinaryHeap:
		return NewBinaryHeap[W](maxKey)
	case KindUnorderedArray:
		return NewUnorderedArray[W](maxKey)
	default:
		panic(fmt.Errorf("%w: %v", ErrUnknownKind, kind))
	}
}

// newIndex allocates an index map with every slot absent.
func newIndex(maxKey int) []int {
	if maxKey < 0 {
		return nil
	}
	index := make([]int, maxKey+1)
	for i := range index {
		index[i] = absent
	}

	return index
}
