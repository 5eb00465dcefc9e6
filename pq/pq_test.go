package pq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/pqgraph/pq"
)

// kinds lists every implementation under test.
var kinds = []pq.Kind{pq.KindBinaryHeap, pq.KindUnorderedArray}

// drain extracts every entry, gating each call on Size().
func drain[W int | float64](q pq.MinPriorityQueue[W]) []pq.KeyedValue[W] {
	var out []pq.KeyedValue[W]
	for q.Size() > 0 {
		out = append(out, q.ExtractMin())
	}

	return out
}

// assertHeapOrder checks value(parent(i)) <= value(i) for every non-root slot.
func assertHeapOrder(t *testing.T, h *pq.BinaryHeap[int]) {
	t.Helper()
	vals := h.Values()
	for i := 1; i < len(vals); i++ {
		require.LessOrEqual(t, vals[(i-1)/2], vals[i], "heap order broken at %d in %v", i, vals)
	}
}

// TestNew_Kinds verifies the tagged constructor and its panic on unknown kinds.
func TestNew_Kinds(t *testing.T) {
	assert.IsType(t, &pq.BinaryHeap[int]{}, pq.New[int](pq.KindBinaryHeap, 3))
	assert.IsType(t, &pq.UnorderedArray[int]{}, pq.New[int](pq.KindUnorderedArray, 3))
	assert.Equal(t, pq.KindBinaryHeap, pq.KindFor(true))
	assert.Equal(t, pq.KindUnorderedArray, pq.KindFor(false))
	assert.Equal(t, "binary-heap", pq.KindBinaryHeap.String())
	assert.Equal(t, "unordered-array", pq.KindUnorderedArray.String())
	assert.Equal(t, "Kind(7)", pq.Kind(7).String())

	assert.PanicsWithError(t, "pq: unknown queue kind: Kind(7)", func() {
		pq.New[int](pq.Kind(7), 3)
	})
}

// TestExtractMin_SortedOrder inserts out of order and expects ascending extraction.
func TestExtractMin_SortedOrder(t *testing.T) {
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			q := pq.New[int](kind, 5)
			q.Insert(3, 30)
			q.Insert(0, 50)
			q.Insert(5, 10)
			q.Insert(1, 40)
			q.Insert(2, 20)
			require.Equal(t, 5, q.Size())

			assert.Equal(t, []pq.KeyedValue[int]{
				{Key: 5, Value: 10},
				{Key: 2, Value: 20},
				{Key: 3, Value: 30},
				{Key: 1, Value: 40},
				{Key: 0, Value: 50},
			}, drain(q))
			assert.Zero(t, q.Size())
		})
	}
}

// TestDecreaseKey_ActivatesAndUpdates covers insert-via-decrease and in-place update.
func TestDecreaseKey_ActivatesAndUpdates(t *testing.T) {
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			q := pq.New[float64](kind, 3)
			q.DecreaseKey(2, 9.5) // absent: activates
			q.Insert(1, 4)
			q.DecreaseKey(2, 1.25) // present: overwrites, moves to front
			q.Insert(1, 0.5)       // Insert on present key behaves as DecreaseKey
			require.Equal(t, 2, q.Size())

			assert.Equal(t, []pq.KeyedValue[float64]{
				{Key: 1, Value: 0.5},
				{Key: 2, Value: 1.25},
			}, drain(q))
		})
	}
}

// TestDecreaseKey_Increase documents that a larger value is accepted as-is.
func TestDecreaseKey_Increase(t *testing.T) {
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			q := pq.New[int](kind, 3)
			q.Insert(0, 1)
			q.Insert(1, 2)
			q.Insert(2, 3)
			q.DecreaseKey(0, 10)

			assert.Equal(t, []int{1, 2, 0}, keys(drain(q)))
		})
	}
}

// TestOutOfRangeKeys verifies silent no-ops outside [0, maxKey].
func TestOutOfRangeKeys(t *testing.T) {
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			q := pq.New[int](kind, 2)
			q.Insert(-1, 1)
			q.Insert(3, 1)
			q.DecreaseKey(100, 0)
			assert.Zero(t, q.Size())

			q.Insert(2, 7) // maxKey itself is valid
			assert.Equal(t, 1, q.Size())
		})
	}
}

// TestExtractMin_EmptyPanics checks the fatal contract on empty extraction.
func TestExtractMin_EmptyPanics(t *testing.T) {
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			q := pq.New[int](kind, 4)
			require.Zero(t, q.Size())
			assert.PanicsWithError(t, pq.ErrEmptyQueue.Error(), func() { q.ExtractMin() })

			q.Insert(1, 1)
			q.ExtractMin()
			assert.PanicsWithError(t, pq.ErrEmptyQueue.Error(), func() { q.ExtractMin() })
		})
	}
}

// TestTieBreak_SmallestKey verifies deterministic tie-breaking by key.
func TestTieBreak_SmallestKey(t *testing.T) {
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			q := pq.New[int](kind, 9)
			for _, k := range []int{7, 3, 9, 0, 5} {
				q.Insert(k, 4)
			}
			q.Insert(8, 1)

			assert.Equal(t, []int{8, 0, 3, 5, 7, 9}, keys(drain(q)))
		})
	}
}

// TestContainsAndMaxKey covers the active-set helpers.
func TestContainsAndMaxKey(t *testing.T) {
	h := pq.NewBinaryHeap[int](4)
	a := pq.NewUnorderedArray[int](4)
	for _, q := range []interface {
		pq.MinPriorityQueue[int]
		Contains(int) bool
		MaxKey() int
	}{h, a} {
		assert.Equal(t, 4, q.MaxKey())
		assert.False(t, q.Contains(2))
		q.Insert(2, 5)
		assert.True(t, q.Contains(2))
		assert.False(t, q.Contains(-1))
		assert.False(t, q.Contains(5))
		q.ExtractMin()
		assert.False(t, q.Contains(2))
	}

	empty := pq.NewBinaryHeap[int](-1)
	empty.Insert(0, 1)
	assert.Zero(t, empty.Size())
	assert.Equal(t, -1, empty.MaxKey())
}

// TestBinaryHeap_InvariantAfterEveryOperation drives a random stream and checks heap order
// after each mutation.
func TestBinaryHeap_InvariantAfterEveryOperation(t *testing.T) {
	const maxKey = 63
	r := rand.New(rand.NewSource(7))
	h := pq.NewBinaryHeap[int](maxKey)

	for step := 0; step < 5000; step++ {
		switch op := r.Intn(3); {
		case op == 0 && h.Size() > 0:
			top := h.ExtractMin()
			for _, v := range h.Values() {
				require.LessOrEqual(t, top.Value, v)
			}
		case op == 1:
			h.Insert(r.Intn(maxKey+1), r.Intn(1000))
		default:
			h.DecreaseKey(r.Intn(maxKey+1), r.Intn(1000))
		}
		assertHeapOrder(t, h)
	}
}

// TestEquivalence_RandomStream applies one random operation stream to both queues and
// expects identical extraction sequences.
func TestEquivalence_RandomStream(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3, 42, 2024} {
		const maxKey = 31
		r := rand.New(rand.NewSource(seed))
		heap := pq.New[int](pq.KindBinaryHeap, maxKey)
		arr := pq.New[int](pq.KindUnorderedArray, maxKey)

		for step := 0; step < 3000; step++ {
			switch r.Intn(4) {
			case 0:
				require.Equal(t, arr.Size(), heap.Size())
				if heap.Size() > 0 {
					require.Equal(t, arr.ExtractMin(), heap.ExtractMin(), "seed %d step %d", seed, step)
				}
			case 1:
				k, v := r.Intn(maxKey+1), r.Intn(50)
				heap.Insert(k, v)
				arr.Insert(k, v)
			default:
				// Narrow value range forces many ties.
				k, v := r.Intn(maxKey+1), r.Intn(20)
				heap.DecreaseKey(k, v)
				arr.DecreaseKey(k, v)
			}
		}
		require.Equal(t, drain(arr), drain(heap), "seed %d final drain", seed)
	}
}

// TestBinaryHeap_Values returns a detached snapshot.
func TestBinaryHeap_Values(t *testing.T) {
	h := pq.NewBinaryHeap[int](3)
	h.Insert(0, 3)
	h.Insert(1, 1)
	h.Insert(2, 2)

	vals := h.Values()
	require.Len(t, vals, 3)
	assert.Equal(t, 1, vals[0])
	vals[0] = 100
	assert.Equal(t, 1, h.Values()[0])
}

func keys[W int | float64](kvs []pq.KeyedValue[W]) []int {
	out := make([]int, len(kvs))
	for i, kv := range kvs {
		out[i] = kv.Key
	}

	return out
}
