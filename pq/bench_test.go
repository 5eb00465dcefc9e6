package pq_test

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/pqgraph/pq"
)

// benchmarkFillDrain inserts n keys with random priorities, lowers half of
// them, then drains the queue: the access pattern of one Dijkstra run.
func benchmarkFillDrain(b *testing.B, kind pq.Kind, n int) {
	r := rand.New(rand.NewSource(1))
	prio := make([]int, n)
	for i := range prio {
		prio[i] = r.Intn(1 << 20)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := pq.New[int](kind, n-1)
		for k, p := range prio {
			q.Insert(k, p)
		}
		for k := 0; k < n; k += 2 {
			q.DecreaseKey(k, prio[k]/2)
		}
		for q.Size() > 0 {
			q.ExtractMin()
		}
	}
}

func BenchmarkBinaryHeap_1k(b *testing.B)     { benchmarkFillDrain(b, pq.KindBinaryHeap, 1000) }
func BenchmarkUnorderedArray_1k(b *testing.B) { benchmarkFillDrain(b, pq.KindUnorderedArray, 1000) }
func BenchmarkBinaryHeap_10k(b *testing.B)    { benchmarkFillDrain(b, pq.KindBinaryHeap, 10000) }
func BenchmarkUnorderedArray_10k(b *testing.B) {
	benchmarkFillDrain(b, pq.KindUnorderedArray, 10000)
}
