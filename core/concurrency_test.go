// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pqgraph/core"
)

// TestConcurrentAddEdge ensures that concurrent insertions are all recorded.
func TestConcurrentAddEdge(t *testing.T) {
	const num = 200 // number of concurrent adds
	g := core.NewGraph[int](num+1, core.WithMatrix())
	var wg sync.WaitGroup
	wg.Add(num)

	// Launch num goroutines, each attaching leaf i+1 to hub 0.
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			g.AddWeightedEdge(0, id+1, id)
		}(i)
	}
	wg.Wait()

	require.Equal(t, num, g.EdgeCount())
	require.Equal(t, num, g.Degree(0))
	for i := 1; i <= num; i++ {
		require.True(t, g.HasEdge(i, 0))
	}
}

// TestConcurrentReaders validates that read-only queries can run in parallel.
func TestConcurrentReaders(t *testing.T) {
	g := newSquare(core.WithMatrix())
	const readers = 50
	results := make([][]int, readers)
	var wg sync.WaitGroup
	wg.Add(readers)

	for i := 0; i < readers; i++ {
		go func(id int) {
			defer wg.Done()
			results[id] = g.Neighbors(V0)
			_ = g.Weight(V0, V1)
			_ = g.Edges()
		}(i)
	}
	wg.Wait()

	// Assertions stay on the test goroutine.
	for _, nbrs := range results {
		require.Equal(t, []int{V1, V3}, nbrs)
	}
}
