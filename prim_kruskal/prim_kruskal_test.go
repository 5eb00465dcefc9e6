package prim_kruskal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pqgraph/builder"
	"github.com/katalvlaran/pqgraph/core"
	"github.com/katalvlaran/pqgraph/pq"
	"github.com/katalvlaran/pqgraph/prim_kruskal"
)

const textbookMST = 37

var queues = []struct {
	name    string
	kind    pq.Kind
	useHeap bool
}{
	{"heap", pq.KindBinaryHeap, true},
	{"array", pq.KindUnorderedArray, false},
}

// buildTriangle constructs a simple undirected, weighted triangle graph:
//
//	0—1 (weight 1), 1—2 (weight 2), 0—2 (weight 3).
//
// This graph’s MST consists of edges 0—1 and 1—2 with total weight 3.
func buildTriangle() *core.Graph[int] {
	g := core.NewGraph[int](3, core.WithWeighted())
	g.AddWeightedEdge(0, 1, 1)
	g.AddWeightedEdge(1, 2, 2)
	g.AddWeightedEdge(0, 2, 3)

	return g
}

// assertSpanningTree checks that t has n-1 edges, each present in g with the
// recorded weight, that they sum to Total, and that Parent reaches Root.
func assertSpanningTree[W core.Weight](t *testing.T, g *core.Graph[W], tree *prim_kruskal.Tree[W]) {
	t.Helper()
	n := g.NodeCount()
	require.Len(t, tree.Edges, n-1)
	require.Len(t, tree.Parent, n)

	var sum W
	for _, e := range tree.Edges {
		require.True(t, g.HasEdge(e.U, e.V), "edge %d-%d not in graph", e.U, e.V)
		sum += e.W
	}
	assert.Equal(t, tree.Total, sum)

	assert.Equal(t, prim_kruskal.NoParent, tree.Parent[tree.Root])
	for v := 0; v < n; v++ {
		steps := 0
		for cur := v; cur != tree.Root; cur = tree.Parent[cur] {
			require.NotEqual(t, prim_kruskal.NoParent, tree.Parent[cur], "vertex %d detached", v)
			steps++
			require.LessOrEqual(t, steps, n, "cycle in Parent from %d", v)
		}
	}
}

// ------------------------------------------------------------------------
// 1. Classic scalar entry point.
// ------------------------------------------------------------------------

func TestMinimumSpanningTree_Textbook(t *testing.T) {
	g := builder.PrimExample[int]()
	for _, q := range queues {
		assert.Equal(t, textbookMST, prim_kruskal.MinimumSpanningTree(g, 0, q.useHeap), q.name)
	}
}

func TestMinimumSpanningTree_AnyRoot(t *testing.T) {
	g := builder.PrimExample[float64](core.WithMatrix())
	for r := 0; r < g.NodeCount(); r++ {
		for _, q := range queues {
			assert.Equal(t, float64(textbookMST), prim_kruskal.MinimumSpanningTree(g, r, q.useHeap),
				"root=%d %s", r, q.name)
		}
	}
}

func TestMinimumSpanningTree_Degenerate(t *testing.T) {
	for _, q := range queues {
		assert.Equal(t, 0, prim_kruskal.MinimumSpanningTree(core.NewGraph[int](1), 0, q.useHeap))
		assert.Equal(t, 0, prim_kruskal.MinimumSpanningTree(buildTriangle(), 3, q.useHeap))
		assert.Equal(t, 0, prim_kruskal.MinimumSpanningTree(buildTriangle(), -1, q.useHeap))
		assert.Equal(t, 0, prim_kruskal.MinimumSpanningTree[int](nil, 0, q.useHeap))
		assert.Equal(t, 3, prim_kruskal.MinimumSpanningTree(buildTriangle(), 2, q.useHeap))
	}
}

// Only the root's component is spanned.
func TestMinimumSpanningTree_Disconnected(t *testing.T) {
	g := core.NewGraph[int](5, core.WithWeighted())
	g.AddWeightedEdge(0, 1, 3)
	g.AddWeightedEdge(1, 2, 4)
	g.AddWeightedEdge(0, 2, 9)
	g.AddWeightedEdge(3, 4, 6)

	for _, q := range queues {
		assert.Equal(t, 7, prim_kruskal.MinimumSpanningTree(g, 0, q.useHeap), q.name)
		assert.Equal(t, 6, prim_kruskal.MinimumSpanningTree(g, 4, q.useHeap), q.name)
	}
}

// Zero-weight edges and self-loops must not confuse the in-tree bookkeeping.
func TestMinimumSpanningTree_ZeroWeightsAndLoops(t *testing.T) {
	g := core.NewGraph[int](3, core.WithWeighted())
	g.AddWeightedEdge(0, 0, 5)
	g.AddWeightedEdge(0, 1, 0)
	g.AddWeightedEdge(1, 2, 0)
	g.AddWeightedEdge(0, 2, 1)

	for _, q := range queues {
		assert.Equal(t, 0, prim_kruskal.MinimumSpanningTree(g, 0, q.useHeap), q.name)
	}
}

// ------------------------------------------------------------------------
// 2. Prim with options.
// ------------------------------------------------------------------------

func TestPrim_Errors(t *testing.T) {
	_, err := prim_kruskal.Prim[int](nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrNilGraph)

	_, err = prim_kruskal.Prim(core.NewGraph[int](2, core.WithDirected()))
	assert.ErrorIs(t, err, prim_kruskal.ErrDirectedGraph)

	_, err = prim_kruskal.Prim(buildTriangle(), prim_kruskal.WithRoot(3))
	assert.ErrorIs(t, err, prim_kruskal.ErrRootOutOfRange)

	_, err = prim_kruskal.Prim(core.NewGraph[int](0))
	assert.ErrorIs(t, err, prim_kruskal.ErrRootOutOfRange)

	g := buildTriangle()
	g2 := core.NewGraph[int](4, core.WithWeighted())
	for _, e := range g.Edges() {
		g2.AddWeightedEdge(e.U, e.V, e.W)
	}
	_, err = prim_kruskal.Prim(g2)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	assert.Panics(t, func() { prim_kruskal.WithQueue(pq.Kind(-1)) })
}

func TestPrim_TextbookTree(t *testing.T) {
	g := builder.PrimExample[int]()
	wantEdges := []core.Edge[int]{
		{U: 0, V: 1, W: 4},
		{U: 1, V: 2, W: 8},
		{U: 2, V: 8, W: 2},
		{U: 2, V: 5, W: 4},
		{U: 5, V: 6, W: 2},
		{U: 6, V: 7, W: 1},
		{U: 2, V: 3, W: 7},
		{U: 3, V: 4, W: 9},
	}
	wantParent := []int{prim_kruskal.NoParent, 0, 1, 2, 3, 2, 5, 6, 2}

	for _, q := range queues {
		tree, err := prim_kruskal.Prim(g, prim_kruskal.WithRoot(0), prim_kruskal.WithQueue(q.kind))
		require.NoError(t, err)
		assert.Equal(t, textbookMST, tree.Total, q.name)
		assert.Equal(t, wantEdges, tree.Edges, q.name)
		assert.Equal(t, wantParent, tree.Parent, q.name)
		assertSpanningTree(t, g, tree)
	}
}

func TestPrim_SingleVertex(t *testing.T) {
	tree, err := prim_kruskal.Prim(core.NewGraph[int](1))
	require.NoError(t, err)
	assert.Empty(t, tree.Edges)
	assert.Equal(t, []int{prim_kruskal.NoParent}, tree.Parent)
	assert.Zero(t, tree.Total)
}

// ------------------------------------------------------------------------
// 3. Kruskal and Compute.
// ------------------------------------------------------------------------

func TestKruskal_Errors(t *testing.T) {
	_, err := prim_kruskal.Kruskal[int](nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrNilGraph)

	_, err = prim_kruskal.Kruskal(core.NewGraph[int](2, core.WithDirected()))
	assert.ErrorIs(t, err, prim_kruskal.ErrDirectedGraph)

	_, err = prim_kruskal.Kruskal(core.NewGraph[int](0))
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	_, err = prim_kruskal.Kruskal(core.NewGraph[int](2))
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
}

func TestKruskal_Textbook(t *testing.T) {
	g := builder.PrimExample[int]()
	tree, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)

	assert.Equal(t, textbookMST, tree.Total)
	assert.Equal(t, []int{prim_kruskal.NoParent, 0, 5, 2, 3, 6, 7, 0, 2}, tree.Parent)
	assertSpanningTree(t, g, tree)

	for i := 1; i < len(tree.Edges); i++ {
		assert.LessOrEqual(t, tree.Edges[i-1].W, tree.Edges[i].W, "Kruskal edges ascend by weight")
	}
}

func TestKruskal_SingleVertexWithLoop(t *testing.T) {
	g := core.NewGraph[int](1, core.WithWeighted())
	g.AddWeightedEdge(0, 0, 4)
	tree, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Empty(t, tree.Edges)
	assert.Zero(t, tree.Total)
}

func TestCompute_Dispatch(t *testing.T) {
	g := buildTriangle()

	tree, err := prim_kruskal.Compute(g, prim_kruskal.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 3, tree.Total)

	opts := prim_kruskal.DefaultOptions()
	for _, opt := range []prim_kruskal.Option{
		prim_kruskal.WithMethod(prim_kruskal.MethodPrim),
		prim_kruskal.WithRoot(2),
		prim_kruskal.WithQueue(pq.KindUnorderedArray),
	} {
		opt(&opts)
	}
	tree, err = prim_kruskal.Compute(g, opts)
	require.NoError(t, err)
	assert.Equal(t, 3, tree.Total)
	assert.Equal(t, 2, tree.Root)

	opts.Method = "boruvka"
	_, err = prim_kruskal.Compute(g, opts)
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

// ------------------------------------------------------------------------
// 4. Cross-check on random connected graphs: both queues and Kruskal agree.
// ------------------------------------------------------------------------

func TestPrimKruskal_AgreeOnRandomGraphs(t *testing.T) {
	const n = 50
	for _, seed := range []uint64{3, 11, 19, 27} {
		g, err := builder.RandomGraph[int](n, 400, builder.WithSeed(seed), builder.WithWeighted(), builder.WithMaxWeight(100))
		require.NoError(t, err)
		// Add a spine so the graph is connected whatever was drawn.
		for v := 1; v < n; v++ {
			if !g.HasEdge(v-1, v) {
				g.AddWeightedEdge(v-1, v, 100)
			}
		}

		k, err := prim_kruskal.Kruskal(g)
		require.NoError(t, err)
		assertSpanningTree(t, g, k)

		for _, q := range queues {
			p, err := prim_kruskal.Prim(g, prim_kruskal.WithQueue(q.kind))
			require.NoError(t, err)
			assertSpanningTree(t, g, p)
			assert.Equal(t, k.Total, p.Total, "seed=%d %s", seed, q.name)
			assert.Equal(t, k.Total, prim_kruskal.MinimumSpanningTree(g, n-1, q.useHeap), "seed=%d %s", seed, q.name)
		}
	}
}
